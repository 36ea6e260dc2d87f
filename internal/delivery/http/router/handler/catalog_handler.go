package handler

import (
	"log/slog"
	"net/http"

	"platter/internal/delivery/http/response"
	"platter/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for menu and restaurant browsing endpoints.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

type addDishRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price" validate:"gte=0"`
	Rating      float64 `json:"rating"`
}

type updateDishRequest struct {
	DishID      string  `json:"dish_id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price" validate:"gte=0"`
	Rating      float64 `json:"rating"`
}

// AddDish handles POST /dishes/:restaurant_id.
func (h *CatalogHandler) AddDish(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("restaurant_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	var req addDishRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dish input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dish, err := h.uc.AddDish(c.Request().Context(), usecase.AddDishInput{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Price:        req.Price,
		Rating:       req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, dish, "Dish added successfully")
}

// UpdateDish handles PUT /dishes/:restaurant_id. The dish to change is
// named in the body; the path pins the owning restaurant.
func (h *CatalogHandler) UpdateDish(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("restaurant_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	var req updateDishRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dish input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dishID, err := uuid.Parse(req.DishID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dish ID")
	}

	dish, err := h.uc.UpdateDish(c.Request().Context(), usecase.UpdateDishInput{
		DishID:       dishID,
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Price:        req.Price,
		Rating:       req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dish, "Dish updated successfully")
}

// ListDishes handles GET /dishes/:restaurant_id.
func (h *CatalogHandler) ListDishes(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("restaurant_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	menu, err := h.uc.ListDishes(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, menu, "")
}

// ListRestaurants handles GET /restaurants.
func (h *CatalogHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.uc.ListRestaurants(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurants, "")
}

// MenuQR handles GET /restaurants/:id/menu-qr. It answers with a raw
// PNG rather than the JSON envelope.
func (h *CatalogHandler) MenuQR(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	png, err := h.uc.MenuQR(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
