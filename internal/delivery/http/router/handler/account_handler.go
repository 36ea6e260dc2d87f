// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"platter/internal/delivery/http/response"
	"platter/internal/domain/entity"
	"platter/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for registration, login, and
// profile update endpoints.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerCustomerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address"`
	Mobile   string `json:"mobile"`
}

type registerRestaurantRequest struct {
	Username             string  `json:"username" validate:"required"`
	Password             string  `json:"password" validate:"required,min=6"`
	Name                 string  `json:"name" validate:"required"`
	Mobile               string  `json:"mobile"`
	Address              string  `json:"address"`
	ImageURL             string  `json:"image_url"`
	Cuisine              string  `json:"cuisine"`
	OpenTime             string  `json:"open_time"`
	CloseTime            string  `json:"close_time"`
	Rating               float64 `json:"rating"`
	Distance             float64 `json:"distance"`
	Offers               string  `json:"offers"`
	Reviews              string  `json:"reviews"`
	ExpectedDeliveryTime string  `json:"expected_delivery_time"`
}

type registerPartnerRequest struct {
	Username string  `json:"username" validate:"required"`
	Password string  `json:"password" validate:"required,min=6"`
	Name     string  `json:"name" validate:"required"`
	Mobile   string  `json:"mobile"`
	Rating   float64 `json:"rating"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

type updateRestaurantRequest struct {
	Name                 string  `json:"name"`
	Mobile               string  `json:"mobile"`
	Address              string  `json:"address"`
	ImageURL             string  `json:"image_url"`
	Cuisine              string  `json:"cuisine"`
	OpenTime             string  `json:"open_time"`
	CloseTime            string  `json:"close_time"`
	Rating               float64 `json:"rating"`
	Distance             float64 `json:"distance"`
	Offers               string  `json:"offers"`
	Reviews              string  `json:"reviews"`
	ExpectedDeliveryTime string  `json:"expected_delivery_time"`
}

type updatePartnerRequest struct {
	Name   string  `json:"name"`
	Mobile string  `json:"mobile"`
	Rating float64 `json:"rating"`
}

type registerResponse struct {
	ID   uuid.UUID `json:"id"`
	Role string    `json:"role"`
}

type loginResponse struct {
	AccessToken string    `json:"access_token"`
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Membership  string    `json:"membership_type,omitempty"`
}

// RegisterCustomer handles POST /register/user.
func (h *AccountHandler) RegisterCustomer(c echo.Context) error {
	var req registerCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RegisterCustomer(c.Request().Context(), usecase.RegisterCustomerInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Address:  req.Address,
		Mobile:   req.Mobile,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, registerResponse{
		ID:   output.ID,
		Role: output.Role.String(),
	}, "Customer registered successfully")
}

// RegisterRestaurant handles POST /register/restaurant.
func (h *AccountHandler) RegisterRestaurant(c echo.Context) error {
	var req registerRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RegisterRestaurant(c.Request().Context(), usecase.RegisterRestaurantInput{
		Username:             req.Username,
		Password:             req.Password,
		Name:                 req.Name,
		Mobile:               req.Mobile,
		Address:              req.Address,
		ImageURL:             req.ImageURL,
		Cuisine:              req.Cuisine,
		OpenTime:             req.OpenTime,
		CloseTime:            req.CloseTime,
		Rating:               req.Rating,
		Distance:             req.Distance,
		Offers:               req.Offers,
		Reviews:              req.Reviews,
		ExpectedDeliveryTime: req.ExpectedDeliveryTime,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, registerResponse{
		ID:   output.ID,
		Role: output.Role.String(),
	}, "Restaurant registered successfully")
}

// RegisterPartner handles POST /register/delivery-partner.
func (h *AccountHandler) RegisterPartner(c echo.Context) error {
	var req registerPartnerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RegisterPartner(c.Request().Context(), usecase.RegisterPartnerInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Mobile:   req.Mobile,
		Rating:   req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, registerResponse{
		ID:   output.ID,
		Role: output.Role.String(),
	}, "Delivery partner registered successfully")
}

// Login handles POST /login for all three account kinds. An absent or
// unknown role falls back to the customer namespace.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Role:     entity.ParseRole(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		AccessToken: output.AccessToken,
		ID:          output.ID,
		Username:    output.Username,
		Name:        output.Name,
		Role:        output.Role.String(),
		Membership:  output.Membership,
	}, "Login successful")
}

// UpdateRestaurant handles PUT /restaurants/:id.
func (h *AccountHandler) UpdateRestaurant(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	var req updateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}

	if err := h.uc.UpdateRestaurant(c.Request().Context(), usecase.UpdateRestaurantInput{
		RestaurantID:         restaurantID,
		Name:                 req.Name,
		Mobile:               req.Mobile,
		Address:              req.Address,
		ImageURL:             req.ImageURL,
		Cuisine:              req.Cuisine,
		OpenTime:             req.OpenTime,
		CloseTime:            req.CloseTime,
		Rating:               req.Rating,
		Distance:             req.Distance,
		Offers:               req.Offers,
		Reviews:              req.Reviews,
		ExpectedDeliveryTime: req.ExpectedDeliveryTime,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": restaurantID.String()}, "Restaurant updated successfully")
}

// UpdatePartner handles PUT /delivery_partner/:id.
func (h *AccountHandler) UpdatePartner(c echo.Context) error {
	partnerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid delivery partner ID")
	}

	var req updatePartnerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery partner input")
	}

	if err := h.uc.UpdatePartner(c.Request().Context(), usecase.UpdatePartnerInput{
		PartnerID: partnerID,
		Name:      req.Name,
		Mobile:    req.Mobile,
		Rating:    req.Rating,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": partnerID.String()}, "Delivery partner updated successfully")
}
