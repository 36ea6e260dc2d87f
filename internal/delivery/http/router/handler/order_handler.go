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

// OrderHandler holds dependencies for order placement, lifecycle, and
// composite view endpoints.
type OrderHandler struct {
	orderUC   usecase.OrderUsecase
	viewUC    usecase.ViewUsecase
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(
	orderUC usecase.OrderUsecase,
	viewUC usecase.ViewUsecase,
	accountUC usecase.AccountUsecase,
	logger *slog.Logger,
) *OrderHandler {
	return &OrderHandler{
		orderUC:   orderUC,
		viewUC:    viewUC,
		accountUC: accountUC,
		logger:    logger,
	}
}

type placeOrderRequest struct {
	RestaurantID   string   `json:"restaurant_id" validate:"required"`
	DishIDs        []string `json:"dish_ids" validate:"required,min=1"`
	Total          float64  `json:"total" validate:"gt=0"`
	Status         string   `json:"status"`
	MembershipType string   `json:"membership_type"`
}

type placeOrderResponse struct {
	OrderID        uuid.UUID   `json:"order_id"`
	Status         string      `json:"status"`
	SkippedDishIDs []uuid.UUID `json:"skipped_dish_ids,omitempty"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type updateStatusResponse struct {
	OrderID           uuid.UUID  `json:"order_id"`
	Status            string     `json:"status"`
	DeliveryPartnerID *uuid.UUID `json:"delivery_partner_id,omitempty"`
}

// PlaceOrder handles POST /order_now. The customer is taken from the
// access token, never from the body. A membership_type in the payload
// updates the customer's tier as a side effect of ordering.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing caller identity")
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	dishIDs := make([]uuid.UUID, 0, len(req.DishIDs))
	for _, raw := range req.DishIDs {
		dishID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid dish ID: "+raw)
		}
		dishIDs = append(dishIDs, dishID)
	}

	if req.MembershipType != "" {
		// Applied before the order; a failed order does not roll the tier back.
		if err := h.accountUC.SetMembershipType(c.Request().Context(), userID, req.MembershipType); err != nil {
			return errors.WithStack(err)
		}
	}

	output, err := h.orderUC.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		UserID:       userID,
		RestaurantID: restaurantID,
		DishIDs:      dishIDs,
		Total:        req.Total,
		Status:       entity.OrderStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, placeOrderResponse{
		OrderID:        output.OrderID,
		Status:         output.Status.String(),
		SkippedDishIDs: output.SkippedDishIDs,
	}, "Order placed successfully")
}

// UpdateStatus handles PUT /order/:id.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.orderUC.UpdateStatus(c.Request().Context(), usecase.UpdateStatusInput{
		OrderID: orderID,
		Status:  entity.OrderStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updateStatusResponse{
		OrderID:           output.OrderID,
		Status:            output.Status.String(),
		DeliveryPartnerID: output.DeliveryPartnerID,
	}, "Order status updated successfully")
}

// GetOrder handles GET /order/:id.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	view, err := h.viewUC.GetOrderView(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// ListRestaurantOrders handles GET /restaurant/orders/:id.
func (h *OrderHandler) ListRestaurantOrders(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	views, err := h.viewUC.ListRestaurantOrders(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}

// ListPartnerOrders handles GET /delivery_partner/orders/:id.
func (h *OrderHandler) ListPartnerOrders(c echo.Context) error {
	partnerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid delivery partner ID")
	}

	views, err := h.viewUC.ListPartnerOrders(c.Request().Context(), partnerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}

// ListCustomerOrders handles GET /users/orders/:id.
func (h *OrderHandler) ListCustomerOrders(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	views, err := h.viewUC.ListCustomerOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}
