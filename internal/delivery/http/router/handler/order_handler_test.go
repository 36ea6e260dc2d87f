package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"platter/internal/delivery/http/validator"
	"platter/internal/domain/entity"
	mockUC "platter/internal/mocks/usecase"
	"platter/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	viewUC := mockUC.NewMockViewUsecase(t)
	accountUC := mockUC.NewMockAccountUsecase(t)
	h := NewOrderHandler(orderUC, viewUC, accountUC, nil)

	userID := uuid.New()
	restaurantID := uuid.New()
	dishID := uuid.New()
	orderID := uuid.New()

	body := `{"restaurant_id":"` + restaurantID.String() + `","dish_ids":["` + dishID.String() + `"],"total":240}`

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/order_now", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	orderUC.EXPECT().
		PlaceOrder(mock.Anything, usecase.PlaceOrderInput{
			UserID:       userID,
			RestaurantID: restaurantID,
			DishIDs:      []uuid.UUID{dishID},
			Total:        240,
		}).
		Return(&usecase.PlaceOrderOutput{
			OrderID: orderID,
			Status:  entity.StatusPending,
		}, nil)

	require.NoError(t, h.PlaceOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			OrderID string `json:"order_id"`
			Status  string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, orderID.String(), envelope.Data.OrderID)
	assert.Equal(t, "PENDING", envelope.Data.Status)
}

func TestOrderHandler_PlaceOrder_MembershipSideEffect(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	viewUC := mockUC.NewMockViewUsecase(t)
	accountUC := mockUC.NewMockAccountUsecase(t)
	h := NewOrderHandler(orderUC, viewUC, accountUC, nil)

	userID := uuid.New()
	restaurantID := uuid.New()
	dishID := uuid.New()

	body := `{"restaurant_id":"` + restaurantID.String() + `","dish_ids":["` + dishID.String() + `"],"total":99,"membership_type":"GOLD"}`

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/order_now", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	accountUC.EXPECT().
		SetMembershipType(mock.Anything, userID, "GOLD").
		Return(nil)
	orderUC.EXPECT().
		PlaceOrder(mock.Anything, mock.AnythingOfType("usecase.PlaceOrderInput")).
		Return(&usecase.PlaceOrderOutput{OrderID: uuid.New(), Status: entity.StatusPending}, nil)

	require.NoError(t, h.PlaceOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestOrderHandler_PlaceOrder_MissingCallerIdentity(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	viewUC := mockUC.NewMockViewUsecase(t)
	accountUC := mockUC.NewMockAccountUsecase(t)
	h := NewOrderHandler(orderUC, viewUC, accountUC, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/order_now", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.PlaceOrder(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderHandler_PlaceOrder_RejectsBadDishID(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	viewUC := mockUC.NewMockViewUsecase(t)
	accountUC := mockUC.NewMockAccountUsecase(t)
	h := NewOrderHandler(orderUC, viewUC, accountUC, nil)

	body := `{"restaurant_id":"` + uuid.New().String() + `","dish_ids":["nonsense"],"total":10}`

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/order_now", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())

	require.NoError(t, h.PlaceOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_PlaceOrder_RejectsZeroTotal(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	viewUC := mockUC.NewMockViewUsecase(t)
	accountUC := mockUC.NewMockAccountUsecase(t)
	h := NewOrderHandler(orderUC, viewUC, accountUC, nil)

	body := `{"restaurant_id":"` + uuid.New().String() + `","dish_ids":["` + uuid.New().String() + `"],"total":0}`

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/order_now", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())

	err := h.PlaceOrder(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	viewUC := mockUC.NewMockViewUsecase(t)
	accountUC := mockUC.NewMockAccountUsecase(t)
	h := NewOrderHandler(orderUC, viewUC, accountUC, nil)

	orderID := uuid.New()
	partnerID := uuid.New()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPut, "/order/"+orderID.String(), strings.NewReader(`{"status":"REST_ACCEPTED"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	orderUC.EXPECT().
		UpdateStatus(mock.Anything, usecase.UpdateStatusInput{
			OrderID: orderID,
			Status:  entity.StatusRestAccepted,
		}).
		Return(&usecase.UpdateStatusOutput{
			OrderID:           orderID,
			Status:            entity.StatusRestAccepted,
			DeliveryPartnerID: &partnerID,
		}, nil)

	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), partnerID.String())
}

func TestOrderHandler_GetOrder(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	viewUC := mockUC.NewMockViewUsecase(t)
	accountUC := mockUC.NewMockAccountUsecase(t)
	h := NewOrderHandler(orderUC, viewUC, accountUC, nil)

	orderID := uuid.New()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/order/"+orderID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	viewUC.EXPECT().
		GetOrderView(mock.Anything, orderID).
		Return(&usecase.OrderView{
			Order: &usecase.OrderSection{ID: orderID, Status: "PENDING"},
		}, nil)

	require.NoError(t, h.GetOrder(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), orderID.String())
}
