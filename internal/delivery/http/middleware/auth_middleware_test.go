package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"platter/internal/domain/entity"
	"platter/internal/domain/service"
	mockSvc "platter/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeAuth(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/order/abc", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))

	return rec, c, reached
}

func TestAuthMiddleware_Authenticate_SetsIdentity(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	tokenSvc.EXPECT().
		Validate("valid-token").
		Return(&service.Claims{UserID: userID, Role: entity.RoleRestaurant}, nil)

	_, c, reached := invokeAuth(t, m, "Bearer valid-token")
	assert.True(t, reached)
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
	assert.Equal(t, entity.RoleRestaurant, c.Get(ContextKeyRole))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	rec, _, reached := invokeAuth(t, m, "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_RejectsNonBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	rec, _, reached := invokeAuth(t, m, "Basic dXNlcjpwdw==")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().
		Validate("expired").
		Return(nil, errors.New("token is expired"))

	rec, _, reached := invokeAuth(t, m, "Bearer expired")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()

	run := func(role any) (*httptest.ResponseRecorder, bool) {
		req := httptest.NewRequest(http.MethodPost, "/dishes/abc", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set(ContextKeyRole, role)
		}

		reached := false
		next := func(c echo.Context) error {
			reached = true

			return nil
		}
		require.NoError(t, m.RequireRole(entity.RoleRestaurant)(next)(c))

		return rec, reached
	}

	rec, reached := run(entity.RoleRestaurant)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, reached = run(entity.RoleCustomer)
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, reached = run(nil)
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
