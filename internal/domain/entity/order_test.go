package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_IsValid(t *testing.T) {
	for _, status := range []OrderStatus{
		StatusPending, StatusPaid, StatusRestAccepted,
		StatusPickedUp, StatusDelivered, StatusCancelled,
	} {
		assert.True(t, status.IsValid(), "expected %s to be valid", status)
	}

	assert.False(t, OrderStatus("").IsValid())
	assert.False(t, OrderStatus("SHIPPED").IsValid())
	assert.False(t, OrderStatus("pending").IsValid())
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending to paid", StatusPending, StatusPaid, true},
		{"pending to accepted", StatusPending, StatusRestAccepted, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to delivered skips pickup", StatusPending, StatusDelivered, false},
		{"paid to accepted", StatusPaid, StatusRestAccepted, true},
		{"paid back to pending", StatusPaid, StatusPending, false},
		{"accepted to picked up", StatusRestAccepted, StatusPickedUp, true},
		{"accepted to delivered", StatusRestAccepted, StatusDelivered, true},
		{"picked up to delivered", StatusPickedUp, StatusDelivered, true},
		{"picked up to cancelled", StatusPickedUp, StatusCancelled, false},
		{"delivered is terminal", StatusDelivered, StatusPending, false},
		{"cancelled is terminal", StatusCancelled, StatusPaid, false},
		{"unknown status has no successors", OrderStatus("SHIPPED"), StatusDelivered, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusRestAccepted.IsTerminal())
	assert.False(t, OrderStatus("SHIPPED").IsTerminal())
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleRestaurant, ParseRole("RESTAURANT"))
	assert.Equal(t, RolePartner, ParseRole("DELIVERY_PARTNER"))
	assert.Equal(t, RoleCustomer, ParseRole("CUSTOMER"))
	assert.Equal(t, RoleCustomer, ParseRole(""))
	assert.Equal(t, RoleCustomer, ParseRole("restaurant"))
}
