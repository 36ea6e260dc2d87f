package impl

import (
	"context"
	"testing"

	"platter/internal/domain/entity"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/repository"
	mockRepo "platter/internal/mocks/repository"
	"platter/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	txManager      *mockRepo.MockTransactionManager
	restaurantRepo *mockRepo.MockRestaurantRepository
	partnerRepo    *mockRepo.MockPartnerRepository
	orderRepo      *mockRepo.MockOrderRepository
	dishRepo       *mockRepo.MockDishRepository
	factory        *mockRepo.MockRepositoryFactory
}

func newOrderService(t *testing.T) (usecase.OrderUsecase, *orderServiceMocks) {
	t.Helper()

	m := &orderServiceMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
		partnerRepo:    mockRepo.NewMockPartnerRepository(t),
		orderRepo:      mockRepo.NewMockOrderRepository(t),
		dishRepo:       mockRepo.NewMockDishRepository(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
	}

	service := NewOrderService(OrderServiceParams{
		TxManager:      m.txManager,
		RestaurantRepo: m.restaurantRepo,
		PartnerRepo:    m.partnerRepo,
		OrderRepo:      m.orderRepo,
		Logger:         newDiscardLogger(),
	})

	return service, m
}

// passthroughTx wires the transaction mock so the callback runs
// against the mock factory, the way the real manager hands it a
// transaction-bound factory.
func (m *orderServiceMocks) passthroughTx(ctx context.Context) {
	m.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

func TestOrderService_PlaceOrder_LinksEveryDish(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()
	dishIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	orderID := uuid.New()

	m.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(newTestRestaurant(restaurantID), nil)

	m.passthroughTx(ctx)
	m.factory.EXPECT().OrderRepo().Return(m.orderRepo)
	m.factory.EXPECT().DishRepo().Return(m.dishRepo)

	m.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			order.ID = orderID

			return nil
		})

	for _, dishID := range dishIDs {
		m.dishRepo.EXPECT().
			FindByID(ctx, dishID).
			Return(newTestDish(dishID, restaurantID, 120), nil)
		m.orderRepo.EXPECT().
			AddDish(ctx, &entity.OrderDish{OrderID: orderID, DishID: dishID}).
			Return(nil)
	}

	output, err := service.PlaceOrder(ctx, usecase.PlaceOrderInput{
		UserID:       userID,
		RestaurantID: restaurantID,
		DishIDs:      dishIDs,
		Total:        360,
	})
	require.NoError(t, err)
	assert.Equal(t, orderID, output.OrderID)
	assert.Equal(t, entity.StatusPending, output.Status)
	assert.Empty(t, output.SkippedDishIDs)
}

func TestOrderService_PlaceOrder_SkipsUnknownDishes(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	knownID := uuid.New()
	unknownID := uuid.New()
	orderID := uuid.New()

	m.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(newTestRestaurant(restaurantID), nil)

	m.passthroughTx(ctx)
	m.factory.EXPECT().OrderRepo().Return(m.orderRepo)
	m.factory.EXPECT().DishRepo().Return(m.dishRepo)

	m.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			order.ID = orderID

			return nil
		})

	m.dishRepo.EXPECT().
		FindByID(ctx, knownID).
		Return(newTestDish(knownID, restaurantID, 80), nil)
	m.dishRepo.EXPECT().
		FindByID(ctx, unknownID).
		Return(nil, repository.ErrDishNotFound)
	m.orderRepo.EXPECT().
		AddDish(ctx, &entity.OrderDish{OrderID: orderID, DishID: knownID}).
		Return(nil)

	output, err := service.PlaceOrder(ctx, usecase.PlaceOrderInput{
		UserID:       uuid.New(),
		RestaurantID: restaurantID,
		DishIDs:      []uuid.UUID{knownID, unknownID},
		Total:        80,
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{unknownID}, output.SkippedDishIDs)
}

func TestOrderService_PlaceOrder_UnknownRestaurant(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	m.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(nil, repository.ErrRestaurantNotFound)

	_, err := service.PlaceOrder(ctx, usecase.PlaceOrderInput{
		UserID:       uuid.New(),
		RestaurantID: restaurantID,
		DishIDs:      []uuid.UUID{uuid.New()},
		Total:        50,
	})
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestOrderService_PlaceOrder_RejectsEmptyDishList(t *testing.T) {
	service, _ := newOrderService(t)

	_, err := service.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		UserID:       uuid.New(),
		RestaurantID: uuid.New(),
		Total:        50,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestOrderService_PlaceOrder_RejectsNonPositiveTotal(t *testing.T) {
	service, _ := newOrderService(t)

	for _, total := range []float64{0, -9.50} {
		_, err := service.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
			UserID:       uuid.New(),
			RestaurantID: uuid.New(),
			DishIDs:      []uuid.UUID{uuid.New()},
			Total:        total,
		})
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.HTTPCode())
	}
}

func TestOrderService_PlaceOrder_RejectsUnknownStatus(t *testing.T) {
	service, _ := newOrderService(t)

	_, err := service.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		UserID:       uuid.New(),
		RestaurantID: uuid.New(),
		DishIDs:      []uuid.UUID{uuid.New()},
		Total:        50,
		Status:       entity.OrderStatus("SHIPPED"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_UpdateStatus_AcceptAssignsFirstPartner(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	partnerID := uuid.New()

	order := &entity.Order{
		ID:           orderID,
		RestaurantID: uuid.New(),
		UserID:       uuid.New(),
		Status:       entity.StatusPaid,
	}

	m.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	m.partnerRepo.EXPECT().FindFirst(ctx).Return(newTestPartner(partnerID), nil)
	m.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, updated *entity.Order) error {
			assert.Equal(t, entity.StatusRestAccepted, updated.Status)
			require.NotNil(t, updated.DeliveryPartnerID)
			assert.Equal(t, partnerID, *updated.DeliveryPartnerID)

			return nil
		})

	output, err := service.UpdateStatus(ctx, usecase.UpdateStatusInput{
		OrderID: orderID,
		Status:  entity.StatusRestAccepted,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRestAccepted, output.Status)
	require.NotNil(t, output.DeliveryPartnerID)
	assert.Equal(t, partnerID, *output.DeliveryPartnerID)
}

func TestOrderService_UpdateStatus_NoPartnersLeavesOrderUntouched(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	order := &entity.Order{
		ID:     orderID,
		Status: entity.StatusPaid,
	}

	m.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	m.partnerRepo.EXPECT().FindFirst(ctx).Return(nil, repository.ErrPartnerNotFound)

	_, err := service.UpdateStatus(ctx, usecase.UpdateStatusInput{
		OrderID: orderID,
		Status:  entity.StatusRestAccepted,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNoPartnersAvailable)
	// No Update expectation: the order must not be written.
}

func TestOrderService_UpdateStatus_RejectsIllegalTransition(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	order := &entity.Order{
		ID:     orderID,
		Status: entity.StatusDelivered,
	}

	m.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	_, err := service.UpdateStatus(ctx, usecase.UpdateStatusInput{
		OrderID: orderID,
		Status:  entity.StatusCancelled,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode())
}

func TestOrderService_UpdateStatus_UnknownOrder(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	m.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := service.UpdateStatus(ctx, usecase.UpdateStatusInput{
		OrderID: orderID,
		Status:  entity.StatusPaid,
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
