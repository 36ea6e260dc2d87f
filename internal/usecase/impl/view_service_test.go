package impl

import (
	"context"
	"testing"
	"time"

	"platter/internal/domain/entity"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/repository"
	mockRepo "platter/internal/mocks/repository"
	"platter/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type viewServiceMocks struct {
	userRepo       *mockRepo.MockUserRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
	partnerRepo    *mockRepo.MockPartnerRepository
	dishRepo       *mockRepo.MockDishRepository
	orderRepo      *mockRepo.MockOrderRepository
}

func newViewService(t *testing.T) (usecase.ViewUsecase, *viewServiceMocks) {
	t.Helper()

	m := &viewServiceMocks{
		userRepo:       mockRepo.NewMockUserRepository(t),
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
		partnerRepo:    mockRepo.NewMockPartnerRepository(t),
		dishRepo:       mockRepo.NewMockDishRepository(t),
		orderRepo:      mockRepo.NewMockOrderRepository(t),
	}

	service := NewViewService(ViewServiceParams{
		UserRepo:       m.userRepo,
		RestaurantRepo: m.restaurantRepo,
		PartnerRepo:    m.partnerRepo,
		DishRepo:       m.dishRepo,
		OrderRepo:      m.orderRepo,
		Logger:         newDiscardLogger(),
	})

	return service, m
}

func TestViewService_GetOrderView_JoinsAllSections(t *testing.T) {
	service, m := newViewService(t)

	ctx := context.Background()
	orderID := uuid.New()
	restaurantID := uuid.New()
	userID := uuid.New()
	partnerID := uuid.New()
	dishID := uuid.New()

	order := &entity.Order{
		ID:                orderID,
		RestaurantID:      restaurantID,
		UserID:            userID,
		DeliveryPartnerID: &partnerID,
		Total:             240,
		Status:            entity.StatusRestAccepted,
	}

	m.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	m.restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(newTestRestaurant(restaurantID), nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(newTestCustomer(userID), nil)
	m.partnerRepo.EXPECT().FindByID(ctx, partnerID).Return(newTestPartner(partnerID), nil)
	m.orderRepo.EXPECT().
		FindDishesByOrder(ctx, orderID).
		Return([]*entity.OrderDish{{OrderID: orderID, DishID: dishID}}, nil)
	m.dishRepo.EXPECT().FindByID(ctx, dishID).Return(newTestDish(dishID, restaurantID, 240), nil)

	view, err := service.GetOrderView(ctx, orderID)
	require.NoError(t, err)

	assert.Equal(t, orderID, view.Order.ID)
	assert.Equal(t, "REST_ACCEPTED", view.Order.Status)
	assert.Equal(t, restaurantID, view.Restaurant.ID)
	// The user section is the order's own customer, not the caller.
	assert.Equal(t, userID, view.User.ID)
	require.NotNil(t, view.DeliveryPartner)
	assert.Equal(t, partnerID, view.DeliveryPartner.ID)
	require.Len(t, view.Dishes, 1)
	assert.Equal(t, dishID, view.Dishes[0].ID)
}

func TestViewService_GetOrderView_CarriesListingAndDishDetail(t *testing.T) {
	service, m := newViewService(t)

	ctx := context.Background()
	orderID := uuid.New()
	restaurantID := uuid.New()
	userID := uuid.New()
	dishID := uuid.New()

	order := &entity.Order{
		ID:           orderID,
		RestaurantID: restaurantID,
		UserID:       userID,
		Status:       entity.StatusPending,
	}
	restaurant := newTestRestaurant(restaurantID)
	dish := newTestDish(dishID, restaurantID, 180)

	m.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	m.restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(restaurant, nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(newTestCustomer(userID), nil)
	m.orderRepo.EXPECT().
		FindDishesByOrder(ctx, orderID).
		Return([]*entity.OrderDish{{OrderID: orderID, DishID: dishID}}, nil)
	m.dishRepo.EXPECT().FindByID(ctx, dishID).Return(dish, nil)

	view, err := service.GetOrderView(ctx, orderID)
	require.NoError(t, err)

	assert.Equal(t, restaurant.Distance, view.Restaurant.Distance)
	assert.Equal(t, restaurant.Offers, view.Restaurant.Offers)
	assert.Equal(t, restaurant.Reviews, view.Restaurant.Reviews)
	assert.Equal(t, restaurant.OpenTime, view.Restaurant.OpensAt)
	assert.Equal(t, restaurant.CloseTime, view.Restaurant.ClosesAt)

	require.Len(t, view.Dishes, 1)
	assert.Equal(t, restaurantID, view.Dishes[0].RestaurantID)
	assert.Equal(t, dish.Description, view.Dishes[0].Description)
	assert.Equal(t, dish.ImageURL, view.Dishes[0].ImageURL)
}

func TestViewService_GetOrderView_NoPartnerSectionBeforeAssignment(t *testing.T) {
	service, m := newViewService(t)

	ctx := context.Background()
	orderID := uuid.New()
	restaurantID := uuid.New()
	userID := uuid.New()

	order := &entity.Order{
		ID:           orderID,
		RestaurantID: restaurantID,
		UserID:       userID,
		Status:       entity.StatusPending,
	}

	m.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	m.restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(newTestRestaurant(restaurantID), nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(newTestCustomer(userID), nil)
	m.orderRepo.EXPECT().FindDishesByOrder(ctx, orderID).Return(nil, nil)

	view, err := service.GetOrderView(ctx, orderID)
	require.NoError(t, err)
	assert.Nil(t, view.DeliveryPartner)
	assert.Empty(t, view.Dishes)
}

func TestViewService_GetOrderView_UnknownOrder(t *testing.T) {
	service, m := newViewService(t)

	ctx := context.Background()
	orderID := uuid.New()

	m.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := service.GetOrderView(ctx, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestViewService_ListCustomerOrders_PreservesRepositoryOrdering(t *testing.T) {
	service, m := newViewService(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	now := time.Now()
	newer := &entity.Order{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		UserID:       userID,
		Status:       entity.StatusPending,
		CreatedAt:    now,
	}
	older := &entity.Order{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		UserID:       userID,
		Status:       entity.StatusDelivered,
		CreatedAt:    now.Add(-time.Hour),
	}

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(newTestCustomer(userID), nil)
	m.orderRepo.EXPECT().
		FindByCustomer(ctx, userID).
		Return([]*entity.Order{newer, older}, nil)
	m.restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(newTestRestaurant(restaurantID), nil).Times(2)
	m.orderRepo.EXPECT().FindDishesByOrder(ctx, newer.ID).Return(nil, nil)
	m.orderRepo.EXPECT().FindDishesByOrder(ctx, older.ID).Return(nil, nil)

	views, err := service.ListCustomerOrders(ctx, userID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, newer.ID, views[0].Order.ID)
	assert.Equal(t, older.ID, views[1].Order.ID)
}

func TestViewService_ListRestaurantOrders_EmptyHistoryIsNotAnError(t *testing.T) {
	service, m := newViewService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	m.restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(newTestRestaurant(restaurantID), nil)
	m.orderRepo.EXPECT().FindByRestaurant(ctx, restaurantID).Return(nil, nil)

	views, err := service.ListRestaurantOrders(ctx, restaurantID)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestViewService_ListPartnerOrders_UnknownPartner(t *testing.T) {
	service, m := newViewService(t)

	ctx := context.Background()
	partnerID := uuid.New()

	m.partnerRepo.EXPECT().FindByID(ctx, partnerID).Return(nil, repository.ErrPartnerNotFound)

	_, err := service.ListPartnerOrders(ctx, partnerID)
	assert.ErrorIs(t, err, domainerrors.ErrPartnerNotFound)
}

func TestViewService_GetOrderView_MissingDishIsDropped(t *testing.T) {
	service, m := newViewService(t)

	ctx := context.Background()
	orderID := uuid.New()
	restaurantID := uuid.New()
	userID := uuid.New()
	goneDishID := uuid.New()
	dishID := uuid.New()

	order := &entity.Order{
		ID:           orderID,
		RestaurantID: restaurantID,
		UserID:       userID,
		Status:       entity.StatusPending,
	}

	m.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	m.restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(newTestRestaurant(restaurantID), nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(newTestCustomer(userID), nil)
	m.orderRepo.EXPECT().
		FindDishesByOrder(ctx, orderID).
		Return([]*entity.OrderDish{
			{OrderID: orderID, DishID: goneDishID},
			{OrderID: orderID, DishID: dishID},
		}, nil)
	m.dishRepo.EXPECT().FindByID(ctx, goneDishID).Return(nil, repository.ErrDishNotFound)
	m.dishRepo.EXPECT().FindByID(ctx, dishID).Return(newTestDish(dishID, restaurantID, 100), nil)

	view, err := service.GetOrderView(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, view.Dishes, 1)
	assert.Equal(t, dishID, view.Dishes[0].ID)
}
