package impl

import (
	"context"
	"testing"

	"platter/internal/domain/entity"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/repository"
	mockRepo "platter/internal/mocks/repository"
	mockSvc "platter/internal/mocks/service"
	"platter/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceMocks struct {
	restaurantRepo *mockRepo.MockRestaurantRepository
	dishRepo       *mockRepo.MockDishRepository
	qrService      *mockSvc.MockQRCodeService
}

func newCatalogService(t *testing.T) (usecase.CatalogUsecase, *catalogServiceMocks) {
	t.Helper()

	m := &catalogServiceMocks{
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
		dishRepo:       mockRepo.NewMockDishRepository(t),
		qrService:      mockSvc.NewMockQRCodeService(t),
	}

	service := NewCatalogService(CatalogServiceParams{
		RestaurantRepo: m.restaurantRepo,
		DishRepo:       m.dishRepo,
		QRService:      m.qrService,
		Logger:         newDiscardLogger(),
	})

	return service, m
}

func TestCatalogService_AddDish(t *testing.T) {
	service, m := newCatalogService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	dishID := uuid.New()

	m.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(newTestRestaurant(restaurantID), nil)
	m.dishRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Dish")).
		RunAndReturn(func(_ context.Context, dish *entity.Dish) error {
			assert.Equal(t, restaurantID, dish.RestaurantID)
			dish.ID = dishID

			return nil
		})

	dish, err := service.AddDish(ctx, usecase.AddDishInput{
		RestaurantID: restaurantID,
		Name:         "Green Curry",
		Price:        150,
	})
	require.NoError(t, err)
	assert.Equal(t, dishID, dish.ID)
}

func TestCatalogService_AddDish_UnknownRestaurant(t *testing.T) {
	service, m := newCatalogService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	m.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(nil, repository.ErrRestaurantNotFound)

	_, err := service.AddDish(ctx, usecase.AddDishInput{RestaurantID: restaurantID})
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestCatalogService_UpdateDish_OwnershipScoped(t *testing.T) {
	service, m := newCatalogService(t)

	ctx := context.Background()
	dishID := uuid.New()
	ownerID := uuid.New()
	otherID := uuid.New()

	m.dishRepo.EXPECT().
		FindByID(ctx, dishID).
		Return(newTestDish(dishID, ownerID, 100), nil)

	// The caller owns a different restaurant; the dish must look absent.
	_, err := service.UpdateDish(ctx, usecase.UpdateDishInput{
		DishID:       dishID,
		RestaurantID: otherID,
		Name:         "Stolen Dish",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDishNotFound)
}

func TestCatalogService_UpdateDish(t *testing.T) {
	service, m := newCatalogService(t)

	ctx := context.Background()
	dishID := uuid.New()
	restaurantID := uuid.New()

	m.dishRepo.EXPECT().
		FindByID(ctx, dishID).
		Return(newTestDish(dishID, restaurantID, 100), nil)
	m.dishRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Dish")).
		RunAndReturn(func(_ context.Context, dish *entity.Dish) error {
			assert.Equal(t, "Pad See Ew", dish.Name)
			assert.Equal(t, 130.0, dish.Price)

			return nil
		})

	dish, err := service.UpdateDish(ctx, usecase.UpdateDishInput{
		DishID:       dishID,
		RestaurantID: restaurantID,
		Name:         "Pad See Ew",
		Price:        130,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pad See Ew", dish.Name)
}

func TestCatalogService_ListDishes(t *testing.T) {
	service, m := newCatalogService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	dishes := []*entity.Dish{
		newTestDish(uuid.New(), restaurantID, 100),
		newTestDish(uuid.New(), restaurantID, 150),
	}

	m.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(newTestRestaurant(restaurantID), nil)
	m.dishRepo.EXPECT().FindByRestaurant(ctx, restaurantID).Return(dishes, nil)

	menu, err := service.ListDishes(ctx, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, restaurantID, menu.Restaurant.ID)
	assert.Len(t, menu.Dishes, 2)
}

func TestCatalogService_ListDishes_UnknownRestaurant(t *testing.T) {
	service, m := newCatalogService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	m.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(nil, repository.ErrRestaurantNotFound)

	_, err := service.ListDishes(ctx, restaurantID)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestCatalogService_ListRestaurants(t *testing.T) {
	service, m := newCatalogService(t)

	ctx := context.Background()
	restaurants := []*entity.Restaurant{
		newTestRestaurant(uuid.New()),
		newTestRestaurant(uuid.New()),
	}

	m.restaurantRepo.EXPECT().FindAll(ctx).Return(restaurants, nil)

	listed, err := service.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestCatalogService_MenuQR(t *testing.T) {
	service, m := newCatalogService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	m.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(newTestRestaurant(restaurantID), nil)
	m.qrService.EXPECT().GenerateMenuQR(restaurantID).Return(png, nil)

	data, err := service.MenuQR(ctx, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, png, data)
}

func TestCatalogService_MenuQR_UnknownRestaurant(t *testing.T) {
	service, m := newCatalogService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	m.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(nil, repository.ErrRestaurantNotFound)

	_, err := service.MenuQR(ctx, restaurantID)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}
