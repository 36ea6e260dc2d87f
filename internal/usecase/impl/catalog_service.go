package impl

import (
	"context"
	"log/slog"

	deliverycontext "platter/internal/delivery/context"
	"platter/internal/domain/entity"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/repository"
	"platter/internal/domain/service"
	"platter/internal/errors"
	"platter/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	restaurantRepo repository.RestaurantRepository
	dishRepo       repository.DishRepository
	qrService      service.QRCodeService
	logger         *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	DishRepo       repository.DishRepository
	QRService      service.QRCodeService
	Logger         *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		restaurantRepo: params.RestaurantRepo,
		dishRepo:       params.DishRepo,
		qrService:      params.QRService,
		logger:         params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// findRestaurant resolves a restaurant or the canonical not-found error.
func (srv *catalogService) findRestaurant(ctx context.Context, restaurantID uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, err
	}

	return restaurant, nil
}

// AddDish creates a dish under the owning restaurant; the restaurant must exist.
func (srv *catalogService) AddDish(ctx context.Context, input usecase.AddDishInput) (*entity.Dish, error) {
	if _, err := srv.findRestaurant(ctx, input.RestaurantID); err != nil {
		return nil, err
	}

	dish := &entity.Dish{
		RestaurantID: input.RestaurantID,
		Name:         input.Name,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		Price:        input.Price,
		Rating:       input.Rating,
	}

	if err := srv.dishRepo.Create(ctx, dish); err != nil {
		return nil, err
	}

	srv.log(ctx).InfoContext(ctx, "dish added",
		slog.String("dishId", dish.ID.String()),
		slog.String("restaurantId", input.RestaurantID.String()),
	)

	return dish, nil
}

// UpdateDish mutates an existing dish in place. The restaurant scope
// keeps one restaurant from editing another's menu.
func (srv *catalogService) UpdateDish(ctx context.Context, input usecase.UpdateDishInput) (*entity.Dish, error) {
	dish, err := srv.dishRepo.FindByID(ctx, input.DishID)
	if err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, domainerrors.ErrDishNotFound
		}

		return nil, err
	}

	if dish.RestaurantID != input.RestaurantID {
		return nil, domainerrors.ErrDishNotFound
	}

	dish.Name = input.Name
	dish.Description = input.Description
	dish.ImageURL = input.ImageURL
	dish.Price = input.Price
	dish.Rating = input.Rating

	if err := srv.dishRepo.Update(ctx, dish); err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, domainerrors.ErrDishNotFound
		}

		return nil, err
	}

	return dish, nil
}

// ListDishes returns the restaurant's menu: its listing profile plus its dishes.
func (srv *catalogService) ListDishes(ctx context.Context, restaurantID uuid.UUID) (*usecase.MenuOutput, error) {
	restaurant, err := srv.findRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	dishes, err := srv.dishRepo.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	return &usecase.MenuOutput{
		Restaurant: restaurant,
		Dishes:     dishes,
	}, nil
}

// ListRestaurants returns every restaurant's listing profile.
func (srv *catalogService) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	return srv.restaurantRepo.FindAll(ctx)
}

// MenuQR renders a PNG QR code referencing the restaurant's menu.
func (srv *catalogService) MenuQR(ctx context.Context, restaurantID uuid.UUID) ([]byte, error) {
	if _, err := srv.findRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateMenuQR(restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate menu QR code")
	}

	return png, nil
}
