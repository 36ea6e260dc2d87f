package impl

import (
	"context"
	"log/slog"

	deliverycontext "platter/internal/delivery/context"
	"platter/internal/domain/entity"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/repository"
	"platter/internal/errors"
	"platter/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// viewService implements the ViewUsecase interface. It joins orders
// with their restaurant, customer, partner, and dishes into the
// composite shapes the API returns.
type viewService struct {
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	partnerRepo    repository.PartnerRepository
	dishRepo       repository.DishRepository
	orderRepo      repository.OrderRepository
	logger         *slog.Logger
}

// ViewServiceParams holds dependencies for viewService, injected by Fx.
type ViewServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	RestaurantRepo repository.RestaurantRepository
	PartnerRepo    repository.PartnerRepository
	DishRepo       repository.DishRepository
	OrderRepo      repository.OrderRepository
	Logger         *slog.Logger
}

// NewViewService is the constructor for viewService.
func NewViewService(params ViewServiceParams) usecase.ViewUsecase {
	return &viewService{
		userRepo:       params.UserRepo,
		restaurantRepo: params.RestaurantRepo,
		partnerRepo:    params.PartnerRepo,
		dishRepo:       params.DishRepo,
		orderRepo:      params.OrderRepo,
		logger:         params.Logger,
	}
}

func (srv *viewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOrderView returns the fully joined picture of one order.
func (srv *viewService) GetOrderView(ctx context.Context, orderID uuid.UUID) (*usecase.OrderView, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, err
	}

	return srv.assemble(ctx, order)
}

// ListRestaurantOrders returns the composite history for one
// restaurant, most recent first. The restaurant must exist even when
// it has no orders.
func (srv *viewService) ListRestaurantOrders(ctx context.Context, restaurantID uuid.UUID) ([]*usecase.OrderView, error) {
	if _, err := srv.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, err
	}

	orders, err := srv.orderRepo.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	return srv.assembleAll(ctx, orders)
}

// ListPartnerOrders returns the composite history for one delivery
// partner, most recent first.
func (srv *viewService) ListPartnerOrders(ctx context.Context, partnerID uuid.UUID) ([]*usecase.OrderView, error) {
	if _, err := srv.partnerRepo.FindByID(ctx, partnerID); err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrPartnerNotFound
		}

		return nil, err
	}

	orders, err := srv.orderRepo.FindByPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	return srv.assembleAll(ctx, orders)
}

// ListCustomerOrders returns the composite history for one customer,
// most recent first.
func (srv *viewService) ListCustomerOrders(ctx context.Context, userID uuid.UUID) ([]*usecase.OrderView, error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	orders, err := srv.orderRepo.FindByCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.assembleAll(ctx, orders)
}

func (srv *viewService) assembleAll(ctx context.Context, orders []*entity.Order) ([]*usecase.OrderView, error) {
	views := make([]*usecase.OrderView, 0, len(orders))
	for _, order := range orders {
		view, err := srv.assemble(ctx, order)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

// assemble joins one order with its related records. The user section
// always describes the order's own customer regardless of who asked.
func (srv *viewService) assemble(ctx context.Context, order *entity.Order) (*usecase.OrderView, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, order.RestaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order restaurant")
	}

	customer, err := srv.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order customer")
	}

	var partnerSection *usecase.PartnerSection
	if order.DeliveryPartnerID != nil {
		partner, err := srv.partnerRepo.FindByID(ctx, *order.DeliveryPartnerID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load order partner")
		}
		partnerSection = &usecase.PartnerSection{
			ID:     partner.ID,
			Name:   partner.Name,
			Mobile: partner.Mobile,
			Rating: partner.Rating,
		}
	}

	links, err := srv.orderRepo.FindDishesByOrder(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order dishes")
	}

	dishes := make([]*usecase.DishSection, 0, len(links))
	for _, link := range links {
		dish, err := srv.dishRepo.FindByID(ctx, link.DishID)
		if err != nil {
			// A dish row disappearing after placement is a data problem
			// worth surfacing, not silently dropping.
			srv.log(ctx).WarnContext(ctx, "order references missing dish",
				slog.String("orderId", order.ID.String()),
				slog.String("dishId", link.DishID.String()),
			)

			continue
		}
		dishes = append(dishes, &usecase.DishSection{
			ID:           dish.ID,
			RestaurantID: dish.RestaurantID,
			Name:         dish.Name,
			Description:  dish.Description,
			ImageURL:     dish.ImageURL,
			Price:        dish.Price,
			Rating:       dish.Rating,
		})
	}

	return &usecase.OrderView{
		Order: &usecase.OrderSection{
			ID:                order.ID,
			RestaurantID:      order.RestaurantID,
			UserID:            order.UserID,
			DeliveryPartnerID: order.DeliveryPartnerID,
			Total:             order.Total,
			Status:            order.Status.String(),
			CreatedAt:         order.CreatedAt,
		},
		Restaurant: &usecase.RestaurantSection{
			ID:                   restaurant.ID,
			Name:                 restaurant.Name,
			Address:              restaurant.Address,
			Mobile:               restaurant.Mobile,
			ImageURL:             restaurant.ImageURL,
			Cuisine:              restaurant.Cuisine,
			Rating:               restaurant.Rating,
			Distance:             restaurant.Distance,
			Offers:               restaurant.Offers,
			Reviews:              restaurant.Reviews,
			OpensAt:              restaurant.OpenTime,
			ClosesAt:             restaurant.CloseTime,
			ExpectedDeliveryTime: restaurant.ExpectedDeliveryTime,
		},
		User: &usecase.CustomerSection{
			ID:         customer.ID,
			Name:       customer.Name,
			Address:    customer.Address,
			Mobile:     customer.Mobile,
			Membership: customer.Membership,
		},
		DeliveryPartner: partnerSection,
		Dishes:          dishes,
	}, nil
}
