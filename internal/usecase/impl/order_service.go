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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager      repository.TransactionManager
	restaurantRepo repository.RestaurantRepository
	partnerRepo    repository.PartnerRepository
	orderRepo      repository.OrderRepository
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RestaurantRepo repository.RestaurantRepository
	PartnerRepo    repository.PartnerRepository
	OrderRepo      repository.OrderRepository
	Logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:      params.TxManager,
		restaurantRepo: params.RestaurantRepo,
		partnerRepo:    params.PartnerRepo,
		orderRepo:      params.OrderRepo,
		logger:         params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder creates an order and its dish link rows in one
// transaction. Unknown dish IDs are skipped rather than failing the
// order; the skipped IDs are reported back to the caller. The total is
// stored as supplied and never recomputed from dish prices.
func (srv *orderService) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	if input.UserID == uuid.Nil || input.RestaurantID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("customer and restaurant are required")
	}
	if len(input.DishIDs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("an order needs at least one dish")
	}
	if input.Total <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("total must be positive")
	}

	status := input.Status
	if status == "" {
		status = entity.StatusPending
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	if _, err := srv.restaurantRepo.FindByID(ctx, input.RestaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, err
	}

	order := &entity.Order{
		RestaurantID: input.RestaurantID,
		UserID:       input.UserID,
		Total:        input.Total,
		Status:       status,
	}
	var skipped []uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		dishRepo := repoFactory.DishRepo()

		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}

		for _, dishID := range input.DishIDs {
			if _, err := dishRepo.FindByID(ctx, dishID); err != nil {
				if errors.Is(err, repository.ErrDishNotFound) {
					skipped = append(skipped, dishID)

					continue
				}

				return err
			}

			link := &entity.OrderDish{OrderID: order.ID, DishID: dishID}
			if err := orderRepo.AddDish(ctx, link); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).InfoContext(ctx, "order placed",
		slog.String("orderId", order.ID.String()),
		slog.String("userId", input.UserID.String()),
		slog.String("restaurantId", input.RestaurantID.String()),
		slog.Int("dishes", len(input.DishIDs)-len(skipped)),
		slog.Int("skippedDishes", len(skipped)),
	)

	return &usecase.PlaceOrderOutput{
		OrderID:        order.ID,
		Status:         order.Status,
		SkippedDishIDs: skipped,
	}, nil
}

// UpdateStatus applies one lifecycle transition. Moving into
// REST_ACCEPTED also assigns the first available delivery partner;
// with no partners registered the transition fails and the order is
// left untouched.
func (srv *orderService) UpdateStatus(ctx context.Context, input usecase.UpdateStatusInput) (*usecase.UpdateStatusOutput, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, err
	}

	if !order.Status.CanTransitionTo(input.Status) {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage(
			"cannot move from " + order.Status.String() + " to " + input.Status.String())
	}

	if input.Status == entity.StatusRestAccepted {
		partner, err := srv.partnerRepo.FindFirst(ctx)
		if err != nil {
			if errors.Is(err, repository.ErrPartnerNotFound) {
				return nil, domainerrors.ErrNoPartnersAvailable
			}

			return nil, err
		}
		order.DeliveryPartnerID = &partner.ID
	}

	order.Status = input.Status
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	srv.log(ctx).InfoContext(ctx, "order status updated",
		slog.String("orderId", order.ID.String()),
		slog.String("status", order.Status.String()),
	)

	return &usecase.UpdateStatusOutput{
		OrderID:           order.ID,
		Status:            order.Status,
		DeliveryPartnerID: order.DeliveryPartnerID,
	}, nil
}
