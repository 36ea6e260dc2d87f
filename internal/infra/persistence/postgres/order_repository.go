package postgres

import (
	"context"

	"platter/internal/domain/entity"
	domainerrors "platter/internal/domain/errors"
	"platter/internal/domain/repository"
	"platter/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid customer or restaurant reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// Update writes the status and partner assignment of an existing order.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":              order.Status.String(),
			"delivery_partner_id": order.DeliveryPartnerID,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// AddDish creates one link row pinning a dish to an order.
func (repo *orderRepository) AddDish(ctx context.Context, link *entity.OrderDish) error {
	linkM := &model.OrderDishModel{
		OrderID: link.OrderID,
		DishID:  link.DishID,
	}

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDishNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link dish to order")
	}

	return nil
}

// FindDishesByOrder retrieves the link rows for one order.
func (repo *orderRepository) FindDishesByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderDish, error) {
	var linkModels []*model.OrderDishModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find dishes by order")
	}

	links := make([]*entity.OrderDish, 0, len(linkModels))
	for _, linkM := range linkModels {
		links = append(links, &entity.OrderDish{
			OrderID: linkM.OrderID,
			DishID:  linkM.DishID,
		})
	}

	return links, nil
}

// FindByRestaurant retrieves all orders placed at one restaurant, most recent first.
func (repo *orderRepository) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Order, error) {
	return repo.findOrders(ctx, "restaurant_id = ?", restaurantID)
}

// FindByCustomer retrieves all orders placed by one customer, most recent first.
func (repo *orderRepository) FindByCustomer(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	return repo.findOrders(ctx, "user_id = ?", userID)
}

// FindByPartner retrieves all orders carried by one delivery partner, most recent first.
func (repo *orderRepository) FindByPartner(ctx context.Context, partnerID uuid.UUID) ([]*entity.Order, error) {
	return repo.findOrders(ctx, "delivery_partner_id = ?", partnerID)
}

func (repo *orderRepository) findOrders(ctx context.Context, query string, arg any) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:                data.ID,
		RestaurantID:      data.RestaurantID,
		UserID:            data.UserID,
		DeliveryPartnerID: data.DeliveryPartnerID,
		Total:             data.Total,
		Status:            entity.OrderStatus(data.Status),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:                data.ID,
		RestaurantID:      data.RestaurantID,
		UserID:            data.UserID,
		DeliveryPartnerID: data.DeliveryPartnerID,
		Total:             data.Total,
		Status:            data.Status.String(),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
