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

// dishRepository implements the repository.DishRepository interface.
type dishRepository struct {
	db *gorm.DB
}

// NewDishRepository is the constructor for dishRepository.
func NewDishRepository(db *gorm.DB) repository.DishRepository {
	return &dishRepository{
		db: db,
	}
}

// Create persists a new dish under its owning restaurant.
func (repo *dishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	dishM := fromDishDomain(dish)

	if err := repo.db.WithContext(ctx).Create(dishM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required dish information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dish")
	}

	dish.ID = dishM.ID
	dish.CreatedAt = dishM.CreatedAt
	dish.UpdatedAt = dishM.UpdatedAt

	return nil
}

// FindByID retrieves a dish by its unique ID.
func (repo *dishRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error) {
	var dishM model.DishModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dishM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDishNotFound
		}

		return nil, errors.Wrap(err, "failed to find dish by ID")
	}

	return toDishDomain(&dishM), nil
}

// FindByRestaurant retrieves all dishes owned by one restaurant.
func (repo *dishRepository) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Dish, error) {
	var dishModels []*model.DishModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at ASC").
		Find(&dishModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find dishes by restaurant")
	}

	dishes := make([]*entity.Dish, 0, len(dishModels))
	for _, dishM := range dishModels {
		dishes = append(dishes, toDishDomain(dishM))
	}

	return dishes, nil
}

// Update writes the mutable fields of an existing dish. Ownership is
// part of the WHERE clause so a dish can never migrate between
// restaurants through an update.
func (repo *dishRepository) Update(ctx context.Context, dish *entity.Dish) error {
	dishM := fromDishDomain(dish)

	result := repo.db.WithContext(ctx).
		Model(&model.DishModel{}).
		Where("id = ? AND restaurant_id = ?", dish.ID, dish.RestaurantID).
		Updates(map[string]any{
			"name":        dishM.Name,
			"description": dishM.Description,
			"image_url":   dishM.ImageURL,
			"price":       dishM.Price,
			"rating":      dishM.Rating,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update dish")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDishNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDishDomain(data *model.DishModel) *entity.Dish {
	if data == nil {
		return nil
	}

	return &entity.Dish{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Name:         data.Name,
		Description:  data.Description,
		ImageURL:     data.ImageURL,
		Price:        data.Price,
		Rating:       data.Rating,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromDishDomain(data *entity.Dish) *model.DishModel {
	if data == nil {
		return nil
	}

	return &model.DishModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Name:         data.Name,
		Description:  data.Description,
		ImageURL:     data.ImageURL,
		Price:        data.Price,
		Rating:       data.Rating,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
