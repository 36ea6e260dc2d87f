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

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

// Create persists a new restaurant account with its listing profile.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required restaurant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

// FindByID retrieves a restaurant by its unique ID.
func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by ID")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// FindByUsername retrieves a restaurant by its login handle.
func (repo *restaurantRepository) FindByUsername(ctx context.Context, username string) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by username")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// FindAll retrieves every restaurant for the public listing.
func (repo *restaurantRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// Update writes the mutable profile fields of an existing restaurant.
func (repo *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", restaurant.ID).
		Updates(map[string]any{
			"name":                   restaurantM.Name,
			"mobile":                 restaurantM.Mobile,
			"address":                restaurantM.Address,
			"image_url":              restaurantM.ImageURL,
			"cuisine":                restaurantM.Cuisine,
			"open_time":              restaurantM.OpenTime,
			"close_time":             restaurantM.CloseTime,
			"rating":                 restaurantM.Rating,
			"distance":               restaurantM.Distance,
			"offers":                 restaurantM.Offers,
			"reviews":                restaurantM.Reviews,
			"expected_delivery_time": restaurantM.ExpectedDeliveryTime,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update restaurant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:                   data.ID,
		Username:             data.Username,
		PasswordHash:         data.PasswordHash,
		Name:                 data.Name,
		Mobile:               data.Mobile,
		Address:              data.Address,
		ImageURL:             data.ImageURL,
		Cuisine:              data.Cuisine,
		OpenTime:             data.OpenTime,
		CloseTime:            data.CloseTime,
		Rating:               data.Rating,
		Distance:             data.Distance,
		Offers:               data.Offers,
		Reviews:              data.Reviews,
		ExpectedDeliveryTime: data.ExpectedDeliveryTime,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	return &model.RestaurantModel{
		ID:                   data.ID,
		Username:             data.Username,
		PasswordHash:         data.PasswordHash,
		Name:                 data.Name,
		Mobile:               data.Mobile,
		Address:              data.Address,
		ImageURL:             data.ImageURL,
		Cuisine:              data.Cuisine,
		OpenTime:             data.OpenTime,
		CloseTime:            data.CloseTime,
		Rating:               data.Rating,
		Distance:             data.Distance,
		Offers:               data.Offers,
		Reviews:              data.Reviews,
		ExpectedDeliveryTime: data.ExpectedDeliveryTime,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
