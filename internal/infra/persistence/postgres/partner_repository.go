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

// partnerRepository implements the repository.PartnerRepository interface.
type partnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository is the constructor for partnerRepository.
func NewPartnerRepository(db *gorm.DB) repository.PartnerRepository {
	return &partnerRepository{
		db: db,
	}
}

// Create persists a new delivery partner account.
func (repo *partnerRepository) Create(ctx context.Context, partner *entity.DeliveryPartner) error {
	partnerM := fromPartnerDomain(partner)

	if err := repo.db.WithContext(ctx).Create(partnerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required partner information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery partner")
	}

	partner.ID = partnerM.ID
	partner.CreatedAt = partnerM.CreatedAt
	partner.UpdatedAt = partnerM.UpdatedAt

	return nil
}

// FindByID retrieves a delivery partner by their unique ID.
func (repo *partnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryPartner, error) {
	var partnerM model.DeliveryPartnerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&partnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner by ID")
	}

	return toPartnerDomain(&partnerM), nil
}

// FindByUsername retrieves a delivery partner by their login handle.
func (repo *partnerRepository) FindByUsername(ctx context.Context, username string) (*entity.DeliveryPartner, error) {
	var partnerM model.DeliveryPartnerModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&partnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner by username")
	}

	return toPartnerDomain(&partnerM), nil
}

// FindFirst retrieves the oldest registered delivery partner.
func (repo *partnerRepository) FindFirst(ctx context.Context) (*entity.DeliveryPartner, error) {
	var partnerM model.DeliveryPartnerModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		First(&partnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find first partner")
	}

	return toPartnerDomain(&partnerM), nil
}

// Update writes the mutable fields of an existing delivery partner.
func (repo *partnerRepository) Update(ctx context.Context, partner *entity.DeliveryPartner) error {
	partnerM := fromPartnerDomain(partner)

	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryPartnerModel{}).
		Where("id = ?", partner.ID).
		Updates(map[string]any{
			"name":   partnerM.Name,
			"mobile": partnerM.Mobile,
			"rating": partnerM.Rating,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update delivery partner")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPartnerNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPartnerDomain(data *model.DeliveryPartnerModel) *entity.DeliveryPartner {
	if data == nil {
		return nil
	}

	return &entity.DeliveryPartner{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		Mobile:       data.Mobile,
		Rating:       data.Rating,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromPartnerDomain(data *entity.DeliveryPartner) *model.DeliveryPartnerModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryPartnerModel{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		Mobile:       data.Mobile,
		Rating:       data.Rating,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
