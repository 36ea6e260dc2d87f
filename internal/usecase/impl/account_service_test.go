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

type accountServiceMocks struct {
	userRepo       *mockRepo.MockUserRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
	partnerRepo    *mockRepo.MockPartnerRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
}

func newAccountService(t *testing.T) (usecase.AccountUsecase, *accountServiceMocks) {
	t.Helper()

	m := &accountServiceMocks{
		userRepo:       mockRepo.NewMockUserRepository(t),
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
		partnerRepo:    mockRepo.NewMockPartnerRepository(t),
		hasher:         mockSvc.NewMockPasswordHasher(t),
		tokenService:   mockSvc.NewMockTokenService(t),
	}

	service := NewAccountService(AccountServiceParams{
		UserRepo:       m.userRepo,
		RestaurantRepo: m.restaurantRepo,
		PartnerRepo:    m.partnerRepo,
		Hasher:         m.hasher,
		TokenService:   m.tokenService,
		Logger:         newDiscardLogger(),
	})

	return service, m
}

func TestAccountService_RegisterCustomer_HashesPassword(t *testing.T) {
	service, m := newAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.hasher.EXPECT().Hash("plaintext").Return("hashed", nil)
	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "hashed", user.PasswordHash)
			user.ID = userID

			return nil
		})

	output, err := service.RegisterCustomer(ctx, usecase.RegisterCustomerInput{
		Username: "alice",
		Password: "plaintext",
		Name:     "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, output.ID)
	assert.Equal(t, entity.RoleCustomer, output.Role)
}

func TestAccountService_RegisterCustomer_DuplicateUsername(t *testing.T) {
	service, m := newAccountService(t)

	ctx := context.Background()

	m.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUsernameTaken)

	_, err := service.RegisterCustomer(ctx, usecase.RegisterCustomerInput{
		Username: "alice",
		Password: "pw",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode())
}

func TestAccountService_Login_Customer(t *testing.T) {
	service, m := newAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	user := newTestCustomer(userID)
	user.PasswordHash = "hashed"
	user.Membership = "GOLD"

	m.userRepo.EXPECT().FindByUsername(ctx, "customer").Return(user, nil)
	m.hasher.EXPECT().Check("pw", "hashed").Return(true)
	m.tokenService.EXPECT().Generate(userID, entity.RoleCustomer).Return("token-123", nil)

	output, err := service.Login(ctx, usecase.LoginInput{
		Username: "customer",
		Password: "pw",
		Role:     entity.RoleCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, "token-123", output.AccessToken)
	assert.Equal(t, userID, output.ID)
	assert.Equal(t, "GOLD", output.Membership)
	assert.Equal(t, entity.RoleCustomer, output.Role)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	service, m := newAccountService(t)

	ctx := context.Background()

	user := newTestCustomer(uuid.New())
	user.PasswordHash = "hashed"

	m.userRepo.EXPECT().FindByUsername(ctx, "customer").Return(user, nil)
	m.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := service.Login(ctx, usecase.LoginInput{
		Username: "customer",
		Password: "wrong",
		Role:     entity.RoleCustomer,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_UnknownAccountLooksLikeBadPassword(t *testing.T) {
	service, m := newAccountService(t)

	ctx := context.Background()

	m.restaurantRepo.EXPECT().
		FindByUsername(ctx, "ghost").
		Return(nil, repository.ErrRestaurantNotFound)

	_, err := service.Login(ctx, usecase.LoginInput{
		Username: "ghost",
		Password: "pw",
		Role:     entity.RoleRestaurant,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_PartnerNamespace(t *testing.T) {
	service, m := newAccountService(t)

	ctx := context.Background()
	partnerID := uuid.New()

	partner := newTestPartner(partnerID)
	partner.PasswordHash = "hashed"

	m.partnerRepo.EXPECT().FindByUsername(ctx, "courier").Return(partner, nil)
	m.hasher.EXPECT().Check("pw", "hashed").Return(true)
	m.tokenService.EXPECT().Generate(partnerID, entity.RolePartner).Return("token-456", nil)

	output, err := service.Login(ctx, usecase.LoginInput{
		Username: "courier",
		Password: "pw",
		Role:     entity.RolePartner,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RolePartner, output.Role)
}

func TestAccountService_SetMembershipType(t *testing.T) {
	service, m := newAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	user := newTestCustomer(userID)

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	m.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, updated *entity.User) error {
			assert.Equal(t, "GOLD", updated.Membership)

			return nil
		})

	err := service.SetMembershipType(ctx, userID, "GOLD")
	require.NoError(t, err)
}

func TestAccountService_SetMembershipType_UnknownCustomer(t *testing.T) {
	service, m := newAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	err := service.SetMembershipType(ctx, userID, "GOLD")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountService_UpdateRestaurant(t *testing.T) {
	service, m := newAccountService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	m.restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(newTestRestaurant(restaurantID), nil)
	m.restaurantRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Restaurant")).
		RunAndReturn(func(_ context.Context, updated *entity.Restaurant) error {
			assert.Equal(t, "New Name", updated.Name)
			assert.Equal(t, 4.9, updated.Rating)

			return nil
		})

	err := service.UpdateRestaurant(ctx, usecase.UpdateRestaurantInput{
		RestaurantID: restaurantID,
		Name:         "New Name",
		Rating:       4.9,
	})
	require.NoError(t, err)
}

func TestAccountService_UpdatePartner_UnknownPartner(t *testing.T) {
	service, m := newAccountService(t)

	ctx := context.Background()
	partnerID := uuid.New()

	m.partnerRepo.EXPECT().FindByID(ctx, partnerID).Return(nil, repository.ErrPartnerNotFound)

	err := service.UpdatePartner(ctx, usecase.UpdatePartnerInput{PartnerID: partnerID})
	assert.ErrorIs(t, err, domainerrors.ErrPartnerNotFound)
}
