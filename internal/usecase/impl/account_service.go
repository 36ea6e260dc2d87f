// Package impl contains the implementation of the application's business logic.
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

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	partnerRepo    repository.PartnerRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	RestaurantRepo repository.RestaurantRepository
	PartnerRepo    repository.PartnerRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Logger         *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:       params.UserRepo,
		restaurantRepo: params.RestaurantRepo,
		partnerRepo:    params.PartnerRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterCustomer creates a new customer account with a hashed password.
func (srv *accountService) RegisterCustomer(ctx context.Context, input usecase.RegisterCustomerInput) (*usecase.RegisterOutput, error) {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: hash,
		Name:         input.Name,
		Address:      input.Address,
		Mobile:       input.Mobile,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	srv.log(ctx).InfoContext(ctx, "customer registered",
		slog.String("userId", user.ID.String()),
		slog.String("username", user.Username),
	)

	return &usecase.RegisterOutput{ID: user.ID, Role: entity.RoleCustomer}, nil
}

// RegisterRestaurant creates a new restaurant account together with
// its public listing profile.
func (srv *accountService) RegisterRestaurant(ctx context.Context, input usecase.RegisterRestaurantInput) (*usecase.RegisterOutput, error) {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	restaurant := &entity.Restaurant{
		Username:             input.Username,
		PasswordHash:         hash,
		Name:                 input.Name,
		Mobile:               input.Mobile,
		Address:              input.Address,
		ImageURL:             input.ImageURL,
		Cuisine:              input.Cuisine,
		OpenTime:             input.OpenTime,
		CloseTime:            input.CloseTime,
		Rating:               input.Rating,
		Distance:             input.Distance,
		Offers:               input.Offers,
		Reviews:              input.Reviews,
		ExpectedDeliveryTime: input.ExpectedDeliveryTime,
	}

	if err := srv.restaurantRepo.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	srv.log(ctx).InfoContext(ctx, "restaurant registered",
		slog.String("restaurantId", restaurant.ID.String()),
		slog.String("username", restaurant.Username),
	)

	return &usecase.RegisterOutput{ID: restaurant.ID, Role: entity.RoleRestaurant}, nil
}

// RegisterPartner creates a new delivery partner account.
func (srv *accountService) RegisterPartner(ctx context.Context, input usecase.RegisterPartnerInput) (*usecase.RegisterOutput, error) {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	partner := &entity.DeliveryPartner{
		Username:     input.Username,
		PasswordHash: hash,
		Name:         input.Name,
		Mobile:       input.Mobile,
		Rating:       input.Rating,
	}

	if err := srv.partnerRepo.Create(ctx, partner); err != nil {
		return nil, err
	}

	srv.log(ctx).InfoContext(ctx, "delivery partner registered",
		slog.String("partnerId", partner.ID.String()),
		slog.String("username", partner.Username),
	)

	return &usecase.RegisterOutput{ID: partner.ID, Role: entity.RolePartner}, nil
}

// Login authenticates an account in the namespace selected by the
// role and issues an access token. A missing account and a wrong
// password are indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	var (
		id           uuid.UUID
		name         string
		membership   string
		passwordHash string
	)

	switch input.Role {
	case entity.RoleRestaurant:
		restaurant, err := srv.restaurantRepo.FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return nil, domainerrors.ErrInvalidCredentials
			}

			return nil, err
		}
		id, name, passwordHash = restaurant.ID, restaurant.Name, restaurant.PasswordHash

	case entity.RolePartner:
		partner, err := srv.partnerRepo.FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrPartnerNotFound) {
				return nil, domainerrors.ErrInvalidCredentials
			}

			return nil, err
		}
		id, name, passwordHash = partner.ID, partner.Name, partner.PasswordHash

	default:
		user, err := srv.userRepo.FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.ErrInvalidCredentials
			}

			return nil, err
		}
		id, name, membership, passwordHash = user.ID, user.Name, user.Membership, user.PasswordHash
	}

	if !srv.hasher.Check(input.Password, passwordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Generate(id, input.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).InfoContext(ctx, "login succeeded",
		slog.String("accountId", id.String()),
		slog.String("role", input.Role.String()),
	)

	return &usecase.LoginOutput{
		AccessToken: token,
		ID:          id,
		Username:    input.Username,
		Name:        name,
		Role:        input.Role,
		Membership:  membership,
	}, nil
}

// SetMembershipType overwrites the customer's loyalty tier label.
func (srv *accountService) SetMembershipType(ctx context.Context, userID uuid.UUID, membershipType string) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	user.Membership = membershipType
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return err
	}

	srv.log(ctx).InfoContext(ctx, "membership updated",
		slog.String("userId", userID.String()),
		slog.String("membershipType", membershipType),
	)

	return nil
}

// UpdateRestaurant writes the mutable listing profile fields.
func (srv *accountService) UpdateRestaurant(ctx context.Context, input usecase.UpdateRestaurantInput) error {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, input.RestaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return domainerrors.ErrRestaurantNotFound
		}

		return err
	}

	restaurant.Name = input.Name
	restaurant.Mobile = input.Mobile
	restaurant.Address = input.Address
	restaurant.ImageURL = input.ImageURL
	restaurant.Cuisine = input.Cuisine
	restaurant.OpenTime = input.OpenTime
	restaurant.CloseTime = input.CloseTime
	restaurant.Rating = input.Rating
	restaurant.Distance = input.Distance
	restaurant.Offers = input.Offers
	restaurant.Reviews = input.Reviews
	restaurant.ExpectedDeliveryTime = input.ExpectedDeliveryTime

	return srv.restaurantRepo.Update(ctx, restaurant)
}

// UpdatePartner writes the mutable delivery partner fields.
func (srv *accountService) UpdatePartner(ctx context.Context, input usecase.UpdatePartnerInput) error {
	partner, err := srv.partnerRepo.FindByID(ctx, input.PartnerID)
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return domainerrors.ErrPartnerNotFound
		}

		return err
	}

	partner.Name = input.Name
	partner.Mobile = input.Mobile
	partner.Rating = input.Rating

	return srv.partnerRepo.Update(ctx, partner)
}
