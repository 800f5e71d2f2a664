// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/errors"
	"accounts/internal/usecase"
)

const outcomeSuccess = "success"

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	metrics  service.CredentialMetrics
	logger   *slog.Logger
}

// CredentialServiceParams holds dependencies for credentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Metrics  service.CredentialMetrics `optional:"true"`
	Logger   *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopCredentialMetrics{}
	}

	return &credentialService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		metrics:  metrics,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HashPassword never exposes the hasher's own error; it is logged and replaced
// by ErrHashingFailed.
func (srv *credentialService) HashPassword(ctx context.Context, plaintext string) (string, error) {
	start := time.Now()
	digest, err := srv.hasher.Hash(plaintext)
	srv.metrics.ObserveHashDuration(time.Since(start))

	if err != nil {
		srv.log(ctx).Error("error hashing the password", slog.Any("error", err))

		return "", errors.WithStack(domainerrors.ErrHashingFailed)
	}

	return digest, nil
}

func (srv *credentialService) ComparePassword(ctx context.Context, plaintext, digest string) (bool, error) {
	ok, err := srv.hasher.Check(plaintext, digest)
	if err != nil {
		srv.log(ctx).Error("error comparing passwords", slog.Any("error", err))

		return false, errors.WithStack(domainerrors.ErrComparisonFailed)
	}

	return ok, nil
}

// AuthenticateUser looks the user up by exact email and verifies the password.
// Not found and wrong password are reported as distinct errors.
func (srv *credentialService) AuthenticateUser(ctx context.Context, input *usecase.AuthenticateUserInput) (*entity.SafeUser, error) {
	user, err := srv.authenticate(ctx, input)
	srv.metrics.ObserveAuthentication(outcome(err))

	if err != nil {
		email := ""
		if input != nil {
			email = input.Email
		}
		srv.log(ctx).Error("error authenticating user", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	return user.Safe(), nil
}

func (srv *credentialService) authenticate(ctx context.Context, input *usecase.AuthenticateUserInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("credentials are required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	ok, err := srv.ComparePassword(ctx, input.Password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	return user, nil
}

// CreateUser checks for an existing account, hashes the password and stores
// the row. The store's unique email constraint still decides when two
// creations race past the lookup.
func (srv *credentialService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.SafeUser, error) {
	user, err := srv.create(ctx, input)
	srv.metrics.ObserveUserCreation(outcome(err))

	if err != nil {
		email := ""
		if input != nil {
			email = input.Email
		}
		srv.log(ctx).Error("error creating the user", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("user created", slog.String("email", user.Email), slog.String("role", user.Role.String()))

	return user.Safe(), nil
}

func (srv *credentialService) create(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user data is required")
	}

	role := input.Role.OrDefault()
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String())
	}

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	digest, err := srv.HashPassword(ctx, input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: digest,
		Role:         role,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if domainerrors.KindOf(err) == domainerrors.KindUserAlreadyExists {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}

func outcome(err error) string {
	if err == nil {
		return outcomeSuccess
	}

	return string(domainerrors.KindOf(err))
}
