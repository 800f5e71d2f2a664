package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"accounts/config"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/lifecycle"
	"accounts/internal/errors"
	"accounts/internal/usecase"
)

// AdminSeederParams holds dependencies for RegisterAdminSeeder.
type AdminSeederParams struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	Credentials usecase.CredentialUsecase
	Logger      *slog.Logger
}

// RegisterAdminSeeder creates the configured admin account when the app starts.
// It is a no-op unless admin.email and admin.password are both set.
func RegisterAdminSeeder(params AdminSeederParams) {
	if !params.Config.Admin.Enabled() {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return EnsureAdminUser(ctx, params.Credentials, params.Config.Admin, params.Logger)
		},
	})
}

// EnsureAdminUser creates admin through the credential service. An account that
// already exists is left untouched, including its password.
func EnsureAdminUser(ctx context.Context, credentials usecase.CredentialUsecase, admin *config.AdminConfig, logger *slog.Logger) error {
	if !admin.Enabled() {
		return nil
	}

	name := admin.Name
	if name == "" {
		name = "admin"
	}

	_, err := credentials.CreateUser(ctx, &usecase.CreateUserInput{
		Name:     name,
		Email:    admin.Email,
		Password: admin.Password,
		Role:     entity.RoleAdmin,
	})
	if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		logger.Info("admin user already present", slog.String("email", admin.Email))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to seed admin user")
	}

	return nil
}
