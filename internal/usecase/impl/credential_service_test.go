package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	mockRepo "accounts/internal/mocks/repository"
	mockSvc "accounts/internal/mocks/service"
	"accounts/internal/usecase"
)

// credentialServiceFixtures holds all test dependencies for credential service tests.
type credentialServiceFixtures struct {
	service  usecase.CredentialUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	metrics  *recordingMetrics
}

func createTestCredentialService(t *testing.T) credentialServiceFixtures {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	metrics := &recordingMetrics{}

	service := NewCredentialService(CredentialServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Metrics:  metrics,
		Logger:   newDiscardLogger(),
	})

	return credentialServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		metrics:  metrics,
	}
}

type recordingMetrics struct {
	authentications []string
	creations       []string
	hashes          int
}

func (m *recordingMetrics) ObserveAuthentication(outcome string) {
	m.authentications = append(m.authentications, outcome)
}

func (m *recordingMetrics) ObserveUserCreation(outcome string) {
	m.creations = append(m.creations, outcome)
}

func (m *recordingMetrics) ObserveHashDuration(time.Duration) {
	m.hashes++
}

func storedUser(email string) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Name:         "Ann",
		Email:        email,
		PasswordHash: "stored-digest",
		Role:         entity.RoleUser,
		CreatedAt:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestCredentialService_HashPassword(t *testing.T) {
	t.Run("returns the hasher digest", func(t *testing.T) {
		f := createTestCredentialService(t)
		f.hasher.EXPECT().Hash("hunter2").Return("$2a$10$digest", nil)

		digest, err := f.service.HashPassword(context.Background(), "hunter2")

		require.NoError(t, err)
		assert.Equal(t, "$2a$10$digest", digest)
		assert.Equal(t, 1, f.metrics.hashes)
	})

	t.Run("hides the hasher error behind HashingError", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		hasher := mockSvc.NewMockPasswordHasher(t)
		logger, logs := newCapturingLogger()
		svc := NewCredentialService(CredentialServiceParams{UserRepo: userRepo, Hasher: hasher, Logger: logger})

		hasher.EXPECT().Hash("too-long").Return("", errors.New("bcrypt: password length exceeds 72 bytes"))

		digest, err := svc.HashPassword(context.Background(), "too-long")

		assert.Empty(t, digest)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrHashingFailed)
		assert.Equal(t, domainerrors.KindHashing, domainerrors.KindOf(err))
		assert.NotContains(t, err.Error(), "72 bytes")
		assert.Contains(t, logs.String(), "error hashing the password")
		assert.Contains(t, logs.String(), "72 bytes")
	})
}

func TestCredentialService_ComparePassword(t *testing.T) {
	tests := []struct {
		name      string
		match     bool
		hashErr   error
		want      bool
		wantError error
	}{
		{name: "match", match: true, want: true},
		{name: "mismatch is not an error", match: false, want: false},
		{name: "engine failure", hashErr: errors.New("crypto/bcrypt: hashedSecret too short"), wantError: domainerrors.ErrComparisonFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestCredentialService(t)
			f.hasher.EXPECT().Check("pw", "digest").Return(tt.match, tt.hashErr)

			ok, err := f.service.ComparePassword(context.Background(), "pw", "digest")

			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				assert.Equal(t, domainerrors.KindComparison, domainerrors.KindOf(err))
				assert.False(t, ok)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestCredentialService_AuthenticateUser(t *testing.T) {
	ctx := context.Background()
	input := &usecase.AuthenticateUserInput{Email: "ann@example.com", Password: "secret"}

	t.Run("success returns the user without password", func(t *testing.T) {
		f := createTestCredentialService(t)
		user := storedUser(input.Email)

		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
		f.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true, nil)

		got, err := f.service.AuthenticateUser(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, &entity.SafeUser{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		}, got)
		assert.Equal(t, []string{"success"}, f.metrics.authentications)
	})

	t.Run("unknown email is UserNotFound", func(t *testing.T) {
		f := createTestCredentialService(t)
		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

		got, err := f.service.AuthenticateUser(ctx, input)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
		assert.Equal(t, []string{"user_not_found"}, f.metrics.authentications)
	})

	t.Run("wrong password is InvalidCredentials", func(t *testing.T) {
		f := createTestCredentialService(t)
		user := storedUser(input.Email)

		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
		f.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false, nil)

		got, err := f.service.AuthenticateUser(ctx, input)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		assert.NotErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("corrupt stored digest is ComparisonError", func(t *testing.T) {
		f := createTestCredentialService(t)
		user := storedUser(input.Email)
		user.PasswordHash = "not-a-digest"

		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
		f.hasher.EXPECT().Check(input.Password, "not-a-digest").Return(false, errors.New("malformed"))

		_, err := f.service.AuthenticateUser(ctx, input)

		assert.ErrorIs(t, err, domainerrors.ErrComparisonFailed)
		assert.Equal(t, []string{"comparison"}, f.metrics.authentications)
	})

	t.Run("store failure passes through", func(t *testing.T) {
		f := createTestCredentialService(t)
		storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to find user by email")
		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, storeErr)

		_, err := f.service.AuthenticateUser(ctx, input)

		require.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
		assert.Equal(t, domainerrors.KindStore, domainerrors.KindOf(err))
	})

	t.Run("logs failures with cause", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		logger, logs := newCapturingLogger()
		svc := NewCredentialService(CredentialServiceParams{
			UserRepo: userRepo,
			Hasher:   mockSvc.NewMockPasswordHasher(t),
			Logger:   logger,
		})
		userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

		_, err := svc.AuthenticateUser(ctx, input)

		require.Error(t, err)
		assert.Contains(t, logs.String(), "error authenticating user")
		assert.Contains(t, logs.String(), "user not found")
		assert.NotContains(t, logs.String(), input.Password)
	})

	t.Run("nil input is a validation error", func(t *testing.T) {
		f := createTestCredentialService(t)

		_, err := f.service.AuthenticateUser(ctx, nil)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCredentialService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the user with default role", func(t *testing.T) {
		f := createTestCredentialService(t)
		input := &usecase.CreateUserInput{Name: "Ann", Email: "ann@example.com", Password: "secret"}
		id := uuid.New()
		createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		f.hasher.EXPECT().Hash(input.Password).Return("$2a$10$digest", nil)
		f.userRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Email == input.Email && u.Name == input.Name &&
					u.PasswordHash == "$2a$10$digest" && u.Role == entity.RoleUser
			})).
			Run(func(_ context.Context, u *entity.User) {
				u.ID = id
				u.CreatedAt = createdAt
			}).
			Return(nil)

		got, err := f.service.CreateUser(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, &entity.SafeUser{
			ID:        id,
			Name:      "Ann",
			Email:     "ann@example.com",
			Role:      entity.RoleUser,
			CreatedAt: createdAt,
		}, got)
		assert.Equal(t, []string{"success"}, f.metrics.creations)
	})

	t.Run("keeps an explicit role", func(t *testing.T) {
		f := createTestCredentialService(t)
		input := &usecase.CreateUserInput{Name: "Root", Email: "root@example.com", Password: "secret", Role: entity.RoleAdmin}

		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		f.hasher.EXPECT().Hash(input.Password).Return("digest", nil)
		f.userRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Role == entity.RoleAdmin })).
			Return(nil)

		got, err := f.service.CreateUser(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, got.Role)
	})

	t.Run("existing email is rejected without hashing or inserting", func(t *testing.T) {
		f := createTestCredentialService(t)
		input := &usecase.CreateUserInput{Name: "Ann", Email: "ann@example.com", Password: "secret"}

		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(storedUser(input.Email), nil)

		got, err := f.service.CreateUser(ctx, input)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
		f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.hasher.AssertNotCalled(t, "Hash", mock.Anything)
		assert.Equal(t, []string{"user_already_exists"}, f.metrics.creations)
	})

	t.Run("constraint violation after the lookup is UserAlreadyExists", func(t *testing.T) {
		f := createTestCredentialService(t)
		input := &usecase.CreateUserInput{Name: "Ann", Email: "ann@example.com", Password: "secret"}

		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		f.hasher.EXPECT().Hash(input.Password).Return("digest", nil)
		f.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))

		_, err := f.service.CreateUser(ctx, input)

		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("hash failure stops before insert", func(t *testing.T) {
		f := createTestCredentialService(t)
		input := &usecase.CreateUserInput{Name: "Ann", Email: "ann@example.com", Password: "secret"}

		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		f.hasher.EXPECT().Hash(input.Password).Return("", errors.New("entropy exhausted"))

		_, err := f.service.CreateUser(ctx, input)

		assert.ErrorIs(t, err, domainerrors.ErrHashingFailed)
		f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lookup failure passes through", func(t *testing.T) {
		f := createTestCredentialService(t)
		input := &usecase.CreateUserInput{Email: "ann@example.com", Password: "secret"}
		storeErr := domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "failed to find user by email")

		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, storeErr)

		_, err := f.service.CreateUser(ctx, input)

		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("insert failure passes through", func(t *testing.T) {
		f := createTestCredentialService(t)
		input := &usecase.CreateUserInput{Email: "ann@example.com", Password: "secret"}
		storeErr := domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to create user")

		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		f.hasher.EXPECT().Hash(input.Password).Return("digest", nil)
		f.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(storeErr)

		_, err := f.service.CreateUser(ctx, input)

		assert.ErrorIs(t, err, storeErr)
		assert.Equal(t, []string{"store"}, f.metrics.creations)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		f := createTestCredentialService(t)

		_, err := f.service.CreateUser(ctx, &usecase.CreateUserInput{Email: "a@b.c", Role: "superuser"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("logs success at info", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		hasher := mockSvc.NewMockPasswordHasher(t)
		logger, logs := newCapturingLogger()
		svc := NewCredentialService(CredentialServiceParams{UserRepo: userRepo, Hasher: hasher, Logger: logger})
		input := &usecase.CreateUserInput{Name: "Ann", Email: "ann@example.com", Password: "secret"}

		userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		hasher.EXPECT().Hash(input.Password).Return("digest", nil)
		userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

		_, err := svc.CreateUser(ctx, input)

		require.NoError(t, err)
		assert.Contains(t, logs.String(), `"msg":"user created"`)
		assert.Contains(t, logs.String(), "ann@example.com")
		assert.NotContains(t, logs.String(), "digest")
	})
}
