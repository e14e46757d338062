package config

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/farellandr/airport-service/internal/apperror"
	"github.com/farellandr/airport-service/internal/auth"
	"github.com/farellandr/airport-service/internal/models"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "top-secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_ACCESS_TTL", "5m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "top-secret", cfg.JWT.Secret)
	assert.Equal(t, 5*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, 24*time.Hour, cfg.JWT.RefreshTTL)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "/uploads", cfg.Upload.MediaURL)
	assert.Equal(t, int64(5242880), cfg.Upload.MaxSizeBytes)
	assert.Contains(t, cfg.Database.DSN(), "host=db.internal")
	assert.Contains(t, cfg.Database.DSN(), "sslmode=disable")
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	_, err := LoadConfig()
	assert.Error(t, err)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func TestSeedAdmin(t *testing.T) {
	ctx := context.Background()
	admin := Admin{Email: "admin@example.com", Password: "changeme"}

	t.Run("disabled without credentials", func(t *testing.T) {
		users := new(MockUserRepository)
		require.NoError(t, seedAdmin(ctx, users, Admin{Email: "admin@example.com"}))
		users.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("creates a staff account", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetByEmail", ctx, admin.Email).Return(nil, apperror.NotFound("user not found."))
		users.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.IsStaff && u.Email == admin.Email && auth.CheckPassword(u.Password, admin.Password)
		})).Return(nil).Once()

		require.NoError(t, seedAdmin(ctx, users, admin))
		users.AssertExpectations(t)
	})

	t.Run("existing account is left alone", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetByEmail", ctx, admin.Email).Return(&models.User{Email: admin.Email}, nil)

		require.NoError(t, seedAdmin(ctx, users, admin))
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lookup failure is returned", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetByEmail", ctx, admin.Email).Return(nil, errors.New("connection refused"))

		assert.Error(t, seedAdmin(ctx, users, admin))
	})
}
