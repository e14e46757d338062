package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farellandr/airport-service/internal/apperror"
	"github.com/farellandr/airport-service/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type GormUserRepository struct {
	db *gorm.DB
}

var _ UserRepository = (*GormUserRepository)(nil)

func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	user.Email = normalizeEmail(user.Email)
	err := translate(conn(ctx, r.db).Create(user).Error, "user", "create")
	if errors.Is(err, ErrDuplicate) {
		return apperror.Validation("email", "user with this email already exists.")
	}
	return err
}

func (r *GormUserRepository) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := conn(ctx, r.db).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err, "user", "get")
	}
	return &user, nil
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := conn(ctx, r.db).First(&user, "email = ?", normalizeEmail(email)).Error; err != nil {
		return nil, translate(err, "user", "get")
	}
	return &user, nil
}

func (r *GormUserRepository) Update(ctx context.Context, user *models.User) error {
	user.Email = normalizeEmail(user.Email)
	err := conn(ctx, r.db).Model(user).Updates(map[string]interface{}{
		"email":      user.Email,
		"password":   user.Password,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	}).Error
	err = translate(err, "user", "update")
	if errors.Is(err, ErrDuplicate) {
		return apperror.Validation("email", "user with this email already exists.")
	}
	return err
}
