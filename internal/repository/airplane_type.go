package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farellandr/airport-service/internal/apperror"
	"github.com/farellandr/airport-service/internal/models"
)

type AirplaneTypeRepository interface {
	List(ctx context.Context, page Page) (PageResult[models.AirplaneType], error)
	Get(ctx context.Context, id uuid.UUID) (*models.AirplaneType, error)
	Create(ctx context.Context, airplaneType *models.AirplaneType) error
	SetImage(ctx context.Context, id uuid.UUID, image string) (*models.AirplaneType, error)
}

type GormAirplaneTypeRepository struct {
	db *gorm.DB
}

var _ AirplaneTypeRepository = (*GormAirplaneTypeRepository)(nil)

func NewAirplaneTypeRepository(db *gorm.DB) *GormAirplaneTypeRepository {
	return &GormAirplaneTypeRepository{db: db}
}

func (r *GormAirplaneTypeRepository) List(ctx context.Context, page Page) (PageResult[models.AirplaneType], error) {
	result, err := paginate[models.AirplaneType](conn(ctx, r.db).Model(&models.AirplaneType{}), page, "name ASC")
	return result, translate(err, "airplane type", "list")
}

func (r *GormAirplaneTypeRepository) Get(ctx context.Context, id uuid.UUID) (*models.AirplaneType, error) {
	var airplaneType models.AirplaneType
	if err := conn(ctx, r.db).First(&airplaneType, "id = ?", id).Error; err != nil {
		return nil, translate(err, "airplane type", "get")
	}
	return &airplaneType, nil
}

func (r *GormAirplaneTypeRepository) Create(ctx context.Context, airplaneType *models.AirplaneType) error {
	err := translate(conn(ctx, r.db).Create(airplaneType).Error, "airplane type", "create")
	if errors.Is(err, ErrDuplicate) {
		return apperror.Validation("name", "airplane type with this name already exists.")
	}
	return err
}

func (r *GormAirplaneTypeRepository) SetImage(ctx context.Context, id uuid.UUID, image string) (*models.AirplaneType, error) {
	airplaneType, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	airplaneType.Image = &image
	if err := conn(ctx, r.db).Model(airplaneType).Update("image", image).Error; err != nil {
		return nil, translate(err, "airplane type", "update")
	}
	return airplaneType, nil
}
