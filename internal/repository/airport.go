package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farellandr/airport-service/internal/apperror"
	"github.com/farellandr/airport-service/internal/models"
)

type AirportRepository interface {
	List(ctx context.Context, page Page) (PageResult[models.Airport], error)
	Get(ctx context.Context, id uuid.UUID) (*models.Airport, error)
	Create(ctx context.Context, airport *models.Airport) error
	SetImage(ctx context.Context, id uuid.UUID, image string) (*models.Airport, error)
}

type GormAirportRepository struct {
	db *gorm.DB
}

var _ AirportRepository = (*GormAirportRepository)(nil)

func NewAirportRepository(db *gorm.DB) *GormAirportRepository {
	return &GormAirportRepository{db: db}
}

func (r *GormAirportRepository) List(ctx context.Context, page Page) (PageResult[models.Airport], error) {
	result, err := paginate[models.Airport](conn(ctx, r.db).Model(&models.Airport{}), page, "name ASC")
	return result, translate(err, "airport", "list")
}

func (r *GormAirportRepository) Get(ctx context.Context, id uuid.UUID) (*models.Airport, error) {
	var airport models.Airport
	if err := conn(ctx, r.db).First(&airport, "id = ?", id).Error; err != nil {
		return nil, translate(err, "airport", "get")
	}
	return &airport, nil
}

func (r *GormAirportRepository) Create(ctx context.Context, airport *models.Airport) error {
	err := translate(conn(ctx, r.db).Create(airport).Error, "airport", "create")
	if errors.Is(err, ErrDuplicate) {
		return apperror.Validation("name", "airport with this name already exists.")
	}
	return err
}

func (r *GormAirportRepository) SetImage(ctx context.Context, id uuid.UUID, image string) (*models.Airport, error) {
	airport, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	airport.Image = &image
	if err := conn(ctx, r.db).Model(airport).Update("image", image).Error; err != nil {
		return nil, translate(err, "airport", "update")
	}
	return airport, nil
}
