package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farellandr/airport-service/internal/apperror"
	"github.com/farellandr/airport-service/internal/models"
)

type RouteFilter struct {
	SourceID      *uuid.UUID
	DestinationID *uuid.UUID
}

type RouteRepository interface {
	List(ctx context.Context, filter RouteFilter, page Page) (PageResult[models.Route], error)
	Create(ctx context.Context, route *models.Route) error
}

type GormRouteRepository struct {
	db *gorm.DB
}

var _ RouteRepository = (*GormRouteRepository)(nil)

func NewRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

func (r *GormRouteRepository) List(ctx context.Context, filter RouteFilter, page Page) (PageResult[models.Route], error) {
	query := conn(ctx, r.db).Model(&models.Route{})
	if filter.SourceID != nil {
		query = query.Where("source_id = ?", *filter.SourceID)
	}
	if filter.DestinationID != nil {
		query = query.Where("destination_id = ?", *filter.DestinationID)
	}

	result, err := paginate[models.Route](query, page, "created_at ASC", func(db *gorm.DB) *gorm.DB {
		return db.Preload("Source").Preload("Destination")
	})
	return result, translate(err, "route", "list")
}

func (r *GormRouteRepository) Create(ctx context.Context, route *models.Route) error {
	db := conn(ctx, r.db)

	fields := apperror.FieldErrors{}
	for field, id := range map[string]uuid.UUID{"source": route.SourceID, "destination": route.DestinationID} {
		var count int64
		if err := db.Model(&models.Airport{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return translate(err, "route", "create")
		}
		if count == 0 {
			fields.Add(field, invalidPK(id))
		}
	}
	if err := fields.Err(); err != nil {
		return err
	}

	err := db.Omit("Source", "Destination").Create(route).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperror.Validation("source", "Referenced airport does not exist.")
	}
	if err != nil {
		return translate(err, "route", "create")
	}
	return db.Preload("Source").Preload("Destination").First(route, "id = ?", route.ID).Error
}
