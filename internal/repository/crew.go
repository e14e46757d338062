package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farellandr/airport-service/internal/apperror"
	"github.com/farellandr/airport-service/internal/models"
)

type CrewRepository interface {
	List(ctx context.Context, page Page) (PageResult[models.Crew], error)
	Create(ctx context.Context, crew *models.Crew) error
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Crew, error)
}

type GormCrewRepository struct {
	db *gorm.DB
}

var _ CrewRepository = (*GormCrewRepository)(nil)

func NewCrewRepository(db *gorm.DB) *GormCrewRepository {
	return &GormCrewRepository{db: db}
}

func (r *GormCrewRepository) List(ctx context.Context, page Page) (PageResult[models.Crew], error) {
	result, err := paginate[models.Crew](conn(ctx, r.db).Model(&models.Crew{}), page, "last_name ASC, first_name ASC")
	return result, translate(err, "crew", "list")
}

func (r *GormCrewRepository) Create(ctx context.Context, crew *models.Crew) error {
	return translate(conn(ctx, r.db).Create(crew).Error, "crew", "create")
}

// FindByIDs fails with a validation error on the crew field if any id is unknown.
func (r *GormCrewRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Crew, error) {
	crew := []models.Crew{}
	if len(ids) == 0 {
		return crew, nil
	}
	if err := conn(ctx, r.db).Where("id IN ?", ids).Find(&crew).Error; err != nil {
		return nil, translate(err, "crew", "get")
	}

	found := make(map[uuid.UUID]bool, len(crew))
	for _, member := range crew {
		found[member.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return nil, apperror.Validation("crew", invalidPK(id))
		}
	}
	return crew, nil
}
