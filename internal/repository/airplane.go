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

type AirplaneFilter struct {
	AirplaneTypeID *uuid.UUID
	Name           string
}

type AirplaneRepository interface {
	List(ctx context.Context, filter AirplaneFilter, page Page) (PageResult[models.Airplane], error)
	Get(ctx context.Context, id uuid.UUID) (*models.Airplane, error)
	Create(ctx context.Context, airplane *models.Airplane) error
}

type GormAirplaneRepository struct {
	db *gorm.DB
}

var _ AirplaneRepository = (*GormAirplaneRepository)(nil)

func NewAirplaneRepository(db *gorm.DB) *GormAirplaneRepository {
	return &GormAirplaneRepository{db: db}
}

func (r *GormAirplaneRepository) List(ctx context.Context, filter AirplaneFilter, page Page) (PageResult[models.Airplane], error) {
	query := conn(ctx, r.db).Model(&models.Airplane{})
	if filter.AirplaneTypeID != nil {
		query = query.Where("airplane_type_id = ?", *filter.AirplaneTypeID)
	}
	if name := strings.TrimSpace(filter.Name); name != "" {
		query = query.Where("name ILIKE ?", "%"+escapeLike(name)+"%")
	}

	result, err := paginate[models.Airplane](query, page, "name ASC", func(db *gorm.DB) *gorm.DB {
		return db.Preload("AirplaneType")
	})
	return result, translate(err, "airplane", "list")
}

func (r *GormAirplaneRepository) Get(ctx context.Context, id uuid.UUID) (*models.Airplane, error) {
	var airplane models.Airplane
	if err := conn(ctx, r.db).Preload("AirplaneType").First(&airplane, "id = ?", id).Error; err != nil {
		return nil, translate(err, "airplane", "get")
	}
	return &airplane, nil
}

func (r *GormAirplaneRepository) Create(ctx context.Context, airplane *models.Airplane) error {
	err := conn(ctx, r.db).Omit("AirplaneType").Create(airplane).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperror.Validation("airplane_type", invalidPK(airplane.AirplaneTypeID))
	}
	err = translate(err, "airplane", "create")
	if errors.Is(err, ErrDuplicate) {
		return apperror.Validation("name", "airplane with this name already exists.")
	}
	return err
}

func invalidPK(id uuid.UUID) string {
	return "Invalid pk \"" + id.String() + "\" - object does not exist."
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
