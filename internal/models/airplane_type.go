package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farellandr/airport-service/internal/apperror"
)

type AirplaneType struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (airplaneType *AirplaneType) BeforeCreate(tx *gorm.DB) (err error) {
	if airplaneType.ID == uuid.Nil {
		airplaneType.ID = uuid.New()
	}
	return
}

func (airplaneType *AirplaneType) Validate() error {
	if strings.TrimSpace(airplaneType.Name) == "" {
		return apperror.Validation("name", msgBlank)
	}
	return nil
}
