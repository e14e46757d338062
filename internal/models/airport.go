package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farellandr/airport-service/internal/apperror"
)

type Airport struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name           string    `gorm:"uniqueIndex;not null" json:"name"`
	ClosestBigCity string    `gorm:"not null" json:"closest_big_city"`
	Image          *string   `json:"image"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

func (airport *Airport) BeforeCreate(tx *gorm.DB) (err error) {
	if airport.ID == uuid.Nil {
		airport.ID = uuid.New()
	}
	return
}

func (airport *Airport) Validate() error {
	fields := apperror.FieldErrors{}
	if strings.TrimSpace(airport.Name) == "" {
		fields.Add("name", msgBlank)
	}
	if strings.TrimSpace(airport.ClosestBigCity) == "" {
		fields.Add("closest_big_city", msgBlank)
	}
	return fields.Err()
}
