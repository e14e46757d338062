package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farellandr/airport-service/internal/apperror"
)

type Airplane struct {
	ID             uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	Name           string        `gorm:"uniqueIndex;not null" json:"name"`
	Rows           int           `gorm:"not null" json:"rows"`
	SeatsInRow     int           `gorm:"not null" json:"seats_in_row"`
	AirplaneTypeID uuid.UUID     `gorm:"type:uuid;not null;index" json:"airplane_type_id"`
	AirplaneType   *AirplaneType `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt      time.Time     `json:"-"`
	UpdatedAt      time.Time     `json:"-"`
}

func (airplane *Airplane) BeforeCreate(tx *gorm.DB) (err error) {
	if airplane.ID == uuid.Nil {
		airplane.ID = uuid.New()
	}
	return
}

// Capacity is derived on every call and never stored.
func (airplane *Airplane) Capacity() int {
	return airplane.Rows * airplane.SeatsInRow
}

func (airplane *Airplane) Validate() error {
	fields := apperror.FieldErrors{}
	if strings.TrimSpace(airplane.Name) == "" {
		fields.Add("name", msgBlank)
	}
	if airplane.Rows < 1 {
		fields.Add("rows", msgMinOne)
	}
	if airplane.SeatsInRow < 1 {
		fields.Add("seats_in_row", msgMinOne)
	}
	if airplane.AirplaneTypeID == uuid.Nil {
		fields.Add("airplane_type", msgRequired)
	}
	return fields.Err()
}
