package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farellandr/airport-service/internal/apperror"
)

type Crew struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (crew *Crew) BeforeCreate(tx *gorm.DB) (err error) {
	if crew.ID == uuid.Nil {
		crew.ID = uuid.New()
	}
	return
}

func (crew *Crew) Validate() error {
	fields := apperror.FieldErrors{}
	if strings.TrimSpace(crew.FirstName) == "" {
		fields.Add("first_name", msgBlank)
	}
	if strings.TrimSpace(crew.LastName) == "" {
		fields.Add("last_name", msgBlank)
	}
	return fields.Err()
}

func (crew Crew) FullName() string {
	return crew.FirstName + " " + crew.LastName
}
