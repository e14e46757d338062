package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farellandr/airport-service/internal/apperror"
)

// Route is directed: the reverse pair is a different route, and the same pair may
// appear more than once.
type Route struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SourceID      uuid.UUID `gorm:"type:uuid;not null;index" json:"source"`
	Source        *Airport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	DestinationID uuid.UUID `gorm:"type:uuid;not null;index" json:"destination"`
	Destination   *Airport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Distance      int       `gorm:"not null" json:"distance"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (route *Route) BeforeCreate(tx *gorm.DB) (err error) {
	if route.ID == uuid.Nil {
		route.ID = uuid.New()
	}
	return
}

func (route *Route) Validate() error {
	fields := apperror.FieldErrors{}
	if route.SourceID == uuid.Nil {
		fields.Add("source", msgRequired)
	}
	if route.DestinationID == uuid.Nil {
		fields.Add("destination", msgRequired)
	}
	if route.SourceID != uuid.Nil && route.SourceID == route.DestinationID {
		fields.Add("destination", "Destination must differ from source.")
	}
	if route.Distance < 1 {
		fields.Add("distance", msgMinOne)
	}
	return fields.Err()
}
