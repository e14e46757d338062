package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farellandr/airport-service/internal/apperror"
)

type Flight struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RouteID       uuid.UUID `gorm:"type:uuid;not null;index" json:"route"`
	Route         *Route    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	AirplaneID    uuid.UUID `gorm:"type:uuid;not null;index" json:"airplane"`
	Airplane      *Airplane `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Crew          []Crew    `gorm:"many2many:flight_crews;constraint:OnDelete:CASCADE" json:"-"`
	DepartureTime time.Time `gorm:"not null;index" json:"departure_time"`
	ArrivalTime   time.Time `gorm:"not null" json:"arrival_time"`
	Tickets       []Ticket  `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	// TicketsAvailable is only populated by queries that select it explicitly.
	TicketsAvailable int `gorm:"->;-:migration" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (flight *Flight) BeforeCreate(tx *gorm.DB) (err error) {
	if flight.ID == uuid.Nil {
		flight.ID = uuid.New()
	}
	return
}

func (flight *Flight) Validate() error {
	fields := apperror.FieldErrors{}
	if flight.RouteID == uuid.Nil {
		fields.Add("route", msgRequired)
	}
	if flight.AirplaneID == uuid.Nil {
		fields.Add("airplane", msgRequired)
	}
	if flight.DepartureTime.IsZero() {
		fields.Add("departure_time", msgRequired)
	}
	if flight.ArrivalTime.IsZero() {
		fields.Add("arrival_time", msgRequired)
	}
	if !flight.DepartureTime.IsZero() && !flight.ArrivalTime.After(flight.DepartureTime) {
		fields.Add("arrival_time", "Arrival time must be after departure time.")
	}
	return fields.Err()
}
