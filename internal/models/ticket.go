package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ticket holds one seat on one flight. The (flight, row, seat) triple is unique at
// the storage layer; that index is what makes double booking impossible.
type Ticket struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Row      int       `gorm:"not null;uniqueIndex:idx_ticket_flight_row_seat,priority:2" json:"row"`
	Seat     int       `gorm:"not null;uniqueIndex:idx_ticket_flight_row_seat,priority:3" json:"seat"`
	FlightID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ticket_flight_row_seat,priority:1" json:"flight"`
	Flight   *Flight   `json:"-"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Order    *Order    `json:"-"`
}

func (ticket *Ticket) BeforeCreate(tx *gorm.DB) (err error) {
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	return
}

func (ticket Ticket) String() string {
	return fmt.Sprintf("flight %s (row: %d, seat: %d)", ticket.FlightID, ticket.Row, ticket.Seat)
}
