package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farellandr/airport-service/internal/apperror"
	"github.com/farellandr/airport-service/internal/models"
)

// ticketsAvailableSQL derives free seats from the airplane geometry and the tickets
// sold so far. It is evaluated on every read.
const ticketsAvailableSQL = `(SELECT a."rows" * a.seats_in_row FROM airplanes a WHERE a.id = flights.airplane_id)` +
	` - (SELECT COUNT(*) FROM tickets t WHERE t.flight_id = flights.id) AS tickets_available`

type FlightFilter struct {
	RouteID    *uuid.UUID
	AirplaneID *uuid.UUID
	// Date matches the UTC calendar day of the departure.
	Date    *time.Time
	CrewIDs []uuid.UUID
}

type FlightRepository interface {
	List(ctx context.Context, filter FlightFilter, page Page) (PageResult[models.Flight], error)
	Get(ctx context.Context, id uuid.UUID) (*models.Flight, error)
	GetForBooking(ctx context.Context, id uuid.UUID) (*models.Flight, error)
	Create(ctx context.Context, flight *models.Flight) error
	Update(ctx context.Context, flight *models.Flight) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormFlightRepository struct {
	db *gorm.DB
}

var _ FlightRepository = (*GormFlightRepository)(nil)

func NewFlightRepository(db *gorm.DB) *GormFlightRepository {
	return &GormFlightRepository{db: db}
}

func withAvailability(db *gorm.DB) *gorm.DB {
	return db.Select("flights.*, " + ticketsAvailableSQL)
}

func (r *GormFlightRepository) List(ctx context.Context, filter FlightFilter, page Page) (PageResult[models.Flight], error) {
	query := conn(ctx, r.db).Model(&models.Flight{})
	if filter.RouteID != nil {
		query = query.Where("flights.route_id = ?", *filter.RouteID)
	}
	if filter.AirplaneID != nil {
		query = query.Where("flights.airplane_id = ?", *filter.AirplaneID)
	}
	if filter.Date != nil {
		day := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, time.UTC)
		query = query.Where("flights.departure_time >= ? AND flights.departure_time < ?", day, day.AddDate(0, 0, 1))
	}
	if len(filter.CrewIDs) > 0 {
		query = query.Where("flights.id IN (SELECT flight_id FROM flight_crews WHERE crew_id IN ?)", filter.CrewIDs)
	}

	result, err := paginate[models.Flight](query, page, "flights.departure_time ASC", withAvailability, func(db *gorm.DB) *gorm.DB {
		return db.Preload("Route.Source").Preload("Route.Destination").Preload("Airplane")
	})
	return result, translate(err, "flight", "list")
}

// Get loads the flight with route, airplane, crew and sold tickets ordered by seat.
func (r *GormFlightRepository) Get(ctx context.Context, id uuid.UUID) (*models.Flight, error) {
	var flight models.Flight
	err := conn(ctx, r.db).
		Scopes(withAvailability).
		Preload("Route.Source").
		Preload("Route.Destination").
		Preload("Airplane.AirplaneType").
		Preload("Crew", func(db *gorm.DB) *gorm.DB {
			return db.Order("last_name ASC, first_name ASC")
		}).
		Preload("Tickets", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"row" ASC, seat ASC`)
		}).
		First(&flight, "flights.id = ?", id).Error
	if err != nil {
		return nil, translate(err, "flight", "get")
	}
	return &flight, nil
}

func (r *GormFlightRepository) GetForBooking(ctx context.Context, id uuid.UUID) (*models.Flight, error) {
	var flight models.Flight
	if err := conn(ctx, r.db).Preload("Airplane").First(&flight, "id = ?", id).Error; err != nil {
		return nil, translate(err, "flight", "get")
	}
	return &flight, nil
}

func (r *GormFlightRepository) Create(ctx context.Context, flight *models.Flight) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := checkFlightRefs(tx, flight); err != nil {
			return err
		}
		if err := tx.Omit("Route", "Airplane", "Tickets", "Crew.*").Create(flight).Error; err != nil {
			return translate(err, "flight", "create")
		}
		return nil
	})
}

// Update saves scalar columns and replaces the crew set. The airplane may only
// change to one whose geometry still holds every sold seat.
func (r *GormFlightRepository) Update(ctx context.Context, flight *models.Flight) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := checkFlightRefs(tx, flight); err != nil {
			return err
		}
		if err := checkSoldSeatsFit(tx, flight); err != nil {
			return err
		}
		res := tx.Model(&models.Flight{}).Where("id = ?", flight.ID).Updates(map[string]interface{}{
			"route_id":       flight.RouteID,
			"airplane_id":    flight.AirplaneID,
			"departure_time": flight.DepartureTime,
			"arrival_time":   flight.ArrivalTime,
			"updated_at":     time.Now(),
		})
		if res.Error != nil {
			return translate(res.Error, "flight", "update")
		}
		if res.RowsAffected == 0 {
			return apperror.NotFound("flight not found.")
		}
		if err := tx.Model(flight).Association("Crew").Replace(flight.Crew); err != nil {
			return translate(err, "flight", "update")
		}
		return nil
	})
}

// Delete removes the flight together with its tickets and crew assignments.
func (r *GormFlightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Flight{ID: id}).Association("Crew").Clear(); err != nil {
			return translate(err, "flight", "delete")
		}
		if err := tx.Where("flight_id = ?", id).Delete(&models.Ticket{}).Error; err != nil {
			return translate(err, "flight", "delete")
		}
		res := tx.Delete(&models.Flight{}, "id = ?", id)
		if res.Error != nil {
			return translate(res.Error, "flight", "delete")
		}
		if res.RowsAffected == 0 {
			return apperror.NotFound("flight not found.")
		}
		return nil
	})
}

func checkFlightRefs(tx *gorm.DB, flight *models.Flight) error {
	fields := apperror.FieldErrors{}

	var count int64
	if err := tx.Model(&models.Route{}).Where("id = ?", flight.RouteID).Count(&count).Error; err != nil {
		return translate(err, "flight", "check route")
	}
	if count == 0 {
		fields.Add("route", invalidPK(flight.RouteID))
	}

	if err := tx.Model(&models.Airplane{}).Where("id = ?", flight.AirplaneID).Count(&count).Error; err != nil {
		return translate(err, "flight", "check airplane")
	}
	if count == 0 {
		fields.Add("airplane", invalidPK(flight.AirplaneID))
	}

	return fields.Err()
}

func checkSoldSeatsFit(tx *gorm.DB, flight *models.Flight) error {
	var airplane models.Airplane
	if err := tx.First(&airplane, "id = ?", flight.AirplaneID).Error; err != nil {
		return translate(err, "airplane", "get")
	}

	var outside int64
	err := tx.Model(&models.Ticket{}).
		Where(`flight_id = ? AND ("row" > ? OR seat > ?)`, flight.ID, airplane.Rows, airplane.SeatsInRow).
		Count(&outside).Error
	if err != nil {
		return translate(err, "flight", "check tickets")
	}
	if outside > 0 {
		return apperror.Validation("airplane", fmt.Sprintf(
			"%d sold tickets on this flight do not fit airplane %s (%d rows, %d seats in row).",
			outside, airplane.Name, airplane.Rows, airplane.SeatsInRow))
	}
	return nil
}
