package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farellandr/airport-service/internal/models"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	CreateTicket(ctx context.Context, ticket *models.Ticket) error
	SeatTaken(ctx context.Context, flightID uuid.UUID, row, seat int) (bool, error)
	ListByOwner(ctx context.Context, userID uuid.UUID, page Page) (PageResult[models.Order], error)
	GetTicket(ctx context.Context, userID, orderID, ticketID uuid.UUID) (*models.Ticket, error)
	FindTicket(ctx context.Context, ticketID uuid.UUID) (*models.Ticket, error)
}

type GormOrderRepository struct {
	db *gorm.DB
}

var _ OrderRepository = (*GormOrderRepository)(nil)

func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create inserts the order row only; tickets go through CreateTicket.
func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return translate(conn(ctx, r.db).Omit("User", "Tickets").Create(order).Error, "order", "create")
}

// CreateTicket returns an error wrapping ErrDuplicate when the seat is already sold.
func (r *GormOrderRepository) CreateTicket(ctx context.Context, ticket *models.Ticket) error {
	return translate(conn(ctx, r.db).Omit("Flight", "Order").Create(ticket).Error, "ticket", "create")
}

func (r *GormOrderRepository) SeatTaken(ctx context.Context, flightID uuid.UUID, row, seat int) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Ticket{}).
		Where(`flight_id = ? AND "row" = ? AND seat = ?`, flightID, row, seat).
		Count(&count).Error
	if err != nil {
		return false, translate(err, "ticket", "check")
	}
	return count > 0, nil
}

// ListByOwner returns the owner's orders newest first, tickets ordered by seat.
func (r *GormOrderRepository) ListByOwner(ctx context.Context, userID uuid.UUID, page Page) (PageResult[models.Order], error) {
	query := conn(ctx, r.db).Model(&models.Order{}).Where("user_id = ?", userID)

	result, err := paginate[models.Order](query, page, "created_at DESC", func(db *gorm.DB) *gorm.DB {
		return db.
			Preload("Tickets", func(db *gorm.DB) *gorm.DB {
				return db.Order(`"row" ASC, seat ASC`)
			}).
			Preload("Tickets.Flight.Route.Source").
			Preload("Tickets.Flight.Route.Destination")
	})
	return result, translate(err, "order", "list")
}

// GetTicket hides tickets of other owners behind NotFound.
func (r *GormOrderRepository) GetTicket(ctx context.Context, userID, orderID, ticketID uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := conn(ctx, r.db).
		Where("tickets.id = ? AND tickets.order_id = ?", ticketID, orderID).
		Where("tickets.order_id IN (SELECT id FROM orders WHERE user_id = ?)", userID).
		Preload("Flight.Route.Source").
		Preload("Flight.Route.Destination").
		First(&ticket).Error
	if err != nil {
		return nil, translate(err, "ticket", "get")
	}
	return &ticket, nil
}

// FindTicket looks a ticket up regardless of owner. Callers gate it on staff access.
func (r *GormOrderRepository) FindTicket(ctx context.Context, ticketID uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := conn(ctx, r.db).
		Preload("Flight.Route.Source").
		Preload("Flight.Route.Destination").
		First(&ticket, "id = ?", ticketID).Error
	if err != nil {
		return nil, translate(err, "ticket", "get")
	}
	return &ticket, nil
}
