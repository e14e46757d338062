// Package booking turns a batch of seat requests into one Order. The batch either
// commits whole or is rejected whole with one TicketError per failing request.
package booking

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/farellandr/airport-service/internal/access"
	"github.com/farellandr/airport-service/internal/apperror"
	"github.com/farellandr/airport-service/internal/metrics"
	"github.com/farellandr/airport-service/internal/models"
	"github.com/farellandr/airport-service/internal/repository"
)

type TicketRequest struct {
	FlightID uuid.UUID `json:"flight" binding:"required"`
	Row      int       `json:"row"`
	Seat     int       `json:"seat"`
}

type UseCase interface {
	CreateOrder(ctx context.Context, principal *access.Principal, requests []TicketRequest) (*models.Order, error)
}

type FlightFinder interface {
	GetForBooking(ctx context.Context, id uuid.UUID) (*models.Flight, error)
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	CreateTicket(ctx context.Context, ticket *models.Ticket) error
	SeatTaken(ctx context.Context, flightID uuid.UUID, row, seat int) (bool, error)
}

type Service struct {
	txManager repository.Transactor
	flights   FlightFinder
	orders    OrderStore
}

var _ UseCase = (*Service)(nil)

func NewService(txManager repository.Transactor, flights FlightFinder, orders OrderStore) *Service {
	return &Service{
		txManager: txManager,
		flights:   flights,
		orders:    orders,
	}
}

type seatKey struct {
	flightID uuid.UUID
	row      int
	seat     int
}

func (s *Service) CreateOrder(ctx context.Context, principal *access.Principal, requests []TicketRequest) (*models.Order, error) {
	if err := access.Check(principal, access.KindOrder, access.VerbWrite); err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, apperror.Validation("tickets", "Order must contain at least one ticket.")
	}

	start := time.Now()
	defer func() {
		metrics.BookingDuration.Observe(time.Since(start).Seconds())
	}()

	var order *models.Order
	err := s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		tickets, err := s.validate(txCtx, requests)
		if err != nil {
			return err
		}

		order = &models.Order{UserID: principal.UserID}
		if err := s.orders.Create(txCtx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		// tickets[i] belongs to requests[i]; inserts follow seat order so that
		// overlapping batches lock index entries in the same sequence.
		for _, i := range insertOrder(tickets) {
			tickets[i].OrderID = order.ID
			if err := s.orders.CreateTicket(txCtx, &tickets[i]); err != nil {
				// A concurrent booking committed or holds this seat.
				if errors.Is(err, repository.ErrDuplicate) || errors.Is(err, repository.ErrConflict) {
					return &apperror.BookingError{Tickets: []apperror.TicketError{seatTaken(i, tickets[i])}}
				}
				return fmt.Errorf("create ticket %d: %w", i, err)
			}
		}
		order.Tickets = tickets
		return nil
	})
	if err != nil {
		kind := apperror.KindOf(err)
		metrics.BookingRejections.WithLabelValues(string(kind)).Inc()
		if kind == apperror.KindInternal {
			slog.ErrorContext(ctx, "booking failed", "user_id", principal.UserID, "error", err)
		} else {
			slog.InfoContext(ctx, "booking rejected", "user_id", principal.UserID, "kind", kind, "error", err)
		}
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	metrics.TicketsBooked.Add(float64(len(order.Tickets)))
	return order, nil
}

// validate checks every request and collects all failures before returning.
func (s *Service) validate(ctx context.Context, requests []TicketRequest) ([]models.Ticket, error) {
	flights := make(map[uuid.UUID]*models.Flight)
	seen := make(map[seatKey]bool, len(requests))
	tickets := make([]models.Ticket, 0, len(requests))
	var failures []apperror.TicketError

	for i, req := range requests {
		flight, err := s.flight(ctx, req.FlightID, flights)
		if err != nil {
			return nil, err
		}
		if flight == nil {
			failures = append(failures, apperror.TicketError{
				Index:   i,
				Kind:    apperror.KindNotFound,
				Field:   "flight",
				Message: fmt.Sprintf("Flight %s not found.", req.FlightID),
			})
			continue
		}

		if failure, ok := checkBounds(i, req, flight.Airplane); !ok {
			failures = append(failures, failure)
			continue
		}

		ticket := models.Ticket{FlightID: req.FlightID, Row: req.Row, Seat: req.Seat}

		taken, err := s.orders.SeatTaken(ctx, req.FlightID, req.Row, req.Seat)
		if err != nil {
			return nil, err
		}
		if taken {
			failures = append(failures, seatTaken(i, ticket))
			continue
		}

		key := seatKey{flightID: req.FlightID, row: req.Row, seat: req.Seat}
		if seen[key] {
			failures = append(failures, apperror.TicketError{
				Index:   i,
				Kind:    apperror.KindDuplicateInBatch,
				Field:   "seat",
				Message: fmt.Sprintf("Seat (row: %d, seat: %d) on flight %s is requested more than once in this order.",
					ticket.Row, ticket.Seat, ticket.FlightID),
			})
			continue
		}
		seen[key] = true

		tickets = append(tickets, ticket)
	}

	if len(failures) > 0 {
		return nil, &apperror.BookingError{Tickets: failures}
	}
	return tickets, nil
}

// flight memoizes lookups per batch. A nil flight with nil error means not found.
func (s *Service) flight(ctx context.Context, id uuid.UUID, cache map[uuid.UUID]*models.Flight) (*models.Flight, error) {
	if flight, ok := cache[id]; ok {
		return flight, nil
	}

	flight, err := s.flights.GetForBooking(ctx, id)
	if err != nil {
		if apperror.KindOf(err) != apperror.KindNotFound {
			return nil, err
		}
		flight = nil
	}
	cache[id] = flight
	return flight, nil
}

// insertOrder returns ticket indexes sorted by (flight, row, seat).
func insertOrder(tickets []models.Ticket) []int {
	order := make([]int, len(tickets))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		ta, tb := tickets[a], tickets[b]
		if c := bytes.Compare(ta.FlightID[:], tb.FlightID[:]); c != 0 {
			return c
		}
		if c := cmp.Compare(ta.Row, tb.Row); c != 0 {
			return c
		}
		return cmp.Compare(ta.Seat, tb.Seat)
	})
	return order
}

func checkBounds(index int, req TicketRequest, airplane *models.Airplane) (apperror.TicketError, bool) {
	if airplane == nil {
		return apperror.TicketError{
			Index:   index,
			Kind:    apperror.KindNotFound,
			Field:   "flight",
			Message: fmt.Sprintf("Airplane for flight %s not found.", req.FlightID),
		}, false
	}
	if req.Row < 1 || req.Row > airplane.Rows {
		return apperror.TicketError{
			Index: index,
			Kind:  apperror.KindOutOfBounds,
			Field: "row",
			Message: fmt.Sprintf("row number must be in available range: (1, rows): (1, %d), got %d",
				airplane.Rows, req.Row),
		}, false
	}
	if req.Seat < 1 || req.Seat > airplane.SeatsInRow {
		return apperror.TicketError{
			Index: index,
			Kind:  apperror.KindOutOfBounds,
			Field: "seat",
			Message: fmt.Sprintf("seat number must be in available range: (1, seats_in_row): (1, %d), got %d",
				airplane.SeatsInRow, req.Seat),
		}, false
	}
	return apperror.TicketError{}, true
}

func seatTaken(index int, ticket models.Ticket) apperror.TicketError {
	return apperror.TicketError{
		Index:   index,
		Kind:    apperror.KindSeatTaken,
		Field:   "seat",
		Message: fmt.Sprintf("Seat (row: %d, seat: %d) on flight %s is already taken.",
			ticket.Row, ticket.Seat, ticket.FlightID),
	}
}
