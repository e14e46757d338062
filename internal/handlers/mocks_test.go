package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/farellandr/airport-service/internal/access"
	"github.com/farellandr/airport-service/internal/models"
	"github.com/farellandr/airport-service/internal/repository"
	"github.com/farellandr/airport-service/internal/service/booking"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) List(ctx context.Context, page repository.Page) (repository.PageResult[models.Airport], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(repository.PageResult[models.Airport]), args.Error(1)
}

func (m *MockAirportRepository) Get(ctx context.Context, id uuid.UUID) (*models.Airport, error) {
	args := m.Called(ctx, id)
	airport, _ := args.Get(0).(*models.Airport)
	return airport, args.Error(1)
}

func (m *MockAirportRepository) Create(ctx context.Context, airport *models.Airport) error {
	return m.Called(ctx, airport).Error(0)
}

func (m *MockAirportRepository) SetImage(ctx context.Context, id uuid.UUID, image string) (*models.Airport, error) {
	args := m.Called(ctx, id, image)
	airport, _ := args.Get(0).(*models.Airport)
	return airport, args.Error(1)
}

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context, filter repository.FlightFilter, page repository.Page) (repository.PageResult[models.Flight], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(repository.PageResult[models.Flight]), args.Error(1)
}

func (m *MockFlightRepository) Get(ctx context.Context, id uuid.UUID) (*models.Flight, error) {
	args := m.Called(ctx, id)
	flight, _ := args.Get(0).(*models.Flight)
	return flight, args.Error(1)
}

func (m *MockFlightRepository) GetForBooking(ctx context.Context, id uuid.UUID) (*models.Flight, error) {
	args := m.Called(ctx, id)
	flight, _ := args.Get(0).(*models.Flight)
	return flight, args.Error(1)
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *models.Flight) error {
	return m.Called(ctx, flight).Error(0)
}

func (m *MockFlightRepository) Update(ctx context.Context, flight *models.Flight) error {
	return m.Called(ctx, flight).Error(0)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockCrewRepository struct {
	mock.Mock
}

func (m *MockCrewRepository) List(ctx context.Context, page repository.Page) (repository.PageResult[models.Crew], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(repository.PageResult[models.Crew]), args.Error(1)
}

func (m *MockCrewRepository) Create(ctx context.Context, crew *models.Crew) error {
	return m.Called(ctx, crew).Error(0)
}

func (m *MockCrewRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Crew, error) {
	args := m.Called(ctx, ids)
	crew, _ := args.Get(0).([]models.Crew)
	return crew, args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) CreateTicket(ctx context.Context, ticket *models.Ticket) error {
	return m.Called(ctx, ticket).Error(0)
}

func (m *MockOrderRepository) SeatTaken(ctx context.Context, flightID uuid.UUID, row, seat int) (bool, error) {
	args := m.Called(ctx, flightID, row, seat)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ListByOwner(ctx context.Context, userID uuid.UUID, page repository.Page) (repository.PageResult[models.Order], error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).(repository.PageResult[models.Order]), args.Error(1)
}

func (m *MockOrderRepository) GetTicket(ctx context.Context, userID, orderID, ticketID uuid.UUID) (*models.Ticket, error) {
	args := m.Called(ctx, userID, orderID, ticketID)
	ticket, _ := args.Get(0).(*models.Ticket)
	return ticket, args.Error(1)
}

func (m *MockOrderRepository) FindTicket(ctx context.Context, ticketID uuid.UUID) (*models.Ticket, error) {
	args := m.Called(ctx, ticketID)
	ticket, _ := args.Get(0).(*models.Ticket)
	return ticket, args.Error(1)
}

type MockBooking struct {
	mock.Mock
}

func (m *MockBooking) CreateOrder(ctx context.Context, principal *access.Principal, requests []booking.TicketRequest) (*models.Order, error) {
	args := m.Called(ctx, principal, requests)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}
