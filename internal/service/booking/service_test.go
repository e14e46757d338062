package booking_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/farellandr/airport-service/internal/access"
	"github.com/farellandr/airport-service/internal/apperror"
	"github.com/farellandr/airport-service/internal/models"
	"github.com/farellandr/airport-service/internal/repository"
	"github.com/farellandr/airport-service/internal/service/booking"
)

// passthroughTx runs the function without a database.
type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, tFunc func(ctx context.Context) error) error {
	return tFunc(ctx)
}

type MockFlightFinder struct {
	mock.Mock
}

func (m *MockFlightFinder) GetForBooking(ctx context.Context, id uuid.UUID) (*models.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderStore) CreateTicket(ctx context.Context, ticket *models.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockOrderStore) SeatTaken(ctx context.Context, flightID uuid.UUID, row, seat int) (bool, error) {
	args := m.Called(ctx, flightID, row, seat)
	if fn, ok := args.Get(0).(func(context.Context, uuid.UUID, int, int) bool); ok {
		return fn(ctx, flightID, row, seat), nil
	}
	return args.Bool(0), args.Error(1)
}

// smallFlight has an airplane with 2 rows of 3 seats.
func smallFlight() *models.Flight {
	return &models.Flight{
		ID:       uuid.New(),
		Airplane: &models.Airplane{ID: uuid.New(), Name: "Tiny", Rows: 2, SeatsInRow: 3},
	}
}

func newService(flights *MockFlightFinder, orders *MockOrderStore) *booking.Service {
	return booking.NewService(passthroughTx{}, flights, orders)
}

func bookingErr(t *testing.T, err error) *apperror.BookingError {
	t.Helper()
	var be *apperror.BookingError
	require.ErrorAs(t, err, &be)
	return be
}

func TestCreateOrder_Success(t *testing.T) {
	ctx := context.Background()
	flight := smallFlight()
	user := &access.Principal{UserID: uuid.New()}
	orderID := uuid.New()

	flights := new(MockFlightFinder)
	orders := new(MockOrderStore)
	flights.On("GetForBooking", mock.Anything, flight.ID).Return(flight, nil).Once()
	orders.On("SeatTaken", mock.Anything, flight.ID, mock.Anything, mock.Anything).Return(false, nil)
	orders.On("Create", mock.Anything, mock.MatchedBy(func(o *models.Order) bool {
		return o.UserID == user.UserID
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Order).ID = orderID
	}).Return(nil).Once()
	orders.On("CreateTicket", mock.Anything, mock.MatchedBy(func(tk *models.Ticket) bool {
		return tk.OrderID == orderID && tk.FlightID == flight.ID
	})).Return(nil).Twice()

	order, err := newService(flights, orders).CreateOrder(ctx, user, []booking.TicketRequest{
		{FlightID: flight.ID, Row: 1, Seat: 1},
		{FlightID: flight.ID, Row: 1, Seat: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	require.Len(t, order.Tickets, 2)
	assert.Equal(t, 1, order.Tickets[0].Seat)
	assert.Equal(t, 2, order.Tickets[1].Seat)
	flights.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestCreateOrder_RequiresAuthentication(t *testing.T) {
	flights := new(MockFlightFinder)
	orders := new(MockOrderStore)

	_, err := newService(flights, orders).CreateOrder(context.Background(), nil, []booking.TicketRequest{
		{FlightID: uuid.New(), Row: 1, Seat: 1},
	})

	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))
	flights.AssertNotCalled(t, "GetForBooking", mock.Anything, mock.Anything)
}

func TestCreateOrder_EmptyBatch(t *testing.T) {
	_, err := newService(new(MockFlightFinder), new(MockOrderStore)).
		CreateOrder(context.Background(), &access.Principal{UserID: uuid.New()}, nil)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "tickets")
}

func TestCreateOrder_Rejections(t *testing.T) {
	flight := smallFlight()
	missing := uuid.New()

	testCases := []struct {
		name      string
		requests  []booking.TicketRequest
		taken     map[[2]int]bool
		wantKind  apperror.Kind
		wantIndex int
		wantField string
		wantMsg   string
	}{
		{
			name:      "flight not found",
			requests:  []booking.TicketRequest{{FlightID: missing, Row: 1, Seat: 1}},
			wantKind:  apperror.KindNotFound,
			wantIndex: 0,
			wantField: "flight",
		},
		{
			name:      "row above airplane rows",
			requests:  []booking.TicketRequest{{FlightID: flight.ID, Row: 1, Seat: 1}, {FlightID: flight.ID, Row: 3, Seat: 1}},
			wantKind:  apperror.KindOutOfBounds,
			wantIndex: 1,
			wantField: "row",
			wantMsg:   "row number must be in available range: (1, rows): (1, 2), got 3",
		},
		{
			name:      "row zero",
			requests:  []booking.TicketRequest{{FlightID: flight.ID, Row: 0, Seat: 1}},
			wantKind:  apperror.KindOutOfBounds,
			wantIndex: 0,
			wantField: "row",
		},
		{
			name:      "seat above seats in row",
			requests:  []booking.TicketRequest{{FlightID: flight.ID, Row: 2, Seat: 4}},
			wantKind:  apperror.KindOutOfBounds,
			wantIndex: 0,
			wantField: "seat",
			wantMsg:   "seat number must be in available range: (1, seats_in_row): (1, 3), got 4",
		},
		{
			name:      "seat already sold",
			requests:  []booking.TicketRequest{{FlightID: flight.ID, Row: 1, Seat: 2}, {FlightID: flight.ID, Row: 2, Seat: 1}},
			taken:     map[[2]int]bool{{1, 2}: true},
			wantKind:  apperror.KindSeatTaken,
			wantIndex: 0,
			wantField: "seat",
		},
		{
			name:      "same seat twice in batch",
			requests:  []booking.TicketRequest{{FlightID: flight.ID, Row: 2, Seat: 3}, {FlightID: flight.ID, Row: 2, Seat: 3}},
			wantKind:  apperror.KindDuplicateInBatch,
			wantIndex: 1,
			wantField: "seat",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			flights := new(MockFlightFinder)
			orders := new(MockOrderStore)
			flights.On("GetForBooking", mock.Anything, flight.ID).Return(flight, nil).Maybe()
			flights.On("GetForBooking", mock.Anything, missing).Return(nil, apperror.NotFound("flight not found.")).Maybe()
			orders.On("SeatTaken", mock.Anything, flight.ID, mock.Anything, mock.Anything).Return(
				func(_ context.Context, _ uuid.UUID, row, seat int) bool { return tc.taken[[2]int{row, seat}] },
				nil,
			).Maybe()

			_, err := newService(flights, orders).CreateOrder(context.Background(),
				&access.Principal{UserID: uuid.New()}, tc.requests)

			be := bookingErr(t, err)
			require.Len(t, be.Tickets, 1)
			assert.Equal(t, tc.wantKind, be.Kind())
			assert.Equal(t, tc.wantIndex, be.Tickets[0].Index)
			assert.Equal(t, tc.wantField, be.Tickets[0].Field)
			if tc.wantMsg != "" {
				assert.Equal(t, tc.wantMsg, be.Tickets[0].Message)
			}
			orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			orders.AssertNotCalled(t, "CreateTicket", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateOrder_ReportsEveryFailingTicket(t *testing.T) {
	flight := smallFlight()
	flights := new(MockFlightFinder)
	orders := new(MockOrderStore)
	flights.On("GetForBooking", mock.Anything, flight.ID).Return(flight, nil)
	orders.On("SeatTaken", mock.Anything, flight.ID, 1, 1).Return(true, nil)
	orders.On("SeatTaken", mock.Anything, flight.ID, mock.Anything, mock.Anything).Return(false, nil)

	_, err := newService(flights, orders).CreateOrder(context.Background(), &access.Principal{UserID: uuid.New()},
		[]booking.TicketRequest{
			{FlightID: flight.ID, Row: 5, Seat: 1},
			{FlightID: flight.ID, Row: 2, Seat: 2},
			{FlightID: flight.ID, Row: 1, Seat: 1},
			{FlightID: flight.ID, Row: 2, Seat: 2},
		})

	be := bookingErr(t, err)
	require.Len(t, be.Tickets, 3)
	assert.Equal(t, apperror.KindOutOfBounds, be.Tickets[0].Kind)
	assert.Equal(t, 0, be.Tickets[0].Index)
	assert.Equal(t, apperror.KindSeatTaken, be.Tickets[1].Kind)
	assert.Equal(t, 2, be.Tickets[1].Index)
	assert.Equal(t, apperror.KindDuplicateInBatch, be.Tickets[2].Kind)
	assert.Equal(t, 3, be.Tickets[2].Index)
	assert.Equal(t, apperror.KindOutOfBounds, apperror.KindOf(err))
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrder_UniqueViolationBecomesSeatTaken(t *testing.T) {
	flight := smallFlight()
	flights := new(MockFlightFinder)
	orders := new(MockOrderStore)
	flights.On("GetForBooking", mock.Anything, flight.ID).Return(flight, nil)
	orders.On("SeatTaken", mock.Anything, flight.ID, mock.Anything, mock.Anything).Return(false, nil)
	orders.On("Create", mock.Anything, mock.Anything).Return(nil)
	orders.On("CreateTicket", mock.Anything, mock.MatchedBy(func(tk *models.Ticket) bool { return tk.Seat == 1 })).Return(nil)
	orders.On("CreateTicket", mock.Anything, mock.MatchedBy(func(tk *models.Ticket) bool { return tk.Seat == 2 })).
		Return(fmt.Errorf("create ticket: %w", repository.ErrDuplicate))

	_, err := newService(flights, orders).CreateOrder(context.Background(), &access.Principal{UserID: uuid.New()},
		[]booking.TicketRequest{
			{FlightID: flight.ID, Row: 1, Seat: 1},
			{FlightID: flight.ID, Row: 1, Seat: 2},
		})

	be := bookingErr(t, err)
	require.Len(t, be.Tickets, 1)
	assert.Equal(t, apperror.KindSeatTaken, be.Kind())
	assert.Equal(t, 1, be.Tickets[0].Index)
}

func TestCreateOrder_StoreFailureIsInternal(t *testing.T) {
	flight := smallFlight()
	flights := new(MockFlightFinder)
	orders := new(MockOrderStore)
	flights.On("GetForBooking", mock.Anything, flight.ID).Return(flight, nil)
	orders.On("SeatTaken", mock.Anything, flight.ID, 1, 1).Return(false, errors.New("connection reset"))

	_, err := newService(flights, orders).CreateOrder(context.Background(), &access.Principal{UserID: uuid.New()},
		[]booking.TicketRequest{{FlightID: flight.ID, Row: 1, Seat: 1}})

	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}

func TestCreateOrder_InsertsInSeatOrder(t *testing.T) {
	flight := smallFlight()
	flights := new(MockFlightFinder)
	orders := new(MockOrderStore)
	flights.On("GetForBooking", mock.Anything, flight.ID).Return(flight, nil)
	orders.On("SeatTaken", mock.Anything, flight.ID, mock.Anything, mock.Anything).Return(false, nil)
	orders.On("Create", mock.Anything, mock.Anything).Return(nil)

	var inserted [][2]int
	orders.On("CreateTicket", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		tk := args.Get(1).(*models.Ticket)
		inserted = append(inserted, [2]int{tk.Row, tk.Seat})
	}).Return(nil)

	order, err := newService(flights, orders).CreateOrder(context.Background(), &access.Principal{UserID: uuid.New()},
		[]booking.TicketRequest{
			{FlightID: flight.ID, Row: 2, Seat: 1},
			{FlightID: flight.ID, Row: 1, Seat: 3},
			{FlightID: flight.ID, Row: 1, Seat: 1},
		})

	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 1}, {1, 3}, {2, 1}}, inserted)
	require.Len(t, order.Tickets, 3)
	assert.Equal(t, 2, order.Tickets[0].Row)
	assert.Equal(t, 3, order.Tickets[1].Seat)
}

func TestCreateOrder_DeadlockBecomesSeatTaken(t *testing.T) {
	flight := smallFlight()
	flights := new(MockFlightFinder)
	orders := new(MockOrderStore)
	flights.On("GetForBooking", mock.Anything, flight.ID).Return(flight, nil)
	orders.On("SeatTaken", mock.Anything, flight.ID, mock.Anything, mock.Anything).Return(false, nil)
	orders.On("Create", mock.Anything, mock.Anything).Return(nil)
	orders.On("CreateTicket", mock.Anything, mock.MatchedBy(func(tk *models.Ticket) bool { return tk.Seat == 1 })).Return(nil)
	orders.On("CreateTicket", mock.Anything, mock.MatchedBy(func(tk *models.Ticket) bool { return tk.Seat == 2 })).
		Return(fmt.Errorf("create ticket: %w", repository.ErrConflict))

	_, err := newService(flights, orders).CreateOrder(context.Background(), &access.Principal{UserID: uuid.New()},
		[]booking.TicketRequest{
			{FlightID: flight.ID, Row: 1, Seat: 2},
			{FlightID: flight.ID, Row: 1, Seat: 1},
		})

	be := bookingErr(t, err)
	require.Len(t, be.Tickets, 1)
	assert.Equal(t, apperror.KindSeatTaken, be.Kind())
	assert.Equal(t, 0, be.Tickets[0].Index)
}
