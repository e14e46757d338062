package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "not found", err: NotFound("flight %d not found", 7), want: KindNotFound},
		{name: "wrapped validation", err: fmt.Errorf("create: %w", Validation("name", "required")), want: KindValidation},
		{name: "booking error", err: &BookingError{Tickets: []TicketError{{Index: 1, Kind: KindSeatTaken}}}, want: KindSeatTaken},
		{name: "plain error", err: errors.New("boom"), want: KindInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(KindNotFound))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindOutOfBounds))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindDuplicateInBatch))
	assert.Equal(t, http.StatusConflict, HTTPStatus(KindSeatTaken))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(KindPermissionDenied))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(KindUnauthenticated))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindInternal))
}

func TestFieldErrors(t *testing.T) {
	fields := FieldErrors{}
	assert.NoError(t, fields.Err())

	fields.Add("rows", "must be positive")
	fields.Add("rows", "must be an integer")
	fields.Add("name", "may not be blank")

	err := fields.Err()
	assert.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, "Invalid input.: name: may not be blank, rows: must be positive; must be an integer", err.Error())
}

func TestBookingError_Message(t *testing.T) {
	err := &BookingError{Tickets: []TicketError{
		{Index: 0, Kind: KindOutOfBounds, Field: "row", Message: "row out of range"},
		{Index: 2, Kind: KindSeatTaken, Message: "seat taken"},
	}}

	assert.Equal(t, KindOutOfBounds, err.Kind())
	assert.Equal(t, "booking rejected: ticket 0: row out of range; ticket 2: seat taken", err.Error())
}
