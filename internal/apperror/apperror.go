// Package apperror defines the error taxonomy shared by the service layers and the
// HTTP handlers. Every error returned to a client is one of these kinds.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindValidation       Kind = "validation_error"
	KindOutOfBounds      Kind = "out_of_bounds"
	KindSeatTaken        Kind = "seat_taken"
	KindDuplicateInBatch Kind = "duplicate_in_batch"
	KindPermissionDenied Kind = "permission_denied"
	KindUnauthenticated  Kind = "unauthenticated"
	KindInternal         Kind = "internal"
)

// Error is a field-attributable error of a single kind.
type Error struct {
	Kind    Kind
	Message string
	Fields  FieldErrors
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Fields)
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

func PermissionDenied(message string) *Error {
	return New(KindPermissionDenied, message)
}

func Unauthenticated(message string) *Error {
	return New(KindUnauthenticated, message)
}

// Validation builds a validation error for a single field.
func Validation(field, message string) *Error {
	fields := FieldErrors{}
	fields.Add(field, message)
	return &Error{Kind: KindValidation, Message: "Invalid input.", Fields: fields}
}

// FieldErrors collects validation messages keyed by field name.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Err returns nil when no field failed.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &Error{Kind: KindValidation, Message: "Invalid input.", Fields: f}
}

func (f FieldErrors) String() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(f[k], "; ")))
	}
	return strings.Join(parts, ", ")
}

// TicketError reports why one requested ticket of a booking batch was rejected.
type TicketError struct {
	Index   int    `json:"index"`
	Kind    Kind   `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// BookingError rejects a whole booking batch. Tickets is never empty.
type BookingError struct {
	Tickets []TicketError
}

func (e *BookingError) Error() string {
	msgs := make([]string, 0, len(e.Tickets))
	for _, t := range e.Tickets {
		msgs = append(msgs, fmt.Sprintf("ticket %d: %s", t.Index, t.Message))
	}
	return "booking rejected: " + strings.Join(msgs, "; ")
}

// Kind is the kind of the first failing ticket.
func (e *BookingError) Kind() Kind {
	if len(e.Tickets) == 0 {
		return KindValidation
	}
	return e.Tickets[0].Kind
}

// KindOf returns KindInternal for errors outside the taxonomy.
func KindOf(err error) Kind {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Kind()
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func HTTPStatus(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindOutOfBounds, KindDuplicateInBatch:
		return http.StatusBadRequest
	case KindSeatTaken:
		return http.StatusConflict
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
