package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/farellandr/airport-service/internal/apperror"
)

const (
	uniqueViolation      = "23505"
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

var (
	// ErrDuplicate is returned when an insert or update hits a unique index.
	ErrDuplicate = errors.New("duplicate key")
	// ErrConflict is returned when postgres aborts the transaction to resolve
	// a deadlock or serialization failure with a concurrent writer.
	ErrConflict = errors.New("concurrent write conflict")
)

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func isConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && (pgErr.Code == deadlockDetected || pgErr.Code == serializationFailure)
}

// translate maps driver errors onto the repository and app error vocabulary.
func translate(err error, entity string, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.NotFound("%s not found.", entity)
	case isUniqueViolation(err):
		return fmt.Errorf("%s %s: %w", op, entity, ErrDuplicate)
	case isConflict(err):
		return fmt.Errorf("%s %s: %w", op, entity, ErrConflict)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperror.New(apperror.KindValidation, fmt.Sprintf("Referenced object for %s does not exist.", entity))
	default:
		return fmt.Errorf("%s %s: %w", op, entity, err)
	}
}
