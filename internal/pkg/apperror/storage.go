package apperror

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE class 23 is "integrity constraint violation".
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// sqliteConstraint is the primary SQLITE_CONSTRAINT result code; extended
// codes carry it in the low byte.
const sqliteConstraint = 19

type codedError interface {
	Code() int
}

// FromStorage classifies an error returned by gorm. Integrity violations
// become ConstraintViolation, a missing row becomes NotFound and anything
// else is a StorageError.
func FromStorage(err error) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound("record not found")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return Constraint("the referenced record does not exist", err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Constraint("the referenced record is already in use", err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return Constraint("one or more values do not meet required conditions", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return Constraint(fmt.Sprintf("the referenced %s does not exist", referencedName(pgErr.ColumnName, pgErr.ConstraintName)), err)
		case pgUniqueViolation:
			return Constraint("the referenced record is already in use", err)
		case pgNotNullViolation:
			return Constraint(fmt.Sprintf("%s is required", pgErr.ColumnName), err)
		case pgCheckViolation:
			return Constraint("one or more values do not meet required conditions", err)
		}
		return Storage(err)
	}

	var coded codedError
	if errors.As(err, &coded) && coded.Code()&0xff == sqliteConstraint {
		return Constraint("constraint failed", err)
	}

	return Storage(err)
}

func referencedName(column, constraint string) string {
	if column != "" {
		return column
	}
	if constraint != "" {
		return constraint
	}
	return "record"
}
