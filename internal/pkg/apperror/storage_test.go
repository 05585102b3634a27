package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type sqliteError struct {
	code int
}

func (e *sqliteError) Error() string { return fmt.Sprintf("sqlite error %d", e.code) }
func (e *sqliteError) Code() int     { return e.code }

func TestFromStorage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"record not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"gorm foreign key", gorm.ErrForeignKeyViolated, ErrConstraintViolation},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, ErrConstraintViolation},
		{"gorm check", gorm.ErrCheckConstraintViolated, ErrConstraintViolation},
		{"pg foreign key", &pgconn.PgError{Code: "23503", ColumnName: "user_id"}, ErrConstraintViolation},
		{"pg unique", &pgconn.PgError{Code: "23505"}, ErrConstraintViolation},
		{"pg not null", &pgconn.PgError{Code: "23502", ColumnName: "title"}, ErrConstraintViolation},
		{"pg check", &pgconn.PgError{Code: "23514"}, ErrConstraintViolation},
		{"pg wrapped", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), ErrConstraintViolation},
		{"pg connection", &pgconn.PgError{Code: "08006"}, ErrStorage},
		{"sqlite foreign key", &sqliteError{code: 787}, ErrConstraintViolation},
		{"sqlite unique", &sqliteError{code: 2067}, ErrConstraintViolation},
		{"sqlite busy", &sqliteError{code: 5}, ErrStorage},
		{"anything else", errors.New("connection reset"), ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromStorage(tt.err)
			assert.ErrorIs(t, got, tt.kind)
		})
	}
}

func TestFromStorageKeepsCause(t *testing.T) {
	cause := &pgconn.PgError{Code: "23503", ConstraintName: "fk_notebooks_user"}
	err := FromStorage(cause)

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "the referenced fk_notebooks_user does not exist", Message(err))
}

func TestFromStoragePassesThroughAppErrors(t *testing.T) {
	original := NotFound("user %d not found", 7)
	assert.Same(t, original, FromStorage(original))
	assert.Nil(t, FromStorage(nil))
}

func TestMessageAndCode(t *testing.T) {
	assert.Equal(t, "storage failure", Message(Storage(errors.New("disk full"))))
	assert.Equal(t, "internal server error", Message(errors.New("boom")))

	assert.Equal(t, "NOT_FOUND", Code(NotFound("x")))
	assert.Equal(t, "CONSTRAINT_VIOLATION", Code(Constraint("x", nil)))
	assert.Equal(t, "VALIDATION_FAILED", Code(Validation("x")))
	assert.Equal(t, "UNAUTHORIZED", Code(Unauthorized("x")))
	assert.Equal(t, "ASSET_MISSING", Code(AssetMissing("x")))
	assert.Equal(t, "STORAGE_ERROR", Code(errors.New("x")))
}
