package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// isUniqueViolation reports whether err is a Postgres unique-constraint
// failure, together with the violated constraint name. The availability
// pre-check is race-prone between check and insert; the unique indexes are
// the real guard, and their violations surface here.
func isUniqueViolation(err error) (constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

func containsField(constraint, field string) bool {
	return strings.Contains(constraint, field)
}

// firstOrNil maps gorm's not-found error to (absent, no error).
func firstOrNil[T any](tx *gorm.DB, out *T) (*T, error) {
	if err := tx.First(out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}
