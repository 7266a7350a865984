package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// The store's error taxonomy. Constraint violations from the driver never
// leave this package untranslated.
var (
	// ErrNotFound reports that no row exists for the given identifier.
	ErrNotFound = errors.New("record not found")
	// ErrConflict reports a uniqueness or foreign-key violation.
	ErrConflict = errors.New("constraint conflict")
)

// translate maps GORM and raw sqlite3 errors onto the store taxonomy.
// Unknown errors pass through unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrConflict
	}
	// GORM's sqlite translator misses some constraint shapes; catch the
	// rest straight from the driver.
	var serr sqlite3.Error
	if errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint {
		return ErrConflict
	}
	return err
}
