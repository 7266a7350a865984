package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"orderdesk/model"
)

// Store wraps a single SQLite-backed GORM handle. It is constructed once
// at startup and passed to each service; the underlying *sql.DB pool is
// safe for concurrent use.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the SQLite file at path via database/sql and
// bridges it into GORM. Foreign-key enforcement is switched on in the DSN;
// without it SQLite parses REFERENCES clauses but never checks them.
func Open(path string) (*Store, error) {
	dsn := path + "?_foreign_keys=on&_busy_timeout=5000"
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	gdb, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{TranslateError: true})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("bridge database: %w", err)
	}
	return &Store{db: gdb}, nil
}

// Migrate creates or updates the three tables. Customers and items go
// first so the orders table can declare its foreign keys against them.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&model.Customer{}, &model.Item{}, &model.Order{})
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
