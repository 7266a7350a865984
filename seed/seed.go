// Package seed loads the static customer and item reference data into an
// empty store. It runs once: a store that already holds customers or
// items is left untouched.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"orderdesk/model"
	"orderdesk/service"
	"orderdesk/store"
)

// ErrAlreadySeeded reports that the store already contains reference data.
var ErrAlreadySeeded = errors.New("store already contains reference data")

type customerRecord struct {
	ID    uint   `yaml:"id"`
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
}

type itemRecord struct {
	ID    uint    `yaml:"id"`
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
}

// Run loads both reference files and applies every record in a single
// transaction. It returns the number of rows inserted. Records are held
// to the same rules as API input, so a bad file fails before any write.
func Run(ctx context.Context, st *store.Store, log *slog.Logger, customersPath, itemsPath string) (int, error) {
	customers, err := readRecords[customerRecord](customersPath)
	if err != nil {
		return 0, err
	}
	items, err := readRecords[itemRecord](itemsPath)
	if err != nil {
		return 0, err
	}

	if n, err := st.CountCustomers(ctx); err != nil {
		return 0, err
	} else if n > 0 {
		return 0, ErrAlreadySeeded
	}
	if n, err := st.CountItems(ctx); err != nil {
		return 0, err
	} else if n > 0 {
		return 0, ErrAlreadySeeded
	}

	uow := st.NewUnitOfWork()
	for _, rec := range customers {
		if err := service.ValidateName(rec.Name); err != nil {
			return 0, fmt.Errorf("seed customer %q: %w", rec.Name, err)
		}
		phone, err := service.NormalizePhone(rec.Phone)
		if err != nil {
			return 0, fmt.Errorf("seed customer %q: %w", rec.Name, err)
		}
		uow.Add(&model.Customer{ID: rec.ID, Name: rec.Name, Phone: phone})
	}
	for _, rec := range items {
		if err := service.ValidateName(rec.Name); err != nil {
			return 0, fmt.Errorf("seed item %q: %w", rec.Name, err)
		}
		if rec.Price < 0 {
			return 0, fmt.Errorf("seed item %q: negative price", rec.Name)
		}
		uow.Add(&model.Item{ID: rec.ID, Name: rec.Name, Price: service.RoundPrice(rec.Price)})
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, fmt.Errorf("apply seed data: %w", err)
	}
	total := len(customers) + len(items)
	log.Info("seed data loaded", "customers", len(customers), "items", len(items))
	return total, nil
}

func readRecords[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	var recs []T
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&recs); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return recs, nil
}
