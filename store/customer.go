package store

import (
	"context"
	"fmt"

	"orderdesk/model"
)

// CreateCustomer inserts a new customer row. A client-supplied ID that
// already exists yields ErrConflict; a zero ID lets SQLite assign the next
// one. The stored row, including assigned ID and timestamps, is written
// back into c.
func (s *Store) CreateCustomer(ctx context.Context, c *model.Customer) error {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create customer: %w", translate(err))
	}
	return nil
}

// GetCustomer fetches a customer by primary key.
func (s *Store) GetCustomer(ctx context.Context, id uint) (*model.Customer, error) {
	var c model.Customer
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, fmt.Errorf("get customer %d: %w", id, translate(err))
	}
	return &c, nil
}

// UpdateCustomer replaces all mutable fields of the customer identified by
// c.ID. Missing rows yield ErrNotFound.
func (s *Store) UpdateCustomer(ctx context.Context, c *model.Customer) error {
	res := s.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("id = ?", c.ID).
		Select("name", "phone").
		Updates(c)
	if res.Error != nil {
		return fmt.Errorf("update customer %d: %w", c.ID, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update customer %d: %w", c.ID, ErrNotFound)
	}
	return nil
}

// DeleteCustomer removes a customer. A customer still referenced by an
// order trips the foreign key and yields ErrConflict.
func (s *Store) DeleteCustomer(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&model.Customer{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete customer %d: %w", id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete customer %d: %w", id, ErrNotFound)
	}
	return nil
}

// CountCustomers reports the number of customer rows. The seed loader uses
// it to refuse re-seeding.
func (s *Store) CountCustomers(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&model.Customer{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count customers: %w", translate(err))
	}
	return n, nil
}
