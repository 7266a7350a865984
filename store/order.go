package store

import (
	"context"
	"fmt"

	"orderdesk/model"
)

// CreateOrder inserts a new order. The customer and item references are
// checked by the schema's foreign keys in the same statement, so an order
// pointing at a missing row fails with ErrConflict and nothing persists.
func (s *Store) CreateOrder(ctx context.Context, o *model.Order) error {
	if err := s.db.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("create order: %w", translate(err))
	}
	return nil
}

// GetOrder fetches an order by primary key.
func (s *Store) GetOrder(ctx context.Context, id uint) (*model.Order, error) {
	var o model.Order
	if err := s.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, translate(err))
	}
	return &o, nil
}

// UpdateOrder replaces all mutable fields of the order identified by o.ID.
// Repointing the order at a missing customer or item yields ErrConflict.
func (s *Store) UpdateOrder(ctx context.Context, o *model.Order) error {
	res := s.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", o.ID).
		Select("customer_id", "item_id", "quantity", "notes").
		Updates(o)
	if res.Error != nil {
		return fmt.Errorf("update order %d: %w", o.ID, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update order %d: %w", o.ID, ErrNotFound)
	}
	return nil
}

// DeleteOrder removes an order. Nothing references orders, so only
// ErrNotFound can occur.
func (s *Store) DeleteOrder(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&model.Order{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete order %d: %w", id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete order %d: %w", id, ErrNotFound)
	}
	return nil
}
