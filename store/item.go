package store

import (
	"context"
	"fmt"

	"orderdesk/model"
)

// CreateItem inserts a new item row, assigning the ID when it is zero.
func (s *Store) CreateItem(ctx context.Context, it *model.Item) error {
	if err := s.db.WithContext(ctx).Create(it).Error; err != nil {
		return fmt.Errorf("create item: %w", translate(err))
	}
	return nil
}

// GetItem fetches an item by primary key.
func (s *Store) GetItem(ctx context.Context, id uint) (*model.Item, error) {
	var it model.Item
	if err := s.db.WithContext(ctx).First(&it, id).Error; err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, translate(err))
	}
	return &it, nil
}

// UpdateItem replaces all mutable fields of the item identified by it.ID.
func (s *Store) UpdateItem(ctx context.Context, it *model.Item) error {
	res := s.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ?", it.ID).
		Select("name", "price").
		Updates(it)
	if res.Error != nil {
		return fmt.Errorf("update item %d: %w", it.ID, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update item %d: %w", it.ID, ErrNotFound)
	}
	return nil
}

// DeleteItem removes an item; ErrConflict if an order still references it.
func (s *Store) DeleteItem(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&model.Item{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete item %d: %w", id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete item %d: %w", id, ErrNotFound)
	}
	return nil
}

// CountItems reports the number of item rows.
func (s *Store) CountItems(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&model.Item{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count items: %w", translate(err))
	}
	return n, nil
}
