package service

import (
	"context"
	"log/slog"

	"orderdesk/model"
	"orderdesk/store"
)

// ItemService owns item validation and delegates persistence to the store.
type ItemService struct {
	store *store.Store
	log   *slog.Logger
}

func NewItemService(st *store.Store, log *slog.Logger) *ItemService {
	return &ItemService{store: st, log: log}
}

// ItemInput carries the client-settable item fields.
type ItemInput struct {
	ID    uint
	Name  string
	Price float64
}

func (in ItemInput) validate() (model.Item, error) {
	if err := ValidateName(in.Name); err != nil {
		return model.Item{}, err
	}
	if in.Price < 0 {
		return model.Item{}, invalidf("price", "must not be negative")
	}
	return model.Item{ID: in.ID, Name: in.Name, Price: RoundPrice(in.Price)}, nil
}

// Create validates and inserts a new item, returning the stored row.
func (s *ItemService) Create(ctx context.Context, in ItemInput) (*model.Item, error) {
	it, err := in.validate()
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateItem(ctx, &it); err != nil {
		return nil, err
	}
	s.log.Info("item created", "id", it.ID, "name", it.Name)
	return &it, nil
}

// Get returns the item or store.ErrNotFound.
func (s *ItemService) Get(ctx context.Context, id uint) (*model.Item, error) {
	return s.store.GetItem(ctx, id)
}

// Update replaces the item's mutable fields and returns the stored row.
func (s *ItemService) Update(ctx context.Context, id uint, in ItemInput) (*model.Item, error) {
	in.ID = id
	it, err := in.validate()
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateItem(ctx, &it); err != nil {
		return nil, err
	}
	s.log.Info("item updated", "id", id)
	return s.store.GetItem(ctx, id)
}

// Delete removes the item; store.ErrConflict when an order references it.
func (s *ItemService) Delete(ctx context.Context, id uint) error {
	if err := s.store.DeleteItem(ctx, id); err != nil {
		return err
	}
	s.log.Info("item deleted", "id", id)
	return nil
}
