package service

import (
	"context"
	"log/slog"

	"orderdesk/model"
	"orderdesk/store"
)

// OrderService owns order validation. Reference existence is not
// pre-checked here; the store's foreign keys decide it atomically with
// the write, so there is no check-then-insert race.
type OrderService struct {
	store *store.Store
	log   *slog.Logger
}

func NewOrderService(st *store.Store, log *slog.Logger) *OrderService {
	return &OrderService{store: st, log: log}
}

// OrderInput carries the client-settable order fields.
type OrderInput struct {
	ID         uint
	CustomerID uint
	ItemID     uint
	Quantity   int
	Notes      string
}

func (in OrderInput) validate() (model.Order, error) {
	if in.CustomerID == 0 {
		return model.Order{}, invalidf("customer_id", "must be set")
	}
	if in.ItemID == 0 {
		return model.Order{}, invalidf("item_id", "must be set")
	}
	if in.Quantity < 1 {
		return model.Order{}, invalidf("quantity", "must be at least 1")
	}
	return model.Order{
		ID:         in.ID,
		CustomerID: in.CustomerID,
		ItemID:     in.ItemID,
		Quantity:   in.Quantity,
		Notes:      in.Notes,
	}, nil
}

// Create validates and inserts a new order; store.ErrConflict when the
// customer or item reference does not exist.
func (s *OrderService) Create(ctx context.Context, in OrderInput) (*model.Order, error) {
	o, err := in.validate()
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateOrder(ctx, &o); err != nil {
		return nil, err
	}
	s.log.Info("order created", "id", o.ID, "customer_id", o.CustomerID, "item_id", o.ItemID)
	return &o, nil
}

// Get returns the order or store.ErrNotFound.
func (s *OrderService) Get(ctx context.Context, id uint) (*model.Order, error) {
	return s.store.GetOrder(ctx, id)
}

// Update replaces the order's mutable fields and returns the stored row.
func (s *OrderService) Update(ctx context.Context, id uint, in OrderInput) (*model.Order, error) {
	in.ID = id
	o, err := in.validate()
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateOrder(ctx, &o); err != nil {
		return nil, err
	}
	s.log.Info("order updated", "id", id)
	return s.store.GetOrder(ctx, id)
}

// Delete removes the order.
func (s *OrderService) Delete(ctx context.Context, id uint) error {
	if err := s.store.DeleteOrder(ctx, id); err != nil {
		return err
	}
	s.log.Info("order deleted", "id", id)
	return nil
}
