package service

import (
	"context"
	"log/slog"

	"orderdesk/model"
	"orderdesk/store"
)

// CustomerService owns customer validation and delegates persistence to
// the store.
type CustomerService struct {
	store *store.Store
	log   *slog.Logger
}

func NewCustomerService(st *store.Store, log *slog.Logger) *CustomerService {
	return &CustomerService{store: st, log: log}
}

// CustomerInput carries the client-settable customer fields. ID is only
// honored on create, where it is optional.
type CustomerInput struct {
	ID    uint
	Name  string
	Phone string
}

func (in CustomerInput) validate() (model.Customer, error) {
	if err := ValidateName(in.Name); err != nil {
		return model.Customer{}, err
	}
	phone, err := NormalizePhone(in.Phone)
	if err != nil {
		return model.Customer{}, err
	}
	return model.Customer{ID: in.ID, Name: in.Name, Phone: phone}, nil
}

// Create validates and inserts a new customer, returning the stored row.
func (s *CustomerService) Create(ctx context.Context, in CustomerInput) (*model.Customer, error) {
	c, err := in.validate()
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateCustomer(ctx, &c); err != nil {
		return nil, err
	}
	s.log.Info("customer created", "id", c.ID, "name", c.Name)
	return &c, nil
}

// Get returns the customer or store.ErrNotFound.
func (s *CustomerService) Get(ctx context.Context, id uint) (*model.Customer, error) {
	return s.store.GetCustomer(ctx, id)
}

// Update replaces the customer's mutable fields and returns the stored
// row as it reads after the write.
func (s *CustomerService) Update(ctx context.Context, id uint, in CustomerInput) (*model.Customer, error) {
	in.ID = id
	c, err := in.validate()
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateCustomer(ctx, &c); err != nil {
		return nil, err
	}
	s.log.Info("customer updated", "id", id)
	return s.store.GetCustomer(ctx, id)
}

// Delete removes the customer; store.ErrConflict when an order still
// references it.
func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	if err := s.store.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	s.log.Info("customer deleted", "id", id)
	return nil
}
