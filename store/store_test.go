package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCustomerRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := &model.Customer{Name: "Ada Lovelace", Phone: "415-555-0134"}
	require.NoError(t, s.CreateCustomer(ctx, c))
	require.NotZero(t, c.ID, "store should assign an id")

	got, err := s.GetCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, "415-555-0134", got.Phone)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCreateCustomer_DuplicateID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &model.Customer{ID: 7, Name: "Ada Lovelace", Phone: "415-555-0134"}
	require.NoError(t, s.CreateCustomer(ctx, first))

	second := &model.Customer{ID: 7, Name: "Grace Hopper", Phone: "212-555-0172"}
	err := s.CreateCustomer(ctx, second)
	require.ErrorIs(t, err, ErrConflict)

	// First row is untouched.
	got, err := s.GetCustomer(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.Name)
}

func TestGetCustomer_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetCustomer(context.Background(), 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCustomer(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := &model.Customer{Name: "Ada Lovelace", Phone: "415-555-0134"}
	require.NoError(t, s.CreateCustomer(ctx, c))

	require.NoError(t, s.UpdateCustomer(ctx, &model.Customer{
		ID:    c.ID,
		Name:  "Ada King",
		Phone: "415-555-0134",
	}))

	got, err := s.GetCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada King", got.Name)
	assert.Equal(t, "415-555-0134", got.Phone, "phone must survive a name change")
}

func TestUpdateCustomer_NotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateCustomer(context.Background(), &model.Customer{
		ID:    41,
		Name:  "Nobody",
		Phone: "000-000-0000",
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteItem_NotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.DeleteItem(context.Background(), 12)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrder_MissingCustomer(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	it := &model.Item{Name: "Espresso", Price: 2.40}
	require.NoError(t, s.CreateItem(ctx, it))

	o := &model.Order{CustomerID: 123, ItemID: it.ID, Quantity: 1}
	err := s.CreateOrder(ctx, o)
	require.ErrorIs(t, err, ErrConflict)

	// Nothing was persisted.
	_, err = s.GetOrder(ctx, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrder_MissingItem(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := &model.Customer{Name: "Ada Lovelace", Phone: "415-555-0134"}
	require.NoError(t, s.CreateCustomer(ctx, c))

	o := &model.Order{CustomerID: c.ID, ItemID: 123, Quantity: 1}
	require.ErrorIs(t, s.CreateOrder(ctx, o), ErrConflict)
}

func TestDeleteCustomer_Referenced(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := &model.Customer{Name: "Ada Lovelace", Phone: "415-555-0134"}
	require.NoError(t, s.CreateCustomer(ctx, c))
	it := &model.Item{Name: "Espresso", Price: 2.40}
	require.NoError(t, s.CreateItem(ctx, it))
	o := &model.Order{CustomerID: c.ID, ItemID: it.ID, Quantity: 2}
	require.NoError(t, s.CreateOrder(ctx, o))

	require.ErrorIs(t, s.DeleteCustomer(ctx, c.ID), ErrConflict)
	require.ErrorIs(t, s.DeleteItem(ctx, it.ID), ErrConflict)

	// Both sides of the failed deletes are intact.
	_, err := s.GetCustomer(ctx, c.ID)
	require.NoError(t, err)
	_, err = s.GetOrder(ctx, o.ID)
	require.NoError(t, err)

	// Once the order is gone the deletes go through.
	require.NoError(t, s.DeleteOrder(ctx, o.ID))
	require.NoError(t, s.DeleteCustomer(ctx, c.ID))
	require.NoError(t, s.DeleteItem(ctx, it.ID))
}

func TestUpdateOrder_RepointToMissingItem(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := &model.Customer{Name: "Ada Lovelace", Phone: "415-555-0134"}
	require.NoError(t, s.CreateCustomer(ctx, c))
	it := &model.Item{Name: "Espresso", Price: 2.40}
	require.NoError(t, s.CreateItem(ctx, it))
	o := &model.Order{CustomerID: c.ID, ItemID: it.ID, Quantity: 1}
	require.NoError(t, s.CreateOrder(ctx, o))

	err := s.UpdateOrder(ctx, &model.Order{
		ID:         o.ID,
		CustomerID: c.ID,
		ItemID:     999,
		Quantity:   1,
	})
	require.ErrorIs(t, err, ErrConflict)

	got, err := s.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, it.ID, got.ItemID, "failed update must not change the row")
}

func TestCounts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	n, err := s.CountCustomers(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, s.CreateCustomer(ctx, &model.Customer{Name: "Ada", Phone: "415-555-0134"}))
	require.NoError(t, s.CreateItem(ctx, &model.Item{Name: "Espresso", Price: 2.40}))

	n, err = s.CountCustomers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = s.CountItems(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
