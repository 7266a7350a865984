package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"orderdesk/model"
)

func TestUnitOfWork_CommitAppliesCreates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	uow := s.NewUnitOfWork()
	uow.Add(&model.Customer{Name: "Ada Lovelace", Phone: "415-555-0134"})
	uow.Add(&model.Item{Name: "Espresso", Price: 2.40})
	require.True(t, uow.HasPending())

	require.NoError(t, uow.Commit(ctx))
	assert.False(t, uow.HasPending(), "commit clears the queue")

	n, err := s.CountCustomers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = s.CountItems(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestUnitOfWork_RollbackOnFailedOp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	boom := errors.New("boom")
	uow := s.NewUnitOfWork()
	uow.Add(&model.Customer{Name: "Ada Lovelace", Phone: "415-555-0134"})
	uow.Do(func(*gorm.DB) error { return boom })

	err := uow.Commit(ctx)
	require.ErrorIs(t, err, boom)
	assert.True(t, uow.HasPending(), "failed commit keeps the queue")

	n, err := s.CountCustomers(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "rollback must undo the queued create")

	uow.Clear()
	assert.False(t, uow.HasPending())
}

func TestUnitOfWork_ConflictTranslated(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateCustomer(ctx, &model.Customer{ID: 3, Name: "Ada", Phone: "415-555-0134"}))

	uow := s.NewUnitOfWork()
	uow.Add(&model.Customer{ID: 3, Name: "Grace", Phone: "212-555-0172"})
	require.ErrorIs(t, uow.Commit(ctx), ErrConflict)
}
