package store

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// Operation is a deferred write executed inside the transaction. It
// receives the transactional gorm.DB and returns an error to roll back.
type Operation func(tx *gorm.DB) error

// UnitOfWork queues creates and arbitrary operations and applies them in
// a single transaction on Commit. The seed loader uses it to load both
// reference files atomically.
type UnitOfWork struct {
	root *gorm.DB

	mu       sync.Mutex
	ops      []Operation
	toCreate []any
}

// NewUnitOfWork returns an empty unit of work bound to the store. It does
// not start a transaction until Commit.
func (s *Store) NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{root: s.db}
}

// Add queues an entity to be inserted on Commit.
func (u *UnitOfWork) Add(entity any) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.toCreate = append(u.toCreate, entity)
}

// Do queues a custom operation to run inside the transaction after the
// queued inserts.
func (u *UnitOfWork) Do(op Operation) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ops = append(u.ops, op)
}

// Commit applies all pending work in one transaction. On error the
// transaction rolls back and the queue is kept so the caller can inspect
// it; use Clear to discard. Errors carry the store taxonomy.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	u.mu.Lock()
	creates := append([]any(nil), u.toCreate...)
	ops := append([]Operation(nil), u.ops...)
	u.mu.Unlock()

	txErr := u.root.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range creates {
			if err := tx.Create(e).Error; err != nil {
				return err
			}
		}
		for _, op := range ops {
			if err := op(tx); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return fmt.Errorf("commit: %w", translate(txErr))
	}
	u.Clear()
	return nil
}

// Clear discards all pending work.
func (u *UnitOfWork) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ops = nil
	u.toCreate = nil
}

// HasPending reports whether any work is queued.
func (u *UnitOfWork) HasPending() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.ops) > 0 || len(u.toCreate) > 0
}
