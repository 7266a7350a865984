package seed

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/store"
)

const goodCustomers = `
- id: 1
  name: "Ada Lovelace"
  phone: "415 555 0134"
- id: 2
  name: "Grace Hopper"
  phone: "212-555-0172"
`

const goodItems = `
- id: 1
  name: "Espresso"
  price: 2.40
- id: 2
  name: "Tiramisu"
  price: 6.00
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, st.Migrate())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun(t *testing.T) {
	st := newTestStore(t)
	dir := t.TempDir()
	customers := writeFile(t, dir, "customers.yaml", goodCustomers)
	items := writeFile(t, dir, "items.yaml", goodItems)
	ctx := context.Background()

	n, err := Run(ctx, st, discardLogger(), customers, items)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	c, err := st.GetCustomer(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", c.Name)
	assert.Equal(t, "415-555-0134", c.Phone, "seed phones are normalized")

	it, err := st.GetItem(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.00, it.Price)
}

func TestRun_RefusesSecondRun(t *testing.T) {
	st := newTestStore(t)
	dir := t.TempDir()
	customers := writeFile(t, dir, "customers.yaml", goodCustomers)
	items := writeFile(t, dir, "items.yaml", goodItems)
	ctx := context.Background()

	_, err := Run(ctx, st, discardLogger(), customers, items)
	require.NoError(t, err)

	_, err = Run(ctx, st, discardLogger(), customers, items)
	require.ErrorIs(t, err, ErrAlreadySeeded)
}

func TestRun_BadRecordLeavesStoreEmpty(t *testing.T) {
	st := newTestStore(t)
	dir := t.TempDir()
	customers := writeFile(t, dir, "customers.yaml", goodCustomers)
	bad := writeFile(t, dir, "items.yaml", `
- id: 1
  name: "Espresso"
  price: -3
`)
	ctx := context.Background()

	_, err := Run(ctx, st, discardLogger(), customers, bad)
	require.Error(t, err)

	n, err := st.CountCustomers(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "validation failure must not persist anything")
}

func TestRun_UnknownFieldRejected(t *testing.T) {
	st := newTestStore(t)
	dir := t.TempDir()
	customers := writeFile(t, dir, "customers.yaml", `
- id: 1
  name: "Ada"
  phone: "4155550134"
  email: "ada@example.com"
`)
	items := writeFile(t, dir, "items.yaml", goodItems)

	_, err := Run(context.Background(), st, discardLogger(), customers, items)
	require.Error(t, err)
}

func TestRun_MissingFile(t *testing.T) {
	st := newTestStore(t)
	items := writeFile(t, t.TempDir(), "items.yaml", goodItems)

	_, err := Run(context.Background(), st, discardLogger(), "nope.yaml", items)
	require.Error(t, err)
}
