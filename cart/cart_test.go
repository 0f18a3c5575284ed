package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zurilabsafrica/booked-brightly/catalog"
)

func testCatalog() catalog.Store {
	return catalog.NewStore([]catalog.Book{
		{ID: "b1", Title: "Book One", Grade: 1, RetailPrice: 850, RentalPrice: 340},
		{ID: "b2", Title: "Book Two", Grade: 1, RetailPrice: 780, RentalPrice: 312},
	})
}

func TestAddIsIdempotent(t *testing.T) {
	var c Cart

	assert.True(t, c.Add("b1", true))
	assert.False(t, c.Add("b1", false))

	require.Len(t, c.Items, 1)
	// The first call's protection flag is retained.
	assert.True(t, c.Items[0].ProtectionPlan)
}

func TestRemoveThenAddResetsProtection(t *testing.T) {
	var c Cart

	c.Add("b1", true)
	c.Remove("b1")
	c.Add("b1", false)

	require.Len(t, c.Items, 1)
	assert.False(t, c.Items[0].ProtectionPlan)
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	var c Cart
	c.Add("b1", false)

	c.Remove("nope")
	assert.Len(t, c.Items, 1)
}

func TestSetProtection(t *testing.T) {
	var c Cart
	c.Add("b1", false)

	c.SetProtection("b1", true)
	assert.True(t, c.Items[0].ProtectionPlan)

	c.SetProtection("b1", false)
	assert.False(t, c.Items[0].ProtectionPlan)

	// Absent id is a no-op, not an error.
	c.SetProtection("nope", true)
	assert.Len(t, c.Items, 1)
}

func TestTotals(t *testing.T) {
	books := testCatalog()
	var c Cart

	c.Add("b1", true)
	c.Add("b2", false)

	totals := c.Totals(books)
	assert.Equal(t, 2, totals.TotalItems)
	assert.Equal(t, 652, totals.Subtotal)
	assert.Equal(t, 51, totals.ProtectionTotal)
	assert.Equal(t, 703, totals.GrandTotal)

	c.Remove("b1")
	totals = c.Totals(books)
	assert.Equal(t, 1, totals.TotalItems)
	assert.Equal(t, 312, totals.Subtotal)
	assert.Equal(t, 0, totals.ProtectionTotal)
	assert.Equal(t, 312, totals.GrandTotal)
}

func TestTotalsSkipUnknownBooks(t *testing.T) {
	books := testCatalog()
	var c Cart

	c.Add("withdrawn-title", true)
	c.Add("b2", false)

	totals := c.Totals(books)
	assert.Equal(t, 1, totals.TotalItems)
	assert.Equal(t, 312, totals.Subtotal)
}

func TestClear(t *testing.T) {
	books := testCatalog()
	var c Cart

	c.Add("b1", true)
	c.Add("b2", true)
	c.Clear()

	totals := c.Totals(books)
	assert.Zero(t, totals.TotalItems)
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.GrandTotal)
}

func TestMemoryStoreIsolatesSessions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	a, err := store.Load(ctx, "session-a")
	require.NoError(t, err)
	a.Add("b1", false)
	require.NoError(t, store.Save(ctx, "session-a", a))

	b, err := store.Load(ctx, "session-b")
	require.NoError(t, err)
	assert.Empty(t, b.Items)

	a2, err := store.Load(ctx, "session-a")
	require.NoError(t, err)
	assert.Len(t, a2.Items, 1)
}

func TestMemoryStoreLastWriterWins(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, _ := store.Load(ctx, "s")
	second, _ := store.Load(ctx, "s")

	first.Add("b1", false)
	second.Add("b2", true)

	require.NoError(t, store.Save(ctx, "s", first))
	require.NoError(t, store.Save(ctx, "s", second))

	got, err := store.Load(ctx, "s")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "b2", got.Items[0].BookID)
}

func TestMemoryStoreCopiesOnLoad(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	c, _ := store.Load(ctx, "s")
	c.Add("b1", false)
	require.NoError(t, store.Save(ctx, "s", c))

	loaded, _ := store.Load(ctx, "s")
	loaded.SetProtection("b1", true)

	again, _ := store.Load(ctx, "s")
	assert.False(t, again.Items[0].ProtectionPlan)
}
