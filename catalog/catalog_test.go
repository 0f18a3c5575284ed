package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalogInvariants(t *testing.T) {
	books := SeedBooks()
	require.NotEmpty(t, books)

	seen := map[string]bool{}
	for _, b := range books {
		assert.False(t, seen[b.ID], "duplicate book id %s", b.ID)
		seen[b.ID] = true

		assert.Positive(t, b.RetailPrice, "%s retail price", b.ID)
		assert.Positive(t, b.RentalPrice, "%s rental price", b.ID)
		assert.LessOrEqual(t, b.RentalPrice, b.RetailPrice, "%s rental exceeds retail", b.ID)
		assert.GreaterOrEqual(t, b.Grade, 1, "%s grade", b.ID)
		assert.LessOrEqual(t, b.Grade, 8, "%s grade", b.ID)
		assert.GreaterOrEqual(t, b.Stock, 0, "%s stock", b.ID)
	}
}

func TestBooksByGradePreservesCatalogOrder(t *testing.T) {
	store := NewSeedStore()

	grade1 := store.BooksByGrade(1)
	require.Len(t, grade1, 4)
	assert.Equal(t, "math-g1-001", grade1[0].ID)
	assert.Equal(t, "eng-g1-001", grade1[1].ID)
	assert.Equal(t, "kis-g1-001", grade1[2].ID)
	assert.Equal(t, "sci-g1-001", grade1[3].ID)
}

func TestBooksByGradeUnknownGrade(t *testing.T) {
	store := NewSeedStore()
	assert.Empty(t, store.BooksByGrade(8))
	assert.Empty(t, store.BooksByGrade(-1))
}

func TestGradeBundleMatchesGradeQuery(t *testing.T) {
	store := NewSeedStore()
	for _, grade := range Grades {
		bundle := store.GradeBundle(grade)
		assert.Equal(t, store.BooksByGrade(grade), bundle.Books, "grade %d", grade)
	}
}

func TestGradeBundlePricing(t *testing.T) {
	store := NewSeedStore()

	bundle := store.GradeBundle(1)
	assert.Equal(t, "Grade 1 Complete Bundle", bundle.Name)
	assert.Equal(t, 3030, bundle.TotalRetail)
	assert.Equal(t, 1061, bundle.BundlePrice)
	assert.Equal(t, 65, bundle.SavingsPercent)
}

func TestGradeBundleEmptyGrade(t *testing.T) {
	store := NewSeedStore()

	bundle := store.GradeBundle(7)
	assert.Empty(t, bundle.Books)
	assert.Zero(t, bundle.TotalRetail)
	assert.Zero(t, bundle.BundlePrice)
	assert.Zero(t, bundle.SavingsPercent)
}

func TestBookLookup(t *testing.T) {
	store := NewSeedStore()

	b, ok := store.Book("math-g1-001")
	require.True(t, ok)
	assert.Equal(t, 340, b.RentalPrice)

	_, ok = store.Book("no-such-book")
	assert.False(t, ok)
}
