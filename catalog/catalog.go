// Package catalog exposes the textbook catalog and grade bundle pricing.
package catalog

import "github.com/zurilabsafrica/booked-brightly/pricing"

// Condition describes the physical state of a rental copy.
type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionGood Condition = "good"
	ConditionFair Condition = "fair"
)

// Book is a single catalog title. Books are immutable once loaded.
type Book struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Subject      string    `json:"subject"`
	Grade        int       `json:"grade"`
	ISBN         string    `json:"isbn"`
	Publisher    string    `json:"publisher"`
	Edition      string    `json:"edition"`
	KICDApproved bool      `json:"kicd_approved"`
	RetailPrice  int       `json:"retail_price"`
	RentalPrice  int       `json:"rental_price"`
	Stock        int       `json:"stock"`
	Condition    Condition `json:"condition"`
}

// GradeBundle groups every catalog title for one grade at a flat discount
// off combined retail. Bundles are derived on demand and never stored.
type GradeBundle struct {
	Grade          int    `json:"grade"`
	Name           string `json:"name"`
	Books          []Book `json:"books"`
	TotalRetail    int    `json:"total_retail"`
	BundlePrice    int    `json:"bundle_price"`
	SavingsPercent int    `json:"savings_percent"`
}

// Store is a read-only view of the catalog.
type Store interface {
	// Books returns every title in catalog order.
	Books() []Book
	// Book looks up a title by id.
	Book(id string) (Book, bool)
	// BooksByGrade returns the titles for one grade, preserving catalog
	// order. Unknown grades yield an empty slice.
	BooksByGrade(grade int) []Book
	// GradeBundle derives the bundle for one grade. A grade with no books
	// yields an empty bundle with zero savings.
	GradeBundle(grade int) GradeBundle
}

type memoryStore struct {
	books []Book
	byID  map[string]Book
}

// NewStore builds an in-memory Store over a fixed book list.
func NewStore(books []Book) Store {
	s := &memoryStore{
		books: make([]Book, len(books)),
		byID:  make(map[string]Book, len(books)),
	}
	copy(s.books, books)
	for _, b := range s.books {
		s.byID[b.ID] = b
	}
	return s
}

// NewSeedStore builds a Store over the built-in seed catalog.
func NewSeedStore() Store {
	return NewStore(SeedBooks())
}

func (s *memoryStore) Books() []Book {
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

func (s *memoryStore) Book(id string) (Book, bool) {
	b, ok := s.byID[id]
	return b, ok
}

func (s *memoryStore) BooksByGrade(grade int) []Book {
	out := []Book{}
	for _, b := range s.books {
		if b.Grade == grade {
			out = append(out, b)
		}
	}
	return out
}

func (s *memoryStore) GradeBundle(grade int) GradeBundle {
	books := s.BooksByGrade(grade)

	totalRetail := 0
	for _, b := range books {
		totalRetail += b.RetailPrice
	}
	bundlePrice := pricing.BundlePrice(totalRetail)

	return GradeBundle{
		Grade:          grade,
		Name:           bundleName(grade),
		Books:          books,
		TotalRetail:    totalRetail,
		BundlePrice:    bundlePrice,
		SavingsPercent: pricing.SavingsPercent(bundlePrice, totalRetail),
	}
}
