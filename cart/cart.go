// Package cart implements the session-scoped rental cart and its derived
// totals. A cart holds at most one item per book; quantities are fixed at
// one copy per title for consumer rentals.
package cart

import (
	"github.com/zurilabsafrica/booked-brightly/catalog"
	"github.com/zurilabsafrica/booked-brightly/pricing"
)

// Item is one book in a cart. Books are referenced by id; prices are read
// from the catalog when totals are computed.
type Item struct {
	BookID         string `json:"book_id"`
	ProtectionPlan bool   `json:"protection_plan"`
}

// Cart is the set of items for one session. The zero value is an empty
// cart ready for use. Carts are plain values; concurrent access control
// belongs to the Store that holds them.
type Cart struct {
	Items []Item `json:"items"`
}

// Totals are the derived amounts for a cart, recomputed on every read.
type Totals struct {
	TotalItems      int `json:"total_items"`
	Subtotal        int `json:"subtotal"`
	ProtectionTotal int `json:"protection_total"`
	GrandTotal      int `json:"grand_total"`
}

// Add inserts an item for the given book unless one already exists.
// Re-adding is a no-op that keeps the first call's protection flag.
// It reports whether the cart changed.
func (c *Cart) Add(bookID string, protectionPlan bool) bool {
	if c.Contains(bookID) {
		return false
	}
	c.Items = append(c.Items, Item{BookID: bookID, ProtectionPlan: protectionPlan})
	return true
}

// Remove drops the item for the given book. Absent ids are a no-op.
func (c *Cart) Remove(bookID string) {
	for i, it := range c.Items {
		if it.BookID == bookID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetProtection updates the protection flag on the matching item. Absent
// ids are a no-op.
func (c *Cart) SetProtection(bookID string, hasProtection bool) {
	for i := range c.Items {
		if c.Items[i].BookID == bookID {
			c.Items[i].ProtectionPlan = hasProtection
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Contains reports whether the cart holds an item for the given book.
func (c *Cart) Contains(bookID string) bool {
	for _, it := range c.Items {
		if it.BookID == bookID {
			return true
		}
	}
	return false
}

// Totals computes the cart's derived amounts against the catalog. Items
// whose book id is no longer in the catalog contribute nothing.
func (c *Cart) Totals(books catalog.Store) Totals {
	var t Totals
	for _, it := range c.Items {
		b, ok := books.Book(it.BookID)
		if !ok {
			continue
		}
		t.TotalItems++
		t.Subtotal += b.RentalPrice
		if it.ProtectionPlan {
			t.ProtectionTotal += pricing.ProtectionFee(b.RentalPrice)
		}
	}
	t.GrandTotal = t.Subtotal + t.ProtectionTotal
	return t
}
