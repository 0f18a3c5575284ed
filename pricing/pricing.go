// Package pricing holds the rental pricing rules: protection plan fees,
// grade bundle pricing, bulk order discounts, and checkout totals.
//
// All amounts are whole Kenyan shillings. Every derived amount is rounded
// half-up to the nearest shilling before it is subtracted from or added to
// anything else, so totals never depend on floating point platform behavior.
package pricing

import "math"

const (
	// ProtectionRate is the per-item damage protection fee, as a share of
	// the rental price.
	ProtectionRate = 0.15

	// BundleRate prices a grade bundle at 35% of combined retail.
	BundleRate = 0.35

	// BulkDiscountRate is the flat discount on institutional order subtotals.
	BulkDiscountRate = 0.15

	// DeliveryFee is the flat consumer delivery fee in KES.
	DeliveryFee = 250
)

// Round rounds a fractional KES amount half-up to the nearest shilling.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// ProtectionFee returns the protection plan fee for one rental.
func ProtectionFee(rentalPrice int) int {
	return Round(float64(rentalPrice) * ProtectionRate)
}

// BundlePrice returns the price of a grade bundle given the combined
// retail price of its books.
func BundlePrice(totalRetail int) int {
	return Round(float64(totalRetail) * BundleRate)
}

// SavingsPercent returns how much cheaper the bundle is than buying at
// retail, as a whole percentage. An empty bundle reports 0.
func SavingsPercent(bundlePrice, totalRetail int) int {
	if totalRetail == 0 {
		return 0
	}
	return Round((1 - float64(bundlePrice)/float64(totalRetail)) * 100)
}

// LineTotal returns the cost of renting one title for every student in a
// class.
func LineTotal(rentalPrice, students int) int {
	return rentalPrice * students
}

// BulkLine is one book selected for one class in an institutional order.
type BulkLine struct {
	BookID      string
	RentalPrice int
	Students    int
}

// BulkTotals summarizes an institutional order.
type BulkTotals struct {
	TotalBooks int `json:"total_books"`
	Subtotal   int `json:"subtotal"`
	Discount   int `json:"bulk_discount"`
	Total      int `json:"total"`
}

// TotalsForBulk computes order totals for a set of bulk lines.
// The discount is rounded before subtraction.
func TotalsForBulk(lines []BulkLine) BulkTotals {
	var t BulkTotals
	for _, l := range lines {
		t.TotalBooks += l.Students
		t.Subtotal += LineTotal(l.RentalPrice, l.Students)
	}
	t.Discount = Round(float64(t.Subtotal) * BulkDiscountRate)
	t.Total = t.Subtotal - t.Discount
	return t
}

// DeliveryFeeFor returns the delivery fee for a consumer cart. Empty carts
// are not charged delivery.
func DeliveryFeeFor(totalItems int) int {
	if totalItems == 0 {
		return 0
	}
	return DeliveryFee
}

// CheckoutTotal is the amount presented for payment at consumer checkout.
func CheckoutTotal(grandTotal, totalItems int) int {
	return grandTotal + DeliveryFeeFor(totalItems)
}
