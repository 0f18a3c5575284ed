package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3, Round(2.5))
	assert.Equal(t, 3, Round(3.4))
	assert.Equal(t, 4, Round(3.5))
	assert.Equal(t, 0, Round(0))
	assert.Equal(t, 51, Round(340*0.15))
}

func TestProtectionFee(t *testing.T) {
	assert.Equal(t, 51, ProtectionFee(340))
	assert.Equal(t, 47, ProtectionFee(312))
	assert.Equal(t, 0, ProtectionFee(0))
}

func TestBundlePricing(t *testing.T) {
	// Four grade 1 books: 850 + 780 + 720 + 680 = 3030
	total := 850 + 780 + 720 + 680
	bundle := BundlePrice(total)
	assert.Equal(t, 1061, bundle)
	assert.Equal(t, 65, SavingsPercent(bundle, total))
}

func TestSavingsPercentEmptyBundle(t *testing.T) {
	assert.Equal(t, 0, SavingsPercent(0, 0))
}

func TestBulkTotalsSingleLine(t *testing.T) {
	// One book at 340 KES for a class of 35 students.
	totals := TotalsForBulk([]BulkLine{
		{BookID: "math-g1-001", RentalPrice: 340, Students: 35},
	})

	assert.Equal(t, 35, totals.TotalBooks)
	assert.Equal(t, 11900, totals.Subtotal)
	assert.Equal(t, 1785, totals.Discount)
	assert.Equal(t, 10115, totals.Total)
}

func TestBulkTotalsMultipleLines(t *testing.T) {
	totals := TotalsForBulk([]BulkLine{
		{BookID: "math-g1-001", RentalPrice: 340, Students: 35},
		{BookID: "eng-g1-001", RentalPrice: 312, Students: 35},
		{BookID: "math-g2-001", RentalPrice: 356, Students: 38},
	})

	wantSubtotal := 340*35 + 312*35 + 356*38
	assert.Equal(t, 35+35+38, totals.TotalBooks)
	assert.Equal(t, wantSubtotal, totals.Subtotal)
	assert.Equal(t, Round(float64(wantSubtotal)*BulkDiscountRate), totals.Discount)
	assert.Equal(t, totals.Subtotal-totals.Discount, totals.Total)
}

func TestBulkTotalsEmptySelection(t *testing.T) {
	totals := TotalsForBulk(nil)
	assert.Zero(t, totals.TotalBooks)
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Discount)
	assert.Zero(t, totals.Total)
}

func TestDeliveryFee(t *testing.T) {
	assert.Equal(t, 0, DeliveryFeeFor(0))
	assert.Equal(t, 250, DeliveryFeeFor(1))
	assert.Equal(t, 250, DeliveryFeeFor(12))
}

func TestCheckoutTotal(t *testing.T) {
	assert.Equal(t, 953, CheckoutTotal(703, 2))
	assert.Equal(t, 0, CheckoutTotal(0, 0))
}
