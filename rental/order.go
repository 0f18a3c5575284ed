// Package rental defines the rental order event published by the
// storefront at checkout and consumed by the fulfillment workers.
package rental

import "time"

// Line is one rented title within an order.
type Line struct {
	BookID         string `json:"book_id"`
	Title          string `json:"title"`
	RentalPrice    int    `json:"rental_price"`
	ProtectionPlan bool   `json:"protection_plan"`
	ProtectionFee  int    `json:"protection_fee"`
}

// Order is a paid consumer rental ready for picking and delivery.
type Order struct {
	OrderID         string    `json:"order_id"`
	SessionID       string    `json:"session_id"`
	Items           []Line    `json:"items"`
	Subtotal        int       `json:"subtotal"`
	ProtectionTotal int       `json:"protection_total"`
	DeliveryFee     int       `json:"delivery_fee"`
	Total           int       `json:"total"`
	PaymentMethod   string    `json:"payment_method"`
	PlacedAt        time.Time `json:"placed_at"`
}
