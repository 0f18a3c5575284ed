package models

import "github.com/zurilabsafrica/booked-brightly/catalog"

type AddItemRequest struct {
	BookID         string `json:"book_id" binding:"required"`
	ProtectionPlan bool   `json:"protection_plan"`
}

type UpdateProtectionRequest struct {
	ProtectionPlan *bool `json:"protection_plan" binding:"required"`
}

type CheckoutRequest struct {
	PaymentMethod   string `json:"payment_method" binding:"required,oneof=mpesa card"`
	PhoneNumber     string `json:"phone_number"`
	CardNumber      string `json:"card_number"`
	DeliveryAddress string `json:"delivery_address"`
}

type CartItemView struct {
	Book           catalog.Book `json:"book"`
	ProtectionPlan bool         `json:"protection_plan"`
	ProtectionFee  int          `json:"protection_fee"`
}

type CartView struct {
	Items           []CartItemView `json:"items"`
	TotalItems      int            `json:"total_items"`
	Subtotal        int            `json:"subtotal"`
	ProtectionTotal int            `json:"protection_total"`
	GrandTotal      int            `json:"grand_total"`
	DeliveryFee     int            `json:"delivery_fee"`
	FinalTotal      int            `json:"final_total"`
}

type CheckoutResponse struct {
	OrderID       string `json:"order_id"`
	AmountCharged int    `json:"amount_charged"`
	PaymentStatus string `json:"payment_status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
