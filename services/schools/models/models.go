package models

import (
	"github.com/zurilabsafrica/booked-brightly/pricing"
	"github.com/zurilabsafrica/booked-brightly/schools"
)

type RegisterSchoolRequest struct {
	Name          string                 `json:"name" binding:"required"`
	Address       string                 `json:"address"`
	County        string                 `json:"county"`
	Phone         string                 `json:"phone"`
	Email         string                 `json:"email"`
	ContactPerson string                 `json:"contact_person"`
	Classes       []RegisterClassRequest `json:"classes"`
}

type RegisterClassRequest struct {
	Grade        int    `json:"grade" binding:"required,min=1,max=8"`
	Stream       string `json:"stream"`
	StudentCount int    `json:"student_count" binding:"required,min=1"`
}

// GradeBookSelection picks the titles ordered for every selected class of
// one grade.
type GradeBookSelection struct {
	Grade   int      `json:"grade" binding:"required,min=1,max=8"`
	BookIDs []string `json:"book_ids" binding:"required,min=1"`
}

// QuoteClass is a class described inline for a quote, before any class
// rows exist.
type QuoteClass struct {
	Grade    int `json:"grade" binding:"required,min=1,max=8"`
	Students int `json:"students" binding:"required,min=1"`
}

type QuoteRequest struct {
	Classes    []QuoteClass         `json:"classes" binding:"required,min=1,dive"`
	Selections []GradeBookSelection `json:"selections" binding:"required,min=1,dive"`
}

type CreateBulkOrderRequest struct {
	ClassIDs        []string             `json:"class_ids" binding:"required,min=1"`
	Selections      []GradeBookSelection `json:"selections" binding:"required,min=1,dive"`
	DeliveryAddress string               `json:"delivery_address"`
	Notes           string               `json:"notes"`
}

type BulkOrderResponse struct {
	Order   schools.BulkOrder       `json:"order"`
	Items   []schools.BulkOrderItem `json:"items"`
	Invoice schools.Invoice         `json:"invoice"`
	Totals  pricing.BulkTotals      `json:"totals"`
}

type RecordPaymentRequest struct {
	Method    string `json:"method" binding:"required,oneof=mpesa card bank"`
	Reference string `json:"reference" binding:"required"`
}

type CreateDistributionsRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

type UpdateDistributionRequest struct {
	DistributedCount *int `json:"distributed_count" binding:"required,min=0"`
}

type AddDistributionItemRequest struct {
	BookID          string `json:"book_id" binding:"required"`
	StudentName     string `json:"student_name" binding:"required"`
	AdmissionNumber string `json:"admission_number"`
}

type DashboardSummary struct {
	School         schools.School `json:"school"`
	ClassCount     int            `json:"class_count"`
	StudentCount   int            `json:"student_count"`
	PendingOrders  int            `json:"pending_orders"`
	UnpaidInvoices int            `json:"unpaid_invoices"`
	UnpaidAmount   int            `json:"unpaid_amount"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
