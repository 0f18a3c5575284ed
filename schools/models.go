// Package schools is the persistence layer for the institutional portal:
// partner schools, their classes, bulk orders, invoices, and book
// distributions.
package schools

import "time"

// School is a partner institution ordering in bulk.
type School struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address,omitempty"`
	County        string    `json:"county,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	ContactPerson string    `json:"contact_person,omitempty"`
	TotalStudents int       `json:"total_students"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// Class is one stream within a school, e.g. Grade 3 B.
type Class struct {
	ID           string `json:"id"`
	SchoolID     string `json:"school_id"`
	Name         string `json:"name"`
	Grade        int    `json:"grade"`
	Stream       string `json:"stream,omitempty"`
	StudentCount int    `json:"student_count"`
}

// Member links a portal user to a school with a role.
type Member struct {
	ID       string `json:"id"`
	SchoolID string `json:"school_id"`
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
}

// Bulk order lifecycle states.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
)

// BulkOrder is an institutional order covering several classes.
type BulkOrder struct {
	ID              string    `json:"id"`
	OrderNumber     string    `json:"order_number"`
	SchoolID        string    `json:"school_id"`
	CreatedBy       string    `json:"created_by"`
	Status          string    `json:"status"`
	TotalBooks      int       `json:"total_books"`
	Subtotal        int       `json:"subtotal"`
	BulkDiscount    int       `json:"bulk_discount"`
	TotalAmount     int       `json:"total_amount"`
	DeliveryAddress string    `json:"delivery_address,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// BulkOrderItem is one title ordered for one class.
type BulkOrderItem struct {
	ID         string `json:"id"`
	OrderID    string `json:"order_id"`
	BookID     string `json:"book_id"`
	ClassID    string `json:"class_id,omitempty"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int    `json:"unit_price"`
	TotalPrice int    `json:"total_price"`
}

// Invoice lifecycle states.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Invoice bills a school for a bulk order.
type Invoice struct {
	ID               string     `json:"id"`
	InvoiceNumber    string     `json:"invoice_number"`
	SchoolID         string     `json:"school_id"`
	OrderID          string     `json:"order_id,omitempty"`
	Amount           int        `json:"amount"`
	Status           string     `json:"status"`
	DueDate          time.Time  `json:"due_date"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	PaymentMethod    string     `json:"payment_method,omitempty"`
	PaymentReference string     `json:"payment_reference,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// Distribution lifecycle states.
const (
	DistributionStatusPending    = "pending"
	DistributionStatusInProgress = "in_progress"
	DistributionStatusCompleted  = "completed"
)

// Distribution tracks handing delivered books out to one class.
type Distribution struct {
	ID               string     `json:"id"`
	ClassID          string     `json:"class_id"`
	SchoolID         string     `json:"school_id"`
	OrderID          string     `json:"order_id,omitempty"`
	Status           string     `json:"status"`
	DistributedCount int        `json:"distributed_count"`
	TotalCount       int        `json:"total_count"`
	DistributedAt    *time.Time `json:"distributed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// DistributionItem records one book handed to one student.
type DistributionItem struct {
	ID              string     `json:"id"`
	DistributionID  string     `json:"distribution_id"`
	BookID          string     `json:"book_id"`
	StudentName     string     `json:"student_name,omitempty"`
	AdmissionNumber string     `json:"admission_number,omitempty"`
	Status          string     `json:"status"`
	DistributedAt   *time.Time `json:"distributed_at,omitempty"`
}
