package schools

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

// Repository is the portal's view of the relational store.
type Repository interface {
	Init(ctx context.Context) error

	CreateSchool(ctx context.Context, s *School) error
	School(ctx context.Context, id string) (*School, error)
	SchoolForUser(ctx context.Context, userID string) (*School, error)
	AddMember(ctx context.Context, m *Member) error

	CreateClass(ctx context.Context, c *Class) error
	Class(ctx context.Context, id string) (*Class, error)
	Classes(ctx context.Context, schoolID string) ([]Class, error)

	// CreateBulkOrder persists an order and its line items atomically.
	CreateBulkOrder(ctx context.Context, o *BulkOrder, items []BulkOrderItem) error
	BulkOrder(ctx context.Context, id string) (*BulkOrder, error)
	BulkOrders(ctx context.Context, schoolID string) ([]BulkOrder, error)
	OrderItems(ctx context.Context, orderID string) ([]BulkOrderItem, error)

	CreateInvoice(ctx context.Context, inv *Invoice) error
	Invoice(ctx context.Context, id string) (*Invoice, error)
	Invoices(ctx context.Context, schoolID string) ([]Invoice, error)
	// MarkInvoicePaid records a payment against a pending invoice.
	MarkInvoicePaid(ctx context.Context, id, method, reference string) error

	CreateDistribution(ctx context.Context, d *Distribution) error
	Distributions(ctx context.Context, schoolID string) ([]Distribution, error)
	// RecordDistributionProgress sets the distributed count, moving the
	// status to in_progress or completed as the count reaches the total.
	RecordDistributionProgress(ctx context.Context, id string, distributed int) error
	AddDistributionItem(ctx context.Context, it *DistributionItem) error
	DistributionItems(ctx context.Context, distributionID string) ([]DistributionItem, error)

	// NextOrderNumber and NextInvoiceNumber issue human-readable document
	// numbers, BO-YYYY-NNNN and INV-YYYY-NNNN.
	NextOrderNumber(ctx context.Context) (string, error)
	NextInvoiceNumber(ctx context.Context) (string, error)
}
