package schools

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens the portal database with WAL and a busy timeout so
// concurrent handlers do not trip over each other.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	return sql.Open("sqlite", dbPath+"?_pragma=busy_timeout=5000&_pragma=journal_mode=WAL")
}

type sqliteRepo struct{ db *sql.DB }

// NewSQLiteRepo wraps a SQLite handle in the Repository interface.
func NewSQLiteRepo(db *sql.DB) Repository { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Init(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

func (r *sqliteRepo) CreateSchool(ctx context.Context, s *School) error {
	if s.Status == "" {
		s.Status = "active"
	}
	s.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO schools (id, name, address, county, phone, email, contact_person, total_students, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Address, s.County, s.Phone, s.Email, s.ContactPerson, s.TotalStudents, s.Status, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert school: %w", err)
	}
	return nil
}

func (r *sqliteRepo) School(ctx context.Context, id string) (*School, error) {
	return r.scanSchool(r.db.QueryRowContext(ctx, `
		SELECT id, name, address, county, phone, email, contact_person, total_students, status, created_at
		FROM schools WHERE id = ?`, id))
}

func (r *sqliteRepo) SchoolForUser(ctx context.Context, userID string) (*School, error) {
	return r.scanSchool(r.db.QueryRowContext(ctx, `
		SELECT s.id, s.name, s.address, s.county, s.phone, s.email, s.contact_person, s.total_students, s.status, s.created_at
		FROM schools s
		JOIN school_members m ON m.school_id = s.id
		WHERE m.user_id = ?`, userID))
}

func (r *sqliteRepo) scanSchool(row *sql.Row) (*School, error) {
	var s School
	err := row.Scan(&s.ID, &s.Name, &s.Address, &s.County, &s.Phone, &s.Email,
		&s.ContactPerson, &s.TotalStudents, &s.Status, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepo) AddMember(ctx context.Context, m *Member) error {
	if m.Role == "" {
		m.Role = "school_partner"
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO school_members (id, school_id, user_id, role) VALUES (?, ?, ?, ?)`,
		m.ID, m.SchoolID, m.UserID, m.Role)
	if err != nil {
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

func (r *sqliteRepo) CreateClass(ctx context.Context, c *Class) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO classes (id, school_id, name, grade, stream, student_count)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.SchoolID, c.Name, c.Grade, c.Stream, c.StudentCount)
	if err != nil {
		return fmt.Errorf("insert class: %w", err)
	}
	return nil
}

func (r *sqliteRepo) Class(ctx context.Context, id string) (*Class, error) {
	var c Class
	err := r.db.QueryRowContext(ctx, `
		SELECT id, school_id, name, grade, stream, student_count
		FROM classes WHERE id = ?`, id).
		Scan(&c.ID, &c.SchoolID, &c.Name, &c.Grade, &c.Stream, &c.StudentCount)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *sqliteRepo) Classes(ctx context.Context, schoolID string) ([]Class, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, school_id, name, grade, stream, student_count
		FROM classes WHERE school_id = ?
		ORDER BY grade, stream`, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Class
	for rows.Next() {
		var c Class
		if err := rows.Scan(&c.ID, &c.SchoolID, &c.Name, &c.Grade, &c.Stream, &c.StudentCount); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *sqliteRepo) CreateBulkOrder(ctx context.Context, o *BulkOrder, items []BulkOrderItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	o.CreatedAt = time.Now().UTC()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO bulk_orders (id, order_number, school_id, created_by, status, total_books,
			subtotal, bulk_discount, total_amount, delivery_address, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.OrderNumber, o.SchoolID, o.CreatedBy, o.Status, o.TotalBooks,
		o.Subtotal, o.BulkDiscount, o.TotalAmount, o.DeliveryAddress, o.Notes, o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert bulk order: %w", err)
	}

	for _, it := range items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO bulk_order_items (id, order_id, book_id, class_id, quantity, unit_price, total_price)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			it.ID, it.OrderID, it.BookID, it.ClassID, it.Quantity, it.UnitPrice, it.TotalPrice)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return tx.Commit()
}

func (r *sqliteRepo) BulkOrder(ctx context.Context, id string) (*BulkOrder, error) {
	var o BulkOrder
	err := r.db.QueryRowContext(ctx, `
		SELECT id, order_number, school_id, created_by, status, total_books,
			subtotal, bulk_discount, total_amount, delivery_address, notes, created_at
		FROM bulk_orders WHERE id = ?`, id).
		Scan(&o.ID, &o.OrderNumber, &o.SchoolID, &o.CreatedBy, &o.Status, &o.TotalBooks,
			&o.Subtotal, &o.BulkDiscount, &o.TotalAmount, &o.DeliveryAddress, &o.Notes, &o.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *sqliteRepo) BulkOrders(ctx context.Context, schoolID string) ([]BulkOrder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_number, school_id, created_by, status, total_books,
			subtotal, bulk_discount, total_amount, delivery_address, notes, created_at
		FROM bulk_orders WHERE school_id = ?
		ORDER BY created_at DESC`, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BulkOrder
	for rows.Next() {
		var o BulkOrder
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.SchoolID, &o.CreatedBy, &o.Status, &o.TotalBooks,
			&o.Subtotal, &o.BulkDiscount, &o.TotalAmount, &o.DeliveryAddress, &o.Notes, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *sqliteRepo) OrderItems(ctx context.Context, orderID string) ([]BulkOrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, book_id, class_id, quantity, unit_price, total_price
		FROM bulk_order_items WHERE order_id = ?`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BulkOrderItem
	for rows.Next() {
		var it BulkOrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.BookID, &it.ClassID, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *sqliteRepo) CreateInvoice(ctx context.Context, inv *Invoice) error {
	if inv.Status == "" {
		inv.Status = InvoiceStatusPending
	}
	inv.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invoices (id, invoice_number, school_id, order_id, amount, status, due_date,
			paid_at, payment_method, payment_reference, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.InvoiceNumber, inv.SchoolID, inv.OrderID, inv.Amount, inv.Status, inv.DueDate,
		inv.PaidAt, inv.PaymentMethod, inv.PaymentReference, inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func (r *sqliteRepo) Invoice(ctx context.Context, id string) (*Invoice, error) {
	var inv Invoice
	err := r.db.QueryRowContext(ctx, `
		SELECT id, invoice_number, school_id, order_id, amount, status, due_date,
			paid_at, payment_method, payment_reference, created_at
		FROM invoices WHERE id = ?`, id).
		Scan(&inv.ID, &inv.InvoiceNumber, &inv.SchoolID, &inv.OrderID, &inv.Amount, &inv.Status,
			&inv.DueDate, &inv.PaidAt, &inv.PaymentMethod, &inv.PaymentReference, &inv.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *sqliteRepo) Invoices(ctx context.Context, schoolID string) ([]Invoice, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, invoice_number, school_id, order_id, amount, status, due_date,
			paid_at, payment_method, payment_reference, created_at
		FROM invoices WHERE school_id = ?
		ORDER BY created_at DESC`, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Invoice
	for rows.Next() {
		var inv Invoice
		if err := rows.Scan(&inv.ID, &inv.InvoiceNumber, &inv.SchoolID, &inv.OrderID, &inv.Amount, &inv.Status,
			&inv.DueDate, &inv.PaidAt, &inv.PaymentMethod, &inv.PaymentReference, &inv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *sqliteRepo) MarkInvoicePaid(ctx context.Context, id, method, reference string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invoices SET status = ?, paid_at = ?, payment_method = ?, payment_reference = ?
		WHERE id = ? AND status != ?`,
		InvoiceStatusPaid, time.Now().UTC(), method, reference, id, InvoiceStatusPaid)
	if err != nil {
		return fmt.Errorf("mark invoice paid: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqliteRepo) CreateDistribution(ctx context.Context, d *Distribution) error {
	if d.Status == "" {
		d.Status = DistributionStatusPending
	}
	d.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO class_distributions (id, class_id, school_id, order_id, status,
			distributed_count, total_count, distributed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.ClassID, d.SchoolID, d.OrderID, d.Status,
		d.DistributedCount, d.TotalCount, d.DistributedAt, d.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert distribution: %w", err)
	}
	return nil
}

func (r *sqliteRepo) Distributions(ctx context.Context, schoolID string) ([]Distribution, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, class_id, school_id, order_id, status, distributed_count, total_count, distributed_at, created_at
		FROM class_distributions WHERE school_id = ?
		ORDER BY created_at DESC`, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Distribution
	for rows.Next() {
		var d Distribution
		if err := rows.Scan(&d.ID, &d.ClassID, &d.SchoolID, &d.OrderID, &d.Status,
			&d.DistributedCount, &d.TotalCount, &d.DistributedAt, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *sqliteRepo) RecordDistributionProgress(ctx context.Context, id string, distributed int) error {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT total_count FROM class_distributions WHERE id = ?`, id).Scan(&total)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	status := DistributionStatusInProgress
	var distributedAt *time.Time
	if distributed >= total && total > 0 {
		status = DistributionStatusCompleted
		now := time.Now().UTC()
		distributedAt = &now
	} else if distributed == 0 {
		status = DistributionStatusPending
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE class_distributions SET distributed_count = ?, status = ?, distributed_at = ?
		WHERE id = ?`, distributed, status, distributedAt, id)
	if err != nil {
		return fmt.Errorf("update distribution: %w", err)
	}
	return nil
}

func (r *sqliteRepo) AddDistributionItem(ctx context.Context, it *DistributionItem) error {
	if it.Status == "" {
		it.Status = DistributionStatusPending
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO distribution_items (id, distribution_id, book_id, student_name, admission_number, status, distributed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.DistributionID, it.BookID, it.StudentName, it.AdmissionNumber, it.Status, it.DistributedAt)
	if err != nil {
		return fmt.Errorf("insert distribution item: %w", err)
	}
	return nil
}

func (r *sqliteRepo) DistributionItems(ctx context.Context, distributionID string) ([]DistributionItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, distribution_id, book_id, student_name, admission_number, status, distributed_at
		FROM distribution_items WHERE distribution_id = ?`, distributionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DistributionItem
	for rows.Next() {
		var it DistributionItem
		if err := rows.Scan(&it.ID, &it.DistributionID, &it.BookID, &it.StudentName,
			&it.AdmissionNumber, &it.Status, &it.DistributedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *sqliteRepo) NextOrderNumber(ctx context.Context) (string, error) {
	return r.nextNumber(ctx, "order", "BO")
}

func (r *sqliteRepo) NextInvoiceNumber(ctx context.Context) (string, error) {
	return r.nextNumber(ctx, "invoice", "INV")
}

func (r *sqliteRepo) nextNumber(ctx context.Context, kind, prefix string) (string, error) {
	year := time.Now().UTC().Year()
	var seq int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO doc_numbers (kind, year, seq) VALUES (?, ?, 1)
		ON CONFLICT (kind, year) DO UPDATE SET seq = seq + 1
		RETURNING seq`, kind, year).Scan(&seq)
	if err != nil {
		return "", fmt.Errorf("next %s number: %w", kind, err)
	}
	return fmt.Sprintf("%s-%d-%04d", prefix, year, seq), nil
}
