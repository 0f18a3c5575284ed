package schools

const schema = `
CREATE TABLE IF NOT EXISTS schools (
	id              TEXT PRIMARY KEY,
	name            TEXT NOT NULL,
	address         TEXT NOT NULL DEFAULT '',
	county          TEXT NOT NULL DEFAULT '',
	phone           TEXT NOT NULL DEFAULT '',
	email           TEXT NOT NULL DEFAULT '',
	contact_person  TEXT NOT NULL DEFAULT '',
	total_students  INTEGER NOT NULL DEFAULT 0,
	status          TEXT NOT NULL DEFAULT 'active',
	created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS school_members (
	id         TEXT PRIMARY KEY,
	school_id  TEXT NOT NULL REFERENCES schools(id),
	user_id    TEXT NOT NULL,
	role       TEXT NOT NULL DEFAULT 'school_partner',
	UNIQUE (school_id, user_id)
);

CREATE TABLE IF NOT EXISTS classes (
	id             TEXT PRIMARY KEY,
	school_id      TEXT NOT NULL REFERENCES schools(id),
	name           TEXT NOT NULL,
	grade          INTEGER NOT NULL,
	stream         TEXT NOT NULL DEFAULT '',
	student_count  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS bulk_orders (
	id                TEXT PRIMARY KEY,
	order_number      TEXT NOT NULL UNIQUE,
	school_id         TEXT NOT NULL REFERENCES schools(id),
	created_by        TEXT NOT NULL,
	status            TEXT NOT NULL DEFAULT 'pending',
	total_books       INTEGER NOT NULL DEFAULT 0,
	subtotal          INTEGER NOT NULL DEFAULT 0,
	bulk_discount     INTEGER NOT NULL DEFAULT 0,
	total_amount      INTEGER NOT NULL DEFAULT 0,
	delivery_address  TEXT NOT NULL DEFAULT '',
	notes             TEXT NOT NULL DEFAULT '',
	created_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS bulk_order_items (
	id           TEXT PRIMARY KEY,
	order_id     TEXT NOT NULL REFERENCES bulk_orders(id),
	book_id      TEXT NOT NULL,
	class_id     TEXT NOT NULL DEFAULT '',
	quantity     INTEGER NOT NULL,
	unit_price   INTEGER NOT NULL,
	total_price  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS invoices (
	id                 TEXT PRIMARY KEY,
	invoice_number     TEXT NOT NULL UNIQUE,
	school_id          TEXT NOT NULL REFERENCES schools(id),
	order_id           TEXT NOT NULL DEFAULT '',
	amount             INTEGER NOT NULL,
	status             TEXT NOT NULL DEFAULT 'pending',
	due_date           TIMESTAMP NOT NULL,
	paid_at            TIMESTAMP,
	payment_method     TEXT NOT NULL DEFAULT '',
	payment_reference  TEXT NOT NULL DEFAULT '',
	created_at         TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS class_distributions (
	id                 TEXT PRIMARY KEY,
	class_id           TEXT NOT NULL REFERENCES classes(id),
	school_id          TEXT NOT NULL REFERENCES schools(id),
	order_id           TEXT NOT NULL DEFAULT '',
	status             TEXT NOT NULL DEFAULT 'pending',
	distributed_count  INTEGER NOT NULL DEFAULT 0,
	total_count        INTEGER NOT NULL DEFAULT 0,
	distributed_at     TIMESTAMP,
	created_at         TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS distribution_items (
	id                TEXT PRIMARY KEY,
	distribution_id   TEXT NOT NULL REFERENCES class_distributions(id),
	book_id           TEXT NOT NULL,
	student_name      TEXT NOT NULL DEFAULT '',
	admission_number  TEXT NOT NULL DEFAULT '',
	status            TEXT NOT NULL DEFAULT 'pending',
	distributed_at    TIMESTAMP
);

CREATE TABLE IF NOT EXISTS doc_numbers (
	kind  TEXT NOT NULL,
	year  INTEGER NOT NULL,
	seq   INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (kind, year)
);
`
