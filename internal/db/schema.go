package db

// SchemaSQL is the complete schema for a fresh shopsight database. This is
// the single source of truth: repository tests load it via GetSchemaSQL()
// instead of hardcoding CREATE TABLE statements, so drift between test and
// production schemas fails immediately with "no such column".
const SchemaSQL = `
-- Ledger tables (loaded from the CSV feed)
CREATE TABLE IF NOT EXISTS customers (
	customer_id INTEGER PRIMARY KEY,
	signup_date DATETIME NOT NULL,
	location TEXT NOT NULL,
	age_group TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
	order_id INTEGER PRIMARY KEY,
	customer_id INTEGER NOT NULL,
	order_date DATETIME NOT NULL,
	total_amount REAL NOT NULL,
	order_status TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id);
CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(order_status);

CREATE TABLE IF NOT EXISTS products (
	product_id INTEGER PRIMARY KEY,
	product_name TEXT NOT NULL,
	category TEXT NOT NULL,
	cost_price REAL NOT NULL,
	retail_price REAL NOT NULL,
	current_stock INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS order_items (
	item_id INTEGER PRIMARY KEY,
	order_id INTEGER NOT NULL,
	product_id INTEGER NOT NULL,
	quantity INTEGER NOT NULL,
	unit_price REAL NOT NULL,
	discount_amount REAL NOT NULL
);

-- Result tables (replaced wholesale on every analysis run)
CREATE TABLE IF NOT EXISTS rfm_segments (
	customer_id INTEGER PRIMARY KEY,
	recency INTEGER NOT NULL,
	frequency INTEGER NOT NULL,
	monetary REAL NOT NULL,
	r_score INTEGER NOT NULL CHECK(r_score BETWEEN 1 AND 5),
	f_score INTEGER NOT NULL CHECK(f_score BETWEEN 1 AND 5),
	m_score INTEGER NOT NULL CHECK(m_score BETWEEN 1 AND 5),
	rfm_score TEXT NOT NULL,
	segment TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS segment_summary (
	position INTEGER PRIMARY KEY,
	segment TEXT NOT NULL UNIQUE,
	customer_count INTEGER NOT NULL,
	total_revenue REAL NOT NULL,
	avg_revenue REAL NOT NULL,
	avg_frequency REAL NOT NULL,
	avg_recency REAL NOT NULL
);
`

// GetSchemaSQL returns the authoritative schema for use in tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
