package migrations

import (
	"database/sql"
	"time"
)

func execWithRetry(db *sql.DB, query string, retries int) error {
	_, err := db.Exec(query)
	for i := 0; err != nil && i < retries; i++ {
		time.Sleep(1 * time.Second)
		_, err = db.Exec(query)
	}
	return err
}

// AutoMigrateStock creates the stock_items table if it does not exist.
func AutoMigrateStock(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS stock_items (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(20) NOT NULL,
			quantity DOUBLE NOT NULL,
			unit VARCHAR(20) NOT NULL,
			min_stock DOUBLE NOT NULL
		);
	`
	return execWithRetry(db, query, retries)
}

// AutoMigrateOrders creates the orders and order_lines tables if they do not
// exist.
func AutoMigrateOrders(retries int, db *sql.DB) error {
	orders := `
		CREATE TABLE IF NOT EXISTS orders (
			id INT AUTO_INCREMENT PRIMARY KEY,
			table_id INT NOT NULL,
			status VARCHAR(20) NOT NULL,
			total DOUBLE NOT NULL,
			created_at DATETIME NOT NULL,
			payment_method VARCHAR(20),
			area_name VARCHAR(100),
			paid_at DATETIME,
			INDEX idx_orders_table_status (table_id, status),
			INDEX idx_orders_paid_at (paid_at)
		);
	`
	if err := execWithRetry(db, orders, retries); err != nil {
		return err
	}

	lines := `
		CREATE TABLE IF NOT EXISTS order_lines (
			id INT AUTO_INCREMENT PRIMARY KEY,
			order_id INT NOT NULL,
			menu_item_id INT NOT NULL,
			name VARCHAR(255) NOT NULL,
			unit_price DOUBLE NOT NULL,
			quantity INT NOT NULL,
			note TEXT,
			options TEXT,
			FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
		);
	`
	return execWithRetry(db, lines, retries)
}

// AutoMigrateRefills creates the refill_records and refill_lines tables if
// they do not exist.
func AutoMigrateRefills(retries int, db *sql.DB) error {
	records := `
		CREATE TABLE IF NOT EXISTS refill_records (
			id VARCHAR(36) PRIMARY KEY,
			storage_room VARCHAR(100) NOT NULL,
			waiter VARCHAR(100) NOT NULL,
			date DATETIME NOT NULL,
			INDEX idx_refills_date (date)
		);
	`
	if err := execWithRetry(db, records, retries); err != nil {
		return err
	}

	lines := `
		CREATE TABLE IF NOT EXISTS refill_lines (
			id INT AUTO_INCREMENT PRIMARY KEY,
			refill_id VARCHAR(36) NOT NULL,
			stock_item_id INT NOT NULL,
			item_name VARCHAR(255) NOT NULL,
			quantity DOUBLE NOT NULL,
			unit VARCHAR(20) NOT NULL,
			FOREIGN KEY (refill_id) REFERENCES refill_records(id) ON DELETE CASCADE
		);
	`
	return execWithRetry(db, lines, retries)
}
