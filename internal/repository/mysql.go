package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Jonathan20044/frog/internal/entity"
)

// MySQLStore is the durable backend. Schema is created by the migrations
// package; multi-row writes run inside transactions.
type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// SeedStock inserts the initial inventory, skipping rows that already exist.
func (s *MySQLStore) SeedStock(ctx context.Context, items []entity.StockItem) error {
	query := `INSERT IGNORE INTO stock_items (id, name, category, quantity, unit, min_stock) VALUES (?, ?, ?, ?, ?, ?)`
	for _, item := range items {
		_, err := s.db.ExecContext(ctx, query, item.ID, item.Name, item.Category, item.Quantity, item.Unit, item.MinStock)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *MySQLStore) GetStockItems(ctx context.Context) ([]entity.StockItem, error) {
	query := `SELECT id, name, category, quantity, unit, min_stock FROM stock_items ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entity.StockItem
	for rows.Next() {
		var item entity.StockItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Quantity, &item.Unit, &item.MinStock); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *MySQLStore) GetStockItemByID(ctx context.Context, id int) (*entity.StockItem, error) {
	query := `SELECT id, name, category, quantity, unit, min_stock FROM stock_items WHERE id = ?`
	item := &entity.StockItem{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Name, &item.Category, &item.Quantity, &item.Unit, &item.MinStock)
	if err == sql.ErrNoRows {
		return nil, entity.ErrStockItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MySQLStore) CreateStockItem(ctx context.Context, item *entity.StockItem) (*entity.StockItem, error) {
	query := `INSERT INTO stock_items (name, category, quantity, unit, min_stock) VALUES (?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, query, item.Name, item.Category, item.Quantity, item.Unit, item.MinStock)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	item.ID = int(id)
	return item, nil
}

func (s *MySQLStore) UpdateStockQuantity(ctx context.Context, id int, quantity float64) error {
	query := `UPDATE stock_items SET quantity = ? WHERE id = ?`
	res, err := s.db.ExecContext(ctx, query, quantity, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Zero affected rows is also returned for a no-op update, so check
		// existence before deciding it is missing.
		var exists int
		err := s.db.QueryRowContext(ctx, `SELECT 1 FROM stock_items WHERE id = ?`, id).Scan(&exists)
		if err == sql.ErrNoRows {
			return entity.ErrStockItemNotFound
		}
		return err
	}
	return nil
}

func (s *MySQLStore) DeleteStockItem(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM stock_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrStockItemNotFound
	}
	return nil
}

// DecrementStock subtracts every delta inside one transaction. The guarded
// update refuses to take any row negative; the transaction rolls back on the
// first failed item, so no quantity changes.
func (s *MySQLStore) DecrementStock(ctx context.Context, deltas []StockDelta) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `UPDATE stock_items SET quantity = quantity - ? WHERE id = ? AND quantity >= ?`
	for _, d := range deltas {
		if d.Quantity == 0 {
			continue
		}
		res, err := tx.ExecContext(ctx, query, d.Quantity, d.StockItemID, d.Quantity)
		if err != nil {
			tx.Rollback()
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			tx.Rollback()
			return err
		}
		if affected == 0 {
			tx.Rollback()
			var exists int
			err := s.db.QueryRowContext(ctx, `SELECT 1 FROM stock_items WHERE id = ?`, d.StockItemID).Scan(&exists)
			if err == sql.ErrNoRows {
				return fmt.Errorf("stock item %d: %w", d.StockItemID, entity.ErrStockItemNotFound)
			}
			if err != nil {
				return err
			}
			return fmt.Errorf("stock invariant violated: item %d cannot cover decrement of %.2f", d.StockItemID, d.Quantity)
		}
	}
	return tx.Commit()
}

func (s *MySQLStore) IncrementStock(ctx context.Context, deltas []StockDelta) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `UPDATE stock_items SET quantity = quantity + ? WHERE id = ?`
	for _, d := range deltas {
		if d.Quantity == 0 {
			continue
		}
		res, err := tx.ExecContext(ctx, query, d.Quantity, d.StockItemID)
		if err != nil {
			tx.Rollback()
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			tx.Rollback()
			return err
		}
		if affected == 0 {
			tx.Rollback()
			return fmt.Errorf("stock item %d: %w", d.StockItemID, entity.ErrStockItemNotFound)
		}
	}
	return tx.Commit()
}

func (s *MySQLStore) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	orderQuery := `INSERT INTO orders (table_id, status, total, created_at, area_name) VALUES (?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, orderQuery, order.TableID, order.Status, order.Total, order.CreatedAt, order.AreaName)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	orderID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	lineQuery := `INSERT INTO order_lines (order_id, menu_item_id, name, unit_price, quantity, note, options) VALUES `
	var values []interface{}
	for _, line := range order.Lines {
		options, err := json.Marshal(line.Options)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		lineQuery += "(?, ?, ?, ?, ?, ?, ?),"
		values = append(values, orderID, line.MenuItemID, line.Name, line.UnitPrice, line.Quantity, line.Note, string(options))
	}
	lineQuery = lineQuery[:len(lineQuery)-1]

	if _, err := tx.ExecContext(ctx, lineQuery, values...); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	order.ID = int(orderID)
	return order, nil
}

func (s *MySQLStore) GetOrderByID(ctx context.Context, id int) (*entity.Order, error) {
	query := `SELECT id, table_id, status, total, created_at, payment_method, area_name, paid_at FROM orders WHERE id = ?`
	order, err := scanOrder(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, entity.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.loadLines(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *MySQLStore) GetOrders(ctx context.Context) ([]entity.Order, error) {
	return s.queryOrders(ctx, `SELECT id, table_id, status, total, created_at, payment_method, area_name, paid_at FROM orders ORDER BY id`)
}

func (s *MySQLStore) GetOrdersByStatus(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error) {
	return s.queryOrders(ctx, `SELECT id, table_id, status, total, created_at, payment_method, area_name, paid_at FROM orders WHERE status = ? ORDER BY id`, status)
}

func (s *MySQLStore) GetOpenOrdersByTable(ctx context.Context, tableID int) ([]entity.Order, error) {
	return s.queryOrders(ctx, `SELECT id, table_id, status, total, created_at, payment_method, area_name, paid_at FROM orders WHERE table_id = ? AND status != 'paid' ORDER BY id`, tableID)
}

func (s *MySQLStore) GetPaidOrdersBetween(ctx context.Context, start, end time.Time) ([]entity.Order, error) {
	return s.queryOrders(ctx, `SELECT id, table_id, status, total, created_at, payment_method, area_name, paid_at FROM orders WHERE status = 'paid' AND paid_at BETWEEN ? AND ? ORDER BY id`, start, end)
}

func (s *MySQLStore) UpdateOrders(ctx context.Context, orders []entity.Order) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `UPDATE orders SET status = ?, payment_method = ?, area_name = ?, paid_at = ? WHERE id = ?`
	for _, order := range orders {
		var paidAt interface{}
		if order.PaidAt != nil {
			paidAt = *order.PaidAt
		}
		res, err := tx.ExecContext(ctx, query, order.Status, string(order.PaymentMethod), order.AreaName, paidAt, order.ID)
		if err != nil {
			tx.Rollback()
			return err
		}
		if _, err := res.RowsAffected(); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *MySQLStore) CreateRefill(ctx context.Context, record *entity.RefillRecord) (*entity.RefillRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	recordQuery := `INSERT INTO refill_records (id, storage_room, waiter, date) VALUES (?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, recordQuery, record.ID, record.StorageRoom, record.Waiter, record.Date); err != nil {
		tx.Rollback()
		return nil, err
	}

	lineQuery := `INSERT INTO refill_lines (refill_id, stock_item_id, item_name, quantity, unit) VALUES `
	var values []interface{}
	for _, line := range record.Items {
		lineQuery += "(?, ?, ?, ?, ?),"
		values = append(values, record.ID, line.StockItemID, line.ItemName, line.Quantity, line.Unit)
	}
	lineQuery = lineQuery[:len(lineQuery)-1]

	if _, err := tx.ExecContext(ctx, lineQuery, values...); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *MySQLStore) GetRefills(ctx context.Context) ([]entity.RefillRecord, error) {
	return s.queryRefills(ctx, `SELECT id, storage_room, waiter, date FROM refill_records ORDER BY date`)
}

func (s *MySQLStore) GetRefillsBetween(ctx context.Context, start, end time.Time) ([]entity.RefillRecord, error) {
	return s.queryRefills(ctx, `SELECT id, storage_room, waiter, date FROM refill_records WHERE date BETWEEN ? AND ? ORDER BY date`, start, end)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*entity.Order, error) {
	order := &entity.Order{}
	var method, area sql.NullString
	var paidAt sql.NullTime
	err := row.Scan(&order.ID, &order.TableID, &order.Status, &order.Total, &order.CreatedAt, &method, &area, &paidAt)
	if err != nil {
		return nil, err
	}
	if method.Valid {
		order.PaymentMethod = entity.PaymentMethod(method.String)
	}
	if area.Valid {
		order.AreaName = area.String
	}
	if paidAt.Valid {
		t := paidAt.Time
		order.PaidAt = &t
	}
	return order, nil
}

func (s *MySQLStore) queryOrders(ctx context.Context, query string, args ...interface{}) ([]entity.Order, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if err := s.loadLines(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (s *MySQLStore) loadLines(ctx context.Context, order *entity.Order) error {
	query := `SELECT menu_item_id, name, unit_price, quantity, note, options FROM order_lines WHERE order_id = ? ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query, order.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var line entity.OrderLine
		var options string
		if err := rows.Scan(&line.MenuItemID, &line.Name, &line.UnitPrice, &line.Quantity, &line.Note, &options); err != nil {
			return err
		}
		if options != "" && options != "null" {
			if err := json.Unmarshal([]byte(options), &line.Options); err != nil {
				return err
			}
		}
		order.Lines = append(order.Lines, line)
	}
	return rows.Err()
}

func (s *MySQLStore) queryRefills(ctx context.Context, query string, args ...interface{}) ([]entity.RefillRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []entity.RefillRecord
	for rows.Next() {
		var record entity.RefillRecord
		if err := rows.Scan(&record.ID, &record.StorageRoom, &record.Waiter, &record.Date); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lineQuery := `SELECT stock_item_id, item_name, quantity, unit FROM refill_lines WHERE refill_id = ? ORDER BY id`
	for i := range records {
		lineRows, err := s.db.QueryContext(ctx, lineQuery, records[i].ID)
		if err != nil {
			return nil, err
		}
		for lineRows.Next() {
			var line entity.RefillLine
			if err := lineRows.Scan(&line.StockItemID, &line.ItemName, &line.Quantity, &line.Unit); err != nil {
				lineRows.Close()
				return nil, err
			}
			records[i].Items = append(records[i].Items, line)
		}
		if err := lineRows.Err(); err != nil {
			lineRows.Close()
			return nil, err
		}
		lineRows.Close()
	}
	return records, nil
}
