// Package repository defines the ledger's store interfaces and ships two
// backends: an in-memory store (default) and a MySQL store. The service
// layer receives them by injection; there is no ambient shared state.
package repository

import (
	"context"
	"time"

	"github.com/Jonathan20044/frog/internal/entity"
)

// StockDelta is one item's share of a multi-item stock mutation.
type StockDelta struct {
	StockItemID int
	Quantity    float64
}

type StockRepository interface {
	GetStockItems(ctx context.Context) ([]entity.StockItem, error)
	GetStockItemByID(ctx context.Context, id int) (*entity.StockItem, error)
	CreateStockItem(ctx context.Context, item *entity.StockItem) (*entity.StockItem, error)
	UpdateStockQuantity(ctx context.Context, id int, quantity float64) error
	DeleteStockItem(ctx context.Context, id int) error
	// DecrementStock subtracts every delta as one all-or-nothing operation:
	// if any item is missing or would go negative, no quantity changes.
	DecrementStock(ctx context.Context, deltas []StockDelta) error
	// IncrementStock adds every delta as one all-or-nothing operation.
	IncrementStock(ctx context.Context, deltas []StockDelta) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error)
	GetOrderByID(ctx context.Context, id int) (*entity.Order, error)
	GetOrders(ctx context.Context) ([]entity.Order, error)
	GetOrdersByStatus(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error)
	// GetOpenOrdersByTable returns the table's non-paid orders.
	GetOpenOrdersByTable(ctx context.Context, tableID int) ([]entity.Order, error)
	// UpdateOrders persists status transitions for the given orders as one
	// logical operation.
	UpdateOrders(ctx context.Context, orders []entity.Order) error
	GetPaidOrdersBetween(ctx context.Context, start, end time.Time) ([]entity.Order, error)
}

type RefillRepository interface {
	CreateRefill(ctx context.Context, record *entity.RefillRecord) (*entity.RefillRecord, error)
	GetRefills(ctx context.Context) ([]entity.RefillRecord, error)
	GetRefillsBetween(ctx context.Context, start, end time.Time) ([]entity.RefillRecord, error)
}
