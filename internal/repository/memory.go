package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Jonathan20044/frog/internal/entity"
)

// MemoryStore keeps the whole ledger in process memory. It is the default
// backend when no database is configured. An RWMutex guards every access
// because the HTTP server handles requests concurrently.
type MemoryStore struct {
	mu sync.RWMutex

	stock       map[int]entity.StockItem
	stockOrder  []int
	nextStockID int

	orders      map[int]entity.Order
	orderSeq    []int
	nextOrderID int
	// openByTable indexes non-paid order ids per table so derived status
	// never rescans the full order history.
	openByTable map[int][]int

	refills []entity.RefillRecord
}

func NewMemoryStore(seed []entity.StockItem) *MemoryStore {
	s := &MemoryStore{
		stock:       make(map[int]entity.StockItem),
		orders:      make(map[int]entity.Order),
		openByTable: make(map[int][]int),
		nextStockID: 1,
		nextOrderID: 1,
	}
	for _, item := range seed {
		s.stock[item.ID] = item
		s.stockOrder = append(s.stockOrder, item.ID)
		if item.ID >= s.nextStockID {
			s.nextStockID = item.ID + 1
		}
	}
	return s
}

func (s *MemoryStore) GetStockItems(ctx context.Context) ([]entity.StockItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entity.StockItem, 0, len(s.stockOrder))
	for _, id := range s.stockOrder {
		items = append(items, s.stock[id])
	}
	return items, nil
}

func (s *MemoryStore) GetStockItemByID(ctx context.Context, id int) (*entity.StockItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.stock[id]
	if !ok {
		return nil, entity.ErrStockItemNotFound
	}
	return &item, nil
}

func (s *MemoryStore) CreateStockItem(ctx context.Context, item *entity.StockItem) (*entity.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.nextStockID
	s.nextStockID++
	s.stock[item.ID] = *item
	s.stockOrder = append(s.stockOrder, item.ID)
	return item, nil
}

func (s *MemoryStore) UpdateStockQuantity(ctx context.Context, id int, quantity float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.stock[id]
	if !ok {
		return entity.ErrStockItemNotFound
	}
	item.Quantity = quantity
	s.stock[id] = item
	return nil
}

func (s *MemoryStore) DeleteStockItem(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stock[id]; !ok {
		return entity.ErrStockItemNotFound
	}
	delete(s.stock, id)
	for i, sid := range s.stockOrder {
		if sid == id {
			s.stockOrder = append(s.stockOrder[:i], s.stockOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) DecrementStock(ctx context.Context, deltas []StockDelta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Check every delta before applying any, so a failure changes nothing.
	for _, d := range deltas {
		item, ok := s.stock[d.StockItemID]
		if !ok {
			return fmt.Errorf("stock item %d: %w", d.StockItemID, entity.ErrStockItemNotFound)
		}
		if item.Quantity-d.Quantity < 0 {
			return fmt.Errorf("stock invariant violated: %s would go to %.2f %s",
				item.Name, item.Quantity-d.Quantity, item.Unit)
		}
	}
	for _, d := range deltas {
		item := s.stock[d.StockItemID]
		item.Quantity -= d.Quantity
		s.stock[d.StockItemID] = item
	}
	return nil
}

func (s *MemoryStore) IncrementStock(ctx context.Context, deltas []StockDelta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range deltas {
		if _, ok := s.stock[d.StockItemID]; !ok {
			return fmt.Errorf("stock item %d: %w", d.StockItemID, entity.ErrStockItemNotFound)
		}
	}
	for _, d := range deltas {
		item := s.stock[d.StockItemID]
		item.Quantity += d.Quantity
		s.stock[d.StockItemID] = item
	}
	return nil
}

func (s *MemoryStore) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.ID = s.nextOrderID
	s.nextOrderID++
	s.orders[order.ID] = *order
	s.orderSeq = append(s.orderSeq, order.ID)
	if order.Status != entity.OrderPaid {
		s.openByTable[order.TableID] = append(s.openByTable[order.TableID], order.ID)
	}
	return order, nil
}

func (s *MemoryStore) GetOrderByID(ctx context.Context, id int) (*entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, entity.ErrOrderNotFound
	}
	return &order, nil
}

func (s *MemoryStore) GetOrders(ctx context.Context) ([]entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]entity.Order, 0, len(s.orderSeq))
	for _, id := range s.orderSeq {
		orders = append(orders, s.orders[id])
	}
	return orders, nil
}

func (s *MemoryStore) GetOrdersByStatus(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var orders []entity.Order
	for _, id := range s.orderSeq {
		if s.orders[id].Status == status {
			orders = append(orders, s.orders[id])
		}
	}
	return orders, nil
}

func (s *MemoryStore) GetOpenOrdersByTable(ctx context.Context, tableID int) ([]entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.openByTable[tableID]
	orders := make([]entity.Order, 0, len(ids))
	for _, id := range ids {
		orders = append(orders, s.orders[id])
	}
	return orders, nil
}

func (s *MemoryStore) UpdateOrders(ctx context.Context, orders []entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range orders {
		if _, ok := s.orders[order.ID]; !ok {
			return entity.ErrOrderNotFound
		}
	}
	for _, order := range orders {
		s.orders[order.ID] = order
		if order.Status == entity.OrderPaid {
			s.removeOpen(order.TableID, order.ID)
		}
	}
	return nil
}

// removeOpen drops an order id from the table index. Caller holds the lock.
func (s *MemoryStore) removeOpen(tableID, orderID int) {
	ids := s.openByTable[tableID]
	for i, id := range ids {
		if id == orderID {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(s.openByTable, tableID)
		return
	}
	s.openByTable[tableID] = ids
}

func (s *MemoryStore) GetPaidOrdersBetween(ctx context.Context, start, end time.Time) ([]entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var orders []entity.Order
	for _, id := range s.orderSeq {
		order := s.orders[id]
		if order.Status != entity.OrderPaid || order.PaidAt == nil {
			continue
		}
		if order.PaidAt.Before(start) || order.PaidAt.After(end) {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (s *MemoryStore) CreateRefill(ctx context.Context, record *entity.RefillRecord) (*entity.RefillRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refills = append(s.refills, *record)
	return record, nil
}

func (s *MemoryStore) GetRefills(ctx context.Context) ([]entity.RefillRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.RefillRecord, len(s.refills))
	copy(out, s.refills)
	return out, nil
}

func (s *MemoryStore) GetRefillsBetween(ctx context.Context, start, end time.Time) ([]entity.RefillRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.RefillRecord
	for _, r := range s.refills {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
