package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/Jonathan20044/frog/internal/catalog"
	"github.com/Jonathan20044/frog/internal/entity"
	"github.com/Jonathan20044/frog/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// CartLine is one proposed line of a not-yet-committed order.
type CartLine struct {
	MenuItemID int               `json:"menu_item_id"`
	Quantity   int               `json:"quantity"`
	Note       string            `json:"note,omitempty"`
	Options    map[string]string `json:"options,omitempty"`
}

// TableOverview is the derived view of one table.
type TableOverview struct {
	TableID    int                `json:"table_id"`
	AreaName   string             `json:"area_name"`
	Status     entity.TableStatus `json:"status"`
	OrderCount int                `json:"order_count"`
	OpenTotal  float64            `json:"open_total"`
}

// LedgerService is the order/inventory bookkeeping core: it validates carts
// against stock, commits orders, drives the preparing→ready→paid lifecycle
// and derives table status. A single mutex brackets every validate-then-
// mutate sequence so concurrent requests cannot interleave between a
// sufficiency check and the commit that depends on it.
type LedgerService struct {
	mu          sync.Mutex
	orderRepo   repository.OrderRepository
	stockRepo   repository.StockRepository
	kafkaWriter *kafka.Writer
	rdb         *redis.Client
}

// NewLedgerService creates a new instance of LedgerService. kafkaWriter and
// rdb may be nil; event publishing and idempotency checks are skipped then.
func NewLedgerService(orderRepo repository.OrderRepository, stockRepo repository.StockRepository, kafkaWriter *kafka.Writer, rdb *redis.Client) *LedgerService {
	return &LedgerService{
		orderRepo:   orderRepo,
		stockRepo:   stockRepo,
		kafkaWriter: kafkaWriter,
		rdb:         rdb,
	}
}

// requirements aggregates the stock each cart line consumes, summed per
// stock item across all lines. The returned ids keep first-seen order so
// shortfall lists are deterministic. A line referencing an unknown menu
// item fails loudly.
func requirements(lines []CartLine) (ids []int, required map[int]float64, err error) {
	required = make(map[int]float64)
	for _, line := range lines {
		item, ok := catalog.MenuItemByID(line.MenuItemID)
		if !ok {
			return nil, nil, fmt.Errorf("menu item %d: %w", line.MenuItemID, entity.ErrMenuItemNotFound)
		}
		for _, r := range item.Recipe {
			if _, seen := required[r.StockItemID]; !seen {
				ids = append(ids, r.StockItemID)
			}
			required[r.StockItemID] += r.Quantity * float64(line.Quantity)
		}
	}
	return ids, required, nil
}

// ValidateCart checks every cumulative stock requirement of the cart against
// the quantity on hand and returns one shortfall per insufficient item. An
// empty result means the cart can be committed.
func (s *LedgerService) ValidateCart(ctx context.Context, lines []CartLine) ([]entity.Shortfall, error) {
	ids, required, err := requirements(lines)
	if err != nil {
		return nil, err
	}

	var shortfalls []entity.Shortfall
	for _, id := range ids {
		item, err := s.stockRepo.GetStockItemByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("stock item %d: %w", id, err)
		}
		if required[id] > item.Quantity {
			shortfalls = append(shortfalls, entity.Shortfall{
				StockItemID: id,
				Name:        item.Name,
				Required:    required[id],
				Available:   item.Quantity,
				Unit:        item.Unit,
			})
		}
	}
	return shortfalls, nil
}

// PlaceOrder commits a cart for a table: validates stock sufficiency,
// snapshots names and prices from the catalog, decrements stock and creates
// the order in preparing state. On a shortfall nothing is mutated and the
// error carries the full shortfall list.
func (s *LedgerService) PlaceOrder(ctx context.Context, tableID int, lines []CartLine, idempotentKey string) (*entity.Order, error) {
	if len(lines) == 0 {
		return nil, entity.ErrEmptyOrder
	}
	if _, ok := catalog.AreaForTable(tableID); !ok {
		return nil, entity.ErrUnknownTable
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("menu item %d: quantity must be positive: %w", line.MenuItemID, entity.ErrInvalidInput)
		}
	}

	ok, err := s.checkIdempotentKey(ctx, idempotentKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entity.ErrDuplicateRequest
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shortfalls, err := s.ValidateCart(ctx, lines)
	if err != nil {
		return nil, err
	}
	if len(shortfalls) > 0 {
		return nil, &entity.InsufficientStockError{Shortfalls: shortfalls}
	}

	order := &entity.Order{
		TableID:   tableID,
		Status:    entity.OrderPreparing,
		CreatedAt: time.Now(),
	}
	for _, line := range lines {
		item, _ := catalog.MenuItemByID(line.MenuItemID)
		order.Lines = append(order.Lines, entity.OrderLine{
			MenuItemID: item.ID,
			Name:       item.Name,
			UnitPrice:  item.Price,
			Quantity:   line.Quantity,
			Note:       line.Note,
			Options:    line.Options,
		})
		order.Total += item.Price * float64(line.Quantity)
	}

	if err := s.decrementStock(ctx, lines); err != nil {
		return nil, err
	}

	createdOrder, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating order")
		if restoreErr := s.restoreStock(ctx, lines); restoreErr != nil {
			logger.Error().Err(restoreErr).Msg("Error restoring stock after failed order create")
		}
		return nil, err
	}

	s.publishOrderEvent(ctx, createdOrder, "created")
	return createdOrder, nil
}

// stockDeltas converts the aggregated requirements into store deltas,
// first-seen order preserved.
func stockDeltas(lines []CartLine) ([]repository.StockDelta, error) {
	ids, required, err := requirements(lines)
	if err != nil {
		return nil, err
	}
	deltas := make([]repository.StockDelta, 0, len(ids))
	for _, id := range ids {
		if required[id] == 0 {
			continue
		}
		deltas = append(deltas, repository.StockDelta{StockItemID: id, Quantity: required[id]})
	}
	return deltas, nil
}

// decrementStock applies the aggregated requirements as one all-or-nothing
// store operation. Validation already ran, so a failure here means the stock
// moved underneath the commit; nothing is applied and no order is created.
func (s *LedgerService) decrementStock(ctx context.Context, lines []CartLine) error {
	deltas, err := stockDeltas(lines)
	if err != nil {
		return err
	}
	return s.stockRepo.DecrementStock(ctx, deltas)
}

// restoreStock puts a decremented cart's quantities back after a failed
// order create.
func (s *LedgerService) restoreStock(ctx context.Context, lines []CartLine) error {
	deltas, err := stockDeltas(lines)
	if err != nil {
		return err
	}
	return s.stockRepo.IncrementStock(ctx, deltas)
}

// MarkTableReady moves every preparing order of the table to ready. Orders
// already ready are untouched, so a second round confirmed later keeps its
// own lifecycle.
func (s *LedgerService) MarkTableReady(ctx context.Context, tableID int) ([]entity.Order, error) {
	if _, ok := catalog.AreaForTable(tableID); !ok {
		return nil, entity.ErrUnknownTable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	open, err := s.orderRepo.GetOpenOrdersByTable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	var updated []entity.Order
	for _, order := range open {
		if order.Status == entity.OrderPreparing {
			order.Status = entity.OrderReady
			updated = append(updated, order)
		}
	}
	if len(updated) == 0 {
		return nil, entity.ErrNoPreparingOrders
	}

	if err := s.orderRepo.UpdateOrders(ctx, updated); err != nil {
		logger.Error().Err(err).Msgf("Error marking table %d ready", tableID)
		return nil, err
	}

	for i := range updated {
		s.publishOrderEvent(ctx, &updated[i], "ready")
	}
	return updated, nil
}

// PayTable settles every non-paid order of the table as one logical
// operation, stamping method, resolved area label and payment time.
func (s *LedgerService) PayTable(ctx context.Context, tableID int, method entity.PaymentMethod) ([]entity.Order, error) {
	if !method.Valid() {
		return nil, entity.ErrInvalidPayment
	}
	area, ok := catalog.AreaForTable(tableID)
	if !ok {
		return nil, entity.ErrUnknownTable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	open, err := s.orderRepo.GetOpenOrdersByTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if len(open) == 0 {
		return nil, entity.ErrNoOpenOrders
	}

	now := time.Now()
	for i := range open {
		open[i].Status = entity.OrderPaid
		open[i].PaymentMethod = method
		open[i].AreaName = area.Name
		open[i].PaidAt = &now
	}

	if err := s.orderRepo.UpdateOrders(ctx, open); err != nil {
		logger.Error().Err(err).Msgf("Error paying table %d", tableID)
		return nil, err
	}

	for i := range open {
		s.publishOrderEvent(ctx, &open[i], "paid")
	}
	return open, nil
}

// TableStatus derives the effective status of one table.
func (s *LedgerService) TableStatus(ctx context.Context, tableID int) (entity.TableStatus, []entity.Order, error) {
	if _, ok := catalog.AreaForTable(tableID); !ok {
		return "", nil, entity.ErrUnknownTable
	}
	open, err := s.orderRepo.GetOpenOrdersByTable(ctx, tableID)
	if err != nil {
		return "", nil, err
	}
	return entity.DeriveTableStatus(open), open, nil
}

// TableOverviews derives the status of every table in the topology.
func (s *LedgerService) TableOverviews(ctx context.Context) ([]TableOverview, error) {
	var overviews []TableOverview
	for _, area := range catalog.Areas {
		for _, table := range area.Tables {
			open, err := s.orderRepo.GetOpenOrdersByTable(ctx, table.ID)
			if err != nil {
				return nil, err
			}
			overview := TableOverview{
				TableID:    table.ID,
				AreaName:   area.Name,
				Status:     entity.DeriveTableStatus(open),
				OrderCount: len(open),
			}
			for _, o := range open {
				overview.OpenTotal += o.Total
			}
			overviews = append(overviews, overview)
		}
	}
	return overviews, nil
}

// Order returns one order by id.
func (s *LedgerService) Order(ctx context.Context, id int) (*entity.Order, error) {
	return s.orderRepo.GetOrderByID(ctx, id)
}

// KitchenQueue lists every order currently preparing.
func (s *LedgerService) KitchenQueue(ctx context.Context) ([]entity.Order, error) {
	return s.orderRepo.GetOrdersByStatus(ctx, entity.OrderPreparing)
}

func (s *LedgerService) publishOrderEvent(ctx context.Context, order *entity.Order, event string) {
	if s.kafkaWriter == nil || os.Getenv("ENV") == "test" {
		return
	}
	orderJSON, err := json.Marshal(order)
	if err != nil {
		logger.Error().Err(err).Msgf("Error marshalling order %d", order.ID)
		return
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("order-%s-%d", event, order.ID)),
		Value: orderJSON,
	}
	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Error().Err(err).Msgf("Error publishing order %s event", event)
	}
}

func (s *LedgerService) checkIdempotentKey(ctx context.Context, key string) (bool, error) {
	if key == "" || s.rdb == nil || os.Getenv("ENV") == "test" {
		return true, nil
	}
	redisKey := fmt.Sprintf("idempotent-key:%s", key)
	val, err := s.rdb.Get(ctx, redisKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}
	if val != "" {
		return false, nil
	}

	err = s.rdb.Set(ctx, redisKey, "exists", 24*time.Hour).Err()
	return true, err
}
