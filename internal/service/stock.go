package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Jonathan20044/frog/internal/entity"
	"github.com/Jonathan20044/frog/internal/repository"
)

// RefillInput is one line of a refill submission.
type RefillInput struct {
	StockItemID int     `json:"stock_item_id"`
	Quantity    float64 `json:"quantity"`
}

// StockService manages the inventory table and storage refill logging.
type StockService struct {
	mu         sync.Mutex
	stockRepo  repository.StockRepository
	refillRepo repository.RefillRepository
}

// NewStockService creates a new instance of StockService.
func NewStockService(stockRepo repository.StockRepository, refillRepo repository.RefillRepository) *StockService {
	return &StockService{stockRepo: stockRepo, refillRepo: refillRepo}
}

func (s *StockService) ListStock(ctx context.Context) ([]entity.StockItem, error) {
	return s.stockRepo.GetStockItems(ctx)
}

func (s *StockService) AddStockItem(ctx context.Context, item *entity.StockItem) (*entity.StockItem, error) {
	if item.Name == "" {
		return nil, fmt.Errorf("stock item name is required: %w", entity.ErrInvalidInput)
	}
	if !item.Category.Valid() {
		return nil, fmt.Errorf("invalid stock category %q: %w", item.Category, entity.ErrInvalidInput)
	}
	if item.Quantity < 0 || item.MinStock < 0 {
		return nil, fmt.Errorf("stock quantities must be non-negative: %w", entity.ErrInvalidInput)
	}
	created, err := s.stockRepo.CreateStockItem(ctx, item)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating stock item")
		return nil, err
	}
	return created, nil
}

// AdjustStockQuantity is the manual-correction path; it sets the absolute
// quantity on hand.
func (s *StockService) AdjustStockQuantity(ctx context.Context, id int, quantity float64) (*entity.StockItem, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must be non-negative: %w", entity.ErrInvalidInput)
	}
	if err := s.stockRepo.UpdateStockQuantity(ctx, id, quantity); err != nil {
		return nil, err
	}
	return s.stockRepo.GetStockItemByID(ctx, id)
}

func (s *StockService) RemoveStockItem(ctx context.Context, id int) error {
	return s.stockRepo.DeleteStockItem(ctx, id)
}

// LowStockItems returns every item at or below its minimum threshold.
func (s *StockService) LowStockItems(ctx context.Context) ([]entity.StockItem, error) {
	items, err := s.stockRepo.GetStockItems(ctx)
	if err != nil {
		return nil, err
	}
	var low []entity.StockItem
	for _, item := range items {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low, nil
}

// RegisterRefill records a storage refill and increments the refilled items'
// quantities. Every line is resolved before anything is applied, so a refill
// naming an unknown stock item changes nothing.
func (s *StockService) RegisterRefill(ctx context.Context, storageRoom, waiter string, items []RefillInput) (*entity.RefillRecord, error) {
	if storageRoom == "" || waiter == "" {
		return nil, fmt.Errorf("storage room and waiter are required: %w", entity.ErrInvalidInput)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("refill has no items: %w", entity.ErrInvalidInput)
	}
	for _, in := range items {
		if in.Quantity <= 0 {
			return nil, fmt.Errorf("stock item %d: refill quantity must be positive: %w", in.StockItemID, entity.ErrInvalidInput)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := &entity.RefillRecord{
		ID:          uuid.NewString(),
		StorageRoom: storageRoom,
		Waiter:      waiter,
		Date:        time.Now(),
	}
	deltas := make([]repository.StockDelta, 0, len(items))
	for _, in := range items {
		item, err := s.stockRepo.GetStockItemByID(ctx, in.StockItemID)
		if err != nil {
			return nil, fmt.Errorf("stock item %d: %w", in.StockItemID, err)
		}
		record.Items = append(record.Items, entity.RefillLine{
			StockItemID: item.ID,
			ItemName:    item.Name,
			Quantity:    in.Quantity,
			Unit:        item.Unit,
		})
		deltas = append(deltas, repository.StockDelta{StockItemID: in.StockItemID, Quantity: in.Quantity})
	}

	// Increment by delta in one store operation, so a concurrent order
	// commit between resolve and apply is never overwritten.
	if err := s.stockRepo.IncrementStock(ctx, deltas); err != nil {
		return nil, err
	}

	created, err := s.refillRepo.CreateRefill(ctx, record)
	if err != nil {
		logger.Error().Err(err).Msg("Error recording refill")
		return nil, err
	}
	return created, nil
}
