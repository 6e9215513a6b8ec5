package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jonathan20044/frog/internal/entity"
)

func seed() []entity.StockItem {
	return []entity.StockItem{
		{ID: 1, Name: "Lettuce", Category: entity.StockIngredient, Quantity: 15, Unit: "kg", MinStock: 5},
		{ID: 2, Name: "Tomato", Category: entity.StockIngredient, Quantity: 20, Unit: "kg", MinStock: 8},
	}
}

func TestMemoryStockCRUD(t *testing.T) {
	store := NewMemoryStore(seed())
	ctx := context.Background()

	items, err := store.GetStockItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	created, err := store.CreateStockItem(ctx, &entity.StockItem{Name: "Basil", Category: entity.StockIngredient, Quantity: 1, Unit: "kg", MinStock: 0.5})
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)

	require.NoError(t, store.UpdateStockQuantity(ctx, 3, 2.5))
	item, err := store.GetStockItemByID(ctx, 3)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, item.Quantity, 1e-9)

	require.NoError(t, store.DeleteStockItem(ctx, 3))
	_, err = store.GetStockItemByID(ctx, 3)
	assert.ErrorIs(t, err, entity.ErrStockItemNotFound)
	assert.ErrorIs(t, store.DeleteStockItem(ctx, 3), entity.ErrStockItemNotFound)

	// List order is stable after churn.
	items, err = store.GetStockItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Lettuce", items[0].Name)
	assert.Equal(t, "Tomato", items[1].Name)
}

func TestMemoryDecrementStockAllOrNothing(t *testing.T) {
	store := NewMemoryStore(seed())
	ctx := context.Background()

	// Tomato cannot cover its delta; lettuce must stay untouched.
	err := store.DecrementStock(ctx, []StockDelta{
		{StockItemID: 1, Quantity: 5},
		{StockItemID: 2, Quantity: 25},
	})
	require.Error(t, err)

	lettuce, err := store.GetStockItemByID(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 15, lettuce.Quantity, 1e-9)
	tomato, err := store.GetStockItemByID(ctx, 2)
	require.NoError(t, err)
	assert.InDelta(t, 20, tomato.Quantity, 1e-9)

	// An unknown item fails the whole batch too.
	err = store.DecrementStock(ctx, []StockDelta{
		{StockItemID: 1, Quantity: 5},
		{StockItemID: 999, Quantity: 1},
	})
	assert.ErrorIs(t, err, entity.ErrStockItemNotFound)
	lettuce, err = store.GetStockItemByID(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 15, lettuce.Quantity, 1e-9)

	require.NoError(t, store.DecrementStock(ctx, []StockDelta{{StockItemID: 1, Quantity: 5}}))
	lettuce, err = store.GetStockItemByID(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 10, lettuce.Quantity, 1e-9)
}

func TestMemoryIncrementStockAllOrNothing(t *testing.T) {
	store := NewMemoryStore(seed())
	ctx := context.Background()

	err := store.IncrementStock(ctx, []StockDelta{
		{StockItemID: 1, Quantity: 3},
		{StockItemID: 999, Quantity: 1},
	})
	assert.ErrorIs(t, err, entity.ErrStockItemNotFound)
	lettuce, err := store.GetStockItemByID(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 15, lettuce.Quantity, 1e-9)

	require.NoError(t, store.IncrementStock(ctx, []StockDelta{{StockItemID: 1, Quantity: 3}}))
	lettuce, err = store.GetStockItemByID(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 18, lettuce.Quantity, 1e-9)
}

func TestMemoryOpenOrderIndex(t *testing.T) {
	store := NewMemoryStore(nil)
	ctx := context.Background()

	first, err := store.CreateOrder(ctx, &entity.Order{TableID: 4, Status: entity.OrderPreparing, Total: 180, CreatedAt: time.Now()})
	require.NoError(t, err)
	second, err := store.CreateOrder(ctx, &entity.Order{TableID: 4, Status: entity.OrderPreparing, Total: 95, CreatedAt: time.Now()})
	require.NoError(t, err)
	_, err = store.CreateOrder(ctx, &entity.Order{TableID: 9, Status: entity.OrderPreparing, Total: 40, CreatedAt: time.Now()})
	require.NoError(t, err)

	open, err := store.GetOpenOrdersByTable(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, open, 2)

	// Paying both drops them from the table index but keeps the history.
	now := time.Now()
	first.Status = entity.OrderPaid
	first.PaidAt = &now
	second.Status = entity.OrderPaid
	second.PaidAt = &now
	require.NoError(t, store.UpdateOrders(ctx, []entity.Order{*first, *second}))

	open, err = store.GetOpenOrdersByTable(ctx, 4)
	require.NoError(t, err)
	assert.Empty(t, open)

	all, err := store.GetOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	paid, err := store.GetPaidOrdersBetween(ctx, now.Add(-time.Minute), now.Add(time.Minute))
	require.NoError(t, err)
	assert.Len(t, paid, 2)
}

func TestMemoryUpdateOrdersUnknownID(t *testing.T) {
	store := NewMemoryStore(nil)
	err := store.UpdateOrders(context.Background(), []entity.Order{{ID: 42, Status: entity.OrderReady}})
	assert.ErrorIs(t, err, entity.ErrOrderNotFound)
}

func TestMemoryRefillsBetween(t *testing.T) {
	store := NewMemoryStore(nil)
	ctx := context.Background()
	now := time.Now()

	_, err := store.CreateRefill(ctx, &entity.RefillRecord{ID: "old", Date: now.AddDate(0, 0, -2)})
	require.NoError(t, err)
	_, err = store.CreateRefill(ctx, &entity.RefillRecord{ID: "new", Date: now})
	require.NoError(t, err)

	records, err := store.GetRefillsBetween(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "new", records[0].ID)

	all, err := store.GetRefills(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
