package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jonathan20044/frog/internal/catalog"
	"github.com/Jonathan20044/frog/internal/entity"
	"github.com/Jonathan20044/frog/internal/repository"
)

func newTestStockService(seed []entity.StockItem) (*StockService, *repository.MemoryStore) {
	store := repository.NewMemoryStore(seed)
	return NewStockService(store, store), store
}

func TestRegisterRefillIncrementsStockAndSnapshots(t *testing.T) {
	svc, store := newTestStockService(catalog.InitialStock)
	ctx := context.Background()

	record, err := svc.RegisterRefill(ctx, "Cold Beverages Storage", "Ana", []RefillInput{
		{StockItemID: 16, Quantity: 24}, // Cola, 48 on hand
		{StockItemID: 23, Quantity: 5},  // Milk, 20 on hand
	})
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "Cold Beverages Storage", record.StorageRoom)
	assert.Equal(t, "Ana", record.Waiter)
	require.Len(t, record.Items, 2)
	assert.Equal(t, "Cola", record.Items[0].ItemName)
	assert.Equal(t, "bottles", record.Items[0].Unit)

	cola, err := store.GetStockItemByID(ctx, 16)
	require.NoError(t, err)
	assert.InDelta(t, 72, cola.Quantity, 1e-9)

	milk, err := store.GetStockItemByID(ctx, 23)
	require.NoError(t, err)
	assert.InDelta(t, 25, milk.Quantity, 1e-9)

	refills, err := store.GetRefills(ctx)
	require.NoError(t, err)
	assert.Len(t, refills, 1)
}

func TestRegisterRefillUnknownItemAppliesNothing(t *testing.T) {
	svc, store := newTestStockService(catalog.InitialStock)
	ctx := context.Background()

	_, err := svc.RegisterRefill(ctx, "Beer & Wine Storage", "Carlos", []RefillInput{
		{StockItemID: 16, Quantity: 10},
		{StockItemID: 999, Quantity: 3},
	})
	assert.ErrorIs(t, err, entity.ErrStockItemNotFound)

	cola, err := store.GetStockItemByID(ctx, 16)
	require.NoError(t, err)
	assert.InDelta(t, 48, cola.Quantity, 1e-9)

	refills, err := store.GetRefills(ctx)
	require.NoError(t, err)
	assert.Empty(t, refills)
}

func TestRegisterRefillValidation(t *testing.T) {
	svc, _ := newTestStockService(catalog.InitialStock)
	ctx := context.Background()

	_, err := svc.RegisterRefill(ctx, "", "Ana", []RefillInput{{StockItemID: 16, Quantity: 1}})
	assert.Error(t, err)

	_, err = svc.RegisterRefill(ctx, "Cold Beverages Storage", "Ana", nil)
	assert.Error(t, err)

	_, err = svc.RegisterRefill(ctx, "Cold Beverages Storage", "Ana", []RefillInput{{StockItemID: 16, Quantity: 0}})
	assert.Error(t, err)
}

func TestLowStockItems(t *testing.T) {
	svc, _ := newTestStockService([]entity.StockItem{
		{ID: 1, Name: "Lettuce", Category: entity.StockIngredient, Quantity: 15, Unit: "kg", MinStock: 5},
		{ID: 18, Name: "Orange Soda", Category: entity.StockBeverage, Quantity: 24, Unit: "bottles", MinStock: 24},
		{ID: 5, Name: "Salmon", Category: entity.StockIngredient, Quantity: 2, Unit: "kg", MinStock: 5},
	})

	low, err := svc.LowStockItems(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "Orange Soda", low[0].Name)
	assert.Equal(t, "Salmon", low[1].Name)
}

func TestAddStockItemValidation(t *testing.T) {
	svc, _ := newTestStockService(nil)
	ctx := context.Background()

	_, err := svc.AddStockItem(ctx, &entity.StockItem{Name: "", Category: entity.StockIngredient})
	assert.Error(t, err)

	_, err = svc.AddStockItem(ctx, &entity.StockItem{Name: "Basil", Category: "spice"})
	assert.Error(t, err)

	created, err := svc.AddStockItem(ctx, &entity.StockItem{Name: "Basil", Category: entity.StockIngredient, Quantity: 2, Unit: "kg", MinStock: 1})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestAdjustStockQuantity(t *testing.T) {
	svc, _ := newTestStockService(catalog.InitialStock)
	ctx := context.Background()

	item, err := svc.AdjustStockQuantity(ctx, 2, 42)
	require.NoError(t, err)
	assert.InDelta(t, 42, item.Quantity, 1e-9)

	_, err = svc.AdjustStockQuantity(ctx, 2, -1)
	assert.Error(t, err)

	_, err = svc.AdjustStockQuantity(ctx, 999, 1)
	assert.ErrorIs(t, err, entity.ErrStockItemNotFound)
}

func TestRemoveStockItem(t *testing.T) {
	svc, store := newTestStockService(catalog.InitialStock)
	ctx := context.Background()

	require.NoError(t, svc.RemoveStockItem(ctx, 27))
	_, err := store.GetStockItemByID(ctx, 27)
	assert.ErrorIs(t, err, entity.ErrStockItemNotFound)

	assert.ErrorIs(t, svc.RemoveStockItem(ctx, 27), entity.ErrStockItemNotFound)
}
