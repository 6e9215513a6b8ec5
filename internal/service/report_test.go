package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jonathan20044/frog/internal/entity"
	"github.com/Jonathan20044/frog/internal/repository"
)

func seedPaidOrder(t *testing.T, store *repository.MemoryStore, total float64, method entity.PaymentMethod, paidAt time.Time, lines ...entity.OrderLine) {
	t.Helper()
	_, err := store.CreateOrder(context.Background(), &entity.Order{
		TableID:       4,
		Lines:         lines,
		Status:        entity.OrderPaid,
		Total:         total,
		CreatedAt:     paidAt.Add(-30 * time.Minute),
		PaymentMethod: method,
		AreaName:      "Dining Room 1",
		PaidAt:        &paidAt,
	})
	require.NoError(t, err)
}

func TestTodayPaymentsExcludeOtherDays(t *testing.T) {
	store := repository.NewMemoryStore(nil)
	svc := NewReportService(store, store, nil)
	now := time.Now()

	seedPaidOrder(t, store, 180, entity.PayCash, now)
	seedPaidOrder(t, store, 95, entity.PayCard, now.AddDate(0, 0, -1))

	payments, err := svc.TodayPayments(context.Background())
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.InDelta(t, 180, payments[0].Total, 1e-9)
}

func TestTodayRefillsExcludeYesterday(t *testing.T) {
	store := repository.NewMemoryStore(nil)
	svc := NewReportService(store, store, nil)
	ctx := context.Background()
	now := time.Now()

	_, err := store.CreateRefill(ctx, &entity.RefillRecord{
		ID: "r1", StorageRoom: "Cold Beverages Storage", Waiter: "Ana", Date: now,
		Items: []entity.RefillLine{{StockItemID: 2, ItemName: "Tomato", Quantity: 3, Unit: "kg"}},
	})
	require.NoError(t, err)
	_, err = store.CreateRefill(ctx, &entity.RefillRecord{
		ID: "r2", StorageRoom: "Cold Beverages Storage", Waiter: "Ana", Date: now.AddDate(0, 0, -1),
		Items: []entity.RefillLine{{StockItemID: 23, ItemName: "Milk", Quantity: 5, Unit: "L"}},
	})
	require.NoError(t, err)

	refills, err := svc.TodayRefills(ctx)
	require.NoError(t, err)
	require.Len(t, refills, 1)
	assert.Equal(t, "r1", refills[0].ID)
}

func TestTodayReportIncludesZeroMethodsAndSummary(t *testing.T) {
	store := repository.NewMemoryStore(nil)
	svc := NewReportService(store, store, nil)
	ctx := context.Background()
	now := time.Now()

	seedPaidOrder(t, store, 180, entity.PayCash, now)
	seedPaidOrder(t, store, 95, entity.PayCash, now)
	seedPaidOrder(t, store, 260, entity.PayCard, now)

	_, err := store.CreateRefill(ctx, &entity.RefillRecord{
		ID: "r1", StorageRoom: "Cold Beverages Storage", Waiter: "Ana", Date: now,
		Items: []entity.RefillLine{
			{StockItemID: 2, ItemName: "Tomato", Quantity: 3, Unit: "kg"},
			{StockItemID: 23, ItemName: "Milk", Quantity: 5, Unit: "L"},
		},
	})
	require.NoError(t, err)
	_, err = store.CreateRefill(ctx, &entity.RefillRecord{
		ID: "r2", StorageRoom: "Cold Beverages Storage", Waiter: "Carlos", Date: now,
		Items: []entity.RefillLine{{StockItemID: 2, ItemName: "Tomato", Quantity: 2, Unit: "kg"}},
	})
	require.NoError(t, err)

	report, err := svc.Today(ctx)
	require.NoError(t, err)

	assert.InDelta(t, 535, report.TotalRevenue, 1e-9)
	require.Len(t, report.ByMethod, 3)
	byMethod := map[entity.PaymentMethod]entity.MethodBreakdown{}
	for _, b := range report.ByMethod {
		byMethod[b.Method] = b
	}
	assert.Equal(t, 2, byMethod[entity.PayCash].Count)
	assert.InDelta(t, 275, byMethod[entity.PayCash].Total, 1e-9)
	assert.Equal(t, 1, byMethod[entity.PayCard].Count)
	assert.Equal(t, 0, byMethod[entity.PayMobileTransfer].Count)
	assert.InDelta(t, 0, byMethod[entity.PayMobileTransfer].Total, 1e-9)

	// Both tomato refills collapse into one summary row.
	require.Len(t, report.RefillSummary, 2)
	assert.Equal(t, "Tomato", report.RefillSummary[0].ItemName)
	assert.InDelta(t, 5, report.RefillSummary[0].Quantity, 1e-9)
	assert.Equal(t, "Milk", report.RefillSummary[1].ItemName)
}

func TestTopItemsRankingAndTies(t *testing.T) {
	orders := []entity.Order{
		{Lines: []entity.OrderLine{
			{Name: "Pasta Alfredo", UnitPrice: 180, Quantity: 2},
			{Name: "Tiramisu", UnitPrice: 95, Quantity: 1},
		}},
		{Lines: []entity.OrderLine{
			{Name: "Grilled Steak", UnitPrice: 280, Quantity: 1},
			{Name: "Pasta Alfredo", UnitPrice: 180, Quantity: 1},
		}},
	}

	top := topItems(orders, 5)
	require.Len(t, top, 3)
	assert.Equal(t, "Pasta Alfredo", top[0].Name)
	assert.Equal(t, 3, top[0].Quantity)
	assert.InDelta(t, 540, top[0].Revenue, 1e-9)
	// Tiramisu and Grilled Steak tie at quantity 1; first-seen wins.
	assert.Equal(t, "Tiramisu", top[1].Name)
	assert.Equal(t, "Grilled Steak", top[2].Name)
}

func TestTopItemsCapsAtN(t *testing.T) {
	var lines []entity.OrderLine
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, name := range names {
		lines = append(lines, entity.OrderLine{Name: name, UnitPrice: 10, Quantity: len(names) - i})
	}

	top := topItems([]entity.Order{{Lines: lines}}, 5)
	require.Len(t, top, 5)
	assert.Equal(t, "A", top[0].Name)
	assert.Equal(t, "E", top[4].Name)
}

func TestDashboardWindowSelection(t *testing.T) {
	store := repository.NewMemoryStore(nil)
	svc := NewReportService(store, store, nil)
	ctx := context.Background()
	now := time.Now()

	seedPaidOrder(t, store, 100, entity.PayCash, now)
	seedPaidOrder(t, store, 200, entity.PayCash, now.AddDate(0, 0, -5))
	seedPaidOrder(t, store, 400, entity.PayCash, now.AddDate(0, 0, -20))

	day, err := svc.Dashboard(ctx, now, entity.PeriodDay)
	require.NoError(t, err)
	assert.InDelta(t, 100, day.TotalRevenue, 1e-9)
	assert.Equal(t, 1, day.OrderCount)

	week, err := svc.Dashboard(ctx, now, entity.PeriodWeek)
	require.NoError(t, err)
	assert.InDelta(t, 300, week.TotalRevenue, 1e-9)

	month, err := svc.Dashboard(ctx, now, entity.PeriodMonth)
	require.NoError(t, err)
	assert.InDelta(t, 700, month.TotalRevenue, 1e-9)
}

func TestDashboardNetProfit(t *testing.T) {
	store := repository.NewMemoryStore(nil)
	roster := []entity.Employee{
		{ID: "1", Name: "Test Cook", RegularHours: 8, OvertimeHours: 2, HourlyRate: 100},
	}
	svc := NewReportService(store, store, roster)
	ctx := context.Background()
	now := time.Now()

	seedPaidOrder(t, store, 5000, entity.PayCard, now)
	_, err := store.CreateRefill(ctx, &entity.RefillRecord{
		ID: "r1", StorageRoom: "Cold Beverages Storage", Waiter: "Ana", Date: now,
		Items: []entity.RefillLine{{StockItemID: 2, ItemName: "Tomato", Quantity: 1, Unit: "kg"}},
	})
	require.NoError(t, err)

	report, err := svc.Dashboard(ctx, now, entity.PeriodDay)
	require.NoError(t, err)

	// Labor: 8*100 + 2*100*1.5 = 1100. Refill: 1 * 2500.
	assert.InDelta(t, 1100, report.LaborCost, 1e-9)
	assert.InDelta(t, 2500, report.RefillCost, 1e-9)
	assert.InDelta(t, 5000-1100-2500, report.NetProfit, 1e-9)
	require.Len(t, report.Payroll, 1)
	assert.InDelta(t, 1100, report.Payroll[0].TotalPay, 1e-9)
}
