package service

import (
	"context"
	"sort"
	"time"

	"github.com/Jonathan20044/frog/internal/catalog"
	"github.com/Jonathan20044/frog/internal/entity"
	"github.com/Jonathan20044/frog/internal/repository"
)

// ReportService computes the cash-closure and dashboard aggregations from
// paid orders and refill records.
type ReportService struct {
	orderRepo  repository.OrderRepository
	refillRepo repository.RefillRepository
	employees  []entity.Employee
}

// NewReportService creates a new instance of ReportService.
func NewReportService(orderRepo repository.OrderRepository, refillRepo repository.RefillRepository, employees []entity.Employee) *ReportService {
	return &ReportService{orderRepo: orderRepo, refillRepo: refillRepo, employees: employees}
}

// dayBounds returns the local midnight-to-midnight bounds of t's day.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// windowBounds returns the bounds of a period-day window ending at the base
// date's day.
func windowBounds(base time.Time, period entity.ReportPeriod) (time.Time, time.Time) {
	_, end := dayBounds(base)
	start, _ := dayBounds(base.AddDate(0, 0, -(period.Days() - 1)))
	return start, end
}

// TodayPayments returns every order paid during the current local calendar
// day.
func (s *ReportService) TodayPayments(ctx context.Context) ([]entity.Order, error) {
	start, end := dayBounds(time.Now())
	return s.orderRepo.GetPaidOrdersBetween(ctx, start, end)
}

// TodayRefills returns every refill logged during the current local calendar
// day.
func (s *ReportService) TodayRefills(ctx context.Context) ([]entity.RefillRecord, error) {
	start, end := dayBounds(time.Now())
	return s.refillRepo.GetRefillsBetween(ctx, start, end)
}

// Today assembles the cash-closure report: today's payments split per
// method (zero methods included) and today's refills summarized per item.
func (s *ReportService) Today(ctx context.Context) (*entity.TodayReport, error) {
	payments, err := s.TodayPayments(ctx)
	if err != nil {
		return nil, err
	}
	refills, err := s.TodayRefills(ctx)
	if err != nil {
		return nil, err
	}

	report := &entity.TodayReport{
		Payments: payments,
		ByMethod: groupByMethod(payments),
		Refills:  refills,
	}
	for _, p := range payments {
		report.TotalRevenue += p.Total
	}

	var names []string
	grouped := make(map[string]*entity.RefillSummary)
	for _, refill := range refills {
		for _, line := range refill.Items {
			sum, ok := grouped[line.ItemName]
			if !ok {
				sum = &entity.RefillSummary{ItemName: line.ItemName, Unit: line.Unit}
				grouped[line.ItemName] = sum
				names = append(names, line.ItemName)
			}
			sum.Quantity += line.Quantity
		}
	}
	for _, name := range names {
		report.RefillSummary = append(report.RefillSummary, *grouped[name])
	}
	return report, nil
}

// Dashboard aggregates paid orders over a window ending at the base date:
// revenue, top-5 sold items by quantity, payment-method breakdown, the fixed
// payroll roster and today's refill costs at the estimated unit cost.
func (s *ReportService) Dashboard(ctx context.Context, base time.Time, period entity.ReportPeriod) (*entity.DashboardReport, error) {
	start, end := windowBounds(base, period)
	paid, err := s.orderRepo.GetPaidOrdersBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report := &entity.DashboardReport{
		Period:     period,
		OrderCount: len(paid),
		ByMethod:   groupByMethod(paid),
		TopItems:   topItems(paid, 5),
	}
	for _, order := range paid {
		report.TotalRevenue += order.Total
	}

	for _, emp := range s.employees {
		pay := emp.Pay()
		report.Payroll = append(report.Payroll, entity.EmployeePay{Employee: emp, TotalPay: pay})
		report.LaborCost += pay
	}

	// Refill cost is a today-only estimate at a fixed unit cost, regardless
	// of the selected period.
	refills, err := s.TodayRefills(ctx)
	if err != nil {
		return nil, err
	}
	for _, refill := range refills {
		for _, line := range refill.Items {
			report.RefillCost += line.Quantity * catalog.RefillUnitCost
		}
	}

	report.NetProfit = report.TotalRevenue - report.LaborCost - report.RefillCost
	return report, nil
}

// groupByMethod sums order totals per payment method. Every accepted method
// is present, zero-valued when unused; an order without a method counts as
// cash.
func groupByMethod(orders []entity.Order) []entity.MethodBreakdown {
	byMethod := make(map[entity.PaymentMethod]*entity.MethodBreakdown, len(entity.PaymentMethods))
	out := make([]entity.MethodBreakdown, len(entity.PaymentMethods))
	for i, m := range entity.PaymentMethods {
		out[i] = entity.MethodBreakdown{Method: m}
		byMethod[m] = &out[i]
	}
	for _, order := range orders {
		method := order.PaymentMethod
		if method == "" {
			method = entity.PayCash
		}
		if b, ok := byMethod[method]; ok {
			b.Count++
			b.Total += order.Total
		}
	}
	return out
}

// topItems flattens paid orders' lines, groups by item name and returns the
// n best sellers by quantity. Ties keep first-seen order.
func topItems(orders []entity.Order, n int) []entity.ItemSales {
	var names []string
	grouped := make(map[string]*entity.ItemSales)
	for _, order := range orders {
		for _, line := range order.Lines {
			sales, ok := grouped[line.Name]
			if !ok {
				sales = &entity.ItemSales{Name: line.Name}
				grouped[line.Name] = sales
				names = append(names, line.Name)
			}
			sales.Quantity += line.Quantity
			sales.Revenue += line.UnitPrice * float64(line.Quantity)
		}
	}

	items := make([]entity.ItemSales, 0, len(names))
	for _, name := range names {
		items = append(items, *grouped[name])
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Quantity > items[j].Quantity })
	if len(items) > n {
		items = items[:n]
	}
	return items
}
