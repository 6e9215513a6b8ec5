package entity

// Employee is a fixed-roster payroll row used by the dashboard report.
// Overtime hours are paid at 150% of the hourly rate.
type Employee struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	HourlyRate    float64 `json:"hourly_rate"`
}

// Pay returns the employee's total pay for the roster period.
func (e Employee) Pay() float64 {
	return e.RegularHours*e.HourlyRate + e.OvertimeHours*e.HourlyRate*1.5
}

type ReportPeriod string

const (
	PeriodDay      ReportPeriod = "day"
	PeriodWeek     ReportPeriod = "week"
	PeriodBiweekly ReportPeriod = "biweekly"
	PeriodMonth    ReportPeriod = "month"
)

// Days returns the window length in calendar days ending at the base date.
func (p ReportPeriod) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodBiweekly:
		return 15
	case PeriodMonth:
		return 30
	default:
		return 1
	}
}

// MethodBreakdown is the revenue of one payment method over a window.
type MethodBreakdown struct {
	Method PaymentMethod `json:"method"`
	Count  int           `json:"count"`
	Total  float64       `json:"total"`
}

// ItemSales aggregates one menu item's sales over a window.
type ItemSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type EmployeePay struct {
	Employee
	TotalPay float64 `json:"total_pay"`
}

// DashboardReport covers a selectable date window.
type DashboardReport struct {
	Period       ReportPeriod      `json:"period"`
	TotalRevenue float64           `json:"total_revenue"`
	OrderCount   int               `json:"order_count"`
	TopItems     []ItemSales       `json:"top_items"`
	ByMethod     []MethodBreakdown `json:"by_method"`
	Payroll      []EmployeePay     `json:"payroll"`
	LaborCost    float64           `json:"labor_cost"`
	RefillCost   float64           `json:"refill_cost"`
	NetProfit    float64           `json:"net_profit"`
}

// RefillSummary groups today's refilled quantities by item name.
type RefillSummary struct {
	ItemName string  `json:"item_name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// TodayReport is the cash-closure view of the current calendar day.
type TodayReport struct {
	Payments      []Order           `json:"payments"`
	ByMethod      []MethodBreakdown `json:"by_method"`
	Refills       []RefillRecord    `json:"refills"`
	RefillSummary []RefillSummary   `json:"refill_summary"`
	TotalRevenue  float64           `json:"total_revenue"`
}
