package entity

import "time"

type OrderStatus string

const (
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderPaid      OrderStatus = "paid"
)

type PaymentMethod string

const (
	PayCash           PaymentMethod = "cash"
	PayCard           PaymentMethod = "card"
	PayMobileTransfer PaymentMethod = "mobile-transfer"
)

// PaymentMethods lists every accepted method; reports include all of them
// even when a method had no transactions.
var PaymentMethods = []PaymentMethod{PayCash, PayCard, PayMobileTransfer}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PayCash, PayCard, PayMobileTransfer:
		return true
	}
	return false
}

// OrderLine is one menu item inside an order. Name and UnitPrice are
// snapshotted from the catalog at confirm time, so later catalog changes
// never affect historical orders.
type OrderLine struct {
	MenuItemID int               `json:"menu_item_id"`
	Name       string            `json:"name"`
	UnitPrice  float64           `json:"unit_price"`
	Quantity   int               `json:"quantity"`
	Note       string            `json:"note,omitempty"`
	Options    map[string]string `json:"options,omitempty"`
}

type Order struct {
	ID            int           `json:"id"`
	TableID       int           `json:"table_id"`
	Lines         []OrderLine   `json:"lines"`
	Status        OrderStatus   `json:"status"`
	Total         float64       `json:"total"`
	CreatedAt     time.Time     `json:"created_at"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	AreaName      string        `json:"area_name,omitempty"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
}

// TableStatus is derived from a table's non-paid orders, never stored.
type TableStatus string

const (
	TableAvailable       TableStatus = "available"
	TableOccupied        TableStatus = "occupied"
	TableAwaitingPayment TableStatus = "awaiting-payment"
)

// DeriveTableStatus computes the effective status of a table from its open
// (non-paid) orders: available when there are none, occupied while any order
// is still preparing, awaiting-payment once every remaining order is ready.
func DeriveTableStatus(open []Order) TableStatus {
	if len(open) == 0 {
		return TableAvailable
	}
	for _, o := range open {
		if o.Status == OrderPreparing {
			return TableOccupied
		}
	}
	return TableAwaitingPayment
}
