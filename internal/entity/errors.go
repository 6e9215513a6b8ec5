package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyOrder        = errors.New("order has no lines")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnknownTable      = errors.New("table not found")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrStockItemNotFound = errors.New("stock item not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrNoOpenOrders      = errors.New("table has no unpaid orders")
	ErrNoPreparingOrders = errors.New("table has no preparing orders")
	ErrInvalidPayment    = errors.New("invalid payment method")
	ErrDuplicateRequest  = errors.New("idempotent key already used")
)

// InsufficientStockError rejects an order whose cumulative requirements
// exceed the quantity on hand for one or more stock items.
type InsufficientStockError struct {
	Shortfalls []Shortfall
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		parts = append(parts, fmt.Sprintf("%s (needs %.2f %s, available %.2f %s)",
			s.Name, s.Required, s.Unit, s.Available, s.Unit))
	}
	return "insufficient stock: " + strings.Join(parts, ", ")
}
