package entity

type StockCategory string

const (
	StockIngredient StockCategory = "ingredient"
	StockBeverage   StockCategory = "beverage"
	StockUtensil    StockCategory = "utensil"
)

func (c StockCategory) Valid() bool {
	switch c {
	case StockIngredient, StockBeverage, StockUtensil:
		return true
	}
	return false
}

// StockItem is one inventory row. Quantity is only mutated by manual
// adjustment, decrement on order commit, or increment on refill registration.
type StockItem struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Category StockCategory `json:"category"`
	Quantity float64       `json:"quantity"`
	Unit     string        `json:"unit"`
	MinStock float64       `json:"min_stock"`
}

// LowStock reports whether the item is at or below its minimum threshold.
func (s StockItem) LowStock() bool {
	return s.Quantity <= s.MinStock
}

// Shortfall describes one stock item whose cumulative requirement for a
// proposed order exceeds the quantity on hand.
type Shortfall struct {
	StockItemID int     `json:"stock_item_id"`
	Name        string  `json:"name"`
	Required    float64 `json:"required"`
	Available   float64 `json:"available"`
	Unit        string  `json:"unit"`
}
