package entity

type MenuCategory string

const (
	MenuStarter  MenuCategory = "starter"
	MenuMain     MenuCategory = "main"
	MenuDessert  MenuCategory = "dessert"
	MenuBeverage MenuCategory = "beverage"
)

// RecipeEntry is the stock quantity one unit of a menu item consumes.
type RecipeEntry struct {
	StockItemID int     `json:"stock_item_id"`
	Quantity    float64 `json:"quantity"`
}

// MenuItem is catalog-supplied and immutable. An item with an empty recipe
// consumes no stock.
type MenuItem struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Price       float64       `json:"price"`
	Category    MenuCategory  `json:"category"`
	Recipe      []RecipeEntry `json:"recipe,omitempty"`
}

type Table struct {
	ID       int `json:"id"`
	Capacity int `json:"capacity"`
}

type Area struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Tables []Table `json:"tables"`
}
