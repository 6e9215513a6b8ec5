// Package catalog holds the static restaurant data the ledger consumes as
// read-only input: the sellable menu with recipes, the area/table topology,
// the storage rooms, and the initial inventory seed.
package catalog

import "github.com/Jonathan20044/frog/internal/entity"

// MenuItems is the immutable list of sellable items. Recipe quantities are
// the stock each single unit consumes.
var MenuItems = []entity.MenuItem{
	// Starters
	{ID: 1, Name: "Caesar Salad", Description: "Romaine lettuce, croutons and dressing", Price: 85, Category: entity.MenuStarter, Recipe: []entity.RecipeEntry{
		{StockItemID: 1, Quantity: 0.15}, // Lettuce
		{StockItemID: 2, Quantity: 0.05}, // Tomato
		{StockItemID: 8, Quantity: 0.03}, // Cheese
	}},
	{ID: 2, Name: "Mushroom Soup", Description: "Creamy soup with fresh mushrooms", Price: 75, Category: entity.MenuStarter, Recipe: []entity.RecipeEntry{
		{StockItemID: 14, Quantity: 0.2},
		{StockItemID: 15, Quantity: 0.05},
		{StockItemID: 23, Quantity: 0.1},
	}},
	{ID: 3, Name: "Bruschetta", Description: "Toasted bread with tomato and basil", Price: 65, Category: entity.MenuStarter, Recipe: []entity.RecipeEntry{
		{StockItemID: 2, Quantity: 0.1},
		{StockItemID: 10, Quantity: 0.01},
	}},

	// Mains
	{ID: 4, Name: "Grilled Steak", Description: "Beef fillet with vegetables", Price: 280, Category: entity.MenuMain, Recipe: []entity.RecipeEntry{
		{StockItemID: 3, Quantity: 0.3},
		{StockItemID: 2, Quantity: 0.08},
		{StockItemID: 15, Quantity: 0.05},
	}},
	{ID: 5, Name: "Pasta Alfredo", Description: "Fettuccine in cream sauce", Price: 180, Category: entity.MenuMain, Recipe: []entity.RecipeEntry{
		{StockItemID: 6, Quantity: 0.15},
		{StockItemID: 8, Quantity: 0.05},
		{StockItemID: 23, Quantity: 0.1},
	}},
	{ID: 6, Name: "Baked Salmon", Description: "Salmon with rice and lemon", Price: 260, Category: entity.MenuMain, Recipe: []entity.RecipeEntry{
		{StockItemID: 5, Quantity: 0.25},
		{StockItemID: 7, Quantity: 0.1},
		{StockItemID: 13, Quantity: 1},
	}},
	{ID: 7, Name: "Pizza Margherita", Description: "Tomato, mozzarella and basil", Price: 160, Category: entity.MenuMain, Recipe: []entity.RecipeEntry{
		{StockItemID: 2, Quantity: 0.15},
		{StockItemID: 8, Quantity: 0.2},
		{StockItemID: 10, Quantity: 0.02},
	}},

	// Desserts
	{ID: 8, Name: "Tiramisu", Description: "Classic Italian dessert", Price: 95, Category: entity.MenuDessert, Recipe: []entity.RecipeEntry{
		{StockItemID: 8, Quantity: 0.08},
		{StockItemID: 9, Quantity: 2},
		{StockItemID: 21, Quantity: 0.02},
	}},
	{ID: 9, Name: "Cheesecake", Description: "Cheese cake with red berries", Price: 85, Category: entity.MenuDessert, Recipe: []entity.RecipeEntry{
		{StockItemID: 8, Quantity: 0.15},
		{StockItemID: 9, Quantity: 3},
	}},
	{ID: 10, Name: "Ice Cream", Description: "Three scoops of your choice", Price: 60, Category: entity.MenuDessert, Recipe: []entity.RecipeEntry{
		{StockItemID: 23, Quantity: 0.15},
	}},

	// Beverages
	{ID: 11, Name: "Fresh Lemonade", Description: "Lemonade made daily", Price: 45, Category: entity.MenuBeverage, Recipe: []entity.RecipeEntry{
		{StockItemID: 13, Quantity: 3},
	}},
	{ID: 12, Name: "Soft Drink", Description: "Cola, lemon-lime or orange", Price: 35, Category: entity.MenuBeverage, Recipe: []entity.RecipeEntry{
		{StockItemID: 16, Quantity: 1},
	}},
	{ID: 13, Name: "Mineral Water", Description: "Bottled water", Price: 25, Category: entity.MenuBeverage, Recipe: []entity.RecipeEntry{
		{StockItemID: 19, Quantity: 1},
	}},
	{ID: 14, Name: "Americano", Description: "Freshly brewed coffee", Price: 40, Category: entity.MenuBeverage, Recipe: []entity.RecipeEntry{
		{StockItemID: 21, Quantity: 0.015},
	}},
}

// Areas is the table topology. Table ids are unique across areas.
var Areas = []entity.Area{
	{ID: "salon1", Name: "Dining Room 1", Tables: []entity.Table{
		{ID: 1, Capacity: 4}, {ID: 2, Capacity: 4}, {ID: 3, Capacity: 6},
		{ID: 4, Capacity: 2}, {ID: 5, Capacity: 8}, {ID: 6, Capacity: 4},
	}},
	{ID: "salon2", Name: "Dining Room 2", Tables: []entity.Table{
		{ID: 7, Capacity: 4}, {ID: 8, Capacity: 4}, {ID: 9, Capacity: 6},
		{ID: 10, Capacity: 2}, {ID: 11, Capacity: 8}, {ID: 12, Capacity: 4},
	}},
	{ID: "vip", Name: "VIP", Tables: []entity.Table{
		{ID: 13, Capacity: 6}, {ID: 14, Capacity: 8}, {ID: 15, Capacity: 10}, {ID: 16, Capacity: 6},
	}},
	{ID: "patio", Name: "Patio", Tables: []entity.Table{
		{ID: 17, Capacity: 4}, {ID: 18, Capacity: 6}, {ID: 19, Capacity: 4}, {ID: 20, Capacity: 8},
	}},
	{ID: "bar", Name: "Bar", Tables: []entity.Table{
		{ID: 21, Capacity: 2}, {ID: 22, Capacity: 2}, {ID: 23, Capacity: 2},
		{ID: 24, Capacity: 4}, {ID: 25, Capacity: 4}, {ID: 26, Capacity: 6},
	}},
}

// StorageRooms are the refill sources waiters can log against.
var StorageRooms = []string{
	"Cold Beverages Storage",
	"Beer & Wine Storage",
}

// InitialStock seeds the inventory for a fresh store.
var InitialStock = []entity.StockItem{
	{ID: 1, Name: "Lettuce", Category: entity.StockIngredient, Quantity: 15, Unit: "kg", MinStock: 5},
	{ID: 2, Name: "Tomato", Category: entity.StockIngredient, Quantity: 20, Unit: "kg", MinStock: 8},
	{ID: 3, Name: "Beef", Category: entity.StockIngredient, Quantity: 25, Unit: "kg", MinStock: 10},
	{ID: 4, Name: "Chicken", Category: entity.StockIngredient, Quantity: 18, Unit: "kg", MinStock: 10},
	{ID: 5, Name: "Salmon", Category: entity.StockIngredient, Quantity: 8, Unit: "kg", MinStock: 5},
	{ID: 6, Name: "Pasta", Category: entity.StockIngredient, Quantity: 12, Unit: "kg", MinStock: 5},
	{ID: 7, Name: "Rice", Category: entity.StockIngredient, Quantity: 30, Unit: "kg", MinStock: 10},
	{ID: 8, Name: "Cheese", Category: entity.StockIngredient, Quantity: 10, Unit: "kg", MinStock: 5},
	{ID: 9, Name: "Eggs", Category: entity.StockIngredient, Quantity: 200, Unit: "pcs", MinStock: 100},
	{ID: 10, Name: "Olive Oil", Category: entity.StockIngredient, Quantity: 8, Unit: "L", MinStock: 3},
	{ID: 11, Name: "Salt", Category: entity.StockIngredient, Quantity: 5, Unit: "kg", MinStock: 2},
	{ID: 12, Name: "Pepper", Category: entity.StockIngredient, Quantity: 3, Unit: "kg", MinStock: 1},
	{ID: 13, Name: "Lemons", Category: entity.StockIngredient, Quantity: 50, Unit: "pcs", MinStock: 20},
	{ID: 14, Name: "Mushrooms", Category: entity.StockIngredient, Quantity: 6, Unit: "kg", MinStock: 3},
	{ID: 15, Name: "Onion", Category: entity.StockIngredient, Quantity: 12, Unit: "kg", MinStock: 5},
	{ID: 16, Name: "Cola", Category: entity.StockBeverage, Quantity: 48, Unit: "bottles", MinStock: 24},
	{ID: 17, Name: "Lemon-Lime Soda", Category: entity.StockBeverage, Quantity: 36, Unit: "bottles", MinStock: 24},
	{ID: 18, Name: "Orange Soda", Category: entity.StockBeverage, Quantity: 24, Unit: "bottles", MinStock: 24},
	{ID: 19, Name: "Mineral Water", Category: entity.StockBeverage, Quantity: 72, Unit: "bottles", MinStock: 48},
	{ID: 20, Name: "Orange Juice", Category: entity.StockBeverage, Quantity: 15, Unit: "L", MinStock: 10},
	{ID: 21, Name: "Coffee Beans", Category: entity.StockBeverage, Quantity: 8, Unit: "kg", MinStock: 3},
	{ID: 22, Name: "Tea", Category: entity.StockBeverage, Quantity: 100, Unit: "bags", MinStock: 50},
	{ID: 23, Name: "Milk", Category: entity.StockBeverage, Quantity: 20, Unit: "L", MinStock: 10},
	{ID: 24, Name: "Plates", Category: entity.StockUtensil, Quantity: 150, Unit: "pcs", MinStock: 100},
	{ID: 25, Name: "Glasses", Category: entity.StockUtensil, Quantity: 200, Unit: "pcs", MinStock: 150},
	{ID: 26, Name: "Cutlery", Category: entity.StockUtensil, Quantity: 180, Unit: "sets", MinStock: 120},
	{ID: 27, Name: "Napkins", Category: entity.StockUtensil, Quantity: 500, Unit: "pcs", MinStock: 200},
}

// Employees is the fixed payroll roster used by the dashboard report.
var Employees = []entity.Employee{
	{ID: "1", Name: "Maria Gonzalez", RegularHours: 8, OvertimeHours: 2, HourlyRate: 3500},
	{ID: "2", Name: "Carlos Ramirez", RegularHours: 8, OvertimeHours: 1, HourlyRate: 3200},
	{ID: "3", Name: "Ana Lopez", RegularHours: 8, OvertimeHours: 0, HourlyRate: 3000},
	{ID: "4", Name: "Jose Mora", RegularHours: 6, OvertimeHours: 0, HourlyRate: 2800},
}

// RefillUnitCost is the estimated purchase cost per refilled unit used by
// the cost report.
const RefillUnitCost = 2500

// MenuItemByID looks up a menu item.
func MenuItemByID(id int) (entity.MenuItem, bool) {
	for _, m := range MenuItems {
		if m.ID == id {
			return m, true
		}
	}
	return entity.MenuItem{}, false
}

// AreaForTable returns the area containing the given table.
func AreaForTable(tableID int) (entity.Area, bool) {
	for _, a := range Areas {
		for _, t := range a.Tables {
			if t.ID == tableID {
				return a, true
			}
		}
	}
	return entity.Area{}, false
}

// TableIDs returns every table id across all areas.
func TableIDs() []int {
	var ids []int
	for _, a := range Areas {
		for _, t := range a.Tables {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
