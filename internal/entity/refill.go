package entity

import "time"

// RefillLine snapshots the refilled item's name and unit at refill time.
type RefillLine struct {
	StockItemID int     `json:"stock_item_id"`
	ItemName    string  `json:"item_name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
}

// RefillRecord is immutable once created and feeds the daily cost report.
type RefillRecord struct {
	ID          string       `json:"id"`
	StorageRoom string       `json:"storage_room"`
	Items       []RefillLine `json:"items"`
	Waiter      string       `json:"waiter"`
	Date        time.Time    `json:"date"`
}
