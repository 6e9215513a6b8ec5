package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Jonathan20044/frog/internal/catalog"
	"github.com/Jonathan20044/frog/internal/entity"
	"github.com/Jonathan20044/frog/internal/service"
)

type InventoryHandler struct {
	stockService *service.StockService
}

func NewInventoryHandler(stockService *service.StockService) *InventoryHandler {
	return &InventoryHandler{stockService: stockService}
}

// ListStock returns the full inventory --> GET /inventory
func (h *InventoryHandler) ListStock(c echo.Context) error {
	items, err := h.stockService.ListStock(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, items)
}

// CreateStockItem adds an inventory row --> POST /inventory
func (h *InventoryHandler) CreateStockItem(c echo.Context) error {
	item := entity.StockItem{}
	if err := c.Bind(&item); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	created, err := h.stockService.AddStockItem(c.Request().Context(), &item)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(201, created)
}

// UpdateQuantity sets an item's absolute quantity --> PUT /inventory/:id/quantity
func (h *InventoryHandler) UpdateQuantity(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}
	req := struct {
		Quantity float64 `json:"quantity"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	item, err := h.stockService.AdjustStockQuantity(c.Request().Context(), id, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, item)
}

// DeleteStockItem removes an item from the active set --> DELETE /inventory/:id
func (h *InventoryHandler) DeleteStockItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.stockService.RemoveStockItem(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(204)
}

// LowStock lists items at or below their minimum threshold --> GET /inventory/low-stock
func (h *InventoryHandler) LowStock(c echo.Context) error {
	items, err := h.stockService.LowStockItems(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, items)
}

// CreateRefill logs a storage refill --> POST /refills
func (h *InventoryHandler) CreateRefill(c echo.Context) error {
	req := struct {
		StorageRoom string                `json:"storage_room"`
		Waiter      string                `json:"waiter"`
		Items       []service.RefillInput `json:"items"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	record, err := h.stockService.RegisterRefill(c.Request().Context(), req.StorageRoom, req.Waiter, req.Items)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(201, record)
}

// StorageRooms lists the refill sources --> GET /storage/rooms
func (h *InventoryHandler) StorageRooms(c echo.Context) error {
	return c.JSON(200, catalog.StorageRooms)
}
