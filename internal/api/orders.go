package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Jonathan20044/frog/internal/catalog"
	"github.com/Jonathan20044/frog/internal/entity"
	"github.com/Jonathan20044/frog/internal/service"
)

type OrderHandler struct {
	ledger *service.LedgerService
}

func NewOrderHandler(ledger *service.LedgerService) *OrderHandler {
	return &OrderHandler{ledger: ledger}
}

// CreateOrder confirms a cart for a table --> POST /orders
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	req := struct {
		TableID int                `json:"table_id"`
		Lines   []service.CartLine `json:"lines"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	idempotentKey := c.Request().Header.Get("Idempotent-Key")

	order, err := h.ledger.PlaceOrder(ctx, req.TableID, req.Lines, idempotentKey)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(201, order)
}

// GetOrder returns one order --> GET /orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid order ID"})
	}

	order, err := h.ledger.Order(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, order)
}

// MarkReady moves a table's preparing orders to ready --> PATCH /orders/:tableId/ready
func (h *OrderHandler) MarkReady(c echo.Context) error {
	tableID, err := strconv.Atoi(c.Param("tableId"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid table ID"})
	}

	orders, err := h.ledger.MarkTableReady(c.Request().Context(), tableID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, orders)
}

// Pay settles all of a table's unpaid orders --> POST /payments
func (h *OrderHandler) Pay(c echo.Context) error {
	req := struct {
		TableID int                  `json:"table_id"`
		Method  entity.PaymentMethod `json:"method"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	orders, err := h.ledger.PayTable(c.Request().Context(), req.TableID, req.Method)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, orders)
}

// KitchenQueue lists orders currently preparing --> GET /kitchen/orders
func (h *OrderHandler) KitchenQueue(c echo.Context) error {
	orders, err := h.ledger.KitchenQueue(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, orders)
}

// ListTables returns the derived status of every table --> GET /tables
func (h *OrderHandler) ListTables(c echo.Context) error {
	overviews, err := h.ledger.TableOverviews(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, overviews)
}

// GetTable returns one table's derived status and open orders --> GET /tables/:id
func (h *OrderHandler) GetTable(c echo.Context) error {
	tableID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid table ID"})
	}

	status, open, err := h.ledger.TableStatus(c.Request().Context(), tableID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, map[string]interface{}{
		"table_id": tableID,
		"status":   status,
		"orders":   open,
	})
}

// GetMenu returns the sellable catalog --> GET /menu
func (h *OrderHandler) GetMenu(c echo.Context) error {
	return c.JSON(200, catalog.MenuItems)
}

// GetAreas returns the area/table topology --> GET /areas
func (h *OrderHandler) GetAreas(c echo.Context) error {
	return c.JSON(200, catalog.Areas)
}
