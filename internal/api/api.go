package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/Jonathan20044/frog/internal/entity"
)

// writeError maps the ledger's error taxonomy onto HTTP statuses. Shortfall
// rejections carry the full shortfall list so the client can display it.
func writeError(c echo.Context, err error) error {
	var insufficient *entity.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.JSON(409, map[string]interface{}{
			"error":      insufficient.Error(),
			"shortfalls": insufficient.Shortfalls,
		})
	}
	switch {
	case errors.Is(err, entity.ErrUnknownTable),
		errors.Is(err, entity.ErrMenuItemNotFound),
		errors.Is(err, entity.ErrStockItemNotFound),
		errors.Is(err, entity.ErrOrderNotFound),
		errors.Is(err, entity.ErrNoOpenOrders),
		errors.Is(err, entity.ErrNoPreparingOrders):
		return c.JSON(404, map[string]string{"error": err.Error()})
	case errors.Is(err, entity.ErrEmptyOrder),
		errors.Is(err, entity.ErrInvalidPayment),
		errors.Is(err, entity.ErrInvalidInput):
		return c.JSON(400, map[string]string{"error": err.Error()})
	case errors.Is(err, entity.ErrDuplicateRequest):
		return c.JSON(409, map[string]string{"error": err.Error()})
	}
	return c.JSON(500, map[string]string{"error": err.Error()})
}
