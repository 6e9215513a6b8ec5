package api

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Jonathan20044/frog/internal/entity"
	"github.com/Jonathan20044/frog/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Today returns the cash-closure view of the current day --> GET /reports/today
func (h *ReportHandler) Today(c echo.Context) error {
	report, err := h.reportService.Today(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, report)
}

// Dashboard returns windowed metrics --> GET /reports/dashboard?date=YYYY-MM-DD&period=day|week|biweekly|month
func (h *ReportHandler) Dashboard(c echo.Context) error {
	base := time.Now()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return c.JSON(400, map[string]string{"error": "Invalid date, expected YYYY-MM-DD"})
		}
		base = parsed
	}

	period := entity.ReportPeriod(c.QueryParam("period"))
	switch period {
	case "":
		period = entity.PeriodDay
	case entity.PeriodDay, entity.PeriodWeek, entity.PeriodBiweekly, entity.PeriodMonth:
	default:
		return c.JSON(400, map[string]string{"error": "Invalid period"})
	}

	report, err := h.reportService.Dashboard(c.Request().Context(), base, period)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, report)
}
