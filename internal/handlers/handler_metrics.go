package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/investia/investia_backend/internal/core/domain"
	portssvc "github.com/investia/investia_backend/internal/core/ports/services"
	"github.com/investia/investia_backend/internal/dto"
	"github.com/investia/investia_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// metricsHandler handles HTTP requests for the derived financial metrics.
type metricsHandler struct {
	metricsService portssvc.MetricsSvcFacade
}

func newMetricsHandler(ms portssvc.MetricsSvcFacade) *metricsHandler {
	return &metricsHandler{metricsService: ms}
}

// registerMetricsRoutes registers routes for the derived metrics views.
func registerMetricsRoutes(rg *gin.RouterGroup, metricsService portssvc.MetricsSvcFacade) {
	h := newMetricsHandler(metricsService)

	metricsGroup := rg.Group("/metrics")
	{
		metricsGroup.GET("/budget", h.getBudgetMetrics)
		metricsGroup.GET("/working-capital", h.getWorkingCapitalMetrics)
		metricsGroup.GET("/dashboard", h.getDashboard)
		metricsGroup.GET("/cash-flow", h.getCashFlow)
		metricsGroup.GET("/cash-position", h.getCashPosition)
	}
}

// getBudgetMetrics godoc
// @Summary Get budget metrics for a year
// @Description Aggregates the year's budget entries by type and derives the free float. An empty year yields all-zero metrics.
// @Tags metrics
// @Produce json
// @Param yearLabel query string false "Budget year label, e.g. 2024/2025"
// @Success 200 {object} dto.BudgetMetricsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /metrics/budget [get]
func (h *metricsHandler) getBudgetMetrics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	yearLabel := c.Query("yearLabel")

	metrics, err := h.metricsService.ComputeBudgetMetrics(c.Request.Context(), yearLabel)
	if err != nil {
		logger.Error("Failed to compute budget metrics", slog.String("year_label", yearLabel), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute budget metrics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetMetricsResponse(yearLabel, metrics))
}

// getWorkingCapitalMetrics godoc
// @Summary Get working-capital metrics for a year
// @Description Aggregates AR and AP rows for the year plus inventory across all years, and derives NWC = AR + Inventory - AP.
// @Tags metrics
// @Produce json
// @Param yearLabel query string true "Budget year label"
// @Success 200 {object} dto.WorkingCapitalMetricsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /metrics/working-capital [get]
func (h *metricsHandler) getWorkingCapitalMetrics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	yearLabel := c.Query("yearLabel")
	if yearLabel == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "yearLabel query parameter required"})
		return
	}

	metrics, err := h.metricsService.ComputeWorkingCapitalMetrics(c.Request.Context(), yearLabel)
	if err != nil {
		logger.Error("Failed to compute working capital metrics", slog.String("year_label", yearLabel), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute working capital metrics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkingCapitalMetricsResponse(yearLabel, metrics))
}

// getDashboard godoc
// @Summary Get the budget-vs-actual dashboard
// @Description Returns the year's expense budget entries filtered by period, joined with per-category net spending.
// @Tags metrics
// @Produce json
// @Param yearLabel query string true "Budget year label"
// @Param period query string false "Period filter: Everything, Sem1, Sem2 or YearExpenses" default(Everything)
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /metrics/dashboard [get]
func (h *metricsHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	yearLabel := c.Query("yearLabel")
	if yearLabel == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "yearLabel query parameter required"})
		return
	}

	period := domain.PeriodFilter(c.DefaultQuery("period", string(domain.PeriodEverything)))
	if !period.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid period. Use Everything, Sem1, Sem2 or YearExpenses"})
		return
	}

	rows, err := h.metricsService.ComputeDashboardData(c.Request.Context(), yearLabel, period)
	if err != nil {
		logger.Error("Failed to compute dashboard data", slog.String("year_label", yearLabel), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute dashboard data"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(yearLabel, period, rows))
}

// getCashFlow godoc
// @Summary Get the cash-flow evolution series
// @Description Returns the daily cumulative cash balance series for the year, seeded by the opening cash.
// @Tags metrics
// @Produce json
// @Param yearLabel query string true "Budget year label"
// @Success 200 {object} dto.CashFlowResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /metrics/cash-flow [get]
func (h *metricsHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	yearLabel := c.Query("yearLabel")
	if yearLabel == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "yearLabel query parameter required"})
		return
	}

	points, err := h.metricsService.ComputeCashFlowEvolution(c.Request.Context(), yearLabel)
	if err != nil {
		logger.Error("Failed to compute cash flow evolution", slog.String("year_label", yearLabel), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute cash flow evolution"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCashFlowResponse(yearLabel, points))
}

// getCashPosition godoc
// @Summary Get the current cash position
// @Description Returns the latest balance of the cash-flow series, optionally including net working capital.
// @Tags metrics
// @Produce json
// @Param yearLabel query string true "Budget year label"
// @Param withNWC query bool false "Include net working capital" default(false)
// @Success 200 {object} dto.CashPositionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /metrics/cash-position [get]
func (h *metricsHandler) getCashPosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	yearLabel := c.Query("yearLabel")
	if yearLabel == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "yearLabel query parameter required"})
		return
	}

	withNWC := c.DefaultQuery("withNWC", "false") == "true"

	var position decimal.Decimal
	var err error
	if withNWC {
		position, err = h.metricsService.CashPositionWithNWC(c.Request.Context(), yearLabel)
	} else {
		position, err = h.metricsService.CurrentCashPosition(c.Request.Context(), yearLabel)
	}
	if err != nil {
		logger.Error("Failed to compute cash position", slog.String("year_label", yearLabel), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute cash position"})
		return
	}

	c.JSON(http.StatusOK, dto.CashPositionResponse{
		YearLabel: yearLabel,
		WithNWC:   withNWC,
		Position:  position,
	})
}
