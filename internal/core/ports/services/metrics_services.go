package services

import (
	"context"

	"github.com/investia/investia_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MetricsSvcFacade is the derived-financial-quantity engine: it aggregates
// raw ledger rows into the dashboard metrics. All methods are read-only and
// idempotent; missing data yields zero-valued results, never an error. Errors
// propagate only when the underlying ledger access fails.
type MetricsSvcFacade interface {
	// ComputeBudgetMetrics aggregates a year's budget entries by type and
	// derives the free float. An empty yearLabel yields all-zero metrics.
	ComputeBudgetMetrics(ctx context.Context, yearLabel string) (domain.BudgetMetrics, error)

	// ComputeWorkingCapitalMetrics aggregates AR/AP rows for the year and
	// inventory rows across all years, and derives the net working capital.
	ComputeWorkingCapitalMetrics(ctx context.Context, yearLabel string) (domain.WorkingCapitalMetrics, error)

	// ComputeDashboardData left-joins the year's budget entries (filtered by
	// period) with per-category net spending from the transaction stream.
	ComputeDashboardData(ctx context.Context, yearLabel string, period domain.PeriodFilter) ([]domain.DashboardRow, error)

	// ComputeCashFlowEvolution turns the year's transaction stream into a
	// daily cumulative balance series seeded by the opening cash, ordered by
	// date ascending. With no transactions it returns a single point at
	// today's date holding the opening cash.
	ComputeCashFlowEvolution(ctx context.Context, yearLabel string) ([]domain.CashFlowPoint, error)

	// CurrentCashPosition returns the balance of the last cash-flow point,
	// or the opening cash when the series is empty.
	CurrentCashPosition(ctx context.Context, yearLabel string) (decimal.Decimal, error)

	// CashPositionWithNWC returns CurrentCashPosition plus the year's net
	// working capital.
	CashPositionWithNWC(ctx context.Context, yearLabel string) (decimal.Decimal, error)
}
