package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/investia/investia_backend/internal/core/domain"
	portsrepo "github.com/investia/investia_backend/internal/core/ports/repositories"
	portssvc "github.com/investia/investia_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// metricsService implements the MetricsSvcFacade interface. It holds no state
// of its own: every computation fetches fresh snapshots from the ledger
// repositories and aggregates them in memory, so repeated invocation with
// unchanged data yields identical results.
type metricsService struct {
	BaseService
	budgetRepo portsrepo.BudgetReaderRepository
	txnRepo    portsrepo.TransactionReaderRepository
	wcRepo     portsrepo.WorkingCapitalReaderRepository
}

// NewMetricsService creates a new metrics service over the given ledger
// repositories.
func NewMetricsService(
	budgetRepo portsrepo.BudgetReaderRepository,
	txnRepo portsrepo.TransactionReaderRepository,
	wcRepo portsrepo.WorkingCapitalReaderRepository,
) portssvc.MetricsSvcFacade {
	return &metricsService{
		budgetRepo: budgetRepo,
		txnRepo:    txnRepo,
		wcRepo:     wcRepo,
	}
}

// Ensure metricsService implements the MetricsSvcFacade interface
var _ portssvc.MetricsSvcFacade = (*metricsService)(nil)

// ComputeBudgetMetrics aggregates the year's budget entries by type and
// derives the free float. An empty year label yields all-zero metrics rather
// than an error so callers can render before a year is selected.
func (s *metricsService) ComputeBudgetMetrics(ctx context.Context, yearLabel string) (domain.BudgetMetrics, error) {
	if yearLabel == "" {
		return domain.ZeroBudgetMetrics(), nil
	}

	openingCash, err := s.budgetRepo.GetOpeningCash(ctx, yearLabel)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch opening cash", slog.String("year_label", yearLabel))
		return domain.BudgetMetrics{}, fmt.Errorf("failed to fetch opening cash: %w", err)
	}

	savings, err := s.budgetRepo.GetSavingsTarget(ctx, yearLabel)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch savings target", slog.String("year_label", yearLabel))
		return domain.BudgetMetrics{}, fmt.Errorf("failed to fetch savings target: %w", err)
	}

	entries, err := s.budgetRepo.FetchBudgetEntries(ctx, yearLabel)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch budget entries", slog.String("year_label", yearLabel))
		return domain.BudgetMetrics{}, fmt.Errorf("failed to fetch budget entries: %w", err)
	}

	metrics := domain.ZeroBudgetMetrics()
	metrics.OpeningCash = openingCash
	metrics.Savings = savings

	// Rows with an unknown budget type contribute to no bucket.
	for _, entry := range entries {
		switch entry.BudgetType {
		case domain.BudgetTypeIncome:
			metrics.TotalIncome = metrics.TotalIncome.Add(entry.Budget)
		case domain.BudgetTypeSemester1:
			metrics.TotalExpensesSem1 = metrics.TotalExpensesSem1.Add(entry.Budget)
		case domain.BudgetTypeSemester2:
			metrics.TotalExpensesSem2 = metrics.TotalExpensesSem2.Add(entry.Budget)
		case domain.BudgetTypeYear:
			metrics.TotalExpensesYear = metrics.TotalExpensesYear.Add(entry.Budget)
		}
	}

	metrics.TotalExpensesAll = metrics.TotalExpensesSem1.
		Add(metrics.TotalExpensesSem2).
		Add(metrics.TotalExpensesYear)

	// Free float = opening + income - all expenses - savings
	metrics.FreeFloat = metrics.OpeningCash.
		Add(metrics.TotalIncome).
		Sub(metrics.TotalExpensesAll).
		Sub(metrics.Savings)

	return metrics, nil
}

// ComputeWorkingCapitalMetrics aggregates AR and AP rows for the year and
// inventory rows across all years. Inventory is year-independent: it is
// always loaded without a year filter.
func (s *metricsService) ComputeWorkingCapitalMetrics(ctx context.Context, yearLabel string) (domain.WorkingCapitalMetrics, error) {
	arRows, err := s.wcRepo.LoadWorkingCapital(ctx, &yearLabel, domain.KindAR)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts receivable", slog.String("year_label", yearLabel))
		return domain.WorkingCapitalMetrics{}, fmt.Errorf("failed to load accounts receivable: %w", err)
	}

	metrics := domain.WorkingCapitalMetrics{
		TotalAR:        decimal.Zero,
		TotalARMember:  decimal.Zero,
		TotalARSponsor: decimal.Zero,
		TotalAROther:   decimal.Zero,
		TotalAP:        decimal.Zero,
		TotalInventory: decimal.Zero,
		NWC:            decimal.Zero,
	}

	for _, row := range arRows {
		metrics.TotalAR = metrics.TotalAR.Add(row.Amount)
		if row.KindDetail == nil {
			continue
		}
		switch *row.KindDetail {
		case domain.DetailMember:
			metrics.TotalARMember = metrics.TotalARMember.Add(row.Amount)
		case domain.DetailSponsor:
			metrics.TotalARSponsor = metrics.TotalARSponsor.Add(row.Amount)
		case domain.DetailOther:
			metrics.TotalAROther = metrics.TotalAROther.Add(row.Amount)
		}
	}

	apRows, err := s.wcRepo.LoadWorkingCapital(ctx, &yearLabel, domain.KindAP)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts payable", slog.String("year_label", yearLabel))
		return domain.WorkingCapitalMetrics{}, fmt.Errorf("failed to load accounts payable: %w", err)
	}
	for _, row := range apRows {
		metrics.TotalAP = metrics.TotalAP.Add(row.Amount)
	}

	invRows, err := s.wcRepo.LoadWorkingCapital(ctx, nil, domain.KindInventory)
	if err != nil {
		s.LogError(ctx, err, "Failed to load inventory")
		return domain.WorkingCapitalMetrics{}, fmt.Errorf("failed to load inventory: %w", err)
	}
	for _, row := range invRows {
		metrics.TotalInventory = metrics.TotalInventory.Add(row.Amount)
	}

	// NWC = AR + Inventory - AP
	metrics.NWC = metrics.TotalAR.Add(metrics.TotalInventory).Sub(metrics.TotalAP)

	return metrics, nil
}

// ComputeDashboardData builds the budget-vs-actual view: the year's budget
// entries filtered by period, left-joined by category name with per-category
// net spending from the transaction stream. Categories with no transactions
// keep a zero net spending; the join key is the display name, so upstream
// canonicalization decides what counts as the same category.
func (s *metricsService) ComputeDashboardData(ctx context.Context, yearLabel string, period domain.PeriodFilter) ([]domain.DashboardRow, error) {
	entries, err := s.budgetRepo.FetchBudgetEntries(ctx, yearLabel)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch budget entries", slog.String("year_label", yearLabel))
		return nil, fmt.Errorf("failed to fetch budget entries: %w", err)
	}

	included := make(map[domain.BudgetType]bool)
	for _, bt := range period.BudgetTypes() {
		included[bt] = true
	}

	filtered := make([]domain.BudgetEntry, 0, len(entries))
	for _, entry := range entries {
		if included[entry.BudgetType] {
			filtered = append(filtered, entry)
		}
	}
	if len(filtered) == 0 {
		return []domain.DashboardRow{}, nil
	}

	txns, err := s.txnRepo.FetchTransactionsWithCategories(ctx, yearLabel)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions", slog.String("year_label", yearLabel))
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	netSpending := make(map[string]decimal.Decimal, len(txns))
	for _, txn := range txns {
		netSpending[txn.Category] = netSpending[txn.Category].Add(txn.NetSpending())
	}

	rows := make([]domain.DashboardRow, 0, len(filtered))
	for _, entry := range filtered {
		net, ok := netSpending[entry.CategoryName]
		if !ok {
			net = decimal.Zero
		}
		rows = append(rows, domain.DashboardRow{
			Category:    entry.CategoryName,
			Budget:      entry.Budget,
			NetSpending: net,
			Remaining:   entry.Budget.Sub(net),
			BudgetType:  entry.BudgetType,
		})
	}

	s.LogInfo(ctx, "Dashboard data computed",
		slog.String("year_label", yearLabel),
		slog.String("period", string(period)),
		slog.Int("row_count", len(rows)))
	return rows, nil
}

// ComputeCashFlowEvolution turns the year's transaction stream into a daily
// cumulative balance series seeded by the opening cash. Same-day transactions
// collapse into one net flow per day. With no transactions the series is a
// single point at today's date holding the opening cash, so charts never
// receive an empty series. The series starts at the first transaction date,
// not at the fiscal-year start.
func (s *metricsService) ComputeCashFlowEvolution(ctx context.Context, yearLabel string) ([]domain.CashFlowPoint, error) {
	openingCash, err := s.budgetRepo.GetOpeningCash(ctx, yearLabel)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch opening cash", slog.String("year_label", yearLabel))
		return nil, fmt.Errorf("failed to fetch opening cash: %w", err)
	}

	txns, err := s.txnRepo.FetchTransactionsWithCategories(ctx, yearLabel)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions", slog.String("year_label", yearLabel))
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	if len(txns) == 0 {
		return []domain.CashFlowPoint{{Date: truncateToDay(time.Now().UTC()), Balance: openingCash}}, nil
	}

	dailyFlow := make(map[time.Time]decimal.Decimal, len(txns))
	for _, txn := range txns {
		day := truncateToDay(txn.TxnDate)
		dailyFlow[day] = dailyFlow[day].Add(txn.SignedFlow())
	}

	days := make([]time.Time, 0, len(dailyFlow))
	for day := range dailyFlow {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	points := make([]domain.CashFlowPoint, 0, len(days))
	balance := openingCash
	for _, day := range days {
		balance = balance.Add(dailyFlow[day])
		points = append(points, domain.CashFlowPoint{Date: day, Balance: balance})
	}

	return points, nil
}

// CurrentCashPosition returns the balance of the last point of the cash-flow
// series, falling back to the opening cash when the series is empty.
func (s *metricsService) CurrentCashPosition(ctx context.Context, yearLabel string) (decimal.Decimal, error) {
	points, err := s.ComputeCashFlowEvolution(ctx, yearLabel)
	if err != nil {
		return decimal.Zero, err
	}
	if len(points) == 0 {
		return s.budgetRepo.GetOpeningCash(ctx, yearLabel)
	}
	return points[len(points)-1].Balance, nil
}

// CashPositionWithNWC returns the current cash position plus the year's net
// working capital.
func (s *metricsService) CashPositionWithNWC(ctx context.Context, yearLabel string) (decimal.Decimal, error) {
	currentCash, err := s.CurrentCashPosition(ctx, yearLabel)
	if err != nil {
		return decimal.Zero, err
	}
	wcMetrics, err := s.ComputeWorkingCapitalMetrics(ctx, yearLabel)
	if err != nil {
		return decimal.Zero, err
	}
	return currentCash.Add(wcMetrics.NWC), nil
}

// truncateToDay normalizes a timestamp to its UTC calendar date so same-day
// transactions group together regardless of the time portion.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
