package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodFilter selects which budget types the dashboard view covers.
type PeriodFilter string

const (
	PeriodEverything   PeriodFilter = "Everything"
	PeriodSem1         PeriodFilter = "Sem1"
	PeriodSem2         PeriodFilter = "Sem2"
	PeriodYearExpenses PeriodFilter = "YearExpenses"
)

// IsValid reports whether the period filter is one of the known values.
func (p PeriodFilter) IsValid() bool {
	switch p {
	case PeriodEverything, PeriodSem1, PeriodSem2, PeriodYearExpenses:
		return true
	}
	return false
}

// BudgetTypes returns the budget types included by this filter. Income entries
// are never included: the dashboard is an expense-tracking view.
func (p PeriodFilter) BudgetTypes() []BudgetType {
	switch p {
	case PeriodSem1:
		return []BudgetType{BudgetTypeSemester1}
	case PeriodSem2:
		return []BudgetType{BudgetTypeSemester2}
	case PeriodYearExpenses:
		return []BudgetType{BudgetTypeYear}
	default:
		return []BudgetType{BudgetTypeSemester1, BudgetTypeSemester2, BudgetTypeYear}
	}
}

// BudgetMetrics aggregates a year's budget entries by type.
//
// FreeFloat = OpeningCash + TotalIncome - TotalExpensesAll - Savings.
type BudgetMetrics struct {
	OpeningCash       decimal.Decimal `json:"openingCash"`
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpensesSem1 decimal.Decimal `json:"totalExpensesSem1"`
	TotalExpensesSem2 decimal.Decimal `json:"totalExpensesSem2"`
	TotalExpensesYear decimal.Decimal `json:"totalExpensesYear"`
	TotalExpensesAll  decimal.Decimal `json:"totalExpensesAll"`
	Savings           decimal.Decimal `json:"savings"`
	FreeFloat         decimal.Decimal `json:"freeFloat"`
}

// ZeroBudgetMetrics returns an all-zero metrics record, used when no budget
// year is selected.
func ZeroBudgetMetrics() BudgetMetrics {
	return BudgetMetrics{
		OpeningCash:       decimal.Zero,
		TotalIncome:       decimal.Zero,
		TotalExpensesSem1: decimal.Zero,
		TotalExpensesSem2: decimal.Zero,
		TotalExpensesYear: decimal.Zero,
		TotalExpensesAll:  decimal.Zero,
		Savings:           decimal.Zero,
		FreeFloat:         decimal.Zero,
	}
}

// WorkingCapitalMetrics aggregates AR, AP and inventory rows.
//
// NWC = TotalAR + TotalInventory - TotalAP. The AR breakdown buckets cover
// Member/Sponsor/Other details only; rows with a missing or unknown detail
// contribute to TotalAR but to no named bucket.
type WorkingCapitalMetrics struct {
	TotalAR        decimal.Decimal `json:"totalAR"`
	TotalARMember  decimal.Decimal `json:"totalARMember"`
	TotalARSponsor decimal.Decimal `json:"totalARSponsor"`
	TotalAROther   decimal.Decimal `json:"totalAROther"`
	TotalAP        decimal.Decimal `json:"totalAP"`
	TotalInventory decimal.Decimal `json:"totalInventory"`
	NWC            decimal.Decimal `json:"nwc"`
}

// DashboardRow is one budget-vs-actual line of the dashboard view.
// Remaining = Budget - NetSpending.
type DashboardRow struct {
	Category    string          `json:"category"`
	Budget      decimal.Decimal `json:"budget"`
	NetSpending decimal.Decimal `json:"netSpending"`
	Remaining   decimal.Decimal `json:"remaining"`
	BudgetType  BudgetType      `json:"budgetType"`
}

// CashFlowPoint is one day of the cumulative cash balance series.
type CashFlowPoint struct {
	Date    time.Time       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}
