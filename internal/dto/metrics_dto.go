package dto

import (
	"github.com/investia/investia_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetMetricsResponse represents the budget metrics for one year.
type BudgetMetricsResponse struct {
	YearLabel         string          `json:"yearLabel"`
	OpeningCash       decimal.Decimal `json:"openingCash"`
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpensesSem1 decimal.Decimal `json:"totalExpensesSem1"`
	TotalExpensesSem2 decimal.Decimal `json:"totalExpensesSem2"`
	TotalExpensesYear decimal.Decimal `json:"totalExpensesYear"`
	TotalExpensesAll  decimal.Decimal `json:"totalExpensesAll"`
	Savings           decimal.Decimal `json:"savings"`
	FreeFloat         decimal.Decimal `json:"freeFloat"`
}

// WorkingCapitalMetricsResponse represents the working-capital metrics for one year.
type WorkingCapitalMetricsResponse struct {
	YearLabel      string          `json:"yearLabel"`
	TotalAR        decimal.Decimal `json:"totalAR"`
	TotalARMember  decimal.Decimal `json:"totalARMember"`
	TotalARSponsor decimal.Decimal `json:"totalARSponsor"`
	TotalAROther   decimal.Decimal `json:"totalAROther"`
	TotalAP        decimal.Decimal `json:"totalAP"`
	TotalInventory decimal.Decimal `json:"totalInventory"`
	NWC            decimal.Decimal `json:"nwc"`
}

// DashboardRowResponse is one budget-vs-actual row of the dashboard.
type DashboardRowResponse struct {
	Category    string          `json:"category"`
	Budget      decimal.Decimal `json:"budget"`
	NetSpending decimal.Decimal `json:"netSpending"`
	Remaining   decimal.Decimal `json:"remaining"`
	BudgetType  string          `json:"budgetType"`
}

// DashboardResponse represents the dashboard view for a year and period.
type DashboardResponse struct {
	YearLabel string                 `json:"yearLabel"`
	Period    string                 `json:"period"`
	Rows      []DashboardRowResponse `json:"rows"`
}

// CashFlowPointResponse is one day of the cumulative balance series.
type CashFlowPointResponse struct {
	Date    string          `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// CashFlowResponse represents the cash-flow evolution series for a year.
type CashFlowResponse struct {
	YearLabel string                  `json:"yearLabel"`
	Points    []CashFlowPointResponse `json:"points"`
}

// CashPositionResponse represents the current cash position for a year.
type CashPositionResponse struct {
	YearLabel string          `json:"yearLabel"`
	WithNWC   bool            `json:"withNWC"`
	Position  decimal.Decimal `json:"position"`
}

// ToBudgetMetricsResponse converts domain budget metrics to a DTO response.
func ToBudgetMetricsResponse(yearLabel string, m domain.BudgetMetrics) BudgetMetricsResponse {
	return BudgetMetricsResponse{
		YearLabel:         yearLabel,
		OpeningCash:       m.OpeningCash,
		TotalIncome:       m.TotalIncome,
		TotalExpensesSem1: m.TotalExpensesSem1,
		TotalExpensesSem2: m.TotalExpensesSem2,
		TotalExpensesYear: m.TotalExpensesYear,
		TotalExpensesAll:  m.TotalExpensesAll,
		Savings:           m.Savings,
		FreeFloat:         m.FreeFloat,
	}
}

// ToWorkingCapitalMetricsResponse converts domain working-capital metrics to a DTO response.
func ToWorkingCapitalMetricsResponse(yearLabel string, m domain.WorkingCapitalMetrics) WorkingCapitalMetricsResponse {
	return WorkingCapitalMetricsResponse{
		YearLabel:      yearLabel,
		TotalAR:        m.TotalAR,
		TotalARMember:  m.TotalARMember,
		TotalARSponsor: m.TotalARSponsor,
		TotalAROther:   m.TotalAROther,
		TotalAP:        m.TotalAP,
		TotalInventory: m.TotalInventory,
		NWC:            m.NWC,
	}
}

// ToDashboardResponse converts dashboard rows to a DTO response.
func ToDashboardResponse(yearLabel string, period domain.PeriodFilter, rows []domain.DashboardRow) DashboardResponse {
	response := DashboardResponse{
		YearLabel: yearLabel,
		Period:    string(period),
		Rows:      make([]DashboardRowResponse, len(rows)),
	}
	for i, row := range rows {
		response.Rows[i] = DashboardRowResponse{
			Category:    row.Category,
			Budget:      row.Budget,
			NetSpending: row.NetSpending,
			Remaining:   row.Remaining,
			BudgetType:  string(row.BudgetType),
		}
	}
	return response
}

// ToCashFlowResponse converts a cash-flow series to a DTO response.
func ToCashFlowResponse(yearLabel string, points []domain.CashFlowPoint) CashFlowResponse {
	response := CashFlowResponse{
		YearLabel: yearLabel,
		Points:    make([]CashFlowPointResponse, len(points)),
	}
	for i, p := range points {
		response.Points[i] = CashFlowPointResponse{
			Date:    p.Date.Format("2006-01-02"),
			Balance: p.Balance,
		}
	}
	return response
}
