package domain

import "github.com/shopspring/decimal"

// BudgetType classifies a budget entry as planned income or as expenses
// belonging to one of the spending horizons.
type BudgetType string

const (
	BudgetTypeIncome    BudgetType = "income"
	BudgetTypeYear      BudgetType = "year"
	BudgetTypeSemester1 BudgetType = "semester1"
	BudgetTypeSemester2 BudgetType = "semester2"
)

// IsValid reports whether the budget type is one of the known values.
func (t BudgetType) IsValid() bool {
	switch t {
	case BudgetTypeIncome, BudgetTypeYear, BudgetTypeSemester1, BudgetTypeSemester2:
		return true
	}
	return false
}

// BudgetYear is one fiscal year of the organization, e.g. "2024/2025".
// SortOrder controls display order in year pickers.
type BudgetYear struct {
	YearLabel     string          `json:"yearLabel"`
	OpeningCash   decimal.Decimal `json:"openingCash"`
	SavingsTarget decimal.Decimal `json:"savingsTarget"`
	SortOrder     int             `json:"sortOrder"`
}

// BudgetEntry is one planned amount for a category within a year. A year holds
// at most one entry per (category, budget type) pair.
type BudgetEntry struct {
	EntryID      string          `json:"entryID"`
	YearLabel    string          `json:"yearLabel"`
	CategoryName string          `json:"categoryName"`
	BudgetType   BudgetType      `json:"budgetType"`
	Budget       decimal.Decimal `json:"budget"`
}
