package dto

import (
	"github.com/investia/investia_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetYearRequest is the request body for creating a budget year.
type CreateBudgetYearRequest struct {
	YearLabel     string          `json:"yearLabel" binding:"required"`
	OpeningCash   decimal.Decimal `json:"openingCash"`
	SavingsTarget decimal.Decimal `json:"savingsTarget"`
	SortOrder     int             `json:"sortOrder"`
}

// UpdateOpeningCashRequest is the request body for updating a year's opening
// cash. Zero is a valid value, so the field carries no required tag.
type UpdateOpeningCashRequest struct {
	OpeningCash decimal.Decimal `json:"openingCash"`
}

// UpdateSavingsTargetRequest is the request body for updating a year's savings target.
type UpdateSavingsTargetRequest struct {
	SavingsTarget decimal.Decimal `json:"savingsTarget"`
}

// CreateBudgetEntryRequest is the request body for creating a budget entry.
type CreateBudgetEntryRequest struct {
	YearLabel    string          `json:"yearLabel" binding:"required"`
	CategoryName string          `json:"categoryName" binding:"required"`
	BudgetType   string          `json:"budgetType" binding:"required,budgettype"`
	Budget       decimal.Decimal `json:"budget"`
}

// UpdateBudgetEntryRequest is the request body for updating a budget entry.
// Nil fields are left unchanged.
type UpdateBudgetEntryRequest struct {
	CategoryName *string          `json:"categoryName,omitempty"`
	BudgetType   *string          `json:"budgetType,omitempty" binding:"omitempty,budgettype"`
	Budget       *decimal.Decimal `json:"budget,omitempty"`
}

// BudgetYearResponse represents a budget year in API responses.
type BudgetYearResponse struct {
	YearLabel     string          `json:"yearLabel"`
	OpeningCash   decimal.Decimal `json:"openingCash"`
	SavingsTarget decimal.Decimal `json:"savingsTarget"`
	SortOrder     int             `json:"sortOrder"`
}

// BudgetEntryResponse represents a budget entry in API responses.
type BudgetEntryResponse struct {
	EntryID      string          `json:"entryID"`
	YearLabel    string          `json:"yearLabel"`
	CategoryName string          `json:"categoryName"`
	BudgetType   string          `json:"budgetType"`
	Budget       decimal.Decimal `json:"budget"`
}

// ToBudgetYearResponse converts a domain budget year to a DTO response.
func ToBudgetYearResponse(year domain.BudgetYear) BudgetYearResponse {
	return BudgetYearResponse{
		YearLabel:     year.YearLabel,
		OpeningCash:   year.OpeningCash,
		SavingsTarget: year.SavingsTarget,
		SortOrder:     year.SortOrder,
	}
}

// ToBudgetYearResponses converts a slice of domain budget years to DTO responses.
func ToBudgetYearResponses(years []domain.BudgetYear) []BudgetYearResponse {
	responses := make([]BudgetYearResponse, len(years))
	for i, y := range years {
		responses[i] = ToBudgetYearResponse(y)
	}
	return responses
}

// ToBudgetEntryResponse converts a domain budget entry to a DTO response.
func ToBudgetEntryResponse(entry domain.BudgetEntry) BudgetEntryResponse {
	return BudgetEntryResponse{
		EntryID:      entry.EntryID,
		YearLabel:    entry.YearLabel,
		CategoryName: entry.CategoryName,
		BudgetType:   string(entry.BudgetType),
		Budget:       entry.Budget,
	}
}

// ToBudgetEntryResponses converts a slice of domain budget entries to DTO responses.
func ToBudgetEntryResponses(entries []domain.BudgetEntry) []BudgetEntryResponse {
	responses := make([]BudgetEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToBudgetEntryResponse(e)
	}
	return responses
}
