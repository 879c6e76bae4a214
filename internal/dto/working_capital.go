package dto

import (
	"github.com/investia/investia_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWorkingCapitalEntryRequest is the request body for creating an
// AR/AP/inventory row. BookYearLabel must be nil for inventory rows, which are
// year-independent.
type CreateWorkingCapitalEntryRequest struct {
	BookYearLabel  *string         `json:"bookYearLabel,omitempty"`
	Kind           string          `json:"kind" binding:"required,wckind"`
	KindDetail     *string         `json:"kindDetail,omitempty"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	EntryDate      string          `json:"entryDate" binding:"required"` // YYYY-MM-DD
	NumberOfPieces *int            `json:"numberOfPieces,omitempty"`
	Description    string          `json:"description"`
}

// UpdateWorkingCapitalEntryRequest is the request body for updating an
// AR/AP/inventory row. Nil fields are left unchanged.
type UpdateWorkingCapitalEntryRequest struct {
	KindDetail     *string          `json:"kindDetail,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	EntryDate      *string          `json:"entryDate,omitempty"`
	NumberOfPieces *int             `json:"numberOfPieces,omitempty"`
	Description    *string          `json:"description,omitempty"`
}

// WorkingCapitalEntryResponse represents an AR/AP/inventory row in API responses.
type WorkingCapitalEntryResponse struct {
	EntryID        string          `json:"entryID"`
	BookYearLabel  *string         `json:"bookYearLabel,omitempty"`
	Kind           string          `json:"kind"`
	KindDetail     *string         `json:"kindDetail,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	EntryDate      string          `json:"entryDate"`
	NumberOfPieces *int            `json:"numberOfPieces,omitempty"`
	Description    string          `json:"description"`
}

// ToWorkingCapitalEntryResponse converts a domain working-capital entry to a DTO response.
func ToWorkingCapitalEntryResponse(entry domain.WorkingCapitalEntry) WorkingCapitalEntryResponse {
	return WorkingCapitalEntryResponse{
		EntryID:        entry.EntryID,
		BookYearLabel:  entry.BookYearLabel,
		Kind:           string(entry.Kind),
		KindDetail:     entry.KindDetail,
		Amount:         entry.Amount,
		EntryDate:      entry.EntryDate.Format("2006-01-02"),
		NumberOfPieces: entry.NumberOfPieces,
		Description:    entry.Description,
	}
}

// ToWorkingCapitalEntryResponses converts a slice of domain working-capital entries to DTO responses.
func ToWorkingCapitalEntryResponses(entries []domain.WorkingCapitalEntry) []WorkingCapitalEntryResponse {
	responses := make([]WorkingCapitalEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToWorkingCapitalEntryResponse(e)
	}
	return responses
}
