package dto

import (
	"github.com/investia/investia_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the request body for recording a transaction.
// Amount must be non-negative; direction is carried by IsExpense.
type CreateTransactionRequest struct {
	YearLabel   string          `json:"yearLabel" binding:"required"`
	TxnDate     string          `json:"txnDate" binding:"required"` // YYYY-MM-DD
	CategoryID  *string         `json:"categoryID,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	IsExpense   *bool           `json:"isExpense" binding:"required"`
}

// UpdateTransactionRequest is the request body for updating a transaction.
// Nil fields are left unchanged.
type UpdateTransactionRequest struct {
	TxnDate     *string          `json:"txnDate,omitempty"`
	CategoryID  *string          `json:"categoryID,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	IsExpense   *bool            `json:"isExpense,omitempty"`
}

// TransactionResponse represents a transaction in API responses, with the
// category resolved to its display name.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	YearLabel     string          `json:"yearLabel"`
	TxnDate       string          `json:"txnDate"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	IsExpense     bool            `json:"isExpense"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
}

// CreateCategoryRequest is the request body for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// ToTransactionResponse converts a domain transaction to a DTO response.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		YearLabel:     txn.YearLabel,
		TxnDate:       txn.TxnDate.Format("2006-01-02"),
		Category:      txn.Category,
		Description:   txn.Description,
		Amount:        txn.Amount,
		IsExpense:     txn.IsExpense,
	}
}

// ToTransactionResponses converts a slice of domain transactions to DTO responses.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		responses[i] = ToTransactionResponse(t)
	}
	return responses
}

// ToCategoryResponses converts a slice of domain categories to DTO responses.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = CategoryResponse{CategoryID: c.CategoryID, Name: c.Name}
	}
	return responses
}
