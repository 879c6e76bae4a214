package services

import (
	"context"

	"github.com/investia/investia_backend/internal/core/domain"
	"github.com/investia/investia_backend/internal/dto"
)

// TransactionSvcFacade manages transactions and their categories.
type TransactionSvcFacade interface {
	ListTransactions(ctx context.Context, yearLabel string) ([]domain.Transaction, error)
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) error
	DeleteTransaction(ctx context.Context, transactionID string) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
}
