package repositories

import (
	"context"

	"github.com/investia/investia_backend/internal/core/domain"
)

// TransactionReaderRepository defines read operations over transactions and
// categories.
//
// FetchTransactionsWithCategories resolves each transaction's category
// reference to its display name; transactions without a category resolve to
// domain.UncategorizedName. Results are ordered by transaction date ascending.
type TransactionReaderRepository interface {
	FetchTransactionsWithCategories(ctx context.Context, yearLabel string) ([]domain.Transaction, error)
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// TransactionWriterRepository defines write operations over transactions and
// categories.
type TransactionWriterRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction, categoryID *string) error
	UpdateTransaction(ctx context.Context, txn domain.Transaction, categoryID *string) error
	DeleteTransaction(ctx context.Context, transactionID string) error
	SaveCategory(ctx context.Context, category domain.Category) error
}

// TransactionRepositoryFacade combines transaction read and write operations.
type TransactionRepositoryFacade interface {
	TransactionReaderRepository
	TransactionWriterRepository
}
