package repositories

import (
	"context"

	"github.com/investia/investia_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetReaderRepository defines read operations over budget years and entries.
//
// GetOpeningCash and GetSavingsTarget return decimal.Zero for unknown years:
// "no data yet" is a normal state, not an error. Fetch methods return empty
// slices, never nil.
type BudgetReaderRepository interface {
	ListBudgetYears(ctx context.Context) ([]domain.BudgetYear, error)
	GetOpeningCash(ctx context.Context, yearLabel string) (decimal.Decimal, error)
	GetSavingsTarget(ctx context.Context, yearLabel string) (decimal.Decimal, error)
	FetchBudgetEntries(ctx context.Context, yearLabel string) ([]domain.BudgetEntry, error)
	FetchBudgetEntriesForType(ctx context.Context, yearLabel string, budgetType domain.BudgetType) ([]domain.BudgetEntry, error)
	FindBudgetEntryByID(ctx context.Context, entryID string) (*domain.BudgetEntry, error)
}

// BudgetWriterRepository defines write operations over budget years and entries.
type BudgetWriterRepository interface {
	SaveBudgetYear(ctx context.Context, year domain.BudgetYear) error
	UpdateOpeningCash(ctx context.Context, yearLabel string, openingCash decimal.Decimal) error
	UpdateSavingsTarget(ctx context.Context, yearLabel string, savings decimal.Decimal) error
	SaveBudgetEntry(ctx context.Context, entry domain.BudgetEntry) error
	UpdateBudgetEntry(ctx context.Context, entry domain.BudgetEntry) error
	DeleteBudgetEntry(ctx context.Context, entryID string) error
}

// BudgetRepositoryFacade combines budget read and write operations.
type BudgetRepositoryFacade interface {
	BudgetReaderRepository
	BudgetWriterRepository
}
