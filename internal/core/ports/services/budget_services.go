package services

import (
	"context"

	"github.com/investia/investia_backend/internal/core/domain"
	"github.com/investia/investia_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// BudgetSvcFacade manages budget years and per-category budget entries.
type BudgetSvcFacade interface {
	ListBudgetYears(ctx context.Context) ([]domain.BudgetYear, error)
	CreateBudgetYear(ctx context.Context, req dto.CreateBudgetYearRequest) (*domain.BudgetYear, error)
	UpdateOpeningCash(ctx context.Context, yearLabel string, openingCash decimal.Decimal) error
	UpdateSavingsTarget(ctx context.Context, yearLabel string, savings decimal.Decimal) error

	ListBudgetEntries(ctx context.Context, yearLabel string, budgetType *domain.BudgetType) ([]domain.BudgetEntry, error)
	CreateBudgetEntry(ctx context.Context, req dto.CreateBudgetEntryRequest) (*domain.BudgetEntry, error)
	UpdateBudgetEntry(ctx context.Context, entryID string, req dto.UpdateBudgetEntryRequest) error
	DeleteBudgetEntry(ctx context.Context, entryID string) error
}
