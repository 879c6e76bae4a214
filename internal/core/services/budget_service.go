package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/investia/investia_backend/internal/apperrors"
	"github.com/investia/investia_backend/internal/core/domain"
	portsrepo "github.com/investia/investia_backend/internal/core/ports/repositories"
	portssvc "github.com/investia/investia_backend/internal/core/ports/services"
	"github.com/investia/investia_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// budgetService implements the BudgetSvcFacade interface
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
}

// NewBudgetService creates a new budget service
func NewBudgetService(repo portsrepo.BudgetRepositoryFacade) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: repo}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) ListBudgetYears(ctx context.Context) ([]domain.BudgetYear, error) {
	years, err := s.budgetRepo.ListBudgetYears(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budget years")
		return nil, fmt.Errorf("failed to list budget years: %w", err)
	}
	return years, nil
}

func (s *budgetService) CreateBudgetYear(ctx context.Context, req dto.CreateBudgetYearRequest) (*domain.BudgetYear, error) {
	label := strings.TrimSpace(req.YearLabel)
	if label == "" {
		return nil, fmt.Errorf("%w: year label must not be empty", apperrors.ErrValidation)
	}

	year := domain.BudgetYear{
		YearLabel:     label,
		OpeningCash:   req.OpeningCash,
		SavingsTarget: req.SavingsTarget,
		SortOrder:     req.SortOrder,
	}
	if err := s.budgetRepo.SaveBudgetYear(ctx, year); err != nil {
		s.LogError(ctx, err, "Failed to save budget year", slog.String("year_label", label))
		return nil, err
	}

	s.LogInfo(ctx, "Budget year created", slog.String("year_label", label))
	return &year, nil
}

func (s *budgetService) UpdateOpeningCash(ctx context.Context, yearLabel string, openingCash decimal.Decimal) error {
	if err := s.budgetRepo.UpdateOpeningCash(ctx, yearLabel, openingCash); err != nil {
		s.LogError(ctx, err, "Failed to update opening cash", slog.String("year_label", yearLabel))
		return err
	}
	s.LogInfo(ctx, "Opening cash updated", slog.String("year_label", yearLabel))
	return nil
}

func (s *budgetService) UpdateSavingsTarget(ctx context.Context, yearLabel string, savings decimal.Decimal) error {
	if err := s.budgetRepo.UpdateSavingsTarget(ctx, yearLabel, savings); err != nil {
		s.LogError(ctx, err, "Failed to update savings target", slog.String("year_label", yearLabel))
		return err
	}
	s.LogInfo(ctx, "Savings target updated", slog.String("year_label", yearLabel))
	return nil
}

func (s *budgetService) ListBudgetEntries(ctx context.Context, yearLabel string, budgetType *domain.BudgetType) ([]domain.BudgetEntry, error) {
	var entries []domain.BudgetEntry
	var err error
	if budgetType != nil {
		entries, err = s.budgetRepo.FetchBudgetEntriesForType(ctx, yearLabel, *budgetType)
	} else {
		entries, err = s.budgetRepo.FetchBudgetEntries(ctx, yearLabel)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch budget entries", slog.String("year_label", yearLabel))
		return nil, fmt.Errorf("failed to fetch budget entries: %w", err)
	}
	return entries, nil
}

func (s *budgetService) CreateBudgetEntry(ctx context.Context, req dto.CreateBudgetEntryRequest) (*domain.BudgetEntry, error) {
	name := strings.TrimSpace(req.CategoryName)
	if name == "" {
		return nil, fmt.Errorf("%w: category name must not be empty", apperrors.ErrValidation)
	}
	budgetType := domain.BudgetType(req.BudgetType)
	if !budgetType.IsValid() {
		return nil, fmt.Errorf("%w: unknown budget type %q", apperrors.ErrValidation, req.BudgetType)
	}

	entry := domain.BudgetEntry{
		EntryID:      uuid.NewString(),
		YearLabel:    req.YearLabel,
		CategoryName: name,
		BudgetType:   budgetType,
		Budget:       req.Budget,
	}
	if err := s.budgetRepo.SaveBudgetEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save budget entry",
			slog.String("year_label", req.YearLabel),
			slog.String("category_name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Budget entry created",
		slog.String("year_label", req.YearLabel),
		slog.String("category_name", name),
		slog.String("budget_type", req.BudgetType))
	return &entry, nil
}

func (s *budgetService) UpdateBudgetEntry(ctx context.Context, entryID string, req dto.UpdateBudgetEntryRequest) error {
	current, err := s.budgetRepo.FindBudgetEntryByID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find budget entry", slog.String("entry_id", entryID))
		return err
	}
	entry := *current

	if req.CategoryName != nil {
		name := strings.TrimSpace(*req.CategoryName)
		if name == "" {
			return fmt.Errorf("%w: category name must not be empty", apperrors.ErrValidation)
		}
		entry.CategoryName = name
	}
	if req.BudgetType != nil {
		budgetType := domain.BudgetType(*req.BudgetType)
		if !budgetType.IsValid() {
			return fmt.Errorf("%w: unknown budget type %q", apperrors.ErrValidation, *req.BudgetType)
		}
		entry.BudgetType = budgetType
	}
	if req.Budget != nil {
		entry.Budget = *req.Budget
	}

	if err := s.budgetRepo.UpdateBudgetEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to update budget entry", slog.String("entry_id", entryID))
		return err
	}
	s.LogInfo(ctx, "Budget entry updated", slog.String("entry_id", entryID))
	return nil
}

func (s *budgetService) DeleteBudgetEntry(ctx context.Context, entryID string) error {
	if err := s.budgetRepo.DeleteBudgetEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget entry", slog.String("entry_id", entryID))
		return err
	}
	s.LogInfo(ctx, "Budget entry deleted", slog.String("entry_id", entryID))
	return nil
}
