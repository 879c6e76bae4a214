package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/investia/investia_backend/internal/apperrors"
	"github.com/investia/investia_backend/internal/core/domain"
	portsrepo "github.com/investia/investia_backend/internal/core/ports/repositories"
	portssvc "github.com/investia/investia_backend/internal/core/ports/services"
	"github.com/investia/investia_backend/internal/dto"
)

// workingCapitalService implements the WorkingCapitalSvcFacade interface
type workingCapitalService struct {
	BaseService
	wcRepo portsrepo.WorkingCapitalRepositoryFacade
}

// NewWorkingCapitalService creates a new working-capital service
func NewWorkingCapitalService(repo portsrepo.WorkingCapitalRepositoryFacade) portssvc.WorkingCapitalSvcFacade {
	return &workingCapitalService{wcRepo: repo}
}

var _ portssvc.WorkingCapitalSvcFacade = (*workingCapitalService)(nil)

func (s *workingCapitalService) ListEntries(ctx context.Context, yearLabel *string, kind domain.WorkingCapitalKind) ([]domain.WorkingCapitalEntry, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown working capital kind %q", apperrors.ErrValidation, kind)
	}
	// Inventory is never scoped to a year.
	if kind == domain.KindInventory {
		yearLabel = nil
	}
	entries, err := s.wcRepo.LoadWorkingCapital(ctx, yearLabel, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to load working capital entries", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to load working capital entries: %w", err)
	}
	return entries, nil
}

func (s *workingCapitalService) CreateEntry(ctx context.Context, req dto.CreateWorkingCapitalEntryRequest) (*domain.WorkingCapitalEntry, error) {
	kind := domain.WorkingCapitalKind(req.Kind)
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown working capital kind %q", apperrors.ErrValidation, req.Kind)
	}
	entryDate, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid entry date %q", apperrors.ErrValidation, req.EntryDate)
	}

	bookYear := req.BookYearLabel
	if kind == domain.KindInventory {
		// Inventory rows are year-independent.
		bookYear = nil
	} else if bookYear == nil || *bookYear == "" {
		return nil, fmt.Errorf("%w: book year label is required for %s entries", apperrors.ErrValidation, kind)
	}

	entry := domain.WorkingCapitalEntry{
		EntryID:        uuid.NewString(),
		BookYearLabel:  bookYear,
		Kind:           kind,
		KindDetail:     req.KindDetail,
		Amount:         req.Amount,
		EntryDate:      entryDate,
		NumberOfPieces: req.NumberOfPieces,
		Description:    req.Description,
	}
	if err := s.wcRepo.SaveWorkingCapitalEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save working capital entry", slog.String("kind", string(kind)))
		return nil, err
	}

	s.LogInfo(ctx, "Working capital entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("kind", string(kind)))
	return &entry, nil
}

func (s *workingCapitalService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateWorkingCapitalEntryRequest) error {
	current, err := s.wcRepo.FindWorkingCapitalEntryByID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find working capital entry", slog.String("entry_id", entryID))
		return err
	}
	entry := *current

	if req.EntryDate != nil {
		entryDate, err := time.Parse("2006-01-02", *req.EntryDate)
		if err != nil {
			return fmt.Errorf("%w: invalid entry date %q", apperrors.ErrValidation, *req.EntryDate)
		}
		entry.EntryDate = entryDate
	}
	if req.Amount != nil {
		entry.Amount = *req.Amount
	}
	if req.KindDetail != nil {
		entry.KindDetail = req.KindDetail
	}
	if req.NumberOfPieces != nil {
		entry.NumberOfPieces = req.NumberOfPieces
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}

	if err := s.wcRepo.UpdateWorkingCapitalEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to update working capital entry", slog.String("entry_id", entryID))
		return err
	}
	s.LogInfo(ctx, "Working capital entry updated", slog.String("entry_id", entryID))
	return nil
}

func (s *workingCapitalService) DeleteEntry(ctx context.Context, entryID string) error {
	if err := s.wcRepo.DeleteWorkingCapitalEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete working capital entry", slog.String("entry_id", entryID))
		return err
	}
	s.LogInfo(ctx, "Working capital entry deleted", slog.String("entry_id", entryID))
	return nil
}
