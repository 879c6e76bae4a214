package services

import (
	"context"

	"github.com/investia/investia_backend/internal/core/domain"
	"github.com/investia/investia_backend/internal/dto"
)

// WorkingCapitalSvcFacade manages AR/AP/inventory rows.
type WorkingCapitalSvcFacade interface {
	ListEntries(ctx context.Context, yearLabel *string, kind domain.WorkingCapitalKind) ([]domain.WorkingCapitalEntry, error)
	CreateEntry(ctx context.Context, req dto.CreateWorkingCapitalEntryRequest) (*domain.WorkingCapitalEntry, error)
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateWorkingCapitalEntryRequest) error
	DeleteEntry(ctx context.Context, entryID string) error
}
