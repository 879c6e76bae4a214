package repositories

import (
	"context"

	"github.com/investia/investia_backend/internal/core/domain"
)

// WorkingCapitalReaderRepository defines read operations over working-capital
// rows.
//
// LoadWorkingCapital filters by kind and, when yearLabel is non-nil, by book
// year. Inventory rows are year-independent and must be fetched with a nil
// yearLabel.
type WorkingCapitalReaderRepository interface {
	LoadWorkingCapital(ctx context.Context, yearLabel *string, kind domain.WorkingCapitalKind) ([]domain.WorkingCapitalEntry, error)
	FindWorkingCapitalEntryByID(ctx context.Context, entryID string) (*domain.WorkingCapitalEntry, error)
}

// WorkingCapitalWriterRepository defines write operations over working-capital
// rows.
type WorkingCapitalWriterRepository interface {
	SaveWorkingCapitalEntry(ctx context.Context, entry domain.WorkingCapitalEntry) error
	UpdateWorkingCapitalEntry(ctx context.Context, entry domain.WorkingCapitalEntry) error
	DeleteWorkingCapitalEntry(ctx context.Context, entryID string) error
}

// WorkingCapitalRepositoryFacade combines working-capital read and write
// operations.
type WorkingCapitalRepositoryFacade interface {
	WorkingCapitalReaderRepository
	WorkingCapitalWriterRepository
}
