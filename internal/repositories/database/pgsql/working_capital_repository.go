package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/investia/investia_backend/internal/apperrors"
	"github.com/investia/investia_backend/internal/core/domain"
	portsrepo "github.com/investia/investia_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// workingCapitalRepository implements the WorkingCapitalRepositoryFacade interface
type workingCapitalRepository struct {
	BaseRepository
}

func newWorkingCapitalRepository(db *pgxpool.Pool) portsrepo.WorkingCapitalRepositoryFacade {
	return &workingCapitalRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const workingCapitalSelect = `
	SELECT entry_id, book_year_label, kind, kind_detail,
	       COALESCE(amount, 0), entry_date, number_of_pieces,
	       COALESCE(description, '')
	FROM working_capital_entries
`

func (r *workingCapitalRepository) LoadWorkingCapital(ctx context.Context, yearLabel *string, kind domain.WorkingCapitalKind) ([]domain.WorkingCapitalEntry, error) {
	query := workingCapitalSelect + ` WHERE kind = $1`
	args := []any{string(kind)}

	// Inventory is queried with a nil yearLabel; AR/AP are scoped to a book year.
	if yearLabel != nil {
		query += ` AND book_year_label = $2`
		args = append(args, *yearLabel)
	}
	query += ` ORDER BY entry_date, entry_id`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying working capital entries: %w", err)
	}
	defer rows.Close()

	result := []domain.WorkingCapitalEntry{}
	for rows.Next() {
		entry, err := scanWorkingCapitalEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating working capital rows: %w", err)
	}

	return result, nil
}

func (r *workingCapitalRepository) FindWorkingCapitalEntryByID(ctx context.Context, entryID string) (*domain.WorkingCapitalEntry, error) {
	query := workingCapitalSelect + ` WHERE entry_id = $1`

	row := r.Pool.QueryRow(ctx, query, entryID)
	entry, err := scanWorkingCapitalEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func scanWorkingCapitalEntry(row pgx.Row) (domain.WorkingCapitalEntry, error) {
	var entry domain.WorkingCapitalEntry
	var kind string
	err := row.Scan(&entry.EntryID, &entry.BookYearLabel, &kind, &entry.KindDetail, &entry.Amount, &entry.EntryDate, &entry.NumberOfPieces, &entry.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.WorkingCapitalEntry{}, err
	}
	if err != nil {
		return domain.WorkingCapitalEntry{}, fmt.Errorf("error scanning working capital row: %w", err)
	}
	entry.Kind = domain.WorkingCapitalKind(kind)
	return entry, nil
}

func (r *workingCapitalRepository) SaveWorkingCapitalEntry(ctx context.Context, entry domain.WorkingCapitalEntry) error {
	query := `
		INSERT INTO working_capital_entries (entry_id, book_year_label, kind, kind_detail, amount, entry_date, number_of_pieces, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.Pool.Exec(ctx, query, entry.EntryID, entry.BookYearLabel, string(entry.Kind), entry.KindDetail, entry.Amount, entry.EntryDate, entry.NumberOfPieces, entry.Description)
	if err != nil {
		return fmt.Errorf("error inserting working capital entry: %w", err)
	}
	return nil
}

func (r *workingCapitalRepository) UpdateWorkingCapitalEntry(ctx context.Context, entry domain.WorkingCapitalEntry) error {
	query := `
		UPDATE working_capital_entries
		SET book_year_label = $2, kind = $3, kind_detail = $4, amount = $5, entry_date = $6, number_of_pieces = $7, description = $8
		WHERE entry_id = $1
	`

	tag, err := r.Pool.Exec(ctx, query, entry.EntryID, entry.BookYearLabel, string(entry.Kind), entry.KindDetail, entry.Amount, entry.EntryDate, entry.NumberOfPieces, entry.Description)
	if err != nil {
		return fmt.Errorf("error updating working capital entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *workingCapitalRepository) DeleteWorkingCapitalEntry(ctx context.Context, entryID string) error {
	query := `DELETE FROM working_capital_entries WHERE entry_id = $1`

	tag, err := r.Pool.Exec(ctx, query, entryID)
	if err != nil {
		return fmt.Errorf("error deleting working capital entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
