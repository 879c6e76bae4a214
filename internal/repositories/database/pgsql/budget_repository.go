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
	"github.com/shopspring/decimal"
)

// budgetRepository implements the BudgetRepositoryFacade interface
type budgetRepository struct {
	BaseRepository
}

func newBudgetRepository(db *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &budgetRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

func (r *budgetRepository) ListBudgetYears(ctx context.Context) ([]domain.BudgetYear, error) {
	query := `
		SELECT year_label, COALESCE(opening_cash, 0), COALESCE(savings_target, 0), sort_order
		FROM budget_years
		ORDER BY sort_order, year_label
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying budget years: %w", err)
	}
	defer rows.Close()

	result := []domain.BudgetYear{}
	for rows.Next() {
		var year domain.BudgetYear
		if err := rows.Scan(&year.YearLabel, &year.OpeningCash, &year.SavingsTarget, &year.SortOrder); err != nil {
			return nil, fmt.Errorf("error scanning budget year row: %w", err)
		}
		result = append(result, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget year rows: %w", err)
	}

	return result, nil
}

// GetOpeningCash returns zero for unknown years: "no data yet" is a normal
// state for the metrics engine, not an error.
func (r *budgetRepository) GetOpeningCash(ctx context.Context, yearLabel string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(opening_cash, 0) FROM budget_years WHERE year_label = $1`

	var openingCash decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, yearLabel).Scan(&openingCash)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("error querying opening cash: %w", err)
	}
	return openingCash, nil
}

// GetSavingsTarget returns zero for unknown years, mirroring GetOpeningCash.
func (r *budgetRepository) GetSavingsTarget(ctx context.Context, yearLabel string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(savings_target, 0) FROM budget_years WHERE year_label = $1`

	var savings decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, yearLabel).Scan(&savings)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("error querying savings target: %w", err)
	}
	return savings, nil
}

func (r *budgetRepository) FetchBudgetEntries(ctx context.Context, yearLabel string) ([]domain.BudgetEntry, error) {
	query := `
		SELECT entry_id, year_label, category_name, budget_type, COALESCE(budget, 0)
		FROM budget_entries
		WHERE year_label = $1
		ORDER BY category_name
	`
	return r.queryBudgetEntries(ctx, query, yearLabel)
}

func (r *budgetRepository) FetchBudgetEntriesForType(ctx context.Context, yearLabel string, budgetType domain.BudgetType) ([]domain.BudgetEntry, error) {
	query := `
		SELECT entry_id, year_label, category_name, budget_type, COALESCE(budget, 0)
		FROM budget_entries
		WHERE year_label = $1 AND budget_type = $2
		ORDER BY category_name
	`
	return r.queryBudgetEntries(ctx, query, yearLabel, string(budgetType))
}

func (r *budgetRepository) queryBudgetEntries(ctx context.Context, query string, args ...any) ([]domain.BudgetEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying budget entries: %w", err)
	}
	defer rows.Close()

	result := []domain.BudgetEntry{}
	for rows.Next() {
		var entry domain.BudgetEntry
		var budgetType string
		if err := rows.Scan(&entry.EntryID, &entry.YearLabel, &entry.CategoryName, &budgetType, &entry.Budget); err != nil {
			return nil, fmt.Errorf("error scanning budget entry row: %w", err)
		}
		entry.BudgetType = domain.BudgetType(budgetType)
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget entry rows: %w", err)
	}

	return result, nil
}

func (r *budgetRepository) FindBudgetEntryByID(ctx context.Context, entryID string) (*domain.BudgetEntry, error) {
	query := `
		SELECT entry_id, year_label, category_name, budget_type, COALESCE(budget, 0)
		FROM budget_entries
		WHERE entry_id = $1
	`

	var entry domain.BudgetEntry
	var budgetType string
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(&entry.EntryID, &entry.YearLabel, &entry.CategoryName, &budgetType, &entry.Budget)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying budget entry: %w", err)
	}
	entry.BudgetType = domain.BudgetType(budgetType)
	return &entry, nil
}

func (r *budgetRepository) SaveBudgetYear(ctx context.Context, year domain.BudgetYear) error {
	query := `
		INSERT INTO budget_years (year_label, opening_cash, savings_target, sort_order)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.Pool.Exec(ctx, query, year.YearLabel, year.OpeningCash, year.SavingsTarget, year.SortOrder)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("budget year %q: %w", year.YearLabel, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("error inserting budget year: %w", err)
	}
	return nil
}

func (r *budgetRepository) UpdateOpeningCash(ctx context.Context, yearLabel string, openingCash decimal.Decimal) error {
	query := `UPDATE budget_years SET opening_cash = $2 WHERE year_label = $1`

	tag, err := r.Pool.Exec(ctx, query, yearLabel, openingCash)
	if err != nil {
		return fmt.Errorf("error updating opening cash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *budgetRepository) UpdateSavingsTarget(ctx context.Context, yearLabel string, savings decimal.Decimal) error {
	query := `UPDATE budget_years SET savings_target = $2 WHERE year_label = $1`

	tag, err := r.Pool.Exec(ctx, query, yearLabel, savings)
	if err != nil {
		return fmt.Errorf("error updating savings target: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *budgetRepository) SaveBudgetEntry(ctx context.Context, entry domain.BudgetEntry) error {
	query := `
		INSERT INTO budget_entries (entry_id, year_label, category_name, budget_type, budget)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.Pool.Exec(ctx, query, entry.EntryID, entry.YearLabel, entry.CategoryName, string(entry.BudgetType), entry.Budget)
	if err != nil {
		// One entry per (year, category, type); the unique index enforces it.
		if isUniqueViolation(err) {
			return fmt.Errorf("budget entry for %q/%q/%q: %w", entry.YearLabel, entry.CategoryName, entry.BudgetType, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("error inserting budget entry: %w", err)
	}
	return nil
}

func (r *budgetRepository) UpdateBudgetEntry(ctx context.Context, entry domain.BudgetEntry) error {
	query := `
		UPDATE budget_entries
		SET category_name = $2, budget_type = $3, budget = $4
		WHERE entry_id = $1
	`

	tag, err := r.Pool.Exec(ctx, query, entry.EntryID, entry.CategoryName, string(entry.BudgetType), entry.Budget)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("budget entry for %q/%q/%q: %w", entry.YearLabel, entry.CategoryName, entry.BudgetType, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("error updating budget entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *budgetRepository) DeleteBudgetEntry(ctx context.Context, entryID string) error {
	query := `DELETE FROM budget_entries WHERE entry_id = $1`

	tag, err := r.Pool.Exec(ctx, query, entryID)
	if err != nil {
		return fmt.Errorf("error deleting budget entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
