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

// transactionRepository implements the TransactionRepositoryFacade interface
type transactionRepository struct {
	BaseRepository
}

func newTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &transactionRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// transactionSelect resolves the category reference to its display name at
// query time. A missing or deleted category falls back to 'Uncategorized' so
// the transaction still shows up in every downstream aggregation.
const transactionSelect = `
	SELECT t.transaction_id, t.year_label, t.txn_date,
	       COALESCE(c.name, 'Uncategorized'),
	       COALESCE(t.description, ''),
	       COALESCE(t.amount, 0),
	       t.is_expense
	FROM transactions t
	LEFT JOIN categories c ON c.category_id = t.category_id
`

func (r *transactionRepository) FetchTransactionsWithCategories(ctx context.Context, yearLabel string) ([]domain.Transaction, error) {
	query := transactionSelect + `
		WHERE t.year_label = $1
		ORDER BY t.txn_date, t.transaction_id
	`

	rows, err := r.Pool.Query(ctx, query, yearLabel)
	if err != nil {
		return nil, fmt.Errorf("error querying transactions: %w", err)
	}
	defer rows.Close()

	result := []domain.Transaction{}
	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(&txn.TransactionID, &txn.YearLabel, &txn.TxnDate, &txn.Category, &txn.Description, &txn.Amount, &txn.IsExpense); err != nil {
			return nil, fmt.Errorf("error scanning transaction row: %w", err)
		}
		result = append(result, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return result, nil
}

func (r *transactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := transactionSelect + ` WHERE t.transaction_id = $1`

	var txn domain.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).
		Scan(&txn.TransactionID, &txn.YearLabel, &txn.TxnDate, &txn.Category, &txn.Description, &txn.Amount, &txn.IsExpense)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying transaction: %w", err)
	}
	return &txn, nil
}

func (r *transactionRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT category_id, name FROM categories ORDER BY name`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying categories: %w", err)
	}
	defer rows.Close()

	result := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.CategoryID, &category.Name); err != nil {
			return nil, fmt.Errorf("error scanning category row: %w", err)
		}
		result = append(result, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return result, nil
}

func (r *transactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, categoryID *string) error {
	query := `
		INSERT INTO transactions (transaction_id, year_label, txn_date, category_id, description, amount, is_expense)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.Pool.Exec(ctx, query, txn.TransactionID, txn.YearLabel, txn.TxnDate, categoryID, txn.Description, txn.Amount, txn.IsExpense)
	if err != nil {
		return fmt.Errorf("error inserting transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, categoryID *string) error {
	query := `
		UPDATE transactions
		SET year_label = $2, txn_date = $3, category_id = $4, description = $5, amount = $6, is_expense = $7
		WHERE transaction_id = $1
	`

	tag, err := r.Pool.Exec(ctx, query, txn.TransactionID, txn.YearLabel, txn.TxnDate, categoryID, txn.Description, txn.Amount, txn.IsExpense)
	if err != nil {
		return fmt.Errorf("error updating transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *transactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1`

	tag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("error deleting transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *transactionRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `INSERT INTO categories (category_id, name) VALUES ($1, $2)`

	_, err := r.Pool.Exec(ctx, query, category.CategoryID, category.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("category %q: %w", category.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("error inserting category: %w", err)
	}
	return nil
}
