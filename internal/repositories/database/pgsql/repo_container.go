package pgsql

import (
	portsrepo "github.com/investia/investia_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the full set of PostgreSQL-backed repositories
// over a shared connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BudgetRepo:         newBudgetRepository(pool),
		TransactionRepo:    newTransactionRepository(pool),
		WorkingCapitalRepo: newWorkingCapitalRepository(pool),
	}
}
