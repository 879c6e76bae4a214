package services

import (
	portsrepo "github.com/investia/investia_backend/internal/core/ports/repositories"
	portssvc "github.com/investia/investia_backend/internal/core/ports/services"
	"github.com/investia/investia_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Budget = NewBudgetService(repos.BudgetRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.WorkingCapital = NewWorkingCapitalService(repos.WorkingCapitalRepo)

	// The metrics engine only reads; it shares the repositories with the CRUD
	// services so both always see the same store.
	container.Metrics = NewMetricsService(repos.BudgetRepo, repos.TransactionRepo, repos.WorkingCapitalRepo)

	container.Auth = NewAuthService(cfg)

	return container
}
