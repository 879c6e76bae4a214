package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/investia/investia_backend/internal/apperrors"
	"github.com/investia/investia_backend/internal/core/domain"
	portsrepo "github.com/investia/investia_backend/internal/core/ports/repositories"
	portssvc "github.com/investia/investia_backend/internal/core/ports/services"
	"github.com/investia/investia_backend/internal/dto"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: repo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ListTransactions(ctx context.Context, yearLabel string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FetchTransactionsWithCategories(ctx, yearLabel)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions", slog.String("year_label", yearLabel))
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return txns, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txnDate, err := time.Parse("2006-01-02", req.TxnDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid transaction date %q", apperrors.ErrValidation, req.TxnDate)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		YearLabel:     req.YearLabel,
		TxnDate:       txnDate,
		Description:   req.Description,
		Amount:        req.Amount,
		IsExpense:     *req.IsExpense,
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn, req.CategoryID); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("year_label", req.YearLabel))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("year_label", req.YearLabel),
		slog.Bool("is_expense", txn.IsExpense))
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) error {
	current, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		return err
	}
	txn := *current

	if req.TxnDate != nil {
		txnDate, err := time.Parse("2006-01-02", *req.TxnDate)
		if err != nil {
			return fmt.Errorf("%w: invalid transaction date %q", apperrors.ErrValidation, *req.TxnDate)
		}
		txn.TxnDate = txnDate
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.IsExpense != nil {
		txn.IsExpense = *req.IsExpense
	}

	if err := s.txnRepo.UpdateTransaction(ctx, txn, req.CategoryID); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return err
	}
	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.txnRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *transactionService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name must not be empty", apperrors.ErrValidation)
	}

	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       name,
	}
	if err := s.txnRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("name", name))
		return nil, err
	}
	s.LogInfo(ctx, "Category created", slog.String("name", name))
	return &category, nil
}
