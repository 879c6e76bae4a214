package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UncategorizedName is the display name used for transactions whose category
// reference is missing or has been deleted.
const UncategorizedName = "Uncategorized"

// Category is a spending/income category transactions can be classified under.
type Category struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
}

// Transaction is a single cash movement within a budget year.
//
// Amount is always non-negative; the direction of the movement is carried by
// IsExpense (true = cash out, false = cash in). Signed amounts are always
// derived from IsExpense, never stored.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	YearLabel     string          `json:"yearLabel"`
	TxnDate       time.Time       `json:"txnDate"`
	Category      string          `json:"category"` // resolved display name, UncategorizedName when unset
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	IsExpense     bool            `json:"isExpense"`
}

// SignedFlow returns the transaction's contribution to the cash balance:
// negative for expenses, positive for income.
func (t Transaction) SignedFlow() decimal.Decimal {
	if t.IsExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// NetSpending returns the transaction's contribution to a category's net
// spending: positive for expenses, negative for income (a refund recorded
// against a category reduces its net spending).
func (t Transaction) NetSpending() decimal.Decimal {
	if t.IsExpense {
		return t.Amount
	}
	return t.Amount.Neg()
}
