// Package service defines the contracts between the ledger's components.
package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgie-cli/budgie/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Limit     int
}

// Storage defines the contract for the persistence layer. Operations with
// more than one effect (category deletion, goal transfers) are atomic: either
// every effect lands or none does.
type Storage interface {
	// Transaction operations
	SaveTransaction(ctx context.Context, txn *model.Transaction) error
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	GetTransactionByID(ctx context.Context, id int64) (*model.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error

	// Category operations
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	// DeleteCategory removes the category and reassigns every referencing
	// transaction to "Uncategorized" in a single database transaction.
	DeleteCategory(ctx context.Context, name string) error

	// Recurring template operations
	GetTemplates(ctx context.Context) ([]model.RecurringTemplate, error)
	GetTemplateByID(ctx context.Context, id int64) (*model.RecurringTemplate, error)
	CreateTemplate(ctx context.Context, tpl *model.RecurringTemplate) error
	UpdateTemplate(ctx context.Context, tpl *model.RecurringTemplate) error
	DeleteTemplate(ctx context.Context, id int64) error

	// Savings goal operations
	GetGoal(ctx context.Context) (*model.SavingsGoal, error)
	SetGoalTarget(ctx context.Context, target decimal.Decimal) error
	// TransferToGoal increases the saved amount and records the matching
	// "Savings Transfer" expense transaction atomically.
	TransferToGoal(ctx context.Context, amount decimal.Decimal, date time.Time) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
