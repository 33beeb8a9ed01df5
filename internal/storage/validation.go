// Package storage provides the SQLite persistence layer for the ledger.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/budgie-cli/budgie/internal/model"
)

// Validation and reference errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrNilParameter     = errors.New("parameter cannot be nil")
	ErrNotFound         = errors.New("record not found")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidKind      = errors.New("invalid transaction kind")
	ErrInvalidDueDay    = errors.New("due day must be between 1 and 31")
	ErrDuplicateName    = errors.New("name already exists")
	ErrReservedCategory = errors.New("category is reserved and cannot be deleted")
	ErrNoGoal           = errors.New("no savings goal is set")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransaction validates a transaction before it is persisted.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	switch txn.Kind {
	case model.KindIncome, model.KindExpense:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKind, txn.Kind)
	}
	if !txn.Amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, txn.Amount)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: transaction date", ErrNilParameter)
	}
	return nil
}

// validateTemplate validates a recurring template before it is persisted.
func validateTemplate(tpl *model.RecurringTemplate) error {
	if tpl == nil {
		return fmt.Errorf("%w: template", ErrNilParameter)
	}
	if err := validateString(tpl.Name, "template name"); err != nil {
		return err
	}
	if err := validateString(tpl.Category, "template category"); err != nil {
		return err
	}
	if !tpl.Amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, tpl.Amount)
	}
	if tpl.DueDay < 1 || tpl.DueDay > 31 {
		return fmt.Errorf("%w: got %d", ErrInvalidDueDay, tpl.DueDay)
	}
	return nil
}
