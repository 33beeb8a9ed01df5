package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgie-cli/budgie/internal/model"
)

// GetGoal returns the singleton savings goal. A zero target means no goal
// has been set yet.
func (s *SQLiteStorage) GetGoal(ctx context.Context) (*model.SavingsGoal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var goal model.SavingsGoal
	err := s.db.QueryRowContext(ctx,
		`SELECT target, saved FROM savings_goal WHERE id = 1`).Scan(&goal.Target, &goal.Saved)
	if err != nil {
		return nil, fmt.Errorf("failed to query savings goal: %w", err)
	}

	return &goal, nil
}

// SetGoalTarget sets or updates the goal target, preserving the saved amount.
func (s *SQLiteStorage) SetGoalTarget(ctx context.Context, target decimal.Decimal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if !target.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, target)
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE savings_goal SET target = ?, updated_at = CURRENT_TIMESTAMP WHERE id = 1`,
		target); err != nil {
		return fmt.Errorf("failed to set goal target: %w", err)
	}

	slog.Info("savings goal target set", "target", target)
	return nil
}

// TransferToGoal moves money into savings: it increases the saved amount and
// records an expense transaction of the same amount under "Savings Transfer"
// in one database transaction. The transfer is a reclassification of existing
// balance, not free money, so the ledger's net balance drops by the amount.
func (s *SQLiteStorage) TransferToGoal(ctx context.Context, amount decimal.Decimal, date time.Time) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}

	goal, err := s.GetGoal(ctx)
	if err != nil {
		return err
	}
	if !goal.IsSet() {
		return ErrNoGoal
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	newSaved := goal.Saved.Add(amount)
	if _, err := tx.ExecContext(ctx,
		`UPDATE savings_goal SET saved = ?, updated_at = CURRENT_TIMESTAMP WHERE id = 1`,
		newSaved); err != nil {
		return fmt.Errorf("failed to update saved amount: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO transactions (kind, amount, category, description, date)
		VALUES (?, ?, ?, ?, ?)`,
		string(model.KindExpense), amount, model.SavingsTransferCategory,
		"Transfer to savings goal", date); err != nil {
		return fmt.Errorf("failed to record transfer transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit savings transfer: %w", err)
	}

	slog.Info("transferred to savings goal", "amount", amount, "saved", newSaved)
	return nil
}
