// Package recurrence decides which recurring templates must generate a
// transaction and applies them at session start.
package recurrence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/budgie-cli/budgie/internal/model"
	"github.com/budgie-cli/budgie/internal/service"
)

// ApplyDueTemplates returns the transactions that must be created today:
// one expense per template whose due date this month has been reached and
// which has not generated a transaction yet this calendar month.
//
// A template's effective due date is its due day clamped to the actual month
// length, so due day 31 fires on the 30th of April and the 28th or 29th of
// February. "Due" means today is on or after that date — if the tool wasn't
// run on the due day itself, the template catches up on the next run within
// the same month.
//
// Whether a template already fired this month is read off the template link
// that generated transactions carry. A manual transaction with the same
// category and amount never suppresses an auto-apply.
//
// Pure function of its inputs; safe to call repeatedly.
func ApplyDueTemplates(today time.Time, templates []model.RecurringTemplate, existing []model.Transaction) []model.Transaction {
	applied := appliedTemplateIDs(today, existing)

	var out []model.Transaction
	for _, tpl := range templates {
		due := tpl.DueDateIn(today.Year(), today.Month())
		if today.Day() < due.Day() {
			continue
		}
		if applied[tpl.ID] {
			continue
		}

		id := tpl.ID
		out = append(out, model.Transaction{
			Kind:        model.KindExpense,
			Amount:      tpl.Amount,
			Category:    tpl.Category,
			Description: "Recurring: " + tpl.Name,
			Date:        time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC),
			TemplateID:  &id,
		})
	}
	return out
}

// appliedTemplateIDs collects the IDs of templates that already generated a
// transaction in today's calendar month.
func appliedTemplateIDs(today time.Time, transactions []model.Transaction) map[int64]bool {
	applied := make(map[int64]bool)
	for _, txn := range transactions {
		if txn.TemplateID == nil {
			continue
		}
		if txn.Date.Year() == today.Year() && txn.Date.Month() == today.Month() {
			applied[*txn.TemplateID] = true
		}
	}
	return applied
}

// Runner applies due templates against a store at session start.
type Runner struct {
	store service.Storage
}

// NewRunner creates a recurrence runner backed by the given store.
func NewRunner(store service.Storage) *Runner {
	return &Runner{store: store}
}

// Run loads templates and the current month's transactions, applies whatever
// is due, and writes the new transactions. It must be called exactly once
// before any other work in a session; a store error here is fatal for the
// session. Returns the number of transactions created.
func (r *Runner) Run(ctx context.Context, today time.Time) (int, error) {
	templates, err := r.store.GetTemplates(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load templates: %w", err)
	}
	if len(templates) == 0 {
		return 0, nil
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	existing, err := r.store.GetTransactions(ctx, service.TransactionFilter{
		StartDate: &monthStart,
		EndDate:   &today,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to load current month transactions: %w", err)
	}

	due := ApplyDueTemplates(today, templates, existing)
	for i := range due {
		if err := r.store.SaveTransaction(ctx, &due[i]); err != nil {
			return 0, fmt.Errorf("failed to apply template %q: %w", due[i].Description, err)
		}
		slog.Info("auto-applied recurring template",
			"description", due[i].Description,
			"amount", due[i].Amount,
			"date", due[i].Date.Format("2006-01-02"))
	}

	return len(due), nil
}
