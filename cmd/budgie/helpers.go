package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/budgie-cli/budgie/internal/config"
	"github.com/budgie-cli/budgie/internal/recurrence"
	"github.com/budgie-cli/budgie/internal/service"
	"github.com/budgie-cli/budgie/internal/storage"
)

// userDateLayout is the format for user-entered dates.
const userDateLayout = "02-01-2006"

// session bundles the open store and the reference date for one invocation.
// It replaces any notion of global state: every command receives its
// dependencies through a session opened at start and closed at exit.
type session struct {
	store service.Storage
	today time.Time
}

// openSession initializes storage, resolves the reference date, and runs the
// recurrence engine once. Every command that touches ledger data goes through
// here, which is what guarantees the engine runs before anything else in the
// session. A store failure aborts the whole session.
func openSession(ctx context.Context) (*session, error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, err
	}

	today, err := referenceDate()
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	applied, err := recurrence.NewRunner(store).Run(ctx, today)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to apply recurring templates: %w", err)
	}
	if applied > 0 {
		slog.Info("recurring templates applied", "count", applied)
	}

	return &session{store: store, today: today}, nil
}

// Close releases the session's store handle.
func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		slog.Warn("failed to close storage", "error", err)
	}
}

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// referenceDate resolves the session's "today": the --date flag when given,
// otherwise the current system date, normalized to midnight UTC.
func referenceDate() (time.Time, error) {
	if flagDate != "" {
		return parseUserDate(flagDate)
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
}

// parseUserDate parses a DD-MM-YYYY date.
func parseUserDate(s string) (time.Time, error) {
	t, err := time.Parse(userDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected DD-MM-YYYY): %w", s, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// parseAmount parses a strictly positive decimal amount.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("amount must be positive, got %s", amount)
	}
	return amount, nil
}
