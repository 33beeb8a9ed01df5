package recurrence

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgie-cli/budgie/internal/model"
	"github.com/budgie-cli/budgie/internal/service"
	"github.com/budgie-cli/budgie/internal/storage"
)

func newTestStore(t *testing.T) *storage.SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestRunnerAppliesOncePerMonth(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	today := time.Date(2024, time.April, 12, 0, 0, 0, 0, time.UTC)

	tpl := model.RecurringTemplate{
		Name:     "Broadband",
		Amount:   decimal.NewFromFloat(35.50),
		Category: "Utilities",
		DueDay:   10,
	}
	require.NoError(t, store.CreateTemplate(ctx, &tpl))

	runner := NewRunner(store)

	applied, err := runner.Run(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	// Second run within the same day must not double-apply.
	applied, err = runner.Run(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 0, applied)

	transactions, err := store.GetTransactions(ctx, service.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, model.KindExpense, transactions[0].Kind)
	assert.True(t, transactions[0].Amount.Equal(tpl.Amount))
	require.NotNil(t, transactions[0].TemplateID)
	assert.Equal(t, tpl.ID, *transactions[0].TemplateID)
}

func TestRunnerAppliesAgainNextMonth(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	tpl := model.RecurringTemplate{
		Name:     "Gym",
		Amount:   decimal.NewFromInt(25),
		Category: "Health",
		DueDay:   1,
	}
	require.NoError(t, store.CreateTemplate(ctx, &tpl))

	runner := NewRunner(store)

	applied, err := runner.Run(ctx, time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	applied, err = runner.Run(ctx, time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	transactions, err := store.GetTransactions(ctx, service.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, transactions, 2)
}

func TestRunnerNoTemplates(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	applied, err := NewRunner(store).Run(ctx, time.Date(2024, time.April, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, applied)
}
