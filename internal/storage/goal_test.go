package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgie-cli/budgie/internal/model"
	"github.com/budgie-cli/budgie/internal/service"
)

func TestGoalDefaults(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	goal, err := store.GetGoal(ctx)
	require.NoError(t, err)
	assert.False(t, goal.IsSet())
	assert.True(t, goal.Saved.IsZero())
}

func TestSetGoalTarget(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SetGoalTarget(ctx, decimal.NewFromInt(5000)))

	goal, err := store.GetGoal(ctx)
	require.NoError(t, err)
	assert.True(t, goal.IsSet())
	assert.True(t, goal.Target.Equal(decimal.NewFromInt(5000)))

	// Updating the target preserves the saved amount.
	require.NoError(t, store.TransferToGoal(ctx, decimal.NewFromInt(200), time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, store.SetGoalTarget(ctx, decimal.NewFromInt(6000)))

	goal, err = store.GetGoal(ctx)
	require.NoError(t, err)
	assert.True(t, goal.Target.Equal(decimal.NewFromInt(6000)))
	assert.True(t, goal.Saved.Equal(decimal.NewFromInt(200)))

	assert.ErrorIs(t, store.SetGoalTarget(ctx, decimal.Zero), ErrInvalidAmount)
}

func TestTransferToGoal(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	// Seed some income so there is a balance to reclassify.
	income := model.Transaction{
		Kind: model.KindIncome, Amount: decimal.NewFromInt(1000),
		Category: "Salary", Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.SaveTransaction(ctx, &income))

	require.NoError(t, store.SetGoalTarget(ctx, decimal.NewFromInt(5000)))
	require.NoError(t, store.TransferToGoal(ctx, decimal.NewFromInt(150), day))

	// Saved amount grew by the transfer.
	goal, err := store.GetGoal(ctx)
	require.NoError(t, err)
	assert.True(t, goal.Saved.Equal(decimal.NewFromInt(150)))

	// Exactly one matching expense transaction was recorded.
	transfers, err := store.GetTransactions(ctx, service.TransactionFilter{Category: model.SavingsTransferCategory})
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	assert.Equal(t, model.KindExpense, transfers[0].Kind)
	assert.True(t, transfers[0].Amount.Equal(decimal.NewFromInt(150)))
	assert.True(t, transfers[0].SameDay(day))

	// Net balance dropped by the transferred amount.
	all, err := store.GetTransactions(ctx, service.TransactionFilter{})
	require.NoError(t, err)
	net := decimal.Zero
	for i := range all {
		net = net.Add(all[i].Signed())
	}
	assert.True(t, net.Equal(decimal.NewFromInt(850)))
}

func TestTransferToGoalRequiresGoal(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.TransferToGoal(ctx, decimal.NewFromInt(50), time.Now())
	assert.ErrorIs(t, err, ErrNoGoal)

	// Nothing was recorded.
	transactions, err := store.GetTransactions(ctx, service.TransactionFilter{})
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestTransferToGoalValidation(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SetGoalTarget(ctx, decimal.NewFromInt(1000)))

	err := store.TransferToGoal(ctx, decimal.NewFromInt(-5), time.Now())
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
