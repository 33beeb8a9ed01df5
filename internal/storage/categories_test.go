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

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	cat, err := store.CreateCategory(ctx, "Transport")
	require.NoError(t, err)
	assert.Equal(t, "Transport", cat.Name)
	assert.NotZero(t, cat.ID)

	// Creating the same category again returns the existing row.
	again, err := store.CreateCategory(ctx, "Transport")
	require.NoError(t, err)
	assert.Equal(t, cat.ID, again.ID)

	_, err = store.CreateCategory(ctx, "   ")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestReservedCategoriesSeeded(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	for _, name := range []string{model.UncategorizedName, model.SavingsTransferCategory} {
		cat, err := store.GetCategoryByName(ctx, name)
		require.NoError(t, err)
		require.NotNil(t, cat, "expected %q to be seeded", name)
		assert.True(t, cat.Reserved())
	}
}

func TestDeleteCategoryCascade(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	seed := []model.Transaction{
		{Kind: model.KindExpense, Amount: decimal.NewFromInt(12), Category: "Coffee", Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{Kind: model.KindExpense, Amount: decimal.NewFromInt(8), Category: "Coffee", Date: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)},
		{Kind: model.KindExpense, Amount: decimal.NewFromInt(30), Category: "Food", Date: time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)},
	}
	for i := range seed {
		require.NoError(t, store.SaveTransaction(ctx, &seed[i]))
	}

	require.NoError(t, store.DeleteCategory(ctx, "Coffee"))

	// The category is gone.
	cat, err := store.GetCategoryByName(ctx, "Coffee")
	require.NoError(t, err)
	assert.Nil(t, cat)

	// Every transaction that referenced it now reads "Uncategorized".
	reassigned, err := store.GetTransactions(ctx, service.TransactionFilter{Category: model.UncategorizedName})
	require.NoError(t, err)
	assert.Len(t, reassigned, 2)

	// Unrelated transactions are untouched.
	food, err := store.GetTransactions(ctx, service.TransactionFilter{Category: "Food"})
	require.NoError(t, err)
	assert.Len(t, food, 1)
}

func TestDeleteCategoryErrors(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.DeleteCategory(ctx, "DoesNotExist")
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.DeleteCategory(ctx, model.UncategorizedName)
	assert.ErrorIs(t, err, ErrReservedCategory)

	err = store.DeleteCategory(ctx, model.SavingsTransferCategory)
	assert.ErrorIs(t, err, ErrReservedCategory)
}

func TestGetCategories(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.CreateCategory(ctx, "Zoo")
	require.NoError(t, err)
	_, err = store.CreateCategory(ctx, "Art")
	require.NoError(t, err)

	categories, err := store.GetCategories(ctx)
	require.NoError(t, err)
	// Two seeded reserved categories plus the two created above, by name.
	require.Len(t, categories, 4)
	assert.Equal(t, "Art", categories[0].Name)
	assert.Equal(t, "Zoo", categories[3].Name)
}
