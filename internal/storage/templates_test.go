package storage

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgie-cli/budgie/internal/model"
)

func TestCreateTemplate(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	tpl := model.RecurringTemplate{
		Name: "Rent", Amount: decimal.NewFromInt(800), Category: "Housing", DueDay: 28,
	}
	require.NoError(t, store.CreateTemplate(ctx, &tpl))
	assert.NotZero(t, tpl.ID)

	got, err := store.GetTemplateByID(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rent", got.Name)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(800)))
	assert.Equal(t, 28, got.DueDay)
}

func TestCreateTemplateValidation(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	tests := []struct {
		name    string
		tpl     model.RecurringTemplate
		wantErr error
	}{
		{
			name:    "missing name",
			tpl:     model.RecurringTemplate{Amount: decimal.NewFromInt(10), Category: "Bills", DueDay: 5},
			wantErr: ErrEmptyString,
		},
		{
			name:    "zero amount",
			tpl:     model.RecurringTemplate{Name: "X", Category: "Bills", DueDay: 5},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "due day too low",
			tpl:     model.RecurringTemplate{Name: "X", Amount: decimal.NewFromInt(10), Category: "Bills", DueDay: 0},
			wantErr: ErrInvalidDueDay,
		},
		{
			name:    "due day too high",
			tpl:     model.RecurringTemplate{Name: "X", Amount: decimal.NewFromInt(10), Category: "Bills", DueDay: 32},
			wantErr: ErrInvalidDueDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.CreateTemplate(ctx, &tt.tpl)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateTemplateDuplicateName(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	tpl := model.RecurringTemplate{
		Name: "Netflix", Amount: decimal.NewFromFloat(9.99), Category: "Subscriptions", DueDay: 3,
	}
	require.NoError(t, store.CreateTemplate(ctx, &tpl))

	dup := model.RecurringTemplate{
		Name: "Netflix", Amount: decimal.NewFromFloat(12.99), Category: "Subscriptions", DueDay: 4,
	}
	err := store.CreateTemplate(ctx, &dup)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestUpdateTemplate(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	tpl := model.RecurringTemplate{
		Name: "Gym", Amount: decimal.NewFromInt(25), Category: "Health", DueDay: 1,
	}
	require.NoError(t, store.CreateTemplate(ctx, &tpl))

	tpl.Amount = decimal.NewFromInt(30)
	tpl.DueDay = 15
	require.NoError(t, store.UpdateTemplate(ctx, &tpl))

	got, err := store.GetTemplateByID(ctx, tpl.ID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 15, got.DueDay)

	missing := model.RecurringTemplate{
		ID: 9999, Name: "Ghost", Amount: decimal.NewFromInt(1), Category: "X", DueDay: 1,
	}
	assert.ErrorIs(t, store.UpdateTemplate(ctx, &missing), ErrNotFound)
}

func TestDeleteTemplate(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	tpl := model.RecurringTemplate{
		Name: "Gym", Amount: decimal.NewFromInt(25), Category: "Health", DueDay: 1,
	}
	require.NoError(t, store.CreateTemplate(ctx, &tpl))

	require.NoError(t, store.DeleteTemplate(ctx, tpl.ID))

	_, err := store.GetTemplateByID(ctx, tpl.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.DeleteTemplate(ctx, tpl.ID), ErrNotFound)
}

func TestGetTemplatesOrder(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	for _, tpl := range []model.RecurringTemplate{
		{Name: "Rent", Amount: decimal.NewFromInt(800), Category: "Housing", DueDay: 28},
		{Name: "Netflix", Amount: decimal.NewFromFloat(9.99), Category: "Subscriptions", DueDay: 3},
	} {
		tpl := tpl
		require.NoError(t, store.CreateTemplate(ctx, &tpl))
	}

	templates, err := store.GetTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, "Netflix", templates[0].Name)
	assert.Equal(t, "Rent", templates[1].Name)
}
