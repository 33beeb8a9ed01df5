package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/budgie-cli/budgie/internal/model"
)

// GetTemplates returns all recurring templates ordered by due day.
func (s *SQLiteStorage) GetTemplates(ctx context.Context) ([]model.RecurringTemplate, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, amount, category, due_day, created_at
		FROM recurring_templates
		ORDER BY due_day, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var templates []model.RecurringTemplate
	for rows.Next() {
		var tpl model.RecurringTemplate
		if err := rows.Scan(&tpl.ID, &tpl.Name, &tpl.Amount, &tpl.Category,
			&tpl.DueDay, &tpl.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, tpl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating templates: %w", err)
	}

	return templates, nil
}

// GetTemplateByID returns a single template or ErrNotFound.
func (s *SQLiteStorage) GetTemplateByID(ctx context.Context, id int64) (*model.RecurringTemplate, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var tpl model.RecurringTemplate
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, amount, category, due_day, created_at
		FROM recurring_templates
		WHERE id = ?`, id).Scan(&tpl.ID, &tpl.Name, &tpl.Amount, &tpl.Category,
		&tpl.DueDay, &tpl.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: template %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query template: %w", err)
	}

	return &tpl, nil
}

// CreateTemplate inserts a new recurring template and fills in its ID.
// Template names are unique.
func (s *SQLiteStorage) CreateTemplate(ctx context.Context, tpl *model.RecurringTemplate) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTemplate(tpl); err != nil {
		return err
	}

	tpl.Name = strings.TrimSpace(tpl.Name)
	tpl.Category = strings.TrimSpace(tpl.Category)

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO recurring_templates (name, amount, category, due_day)
		VALUES (?, ?, ?, ?)`,
		tpl.Name, tpl.Amount, tpl.Category, tpl.DueDay)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return fmt.Errorf("%w: template %q", ErrDuplicateName, tpl.Name)
		}
		return fmt.Errorf("failed to create template: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get template ID: %w", err)
	}

	tpl.ID = id
	slog.Info("created recurring template", "name", tpl.Name, "due_day", tpl.DueDay)
	return nil
}

// UpdateTemplate updates an existing template by ID.
func (s *SQLiteStorage) UpdateTemplate(ctx context.Context, tpl *model.RecurringTemplate) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTemplate(tpl); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE recurring_templates
		SET name = ?, amount = ?, category = ?, due_day = ?
		WHERE id = ?`,
		tpl.Name, tpl.Amount, tpl.Category, tpl.DueDay, tpl.ID)
	if err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: template %d", ErrNotFound, tpl.ID)
	}

	slog.Info("updated recurring template", "id", tpl.ID, "name", tpl.Name)
	return nil
}

// DeleteTemplate removes a template by ID. Transactions it generated keep
// their link for history but are otherwise untouched.
func (s *SQLiteStorage) DeleteTemplate(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM recurring_templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: template %d", ErrNotFound, id)
	}

	slog.Info("deleted recurring template", "id", id)
	return nil
}
