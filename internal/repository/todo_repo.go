package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"todo_tracker/internal/models"
)

type TodoSQLite struct {
	db *sql.DB
}

func NewTodoSQLite(db *sql.DB) *TodoSQLite { return &TodoSQLite{db: db} }

var _ Todos = (*TodoSQLite)(nil)

const (
	insertTodoSQL = `
		INSERT INTO todos (id, user_id, title, description, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	selectTodoSQL = `
		SELECT id, user_id, title, description, completed, created_at, updated_at
		FROM todos WHERE id = ? AND user_id = ?
	`

	updateTodoSQL = `
		UPDATE todos SET title = ?, description = ?, completed = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	deleteTodoSQL = `DELETE FROM todos WHERE id = ? AND user_id = ?`
)

// Create inserts a new todo. ID and timestamps are expected to be set by the
// caller; timestamps are persisted as UTC.
func (r *TodoSQLite) Create(ctx context.Context, t models.Todo) error {
	_, err := r.db.ExecContext(ctx, insertTodoSQL,
		t.ID,
		t.UserID,
		t.Title,
		t.Description,
		t.Completed,
		t.CreatedAt.UTC(),
		t.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert todo %q: %w", t.ID, err)
	}
	return nil
}

// ListByUser returns the user's todos, newest first. When completed is
// non-nil the list is filtered on that flag.
func (r *TodoSQLite) ListByUser(ctx context.Context, userID int, completed *bool) ([]models.Todo, error) {
	q := `SELECT id, user_id, title, description, completed, created_at, updated_at
		FROM todos WHERE user_id = ?`
	args := []any{userID}

	if completed != nil {
		q += " AND completed = ?"
		args = append(args, *completed)
	}
	q += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list todos for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Todo, 0, 16)
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.CreatedAt = t.CreatedAt.UTC()
		t.UpdatedAt = t.UpdatedAt.UTC()
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one todo scoped to its owner. Returns ErrTodoNotFound for
// an unknown id or an id owned by someone else.
func (r *TodoSQLite) GetByID(ctx context.Context, userID int, id string) (*models.Todo, error) {
	var t models.Todo
	err := r.db.QueryRowContext(ctx, selectTodoSQL, id, userID).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("select todo %q: %w", id, err)
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return &t, nil
}

// Update rewrites the mutable columns of an owned todo.
func (r *TodoSQLite) Update(ctx context.Context, t models.Todo) error {
	ts := t.UpdatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	res, err := r.db.ExecContext(ctx, updateTodoSQL,
		t.Title,
		t.Description,
		t.Completed,
		ts,
		t.ID,
		t.UserID,
	)
	if err != nil {
		return fmt.Errorf("update todo %q: %w", t.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for todo %q: %w", t.ID, err)
	}
	if n == 0 {
		return ErrTodoNotFound
	}
	return nil
}

// Delete removes an owned todo.
func (r *TodoSQLite) Delete(ctx context.Context, userID int, id string) error {
	res, err := r.db.ExecContext(ctx, deleteTodoSQL, id, userID)
	if err != nil {
		return fmt.Errorf("delete todo %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for todo %q: %w", id, err)
	}
	if n == 0 {
		return ErrTodoNotFound
	}
	return nil
}
