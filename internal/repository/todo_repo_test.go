package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"todo_tracker/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockTodoRepo(t *testing.T) (*TodoSQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewTodoSQLite(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func sampleTodo() models.Todo {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	return models.Todo{
		ID:          "t-1",
		UserID:      7,
		Title:       "buy milk",
		Description: "2 liters",
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestTodoSQLite_Create(t *testing.T) {
	repo, mock, cleanup := newMockTodoRepo(t)
	defer cleanup()

	td := sampleTodo()
	mock.ExpectExec(regexp.QuoteMeta(insertTodoSQL)).
		WithArgs(td.ID, td.UserID, td.Title, td.Description, td.Completed, td.CreatedAt, td.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), td); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
}

func TestTodoSQLite_ListByUser(t *testing.T) {
	todoColumns := []string{"id", "user_id", "title", "description", "completed", "created_at", "updated_at"}

	t.Run("all todos for user", func(t *testing.T) {
		repo, mock, cleanup := newMockTodoRepo(t)
		defer cleanup()

		td := sampleTodo()
		rows := sqlmock.NewRows(todoColumns).
			AddRow(td.ID, td.UserID, td.Title, td.Description, td.Completed, td.CreatedAt, td.UpdatedAt)
		mock.ExpectQuery("SELECT .+ FROM todos WHERE user_id = \\?").
			WithArgs(7).
			WillReturnRows(rows)

		got, err := repo.ListByUser(context.Background(), 7, nil)
		if err != nil {
			t.Fatalf("ListByUser returned error: %v", err)
		}
		if len(got) != 1 || got[0].ID != td.ID || got[0].Title != td.Title {
			t.Fatalf("unexpected todos: %+v", got)
		}
	})

	t.Run("completed filter adds predicate", func(t *testing.T) {
		repo, mock, cleanup := newMockTodoRepo(t)
		defer cleanup()

		mock.ExpectQuery("SELECT .+ FROM todos WHERE user_id = \\? AND completed = \\?").
			WithArgs(7, true).
			WillReturnRows(sqlmock.NewRows(todoColumns))

		done := true
		got, err := repo.ListByUser(context.Background(), 7, &done)
		if err != nil {
			t.Fatalf("ListByUser returned error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty list, got %+v", got)
		}
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock, cleanup := newMockTodoRepo(t)
		defer cleanup()

		mock.ExpectQuery("SELECT .+ FROM todos WHERE user_id = \\?").
			WithArgs(7).
			WillReturnError(errors.New("db query failed"))

		if _, err := repo.ListByUser(context.Background(), 7, nil); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
}

func TestTodoSQLite_GetByID(t *testing.T) {
	t.Run("found for owner", func(t *testing.T) {
		repo, mock, cleanup := newMockTodoRepo(t)
		defer cleanup()

		td := sampleTodo()
		rows := sqlmock.NewRows([]string{"id", "user_id", "title", "description", "completed", "created_at", "updated_at"}).
			AddRow(td.ID, td.UserID, td.Title, td.Description, td.Completed, td.CreatedAt, td.UpdatedAt)
		mock.ExpectQuery(regexp.QuoteMeta(selectTodoSQL)).
			WithArgs(td.ID, td.UserID).
			WillReturnRows(rows)

		got, err := repo.GetByID(context.Background(), td.UserID, td.ID)
		if err != nil {
			t.Fatalf("GetByID returned error: %v", err)
		}
		if got.ID != td.ID || got.UserID != td.UserID {
			t.Fatalf("unexpected todo: %+v", got)
		}
	})

	t.Run("missing maps to not found", func(t *testing.T) {
		repo, mock, cleanup := newMockTodoRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectTodoSQL)).
			WithArgs("nope", 7).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "description", "completed", "created_at", "updated_at"}))

		if _, err := repo.GetByID(context.Background(), 7, "nope"); !errors.Is(err, ErrTodoNotFound) {
			t.Fatalf("expected ErrTodoNotFound, got: %v", err)
		}
	})
}

func TestTodoSQLite_Update(t *testing.T) {
	t.Run("owned row updated", func(t *testing.T) {
		repo, mock, cleanup := newMockTodoRepo(t)
		defer cleanup()

		td := sampleTodo()
		mock.ExpectExec(regexp.QuoteMeta(updateTodoSQL)).
			WithArgs(td.Title, td.Description, td.Completed, td.UpdatedAt, td.ID, td.UserID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.Update(context.Background(), td); err != nil {
			t.Fatalf("Update returned error: %v", err)
		}
	})

	t.Run("no matching row is not found", func(t *testing.T) {
		repo, mock, cleanup := newMockTodoRepo(t)
		defer cleanup()

		td := sampleTodo()
		mock.ExpectExec(regexp.QuoteMeta(updateTodoSQL)).
			WithArgs(td.Title, td.Description, td.Completed, td.UpdatedAt, td.ID, td.UserID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		if err := repo.Update(context.Background(), td); !errors.Is(err, ErrTodoNotFound) {
			t.Fatalf("expected ErrTodoNotFound, got: %v", err)
		}
	})
}

func TestTodoSQLite_Delete(t *testing.T) {
	t.Run("owned row deleted", func(t *testing.T) {
		repo, mock, cleanup := newMockTodoRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteTodoSQL)).
			WithArgs("t-1", 7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.Delete(context.Background(), 7, "t-1"); err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
	})

	t.Run("foreign or missing row is not found", func(t *testing.T) {
		repo, mock, cleanup := newMockTodoRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteTodoSQL)).
			WithArgs("t-1", 8).
			WillReturnResult(sqlmock.NewResult(0, 0))

		if err := repo.Delete(context.Background(), 8, "t-1"); !errors.Is(err, ErrTodoNotFound) {
			t.Fatalf("expected ErrTodoNotFound, got: %v", err)
		}
	})
}
