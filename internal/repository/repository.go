package repository

import (
	"context"
	"database/sql"
	"errors"

	"todo_tracker/internal/models"
)

// ErrDuplicateUsername is returned by Users.Create when the username is
// already taken. It is derived from the UNIQUE index violation so concurrent
// registrations cannot both succeed.
var ErrDuplicateUsername = errors.New("username already taken")

// ErrTodoNotFound is returned when a todo id does not exist for the given
// owner. A todo belonging to a different user is indistinguishable from a
// missing one.
var ErrTodoNotFound = errors.New("todo not found")

type Users interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

type Todos interface {
	Create(ctx context.Context, t models.Todo) error
	ListByUser(ctx context.Context, userID int, completed *bool) ([]models.Todo, error)
	GetByID(ctx context.Context, userID int, id string) (*models.Todo, error)
	Update(ctx context.Context, t models.Todo) error
	Delete(ctx context.Context, userID int, id string) error
}

type Repository struct {
	Users Users
	Todos Todos
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
		Todos: NewTodoSQLite(db),
	}
}
