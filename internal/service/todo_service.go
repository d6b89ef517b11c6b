package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"todo_tracker/internal/models"
	"todo_tracker/internal/repository"

	"github.com/google/uuid"
)

// ErrEmptyTitle is returned when a create or update would leave a todo with
// a blank title.
var ErrEmptyTitle = errors.New("title is required")

// TodoFilter narrows List results.
type TodoFilter struct {
	Completed *bool
}

// CreateTodoParams is the caller-supplied part of a new todo.
type CreateTodoParams struct {
	Title       string
	Description string
}

// UpdateTodoParams carries a partial update; nil fields are left unchanged.
type UpdateTodoParams struct {
	Title       *string
	Description *string
	Completed   *bool
}

type TodoService struct {
	todos repository.Todos
}

func NewTodoService(todos repository.Todos) *TodoService {
	return &TodoService{todos: todos}
}

func (s *TodoService) List(ctx context.Context, userID int, f TodoFilter) ([]models.Todo, error) {
	return s.todos.ListByUser(ctx, userID, f.Completed)
}

// Create validates the title, assigns an ID and timestamps, and persists the
// todo for the given owner.
func (s *TodoService) Create(ctx context.Context, userID int, p CreateTodoParams) (models.Todo, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return models.Todo{}, ErrEmptyTitle
	}

	now := time.Now().UTC()
	t := models.Todo{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(p.Description),
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.todos.Create(ctx, t); err != nil {
		return models.Todo{}, err
	}
	return t, nil
}

// Update loads the owned todo, applies the non-nil fields, and saves it.
// Unknown or foreign ids surface as repository.ErrTodoNotFound.
func (s *TodoService) Update(ctx context.Context, userID int, id string, p UpdateTodoParams) (models.Todo, error) {
	t, err := s.todos.GetByID(ctx, userID, id)
	if err != nil {
		return models.Todo{}, err
	}

	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return models.Todo{}, ErrEmptyTitle
		}
		t.Title = title
	}
	if p.Description != nil {
		t.Description = strings.TrimSpace(*p.Description)
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	t.UpdatedAt = time.Now().UTC()

	if err := s.todos.Update(ctx, *t); err != nil {
		return models.Todo{}, err
	}
	return *t, nil
}

func (s *TodoService) Delete(ctx context.Context, userID int, id string) error {
	return s.todos.Delete(ctx, userID, id)
}
