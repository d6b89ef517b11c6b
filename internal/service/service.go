package service

import (
	"context"

	"todo_tracker/internal/models"
	"todo_tracker/internal/repository"
)

// Authorization covers the credential store (sign-up, password verification)
// and the session authority (token issue/parse).
type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Todos exposes the per-user task CRUD. Every operation is scoped to the
// userID the caller extracted from a verified token.
type Todos interface {
	List(ctx context.Context, userID int, f TodoFilter) ([]models.Todo, error)
	Create(ctx context.Context, userID int, p CreateTodoParams) (models.Todo, error)
	Update(ctx context.Context, userID int, id string, p UpdateTodoParams) (models.Todo, error)
	Delete(ctx context.Context, userID int, id string) error
}

type Service struct {
	Authorization
	Todos
}

// NewService wires the repository layer into concrete services. The signing
// key comes from process configuration and is fixed for the process lifetime.
func NewService(repos *repository.Repository, signingKey []byte) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, signingKey),
		Todos:         NewTodoService(repos.Todos),
	}
}
