package handlers

import (
	"context"
	"net/http"

	"todo_tracker/internal/models"
	"todo_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockTodos struct {
	listResp  []models.Todo
	listErr   error
	createOut models.Todo
	createErr error
	updateOut models.Todo
	updateErr error
	deleteErr error

	lastListUserID   int
	lastListFilter   service.TodoFilter
	lastCreateUserID int
	lastCreateParams service.CreateTodoParams
	lastUpdateUserID int
	lastUpdateID     string
	lastUpdateParams service.UpdateTodoParams
	lastDeleteUserID int
	lastDeleteID     string
}

func (m *mockTodos) List(ctx context.Context, userID int, f service.TodoFilter) ([]models.Todo, error) {
	m.lastListUserID = userID
	m.lastListFilter = f
	return m.listResp, m.listErr
}
func (m *mockTodos) Create(ctx context.Context, userID int, p service.CreateTodoParams) (models.Todo, error) {
	m.lastCreateUserID = userID
	m.lastCreateParams = p
	return m.createOut, m.createErr
}
func (m *mockTodos) Update(ctx context.Context, userID int, id string, p service.UpdateTodoParams) (models.Todo, error) {
	m.lastUpdateUserID = userID
	m.lastUpdateID = id
	m.lastUpdateParams = p
	return m.updateOut, m.updateErr
}
func (m *mockTodos) Delete(ctx context.Context, userID int, id string) error {
	m.lastDeleteUserID = userID
	m.lastDeleteID = id
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
