package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"todo_tracker/internal/repository"
	"todo_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgTodoNotFound     = "Todo not found"
	msgInvalidCompleted = "invalid 'completed' value; use true or false"
	errInvalidBodyPref  = "invalid body: "
)

// Request DTO for creating a todo.
type createTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// Request DTO for a partial update; absent fields are untouched.
type updateTodoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"message": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      List the caller's todos
// @Tags         todos
// @Produce      json
// @Param        completed  query  bool  false  "Filter by completion state"
// @Success      200  {array}   models.Todo
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/todos [get]
// @Security     BearerAuth
func (h *Handler) listTodos(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgUnauthorized})
		return
	}

	var filter service.TodoFilter
	if qs := c.Query("completed"); qs != "" {
		v, err := strconv.ParseBool(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidCompleted})
			return
		}
		filter.Completed = &v
	}

	todos, err := h.services.Todos.List(c.Request.Context(), userID, filter)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, msgServerError, "todos_list_failed", err, "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, todos)
}

// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body   createTodoRequest  true  "Todo payload"
// @Success      201   {object}  models.Todo
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/todos [post]
// @Security     BearerAuth
func (h *Handler) createTodo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgUnauthorized})
		return
	}

	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errInvalidBodyPref + err.Error()})
		return
	}

	todo, err := h.services.Todos.Create(c.Request.Context(), userID, service.CreateTodoParams{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"message": errInvalidBodyPref + err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgServerError, "todos_create_failed", err, "user_id", userID)
		return
	}
	c.JSON(http.StatusCreated, todo)
}

// @Summary      Update a todo
// @Description  Partial update; only the provided fields change.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path   string             true  "Todo ID"
// @Param        body  body   updateTodoRequest  true  "Fields to change"
// @Success      200   {object}  models.Todo
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/todos/{id} [patch]
// @Security     BearerAuth
func (h *Handler) updateTodo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgUnauthorized})
		return
	}

	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errInvalidBodyPref + err.Error()})
		return
	}

	todo, err := h.services.Todos.Update(c.Request.Context(), userID, c.Param("id"), service.UpdateTodoParams{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgTodoNotFound})
			return
		}
		if errors.Is(err, service.ErrEmptyTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"message": errInvalidBodyPref + err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgServerError, "todos_update_failed", err, "user_id", userID, "todo_id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, todo)
}

// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Param        id  path  string  true  "Todo ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/todos/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTodo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgUnauthorized})
		return
	}

	if err := h.services.Todos.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgTodoNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgServerError, "todos_delete_failed", err, "user_id", userID, "todo_id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted"})
}
