package handlers

import (
	"todo_tracker/internal/logger"
	"todo_tracker/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints (public)
	h.registerAuthRoutes(router)

	// Task endpoints (token required)
	h.registerTodoRoutes(router)

	// Live todo-list stream (HTTP upgrade), same port and token check
	router.GET("/ws", h.wsTodos)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

func (h *Handler) registerTodoRoutes(r *gin.Engine) {
	todos := r.Group("/api/todos", h.authMiddleware)
	{
		todos.GET("", h.listTodos)
		todos.POST("", h.createTodo)
		todos.PATCH("/:id", h.updateTodo)
		todos.DELETE("/:id", h.deleteTodo)
	}
}
