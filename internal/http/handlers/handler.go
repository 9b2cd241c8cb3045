package handlers

import (
	"errors"
	"net/http"

	"coder_management/internal/domain"
	"coder_management/internal/logger"
	"coder_management/internal/repository"
	"coder_management/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	Tasks *service.TaskService
	Users *service.UserService
}

func NewHandler(db *pgxpool.Pool, events service.EventPublisher) *Handler {
	taskRepo := repository.NewTaskRepository(db)
	userRepo := repository.NewUserRepository(db)
	return NewHandlerWithRepos(taskRepo, userRepo, events)
}

// NewHandlerWithRepos wires a handler over explicit repositories; tests
// use it with the in-memory store.
func NewHandlerWithRepos(tasks service.TaskRepository, users service.UserRepository, events service.EventPublisher) *Handler {
	return &Handler{
		Tasks: service.NewTaskService(tasks, users, events),
		Users: service.NewUserService(users, tasks),
	}
}

// envelope is the uniform response wrapper of every endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// respond writes a success envelope. Every successful operation,
// creation included, answers 200.
func respond(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data, Message: message})
}

// respondError maps a domain error to its carried status; anything
// unclassified becomes a 500.
func respondError(c *gin.Context, err error) {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, envelope{Success: false, Data: nil, Message: appErr.Message})
		return
	}
	logger.Error("unhandled error", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, envelope{Success: false, Data: nil, Message: "Internal Server Error"})
}

func bindBody(c *gin.Context, summary string) (map[string]any, bool) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, domain.NewValidationError("Request body must be a valid JSON object.", summary))
		return nil, false
	}
	return body, true
}
