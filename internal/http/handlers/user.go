package handlers

import (
	"coder_management/internal/validation"

	"github.com/gin-gonic/gin"
)

// ListUsers handles GET /users with the page/limit/search allow-list.
func (h *Handler) ListUsers(c *gin.Context) {
	params, err := validation.UserListParams(c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.Users.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, page, "Get User List Successfully!")
}

// GetUser handles GET /users/:id.
func (h *Handler) GetUser(c *gin.Context) {
	id, err := validation.EntityID(c.Param("id"), "User Id", "Get User By Id Failed.")
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.Users.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, user, "Get User Successfully.")
}

// CreateUser handles POST /users.
func (h *Handler) CreateUser(c *gin.Context) {
	body, ok := bindBody(c, "Create User Failed.")
	if !ok {
		return
	}
	name, err := validation.CreateUser(body)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.Users.Create(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, user, "Create User Successfully.")
}

// UserTasks handles GET /users/tasks/:id, returning the user and every
// live task assigned to them with the assignee populated.
func (h *Handler) UserTasks(c *gin.Context) {
	id, err := validation.EntityID(c.Param("id"), "User Id", "Get All Tasks By User Id Failed.")
	if err != nil {
		respondError(c, err)
		return
	}

	out, err := h.Users.TasksByUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, out, "Get All Tasks By User Successfully!")
}
