package handlers

import (
	"fmt"

	"coder_management/internal/validation"

	"github.com/gin-gonic/gin"
)

// ListTasks handles GET /tasks with the page/limit/status/search/sort_by/
// order_by allow-list.
func (h *Handler) ListTasks(c *gin.Context) {
	params, err := validation.TaskListParams(c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.Tasks.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, page, "Get Task List Successfully!")
}

// GetTask handles GET /tasks/:id.
func (h *Handler) GetTask(c *gin.Context) {
	id, err := validation.EntityID(c.Param("id"), "Task Id", "Get Task By Id Failed.")
	if err != nil {
		respondError(c, err)
		return
	}

	task, err := h.Tasks.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, task, "Get Task Successfully.")
}

// CreateTask handles POST /tasks.
func (h *Handler) CreateTask(c *gin.Context) {
	body, ok := bindBody(c, "Create Task Failed.")
	if !ok {
		return
	}
	in, err := validation.CreateTask(body)
	if err != nil {
		respondError(c, err)
		return
	}

	task, err := h.Tasks.Create(c.Request.Context(), in.Name, in.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, task, "Create Task Successfully.")
}

// UpdateTask handles PUT /tasks/:id: a combined update accepting an
// optional status and an optional assignee.
func (h *Handler) UpdateTask(c *gin.Context) {
	id, err := validation.EntityID(c.Param("id"), "Task Id", "Update Task Failed.")
	if err != nil {
		respondError(c, err)
		return
	}
	body, ok := bindBody(c, "Update Task Failed.")
	if !ok {
		return
	}
	upd, err := validation.UpdateTask(body)
	if err != nil {
		respondError(c, err)
		return
	}

	task, err := h.Tasks.Update(c.Request.Context(), id, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, task, fmt.Sprintf("Update Task With Id %s Successfully.", id))
}

// DeleteTask handles DELETE /tasks/:id by soft-deleting the task.
func (h *Handler) DeleteTask(c *gin.Context) {
	id, err := validation.EntityID(c.Param("id"), "Task Id", "Delete Task Failed.")
	if err != nil {
		respondError(c, err)
		return
	}

	task, err := h.Tasks.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, task, fmt.Sprintf("Delete Task With Id %s Successfully.", id))
}
