package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskcase/task-api/internal/api/metrics"
	"github.com/taskcase/task-api/internal/core/domain"
	"github.com/taskcase/task-api/internal/core/ports"
)

// TaskHandler handles the ownership-checked task routes. Every method runs
// behind the Auth middleware and receives the resolved user via ctxUser.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /tasks.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      taskRequest  true  "Task details"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	owner, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	task, err := h.service.Create(c.Request().Context(), owner, ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("create", "error").Inc()
		return err
	}

	metrics.TaskOperationsTotal.WithLabelValues("create", "success").Inc()
	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// List handles GET /tasks — only the caller's own tasks are returned.
//
// @Summary      List own tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   taskResponse
// @Failure      401  {object}  errorResponse
// @Router       /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	owner, err := ctxUser(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.ListOwned(c.Request().Context(), owner)
	if err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("list", "error").Inc()
		return err
	}

	metrics.TaskOperationsTotal.WithLabelValues("list", "success").Inc()
	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /tasks/:id.
//
// @Summary      Get a task by id
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  taskResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	owner, err := ctxUser(c)
	if err != nil {
		return err
	}

	task, err := h.service.Get(c.Request().Context(), owner, c.Param("id"))
	if err != nil {
		return h.taskError(c, "get", err)
	}

	metrics.TaskOperationsTotal.WithLabelValues("get", "success").Inc()
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Update handles PUT /tasks/:id — replaces title and description only.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Task id"
// @Param        body  body      taskRequest  true  "New task content"
// @Success      200   {object}  taskResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	owner, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	task, err := h.service.Update(c.Request().Context(), owner, c.Param("id"), ports.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return h.taskError(c, "update", err)
	}

	metrics.TaskOperationsTotal.WithLabelValues("update", "success").Inc()
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /tasks/:id.
//
// @Summary      Delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        id  path  string  true  "Task id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	owner, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), owner, c.Param("id")); err != nil {
		return h.taskError(c, "delete", err)
	}

	metrics.TaskOperationsTotal.WithLabelValues("delete", "success").Inc()
	return c.NoContent(http.StatusNoContent)
}

// taskError maps task-level failures. A malformed id is the client's fault
// (400); a missing or foreign-owned task is 404 — never 403, so existence
// stays hidden.
func (h *TaskHandler) taskError(c echo.Context, action string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidTaskID):
		metrics.TaskOperationsTotal.WithLabelValues(action, "invalid_id").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid task id"})
	case errors.Is(err, domain.ErrTaskNotFound):
		metrics.TaskOperationsTotal.WithLabelValues(action, "not_found").Inc()
		return c.JSON(http.StatusNotFound, errorResponse{Error: "task not found"})
	}
	metrics.TaskOperationsTotal.WithLabelValues(action, "error").Inc()
	return err
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		OwnerID:     t.OwnerID,
	}
}
