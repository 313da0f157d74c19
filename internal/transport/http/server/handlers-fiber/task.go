package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/dto"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/mapper"
)

// GetTasks lists tasks visible to the acting user, earliest due date
// first. Without user_id the full set is returned.
func (h *Handler) GetTasks(c *fiber.Ctx) error {
	acting, err := actingUser(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	tasks, err := h.uc.ListTasks(c.Context(), acting)
	if err != nil {
		h.log.Errorw("failed to list tasks", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToTasks(tasks))
}

// GetTask returns a single task by id, unscoped.
func (h *Handler) GetTask(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	t, err := h.uc.Task(c.Context(), id)
	if err != nil {
		h.log.Errorw("failed to get task", "task_id", id, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToTask(*t))
}

// PostTask creates a task; omitted status and priority fall back to the
// lookup defaults.
func (h *Handler) PostTask(c *fiber.Ctx) error {
	var body dto.TaskRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	nt, err := mapper.ToNewTask(body)
	if err != nil {
		return writeError(c, err)
	}

	id, err := h.uc.CreateTask(c.Context(), nt)
	if err != nil {
		h.log.Errorw("failed to create task", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(dto.CreateResponse{Message: "task created", ID: id})
}

// PutTask replaces the mutable fields of a task.
func (h *Handler) PutTask(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body dto.TaskRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	nt, err := mapper.ToNewTask(body)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.UpdateTask(c.Context(), id, nt); err != nil {
		h.log.Errorw("failed to update task", "task_id", id, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "task updated"})
}

// DeleteTask removes a task. Deleting an absent task succeeds.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.DeleteTask(c.Context(), id); err != nil {
		h.log.Errorw("failed to delete task", "task_id", id, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "task deleted"})
}

// PostTaskAssignee assigns a user to a task.
func (h *Handler) PostTaskAssignee(c *fiber.Ctx) error {
	taskID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body dto.AssigneeRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	id, err := h.uc.Assign(c.Context(), taskID, body.UserID)
	if err != nil {
		h.log.Errorw("failed to assign task",
			"task_id", taskID, "user_id", body.UserID, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(dto.CreateResponse{Message: "assignee added", ID: id})
}

// DeleteTaskAssignee removes a user from a task. Removing an absent
// assignment succeeds.
func (h *Handler) DeleteTaskAssignee(c *fiber.Ctx) error {
	taskID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	userID, err := pathID(c, "userID")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.Unassign(c.Context(), taskID, userID); err != nil {
		h.log.Errorw("failed to unassign task",
			"task_id", taskID, "user_id", userID, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "assignee removed"})
}
