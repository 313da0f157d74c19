package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/dto"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/mapper"
)

// GetTaskComments lists a task's comments, newest first.
func (h *Handler) GetTaskComments(c *fiber.Ctx) error {
	taskID, err := pathID(c, "taskID")
	if err != nil {
		return badRequest(c, err.Error())
	}

	comments, err := h.uc.ListTaskComments(c.Context(), taskID)
	if err != nil {
		h.log.Errorw("failed to list comments", "task_id", taskID, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToComments(comments))
}

// PostComment appends a comment to a task.
func (h *Handler) PostComment(c *fiber.Ctx) error {
	var body dto.CommentRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	nc := entities.NewComment{
		TaskID:   body.TaskID,
		AuthorID: body.AuthorID,
		Text:     body.Text,
	}
	id, err := h.uc.CreateComment(c.Context(), nc)
	if err != nil {
		h.log.Errorw("failed to create comment", "task_id", body.TaskID, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(dto.CreateResponse{Message: "comment added", ID: id})
}
