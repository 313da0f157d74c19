package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/dto"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/mapper"
)

// GetProjects lists projects visible to the acting user, newest start
// date first. Without user_id the full set is returned.
func (h *Handler) GetProjects(c *fiber.Ctx) error {
	acting, err := actingUser(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	projects, err := h.uc.ListProjects(c.Context(), acting)
	if err != nil {
		h.log.Errorw("failed to list projects", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToProjects(projects))
}

// GetProject returns a single project by id, unscoped.
func (h *Handler) GetProject(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	p, err := h.uc.Project(c.Context(), id)
	if err != nil {
		h.log.Errorw("failed to get project", "project_id", id, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToProject(*p))
}

// PostProject creates a project.
func (h *Handler) PostProject(c *fiber.Ctx) error {
	var body dto.ProjectRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	np, err := mapper.ToNewProject(body)
	if err != nil {
		return writeError(c, err)
	}

	id, err := h.uc.CreateProject(c.Context(), np)
	if err != nil {
		h.log.Errorw("failed to create project", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(dto.CreateResponse{Message: "project created", ID: id})
}

// PutProject replaces the mutable fields of a project.
func (h *Handler) PutProject(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body dto.ProjectRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	np, err := mapper.ToNewProject(body)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.UpdateProject(c.Context(), id, np); err != nil {
		h.log.Errorw("failed to update project", "project_id", id, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "project updated"})
}

// DeleteProject removes a project. Deleting an absent project succeeds.
func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.DeleteProject(c.Context(), id); err != nil {
		h.log.Errorw("failed to delete project", "project_id", id, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "project deleted"})
}

// PostProjectMember adds a user to a project roster.
func (h *Handler) PostProjectMember(c *fiber.Ctx) error {
	projectID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body dto.MemberRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	id, err := h.uc.AddMember(c.Context(), projectID, body.UserID, body.RoleID)
	if err != nil {
		h.log.Errorw("failed to add project member",
			"project_id", projectID, "user_id", body.UserID, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(dto.CreateResponse{Message: "member added", ID: id})
}

// DeleteProjectMember removes a user from a project roster. Removing an
// absent membership succeeds.
func (h *Handler) DeleteProjectMember(c *fiber.Ctx) error {
	projectID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	userID, err := pathID(c, "userID")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.RemoveMember(c.Context(), projectID, userID); err != nil {
		h.log.Errorw("failed to remove project member",
			"project_id", projectID, "user_id", userID, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "member removed"})
}
