package handlers_fiber

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the full API surface under /api.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", h.GetHealth)

	api.Post("/register", h.PostRegister)
	api.Post("/login", h.PostLogin)

	api.Get("/users", h.GetUsers)
	api.Post("/users", h.PostUser)
	api.Get("/users/:id", h.GetUser)
	api.Put("/users/:id", h.PutUser)
	api.Delete("/users/:id", h.DeleteUser)

	api.Get("/projects", h.GetProjects)
	api.Post("/projects", h.PostProject)
	api.Get("/projects/:id", h.GetProject)
	api.Put("/projects/:id", h.PutProject)
	api.Delete("/projects/:id", h.DeleteProject)
	api.Post("/projects/:id/members", h.PostProjectMember)
	api.Delete("/projects/:id/members/:userID", h.DeleteProjectMember)

	api.Get("/tasks", h.GetTasks)
	api.Post("/tasks", h.PostTask)
	api.Get("/tasks/:id", h.GetTask)
	api.Put("/tasks/:id", h.PutTask)
	api.Delete("/tasks/:id", h.DeleteTask)
	api.Post("/tasks/:id/assignees", h.PostTaskAssignee)
	api.Delete("/tasks/:id/assignees/:userID", h.DeleteTaskAssignee)

	api.Get("/team", h.GetTeam)

	api.Get("/comments/task/:taskID", h.GetTaskComments)
	api.Post("/comments", h.PostComment)

	api.Get("/profile/:id", h.GetProfile)
	api.Put("/profile/:id", h.PutProfile)
	api.Put("/profile/:id/password", h.PutProfilePassword)
	api.Get("/profile/:id/tasks", h.GetProfileTasks)
	api.Get("/profile/:id/projects", h.GetProfileProjects)

	api.Get("/statuses", h.GetStatuses)
	api.Get("/priorities", h.GetPriorities)
	api.Get("/roles", h.GetRoles)
}
