package tasks

import (
	"github.com/gofiber/fiber/v2"

	"work-sync-admin/app/routes/auth"
)

func SetupTasksRoutes(app *fiber.App) {
	pages := app.Group("/admin")
	pages.Use(auth.AuthMiddleware)
	pages.Get("/tasks", TasksPage)

	api := app.Group("/api/tasks")
	api.Use(auth.AuthMiddleware)
	api.Get("/table", GetTasksTableAPI)
	api.Get("/detail/:id", GetTaskByIDAPI)
}

// TasksPage renders the task list screen and resets its cached
// collection.
func TasksPage(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	taskLists.Reset(session.Email)

	return c.Render("tasks/index", fiber.Map{
		"Title":       "Tasks - Work Sync Admin",
		"CurrentPage": "tasks",
		"Email":       session.Email,
	})
}
