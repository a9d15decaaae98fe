package leaves

import (
	"github.com/gofiber/fiber/v2"

	"work-sync-admin/app/routes/auth"
)

func SetupLeavesRoutes(app *fiber.App) {
	pages := app.Group("/admin")
	pages.Use(auth.AuthMiddleware)
	pages.Get("/leave-request", LeaveRequestsPage)

	api := app.Group("/api/leaves")
	api.Use(auth.AuthMiddleware)
	api.Get("/table", GetLeavesTableAPI)
	api.Get("/export", ExportLeavesAPI)
	api.Patch("/resolve", ResolveLeaveAPI)
}

// LeaveRequestsPage renders the pending leave screen and resets its
// cached collection.
func LeaveRequestsPage(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	leaveLists.Reset(session.Email)

	return c.Render("leaves/index", fiber.Map{
		"Title":       "Leave Requests - Work Sync Admin",
		"CurrentPage": "leaves",
		"Email":       session.Email,
	})
}
