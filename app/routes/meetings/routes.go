package meetings

import (
	"github.com/gofiber/fiber/v2"

	"work-sync-admin/app/routes/auth"
)

func SetupMeetingsRoutes(app *fiber.App) {
	pages := app.Group("/admin")
	pages.Use(auth.AuthMiddleware)
	pages.Get("/meetings", MeetingsPage)

	api := app.Group("/api/meetings")
	api.Use(auth.AuthMiddleware)
	api.Get("/table", GetMeetingsTableAPI)
	api.Get("/detail/:id", GetMeetingByIDAPI)
	api.Get("/participants", GetParticipantsAPI)
	api.Post("/", CreateMeetingAPI)
}

// MeetingsPage renders the meeting list screen and resets its cached
// collection.
func MeetingsPage(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	meetingLists.Reset(session.Email)

	return c.Render("meetings/index", fiber.Map{
		"Title":       "Meetings - Work Sync Admin",
		"CurrentPage": "meetings",
		"Email":       session.Email,
	})
}
