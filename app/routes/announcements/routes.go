package announcements

import (
	"github.com/gofiber/fiber/v2"

	"work-sync-admin/app/routes/auth"
)

func SetupAnnouncementsRoutes(app *fiber.App) {
	pages := app.Group("/admin")
	pages.Use(auth.AuthMiddleware)
	pages.Get("/announcement", AnnouncementsPage)

	api := app.Group("/api/announcements")
	api.Use(auth.AuthMiddleware)
	api.Get("/table", GetAnnouncementsTableAPI)
	api.Post("/", CreateAnnouncementAPI)
}

func AnnouncementsPage(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)

	return c.Render("announcements/index", fiber.Map{
		"Title":       "Announcements - Work Sync Admin",
		"CurrentPage": "announcements",
		"Email":       session.Email,
	})
}
