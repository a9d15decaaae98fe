package subadmins

import (
	"github.com/gofiber/fiber/v2"

	"work-sync-admin/app/routes/auth"
)

func SetupSubAdminsRoutes(app *fiber.App) {
	pages := app.Group("/admin")
	pages.Use(auth.AuthMiddleware)
	pages.Get("/subadmin-details", SubAdminsPage)

	// Sub-admin sub-views are addressed by query parameter
	subViews := app.Group("/subadmin")
	subViews.Use(auth.AuthMiddleware)
	subViews.Get("/:id/leave", SubAdminLeavePage)
	subViews.Get("/:id/attendance", SubAdminAttendancePage)

	api := app.Group("/api/subadmins")
	api.Use(auth.AuthMiddleware)
	api.Get("/table", GetSubAdminsTableAPI)
	api.Get("/detail/:id", GetSubAdminByIDAPI)
	api.Post("/", CreateSubAdminAPI)
	api.Patch("/access", ToggleSubAdminAccessAPI)
	api.Patch("/info", UpdateSubAdminInfoAPI)
	api.Get("/leaves", GetSubAdminLeavesAPI)
	api.Get("/attendance", GetSubAdminAttendanceAPI)
}

// SubAdminsPage renders the sub-admin list screen and resets its cached
// collection.
func SubAdminsPage(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	subAdminLists.Reset(session.Email)
	leaveLists.DropPrefix(session.Email + "|")
	attendanceLists.DropPrefix(session.Email + "|")

	return c.Render("subadmins/index", fiber.Map{
		"Title":       "Sub-Admin Details - Work Sync Admin",
		"CurrentPage": "subadmins",
		"Email":       session.Email,
	})
}

// SubAdminLeavePage renders the leave history sub-view. Entering the
// screen resets its collection so a failed load can recover.
func SubAdminLeavePage(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	leaveLists.Reset(subViewKey(session.Email, c.Query("email")))

	return c.Render("subadmins/leave", fiber.Map{
		"Title":         "Sub-Admin Leave - Work Sync Admin",
		"CurrentPage":   "subadmins",
		"SubAdminID":    c.Params("id"),
		"SubAdminEmail": c.Query("email"),
	})
}

func SubAdminAttendancePage(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	attendanceLists.Reset(subViewKey(session.Email, c.Query("email")))

	return c.Render("subadmins/attendance", fiber.Map{
		"Title":         "Sub-Admin Attendance - Work Sync Admin",
		"CurrentPage":   "subadmins",
		"SubAdminID":    c.Params("id"),
		"SubAdminEmail": c.Query("email"),
	})
}
