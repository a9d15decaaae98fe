package employees

import (
	"github.com/gofiber/fiber/v2"

	"work-sync-admin/app/routes/auth"
)

func SetupEmployeesRoutes(app *fiber.App) {
	pages := app.Group("/admin")
	pages.Use(auth.AuthMiddleware)
	pages.Get("/employee-details", EmployeesPage)
	pages.Get("/employee/:email/leave", EmployeeLeavePage)
	pages.Get("/employee/:email/task", EmployeeTaskPage)
	pages.Get("/employee/:email/attendance", EmployeeAttendancePage)

	api := app.Group("/api/employees")
	api.Use(auth.AuthMiddleware)
	api.Get("/table", GetEmployeesTableAPI)
	api.Get("/export", ExportEmployeesAPI)
	api.Get("/detail/:id", GetEmployeeByIDAPI)
	api.Get("/:email/leaves", GetEmployeeLeavesAPI)
	api.Get("/:email/tasks", GetEmployeeTasksAPI)
	api.Get("/:email/attendance", GetEmployeeAttendanceAPI)
}

// EmployeesPage renders the employee list screen. Entering the screen
// resets the cached collection so the table fetches fresh data.
func EmployeesPage(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	ResetCollections(session.Email)

	return c.Render("employees/index", fiber.Map{
		"Title":       "Employee Details - Work Sync Admin",
		"CurrentPage": "employees",
		"Email":       session.Email,
	})
}

// EmployeeLeavePage renders the leave history sub-view. Entering the
// screen resets its collection so a failed load can recover.
func EmployeeLeavePage(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	leaveLists.Reset(subViewKey(session.Email, c.Params("email")))

	return c.Render("employees/leave", fiber.Map{
		"Title":         "Employee Leave - Work Sync Admin",
		"CurrentPage":   "employees",
		"EmployeeEmail": c.Params("email"),
	})
}

func EmployeeTaskPage(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	taskLists.Reset(subViewKey(session.Email, c.Params("email")))

	return c.Render("employees/task", fiber.Map{
		"Title":         "Employee Tasks - Work Sync Admin",
		"CurrentPage":   "employees",
		"EmployeeEmail": c.Params("email"),
	})
}

func EmployeeAttendancePage(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	attendanceLists.Reset(subViewKey(session.Email, c.Params("email")))

	return c.Render("employees/attendance", fiber.Map{
		"Title":         "Employee Attendance - Work Sync Admin",
		"CurrentPage":   "employees",
		"EmployeeEmail": c.Params("email"),
	})
}
