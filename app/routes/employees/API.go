package employees

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"work-sync-admin/app/gateway"
	"work-sync-admin/app/listview"
	"work-sync-admin/app/models"
	"work-sync-admin/app/routes/auth"
)

var (
	employeeLists   = listview.NewRegistry[models.Employee]()
	leaveLists      = listview.NewRegistry[models.LeaveRequest]()
	taskLists       = listview.NewRegistry[models.Task]()
	attendanceLists = listview.NewRegistry[models.AttendanceRecord]()
)

func employeesFor(session models.Session) *listview.Collection[models.Employee] {
	return employeeLists.Get(session.Email, func(ctx context.Context) ([]models.Employee, error) {
		return gateway.Default().FetchEmployees(ctx, session)
	})
}

func subViewKey(adminEmail, email string) string {
	return adminEmail + "|" + email
}

// ResetCollections drops every employee-screen collection for the
// admin, modelling a screen remount.
func ResetCollections(adminEmail string) {
	employeeLists.Reset(adminEmail)
	leaveLists.DropPrefix(adminEmail + "|")
	taskLists.DropPrefix(adminEmail + "|")
	attendanceLists.DropPrefix(adminEmail + "|")
}

// GetEmployeesTableAPI returns one page of the employee table, filtered
// by the name search box.
func GetEmployeesTableAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)

	all, err := employeesFor(session).Load(c.Context())
	if err != nil {
		if err == listview.ErrLoading {
			return c.Status(202).JSON(fiber.Map{"state": listview.StateLoading.String()})
		}
		return c.Status(502).JSON(fiber.Map{
			"state":   listview.StateFailed.String(),
			"message": err.Error(),
		})
	}

	filtered := filterEmployees(all, c.Query("search"))
	page := listview.Paginate(filtered, c.QueryInt("page", 0), listview.DefaultPageSize)

	return c.JSON(fiber.Map{
		"state": listview.StateLoaded.String(),
		"table": page,
	})
}

func filterEmployees(all []models.Employee, search string) []models.Employee {
	return listview.Apply(all,
		listview.Text(search, func(e models.Employee) string { return e.Name }),
	)
}

// GetEmployeeByIDAPI returns the full record for the detail dialog. The
// lookup runs against the cached collection, never the backend.
func GetEmployeeByIDAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	id := c.Params("id")

	col := employeesFor(session)
	if _, err := col.Load(c.Context()); err != nil {
		return c.Status(502).JSON(fiber.Map{"message": err.Error()})
	}

	employee, ok := col.Find(func(e models.Employee) bool { return e.ID == id })
	if !ok {
		return c.Status(404).JSON(fiber.Map{"message": "Employee not found"})
	}
	return c.JSON(employee)
}

// GetEmployeeLeavesAPI returns the leave history sub-view for one
// employee.
func GetEmployeeLeavesAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	email := c.Params("email")

	col := leaveLists.Get(subViewKey(session.Email, email), func(ctx context.Context) ([]models.LeaveRequest, error) {
		return gateway.Default().FetchLeavesByEmail(ctx, session, email)
	})
	return renderLeavePage(c, col)
}

func renderLeavePage(c *fiber.Ctx, col *listview.Collection[models.LeaveRequest]) error {
	all, err := col.Load(c.Context())
	if err != nil {
		if err == listview.ErrLoading {
			return c.Status(202).JSON(fiber.Map{"state": listview.StateLoading.String()})
		}
		return c.Status(502).JSON(fiber.Map{
			"state":   listview.StateFailed.String(),
			"message": err.Error(),
		})
	}

	filtered := listview.Apply(all,
		listview.Exact(c.Query("leaveType"), func(l models.LeaveRequest) string { return string(l.LeaveType) }),
		listview.Exact(c.Query("status"), func(l models.LeaveRequest) string { return string(l.Status) }),
	)
	page := listview.Paginate(filtered, c.QueryInt("page", 0), listview.DefaultPageSize)

	return c.JSON(fiber.Map{
		"state": listview.StateLoaded.String(),
		"table": page,
	})
}

// GetEmployeeTasksAPI returns the tasks assigned to one employee.
func GetEmployeeTasksAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	email := c.Params("email")

	col := taskLists.Get(subViewKey(session.Email, email), func(ctx context.Context) ([]models.Task, error) {
		return gateway.Default().FetchTasksByAssignee(ctx, session, email)
	})

	all, err := col.Load(c.Context())
	if err != nil {
		if err == listview.ErrLoading {
			return c.Status(202).JSON(fiber.Map{"state": listview.StateLoading.String()})
		}
		return c.Status(502).JSON(fiber.Map{
			"state":   listview.StateFailed.String(),
			"message": err.Error(),
		})
	}

	filtered := listview.Apply(all,
		listview.Exact(c.Query("status"), func(t models.Task) string { return string(t.Status) }),
	)
	page := listview.Paginate(filtered, c.QueryInt("page", 0), listview.DefaultPageSize)

	return c.JSON(fiber.Map{
		"state": listview.StateLoaded.String(),
		"table": page,
	})
}

// GetEmployeeAttendanceAPI returns the attendance sub-view for one
// employee.
func GetEmployeeAttendanceAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	email := c.Params("email")

	col := attendanceLists.Get(subViewKey(session.Email, email), func(ctx context.Context) ([]models.AttendanceRecord, error) {
		return gateway.Default().FetchAttendance(ctx, session, email)
	})

	all, err := col.Load(c.Context())
	if err != nil {
		if err == listview.ErrLoading {
			return c.Status(202).JSON(fiber.Map{"state": listview.StateLoading.String()})
		}
		return c.Status(502).JSON(fiber.Map{
			"state":   listview.StateFailed.String(),
			"message": err.Error(),
		})
	}

	filtered := listview.Apply(all,
		listview.Exact(c.Query("date"), func(r models.AttendanceRecord) string { return r.Date }),
	)
	page := listview.Paginate(filtered, c.QueryInt("page", 0), listview.DefaultPageSize)

	return c.JSON(fiber.Map{
		"state": listview.StateLoaded.String(),
		"table": page,
	})
}
