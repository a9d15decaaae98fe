package subadmins

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"work-sync-admin/app/gateway"
	"work-sync-admin/app/listview"
	"work-sync-admin/app/models"
	"work-sync-admin/app/routes/auth"
)

var (
	subAdminLists   = listview.NewRegistry[models.SubAdmin]()
	leaveLists      = listview.NewRegistry[models.LeaveRequest]()
	attendanceLists = listview.NewRegistry[models.AttendanceRecord]()

	validate = validator.New()
)

func subViewKey(adminEmail, email string) string {
	return adminEmail + "|" + email
}

func subAdminsFor(session models.Session) *listview.Collection[models.SubAdmin] {
	return subAdminLists.Get(session.Email, func(ctx context.Context) ([]models.SubAdmin, error) {
		return gateway.Default().FetchSubAdmins(ctx, session)
	})
}

// GetSubAdminsTableAPI returns one page of the sub-admin table,
// filtered by the name search box.
func GetSubAdminsTableAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)

	all, err := subAdminsFor(session).Load(c.Context())
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
		listview.Text(c.Query("search"), func(s models.SubAdmin) string { return s.Name }),
	)
	page := listview.Paginate(filtered, c.QueryInt("page", 0), listview.DefaultPageSize)

	return c.JSON(fiber.Map{
		"state": listview.StateLoaded.String(),
		"table": page,
	})
}

// GetSubAdminByIDAPI returns the full record for the detail dialog from
// the cached collection.
func GetSubAdminByIDAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	id := c.Params("id")

	col := subAdminsFor(session)
	if _, err := col.Load(c.Context()); err != nil {
		return c.Status(502).JSON(fiber.Map{"message": err.Error()})
	}

	subAdmin, ok := col.Find(func(s models.SubAdmin) bool { return s.ID == id })
	if !ok {
		return c.Status(404).JSON(fiber.Map{"message": "Sub-admin not found"})
	}
	return c.JSON(subAdmin)
}

// CreateSubAdminAPI validates the draft and submits it to the backend.
// On success the created record is prepended to the cached collection.
func CreateSubAdminAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)

	var req gateway.CreateSubAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Please fill all required fields"})
	}

	created, err := gateway.Default().CreateSubAdmin(c.Context(), session, req)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"message": err.Error()})
	}

	subAdminsFor(session).Prepend(*created)

	return c.JSON(fiber.Map{
		"message":  "Sub-admin created successfully",
		"subAdmin": created,
	})
}

// ToggleSubAdminAccessAPI flips one sub-admin's access flag. The cached
// record is only rewritten after the backend confirms the change.
func ToggleSubAdminAccessAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)

	type accessRequest struct {
		ID       string `json:"id"`
		IsActive bool   `json:"isActive"`
	}
	var req accessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if req.ID == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Sub-admin id is required"})
	}

	if err := gateway.Default().SetSubAdminAccess(c.Context(), session, req.ID, req.IsActive); err != nil {
		return c.Status(502).JSON(fiber.Map{"message": err.Error()})
	}

	updated := subAdminsFor(session).Update(
		func(s models.SubAdmin) bool { return s.ID == req.ID },
		func(s models.SubAdmin) models.SubAdmin {
			s.IsActive = req.IsActive
			return s
		},
	)
	if !updated {
		return c.Status(404).JSON(fiber.Map{"message": "Sub-admin not found"})
	}

	return c.JSON(fiber.Map{"message": "Access updated successfully"})
}

// UpdateSubAdminInfoAPI saves edits from the info dialog, then rewrites
// the matching cached record.
func UpdateSubAdminInfoAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)

	var req gateway.UpdateSubAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if req.ID == "" || req.Name == "" || req.Email == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Please fill all required fields"})
	}

	if err := gateway.Default().UpdateSubAdmin(c.Context(), session, req); err != nil {
		return c.Status(502).JSON(fiber.Map{"message": err.Error()})
	}

	subAdminsFor(session).Update(
		func(s models.SubAdmin) bool { return s.ID == req.ID },
		func(s models.SubAdmin) models.SubAdmin {
			s.Name = req.Name
			s.Email = req.Email
			s.Role = req.Role
			s.JoiningDate = req.JoiningDate
			s.MobileNumber = req.MobileNumber
			return s
		},
	)

	return c.JSON(fiber.Map{"message": "Sub-admin updated successfully"})
}

// GetSubAdminLeavesAPI returns the leave history of one sub-admin,
// addressed by the email query parameter.
func GetSubAdminLeavesAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	email := c.Query("email")
	if email == "" {
		return c.Status(400).JSON(fiber.Map{"message": "email query parameter is required"})
	}

	col := leaveLists.Get(subViewKey(session.Email, email), func(ctx context.Context) ([]models.LeaveRequest, error) {
		return gateway.Default().FetchLeavesByEmail(ctx, session, email)
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
		listview.Exact(c.Query("status"), func(l models.LeaveRequest) string { return string(l.Status) }),
	)
	page := listview.Paginate(filtered, c.QueryInt("page", 0), listview.DefaultPageSize)

	return c.JSON(fiber.Map{
		"state": listview.StateLoaded.String(),
		"table": page,
	})
}

// GetSubAdminAttendanceAPI returns the attendance history of one
// sub-admin, addressed by the email query parameter.
func GetSubAdminAttendanceAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	email := c.Query("email")
	if email == "" {
		return c.Status(400).JSON(fiber.Map{"message": "email query parameter is required"})
	}

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

	page := listview.Paginate(all, c.QueryInt("page", 0), listview.DefaultPageSize)

	return c.JSON(fiber.Map{
		"state": listview.StateLoaded.String(),
		"table": page,
	})
}
