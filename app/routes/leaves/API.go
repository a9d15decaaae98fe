package leaves

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"work-sync-admin/app/gateway"
	"work-sync-admin/app/listview"
	"work-sync-admin/app/models"
	"work-sync-admin/app/routes/auth"
)

var leaveLists = listview.NewRegistry[models.LeaveRequest]()

// leavesFor caches the pending leave requests of sub-admins. The
// backend returns every pending request; only the SUBADMIN role is kept
// on this screen.
func leavesFor(session models.Session) *listview.Collection[models.LeaveRequest] {
	return leaveLists.Get(session.Email, func(ctx context.Context) ([]models.LeaveRequest, error) {
		all, err := gateway.Default().FetchPendingLeaves(ctx, session)
		if err != nil {
			return nil, err
		}
		subAdmins := make([]models.LeaveRequest, 0, len(all))
		for _, leave := range all {
			if leave.Role == "SUBADMIN" {
				subAdmins = append(subAdmins, leave)
			}
		}
		return subAdmins, nil
	})
}

// GetLeavesTableAPI returns one page of leave requests filtered by
// name, leave type and status.
func GetLeavesTableAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)

	all, err := leavesFor(session).Load(c.Context())
	if err != nil {
		if err == listview.ErrLoading {
			return c.Status(202).JSON(fiber.Map{"state": listview.StateLoading.String()})
		}
		return c.Status(502).JSON(fiber.Map{
			"state":   listview.StateFailed.String(),
			"message": err.Error(),
		})
	}

	filtered := filterLeaves(all, c.Query("name"), c.Query("leaveType"), c.Query("status"))
	page := listview.Paginate(filtered, c.QueryInt("page", 0), listview.DefaultPageSize)

	return c.JSON(fiber.Map{
		"state": listview.StateLoaded.String(),
		"table": page,
	})
}

func filterLeaves(all []models.LeaveRequest, name, leaveType, status string) []models.LeaveRequest {
	return listview.Apply(all,
		listview.Text(name, func(l models.LeaveRequest) string { return l.Name }),
		listview.Exact(leaveType, func(l models.LeaveRequest) string { return string(l.LeaveType) }),
		listview.Exact(status, func(l models.LeaveRequest) string { return string(l.Status) }),
	)
}

// ResolveLeaveAPI approves or rejects one leave request. The cached
// record's status is rewritten only after the backend confirms.
func ResolveLeaveAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)

	type resolveRequest struct {
		LeaveID string             `json:"leaveId"`
		Status  models.LeaveStatus `json:"status"`
	}
	var req resolveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if req.LeaveID == "" {
		return c.Status(400).JSON(fiber.Map{"message": "leaveId is required"})
	}
	if req.Status != models.LeaveApproved && req.Status != models.LeaveRejected {
		return c.Status(400).JSON(fiber.Map{"message": "status must be APPROVED or REJECTED"})
	}

	if err := gateway.Default().ResolveLeave(c.Context(), session, req.LeaveID, req.Status); err != nil {
		return c.Status(502).JSON(fiber.Map{"message": err.Error()})
	}

	// The backend has confirmed; a cache miss (the collection was reset
	// in between) just means there is nothing to rewrite locally.
	leavesFor(session).Update(
		func(l models.LeaveRequest) bool { return l.ID == req.LeaveID },
		func(l models.LeaveRequest) models.LeaveRequest {
			l.Status = req.Status
			return l
		},
	)

	return c.JSON(fiber.Map{"message": "Leave " + string(req.Status) + " successfully"})
}
