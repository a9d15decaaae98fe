package gateway

import (
	"context"

	"work-sync-admin/app/models"
)

// FetchEmployees returns the full employee collection for the admin.
func (c *Client) FetchEmployees(ctx context.Context, session models.Session) ([]models.Employee, error) {
	var employees []models.Employee
	if err := c.Get(ctx, session, "/admin/api/get-all-users", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// FetchApprovedUsers returns users cleared by the admin, used to build
// the meeting participants picker.
func (c *Client) FetchApprovedUsers(ctx context.Context, session models.Session) ([]models.Employee, error) {
	var users []models.Employee
	if err := c.Get(ctx, session, "/admin/api/allUsers", nil, &users); err != nil {
		return nil, err
	}
	approved := make([]models.Employee, 0, len(users))
	for _, u := range users {
		if u.ApprovedByAdmin {
			approved = append(approved, u)
		}
	}
	return approved, nil
}

// FetchAttendance returns the attendance records for one employee or
// sub-admin, keyed by email.
func (c *Client) FetchAttendance(ctx context.Context, session models.Session, email string) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	if err := c.Get(ctx, session, "/admin/api/attendance/"+email, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
