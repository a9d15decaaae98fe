package gateway

import (
	"context"

	"work-sync-admin/app/models"
)

// FetchPendingLeaves returns all leave requests awaiting a decision.
func (c *Client) FetchPendingLeaves(ctx context.Context, session models.Session) ([]models.LeaveRequest, error) {
	var leaves []models.LeaveRequest
	if err := c.Get(ctx, session, "/admin/api/leaves/pending", nil, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

// FetchLeavesByEmail returns the leave history of one employee or
// sub-admin.
func (c *Client) FetchLeavesByEmail(ctx context.Context, session models.Session, email string) ([]models.LeaveRequest, error) {
	var leaves []models.LeaveRequest
	if err := c.Get(ctx, session, "/admin/api/leaves/"+email, nil, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

type approveLeaveRequest struct {
	AdminEmail string             `json:"adminEmail"`
	LeaveID    string             `json:"leaveId"`
	Status     models.LeaveStatus `json:"status"`
}

// ResolveLeave approves or rejects a leave request.
func (c *Client) ResolveLeave(ctx context.Context, session models.Session, leaveID string, status models.LeaveStatus) error {
	body := approveLeaveRequest{
		AdminEmail: session.Email,
		LeaveID:    leaveID,
		Status:     status,
	}
	return c.Patch(ctx, session, "/admin/api/approve/leave", body, nil)
}
