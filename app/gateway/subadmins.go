package gateway

import (
	"context"

	"work-sync-admin/app/models"
)

// FetchSubAdmins returns the sub-admin collection. The backend wraps
// this one in a data envelope.
func (c *Client) FetchSubAdmins(ctx context.Context, session models.Session) ([]models.SubAdmin, error) {
	var resp struct {
		Data []models.SubAdmin `json:"data"`
	}
	if err := c.Get(ctx, session, "/admin/api/subAdmin/getSubAdmin", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

type CreateSubAdminRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	Designation  string `json:"designation" validate:"required"`
	JoiningDate  string `json:"joiningDate" validate:"required"`
	MobileNumber string `json:"mobileNumber" validate:"required"`
}

func (c *Client) CreateSubAdmin(ctx context.Context, session models.Session, req CreateSubAdminRequest) (*models.SubAdmin, error) {
	var created models.SubAdmin
	if err := c.Post(ctx, session, "/admin/api/createSubadmin", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

type UpdateSubAdminRequest struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	JoiningDate  string `json:"joiningDate"`
	MobileNumber string `json:"mobileNumber"`
}

func (c *Client) UpdateSubAdmin(ctx context.Context, session models.Session, req UpdateSubAdminRequest) error {
	return c.Patch(ctx, session, "/admin/api/subAdmin/updateInfo", req, nil)
}

// SetSubAdminAccess flips the access flag of one sub-admin.
func (c *Client) SetSubAdminAccess(ctx context.Context, session models.Session, id string, active bool) error {
	body := map[string]interface{}{
		"adminEmail": session.Email,
		"id":         id,
		"isActive":   active,
	}
	return c.Patch(ctx, session, "/admin/api/subAdmin/access", body, nil)
}
