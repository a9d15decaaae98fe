package gateway

import (
	"context"

	"work-sync-admin/app/models"
)

// CreateAnnouncement sends a notification to the chosen recipient group.
func (c *Client) CreateAnnouncement(ctx context.Context, session models.Session, announcement models.Announcement) error {
	return c.Post(ctx, session, "/admin/api/createNotification", announcement, nil)
}
