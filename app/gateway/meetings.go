package gateway

import (
	"context"

	"work-sync-admin/app/models"
)

// FetchMeetings returns the scheduled meeting collection.
func (c *Client) FetchMeetings(ctx context.Context, session models.Session) ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := c.Get(ctx, session, "/admin/api/meetings/get-all", nil, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

// CreateMeeting schedules a new meeting.
func (c *Client) CreateMeeting(ctx context.Context, session models.Session, meeting models.Meeting) (*models.Meeting, error) {
	var created models.Meeting
	if err := c.Post(ctx, session, "/admin/api/meetings", meeting, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
