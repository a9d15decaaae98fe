package gateway

import (
	"context"

	"work-sync-admin/app/models"
)

// FetchTickets returns the support ticket collection.
func (c *Client) FetchTickets(ctx context.Context, session models.Session) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := c.Get(ctx, session, "/admin/api/tickets/", nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}
