package gateway

import (
	"context"
	"net/url"

	"work-sync-admin/app/models"
)

// FetchAllTasks returns every task assigned by the admin.
func (c *Client) FetchAllTasks(ctx context.Context, session models.Session) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.Get(ctx, session, "/admin/api/tasks/all", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// FetchTasksByAssignee returns the tasks given to one employee.
func (c *Client) FetchTasksByAssignee(ctx context.Context, session models.Session, assignedTo string) ([]models.Task, error) {
	query := url.Values{"assignedTo": {assignedTo}}
	var tasks []models.Task
	if err := c.Get(ctx, session, "/admin/api/tasks/givenTasks", query, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
