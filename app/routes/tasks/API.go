package tasks

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"work-sync-admin/app/gateway"
	"work-sync-admin/app/listview"
	"work-sync-admin/app/models"
	"work-sync-admin/app/routes/auth"
)

var taskLists = listview.NewRegistry[models.Task]()

func tasksFor(session models.Session) *listview.Collection[models.Task] {
	return taskLists.Get(session.Email, func(ctx context.Context) ([]models.Task, error) {
		return gateway.Default().FetchAllTasks(ctx, session)
	})
}

// GetTasksTableAPI returns one page of the task table, filtered by
// assignee, status and deadline date.
func GetTasksTableAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)

	all, err := tasksFor(session).Load(c.Context())
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
		listview.Text(c.Query("assignedTo"), func(t models.Task) string { return t.AssignedTo }),
		listview.Exact(c.Query("status"), func(t models.Task) string { return string(t.Status) }),
		listview.Exact(c.Query("deadline"), func(t models.Task) string { return t.Deadline }),
	)
	page := listview.Paginate(filtered, c.QueryInt("page", 0), listview.DefaultPageSize)

	return c.JSON(fiber.Map{
		"state": listview.StateLoaded.String(),
		"table": page,
	})
}

// GetTaskByIDAPI returns the full record for the detail dialog from the
// cached collection.
func GetTaskByIDAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	id := c.Params("id")

	col := tasksFor(session)
	if _, err := col.Load(c.Context()); err != nil {
		return c.Status(502).JSON(fiber.Map{"message": err.Error()})
	}

	task, ok := col.Find(func(t models.Task) bool { return t.ID == id })
	if !ok {
		return c.Status(404).JSON(fiber.Map{"message": "Task not found"})
	}
	return c.JSON(task)
}
