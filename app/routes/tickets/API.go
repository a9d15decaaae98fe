package tickets

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"work-sync-admin/app/gateway"
	"work-sync-admin/app/listview"
	"work-sync-admin/app/models"
	"work-sync-admin/app/routes/auth"
)

var ticketLists = listview.NewRegistry[models.Ticket]()

func ticketsFor(session models.Session) *listview.Collection[models.Ticket] {
	return ticketLists.Get(session.Email, func(ctx context.Context) ([]models.Ticket, error) {
		return gateway.Default().FetchTickets(ctx, session)
	})
}

// GetTicketsTableAPI returns one page of the ticket table, filtered by
// email, status and priority.
func GetTicketsTableAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)

	all, err := ticketsFor(session).Load(c.Context())
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
		listview.Text(c.Query("email"), func(t models.Ticket) string { return t.Email }),
		listview.Exact(c.Query("status"), func(t models.Ticket) string { return string(t.Status) }),
		listview.Exact(c.Query("priority"), func(t models.Ticket) string { return string(t.Priority) }),
	)
	page := listview.Paginate(filtered, c.QueryInt("page", 0), listview.DefaultPageSize)

	return c.JSON(fiber.Map{
		"state": listview.StateLoaded.String(),
		"table": page,
	})
}

// GetTicketByIDAPI returns the full record for the detail dialog from
// the cached collection.
func GetTicketByIDAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	id := c.Params("id")

	col := ticketsFor(session)
	if _, err := col.Load(c.Context()); err != nil {
		return c.Status(502).JSON(fiber.Map{"message": err.Error()})
	}

	ticket, ok := col.Find(func(t models.Ticket) bool { return t.ID == id })
	if !ok {
		return c.Status(404).JSON(fiber.Map{"message": "Ticket not found"})
	}
	return c.JSON(ticket)
}
