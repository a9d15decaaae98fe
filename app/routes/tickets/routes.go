package tickets

import (
	"github.com/gofiber/fiber/v2"

	"work-sync-admin/app/routes/auth"
)

func SetupTicketsRoutes(app *fiber.App) {
	pages := app.Group("/admin")
	pages.Use(auth.AuthMiddleware)
	pages.Get("/tickets", TicketsPage)

	api := app.Group("/api/tickets")
	api.Use(auth.AuthMiddleware)
	api.Get("/table", GetTicketsTableAPI)
	api.Get("/detail/:id", GetTicketByIDAPI)
}

// TicketsPage renders the ticket list screen and resets its cached
// collection.
func TicketsPage(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	ticketLists.Reset(session.Email)

	return c.Render("tickets/index", fiber.Map{
		"Title":       "Tickets - Work Sync Admin",
		"CurrentPage": "tickets",
		"Email":       session.Email,
	})
}
