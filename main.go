package main

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"work-sync-admin/app/config"
	"work-sync-admin/app/gateway"
	"work-sync-admin/app/routes/announcements"
	"work-sync-admin/app/routes/auth"
	"work-sync-admin/app/routes/employees"
	"work-sync-admin/app/routes/leaves"
	"work-sync-admin/app/routes/meetings"
	"work-sync-admin/app/routes/subadmins"
	"work-sync-admin/app/routes/tasks"
	"work-sync-admin/app/routes/tickets"
)

// customErrorHandler is the last-resort boundary: JSON for API paths,
// a static failure page for everything else.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(code).JSON(fiber.Map{"message": err.Error()})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - Work Sync Admin",
			"CurrentPage": "",
		})
	case 401:
		return c.Redirect("/admin/login")
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Work Sync Admin",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorMessage": "Something went wrong.",
		})
	}
}

func main() {
	// Load configuration and set up the backend gateway
	config.Init()
	gateway.Init(config.Get().APIBaseURL)

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/admin/login")
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup employees routes
	employees.SetupEmployeesRoutes(app)

	// Setup sub-admins routes
	subadmins.SetupSubAdminsRoutes(app)

	// Setup leave request routes
	leaves.SetupLeavesRoutes(app)

	// Setup tasks routes
	tasks.SetupTasksRoutes(app)

	// Setup tickets routes
	tickets.SetupTicketsRoutes(app)

	// Setup meetings routes
	meetings.SetupMeetingsRoutes(app)

	// Setup announcements routes
	announcements.SetupAnnouncementsRoutes(app)

	// Unknown pages bounce back into the guarded area; the route guard
	// sends unauthenticated visitors on to the login screen.
	app.Use("*", func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return fiber.NewError(fiber.StatusNotFound, "Not found")
		}
		return c.Redirect("/admin/employee-details")
	})

	log.Println("Server starting on :" + config.Get().Port)
	log.Fatal(app.Listen(":" + config.Get().Port))
}
