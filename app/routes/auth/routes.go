package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"work-sync-admin/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	admin := app.Group("/admin")

	// Public routes
	admin.Get("/login", ShowLoginPage)
	admin.Post("/login", LoginAPI)
	admin.Post("/logout", LogoutAPI)
	admin.Get("/register", ShowRegisterPage)
	admin.Post("/register", RegisterAPI)
	admin.Get("/login/forgot", ShowForgotPasswordPage)
	admin.Post("/login/forgot", ForgotPasswordAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Already signed in, go straight to the dashboard
	if SessionFromCtx(c).IsAuthenticated() {
		return c.Redirect("/admin/employee-details")
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - Work Sync Admin",
	}, "")
}

func ShowRegisterPage(c *fiber.Ctx) error {
	return c.Render("auth/register", fiber.Map{
		"Title": "Register - Work Sync Admin",
	}, "")
}

func ShowForgotPasswordPage(c *fiber.Ctx) error {
	return c.Render("auth/forgot-password", fiber.Map{
		"Title": "Forgot Password - Work Sync Admin",
	}, "")
}

// SessionFromCtx returns the session carried by the request cookie. A
// missing or corrupt cookie yields an empty, unauthenticated session.
func SessionFromCtx(c *fiber.Ctx) models.Session {
	if session, ok := c.Locals("session").(models.Session); ok {
		return session
	}

	value := c.Cookies(SessionCookie)
	if value == "" {
		return models.Session{}
	}
	session, err := ParseSessionToken(value)
	if err != nil {
		return models.Session{}
	}
	return session
}

// AuthMiddleware is the route guard. Guarded pages redirect to the
// login screen when no valid session exists; API paths get a 401.
func AuthMiddleware(c *fiber.Ctx) error {
	session := SessionFromCtx(c)

	if !session.IsAuthenticated() {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(401).JSON(fiber.Map{"message": "Not authenticated"})
		}
		return c.Redirect("/admin/login")
	}

	c.Locals("session", session)
	return c.Next()
}
