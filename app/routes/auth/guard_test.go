package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"work-sync-admin/app/config"
)

func guardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin/employee-details", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/api/employees/table", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"state": "loaded"})
	})
	return app
}

func TestGuardRedirectsUnauthenticatedPageToLogin(t *testing.T) {
	config.Init()
	app := guardedApp()

	req := httptest.NewRequest("GET", "/admin/employee-details", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusFound)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin/login" {
		t.Errorf("redirect target = %q, want /admin/login", loc)
	}
}

func TestGuardRejectsUnauthenticatedAPIWith401(t *testing.T) {
	config.Init()
	app := guardedApp()

	req := httptest.NewRequest("GET", "/api/employees/table", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestGuardAdmitsValidSession(t *testing.T) {
	config.Init()
	app := guardedApp()

	value, err := GenerateSessionToken("backend-token", "admin@worksync.io")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("GET", "/admin/employee-details", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: value})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestGuardRejectsCorruptCookie(t *testing.T) {
	config.Init()
	app := guardedApp()

	req := httptest.NewRequest("GET", "/admin/employee-details", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-token"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Errorf("corrupt cookie should redirect to login, got %d", resp.StatusCode)
	}
}
