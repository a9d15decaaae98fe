package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"work-sync-admin/app/gateway"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Email and password are required"})
	}

	resp, err := gateway.Default().Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": err.Error()})
	}

	value, err := GenerateSessionToken(resp.Token, req.Email)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to create session"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    value,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"email":   req.Email,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	// Clear the session cookie then force navigation to login
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect("/admin/login")
}

func RegisterAPI(c *fiber.Ctx) error {
	var req gateway.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"message": "All fields are required"})
	}

	if err := gateway.Default().Register(c.Context(), req); err != nil {
		return c.Status(502).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Registration successful. Please log in."})
}

func ForgotPasswordAPI(c *fiber.Ctx) error {
	type ForgotPasswordRequest struct {
		Email string `json:"email" form:"email"`
	}

	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}
	if req.Email == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Email is required"})
	}

	if err := gateway.Default().ForgotPassword(c.Context(), req.Email); err != nil {
		return c.Status(502).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Password reset instructions sent"})
}
