package announcements

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"work-sync-admin/app/gateway"
	"work-sync-admin/app/listview"
	"work-sync-admin/app/models"
	"work-sync-admin/app/routes/auth"
)

var (
	// The backend exposes no announcement listing; the screen shows the
	// announcements sent during this server session, newest first.
	announcementLists = listview.NewRegistry[models.Announcement]()

	validate = validator.New()
)

func announcementsFor(session models.Session) *listview.Collection[models.Announcement] {
	return announcementLists.Get(session.Email, func(ctx context.Context) ([]models.Announcement, error) {
		return []models.Announcement{}, nil
	})
}

// GetAnnouncementsTableAPI returns one page of sent announcements.
func GetAnnouncementsTableAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)

	all, err := announcementsFor(session).Load(c.Context())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{
			"state":   listview.StateFailed.String(),
			"message": err.Error(),
		})
	}

	page := listview.Paginate(all, c.QueryInt("page", 0), listview.DefaultPageSize)

	return c.JSON(fiber.Map{
		"state": listview.StateLoaded.String(),
		"table": page,
	})
}

// CreateAnnouncementAPI validates the draft, posts it to the backend
// and prepends it to the sent list on success.
func CreateAnnouncementAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)

	announcement := models.Announcement{}
	if err := c.BodyParser(&announcement); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := validate.Struct(announcement); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Please fill all fields"})
	}

	announcement.ID = uuid.NewString()
	announcement.CreatedAt = time.Now()
	announcement.Read = false

	if err := gateway.Default().CreateAnnouncement(c.Context(), session, announcement); err != nil {
		return c.Status(502).JSON(fiber.Map{"message": err.Error()})
	}

	announcementsFor(session).Prepend(announcement)

	return c.JSON(fiber.Map{
		"message":      "Announcement created successfully",
		"announcement": announcement,
	})
}
