package meetings

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"work-sync-admin/app/gateway"
	"work-sync-admin/app/listview"
	"work-sync-admin/app/models"
	"work-sync-admin/app/routes/auth"
)

var meetingLists = listview.NewRegistry[models.Meeting]()

func meetingsFor(session models.Session) *listview.Collection[models.Meeting] {
	return meetingLists.Get(session.Email, func(ctx context.Context) ([]models.Meeting, error) {
		return gateway.Default().FetchMeetings(ctx, session)
	})
}

// GetMeetingsTableAPI returns one page of the meeting table, filtered
// by title, mode and date.
func GetMeetingsTableAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)

	all, err := meetingsFor(session).Load(c.Context())
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
		listview.Text(c.Query("title"), func(m models.Meeting) string { return m.MeetingTitle }),
		listview.Exact(c.Query("mode"), func(m models.Meeting) string { return string(m.MeetingMode) }),
		listview.Exact(c.Query("date"), func(m models.Meeting) string { return m.Date }),
	)
	page := listview.Paginate(filtered, c.QueryInt("page", 0), listview.DefaultPageSize)

	return c.JSON(fiber.Map{
		"state": listview.StateLoaded.String(),
		"table": page,
	})
}

// GetMeetingByIDAPI returns the full record for the detail dialog from
// the cached collection.
func GetMeetingByIDAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)
	id := c.Params("id")

	col := meetingsFor(session)
	if _, err := col.Load(c.Context()); err != nil {
		return c.Status(502).JSON(fiber.Map{"message": err.Error()})
	}

	meeting, ok := col.Find(func(m models.Meeting) bool { return m.ID == id })
	if !ok {
		return c.Status(404).JSON(fiber.Map{"message": "Meeting not found"})
	}
	return c.JSON(meeting)
}

// GetParticipantsAPI returns the approved users selectable as meeting
// participants.
func GetParticipantsAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)

	users, err := gateway.Default().FetchApprovedUsers(c.Context(), session)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"message": err.Error()})
	}

	type participant struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	participants := make([]participant, 0, len(users))
	for _, u := range users {
		participants = append(participants, participant{Name: u.Name, Email: u.Email})
	}
	return c.JSON(participants)
}

// CreateMeetingRequest is the draft submitted from the meeting form.
type CreateMeetingRequest struct {
	MeetingTitle string             `json:"meetingTitle"`
	Description  string             `json:"description"`
	MeetingMode  models.MeetingMode `json:"meetingMode"`
	Participants []string           `json:"participants"`
	Duration     string             `json:"duration"`
	Date         string             `json:"date"`
	Time         string             `json:"time"`
	MeetingLink  string             `json:"meetingLink"`
}

// Validate checks the draft against the wall clock. A meeting scheduled
// strictly before now is rejected before any network call.
func (r CreateMeetingRequest) Validate(now time.Time) (time.Time, error) {
	if r.MeetingTitle == "" || r.Description == "" || r.MeetingMode == "" ||
		r.Duration == "" || r.Date == "" || r.Time == "" {
		return time.Time{}, errRequiredFields
	}
	if r.MeetingMode == models.MeetingOnline && r.MeetingLink == "" {
		return time.Time{}, errOnlineLink
	}

	scheduled, err := time.ParseInLocation("2006-01-02 15:04", r.Date+" "+r.Time, now.Location())
	if err != nil {
		return time.Time{}, errBadSchedule
	}
	if scheduled.Before(now) {
		return time.Time{}, errPastMeeting
	}
	return scheduled, nil
}

var (
	errRequiredFields = fiber.NewError(fiber.StatusBadRequest, "Please fill all required fields")
	errOnlineLink     = fiber.NewError(fiber.StatusBadRequest, "A meeting link is required for online meetings")
	errBadSchedule    = fiber.NewError(fiber.StatusBadRequest, "Invalid meeting date or time")
	errPastMeeting    = fiber.NewError(fiber.StatusBadRequest, "Cannot create a meeting in the past")
)

// CreateMeetingAPI validates the draft, submits it to the backend and
// prepends the created meeting to the cached collection.
func CreateMeetingAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)

	var req CreateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}

	scheduled, err := req.Validate(time.Now())
	if err != nil {
		if e, ok := err.(*fiber.Error); ok {
			return c.Status(e.Code).JSON(fiber.Map{"message": e.Message})
		}
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	}

	link := ""
	if req.MeetingMode == models.MeetingOnline {
		link = req.MeetingLink
	}

	meeting := models.Meeting{
		ID:            uuid.NewString(),
		Name:          session.Email,
		Email:         session.Email,
		MeetingTitle:  req.MeetingTitle,
		Description:   req.Description,
		MeetingMode:   req.MeetingMode,
		Participants:  append([]string{session.Email}, req.Participants...),
		Duration:      req.Duration,
		Date:          req.Date,
		ScheduledTime: scheduled,
		MeetingLink:   link,
		Status:        "OPEN",
	}

	created, err := gateway.Default().CreateMeeting(c.Context(), session, meeting)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"message": err.Error()})
	}

	meetingsFor(session).Prepend(*created)

	return c.JSON(fiber.Map{
		"message": "Meeting created successfully",
		"meeting": created,
	})
}
