package models

import "time"

// Meeting represents a scheduled meeting. MeetingLink is only set when
// the mode is Online.
type Meeting struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	MeetingTitle  string      `json:"meetingTitle" validate:"required"`
	Description   string      `json:"description" validate:"required"`
	MeetingMode   MeetingMode `json:"meetingMode" validate:"required"`
	Participants  []string    `json:"participants"`
	Duration      string      `json:"duration" validate:"required"`
	Date          string      `json:"date" validate:"required"`
	ScheduledTime time.Time   `json:"scheduledTime"`
	MeetingLink   string      `json:"meetingLink,omitempty"`
	Status        string      `json:"status"`
}
