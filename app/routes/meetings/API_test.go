package meetings

import (
	"testing"
	"time"

	"work-sync-admin/app/models"
)

func draft() CreateMeetingRequest {
	return CreateMeetingRequest{
		MeetingTitle: "Sprint planning",
		Description:  "Plan the next sprint",
		MeetingMode:  models.MeetingOffline,
		Participants: []string{"a@worksync.io"},
		Duration:     "45 minutes",
		Date:         "2026-09-01",
		Time:         "10:30",
	}
}

func TestValidateAcceptsFutureMeeting(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	scheduled, err := draft().Validate(now)
	if err != nil {
		t.Fatalf("Validate returned %v, want nil", err)
	}
	want := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	if !scheduled.Equal(want) {
		t.Fatalf("scheduled = %v, want %v", scheduled, want)
	}
}

func TestValidateRejectsPastMeeting(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 31, 0, 0, time.UTC)

	if _, err := draft().Validate(now); err != errPastMeeting {
		t.Fatalf("Validate returned %v, want %v", err, errPastMeeting)
	}
}

func TestValidateRejectsMissingFields(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		field  string
		mutate func(*CreateMeetingRequest)
	}{
		{"meetingTitle", func(r *CreateMeetingRequest) { r.MeetingTitle = "" }},
		{"description", func(r *CreateMeetingRequest) { r.Description = "" }},
		{"meetingMode", func(r *CreateMeetingRequest) { r.MeetingMode = "" }},
		{"duration", func(r *CreateMeetingRequest) { r.Duration = "" }},
		{"date", func(r *CreateMeetingRequest) { r.Date = "" }},
		{"time", func(r *CreateMeetingRequest) { r.Time = "" }},
	}
	for _, tc := range cases {
		req := draft()
		tc.mutate(&req)
		if _, err := req.Validate(now); err != errRequiredFields {
			t.Errorf("missing %s: Validate returned %v, want %v", tc.field, err, errRequiredFields)
		}
	}
}

func TestValidateRequiresLinkForOnlineMeetings(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	req := draft()
	req.MeetingMode = models.MeetingOnline
	if _, err := req.Validate(now); err != errOnlineLink {
		t.Fatalf("Validate returned %v, want %v", err, errOnlineLink)
	}

	req.MeetingLink = "https://meet.worksync.io/abc"
	if _, err := req.Validate(now); err != nil {
		t.Fatalf("Validate with link returned %v, want nil", err)
	}
}

func TestValidateRejectsMalformedSchedule(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	req := draft()
	req.Time = "10:30pm"
	if _, err := req.Validate(now); err != errBadSchedule {
		t.Fatalf("Validate returned %v, want %v", err, errBadSchedule)
	}
}
