package auth

import (
	"testing"

	"work-sync-admin/app/config"
	"work-sync-admin/app/models"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	config.Init()

	value, err := GenerateSessionToken("backend-token", "admin@worksync.io")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	session, err := ParseSessionToken(value)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if session.Token != "backend-token" || session.Email != "admin@worksync.io" {
		t.Errorf("round trip lost data: %+v", session)
	}
	if !session.IsAuthenticated() {
		t.Error("round-tripped session must be authenticated")
	}
}

func TestCorruptTokenIsNotAuthenticated(t *testing.T) {
	config.Init()

	for _, value := range []string{"", "garbage", "a.b.c"} {
		session, err := ParseSessionToken(value)
		if err == nil {
			t.Errorf("parse of %q should fail", value)
		}
		if session.IsAuthenticated() {
			t.Errorf("corrupt token %q must not authenticate", value)
		}
	}
}

func TestSessionAuthenticationRequiresBothFields(t *testing.T) {
	cases := []struct {
		session models.Session
		want    bool
	}{
		{models.Session{}, false},
		{models.Session{Token: "t"}, false},
		{models.Session{Email: "e@worksync.io"}, false},
		{models.Session{Token: "t", Email: "e@worksync.io"}, true},
	}
	for _, tc := range cases {
		if got := tc.session.IsAuthenticated(); got != tc.want {
			t.Errorf("IsAuthenticated(%+v) = %v, want %v", tc.session, got, tc.want)
		}
	}
}
