package models

// Session is the {token, email} pair proving the current admin is
// authenticated. The token is the opaque bearer token issued by the
// backend at login; the email scopes every admin API call.
type Session struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// IsAuthenticated reports whether the session is usable. Both fields
// must be present; a partially populated session never authenticates.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.Email != ""
}
