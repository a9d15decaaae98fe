package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"work-sync-admin/app/models"
)

// Error is the single error shape every failed backend call collapses
// into. Callers never distinguish transport failures from business-rule
// rejections beyond the message text.
type Error struct {
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// Client wraps outbound calls to the Work Sync backend. Every request
// carries the session's bearer token in the Authorization header and,
// when a session is present, the adminEmail query parameter.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var defaultClient *Client

// Init sets up the shared client used by the route packages.
func Init(baseURL string) {
	defaultClient = NewClient(baseURL)
}

func Default() *Client {
	return defaultClient
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

func (c *Client) Get(ctx context.Context, session models.Session, path string, query url.Values, out interface{}) error {
	return c.do(ctx, session, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, session models.Session, path string, body interface{}, out interface{}) error {
	return c.do(ctx, session, http.MethodPost, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, session models.Session, path string, body interface{}, out interface{}) error {
	return c.do(ctx, session, http.MethodPatch, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, session models.Session, method, path string, query url.Values, body, out interface{}) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return &Error{Message: "Invalid request URL"}
	}

	q := u.Query()
	for key, values := range query {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	if session.Email != "" && q.Get("adminEmail") == "" {
		q.Set("adminEmail", session.Email)
	}
	u.RawQuery = q.Encode()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: "Failed to encode request body"}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return &Error{Message: "Failed to build request"}
	}
	if session.Token != "" {
		req.Header.Set("Authorization", session.Token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Message: "Failed to reach the Work Sync backend. Please try again later."}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Message: "Failed to read backend response"}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Message: errorMessage(data, resp.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &Error{Message: "Backend returned an unexpected response"}
		}
	}
	return nil
}

// errorMessage pulls a human-readable message out of an error payload,
// falling back to the HTTP status text.
func errorMessage(data []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return http.StatusText(status)
}
