package leaves

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"work-sync-admin/app/config"
	"work-sync-admin/app/gateway"
	"work-sync-admin/app/routes/auth"
)

// Once the backend confirms the resolution, the handler must report
// success even when the cached collection has no matching record (it
// may have been reset between load and resolve).
func TestResolveSucceedsWhenCacheMissesRecord(t *testing.T) {
	config.Init()

	var patched bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			patched = true
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()
	gateway.Init(server.URL)

	app := fiber.New()
	SetupLeavesRoutes(app)

	value, err := auth.GenerateSessionToken("backend-token", "resolve-admin@worksync.io")
	if err != nil {
		t.Fatal(err)
	}

	body := `{"leaveId":"l9","status":"APPROVED"}`
	req := httptest.NewRequest("PATCH", "/api/leaves/resolve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: value})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !patched {
		t.Fatal("backend was never asked to resolve the leave")
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(payload.Message, "APPROVED") {
		t.Errorf("message = %q, want the resolved status", payload.Message)
	}
}
