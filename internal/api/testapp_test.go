package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vchaumont/agenda/internal/i18n"
	"github.com/vchaumont/agenda/internal/store"
)

var testClock = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*fiber.App, *store.Session) {
	t.Helper()

	now := func() time.Time { return testClock }
	session := store.NewSession(now, "Europe/Paris")

	i18nManager, err := i18n.NewManager(i18n.LangFR)
	if err != nil {
		t.Fatalf("i18n init failed: %v", err)
	}

	handler, err := NewHandler(session, i18nManager, time.UTC, time.Monday, now)
	if err != nil {
		t.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, session
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		serialized, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewReader(serialized)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()

	content, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(content, target); err != nil {
		t.Fatalf("decode response body %q: %v", content, err)
	}
}

func expectStatus(t *testing.T, response *http.Response, status int) {
	t.Helper()
	if response.StatusCode != status {
		t.Fatalf("expected status %d, got %d", status, response.StatusCode)
	}
}
