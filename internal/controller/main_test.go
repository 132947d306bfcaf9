package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"intake_backend/internal/model"
	"intake_backend/internal/routes"
	"intake_backend/pkg/database"
	"intake_backend/pkg/utils/jwt"
)

// setupTestApp rebuilds the app on a fresh in-memory database. The
// pool is pinned to one connection so every query sees the same
// SQLite memory database.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	require.NoError(t, database.Connect(sqlite.Open(":memory:")))

	sqlDB, err := database.GetDB().DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.MigrateDatabase(
		&model.Appointment{},
		&model.SchedulingRequest{},
		&model.ContactMessage{},
		&model.Subscription{},
		&model.Admin{},
	))

	app := fiber.New()
	routes.Setup(app)
	return app
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.GenerateToken(1, "admin@example.com")
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// validAppointmentInput covers every required appointment field.
func validAppointmentInput() map[string]interface{} {
	return map[string]interface{}{
		"requestorFirstName":   "Jane",
		"requestorLastName":    "Doe",
		"phoneNumber":          "555-0100",
		"contactEmail":         "jane.doe@example.com",
		"retireeFirstName":     "John",
		"retireeLastName":      "Doe",
		"retireePreferredName": "Johnny",
		"addressLine1":         "1 Main St",
		"city":                 "Dallas",
		"state":                "TX",
		"zipCode":              "75201",
		"branch":               "Army",
		"rank":                 "Colonel",
		"retirementDate":       "2026-10-01",
		"yearsService":         25,
		"mailingAddress1":      "1 Main St",
		"mailingCity":          "Dallas",
		"mailingState":         "TX",
		"mailingZipCode":       "75201",
	}
}

func validSchedulingInput() map[string]interface{} {
	return map[string]interface{}{
		"requestFor":    "President George W Bush",
		"firstName":     "Alice",
		"lastName":      "Smith",
		"addressLine1":  "2 Elm St",
		"city":          "Austin",
		"state":         "TX",
		"zipCode":       "73301",
		"phoneNumber":   "555-0101",
		"contactEmail":  "alice@example.com",
		"eventName":     "Veterans Gala",
		"eventLocation": "Austin Convention Center",
		"eventDate":     "2026-11-11",
	}
}

func validContactInput() map[string]interface{} {
	return map[string]interface{}{
		"name":    "Bob Brown",
		"email":   "bob@example.com",
		"message": "Thank you for your service.",
	}
}

func validSubscriptionInput() map[string]interface{} {
	return map[string]interface{}{
		"email":     "sub@example.com",
		"firstName": "Carol",
		"lastName":  "White",
	}
}
