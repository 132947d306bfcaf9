package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	app := setupTestApp(t)
	token := adminToken(t)

	resp := doRequest(t, app, "POST", "/api/appointments", validAppointmentInput(), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doRequest(t, app, "POST", "/api/contact", validContactInput(), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doRequest(t, app, "POST", "/api/subscribe", validSubscriptionInput(), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, "GET", "/api/admin/stats", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, "GET", "/api/admin/stats", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["totalAppointments"])
	assert.Equal(t, float64(1), data["pendingAppointments"])
	assert.Equal(t, float64(0), data["totalScheduling"])
	assert.Equal(t, float64(1), data["newContacts"])
	assert.Equal(t, float64(1), data["activeSubscriptions"])
}
