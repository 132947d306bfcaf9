package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intake_backend/internal/model"
	"intake_backend/pkg/database"
)

func TestCreateSubscription(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, "POST", "/api/subscribe", validSubscriptionInput(), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Thank you for subscribing!", body["message"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "active", data["status"])
	assert.Equal(t, true, data["fiveForFriday"])
	assert.Equal(t, true, data["catalyst"])
}

func TestCreateSubscriptionExplicitOptOut(t *testing.T) {
	app := setupTestApp(t)

	input := validSubscriptionInput()
	input["fiveForFriday"] = false
	input["catalyst"] = false
	resp := doRequest(t, app, "POST", "/api/subscribe", input, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, false, data["fiveForFriday"])
	assert.Equal(t, false, data["catalyst"])

	var sub model.Subscription
	require.NoError(t, database.GetDB().Where("email = ?", input["email"]).First(&sub).Error)
	assert.False(t, sub.FiveForFriday)
	assert.False(t, sub.Catalyst)
	assert.Equal(t, "active", sub.Status)
}

func TestSubscriptionUpsertByEmail(t *testing.T) {
	app := setupTestApp(t)

	input := validSubscriptionInput()
	input["email"] = "a@x.com"
	input["firstName"] = "Jo"
	resp := doRequest(t, app, "POST", "/api/subscribe", input, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	input["firstName"] = "Joan"
	resp = doRequest(t, app, "POST", "/api/subscribe", input, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Your subscription preferences have been updated", body["message"])

	var subs []model.Subscription
	require.NoError(t, database.GetDB().Where("email = ?", "a@x.com").Find(&subs).Error)
	require.Len(t, subs, 1)
	assert.Equal(t, "Joan", subs[0].FirstName)
	assert.Equal(t, "active", subs[0].Status)
}

func TestSubscriptionEmailIsCaseNormalized(t *testing.T) {
	app := setupTestApp(t)

	input := validSubscriptionInput()
	input["email"] = "Sub@Example.com"
	resp := doRequest(t, app, "POST", "/api/subscribe", input, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	input["email"] = "SUB@EXAMPLE.COM"
	resp = doRequest(t, app, "POST", "/api/subscribe", input, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, database.GetDB().Model(&model.Subscription{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubscriptionUpsertReactivates(t *testing.T) {
	app := setupTestApp(t)

	input := validSubscriptionInput()
	resp := doRequest(t, app, "POST", "/api/subscribe", input, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, "PUT", "/api/subscribe/unsubscribe", map[string]string{"email": input["email"].(string)}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/api/subscribe", input, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sub model.Subscription
	require.NoError(t, database.GetDB().Where("email = ?", input["email"]).First(&sub).Error)
	assert.Equal(t, "active", sub.Status)
}

func TestUnsubscribe(t *testing.T) {
	app := setupTestApp(t)
	token := adminToken(t)

	resp := doRequest(t, app, "POST", "/api/subscribe", validSubscriptionInput(), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeBody(t, resp)["data"].(map[string]interface{})
	id := data["id"].(float64)

	resp = doRequest(t, app, "PUT", "/api/subscribe/unsubscribe", map[string]string{"email": "sub@example.com"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "You have been unsubscribed successfully", decodeBody(t, resp)["message"])

	resp = doRequest(t, app, "GET", fmt.Sprintf("/api/subscribe/%.0f", id), nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "unsubscribed", data["status"])
}

func TestUnsubscribeFailures(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, "PUT", "/api/subscribe/unsubscribe", map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, "PUT", "/api/subscribe/unsubscribe", map[string]string{"email": "nobody@example.com"}, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubscriptionValidation(t *testing.T) {
	app := setupTestApp(t)

	input := validSubscriptionInput()
	delete(input, "lastName")
	resp := doRequest(t, app, "POST", "/api/subscribe", input, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	messages := decodeBody(t, resp)["error"].([]interface{})
	assert.Contains(t, messages, "Last name is required")
}

func TestSubscriptionAdminOperations(t *testing.T) {
	app := setupTestApp(t)
	token := adminToken(t)

	resp := doRequest(t, app, "POST", "/api/subscribe", validSubscriptionInput(), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeBody(t, resp)["data"].(map[string]interface{})["id"].(float64)
	path := fmt.Sprintf("/api/subscribe/%.0f", id)

	resp = doRequest(t, app, "GET", "/api/subscribe", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, "GET", "/api/subscribe", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), decodeBody(t, resp)["count"])

	resp = doRequest(t, app, "PUT", path, map[string]string{"status": "pending"}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, "PUT", path, map[string]string{"status": "unsubscribed"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "DELETE", path, nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "GET", path, nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
