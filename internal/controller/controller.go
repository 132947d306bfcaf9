// Package controller holds the Fiber handlers for the public intake
// forms and the admin console API.
package controller

// StatusInput is the body of every admin status-update call.
type StatusInput struct {
	Status string `json:"status"`
}
