package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"intake_backend/internal/model"
	"intake_backend/pkg/database"
	"intake_backend/pkg/response"
)

// DashboardStats backs the admin dashboard counters.
type DashboardStats struct {
	TotalAppointments   int64 `json:"totalAppointments"`
	PendingAppointments int64 `json:"pendingAppointments"`
	TotalScheduling     int64 `json:"totalScheduling"`
	PendingScheduling   int64 `json:"pendingScheduling"`
	TotalContacts       int64 `json:"totalContacts"`
	NewContacts         int64 `json:"newContacts"`
	TotalSubscriptions  int64 `json:"totalSubscriptions"`
	ActiveSubscriptions int64 `json:"activeSubscriptions"`
}

func GetDashboardStats(c *fiber.Ctx) error {
	db := database.GetDB()
	var stats DashboardStats

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalAppointments, db.Model(&model.Appointment{})},
		{&stats.PendingAppointments, db.Model(&model.Appointment{}).Where("status = ?", model.AppointmentStatusPending)},
		{&stats.TotalScheduling, db.Model(&model.SchedulingRequest{})},
		{&stats.PendingScheduling, db.Model(&model.SchedulingRequest{}).Where("status = ?", model.SchedulingStatusPending)},
		{&stats.TotalContacts, db.Model(&model.ContactMessage{})},
		{&stats.NewContacts, db.Model(&model.ContactMessage{}).Where("status = ?", model.ContactStatusNew)},
		{&stats.TotalSubscriptions, db.Model(&model.Subscription{})},
		{&stats.ActiveSubscriptions, db.Model(&model.Subscription{}).Where("status = ?", model.SubscriptionStatusActive)},
	}

	for _, count := range counts {
		if err := count.query.Count(count.dest).Error; err != nil {
			logrus.WithError(err).Error("Error fetching dashboard stats")
			return response.ServerError(c)
		}
	}

	return response.OK(c, stats)
}
