package routes

import (
	"github.com/gofiber/fiber/v2"

	"intake_backend/internal/controller"
	"intake_backend/internal/middleware"
)

// Setup mounts the full route table. Intake submissions, unsubscribe
// and the auth endpoints are public; everything else sits behind the
// admin guard.
func Setup(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to the Office of George W. Bush API"})
	})

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", controller.Register)
	auth.Post("/login", controller.Login)
	auth.Get("/me", middleware.RequireAdmin(), controller.GetMe)

	appointments := api.Group("/appointments")
	appointments.Post("/", controller.CreateAppointment)
	appointments.Get("/", middleware.RequireAdmin(), controller.GetAppointments)
	appointments.Get("/:id", middleware.RequireAdmin(), controller.GetAppointmentByID)
	appointments.Put("/:id", middleware.RequireAdmin(), controller.UpdateAppointmentStatus)
	appointments.Delete("/:id", middleware.RequireAdmin(), controller.DeleteAppointment)

	scheduling := api.Group("/scheduling")
	scheduling.Post("/", controller.CreateSchedulingRequest)
	scheduling.Get("/", middleware.RequireAdmin(), controller.GetSchedulingRequests)
	scheduling.Get("/:id", middleware.RequireAdmin(), controller.GetSchedulingRequestByID)
	scheduling.Put("/:id", middleware.RequireAdmin(), controller.UpdateSchedulingStatus)
	scheduling.Delete("/:id", middleware.RequireAdmin(), controller.DeleteSchedulingRequest)

	contact := api.Group("/contact")
	contact.Post("/", controller.SubmitContactForm)
	contact.Get("/", middleware.RequireAdmin(), controller.GetContactMessages)
	contact.Get("/:id", middleware.RequireAdmin(), controller.GetContactByID)
	contact.Put("/:id", middleware.RequireAdmin(), controller.UpdateContactStatus)
	contact.Delete("/:id", middleware.RequireAdmin(), controller.DeleteContact)

	subscribe := api.Group("/subscribe")
	subscribe.Post("/", controller.CreateSubscription)
	// Registered before /:id so the literal path wins.
	subscribe.Put("/unsubscribe", controller.Unsubscribe)
	subscribe.Get("/", middleware.RequireAdmin(), controller.GetSubscriptions)
	subscribe.Get("/:id", middleware.RequireAdmin(), controller.GetSubscriptionByID)
	subscribe.Put("/:id", middleware.RequireAdmin(), controller.UpdateSubscriptionStatus)
	subscribe.Delete("/:id", middleware.RequireAdmin(), controller.DeleteSubscription)

	admin := api.Group("/admin", middleware.RequireAdmin())
	admin.Get("/stats", controller.GetDashboardStats)
}
