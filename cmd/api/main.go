package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"

	"intake_backend/internal/model"
	"intake_backend/internal/routes"
	"intake_backend/pkg/config"
	"intake_backend/pkg/database"
	"intake_backend/pkg/seed"
	"intake_backend/pkg/utils/jwt"
)

func main() {
	cfg := config.Load()
	jwt.Init(cfg.JWT)

	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	database.InitDB(cfg.Database.URL)
	err := database.MigrateDatabase(
		&model.Appointment{},
		&model.SchedulingRequest{},
		&model.ContactMessage{},
		&model.Subscription{},
		&model.Admin{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	seed.SeedAdminAccount(database.GetDB())

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			logrus.WithError(err).Error("Unhandled error")
			body := fiber.Map{
				"success": false,
				"error":   "Server Error",
			}
			if !cfg.IsProduction() {
				body["detail"] = err.Error()
			}
			return c.Status(fiber.StatusInternalServerError).JSON(body)
		},
	})

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New())

	routes.Setup(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
