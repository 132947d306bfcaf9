package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"intake_backend/internal/middleware"
	"intake_backend/internal/model"
	"intake_backend/pkg/database"
	"intake_backend/pkg/response"
	"intake_backend/pkg/utils/jwt"
	"intake_backend/pkg/validation"
)

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a console account. Open like the original intake
// API, but duplicate emails are always rejected rather than
// overwritten.
func Register(c *fiber.Ctx) error {
	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return response.BadRequest(c, "Invalid input")
	}

	if messages := validation.Check(input); messages != nil {
		return response.ValidationFailed(c, messages)
	}

	var existing model.Admin
	if err := database.GetDB().Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return response.BadRequest(c, "Email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Error hashing admin password")
		return response.ServerError(c)
	}

	admin := model.Admin{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
	}

	if err := database.GetDB().Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.BadRequest(c, "Email already exists")
		}
		logrus.WithError(err).Error("Error registering admin")
		return response.ServerError(c)
	}

	token, err := jwt.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		logrus.WithError(err).Error("Error generating token")
		return response.ServerError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"token":   token,
	})
}

// Login answers the same way for an unknown email and a wrong password.
func Login(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return response.BadRequest(c, "Invalid input")
	}

	if input.Email == "" || input.Password == "" {
		return response.BadRequest(c, "Please provide email and password")
	}

	var admin model.Admin
	if err := database.GetDB().Where("email = ?", input.Email).First(&admin).Error; err != nil {
		return response.Unauthorized(c, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil {
		return response.Unauthorized(c, "Invalid credentials")
	}

	token, err := jwt.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		logrus.WithError(err).Error("Error generating token")
		return response.ServerError(c)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"admin":   admin.GetPublicProfile(),
	})
}

// GetMe returns the profile for the id carried in the verified token.
func GetMe(c *fiber.Ctx) error {
	claims := middleware.AdminClaims(c)

	var admin model.Admin
	if err := database.GetDB().First(&admin, claims.AdminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Admin not found")
		}
		logrus.WithError(err).Error("Error fetching admin profile")
		return response.ServerError(c)
	}

	return response.OK(c, admin)
}
