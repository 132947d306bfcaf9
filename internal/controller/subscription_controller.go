package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"intake_backend/internal/model"
	"intake_backend/internal/service"
	"intake_backend/pkg/database"
	"intake_backend/pkg/response"
	"intake_backend/pkg/validation"
)

type SubscriptionInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`

	// Pointers so an omitted flag keeps the opt-in default.
	FiveForFriday *bool `json:"fiveForFriday"`
	Catalyst      *bool `json:"catalyst"`
}

type UnsubscribeInput struct {
	Email string `json:"email"`
}

var subscriptionStore = service.NewStore[model.Subscription]()

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func subscriptionFields(input *SubscriptionInput) map[string]interface{} {
	fiveForFriday := true
	if input.FiveForFriday != nil {
		fiveForFriday = *input.FiveForFriday
	}
	catalyst := true
	if input.Catalyst != nil {
		catalyst = *input.Catalyst
	}

	return map[string]interface{}{
		"first_name":      input.FirstName,
		"last_name":       input.LastName,
		"city":            input.City,
		"state":           input.State,
		"zip":             input.Zip,
		"five_for_friday": fiveForFriday,
		"catalyst":        catalyst,
		"status":          model.SubscriptionStatusActive,
	}
}

// CreateSubscription is an upsert keyed on email: a repeat submission
// updates the stored preferences and re-activates the subscription
// instead of creating a duplicate row.
func CreateSubscription(c *fiber.Ctx) error {
	input := new(SubscriptionInput)
	if err := c.BodyParser(input); err != nil {
		return response.BadRequest(c, "Invalid input")
	}

	if messages := validation.Check(input); messages != nil {
		return response.ValidationFailed(c, messages)
	}

	email := normalizeEmail(input.Email)
	db := database.GetDB()

	var existing model.Subscription
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return updateSubscriptionPreferences(c, &existing, input)
	}

	subscription := model.Subscription{
		Email:         email,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		City:          input.City,
		State:         input.State,
		Zip:           input.Zip,
		FiveForFriday: input.FiveForFriday == nil || *input.FiveForFriday,
		Catalyst:      input.Catalyst == nil || *input.Catalyst,
	}

	if err := subscriptionStore.Create(&subscription); err != nil {
		// Lost a race with a concurrent submission for the same email;
		// fall back to updating the row that won.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
				return updateSubscriptionPreferences(c, &existing, input)
			}
		}
		logrus.WithError(err).Error("Error processing subscription")
		return response.ServerError(c)
	}

	return response.CreatedWithMessage(c, subscription, "Thank you for subscribing!")
}

func updateSubscriptionPreferences(c *fiber.Ctx, existing *model.Subscription, input *SubscriptionInput) error {
	if err := database.GetDB().Model(existing).Updates(subscriptionFields(input)).Error; err != nil {
		logrus.WithError(err).Error("Error updating subscription")
		return response.ServerError(c)
	}
	return response.OKWithMessage(c, existing, "Your subscription preferences have been updated")
}

// Unsubscribe flips the status by email. The record stays so the
// subscriber can re-activate later through the signup form.
func Unsubscribe(c *fiber.Ctx) error {
	input := new(UnsubscribeInput)
	if err := c.BodyParser(input); err != nil {
		return response.BadRequest(c, "Invalid input")
	}

	if input.Email == "" {
		return response.BadRequest(c, "Email is required")
	}

	result := database.GetDB().Model(&model.Subscription{}).
		Where("email = ?", normalizeEmail(input.Email)).
		Update("status", model.SubscriptionStatusUnsubscribed)
	if result.Error != nil {
		logrus.WithError(result.Error).Error("Error unsubscribing")
		return response.ServerError(c)
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Subscription not found")
	}

	return response.Message(c, "You have been unsubscribed successfully")
}

func GetSubscriptions(c *fiber.Ctx) error {
	subscriptions, err := subscriptionStore.List()
	if err != nil {
		logrus.WithError(err).Error("Error fetching subscriptions")
		return response.ServerError(c)
	}
	return response.List(c, len(subscriptions), subscriptions)
}

func GetSubscriptionByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid subscription ID")
	}

	subscription, err := subscriptionStore.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.NotFound(c, "Subscription not found")
		}
		logrus.WithError(err).Error("Error fetching subscription")
		return response.ServerError(c)
	}
	return response.OK(c, subscription)
}

func UpdateSubscriptionStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid subscription ID")
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return response.BadRequest(c, "Invalid input")
	}

	subscription, err := subscriptionStore.UpdateStatus(id, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid status value")
		case errors.Is(err, service.ErrNotFound):
			return response.NotFound(c, "Subscription not found")
		}
		logrus.WithError(err).Error("Error updating subscription status")
		return response.ServerError(c)
	}
	return response.OK(c, subscription)
}

func DeleteSubscription(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid subscription ID")
	}

	if err := subscriptionStore.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.NotFound(c, "Subscription not found")
		}
		logrus.WithError(err).Error("Error deleting subscription")
		return response.ServerError(c)
	}
	return response.OK(c, fiber.Map{})
}
