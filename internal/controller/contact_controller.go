package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"intake_backend/internal/model"
	"intake_backend/internal/service"
	"intake_backend/pkg/response"
	"intake_backend/pkg/validation"
)

type ContactInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Message     string `json:"message" validate:"required"`
	InquiryType string `json:"inquiryType" validate:"omitempty,oneof=general media presidential"`
}

var contactStore = service.NewStore[model.ContactMessage]()

func SubmitContactForm(c *fiber.Ctx) error {
	input := new(ContactInput)
	if err := c.BodyParser(input); err != nil {
		return response.BadRequest(c, "Invalid input")
	}

	if messages := validation.Check(input); messages != nil {
		return response.ValidationFailed(c, messages)
	}

	if input.InquiryType == "" {
		input.InquiryType = model.InquiryTypeGeneral
	}

	contact := model.ContactMessage{
		Name:        input.Name,
		Email:       input.Email,
		Message:     input.Message,
		InquiryType: input.InquiryType,
	}

	if err := contactStore.Create(&contact); err != nil {
		logrus.WithError(err).Error("Error submitting contact form")
		return response.ServerError(c)
	}

	return response.CreatedWithMessage(c, contact, "Your message has been submitted successfully!")
}

func GetContactMessages(c *fiber.Ctx) error {
	contacts, err := contactStore.List()
	if err != nil {
		logrus.WithError(err).Error("Error fetching contact messages")
		return response.ServerError(c)
	}
	return response.List(c, len(contacts), contacts)
}

func GetContactByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid contact message ID")
	}

	contact, err := contactStore.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.NotFound(c, "Contact message not found")
		}
		logrus.WithError(err).Error("Error fetching contact message")
		return response.ServerError(c)
	}
	return response.OK(c, contact)
}

func UpdateContactStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid contact message ID")
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return response.BadRequest(c, "Invalid input")
	}

	contact, err := contactStore.UpdateStatus(id, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid status value")
		case errors.Is(err, service.ErrNotFound):
			return response.NotFound(c, "Contact message not found")
		}
		logrus.WithError(err).Error("Error updating contact status")
		return response.ServerError(c)
	}
	return response.OK(c, contact)
}

func DeleteContact(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid contact message ID")
	}

	if err := contactStore.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.NotFound(c, "Contact message not found")
		}
		logrus.WithError(err).Error("Error deleting contact message")
		return response.ServerError(c)
	}
	return response.OK(c, fiber.Map{})
}
