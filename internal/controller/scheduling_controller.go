package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"intake_backend/internal/model"
	"intake_backend/internal/service"
	"intake_backend/pkg/response"
	"intake_backend/pkg/validation"
)

type SchedulingInput struct {
	RequestFor string `json:"requestFor" validate:"required,oneof='President George W Bush' 'President Bush and Mrs Laura Bush'"`

	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	ZipCode      string `json:"zipCode" validate:"required"`
	PhoneNumber  string `json:"phoneNumber" validate:"required"`
	ContactEmail string `json:"contactEmail" validate:"required,email"`
	Organization string `json:"organization"`

	EventName        string `json:"eventName" validate:"required"`
	EventDescription string `json:"eventDescription"`
	EventLocation    string `json:"eventLocation" validate:"required"`
	EventDate        string `json:"eventDate" validate:"required"`

	OptIn bool `json:"optIn"`
}

var schedulingStore = service.NewStore[model.SchedulingRequest]()

func CreateSchedulingRequest(c *fiber.Ctx) error {
	input := new(SchedulingInput)
	if err := c.BodyParser(input); err != nil {
		return response.BadRequest(c, "Invalid input")
	}

	if messages := validation.Check(input); messages != nil {
		return response.ValidationFailed(c, messages)
	}

	request := model.SchedulingRequest{
		ReferenceID:      uuid.NewString(),
		RequestFor:       input.RequestFor,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		AddressLine1:     input.AddressLine1,
		AddressLine2:     input.AddressLine2,
		City:             input.City,
		State:            input.State,
		ZipCode:          input.ZipCode,
		PhoneNumber:      input.PhoneNumber,
		ContactEmail:     input.ContactEmail,
		Organization:     input.Organization,
		EventName:        input.EventName,
		EventDescription: input.EventDescription,
		EventLocation:    input.EventLocation,
		EventDate:        input.EventDate,
		OptIn:            input.OptIn,
	}

	if err := schedulingStore.Create(&request); err != nil {
		logrus.WithError(err).Error("Error creating scheduling request")
		return response.ServerError(c)
	}

	return response.Created(c, request)
}

func GetSchedulingRequests(c *fiber.Ctx) error {
	requests, err := schedulingStore.List()
	if err != nil {
		logrus.WithError(err).Error("Error fetching scheduling requests")
		return response.ServerError(c)
	}
	return response.List(c, len(requests), requests)
}

func GetSchedulingRequestByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid scheduling request ID")
	}

	request, err := schedulingStore.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.NotFound(c, "Scheduling request not found")
		}
		logrus.WithError(err).Error("Error fetching scheduling request")
		return response.ServerError(c)
	}
	return response.OK(c, request)
}

func UpdateSchedulingStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid scheduling request ID")
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return response.BadRequest(c, "Invalid input")
	}

	request, err := schedulingStore.UpdateStatus(id, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid status value")
		case errors.Is(err, service.ErrNotFound):
			return response.NotFound(c, "Scheduling request not found")
		}
		logrus.WithError(err).Error("Error updating scheduling request status")
		return response.ServerError(c)
	}
	return response.OK(c, request)
}

func DeleteSchedulingRequest(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid scheduling request ID")
	}

	if err := schedulingStore.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.NotFound(c, "Scheduling request not found")
		}
		logrus.WithError(err).Error("Error deleting scheduling request")
		return response.ServerError(c)
	}
	return response.OK(c, fiber.Map{})
}
