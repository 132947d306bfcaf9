package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"intake_backend/internal/model"
	"intake_backend/internal/service"
	"intake_backend/pkg/response"
	"intake_backend/pkg/validation"
)

type AppointmentInput struct {
	RequestorFirstName string `json:"requestorFirstName" validate:"required"`
	RequestorLastName  string `json:"requestorLastName" validate:"required"`
	PhoneNumber        string `json:"phoneNumber" validate:"required"`
	ContactEmail       string `json:"contactEmail" validate:"required,email"`
	OptIn              bool   `json:"optIn"`

	RetireeFirstName     string `json:"retireeFirstName" validate:"required"`
	RetireeMiddleName    string `json:"retireeMiddleName"`
	RetireeLastName      string `json:"retireeLastName" validate:"required"`
	RetireePreferredName string `json:"retireePreferredName" validate:"required"`

	AddressLine1 string `json:"addressLine1" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	ZipCode      string `json:"zipCode" validate:"required"`

	Branch    string `json:"branch" validate:"required"`
	Rank      string `json:"rank" validate:"required"`
	OtherRank string `json:"otherRank"`

	RetirementDate string `json:"retirementDate" validate:"required"`
	CeremonyDate   string `json:"ceremonyDate"`
	YearsService   int    `json:"yearsService" validate:"required,gte=20"`

	MailingAddress1 string `json:"mailingAddress1" validate:"required"`
	MailingAddress2 string `json:"mailingAddress2"`
	MailingAddress3 string `json:"mailingAddress3"`
	MailingAddress4 string `json:"mailingAddress4"`
	MailingAddress5 string `json:"mailingAddress5"`
	Company         string `json:"company"`
	POC             string `json:"poc"`
	MailingCity     string `json:"mailingCity" validate:"required"`
	MailingState    string `json:"mailingState" validate:"required"`
	MailingZipCode  string `json:"mailingZipCode" validate:"required"`

	AdditionalComments string `json:"additionalComments"`
}

var appointmentStore = service.NewStore[model.Appointment]()

// parseDate accepts the date-picker format first, RFC3339 as a
// fallback for API clients.
func parseDate(value string) (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return datatypes.Date{}, err
		}
	}
	return datatypes.Date(t), nil
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

func CreateAppointment(c *fiber.Ctx) error {
	input := new(AppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return response.BadRequest(c, "Invalid input")
	}

	if messages := validation.Check(input); messages != nil {
		return response.ValidationFailed(c, messages)
	}

	retirementDate, err := parseDate(input.RetirementDate)
	if err != nil {
		return response.ValidationFailed(c, []string{"Retirement date must be a valid date"})
	}

	var ceremonyDate *datatypes.Date
	if input.CeremonyDate != "" {
		d, err := parseDate(input.CeremonyDate)
		if err != nil {
			return response.ValidationFailed(c, []string{"Ceremony date must be a valid date"})
		}
		ceremonyDate = &d
	}

	appointment := model.Appointment{
		ReferenceID:          uuid.NewString(),
		RequestorFirstName:   input.RequestorFirstName,
		RequestorLastName:    input.RequestorLastName,
		PhoneNumber:          input.PhoneNumber,
		ContactEmail:         input.ContactEmail,
		OptIn:                input.OptIn,
		RetireeFirstName:     input.RetireeFirstName,
		RetireeMiddleName:    input.RetireeMiddleName,
		RetireeLastName:      input.RetireeLastName,
		RetireePreferredName: input.RetireePreferredName,
		AddressLine1:         input.AddressLine1,
		City:                 input.City,
		State:                input.State,
		ZipCode:              input.ZipCode,
		Branch:               input.Branch,
		Rank:                 input.Rank,
		OtherRank:            input.OtherRank,
		RetirementDate:       retirementDate,
		CeremonyDate:         ceremonyDate,
		YearsService:         input.YearsService,
		MailingAddress1:      input.MailingAddress1,
		MailingAddress2:      input.MailingAddress2,
		MailingAddress3:      input.MailingAddress3,
		MailingAddress4:      input.MailingAddress4,
		MailingAddress5:      input.MailingAddress5,
		Company:              input.Company,
		POC:                  input.POC,
		MailingCity:          input.MailingCity,
		MailingState:         input.MailingState,
		MailingZipCode:       input.MailingZipCode,
		AdditionalComments:   input.AdditionalComments,
	}

	if err := appointmentStore.Create(&appointment); err != nil {
		logrus.WithError(err).Error("Error creating appointment")
		return response.ServerError(c)
	}

	return response.Created(c, appointment)
}

func GetAppointments(c *fiber.Ctx) error {
	appointments, err := appointmentStore.List()
	if err != nil {
		logrus.WithError(err).Error("Error fetching appointments")
		return response.ServerError(c)
	}
	return response.List(c, len(appointments), appointments)
}

func GetAppointmentByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid appointment ID")
	}

	appointment, err := appointmentStore.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.NotFound(c, "Appointment not found")
		}
		logrus.WithError(err).Error("Error fetching appointment")
		return response.ServerError(c)
	}
	return response.OK(c, appointment)
}

func UpdateAppointmentStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid appointment ID")
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return response.BadRequest(c, "Invalid input")
	}

	appointment, err := appointmentStore.UpdateStatus(id, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid status value")
		case errors.Is(err, service.ErrNotFound):
			return response.NotFound(c, "Appointment not found")
		}
		logrus.WithError(err).Error("Error updating appointment status")
		return response.ServerError(c)
	}
	return response.OK(c, appointment)
}

func DeleteAppointment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid appointment ID")
	}

	if err := appointmentStore.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.NotFound(c, "Appointment not found")
		}
		logrus.WithError(err).Error("Error deleting appointment")
		return response.ServerError(c)
	}
	return response.OK(c, fiber.Map{})
}
