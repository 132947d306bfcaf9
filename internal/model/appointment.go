package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	AppointmentStatusPending  = "pending"
	AppointmentStatusApproved = "approved"
	AppointmentStatusRejected = "rejected"
)

// Appointment is an urgent appointment request submitted by the public
// on behalf of a retiring service member.
type Appointment struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	ReferenceID string `json:"referenceId" gorm:"size:36;uniqueIndex"`

	RequestorFirstName string `json:"requestorFirstName" gorm:"not null"`
	RequestorLastName  string `json:"requestorLastName" gorm:"not null"`
	PhoneNumber        string `json:"phoneNumber" gorm:"not null"`
	ContactEmail       string `json:"contactEmail" gorm:"not null"`
	OptIn              bool   `json:"optIn" gorm:"default:false"`

	RetireeFirstName     string `json:"retireeFirstName" gorm:"not null"`
	RetireeMiddleName    string `json:"retireeMiddleName"`
	RetireeLastName      string `json:"retireeLastName" gorm:"not null"`
	RetireePreferredName string `json:"retireePreferredName" gorm:"not null"`

	AddressLine1 string `json:"addressLine1" gorm:"not null"`
	City         string `json:"city" gorm:"not null"`
	State        string `json:"state" gorm:"not null"`
	ZipCode      string `json:"zipCode" gorm:"not null"`

	Branch    string `json:"branch" gorm:"not null"`
	Rank      string `json:"rank" gorm:"not null"`
	OtherRank string `json:"otherRank"`

	RetirementDate datatypes.Date  `json:"retirementDate"`
	CeremonyDate   *datatypes.Date `json:"ceremonyDate"`
	YearsService   int             `json:"yearsService" gorm:"not null"`

	MailingAddress1 string `json:"mailingAddress1" gorm:"not null"`
	MailingAddress2 string `json:"mailingAddress2"`
	MailingAddress3 string `json:"mailingAddress3"`
	MailingAddress4 string `json:"mailingAddress4"`
	MailingAddress5 string `json:"mailingAddress5"`
	Company         string `json:"company"`
	POC             string `json:"poc"`
	MailingCity     string `json:"mailingCity" gorm:"not null"`
	MailingState    string `json:"mailingState" gorm:"not null"`
	MailingZipCode  string `json:"mailingZipCode" gorm:"not null"`

	AdditionalComments string `json:"additionalComments" gorm:"type:text"`

	Status    string    `json:"status" gorm:"size:20;default:'pending'"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (a *Appointment) GetStatus() string       { return a.Status }
func (a *Appointment) SetStatus(status string) { a.Status = status }
func (a *Appointment) DefaultStatus() string   { return AppointmentStatusPending }

func (a *Appointment) ValidStatuses() []string {
	return []string{AppointmentStatusPending, AppointmentStatusApproved, AppointmentStatusRejected}
}
