package model

import "time"

const (
	SchedulingStatusPending  = "pending"
	SchedulingStatusApproved = "approved"
	SchedulingStatusRejected = "rejected"
)

// The closed set of honorees an event may be requested for.
const (
	RequestForPresident         = "President George W Bush"
	RequestForPresidentAndFirst = "President Bush and Mrs Laura Bush"
)

// SchedulingRequest is a public request to have the office appear at an
// event.
type SchedulingRequest struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	ReferenceID string `json:"referenceId" gorm:"size:36;uniqueIndex"`

	RequestFor string `json:"requestFor" gorm:"not null"`

	FirstName    string `json:"firstName" gorm:"not null"`
	LastName     string `json:"lastName" gorm:"not null"`
	AddressLine1 string `json:"addressLine1" gorm:"not null"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city" gorm:"not null"`
	State        string `json:"state" gorm:"not null"`
	ZipCode      string `json:"zipCode" gorm:"not null"`
	PhoneNumber  string `json:"phoneNumber" gorm:"not null"`
	ContactEmail string `json:"contactEmail" gorm:"not null"`
	Organization string `json:"organization"`

	EventName        string `json:"eventName" gorm:"not null"`
	EventDescription string `json:"eventDescription" gorm:"type:text"`
	EventLocation    string `json:"eventLocation" gorm:"not null"`
	EventDate        string `json:"eventDate" gorm:"not null"`

	OptIn bool `json:"optIn" gorm:"default:false"`

	Status    string    `json:"status" gorm:"size:20;default:'pending'"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (r *SchedulingRequest) GetStatus() string       { return r.Status }
func (r *SchedulingRequest) SetStatus(status string) { r.Status = status }
func (r *SchedulingRequest) DefaultStatus() string   { return SchedulingStatusPending }

func (r *SchedulingRequest) ValidStatuses() []string {
	return []string{SchedulingStatusPending, SchedulingStatusApproved, SchedulingStatusRejected}
}
