package model

import "time"

const (
	ContactStatusNew        = "new"
	ContactStatusInProgress = "in-progress"
	ContactStatusResolved   = "resolved"
)

const (
	InquiryTypeGeneral      = "general"
	InquiryTypeMedia        = "media"
	InquiryTypePresidential = "presidential"
)

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Email       string `json:"email" gorm:"not null"`
	Message     string `json:"message" gorm:"type:text;not null"`
	InquiryType string `json:"inquiryType" gorm:"size:20;default:'general'"`

	Status    string    `json:"status" gorm:"size:20;default:'new'"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

func (m *ContactMessage) GetStatus() string       { return m.Status }
func (m *ContactMessage) SetStatus(status string) { m.Status = status }
func (m *ContactMessage) DefaultStatus() string   { return ContactStatusNew }

func (m *ContactMessage) ValidStatuses() []string {
	return []string{ContactStatusNew, ContactStatusInProgress, ContactStatusResolved}
}
