package model

import "time"

const (
	SubscriptionStatusActive       = "active"
	SubscriptionStatusUnsubscribed = "unsubscribed"
)

// Subscription is a mailing-list signup. Email is the natural key:
// submitting the form again with the same address updates the existing
// row instead of creating a duplicate.
type Subscription struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	FirstName string `json:"firstName" gorm:"not null"`
	LastName  string `json:"lastName" gorm:"not null"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`

	// Publication opt-ins. No gorm default tags here: GORM would skip
	// an explicit false on insert and the column default would win.
	// The signup handler supplies the on-by-default values instead.
	FiveForFriday bool `json:"fiveForFriday"`
	Catalyst      bool `json:"catalyst"`

	Status    string    `json:"status" gorm:"size:20;default:'active'"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (s *Subscription) GetStatus() string       { return s.Status }
func (s *Subscription) SetStatus(status string) { s.Status = status }
func (s *Subscription) DefaultStatus() string   { return SubscriptionStatusActive }

func (s *Subscription) ValidStatuses() []string {
	return []string{SubscriptionStatusActive, SubscriptionStatusUnsubscribed}
}
