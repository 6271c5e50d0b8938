package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reminder outcome constants. A record starts pending and is settled to
// sent or failed after the delivery attempt; a crash mid-send leaves it
// pending rather than claiming a delivery that never happened.
const (
	ReminderStatusPending = "pending"
	ReminderStatusSent    = "sent"
	ReminderStatusFailed  = "failed"
)

// EmailReminder is an append-only log entry of one reminder-email attempt
// for a case. Only the outcome is ever rewritten.
type EmailReminder struct {
	ID     string    `gorm:"type:uuid;primarykey" json:"id"`
	CaseID string    `gorm:"type:uuid;not null;index" json:"caseId"`
	Email  string    `gorm:"size:200;not null" json:"email"`
	SentAt time.Time `gorm:"not null" json:"sentAt"`
	Status string    `gorm:"size:20;not null" json:"status"`
}

// BeforeCreate hook to generate UUID and stamp SentAt
func (r *EmailReminder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.SentAt.IsZero() {
		r.SentAt = time.Now()
	}
	return nil
}

// TableName specifies the table name
func (EmailReminder) TableName() string {
	return "email_reminders"
}
