package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case status constants
const (
	CaseStatusPending  = "Pending"
	CaseStatusResolved = "Resolved"
)

// Case represents a writ petition tracked by the office. A case belongs to
// one department (by its business number, not the store id) and is linked to
// one or more sub-departments: a single primary reference plus a secondary
// set that may include the primary.
type Case struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Optional human-assigned number. Used as an alternate lookup key but
	// uniqueness is not enforced by the schema.
	CaseNumber *string `gorm:"size:100;index" json:"caseNumber,omitempty"`

	PetitionerName string    `gorm:"size:200;not null" json:"petitionerName"`
	RespondentName string    `gorm:"size:200;not null" json:"respondentName"`
	FilingDate     time.Time `gorm:"not null;index" json:"filingDate"`

	PetitionNumber *string `gorm:"size:100" json:"petitionNumber,omitempty"`
	NoticeNumber   *string `gorm:"size:100" json:"noticeNumber,omitempty"`
	WritType       *string `gorm:"size:100;index" json:"writType,omitempty"`

	// Department business number (seed data with stable human-assigned ids),
	// deliberately not the departments table primary key.
	Department int `gorm:"not null;index" json:"department"`

	// Primary sub-department reference (store id, at most one)
	SubDepartmentID *string        `gorm:"type:uuid;index" json:"subDepartmentId,omitempty"`
	SubDepartment   *SubDepartment `gorm:"foreignKey:SubDepartmentID" json:"subDepartment,omitempty"`

	// Secondary sub-department set (zero or more, may include the primary)
	SubDepartments []SubDepartment `gorm:"many2many:case_sub_departments;" json:"subDepartments,omitempty"`

	Status string `gorm:"size:20;not null;default:Pending;index" json:"status"`

	HearingDate             *time.Time `json:"hearingDate,omitempty"`
	AffidavitDueDate        *time.Time `json:"affidavitDueDate,omitempty"`
	AffidavitSubmissionDate *time.Time `json:"affidavitSubmissionDate,omitempty"`
	CounterAffidavitRequired bool      `gorm:"not null;default:false" json:"counterAffidavitRequired"`

	// Reminder bookkeeping, owned by the case aggregate
	ReminderSent      bool       `gorm:"not null;default:false" json:"reminderSent"`
	ReminderSentCount int        `gorm:"not null;default:0" json:"reminderSentCount"`
	LastReminderSent  *time.Time `json:"lastReminderSent,omitempty"`
}

// BeforeCreate hook to generate UUID
func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Case model
func (Case) TableName() string {
	return "cases"
}

// IsPending checks if the case is pending
func (c *Case) IsPending() bool {
	return c.Status == CaseStatusPending
}

// IsResolved checks if the case is resolved
func (c *Case) IsResolved() bool {
	return c.Status == CaseStatusResolved
}

// IsValidCaseStatus checks if the status is valid
func IsValidCaseStatus(status string) bool {
	return status == CaseStatusPending || status == CaseStatusResolved
}
