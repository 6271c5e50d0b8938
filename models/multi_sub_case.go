package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MultiSubCase is a derived index row flagging cases linked to more than one
// sub-department. One row per case; the member set mirrors the case's
// secondary sub-department set. The case record stays the source of truth.
type MultiSubCase struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	CaseID string `gorm:"type:uuid;not null;uniqueIndex" json:"caseId"`

	SubDepartments []SubDepartment `gorm:"many2many:multi_sub_case_sub_departments;" json:"subDepartments,omitempty"`
}

// BeforeCreate hook to generate UUID
func (m *MultiSubCase) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (MultiSubCase) TableName() string {
	return "multi_sub_cases"
}
