package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubDepartment belongs to exactly one Department, linked by the department's
// business number rather than its store id.
type SubDepartment struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	DepartmentNumber int    `gorm:"column:department_number;not null;index" json:"departmentId"`
	NameEn           string `gorm:"size:200;not null" json:"name_en"`
	NameHi           string `gorm:"size:200;not null" json:"name_hi"`
}

// BeforeCreate hook to generate UUID
func (s *SubDepartment) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (SubDepartment) TableName() string {
	return "sub_departments"
}
