package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Department is an office department. Departments are seed data with stable
// human-assigned numbers; cases and sub-departments reference Number, never
// the store id.
type Department struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	Number int    `gorm:"uniqueIndex;not null" json:"id"`
	NameEn string `gorm:"size:200;not null" json:"name_en"`
	NameHi string `gorm:"size:200;not null" json:"name_hi"`
}

// BeforeCreate hook to generate UUID
func (d *Department) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Department) TableName() string {
	return "departments"
}
