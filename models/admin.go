package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin is an office administrator account. Authentication is a single
// stateless credential check; there is no session or token model.
type Admin struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Email    string `gorm:"size:200;not null;uniqueIndex" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"` // bcrypt hash
}

// BeforeCreate hook to generate UUID
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Admin) TableName() string {
	return "admins"
}
