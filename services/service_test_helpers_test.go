package services

import (
	"encoding/json"

	"court_track_app_go/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func unmarshalJSON(s string, v interface{}) error {
	return json.Unmarshal([]byte(s), v)
}

func setupServiceTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(
		&models.Department{},
		&models.SubDepartment{},
		&models.Case{},
		&models.MultiSubCase{},
		&models.EmailReminder{},
		&models.Admin{},
	)
	if err != nil {
		panic("failed to run migrations")
	}
	return db
}

func stringPtr(s string) *string {
	return &s
}

func flexIntPtr(n int) *FlexInt {
	return &FlexInt{Value: n, Valid: true}
}

func createSubDept(db *gorm.DB, deptNumber int, nameEn string) *models.SubDepartment {
	sub := &models.SubDepartment{
		DepartmentNumber: deptNumber,
		NameEn:           nameEn,
		NameHi:           nameEn + " (hi)",
	}
	if err := db.Create(sub).Error; err != nil {
		panic(err)
	}
	return sub
}

// sentMail records one delivery attempt made through the fake mailer
type sentMail struct {
	To      string
	Subject string
	HTML    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(to, subject, htmlBody string) (*SendResult, error) {
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, HTML: htmlBody})
	if m.err != nil {
		return nil, m.err
	}
	return &SendResult{MessageID: "fake-1", Method: "fake", Delivered: true}, nil
}
