package handlers

import (
	"io"
	"net/http/httptest"
	"testing"

	"court_track_app_go/config"
	"court_track_app_go/db"
	"court_track_app_go/models"
	"court_track_app_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Unique shared memory name isolates tests while allowing shared cache
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.Department{},
		&models.SubDepartment{},
		&models.Case{},
		&models.MultiSubCase{},
		&models.EmailReminder{},
		&models.Admin{},
	)
	assert.NoError(t, err)

	// Set global DB
	db.DB = testDB

	return testDB
}

// fakeMailer stands in for the mail transport; a non-nil err simulates a
// provider failure
type fakeMailer struct {
	sent []string
	err  error
}

func (m *fakeMailer) Send(to, subject, htmlBody string) (*services.SendResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.sent = append(m.sent, to)
	return &services.SendResult{MessageID: "fake-1", Method: "fake", Delivered: true}, nil
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config and mailer to context the way the server middleware does
	c.Set("config", &config.Config{
		Environment: "test",
		EmailMode:   config.EmailModeLogged,
	})
	c.Set("mailer", &fakeMailer{})

	return e, c, rec
}

func stringToPtr(s string) *string {
	return &s
}

func createTestSubDept(t *testing.T, database *gorm.DB, deptNumber int, nameEn string) *models.SubDepartment {
	sub := &models.SubDepartment{
		DepartmentNumber: deptNumber,
		NameEn:           nameEn,
		NameHi:           nameEn + " (hi)",
	}
	assert.NoError(t, database.Create(sub).Error)
	return sub
}

func createTestCase(t *testing.T, database *gorm.DB, in *services.CaseInput) *models.Case {
	created, err := services.CreateCase(database, in)
	assert.NoError(t, err)
	return created
}

func flexInt(n int) *services.FlexInt {
	return &services.FlexInt{Value: n, Valid: true}
}
