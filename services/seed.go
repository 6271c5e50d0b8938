package services

import (
	"errors"
	"log"
	"os"
	"time"

	"court_track_app_go/models"

	"gorm.io/gorm"
)

// SeedDepartments upserts the baseline departments by business number.
// Idempotent; safe to call on every startup and from the seed endpoint.
func SeedDepartments(dbConn *gorm.DB) error {
	departments := []models.Department{
		{Number: 1, NameEn: "Administration Department", NameHi: "प्रशासन विभाग"},
		{Number: 2, NameEn: "Development Department", NameHi: "विकास विभाग"},
	}

	for _, dept := range departments {
		var existing models.Department
		err := dbConn.Where("number = ?", dept.Number).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := dbConn.Create(&dept).Error; err != nil {
				return &StoreError{Op: "seed department", Err: err}
			}
			log.Printf("[SEED] Created department %d (%s)", dept.Number, dept.NameEn)
			continue
		}
		if err != nil {
			return &StoreError{Op: "seed department lookup", Err: err}
		}
		if err := dbConn.Model(&existing).
			Updates(map[string]interface{}{"name_en": dept.NameEn, "name_hi": dept.NameHi}).Error; err != nil {
			return &StoreError{Op: "seed department update", Err: err}
		}
	}
	return nil
}

// SeedAdminFromEnv creates an admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Skips silently when the variables are unset or the
// account already exists.
func SeedAdminFromEnv(dbConn *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := dbConn.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return &StoreError{Op: "seed admin lookup", Err: err}
	}
	if count > 0 {
		log.Printf("[SEED] Admin %s already exists, skipping seed", email)
		return nil
	}

	if _, err := CreateAdmin(dbConn, email, password); err != nil {
		return err
	}
	log.Printf("[SEED] Created admin account: %s", email)
	return nil
}

// GenerateTestCases inserts a few sample cases for development. Existing
// samples are replaced so repeated startups do not accumulate duplicates.
func GenerateTestCases(dbConn *gorm.DB) error {
	samples := []struct {
		caseNumber     string
		petitioner     string
		respondent     string
		filingDate     string
		petitionNumber string
		noticeNumber   string
		writType       string
		department     int
	}{
		{"CN-2025-100747", "Ram Kumar", "State of UP", "2025-09-15", "P-2025-001", "N-2025-001", "Regular", 1},
		{"CN-2025-564974", "Shyam Singh", "Municipal Corporation", "2025-09-16", "P-2025-002", "N-2025-002", "Regular", 1},
		{"CN-2025-765606", "Lakhan Yadav", "Development Authority", "2025-09-17", "P-2025-003", "N-2025-003", "Contempt", 1},
	}

	numbers := make([]string, 0, len(samples))
	for _, s := range samples {
		numbers = append(numbers, s.caseNumber)
	}
	if err := dbConn.Delete(&models.Case{}, "case_number IN ?", numbers).Error; err != nil {
		return &StoreError{Op: "clear test cases", Err: err}
	}

	for _, s := range samples {
		filingDate, err := time.Parse("2006-01-02", s.filingDate)
		if err != nil {
			return err
		}
		caseNumber := s.caseNumber
		petitionNumber := s.petitionNumber
		noticeNumber := s.noticeNumber
		writType := s.writType

		c := models.Case{
			CaseNumber:     &caseNumber,
			PetitionerName: s.petitioner,
			RespondentName: s.respondent,
			FilingDate:     filingDate,
			PetitionNumber: &petitionNumber,
			NoticeNumber:   &noticeNumber,
			WritType:       &writType,
			Department:     s.department,
			Status:         models.CaseStatusPending,
		}
		if err := dbConn.Create(&c).Error; err != nil {
			return &StoreError{Op: "insert test case", Err: err}
		}
	}

	log.Printf("[SEED] Inserted %d test cases", len(samples))
	return nil
}
