package services

import (
	"testing"

	"court_track_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestSeedDepartments(t *testing.T) {
	db := setupServiceTestDB()

	assert.NoError(t, SeedDepartments(db))

	var departments []models.Department
	assert.NoError(t, db.Order("number ASC").Find(&departments).Error)
	assert.Len(t, departments, 2)
	assert.Equal(t, 1, departments[0].Number)
	assert.Equal(t, "Administration Department", departments[0].NameEn)
	assert.Equal(t, "प्रशासन विभाग", departments[0].NameHi)
	assert.Equal(t, 2, departments[1].Number)

	// Re-running does not duplicate and keeps ids stable
	firstID := departments[0].ID
	assert.NoError(t, SeedDepartments(db))

	var count int64
	db.Model(&models.Department{}).Count(&count)
	assert.Equal(t, int64(2), count)

	var reloaded models.Department
	assert.NoError(t, db.First(&reloaded, "number = ?", 1).Error)
	assert.Equal(t, firstID, reloaded.ID)
}

func TestSeedAdminFromEnv(t *testing.T) {
	t.Run("Skips without env vars", func(t *testing.T) {
		db := setupServiceTestDB()
		t.Setenv("ADMIN_EMAIL", "")
		t.Setenv("ADMIN_PASSWORD", "")

		assert.NoError(t, SeedAdminFromEnv(db))

		var count int64
		db.Model(&models.Admin{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Creates and then skips", func(t *testing.T) {
		db := setupServiceTestDB()
		t.Setenv("ADMIN_EMAIL", "admin@example.com")
		t.Setenv("ADMIN_PASSWORD", "s3cret-pass")

		assert.NoError(t, SeedAdminFromEnv(db))
		assert.NoError(t, SeedAdminFromEnv(db))

		var count int64
		db.Model(&models.Admin{}).Count(&count)
		assert.Equal(t, int64(1), count)

		admin, ok := AuthenticateAdmin(db, "admin@example.com", "s3cret-pass")
		assert.True(t, ok)
		assert.NotNil(t, admin)
	})
}

func TestGenerateTestCases(t *testing.T) {
	db := setupServiceTestDB()

	assert.NoError(t, GenerateTestCases(db))

	var count int64
	db.Model(&models.Case{}).Count(&count)
	assert.Equal(t, int64(3), count)

	// Replaces samples instead of accumulating
	assert.NoError(t, GenerateTestCases(db))
	db.Model(&models.Case{}).Count(&count)
	assert.Equal(t, int64(3), count)

	var sample models.Case
	assert.NoError(t, db.First(&sample, "case_number = ?", "CN-2025-100747").Error)
	assert.Equal(t, "Ram Kumar", sample.PetitionerName)
	assert.Equal(t, models.CaseStatusPending, sample.Status)
}
