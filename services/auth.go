package services

import (
	"errors"
	"fmt"

	"court_track_app_go/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// BcryptCost is the cost factor for bcrypt hashing
const BcryptCost = 10

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword verifies a password against a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// AuthenticateAdmin performs the single stateless credential check. A
// missing account and a wrong password are indistinguishable to the caller.
func AuthenticateAdmin(dbConn *gorm.DB, email, password string) (*models.Admin, bool) {
	var admin models.Admin
	if err := dbConn.First(&admin, "email = ?", email).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false
		}
		// Burn a comparison anyway so timing does not reveal whether the
		// account exists
		CheckPassword(password, "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")
		return nil, false
	}
	if !CheckPassword(password, admin.Password) {
		return nil, false
	}
	return &admin, true
}

// CreateAdmin creates an admin account with a hashed password.
func CreateAdmin(dbConn *gorm.DB, email, password string) (*models.Admin, error) {
	if email == "" || password == "" {
		var missing []string
		if email == "" {
			missing = append(missing, "email")
		}
		if password == "" {
			missing = append(missing, "password")
		}
		return nil, &ValidationError{Fields: missing}
	}

	var count int64
	if err := dbConn.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, &StoreError{Op: "check admin email", Err: err}
	}
	if count > 0 {
		return nil, &ConflictError{Message: "admin with this email already exists"}
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{Email: email, Password: hashed}
	if err := dbConn.Create(admin).Error; err != nil {
		return nil, &StoreError{Op: "create admin", Err: err}
	}
	return admin, nil
}
