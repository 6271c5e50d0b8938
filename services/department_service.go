package services

import (
	"errors"
	"fmt"

	"court_track_app_go/models"

	"gorm.io/gorm"
)

// CreateDepartment creates a department with a human-assigned business
// number. The number is the key the rest of the system links by.
func CreateDepartment(dbConn *gorm.DB, number int, nameEn, nameHi string) (*models.Department, error) {
	var missing []string
	if number <= 0 {
		missing = append(missing, "id (number)")
	}
	if nameEn == "" {
		missing = append(missing, "name_en")
	}
	if nameHi == "" {
		missing = append(missing, "name_hi")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	var count int64
	if err := dbConn.Model(&models.Department{}).Where("number = ?", number).Count(&count).Error; err != nil {
		return nil, &StoreError{Op: "check department number", Err: err}
	}
	if count > 0 {
		return nil, &ConflictError{Message: fmt.Sprintf("department with id %d already exists", number)}
	}

	dept := &models.Department{Number: number, NameEn: nameEn, NameHi: nameHi}
	if err := dbConn.Create(dept).Error; err != nil {
		return nil, &StoreError{Op: "create department", Err: err}
	}
	return dept, nil
}

// ListDepartments returns all departments ordered by business number.
func ListDepartments(dbConn *gorm.DB) ([]models.Department, error) {
	var departments []models.Department
	if err := dbConn.Order("number ASC").Find(&departments).Error; err != nil {
		return nil, &StoreError{Op: "fetch departments", Err: err}
	}
	return departments, nil
}

// GetDepartmentByNumber looks a department up by its business number.
func GetDepartmentByNumber(dbConn *gorm.DB, number int) (*models.Department, error) {
	var dept models.Department
	if err := dbConn.First(&dept, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "department"}
		}
		return nil, &StoreError{Op: "find department", Err: err}
	}
	return &dept, nil
}

// CreateSubDepartment creates a sub-department under an existing department,
// linked by the department's business number.
func CreateSubDepartment(dbConn *gorm.DB, departmentNumber int, nameEn, nameHi string) (*models.SubDepartment, error) {
	var missing []string
	if departmentNumber <= 0 {
		missing = append(missing, "departmentId (number)")
	}
	if nameEn == "" {
		missing = append(missing, "subDeptNameEn")
	}
	if nameHi == "" {
		missing = append(missing, "subDeptNameHi")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	if _, err := GetDepartmentByNumber(dbConn, departmentNumber); err != nil {
		return nil, err
	}

	sub := &models.SubDepartment{
		DepartmentNumber: departmentNumber,
		NameEn:           nameEn,
		NameHi:           nameHi,
	}
	if err := dbConn.Create(sub).Error; err != nil {
		return nil, &StoreError{Op: "create sub-department", Err: err}
	}
	return sub, nil
}

// ListSubDepartments returns sub-departments, optionally filtered by the
// owning department's business number, newest first.
func ListSubDepartments(dbConn *gorm.DB, departmentNumber *int) ([]models.SubDepartment, error) {
	query := dbConn.Order("created_at DESC")
	if departmentNumber != nil {
		query = query.Where("department_number = ?", *departmentNumber)
	}
	var subs []models.SubDepartment
	if err := query.Find(&subs).Error; err != nil {
		return nil, &StoreError{Op: "fetch sub-departments", Err: err}
	}
	return subs, nil
}

// GetSubDepartment looks a sub-department up by store id.
func GetSubDepartment(dbConn *gorm.DB, id string) (*models.SubDepartment, error) {
	var sub models.SubDepartment
	if err := dbConn.First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "sub-department"}
		}
		return nil, &StoreError{Op: "find sub-department", Err: err}
	}
	return &sub, nil
}

// UpdateSubDepartment updates a sub-department's names or owning department.
func UpdateSubDepartment(dbConn *gorm.DB, id string, departmentNumber *int, nameEn, nameHi *string) (*models.SubDepartment, error) {
	sub, err := GetSubDepartment(dbConn, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if departmentNumber != nil {
		if _, err := GetDepartmentByNumber(dbConn, *departmentNumber); err != nil {
			return nil, err
		}
		updates["department_number"] = *departmentNumber
	}
	if nameEn != nil && *nameEn != "" {
		updates["name_en"] = *nameEn
	}
	if nameHi != nil && *nameHi != "" {
		updates["name_hi"] = *nameHi
	}
	if len(updates) > 0 {
		if err := dbConn.Model(sub).Updates(updates).Error; err != nil {
			return nil, &StoreError{Op: "update sub-department", Err: err}
		}
	}
	return sub, nil
}

// DeleteSubDepartment removes a sub-department unless a case still holds it
// as the primary reference. Secondary-set membership alone does not block
// deletion; those links are left dangling and reads tolerate them.
func DeleteSubDepartment(dbConn *gorm.DB, id string) error {
	var referencing int64
	if err := dbConn.Model(&models.Case{}).Where("sub_department_id = ?", id).Count(&referencing).Error; err != nil {
		return &StoreError{Op: "check sub-department references", Err: err}
	}
	if referencing > 0 {
		return &ConflictError{Message: "cannot delete sub-department that has associated cases"}
	}

	result := dbConn.Delete(&models.SubDepartment{}, "id = ?", id)
	if result.Error != nil {
		return &StoreError{Op: "delete sub-department", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: "sub-department"}
	}
	return nil
}
