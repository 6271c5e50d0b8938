package services

import (
	"errors"
	"log"

	"court_track_app_go/models"

	"gorm.io/gorm"
)

// ReconcileMultiSub keeps the multi-sub-department index consistent with a
// case's secondary set. The index is recomputed on every pass: more than one
// member upserts the row, one or zero members retracts any existing row.
//
// The index is a derived convenience structure, not the source of truth, so
// write failures are logged and swallowed rather than failing the case
// operation that triggered reconciliation.
func ReconcileMultiSub(dbConn *gorm.DB, caseID string, subDeptIDs []string) {
	ids := validSubDeptIDs(subDeptIDs)

	if len(ids) <= 1 {
		retractMultiSub(dbConn, caseID)
		return
	}

	var subs []models.SubDepartment
	if err := dbConn.Find(&subs, "id IN ?", ids).Error; err != nil {
		log.Printf("Failed to resolve sub-departments for multi-sub index (case %s): %v", caseID, err)
		return
	}

	var row models.MultiSubCase
	err := dbConn.Where("case_id = ?", caseID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.MultiSubCase{CaseID: caseID}
		if err := dbConn.Omit("SubDepartments").Create(&row).Error; err != nil {
			log.Printf("Failed to create multi-sub index row for case %s: %v", caseID, err)
			return
		}
	} else if err != nil {
		log.Printf("Failed to look up multi-sub index row for case %s: %v", caseID, err)
		return
	}

	if err := dbConn.Model(&row).Association("SubDepartments").Replace(&subs); err != nil {
		log.Printf("Failed to update multi-sub index members for case %s: %v", caseID, err)
	}
}

func retractMultiSub(dbConn *gorm.DB, caseID string) {
	var row models.MultiSubCase
	err := dbConn.Where("case_id = ?", caseID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if err != nil {
		log.Printf("Failed to look up multi-sub index row for case %s: %v", caseID, err)
		return
	}
	if err := dbConn.Model(&row).Association("SubDepartments").Clear(); err != nil {
		log.Printf("Failed to clear multi-sub index members for case %s: %v", caseID, err)
		return
	}
	if err := dbConn.Delete(&row).Error; err != nil {
		log.Printf("Failed to retract multi-sub index row for case %s: %v", caseID, err)
	}
}

// GetMultiSubStatus reports whether a case is flagged as linked to multiple
// sub-departments, with the resolved member list. A missing row is a normal
// negative answer, not an error.
func GetMultiSubStatus(dbConn *gorm.DB, caseID string) (bool, []models.SubDepartment, error) {
	var row models.MultiSubCase
	err := dbConn.Preload("SubDepartments").Where("case_id = ?", caseID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, []models.SubDepartment{}, nil
	}
	if err != nil {
		return false, nil, &StoreError{Op: "check multi-sub status", Err: err}
	}
	return true, row.SubDepartments, nil
}
