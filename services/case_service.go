package services

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"court_track_app_go/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FlexInt decodes a JSON number or a numeric string. Web clients submit the
// department id both ways; anything else leaves Valid false so field
// validation can report it instead of failing the whole bind.
type FlexInt struct {
	Value int
	Valid bool
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		f.Value = int(v)
		f.Valid = true
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			f.Value = n
			f.Valid = true
		}
	}
	return nil
}

// CaseInput is the intake shape for case create and update. Petitioner and
// respondent names are accepted under both spellings the clients use.
type CaseInput struct {
	CaseNumber     *string `json:"caseNumber"`
	PetitionerName *string `json:"petitionerName"`
	Petitionername *string `json:"petitionername"`
	RespondentName *string `json:"respondentName"`
	Respondentname *string `json:"respondentname"`

	FilingDate     *string  `json:"filingDate"`
	PetitionNumber *string  `json:"petitionNumber"`
	NoticeNumber   *string  `json:"noticeNumber"`
	WritType       *string  `json:"writType"`
	Department     *FlexInt `json:"department"`

	SubDepartment  *string  `json:"subDepartment"`
	SubDepartments []string `json:"subDepartments"`

	Status *string `json:"status"`

	HearingDate              *string `json:"hearingDate"`
	AffidavitDueDate         *string `json:"affidavitDueDate"`
	AffidavitSubmissionDate  *string `json:"affidavitSubmissionDate"`
	CounterAffidavitRequired *bool   `json:"counterAffidavitRequired"`
}

func (in *CaseInput) petitioner() string {
	if in.PetitionerName != nil && *in.PetitionerName != "" {
		return *in.PetitionerName
	}
	if in.Petitionername != nil {
		return *in.Petitionername
	}
	return ""
}

func (in *CaseInput) respondent() string {
	if in.RespondentName != nil && *in.RespondentName != "" {
		return *in.RespondentName
	}
	if in.Respondentname != nil {
		return *in.Respondentname
	}
	return ""
}

// validSubDeptIDs filters a reference list down to syntactically valid,
// deduplicated store ids, preserving order.
func validSubDeptIDs(refs []string) []string {
	ids := make([]string, 0, len(refs))
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		if uuid.Validate(ref) != nil || seen[ref] {
			continue
		}
		seen[ref] = true
		ids = append(ids, ref)
	}
	return ids
}

// CreateCase normalizes, validates and persists a new case, then reconciles
// the multi-sub-department index. The returned case has its sub-department
// references resolved.
func CreateCase(dbConn *gorm.DB, in *CaseInput) (*models.Case, error) {
	petitioner := in.petitioner()
	respondent := in.respondent()

	var filingDate *time.Time
	if in.FilingDate != nil {
		filingDate = ParseDateLenient(*in.FilingDate)
	}

	secondary := validSubDeptIDs(in.SubDepartments)

	var primary *string
	if in.SubDepartment != nil && uuid.Validate(*in.SubDepartment) == nil {
		primary = in.SubDepartment
	}
	// No primary supplied: promote the first valid secondary entry
	if primary == nil && len(secondary) > 0 {
		primary = &secondary[0]
	}

	status := models.CaseStatusPending
	if in.Status != nil && *in.Status != "" {
		status = *in.Status
	}

	var missing []string
	if petitioner == "" {
		missing = append(missing, "petitionerName")
	}
	if respondent == "" {
		missing = append(missing, "respondentName")
	}
	if filingDate == nil {
		missing = append(missing, "filingDate (valid date)")
	}
	if in.Department == nil || !in.Department.Valid {
		missing = append(missing, "department (number)")
	}
	if !models.IsValidCaseStatus(status) {
		missing = append(missing, "status (Pending or Resolved)")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	newCase := &models.Case{
		CaseNumber:      in.CaseNumber,
		PetitionerName:  petitioner,
		RespondentName:  respondent,
		FilingDate:      *filingDate,
		PetitionNumber:  in.PetitionNumber,
		NoticeNumber:    in.NoticeNumber,
		WritType:        in.WritType,
		Department:      in.Department.Value,
		SubDepartmentID: primary,
		Status:          status,
	}
	if in.HearingDate != nil {
		newCase.HearingDate = ParseDateLenient(*in.HearingDate)
	}
	if in.AffidavitDueDate != nil {
		newCase.AffidavitDueDate = ParseDateLenient(*in.AffidavitDueDate)
	}
	if in.AffidavitSubmissionDate != nil {
		newCase.AffidavitSubmissionDate = ParseDateLenient(*in.AffidavitSubmissionDate)
	}
	if in.CounterAffidavitRequired != nil {
		newCase.CounterAffidavitRequired = *in.CounterAffidavitRequired
	}

	if err := dbConn.Omit("SubDepartments").Create(newCase).Error; err != nil {
		return nil, &StoreError{Op: "create case", Err: err}
	}

	if err := replaceSecondarySet(dbConn, newCase, secondary); err != nil {
		return nil, err
	}

	// Derived index; failures are logged inside, never surfaced
	ReconcileMultiSub(dbConn, newCase.ID, secondary)

	return loadCase(dbConn, newCase.ID)
}

// UpdateCase merges the supplied fields into an existing case. The updated
// timestamp is always refreshed, even when no field changes.
func UpdateCase(dbConn *gorm.DB, id string, in *CaseInput) (*models.Case, error) {
	var existing models.Case
	if err := dbConn.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "case"}
		}
		return nil, &StoreError{Op: "find case", Err: err}
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	var invalid []string

	if in.PetitionerName != nil || in.Petitionername != nil {
		if p := in.petitioner(); p != "" {
			updates["petitioner_name"] = p
		} else {
			invalid = append(invalid, "petitionerName")
		}
	}
	if in.RespondentName != nil || in.Respondentname != nil {
		if r := in.respondent(); r != "" {
			updates["respondent_name"] = r
		} else {
			invalid = append(invalid, "respondentName")
		}
	}
	if in.FilingDate != nil {
		if d := ParseDateLenient(*in.FilingDate); d != nil {
			updates["filing_date"] = *d
		} else {
			invalid = append(invalid, "filingDate (valid date)")
		}
	}
	if in.Department != nil {
		if in.Department.Valid {
			updates["department"] = in.Department.Value
		} else {
			invalid = append(invalid, "department (number)")
		}
	}
	if in.Status != nil {
		if models.IsValidCaseStatus(*in.Status) {
			updates["status"] = *in.Status
		} else {
			invalid = append(invalid, "status (Pending or Resolved)")
		}
	}
	if in.CaseNumber != nil {
		updates["case_number"] = in.CaseNumber
	}
	if in.PetitionNumber != nil {
		updates["petition_number"] = in.PetitionNumber
	}
	if in.NoticeNumber != nil {
		updates["notice_number"] = in.NoticeNumber
	}
	if in.WritType != nil {
		updates["writ_type"] = in.WritType
	}
	if in.HearingDate != nil {
		updates["hearing_date"] = ParseDateLenient(*in.HearingDate)
	}
	if in.AffidavitDueDate != nil {
		updates["affidavit_due_date"] = ParseDateLenient(*in.AffidavitDueDate)
	}
	if in.AffidavitSubmissionDate != nil {
		updates["affidavit_submission_date"] = ParseDateLenient(*in.AffidavitSubmissionDate)
	}
	if in.CounterAffidavitRequired != nil {
		updates["counter_affidavit_required"] = *in.CounterAffidavitRequired
	}

	secondary := validSubDeptIDs(in.SubDepartments)
	if in.SubDepartment != nil {
		if uuid.Validate(*in.SubDepartment) == nil {
			updates["sub_department_id"] = *in.SubDepartment
		} else {
			updates["sub_department_id"] = nil
		}
	} else if in.SubDepartments != nil && existing.SubDepartmentID == nil && len(secondary) > 0 {
		updates["sub_department_id"] = secondary[0]
	}

	if len(invalid) > 0 {
		return nil, &ValidationError{Fields: invalid}
	}

	if err := dbConn.Model(&existing).Updates(updates).Error; err != nil {
		return nil, &StoreError{Op: "update case", Err: err}
	}

	// The index mirrors the secondary set only; a primary-only update leaves
	// both the set and the index untouched
	if in.SubDepartments != nil {
		if err := replaceSecondarySet(dbConn, &existing, secondary); err != nil {
			return nil, err
		}
		ReconcileMultiSub(dbConn, existing.ID, secondary)
	}

	return loadCase(dbConn, existing.ID)
}

// DeleteCase removes a case. Reminder records and any multi-sub index row
// are left behind; reads of those tables tolerate dangling case ids.
func DeleteCase(dbConn *gorm.DB, id string) error {
	result := dbConn.Delete(&models.Case{}, "id = ?", id)
	if result.Error != nil {
		return &StoreError{Op: "delete case", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: "case"}
	}
	return nil
}

// Lookup match tags returned by GetCaseByIDOrNumber
const (
	MatchedByID         = "id"
	MatchedByCaseNumber = "caseNumber"
)

// GetCaseByIDOrNumber resolves an identifier first as a store id, then as an
// exact case-number match, and reports which path matched.
func GetCaseByIDOrNumber(dbConn *gorm.DB, identifier string) (*models.Case, string, error) {
	if uuid.Validate(identifier) == nil {
		c, err := loadCase(dbConn, identifier)
		if err == nil {
			return c, MatchedByID, nil
		}
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, "", err
		}
	}

	var c models.Case
	err := dbConn.Preload("SubDepartment").Preload("SubDepartments").
		First(&c, "case_number = ?", identifier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", &NotFoundError{Resource: "case"}
		}
		return nil, "", &StoreError{Op: "find case by number", Err: err}
	}
	return &c, MatchedByCaseNumber, nil
}

// replaceSecondarySet rewrites the case's secondary sub-department set.
// Only references that resolve to stored sub-departments can be linked;
// syntactically valid but unknown ids are dropped with a log line.
func replaceSecondarySet(dbConn *gorm.DB, c *models.Case, ids []string) error {
	var subs []models.SubDepartment
	if len(ids) > 0 {
		if err := dbConn.Find(&subs, "id IN ?", ids).Error; err != nil {
			return &StoreError{Op: "resolve sub-departments", Err: err}
		}
		if len(subs) < len(ids) {
			log.Printf("Dropping %d unknown sub-department reference(s) for case %s", len(ids)-len(subs), c.ID)
		}
	}
	assoc := dbConn.Model(c).Association("SubDepartments")
	if len(subs) == 0 {
		if err := assoc.Clear(); err != nil {
			return &StoreError{Op: "unlink sub-departments", Err: err}
		}
		return nil
	}
	if err := assoc.Replace(&subs); err != nil {
		return &StoreError{Op: "link sub-departments", Err: err}
	}
	return nil
}

func loadCase(dbConn *gorm.DB, id string) (*models.Case, error) {
	var c models.Case
	err := dbConn.Preload("SubDepartment").Preload("SubDepartments").
		First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "case"}
		}
		return nil, &StoreError{Op: "load case", Err: err}
	}
	return &c, nil
}
