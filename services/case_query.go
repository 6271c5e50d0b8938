package services

import (
	"strings"

	"court_track_app_go/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pagination defaults
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// CaseFilter carries the list-query criteria and paging controls.
type CaseFilter struct {
	Department     *int
	SubDepartment  string
	Status         string
	WritType       string
	PetitionerName string
	RespondentName string
	// Free-text search across case number, petitioner and respondent names.
	// OR-combined with the other filters, not intersected: a search hit is
	// returned even when the structured filters would exclude it.
	Search     string
	Page       int
	Limit      int
	IncludeAll bool
}

// CaseList is one page of matching cases plus paging-independent aggregates.
type CaseList struct {
	Cases []models.Case `json:"cases"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Pages int           `json:"totalPages"`
}

// ListCases runs the filtered, paginated case query, most recent filing
// first. Sub-department references in results are resolved.
func ListCases(dbConn *gorm.DB, f CaseFilter) (*CaseList, error) {
	if f.Page <= 0 {
		f.Page = DefaultPage
	}
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}

	var filterCond *gorm.DB
	addCond := func(cond string, args ...interface{}) {
		if filterCond == nil {
			filterCond = dbConn.Where(cond, args...)
		} else {
			filterCond = filterCond.Where(cond, args...)
		}
	}

	if f.Department != nil {
		addCond("department = ?", *f.Department)
	}
	if f.SubDepartment != "" {
		if uuid.Validate(f.SubDepartment) != nil {
			// A reference that cannot name any sub-department matches nothing
			addCond("1 = 0")
		} else {
			// Matches the primary reference or membership in the secondary set
			subCond := dbConn.Where("sub_department_id = ?", f.SubDepartment).
				Or("EXISTS (SELECT 1 FROM case_sub_departments csd WHERE csd.case_id = cases.id AND csd.sub_department_id = ?)", f.SubDepartment)
			if filterCond == nil {
				filterCond = dbConn.Where(subCond)
			} else {
				filterCond = filterCond.Where(subCond)
			}
		}
	}
	if f.Status != "" {
		addCond("status = ?", f.Status)
	}
	if f.WritType != "" {
		addCond("writ_type = ?", f.WritType)
	}
	if f.PetitionerName != "" {
		addCond("LOWER(petitioner_name) LIKE ?", containsPattern(f.PetitionerName))
	}
	if f.RespondentName != "" {
		addCond("LOWER(respondent_name) LIKE ?", containsPattern(f.RespondentName))
	}

	query := dbConn.Model(&models.Case{})
	if f.Search != "" {
		pattern := containsPattern(f.Search)
		searchCond := dbConn.Where("LOWER(case_number) LIKE ?", pattern).
			Or("LOWER(petitioner_name) LIKE ?", pattern).
			Or("LOWER(respondent_name) LIKE ?", pattern)
		if filterCond != nil {
			query = query.Where(dbConn.Where(filterCond).Or(searchCond))
		} else {
			query = query.Where(searchCond)
		}
	} else if filterCond != nil {
		query = query.Where(filterCond)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, &StoreError{Op: "count cases", Err: err}
	}

	query = query.Preload("SubDepartment").Preload("SubDepartments").
		Order("filing_date DESC")

	if !f.IncludeAll {
		query = query.Limit(f.Limit).Offset((f.Page - 1) * f.Limit)
	}

	var cases []models.Case
	if err := query.Find(&cases).Error; err != nil {
		return nil, &StoreError{Op: "fetch cases", Err: err}
	}

	list := &CaseList{
		Cases: cases,
		Total: total,
		Page:  f.Page,
		Limit: f.Limit,
		Pages: int((total + int64(f.Limit) - 1) / int64(f.Limit)),
	}
	if f.IncludeAll {
		list.Page = 1
		list.Pages = 1
	}
	return list, nil
}

func containsPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// DepartmentCount is one bucket of the department-grouped aggregation.
// The JSON key mirrors the aggregate shape the dashboard already consumes.
type DepartmentCount struct {
	Department int   `gorm:"column:department" json:"_id"`
	Count      int64 `gorm:"column:count" json:"count"`
}

// Statistics are the dashboard aggregates. Each figure is computed as an
// independent query; the store is small relative to request rate, so a
// single-pass aggregation is not worth the complexity.
type Statistics struct {
	TotalCases          int64             `json:"totalCases"`
	PendingCases        int64             `json:"pendingCases"`
	ResolvedCases       int64             `json:"resolvedCases"`
	TotalDepartments    int64             `json:"totalDepartments"`
	TotalSubDepartments int64             `json:"totalSubDepartments"`
	CasesByDepartment   []DepartmentCount `json:"casesByDepartment"`
	RecentCases         []models.Case     `json:"recentCases"`
}

// GetStatistics computes the dashboard aggregates.
func GetStatistics(dbConn *gorm.DB) (*Statistics, error) {
	stats := &Statistics{}

	counts := []struct {
		dest  *int64
		model interface{}
		cond  []interface{}
	}{
		{&stats.TotalCases, &models.Case{}, nil},
		{&stats.PendingCases, &models.Case{}, []interface{}{"status = ?", models.CaseStatusPending}},
		{&stats.ResolvedCases, &models.Case{}, []interface{}{"status = ?", models.CaseStatusResolved}},
		{&stats.TotalDepartments, &models.Department{}, nil},
		{&stats.TotalSubDepartments, &models.SubDepartment{}, nil},
	}
	for _, c := range counts {
		q := dbConn.Model(c.model)
		if c.cond != nil {
			q = q.Where(c.cond[0], c.cond[1:]...)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, &StoreError{Op: "count statistics", Err: err}
		}
	}

	if err := dbConn.Model(&models.Case{}).
		Select("department, COUNT(*) AS count").
		Group("department").
		Scan(&stats.CasesByDepartment).Error; err != nil {
		return nil, &StoreError{Op: "group cases by department", Err: err}
	}
	if stats.CasesByDepartment == nil {
		stats.CasesByDepartment = []DepartmentCount{}
	}

	if err := dbConn.Preload("SubDepartment").Preload("SubDepartments").
		Order("created_at DESC").
		Limit(5).
		Find(&stats.RecentCases).Error; err != nil {
		return nil, &StoreError{Op: "fetch recent cases", Err: err}
	}

	return stats, nil
}
