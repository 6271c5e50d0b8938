package services

import (
	"bytes"
	"fmt"
	"strings"

	"court_track_app_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const exportSheet = "Cases"

var exportHeaders = []string{
	"Case Number", "Petitioner", "Respondent", "Filing Date", "Petition Number",
	"Notice Number", "Writ Type", "Department", "Sub-Departments", "Status",
	"Reminders Sent", "Last Reminder",
}

// ExportCasesExcel renders the filtered case list as an Excel workbook.
// Paging is bypassed: an export always covers every matching case.
func ExportCasesExcel(dbConn *gorm.DB, filter CaseFilter) (*bytes.Buffer, error) {
	filter.IncludeAll = true
	list, err := ListCases(dbConn, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", exportSheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, header)
	}
	endCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(exportSheet, "A1", endCell, headerStyle)

	for row, c := range list.Cases {
		values := []interface{}{
			deref(c.CaseNumber),
			c.PetitionerName,
			c.RespondentName,
			c.FilingDate.Format("02/01/2006"),
			deref(c.PetitionNumber),
			deref(c.NoticeNumber),
			deref(c.WritType),
			c.Department,
			subDepartmentNames(c.SubDepartments),
			c.Status,
			c.ReminderSentCount,
			lastReminder(&c),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(exportSheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write export workbook: %w", err)
	}
	return &buf, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func subDepartmentNames(subs []models.SubDepartment) string {
	names := make([]string, 0, len(subs))
	for _, s := range subs {
		names = append(names, s.NameEn)
	}
	return strings.Join(names, ", ")
}

func lastReminder(c *models.Case) string {
	if c.LastReminderSent == nil {
		return ""
	}
	return c.LastReminderSent.Format("02/01/2006 15:04")
}
