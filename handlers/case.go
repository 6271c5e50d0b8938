package handlers

import (
	"net/http"
	"strconv"
	"time"

	"court_track_app_go/db"
	"court_track_app_go/services"

	"github.com/labstack/echo/v4"
)

// parseCaseFilter builds the list-query filter from query parameters. The
// same criteria drive both the JSON list and the Excel export.
func parseCaseFilter(c echo.Context) services.CaseFilter {
	filter := services.CaseFilter{
		SubDepartment:  c.QueryParam("subDepartment"),
		Status:         c.QueryParam("status"),
		WritType:       c.QueryParam("writType"),
		PetitionerName: c.QueryParam("petitionerName"),
		RespondentName: c.QueryParam("respondentName"),
		Search:         c.QueryParam("search"),
		IncludeAll:     c.QueryParam("includeAll") == "true",
	}

	if deptParam := c.QueryParam("department"); deptParam != "" {
		if dept, err := strconv.Atoi(deptParam); err == nil {
			filter.Department = &dept
		}
	}
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if p, err := strconv.Atoi(pageParam); err == nil && p > 0 {
			filter.Page = p
		}
	}
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if l, err := strconv.Atoi(limitParam); err == nil && l > 0 {
			filter.Limit = l
		}
	}

	return filter
}

// GetCasesHandler returns a list of cases with filtering and pagination
func GetCasesHandler(c echo.Context) error {
	filter := parseCaseFilter(c)

	list, err := services.ListCases(db.DB, filter)
	if err != nil {
		return respondError(c, err)
	}

	if filter.IncludeAll {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"cases": list.Cases,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"cases":      list.Cases,
		"total":      list.Total,
		"page":       list.Page,
		"totalPages": list.Pages,
	})
}

// GetCaseHandler returns a single case, resolving the path parameter first
// as a store id and then as a case number.
func GetCaseHandler(c echo.Context) error {
	caseData, _, err := services.GetCaseByIDOrNumber(db.DB, c.Param("input"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, caseData)
}

// CreateCaseHandler creates a new case
func CreateCaseHandler(c echo.Context) error {
	var input services.CaseInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Invalid request body",
		})
	}

	caseData, err := services.CreateCase(db.DB, &input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, caseData)
}

// UpdateCaseHandler merges the supplied fields into an existing case
func UpdateCaseHandler(c echo.Context) error {
	var input services.CaseInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Invalid request body",
		})
	}

	caseData, err := services.UpdateCase(db.DB, c.Param("id"), &input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, caseData)
}

// DeleteCaseHandler deletes a case
func DeleteCaseHandler(c echo.Context) error {
	if err := services.DeleteCase(db.DB, c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Case deleted successfully",
	})
}

// GetCaseMultiSubHandler reports whether a case is linked to multiple
// sub-departments, with the resolved member list.
func GetCaseMultiSubHandler(c echo.Context) error {
	hasMultiple, subs, err := services.GetMultiSubStatus(db.DB, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"hasMultiple":    hasMultiple,
		"subDepartments": subs,
	})
}

// ExportCasesHandler streams the filtered case list as an Excel workbook
func ExportCasesHandler(c echo.Context) error {
	buf, err := services.ExportCasesExcel(db.DB, parseCaseFilter(c))
	if err != nil {
		return respondError(c, err)
	}

	filename := "cases-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
