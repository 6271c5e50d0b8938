package handlers

import (
	"net/http"
	"strconv"

	"court_track_app_go/db"
	"court_track_app_go/services"

	"github.com/labstack/echo/v4"
)

type createSubDepartmentRequest struct {
	DepartmentID  services.FlexInt `json:"departmentId"`
	SubDeptNameEn string           `json:"subDeptNameEn"`
	SubDeptNameHi string           `json:"subDeptNameHi"`
}

// CreateSubDepartmentHandler creates a sub-department under a department,
// linked by the department's business number
func CreateSubDepartmentHandler(c echo.Context) error {
	var req createSubDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Invalid request body",
		})
	}

	number := 0
	if req.DepartmentID.Valid {
		number = req.DepartmentID.Value
	}
	sub, err := services.CreateSubDepartment(db.DB, number, req.SubDeptNameEn, req.SubDeptNameHi)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, sub)
}

// GetSubDepartmentsHandler returns sub-departments, optionally filtered by
// the owning department's business number
func GetSubDepartmentsHandler(c echo.Context) error {
	var departmentNumber *int
	if param := c.QueryParam("departmentId"); param != "" {
		if n, err := strconv.Atoi(param); err == nil {
			departmentNumber = &n
		}
	}

	subs, err := services.ListSubDepartments(db.DB, departmentNumber)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, subs)
}

// GetSubDepartmentHandler returns a sub-department by store id
func GetSubDepartmentHandler(c echo.Context) error {
	sub, err := services.GetSubDepartment(db.DB, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, sub)
}

type updateSubDepartmentRequest struct {
	DepartmentID *services.FlexInt `json:"departmentId"`
	NameEn       *string           `json:"name_en"`
	NameHi       *string           `json:"name_hi"`
}

// UpdateSubDepartmentHandler updates a sub-department's names or department
func UpdateSubDepartmentHandler(c echo.Context) error {
	var req updateSubDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Invalid request body",
		})
	}

	var departmentNumber *int
	if req.DepartmentID != nil && req.DepartmentID.Valid {
		departmentNumber = &req.DepartmentID.Value
	}
	sub, err := services.UpdateSubDepartment(db.DB, c.Param("id"), departmentNumber, req.NameEn, req.NameHi)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, sub)
}

// DeleteSubDepartmentHandler deletes a sub-department unless a case still
// references it as the primary sub-department
func DeleteSubDepartmentHandler(c echo.Context) error {
	if err := services.DeleteSubDepartment(db.DB, c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Sub-department deleted successfully",
	})
}
