package handlers

import (
	"net/http"
	"strconv"

	"court_track_app_go/db"
	"court_track_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetDepartmentsHandler returns all departments ordered by business number
func GetDepartmentsHandler(c echo.Context) error {
	departments, err := services.ListDepartments(db.DB)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, departments)
}

// GetDepartmentHandler returns a department by its business number
func GetDepartmentHandler(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return respondError(c, &services.NotFoundError{Resource: "department"})
	}

	dept, err := services.GetDepartmentByNumber(db.DB, number)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dept)
}

type createDepartmentRequest struct {
	Number services.FlexInt `json:"id"`
	NameEn string           `json:"name_en"`
	NameHi string           `json:"name_hi"`
}

// CreateDepartmentHandler creates a department with a human-assigned number
func CreateDepartmentHandler(c echo.Context) error {
	var req createDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Invalid request body",
		})
	}

	number := 0
	if req.Number.Valid {
		number = req.Number.Value
	}
	dept, err := services.CreateDepartment(db.DB, number, req.NameEn, req.NameHi)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dept)
}

// SeedDataHandler upserts the baseline departments
func SeedDataHandler(c echo.Context) error {
	if err := services.SeedDepartments(db.DB); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Seed data created successfully",
	})
}
