package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"court_track_app_go/services"

	"github.com/stretchr/testify/assert"
)

func TestCreateCaseHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		setupTestDB(t)

		body := `{
			"caseNumber": "CN-2025-100747",
			"petitionerName": "Ram Kumar",
			"respondentName": "State of UP",
			"filingDate": "2025-09-15",
			"department": 1
		}`
		_, c, rec := setupEcho(http.MethodPost, "/cases", strings.NewReader(body))
		c.Request().Header.Set("Content-Type", "application/json")

		err := CreateCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Ram Kumar", resp["petitionerName"])
		assert.Equal(t, "Pending", resp["status"])
		assert.Equal(t, float64(0), resp["reminderSentCount"])
	})

	t.Run("Department as string", func(t *testing.T) {
		setupTestDB(t)

		body := `{
			"petitionerName": "Ram Kumar",
			"respondentName": "State",
			"filingDate": "2025-09-15",
			"department": "2"
		}`
		_, c, rec := setupEcho(http.MethodPost, "/cases", strings.NewReader(body))
		c.Request().Header.Set("Content-Type", "application/json")

		err := CreateCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, float64(2), resp["department"])
	})

	t.Run("Missing fields listed in details", func(t *testing.T) {
		setupTestDB(t)

		body := `{"petitionerName": "Ram Kumar"}`
		_, c, rec := setupEcho(http.MethodPost, "/cases", strings.NewReader(body))
		c.Request().Header.Set("Content-Type", "application/json")

		err := CreateCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Missing or invalid fields", resp["error"])

		details := resp["details"].([]interface{})
		assert.Contains(t, details, "respondentName")
		assert.Contains(t, details, "filingDate (valid date)")
		assert.Contains(t, details, "department (number)")
	})
}

func TestGetCaseHandler(t *testing.T) {
	database := setupTestDB(t)
	created := createTestCase(t, database, &services.CaseInput{
		CaseNumber:     stringToPtr("CN-2025-100747"),
		PetitionerName: stringToPtr("Ram Kumar"),
		RespondentName: stringToPtr("State"),
		FilingDate:     stringToPtr("2025-09-15"),
		Department:     flexInt(1),
	})

	t.Run("By store id", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/cases/"+created.ID, nil)
		c.SetParamNames("input")
		c.SetParamValues(created.ID)

		err := GetCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("By case number", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/cases/CN-2025-100747", nil)
		c.SetParamNames("input")
		c.SetParamValues("CN-2025-100747")

		err := GetCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, created.ID, resp["id"])
	})

	t.Run("Unknown identifier", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/cases/CN-unknown", nil)
		c.SetParamNames("input")
		c.SetParamValues("CN-unknown")

		err := GetCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetCasesHandler(t *testing.T) {
	database := setupTestDB(t)
	for _, d := range []string{"2025-09-10", "2025-09-11", "2025-09-12"} {
		createTestCase(t, database, &services.CaseInput{
			PetitionerName: stringToPtr("Ram Kumar"),
			RespondentName: stringToPtr("State"),
			FilingDate:     stringToPtr(d),
			Department:     flexInt(1),
		})
	}

	t.Run("Paginated response shape", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/cases?page=1&limit=2", nil)

		err := GetCasesHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, float64(3), resp["total"])
		assert.Equal(t, float64(1), resp["page"])
		assert.Equal(t, float64(2), resp["totalPages"])
		assert.Len(t, resp["cases"], 2)
	})

	t.Run("IncludeAll response shape", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/cases?includeAll=true", nil)

		err := GetCasesHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp["cases"], 3)
		_, hasTotal := resp["total"]
		assert.False(t, hasTotal)
	})
}

func TestUpdateCaseHandler(t *testing.T) {
	database := setupTestDB(t)
	created := createTestCase(t, database, &services.CaseInput{
		PetitionerName: stringToPtr("Ram Kumar"),
		RespondentName: stringToPtr("State"),
		FilingDate:     stringToPtr("2025-09-15"),
		Department:     flexInt(1),
	})

	body := `{"status": "Resolved"}`
	_, c, rec := setupEcho(http.MethodPut, "/cases/"+created.ID, strings.NewReader(body))
	c.Request().Header.Set("Content-Type", "application/json")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)

	err := UpdateCaseHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Resolved", resp["status"])
	assert.Equal(t, "Ram Kumar", resp["petitionerName"])
}

func TestDeleteCaseHandler(t *testing.T) {
	database := setupTestDB(t)
	created := createTestCase(t, database, &services.CaseInput{
		PetitionerName: stringToPtr("Ram Kumar"),
		RespondentName: stringToPtr("State"),
		FilingDate:     stringToPtr("2025-09-15"),
		Department:     flexInt(1),
	})

	_, c, rec := setupEcho(http.MethodDelete, "/cases/"+created.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)

	err := DeleteCaseHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Case deleted successfully", resp["message"])

	_, c, rec = setupEcho(http.MethodDelete, "/cases/"+created.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)

	err = DeleteCaseHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCaseMultiSubHandler(t *testing.T) {
	database := setupTestDB(t)
	subA := createTestSubDept(t, database, 1, "Revenue")
	subB := createTestSubDept(t, database, 1, "Land Records")

	multi := createTestCase(t, database, &services.CaseInput{
		PetitionerName: stringToPtr("Ram Kumar"),
		RespondentName: stringToPtr("State"),
		FilingDate:     stringToPtr("2025-09-15"),
		Department:     flexInt(1),
		SubDepartments: []string{subA.ID, subB.ID},
	})
	single := createTestCase(t, database, &services.CaseInput{
		PetitionerName: stringToPtr("Shyam Singh"),
		RespondentName: stringToPtr("State"),
		FilingDate:     stringToPtr("2025-09-16"),
		Department:     flexInt(1),
		SubDepartments: []string{subA.ID},
	})

	t.Run("Multiple members", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/cases/"+multi.ID+"/multi-sub", nil)
		c.SetParamNames("id")
		c.SetParamValues(multi.ID)

		err := GetCaseMultiSubHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["hasMultiple"])
		assert.Len(t, resp["subDepartments"], 2)
	})

	t.Run("Single member", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/cases/"+single.ID+"/multi-sub", nil)
		c.SetParamNames("id")
		c.SetParamValues(single.ID)

		err := GetCaseMultiSubHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["hasMultiple"])
		assert.Len(t, resp["subDepartments"], 0)
	})
}

func TestExportCasesHandler(t *testing.T) {
	database := setupTestDB(t)
	createTestCase(t, database, &services.CaseInput{
		CaseNumber:     stringToPtr("CN-2025-100747"),
		PetitionerName: stringToPtr("Ram Kumar"),
		RespondentName: stringToPtr("State"),
		FilingDate:     stringToPtr("2025-09-15"),
		Department:     flexInt(1),
	})

	_, c, rec := setupEcho(http.MethodGet, "/cases/export", nil)

	err := ExportCasesHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, rec.Body.Len())
}
