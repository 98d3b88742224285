package controller

import (
	"net/http"
	"testing"

	"edupanel/database/model"
	"edupanel/web/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStudentCreateAndList(t *testing.T) {
	srv, client, _ := newTestServer(t)

	registerUser(t, client, srv.URL, "alice", "staff")

	resp := postJSON(t, client, srv.URL+"/api/students", gin.H{
		"fullName":        "Jane Doe",
		"admissionNumber": "ADM-001",
		"grade":           "5",
		"gender":          "female",
		"dateOfBirth":     "2015-06-01T00:00:00Z",
		"parentName":      "Pat Doe",
		"parentContact":   "555-0100",
		"address":         "1 Main St",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.Student
	decodeBody(t, resp, &created)
	assert.NotZero(t, created.Id)
	assert.Equal(t, "Jane Doe", created.FullName)

	resp = getJSON(t, client, srv.URL+"/api/students")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var students []model.Student
	decodeBody(t, resp, &students)
	assert.Len(t, students, 1)

	// Missing required fields are rejected before any write
	resp = postJSON(t, client, srv.URL+"/api/students", gin.H{"fullName": "Nameless"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdmissionFormGeneration(t *testing.T) {
	srv, client, _ := newTestServer(t)

	registerUser(t, client, srv.URL, "alice", "staff")

	// The caller cannot choose the code; the server generates it
	resp := postJSON(t, client, srv.URL+"/api/admission-forms", gin.H{
		"formName":           "Fall Intake",
		"gradeLevel":         "5",
		"expiryDate":         "2026-12-31T00:00:00Z",
		"includeMedicalInfo": true,
		"uniqueCode":         "caller-chosen",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var form model.AdmissionForm
	decodeBody(t, resp, &form)
	assert.NotEqual(t, "caller-chosen", form.UniqueCode)
	assert.Len(t, form.UniqueCode, 16)
	assert.True(t, form.IncludeMedicalInfo)
	assert.NotZero(t, form.CreatedById)

	resp = getJSON(t, client, srv.URL+"/api/admission-forms")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var forms []model.AdmissionForm
	decodeBody(t, resp, &forms)
	assert.Len(t, forms, 1)
}

func TestStaffAndTeacherListings(t *testing.T) {
	srv, client, _ := newTestServer(t)

	registerUser(t, client, srv.URL, "s1", "staff")
	resp := postJSON(t, client, srv.URL+"/api/logout", gin.H{})
	resp.Body.Close()
	registerUser(t, client, srv.URL, "t1", "teacher")

	resp = getJSON(t, client, srv.URL+"/api/staff")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var staff []model.SafeUser
	decodeBody(t, resp, &staff)
	assert.Len(t, staff, 1)
	assert.Equal(t, "s1", staff[0].Username)

	resp = getJSON(t, client, srv.URL+"/api/teachers")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var teachers []model.SafeUser
	decodeBody(t, resp, &teachers)
	assert.Len(t, teachers, 1)
	assert.Equal(t, "t1", teachers[0].Username)
}

func TestDashboardStats(t *testing.T) {
	srv, client, _ := newTestServer(t)

	registerUser(t, client, srv.URL, "alice", "staff")

	resp := postJSON(t, client, srv.URL+"/api/students", gin.H{
		"fullName":        "Jane Doe",
		"admissionNumber": "ADM-001",
		"grade":           "5",
		"gender":          "female",
		"dateOfBirth":     "2015-06-01T00:00:00Z",
		"parentName":      "Pat Doe",
		"parentContact":   "555-0100",
		"address":         "1 Main St",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = getJSON(t, client, srv.URL+"/api/dashboard/stats")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stats entity.DashboardStats
	decodeBody(t, resp, &stats)
	assert.Equal(t, 1, stats.TotalStudents)
	assert.Equal(t, 1, stats.TotalStaff)
	assert.Equal(t, 0, stats.TotalTeachers)
	assert.Equal(t, 0, stats.TotalAdmissions)
}

func TestActivityLogListing(t *testing.T) {
	srv, client, _ := newTestServer(t)

	// Register + student create leave two audit entries
	registerUser(t, client, srv.URL, "alice", "staff")
	resp := postJSON(t, client, srv.URL+"/api/students", gin.H{
		"fullName":        "Jane Doe",
		"admissionNumber": "ADM-001",
		"grade":           "5",
		"gender":          "female",
		"dateOfBirth":     "2015-06-01T00:00:00Z",
		"parentName":      "Pat Doe",
		"parentContact":   "555-0100",
		"address":         "1 Main St",
	})
	resp.Body.Close()

	resp = getJSON(t, client, srv.URL+"/api/activity-logs")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var logs []model.ActivityLog
	decodeBody(t, resp, &logs)
	assert.Len(t, logs, 2)
	assert.Equal(t, model.ActionCreateStudent, logs[0].Action)
	assert.Equal(t, model.ActionRegister, logs[1].Action)

	// Explicit limit truncates, newest first
	resp = getJSON(t, client, srv.URL+"/api/activity-logs?limit=1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	decodeBody(t, resp, &logs)
	assert.Len(t, logs, 1)
	assert.Equal(t, model.ActionCreateStudent, logs[0].Action)
}
