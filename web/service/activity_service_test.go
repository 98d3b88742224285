package service

import (
	"testing"

	"edupanel/database/model"
	"edupanel/storage/memory"

	"github.com/stretchr/testify/assert"
)

func TestStudentCreateAudits(t *testing.T) {
	store := memory.NewStore()
	activity := NewActivityLogService(store)
	service := NewStudentService(store, activity)

	student, err := service.Create(7, &model.Student{
		FullName:        "Jane Doe",
		AdmissionNumber: "ADM-001",
		Grade:           "5",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, student.Id)

	logs, _ := store.GetRecentActivityLogs(10)
	assert.Len(t, logs, 1)
	assert.Equal(t, model.ActionCreateStudent, logs[0].Action)
	assert.Equal(t, 7, logs[0].UserId)
}

func TestAdmissionFormCodeIsServerAssigned(t *testing.T) {
	store := memory.NewStore()
	activity := NewActivityLogService(store)
	service := NewAdmissionService(store, activity)

	// The caller-supplied code is overwritten on create
	form, err := service.Create(7, &model.AdmissionForm{
		FormName:   "Fall Intake",
		GradeLevel: "5",
		UniqueCode: "caller-chosen",
	})
	assert.NoError(t, err)
	assert.NotEqual(t, "caller-chosen", form.UniqueCode)
	assert.Len(t, form.UniqueCode, 16)
	assert.Equal(t, 7, form.CreatedById)

	got, err := service.GetByCode(form.UniqueCode)
	assert.NoError(t, err)
	assert.Equal(t, form.Id, got.Id)

	// Two forms never share a code
	other, err := service.Create(7, &model.AdmissionForm{FormName: "Spring Intake", GradeLevel: "6"})
	assert.NoError(t, err)
	assert.NotEqual(t, form.UniqueCode, other.UniqueCode)
}

func TestCleanOldLogs(t *testing.T) {
	store := memory.NewStore()
	service := NewActivityLogService(store)

	service.Log(1, model.ActionLogin, "login")

	// Nothing recent enough to delete
	err := service.CleanOldLogs(90)
	assert.NoError(t, err)

	logs, _ := service.GetRecent(10)
	assert.Len(t, logs, 1)

	// Non-positive retention is a no-op, not a delete-everything
	err = service.CleanOldLogs(0)
	assert.NoError(t, err)

	logs, _ = service.GetRecent(10)
	assert.Len(t, logs, 1)
}
