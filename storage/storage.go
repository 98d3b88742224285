// Package storage defines the store contract shared by the in-memory and
// database-backed implementations. Handlers receive a Store explicitly
// instead of reaching for a process-wide singleton, so tests stay isolated
// and the backend can be swapped.
//
// Absence is never an error: lookups return (nil, nil) when no record
// matches and callers decide whether that is a failure.
package storage

import (
	"time"

	"edupanel/database/model"
)

// UserStore holds panel accounts.
type UserStore interface {
	GetUser(id int) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	CreateUser(user *model.User) (*model.User, error)
	GetUsersByRole(role string) ([]model.User, error)
	CountUsers() (int64, error)
}

// StudentStore holds enrolled student records.
type StudentStore interface {
	GetStudent(id int) (*model.Student, error)
	GetStudentByAdmissionNumber(admissionNumber string) (*model.Student, error)
	CreateStudent(student *model.Student) (*model.Student, error)
	GetAllStudents() ([]model.Student, error)
}

// AdmissionFormStore holds generated admission forms.
type AdmissionFormStore interface {
	GetAdmissionForm(id int) (*model.AdmissionForm, error)
	GetAdmissionFormByCode(uniqueCode string) (*model.AdmissionForm, error)
	CreateAdmissionForm(form *model.AdmissionForm) (*model.AdmissionForm, error)
	GetAllAdmissionForms() ([]model.AdmissionForm, error)
}

// ActivityLogStore holds the append-only audit trail.
type ActivityLogStore interface {
	CreateActivityLog(log *model.ActivityLog) (*model.ActivityLog, error)
	GetRecentActivityLogs(limit int) ([]model.ActivityLog, error)
	DeleteActivityLogsBefore(cutoff time.Time) (int64, error)
}

// ApprovalStore holds the registration-approval records: pending and
// approved students/employees plus the admin accounts that approve them.
type ApprovalStore interface {
	GetPendingStudentByParentEmail(parentEmail string) (*model.PendingStudent, error)
	CreatePendingStudent(student *model.PendingStudent) (*model.PendingStudent, error)
	GetApprovedStudentByParentEmail(parentEmail string) (*model.ApprovedStudent, error)
	CreateApprovedStudent(student *model.ApprovedStudent) (*model.ApprovedStudent, error)

	GetPendingEmployeeByEmail(email string) (*model.PendingEmployee, error)
	CreatePendingEmployee(employee *model.PendingEmployee) (*model.PendingEmployee, error)
	GetApprovedEmployeeByEmail(email string) (*model.ApprovedEmployee, error)
	CreateApprovedEmployee(employee *model.ApprovedEmployee) (*model.ApprovedEmployee, error)

	GetAdminByEmail(email string) (*model.Admin, error)
	CreateAdmin(admin *model.Admin) (*model.Admin, error)
	CountAdmins() (int64, error)
}

// Store is the full contract required by the web layer.
type Store interface {
	UserStore
	StudentStore
	AdmissionFormStore
	ActivityLogStore
	ApprovalStore
}
