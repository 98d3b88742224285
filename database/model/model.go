// Package model defines the database records served by the panel.
package model

import "time"

// Student is an enrolled student record.
type Student struct {
	Id              int       `json:"id" gorm:"primaryKey;autoIncrement"`
	FullName        string    `json:"fullName" gorm:"not null"`
	AdmissionNumber string    `json:"admissionNumber" gorm:"uniqueIndex;not null"`
	Grade           string    `json:"grade" gorm:"not null"`
	Gender          string    `json:"gender" gorm:"not null"`
	DateOfBirth     time.Time `json:"dateOfBirth" gorm:"not null"`
	ParentName      string    `json:"parentName" gorm:"not null"`
	ParentContact   string    `json:"parentContact" gorm:"not null"`
	Address         string    `json:"address" gorm:"not null"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AdmissionForm describes a generated admission form. UniqueCode is assigned
// by the server on creation, never by the caller.
type AdmissionForm struct {
	Id                      int       `json:"id" gorm:"primaryKey;autoIncrement"`
	FormName                string    `json:"formName" gorm:"not null"`
	GradeLevel              string    `json:"gradeLevel" gorm:"not null"`
	UniqueCode              string    `json:"uniqueCode" gorm:"uniqueIndex;not null"`
	ExpiryDate              time.Time `json:"expiryDate" gorm:"not null"`
	IncludeMedicalInfo      bool      `json:"includeMedicalInfo"`
	IncludeAcademicRecords  bool      `json:"includeAcademicRecords"`
	IncludeExtracurricular  bool      `json:"includeExtracurricular"`
	IncludeParentOccupation bool      `json:"includeParentOccupation"`
	CreatedById             int       `json:"createdById"`
	CreatedAt               time.Time `json:"createdAt"`
}

// ActivityLog is one entry of the append-only audit trail.
type ActivityLog struct {
	Id          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId      int       `json:"userId"`
	Action      string    `json:"action" gorm:"not null"` // REGISTER, LOGIN, LOGOUT, CREATE_STUDENT, ...
	Description string    `json:"description" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Activity log action tags.
const (
	ActionRegister            = "REGISTER"
	ActionLogin               = "LOGIN"
	ActionLogout              = "LOGOUT"
	ActionCreateStudent       = "CREATE_STUDENT"
	ActionCreateAdmissionForm = "CREATE_ADMISSION_FORM"
)
