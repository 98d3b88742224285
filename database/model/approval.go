package model

import "time"

// PendingStudent is a self-submitted student registration awaiting approval,
// keyed by the parent's email. The password is stored hashed at submission
// time and copied verbatim on approval.
type PendingStudent struct {
	Id                    int       `json:"id" gorm:"primaryKey;autoIncrement"`
	ParentEmail           string    `json:"parent_email" gorm:"uniqueIndex;not null"`
	ParentName            string    `json:"parent_name" gorm:"not null"`
	ContactNumber         string    `json:"contact_number" gorm:"not null"`
	Address               string    `json:"address" gorm:"not null"`
	StudentName           string    `json:"student_name" gorm:"not null"`
	DOB                   time.Time `json:"dob" gorm:"not null"`
	BloodGroup            string    `json:"blood_group" gorm:"not null"`
	Gender                string    `json:"gender" gorm:"not null"`
	DisabilityType        string    `json:"disability_type" gorm:"not null"`
	DisabilityDescription string    `json:"disability_description" gorm:"not null"`
	SpecialRequirements   string    `json:"special_requirements"`
	PreviousInterventions string    `json:"previous_interventions"`
	Password              string    `json:"-" gorm:"not null"`
	CreatedAt             time.Time `json:"created_at"`
}

// ApprovedStudent is the authoritative record created when an administrator
// approves a pending student registration. The pending record stays in place
// for audit visibility.
type ApprovedStudent struct {
	Id                    int       `json:"id" gorm:"primaryKey;autoIncrement"`
	ParentEmail           string    `json:"parent_email" gorm:"uniqueIndex;not null"`
	ParentName            string    `json:"parent_name" gorm:"not null"`
	ContactNumber         string    `json:"contact_number" gorm:"not null"`
	Address               string    `json:"address" gorm:"not null"`
	StudentName           string    `json:"student_name" gorm:"not null"`
	DOB                   time.Time `json:"dob" gorm:"not null"`
	BloodGroup            string    `json:"blood_group" gorm:"not null"`
	Gender                string    `json:"gender" gorm:"not null"`
	DisabilityType        string    `json:"disability_type" gorm:"not null"`
	DisabilityDescription string    `json:"disability_description" gorm:"not null"`
	SpecialRequirements   string    `json:"special_requirements"`
	PreviousInterventions string    `json:"previous_interventions"`
	RecommendedPrograms   string    `json:"recommended_programs"`
	JoinDate              time.Time `json:"join_date"`
	ApprovedAt            time.Time `json:"approved_at"`
	Password              string    `json:"-" gorm:"not null"`
}

// PendingEmployee is a self-submitted employee registration awaiting
// approval, keyed by email.
type PendingEmployee struct {
	Id             int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string    `json:"name" gorm:"not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	ContactNumber  string    `json:"contact_number" gorm:"not null"`
	Address        string    `json:"address" gorm:"not null"`
	Qualifications string    `json:"qualifications" gorm:"not null"`
	Experience     string    `json:"experience"`
	Skills         string    `json:"skills"` // comma-joined list
	Resume         string    `json:"resume"`
	Password       string    `json:"-" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
}

// ApprovedEmployee is the authoritative employee record created on approval.
type ApprovedEmployee struct {
	Id             int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string    `json:"name" gorm:"not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	ContactNumber  string    `json:"contact_number" gorm:"not null"`
	Address        string    `json:"address" gorm:"not null"`
	Qualifications string    `json:"qualifications" gorm:"not null"`
	Experience     string    `json:"experience"`
	Skills         string    `json:"skills"`
	Resume         string    `json:"resume"`
	JoinDate       time.Time `json:"join_date"`
	ApprovedAt     time.Time `json:"approved_at"`
	Password       string    `json:"-" gorm:"not null"`
}

// Admin is an account allowed to drive the approval workflow.
type Admin struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
