package database

import (
	"time"

	"edupanel/database/model"

	"gorm.io/gorm"
)

// Store is the gorm-backed implementation of storage.Store. Not-found
// lookups return (nil, nil); callers decide whether absence is an error.
type Store struct {
	db *gorm.DB
}

// NewStore wraps a gorm handle. Pass GetDB() after InitDB.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// first runs a query and maps gorm's not-found error to nil.
func first[T any](tx *gorm.DB) (*T, error) {
	var record T
	err := tx.First(&record).Error
	if IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Store) GetUser(id int) (*model.User, error) {
	return first[model.User](s.db.Where("id = ?", id))
}

func (s *Store) GetUserByUsername(username string) (*model.User, error) {
	return first[model.User](s.db.Where("username = ?", username))
}

func (s *Store) CreateUser(user *model.User) (*model.User, error) {
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Store) GetUsersByRole(role string) ([]model.User, error) {
	var users []model.User
	err := s.db.Where("role = ?", role).Order("id").Find(&users).Error
	return users, err
}

func (s *Store) CountUsers() (int64, error) {
	var count int64
	err := s.db.Model(&model.User{}).Count(&count).Error
	return count, err
}

func (s *Store) GetStudent(id int) (*model.Student, error) {
	return first[model.Student](s.db.Where("id = ?", id))
}

func (s *Store) GetStudentByAdmissionNumber(admissionNumber string) (*model.Student, error) {
	return first[model.Student](s.db.Where("admission_number = ?", admissionNumber))
}

func (s *Store) CreateStudent(student *model.Student) (*model.Student, error) {
	if err := s.db.Create(student).Error; err != nil {
		return nil, err
	}
	return student, nil
}

func (s *Store) GetAllStudents() ([]model.Student, error) {
	var students []model.Student
	err := s.db.Order("id").Find(&students).Error
	return students, err
}

func (s *Store) GetAdmissionForm(id int) (*model.AdmissionForm, error) {
	return first[model.AdmissionForm](s.db.Where("id = ?", id))
}

func (s *Store) GetAdmissionFormByCode(uniqueCode string) (*model.AdmissionForm, error) {
	return first[model.AdmissionForm](s.db.Where("unique_code = ?", uniqueCode))
}

func (s *Store) CreateAdmissionForm(form *model.AdmissionForm) (*model.AdmissionForm, error) {
	if err := s.db.Create(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}

func (s *Store) GetAllAdmissionForms() ([]model.AdmissionForm, error) {
	var forms []model.AdmissionForm
	err := s.db.Order("id").Find(&forms).Error
	return forms, err
}

func (s *Store) CreateActivityLog(log *model.ActivityLog) (*model.ActivityLog, error) {
	if err := s.db.Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

func (s *Store) GetRecentActivityLogs(limit int) ([]model.ActivityLog, error) {
	if limit < 0 {
		limit = 0
	}
	var logs []model.ActivityLog
	err := s.db.Order("created_at DESC, id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

func (s *Store) DeleteActivityLogsBefore(cutoff time.Time) (int64, error) {
	result := s.db.Where("created_at < ?", cutoff).Delete(&model.ActivityLog{})
	return result.RowsAffected, result.Error
}

func (s *Store) GetPendingStudentByParentEmail(parentEmail string) (*model.PendingStudent, error) {
	return first[model.PendingStudent](s.db.Where("parent_email = ? COLLATE NOCASE", parentEmail))
}

func (s *Store) CreatePendingStudent(student *model.PendingStudent) (*model.PendingStudent, error) {
	if err := s.db.Create(student).Error; err != nil {
		return nil, err
	}
	return student, nil
}

func (s *Store) GetApprovedStudentByParentEmail(parentEmail string) (*model.ApprovedStudent, error) {
	return first[model.ApprovedStudent](s.db.Where("parent_email = ? COLLATE NOCASE", parentEmail))
}

func (s *Store) CreateApprovedStudent(student *model.ApprovedStudent) (*model.ApprovedStudent, error) {
	if err := s.db.Create(student).Error; err != nil {
		return nil, err
	}
	return student, nil
}

func (s *Store) GetPendingEmployeeByEmail(email string) (*model.PendingEmployee, error) {
	return first[model.PendingEmployee](s.db.Where("email = ? COLLATE NOCASE", email))
}

func (s *Store) CreatePendingEmployee(employee *model.PendingEmployee) (*model.PendingEmployee, error) {
	if err := s.db.Create(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *Store) GetApprovedEmployeeByEmail(email string) (*model.ApprovedEmployee, error) {
	return first[model.ApprovedEmployee](s.db.Where("email = ? COLLATE NOCASE", email))
}

func (s *Store) CreateApprovedEmployee(employee *model.ApprovedEmployee) (*model.ApprovedEmployee, error) {
	if err := s.db.Create(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *Store) GetAdminByEmail(email string) (*model.Admin, error) {
	return first[model.Admin](s.db.Where("email = ? COLLATE NOCASE", email))
}

func (s *Store) CreateAdmin(admin *model.Admin) (*model.Admin, error) {
	if err := s.db.Create(admin).Error; err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *Store) CountAdmins() (int64, error) {
	var count int64
	err := s.db.Model(&model.Admin{}).Count(&count).Error
	return count, err
}
