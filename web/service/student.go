package service

import (
	"edupanel/database/model"
	"edupanel/storage"
)

// StudentService manages enrolled student records.
type StudentService struct {
	store    storage.Store
	activity *ActivityLogService
}

func NewStudentService(store storage.Store, activity *ActivityLogService) *StudentService {
	return &StudentService{store: store, activity: activity}
}

// Create inserts a student and records the audit entry for the acting user.
func (s *StudentService) Create(actorId int, student *model.Student) (*model.Student, error) {
	created, err := s.store.CreateStudent(student)
	if err != nil {
		return nil, err
	}
	s.activity.Log(actorId, model.ActionCreateStudent, "New student created: "+created.FullName)
	return created, nil
}

func (s *StudentService) GetAll() ([]model.Student, error) {
	return s.store.GetAllStudents()
}

func (s *StudentService) GetByAdmissionNumber(admissionNumber string) (*model.Student, error) {
	return s.store.GetStudentByAdmissionNumber(admissionNumber)
}
