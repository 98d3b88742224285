package service

import (
	"edupanel/database/model"
	"edupanel/storage"
	"edupanel/web/entity"
)

// DashboardService aggregates the headline counts for the dashboard.
type DashboardService struct {
	store storage.Store
}

func NewDashboardService(store storage.Store) *DashboardService {
	return &DashboardService{store: store}
}

func (s *DashboardService) GetStats() (*entity.DashboardStats, error) {
	students, err := s.store.GetAllStudents()
	if err != nil {
		return nil, err
	}
	staff, err := s.store.GetUsersByRole(model.RoleStaff)
	if err != nil {
		return nil, err
	}
	teachers, err := s.store.GetUsersByRole(model.RoleTeacher)
	if err != nil {
		return nil, err
	}
	forms, err := s.store.GetAllAdmissionForms()
	if err != nil {
		return nil, err
	}

	return &entity.DashboardStats{
		TotalStudents:   len(students),
		TotalStaff:      len(staff),
		TotalTeachers:   len(teachers),
		TotalAdmissions: len(forms),
	}, nil
}
