package service

import (
	"edupanel/database/model"
	"edupanel/storage"
	"edupanel/util/random"
)

// AdmissionService manages admission forms. The unique form code is
// generated server-side; the store does not check it for collision.
type AdmissionService struct {
	store    storage.Store
	activity *ActivityLogService
}

func NewAdmissionService(store storage.Store, activity *ActivityLogService) *AdmissionService {
	return &AdmissionService{store: store, activity: activity}
}

// Create generates a unique code, stamps the creator and inserts the form.
func (s *AdmissionService) Create(actorId int, form *model.AdmissionForm) (*model.AdmissionForm, error) {
	form.UniqueCode = random.LowerSeq(16)
	form.CreatedById = actorId

	created, err := s.store.CreateAdmissionForm(form)
	if err != nil {
		return nil, err
	}
	s.activity.Log(actorId, model.ActionCreateAdmissionForm, "New admission form created: "+created.FormName)
	return created, nil
}

func (s *AdmissionService) GetAll() ([]model.AdmissionForm, error) {
	return s.store.GetAllAdmissionForms()
}

func (s *AdmissionService) GetByCode(uniqueCode string) (*model.AdmissionForm, error) {
	return s.store.GetAdmissionFormByCode(uniqueCode)
}
