package service

import (
	"time"

	"edupanel/database/model"
	"edupanel/storage"
	"edupanel/util/crypto"
)

// ApprovalService moves self-submitted registrations from the pending stores
// into the approved stores. State machine: Pending -> Approved, one way. The
// pending record is left in place after approval for audit visibility.
type ApprovalService struct {
	store storage.Store
}

func NewApprovalService(store storage.Store) *ApprovalService {
	return &ApprovalService{store: store}
}

// ApproveStudent approves the pending student registration matching the
// parent email. The already-hashed password is copied verbatim.
func (s *ApprovalService) ApproveStudent(parentEmail string) (*model.ApprovedStudent, error) {
	pending, err := s.store.GetPendingStudentByParentEmail(parentEmail)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, ErrNotFound
	}

	existing, err := s.store.GetApprovedStudentByParentEmail(parentEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyApproved
	}

	now := time.Now()
	approved := &model.ApprovedStudent{
		ParentEmail:           pending.ParentEmail,
		ParentName:            pending.ParentName,
		ContactNumber:         pending.ContactNumber,
		Address:               pending.Address,
		StudentName:           pending.StudentName,
		DOB:                   pending.DOB,
		BloodGroup:            pending.BloodGroup,
		Gender:                pending.Gender,
		DisabilityType:        pending.DisabilityType,
		DisabilityDescription: pending.DisabilityDescription,
		SpecialRequirements:   pending.SpecialRequirements,
		PreviousInterventions: pending.PreviousInterventions,
		RecommendedPrograms:   "",
		JoinDate:              now,
		ApprovedAt:            now,
		Password:              pending.Password,
	}
	return s.store.CreateApprovedStudent(approved)
}

// ApproveEmployee approves the pending employee registration matching the
// email. Same contract as ApproveStudent.
func (s *ApprovalService) ApproveEmployee(email string) (*model.ApprovedEmployee, error) {
	pending, err := s.store.GetPendingEmployeeByEmail(email)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, ErrNotFound
	}

	existing, err := s.store.GetApprovedEmployeeByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyApproved
	}

	now := time.Now()
	approved := &model.ApprovedEmployee{
		Name:           pending.Name,
		Email:          pending.Email,
		ContactNumber:  pending.ContactNumber,
		Address:        pending.Address,
		Qualifications: pending.Qualifications,
		Experience:     pending.Experience,
		Skills:         pending.Skills,
		Resume:         pending.Resume,
		JoinDate:       now,
		ApprovedAt:     now,
		Password:       pending.Password,
	}
	return s.store.CreateApprovedEmployee(approved)
}

// AddAdmin creates a new approval admin with a freshly hashed password.
func (s *ApprovalService) AddAdmin(name, email, password string) (*model.Admin, error) {
	existing, err := s.store.GetAdminByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	return s.store.CreateAdmin(&model.Admin{
		Name:     name,
		Email:    email,
		Password: hash,
	})
}

// RegisterStudent stores a self-submitted student registration in the
// pending store. The raw password is hashed here, at submission time.
func (s *ApprovalService) RegisterStudent(pending *model.PendingStudent, password string) (*model.PendingStudent, error) {
	existing, err := s.store.GetPendingStudentByParentEmail(pending.ParentEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}
	pending.Password = hash
	return s.store.CreatePendingStudent(pending)
}

// RegisterEmployee stores a self-submitted employee registration in the
// pending store.
func (s *ApprovalService) RegisterEmployee(pending *model.PendingEmployee, password string) (*model.PendingEmployee, error) {
	existing, err := s.store.GetPendingEmployeeByEmail(pending.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}
	pending.Password = hash
	return s.store.CreatePendingEmployee(pending)
}
