// Package memory provides a map-backed Store implementation. It serves the
// panel at small scale: lookups by non-key fields are linear scans, ids are
// assigned from atomic per-store counters starting at 1.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"edupanel/database/model"

	"go.uber.org/atomic"
)

// Store keeps every record in process memory. Mutation of each collection is
// serialized by a single mutex; id allocation uses an atomic counter so
// concurrent creates never observe the same id.
type Store struct {
	mu sync.RWMutex

	users          map[int]model.User
	students       map[int]model.Student
	admissionForms map[int]model.AdmissionForm
	activityLogs   map[int]model.ActivityLog

	pendingStudents   map[int]model.PendingStudent
	approvedStudents  map[int]model.ApprovedStudent
	pendingEmployees  map[int]model.PendingEmployee
	approvedEmployees map[int]model.ApprovedEmployee
	admins            map[int]model.Admin

	userId     atomic.Int64
	studentId  atomic.Int64
	formId     atomic.Int64
	logId      atomic.Int64
	pendingId  atomic.Int64
	approvedId atomic.Int64
	employeeId atomic.Int64
	hiredId    atomic.Int64
	adminId    atomic.Int64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users:             make(map[int]model.User),
		students:          make(map[int]model.Student),
		admissionForms:    make(map[int]model.AdmissionForm),
		activityLogs:      make(map[int]model.ActivityLog),
		pendingStudents:   make(map[int]model.PendingStudent),
		approvedStudents:  make(map[int]model.ApprovedStudent),
		pendingEmployees:  make(map[int]model.PendingEmployee),
		approvedEmployees: make(map[int]model.ApprovedEmployee),
		admins:            make(map[int]model.Admin),
	}
}

func (s *Store) GetUser(id int) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (s *Store) GetUserByUsername(username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateUser(user *model.User) (*model.User, error) {
	user.Id = int(s.userId.Inc())
	user.CreatedAt = time.Now()
	s.mu.Lock()
	s.users[user.Id] = *user
	s.mu.Unlock()
	return user, nil
}

func (s *Store) GetUsersByRole(role string) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]model.User, 0)
	for _, user := range s.users {
		if user.Role == role {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Id < users[j].Id })
	return users, nil
}

func (s *Store) CountUsers() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

func (s *Store) GetStudent(id int) (*model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if student, ok := s.students[id]; ok {
		return &student, nil
	}
	return nil, nil
}

func (s *Store) GetStudentByAdmissionNumber(admissionNumber string) (*model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, student := range s.students {
		if student.AdmissionNumber == admissionNumber {
			st := student
			return &st, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateStudent(student *model.Student) (*model.Student, error) {
	student.Id = int(s.studentId.Inc())
	student.CreatedAt = time.Now()
	s.mu.Lock()
	s.students[student.Id] = *student
	s.mu.Unlock()
	return student, nil
}

func (s *Store) GetAllStudents() ([]model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	students := make([]model.Student, 0, len(s.students))
	for _, student := range s.students {
		students = append(students, student)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].Id < students[j].Id })
	return students, nil
}

func (s *Store) GetAdmissionForm(id int) (*model.AdmissionForm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if form, ok := s.admissionForms[id]; ok {
		return &form, nil
	}
	return nil, nil
}

func (s *Store) GetAdmissionFormByCode(uniqueCode string) (*model.AdmissionForm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, form := range s.admissionForms {
		if form.UniqueCode == uniqueCode {
			f := form
			return &f, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateAdmissionForm(form *model.AdmissionForm) (*model.AdmissionForm, error) {
	form.Id = int(s.formId.Inc())
	form.CreatedAt = time.Now()
	s.mu.Lock()
	s.admissionForms[form.Id] = *form
	s.mu.Unlock()
	return form, nil
}

func (s *Store) GetAllAdmissionForms() ([]model.AdmissionForm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	forms := make([]model.AdmissionForm, 0, len(s.admissionForms))
	for _, form := range s.admissionForms {
		forms = append(forms, form)
	}
	sort.Slice(forms, func(i, j int) bool { return forms[i].Id < forms[j].Id })
	return forms, nil
}

func (s *Store) CreateActivityLog(log *model.ActivityLog) (*model.ActivityLog, error) {
	log.Id = int(s.logId.Inc())
	log.CreatedAt = time.Now()
	s.mu.Lock()
	s.activityLogs[log.Id] = *log
	s.mu.Unlock()
	return log, nil
}

func (s *Store) GetRecentActivityLogs(limit int) ([]model.ActivityLog, error) {
	if limit < 0 {
		limit = 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	logs := make([]model.ActivityLog, 0, len(s.activityLogs))
	for _, log := range s.activityLogs {
		logs = append(logs, log)
	}
	sort.Slice(logs, func(i, j int) bool {
		if logs[i].CreatedAt.Equal(logs[j].CreatedAt) {
			return logs[i].Id > logs[j].Id
		}
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})
	if len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

func (s *Store) DeleteActivityLogsBefore(cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for id, log := range s.activityLogs {
		if log.CreatedAt.Before(cutoff) {
			delete(s.activityLogs, id)
			removed++
		}
	}
	return removed, nil
}

func (s *Store) GetPendingStudentByParentEmail(parentEmail string) (*model.PendingStudent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, student := range s.pendingStudents {
		if strings.EqualFold(student.ParentEmail, parentEmail) {
			st := student
			return &st, nil
		}
	}
	return nil, nil
}

func (s *Store) CreatePendingStudent(student *model.PendingStudent) (*model.PendingStudent, error) {
	student.Id = int(s.pendingId.Inc())
	student.CreatedAt = time.Now()
	s.mu.Lock()
	s.pendingStudents[student.Id] = *student
	s.mu.Unlock()
	return student, nil
}

func (s *Store) GetApprovedStudentByParentEmail(parentEmail string) (*model.ApprovedStudent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, student := range s.approvedStudents {
		if strings.EqualFold(student.ParentEmail, parentEmail) {
			st := student
			return &st, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateApprovedStudent(student *model.ApprovedStudent) (*model.ApprovedStudent, error) {
	student.Id = int(s.approvedId.Inc())
	s.mu.Lock()
	s.approvedStudents[student.Id] = *student
	s.mu.Unlock()
	return student, nil
}

func (s *Store) GetPendingEmployeeByEmail(email string) (*model.PendingEmployee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, employee := range s.pendingEmployees {
		if strings.EqualFold(employee.Email, email) {
			e := employee
			return &e, nil
		}
	}
	return nil, nil
}

func (s *Store) CreatePendingEmployee(employee *model.PendingEmployee) (*model.PendingEmployee, error) {
	employee.Id = int(s.employeeId.Inc())
	employee.CreatedAt = time.Now()
	s.mu.Lock()
	s.pendingEmployees[employee.Id] = *employee
	s.mu.Unlock()
	return employee, nil
}

func (s *Store) GetApprovedEmployeeByEmail(email string) (*model.ApprovedEmployee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, employee := range s.approvedEmployees {
		if strings.EqualFold(employee.Email, email) {
			e := employee
			return &e, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateApprovedEmployee(employee *model.ApprovedEmployee) (*model.ApprovedEmployee, error) {
	employee.Id = int(s.hiredId.Inc())
	s.mu.Lock()
	s.approvedEmployees[employee.Id] = *employee
	s.mu.Unlock()
	return employee, nil
}

func (s *Store) GetAdminByEmail(email string) (*model.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, admin := range s.admins {
		if strings.EqualFold(admin.Email, email) {
			a := admin
			return &a, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateAdmin(admin *model.Admin) (*model.Admin, error) {
	admin.Id = int(s.adminId.Inc())
	admin.CreatedAt = time.Now()
	s.mu.Lock()
	s.admins[admin.Id] = *admin
	s.mu.Unlock()
	return admin, nil
}

func (s *Store) CountAdmins() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.admins)), nil
}
