package service

import (
	"edupanel/database/model"
	"edupanel/logger"
	"edupanel/storage"
	"edupanel/util/crypto"
)

// UserService authenticates panel accounts and creates new ones. Every
// successful register/login/logout appends one activity log entry.
type UserService struct {
	store    storage.Store
	activity *ActivityLogService
}

func NewUserService(store storage.Store, activity *ActivityLogService) *UserService {
	return &UserService{store: store, activity: activity}
}

// Register creates a new panel account. The raw password is hashed before it
// reaches the store; the caller receives the stored user and is expected to
// establish a session for it.
func (s *UserService) Register(username, password, email, fullName, role string) (*model.User, error) {
	existing, err := s.store.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	user, err := s.store.CreateUser(&model.User{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		FullName:     fullName,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.activity.Log(user.Id, model.ActionRegister, "New "+user.Role+" account created: "+user.Username)
	return user, nil
}

// CheckUser verifies a username/password pair. Unknown username and wrong
// password both return ErrAuthenticationFailed so callers cannot tell which
// check failed.
func (s *UserService) CheckUser(username, password string) (*model.User, error) {
	user, err := s.store.GetUserByUsername(username)
	if err != nil {
		logger.Warning("check user err:", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrAuthenticationFailed
	}
	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil, ErrAuthenticationFailed
	}
	return user, nil
}

// Login authenticates and records the audit entry.
func (s *UserService) Login(username, password string) (*model.User, error) {
	user, err := s.CheckUser(username, password)
	if err != nil {
		return nil, err
	}
	s.activity.Log(user.Id, model.ActionLogin, "User "+user.Username+" logged in")
	return user, nil
}

// Logout records the audit entry for an already-resolved user. Session
// destruction itself happens in the web layer.
func (s *UserService) Logout(user *model.User) {
	s.activity.Log(user.Id, model.ActionLogout, "User "+user.Username+" logged out")
}

// GetUser resolves a user by id.
func (s *UserService) GetUser(id int) (*model.User, error) {
	return s.store.GetUser(id)
}

// GetUsersByRole lists users with an exact role match.
func (s *UserService) GetUsersByRole(role string) ([]model.User, error) {
	return s.store.GetUsersByRole(role)
}
