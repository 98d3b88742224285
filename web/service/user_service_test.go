package service

import (
	"os"
	"testing"

	"edupanel/database/model"
	"edupanel/logger"
	"edupanel/storage/memory"
	"edupanel/util/crypto"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.InitLogger(logging.ERROR)
	os.Exit(m.Run())
}

func TestRegisterAndLogin(t *testing.T) {
	store := memory.NewStore()
	activity := NewActivityLogService(store)
	service := NewUserService(store, activity)

	// Register hashes the password and records the audit entry
	user, err := service.Register("alice", "s3cret", "alice@example.com", "Alice Adams", model.RoleStaff)
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.True(t, crypto.CheckPasswordHash(user.PasswordHash, "s3cret"))

	logs, err := store.GetRecentActivityLogs(10)
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, model.ActionRegister, logs[0].Action)
	assert.Equal(t, user.Id, logs[0].UserId)

	// Login succeeds with the right password and audits
	got, err := service.Login("alice", "s3cret")
	assert.NoError(t, err)
	assert.Equal(t, user.Id, got.Id)

	logs, _ = store.GetRecentActivityLogs(10)
	assert.Len(t, logs, 2)
	assert.Equal(t, model.ActionLogin, logs[0].Action)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := memory.NewStore()
	service := NewUserService(store, NewActivityLogService(store))

	_, err := service.Register("alice", "pw1", "a@example.com", "Alice", model.RoleStaff)
	assert.NoError(t, err)

	_, err = service.Register("alice", "pw2", "b@example.com", "Other Alice", model.RoleTeacher)
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	// The failed attempt must not leave an extra audit entry
	logs, _ := store.GetRecentActivityLogs(10)
	assert.Len(t, logs, 1)
}

func TestLoginFailureIsIndistinguishable(t *testing.T) {
	store := memory.NewStore()
	service := NewUserService(store, NewActivityLogService(store))

	_, err := service.Register("alice", "s3cret", "a@example.com", "Alice", model.RoleStaff)
	assert.NoError(t, err)

	// Unknown user and wrong password yield the same error
	_, unknownErr := service.CheckUser("nobody", "whatever")
	_, wrongPwErr := service.CheckUser("alice", "wrong")
	assert.ErrorIs(t, unknownErr, ErrAuthenticationFailed)
	assert.ErrorIs(t, wrongPwErr, ErrAuthenticationFailed)
	assert.Equal(t, unknownErr, wrongPwErr)
}

func TestLogoutAudits(t *testing.T) {
	store := memory.NewStore()
	service := NewUserService(store, NewActivityLogService(store))

	user, _ := service.Register("alice", "s3cret", "a@example.com", "Alice", model.RoleStaff)
	service.Logout(user)

	logs, _ := store.GetRecentActivityLogs(10)
	assert.Len(t, logs, 2)
	assert.Equal(t, model.ActionLogout, logs[0].Action)
}

func TestGetUsersByRole(t *testing.T) {
	store := memory.NewStore()
	service := NewUserService(store, NewActivityLogService(store))

	service.Register("s1", "pw", "s1@example.com", "Staff One", model.RoleStaff)
	service.Register("t1", "pw", "t1@example.com", "Teacher One", model.RoleTeacher)
	service.Register("s2", "pw", "s2@example.com", "Staff Two", model.RoleStaff)

	staff, err := service.GetUsersByRole(model.RoleStaff)
	assert.NoError(t, err)
	assert.Len(t, staff, 2)
	assert.Equal(t, "s1", staff[0].Username)
	assert.Equal(t, "s2", staff[1].Username)

	teachers, err := service.GetUsersByRole(model.RoleTeacher)
	assert.NoError(t, err)
	assert.Len(t, teachers, 1)
}
