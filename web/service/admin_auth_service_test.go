package service

import (
	"testing"

	"edupanel/storage/memory"

	"github.com/stretchr/testify/assert"
)

func TestAdminLoginAndVerify(t *testing.T) {
	store := memory.NewStore()
	approval := NewApprovalService(store)
	auth := NewAdminAuthService(store, []byte("test-secret"))

	admin, err := approval.AddAdmin("Root", "root@example.com", "s3cret")
	assert.NoError(t, err)

	// Login issues a token that verifies back to the same admin
	token, loggedIn, err := auth.Login("root@example.com", "s3cret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, admin.Id, loggedIn.Id)

	verified, err := auth.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, admin.Email, verified.Email)
}

func TestAdminLoginFailureIsIndistinguishable(t *testing.T) {
	store := memory.NewStore()
	approval := NewApprovalService(store)
	auth := NewAdminAuthService(store, []byte("test-secret"))

	_, err := approval.AddAdmin("Root", "root@example.com", "s3cret")
	assert.NoError(t, err)

	_, _, unknownErr := auth.Login("nobody@example.com", "whatever")
	_, _, wrongPwErr := auth.Login("root@example.com", "wrong")
	assert.ErrorIs(t, unknownErr, ErrAuthenticationFailed)
	assert.ErrorIs(t, wrongPwErr, ErrAuthenticationFailed)
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	store := memory.NewStore()
	approval := NewApprovalService(store)
	auth := NewAdminAuthService(store, []byte("test-secret"))

	_, err := approval.AddAdmin("Root", "root@example.com", "s3cret")
	assert.NoError(t, err)

	// Garbage token
	_, err = auth.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	// Token signed with a different secret
	otherAuth := NewAdminAuthService(store, []byte("other-secret"))
	token, _, err := otherAuth.Login("root@example.com", "s3cret")
	assert.NoError(t, err)

	_, err = auth.Verify(token)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestVerifyRejectsDeletedAdmin(t *testing.T) {
	// A token for an admin that no longer resolves must not authenticate.
	// Two independent stores simulate issuance and verification against
	// different data sets sharing a secret.
	issuerStore := memory.NewStore()
	issuerApproval := NewApprovalService(issuerStore)
	issuerAuth := NewAdminAuthService(issuerStore, []byte("shared-secret"))

	_, err := issuerApproval.AddAdmin("Root", "root@example.com", "s3cret")
	assert.NoError(t, err)

	token, _, err := issuerAuth.Login("root@example.com", "s3cret")
	assert.NoError(t, err)

	verifierAuth := NewAdminAuthService(memory.NewStore(), []byte("shared-secret"))
	_, err = verifierAuth.Verify(token)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
