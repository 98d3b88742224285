package service

import (
	"time"

	"edupanel/database/model"
	"edupanel/storage"
	"edupanel/util/crypto"

	"github.com/golang-jwt/jwt/v5"
)

const adminTokenTTL = 72 * time.Hour

// AdminAuthService issues and verifies bearer tokens for the approval
// endpoints. The approval subsystem is token based rather than cookie based;
// its clients are not browsers.
type AdminAuthService struct {
	store  storage.Store
	secret []byte
}

func NewAdminAuthService(store storage.Store, secret []byte) *AdminAuthService {
	return &AdminAuthService{store: store, secret: secret}
}

// Login verifies admin credentials and returns a signed token. Unknown email
// and wrong password produce the same error.
func (s *AdminAuthService) Login(email, password string) (string, *model.Admin, error) {
	admin, err := s.store.GetAdminByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if admin == nil {
		return "", nil, ErrAuthenticationFailed
	}
	if !crypto.CheckPasswordHash(admin.Password, password) {
		return "", nil, ErrAuthenticationFailed
	}

	claims := jwt.MapClaims{
		"id":    admin.Id,
		"email": admin.Email,
		"exp":   time.Now().Add(adminTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

// Verify parses a bearer token and resolves the admin it was issued to.
func (s *AdminAuthService) Verify(tokenString string) (*model.Admin, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrNotAuthenticated
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNotAuthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return nil, ErrNotAuthenticated
	}

	admin, err := s.store.GetAdminByEmail(email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrNotAuthenticated
	}
	return admin, nil
}
