package model

import "time"

// Role values accepted for panel users.
const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleTeacher = "teacher"
)

// User is a panel account. PasswordHash never leaves the server; external
// responses go through SafeUser.
type User struct {
	Id           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Email        string    `json:"email" gorm:"not null"`
	FullName     string    `json:"fullName" gorm:"not null"`
	Role         string    `json:"role" gorm:"not null"` // admin | staff | teacher
	CreatedAt    time.Time `json:"createdAt"`
}

// SafeUser is the external representation of a User with the credential
// material stripped.
type SafeUser struct {
	Id        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Safe returns the user without its password hash.
func (u *User) Safe() SafeUser {
	return SafeUser{
		Id:        u.Id,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
