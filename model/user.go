package model

import (
	"database/sql"
	"time"
)

// User is the owned entity at the identity service
type User struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`

	FullName  sql.NullString `db:"full_name"`
	Bio       sql.NullString `db:"bio"`
	AvatarURL sql.NullString `db:"avatar_url"`

	Role       Role `db:"role"`
	IsEnabled  bool `db:"is_enabled"`
	IsVerified bool `db:"is_verified"`

	// Version is incremented in the same transaction as every mutation
	Version   int64        `db:"version"`
	DeletedAt sql.NullTime `db:"deleted_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NullUser ...
type NullUser struct {
	Valid bool
	User  User
}

// Role ...
type Role string

const (
	// RoleStudent ...
	RoleStudent Role = "STUDENT"

	// RoleTeacher ...
	RoleTeacher Role = "TEACHER"

	// RoleQuestionSetter ...
	RoleQuestionSetter Role = "QUESTION_SETTER"

	// RoleAdmin ...
	RoleAdmin Role = "ADMIN"
)

// Valid ...
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleQuestionSetter, RoleAdmin:
		return true
	default:
		return false
	}
}
