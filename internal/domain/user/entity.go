package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. The reservation core only ever sees the id; the full entity
// exists for the auth surface.
type User struct {
	id           uuid.UUID
	email        Email
	name         string
	passwordHash string
	role         Role
	createdAt    time.Time
}

func NewUser(email Email, name, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
	}
}

func ReconstructUser(id uuid.UUID, email Email, name, passwordHash string, role Role, createdAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
