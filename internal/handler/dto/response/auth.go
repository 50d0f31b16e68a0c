package response

import (
	"gearup/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromUser(u *user.User) UserResponse {
	return UserResponse{
		ID:    u.ID(),
		Email: u.Email().Value(),
		Name:  u.Name(),
		Role:  u.Role().String(),
	}
}
