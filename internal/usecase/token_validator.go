package usecase

import (
	"gearup/internal/domain/user"
	"gearup/internal/pkg/jwt"

	"github.com/google/uuid"
)

// AuthenticatedUser is what the auth middleware stores in the request
// context after validating a token.
type AuthenticatedUser struct {
	ID   uuid.UUID
	Role user.Role
}

type TokenValidator interface {
	Validate(token string) (*AuthenticatedUser, error)
}

type jwtTokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwt: jwtService}
}

func (v *jwtTokenValidator) Validate(token string) (*AuthenticatedUser, error) {
	claims, err := v.jwt.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, jwt.ErrInvalidToken
	}

	return &AuthenticatedUser{ID: claims.UserID, Role: role}, nil
}
