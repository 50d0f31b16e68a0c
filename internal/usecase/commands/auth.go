package commands

import (
	"context"

	"gearup/internal/domain/user"
	"gearup/internal/infra"
	"gearup/internal/pkg/errs"
	"gearup/internal/pkg/jwt"
	"gearup/internal/pkg/password"
)

var (
	ErrEmailTaken         = errs.New("email is already registered")
	ErrInvalidCredentials = errs.New("invalid email or password")
)

type RegisterRequest struct {
	Email    string
	Name     string
	Password string
}

type AuthResult struct {
	User  *user.User
	Token string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, email, plainPassword string) (*AuthResult, error)
}

type authCommandsImpl struct {
	users UserStore
	jwt   *jwt.Service
}

func NewAuthCommands(users UserStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{users: users, jwt: jwtService}
}

func (c *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if _, err := user.NewPassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := user.NewUser(email, req.Name, hash, user.RoleUser)
	if err := c.users.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	token, err := c.jwt.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}
	return &AuthResult{User: u, Token: token}, nil
}

func (c *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*AuthResult, error) {
	addr, err := user.NewEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	u, err := c.users.FindByEmail(ctx, addr.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(u.PasswordHash(), plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := c.jwt.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}
	return &AuthResult{User: u, Token: token}, nil
}
