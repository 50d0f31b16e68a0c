package repository

import (
	"context"
	"time"

	"gearup/internal/domain/user"
	"gearup/internal/infra"
	"gearup/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(pool db.DBTX) *UserRepository {
	return &UserRepository{db: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, email, name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query, u.ID(), u.Email().Value(), u.Name(), u.PasswordHash(), u.Role().String())
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT id, email, name, password_hash, role, created_at FROM users WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT id, email, name, password_hash, role, created_at FROM users WHERE email = $1`
	return r.findOne(ctx, query, email)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*user.User, error) {
	var (
		id                  uuid.UUID
		emailStr, name      string
		passwordHash, role  string
		createdAt           time.Time
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(&id, &emailStr, &name, &passwordHash, &role, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	email, err := user.NewEmail(emailStr)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user email is invalid", err)
	}

	return user.ReconstructUser(id, email, name, passwordHash, user.Role(role), createdAt), nil
}
