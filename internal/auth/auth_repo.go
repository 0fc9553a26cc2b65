package auth

import (
	"context"
	"strings"

	"go-invmis/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultRole = "REQUESTER"

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	normalizeRole(&u)
	return &u, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	normalizeRole(&u)
	return &u, nil
}

func normalizeRole(u *user.User) {
	role := strings.ToUpper(strings.TrimSpace(u.Role))
	if role == "" {
		role = defaultRole
	}
	u.Role = role
}
