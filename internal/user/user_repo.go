package user

import (
	"context"
	"errors"

	"go-invmis/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAllByWing(ctx context.Context, wingID string) ([]User, error)
	FindSupervisor(ctx context.Context, userID string) (*User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindAllByWing(ctx context.Context, wingID string) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Scopes(tenant.WingScope(wingID), tenant.Active("users")).
		Order("full_name ASC").
		Find(&users).Error
	return users, err
}

// FindSupervisor returns (nil, nil) when the user exists but has no
// supervisor configured.
func (r *repository) FindSupervisor(ctx context.Context, userID string) (*User, error) {
	u, err := r.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.SupervisorID == nil {
		return nil, nil
	}

	var sup User
	err = r.db.WithContext(ctx).
		Scopes(tenant.Active("users")).
		First(&sup, "id = ?", u.SupervisorID.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sup, nil
}
