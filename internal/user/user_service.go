package user

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-invmis/internal/shared/contextutil"
	usererrors "go-invmis/internal/user/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const SupervisorKeyPrefix = "users:supervisor:"

const supervisorCacheTTL = 10 * time.Minute

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetByID(ctx context.Context, id string) (UserResponse, error)
	ListByWing(ctx context.Context, wingID string) ([]UserResponse, error)
	GetProfile(ctx context.Context, id string) (Profile, error)
	GetSupervisor(ctx context.Context, userID string) (Profile, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}
	return err
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*u), nil
}

func (s *service) ListByWing(ctx context.Context, wingID string) ([]UserResponse, error) {
	if wingID == "" {
		return nil, usererrors.ErrMissingWing
	}

	users, err := s.repo.FindAllByWing(ctx, wingID)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list users by wing failed", zap.String("wing_id", wingID), zap.Error(err))
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetProfile(ctx context.Context, id string) (Profile, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Profile{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Profile{}, mapRepositoryError(err)
	}
	if !u.IsActive {
		return Profile{}, usererrors.ErrUserInactive
	}

	return mapToProfile(*u), nil
}

// GetSupervisor resolves the approval-mode forward target for userID.
// Lookups are cached briefly and concurrent misses share one query.
func (s *service) GetSupervisor(ctx context.Context, userID string) (Profile, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return Profile{}, usererrors.ErrInvalidUserID
	}

	cacheKey := SupervisorKeyPrefix + userID

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var p Profile
			if json.Unmarshal([]byte(cached), &p) == nil {
				return p, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		sup, err := s.repo.FindSupervisor(ctx, userID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		if sup == nil {
			return nil, usererrors.ErrNoSupervisorFound
		}

		p := mapToProfile(*sup)
		if s.rdb != nil {
			if data, err := json.Marshal(p); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, supervisorCacheTTL).Err(); err != nil {
					s.logger.Warn("failed to cache supervisor", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return p, nil
	})
	if err != nil {
		s.logger.Debug("supervisor lookup failed", zap.String("user_id", userID), zap.Error(err))
		return Profile{}, err
	}

	return v.(Profile), nil
}

func mapToProfile(u User) Profile {
	p := Profile{
		ID:          u.ID.String(),
		FullName:    u.FullName,
		Designation: u.Designation,
		Role:        u.Role,
		WingID:      u.WingID,
	}
	if u.SupervisorID != nil {
		p.SupervisorID = u.SupervisorID.String()
	}
	return p
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		FullName:    u.FullName,
		Designation: u.Designation,
		Role:        u.Role,
		WingID:      u.WingID,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if u.SupervisorID != nil {
		resp.SupervisorID = u.SupervisorID.String()
	}
	return resp
}
