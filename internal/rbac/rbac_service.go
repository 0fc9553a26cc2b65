package rbac

import (
	"sync"
	"time"

	"go-invmis/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

const defaultPolicyTTL = time.Minute

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy() error
	Enforce(req domain.EnforceRequest) (bool, error)
	PermissionsForRole(role string) []domain.PermissionResponse
}

type service struct {
	repo      Repository
	enforcer  *casbin.Enforcer
	mu        sync.Mutex
	loadedAt  time.Time
	policyTTL time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:      repo,
		enforcer:  enforcer,
		policyTTL: defaultPolicyTTL,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) LoadPolicy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadPolicyUnlocked()
}

func (s *service) loadPolicyUnlocked() error {
	s.enforcer.ClearPolicy()

	userRoles, err := s.repo.GetUserRoles()
	if err != nil {
		return err
	}

	for _, ur := range userRoles {
		if ur.Role == "" {
			continue
		}
		if _, err := s.enforcer.AddGroupingPolicy(ur.UserID, ur.Role); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions()
	if err != nil {
		return err
	}

	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.Role, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.loadedAt = s.now()
	s.logger.Debug("rbac policy loaded",
		zap.Int("user_roles", len(userRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

// Enforce reloads the policy when it is older than the TTL so role changes
// in the directory take effect without a restart.
func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loadedAt.IsZero() || s.now().Sub(s.loadedAt) > s.policyTTL {
		if err := s.loadPolicyUnlocked(); err != nil {
			return false, err
		}
	}

	allowed, err := s.enforcer.Enforce(req.UserID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("user_id", req.UserID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("user_id", req.UserID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) PermissionsForRole(role string) []domain.PermissionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	policies, err := s.enforcer.GetFilteredPolicy(0, role)
	if err != nil {
		s.logger.Warn("rbac filtered policy failed", zap.String("role", role), zap.Error(err))
		return nil
	}

	resp := make([]domain.PermissionResponse, 0, len(policies))
	for _, p := range policies {
		if len(p) < 3 {
			continue
		}
		resp = append(resp, domain.PermissionResponse{Role: p[0], Resource: p[1], Action: p[2]})
	}
	return resp
}
