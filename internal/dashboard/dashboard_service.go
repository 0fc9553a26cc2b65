package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-invmis/internal/approval"
	dashboarderrors "go-invmis/internal/dashboard/errors"
	"go-invmis/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultSummaryTTL = 2 * time.Minute

// ApprovalSource is the read side of the approval store the dashboard needs.
//
//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type ApprovalSource interface {
	ListByActor(ctx context.Context, actorID string) ([]approval.Approval, error)
	ListOrganizationalByWing(ctx context.Context, wingID string) ([]approval.Approval, error)
	ListActorActions(ctx context.Context, actorID string) ([]approval.ActorAction, error)
}

type Service interface {
	LoadApprovalView(ctx context.Context, actor Actor, filter ViewFilter) (ViewModel, error)
	GetSummary(ctx context.Context, actor Actor) (Summary, error)
	Export(ctx context.Context, actor Actor, filter ViewFilter) ([]byte, error)
}

type Options struct {
	PageSize int
	CacheTTL time.Duration
}

type service struct {
	source   ApprovalSource
	rdb      *redis.Client
	sf       *singleflight.Group
	pageSize int
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewService(source ApprovalSource, rdb *redis.Client, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultSummaryTTL
	}
	return &service{
		source:   source,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		pageSize: opts.PageSize,
		cacheTTL: opts.CacheTTL,
		logger:   l,
	}
}

// entries loads every record visible to the actor: the ones they submitted,
// hold or acted on, plus the organizational records of their wing.
func (s *service) entries(ctx context.Context, actor Actor) ([]Entry, error) {
	if _, err := uuid.Parse(actor.ID); err != nil {
		return nil, dashboarderrors.ErrInvalidActor
	}

	own, err := s.source.ListByActor(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	org, err := s.source.ListOrganizationalByWing(ctx, actor.WingID)
	if err != nil {
		return nil, err
	}
	actions, err := s.source.ListActorActions(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	// Actions arrive ordered by step, so the last write per record wins.
	last := make(map[string]approval.HistoryAction, len(actions))
	for _, a := range actions {
		last[a.ApprovalID.String()] = a.ActionType
	}

	seen := make(map[string]bool, len(own)+len(org))
	out := make([]Entry, 0, len(own)+len(org))
	for _, list := range [][]approval.Approval{own, org} {
		for _, a := range list {
			id := a.ID.String()
			if seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, NewEntry(a, ActorStatus(a, actor.ID, last[id])))
		}
	}
	return out, nil
}

func (s *service) page(list []Entry, page int) PageView {
	total := TotalPages(len(list), s.pageSize)
	page = ClampPage(page, total)
	return PageView{
		Items:      Paginate(list, page, s.pageSize),
		Page:       page,
		PageSize:   s.pageSize,
		TotalPages: total,
		Total:      len(list),
	}
}

// view applies the filter and returns both groups sorted but unpaginated.
func view(list []Entry, f ViewFilter) (personal, organizational []Entry) {
	filtered := FilterApprovals(FilterByStatus(list, f.Status), f.Search)
	personal, organizational = Partition(filtered)
	return SortApprovals(personal, f.SortKey, f.SortOrder), SortApprovals(organizational, f.SortKey, f.SortOrder)
}

func (s *service) LoadApprovalView(ctx context.Context, actor Actor, filter ViewFilter) (ViewModel, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	filter = filter.withDefaults()

	field := s.summaryField(ctx, actor.WingID)
	list, err := s.entries(ctx, actor)
	if err != nil {
		l.Error("load approval view failed", zap.String("actor_id", actor.ID), zap.Error(err))
		return ViewModel{}, err
	}

	summary := Summarize(list)
	s.storeSummary(ctx, actor, field, summary)

	personal, organizational := view(list, filter)

	return ViewModel{
		Summary:        summary,
		Personal:       s.page(personal, filter.PersonalPage),
		Organizational: s.page(organizational, filter.OrgPage),
		ViewToken:      filter.ViewToken,
	}, nil
}

// summaryField keys the cached counts by wing and the wing's current
// version, so any transition in the wing makes older fields unreachable.
// It must be read before the records are loaded: a transition committed in
// between then lands the counts under a version that is already stale.
func (s *service) summaryField(ctx context.Context, wingID string) string {
	version := "0"
	if wingID != "" && s.rdb != nil {
		v, err := s.rdb.Get(ctx, approval.WingVersionKey(wingID)).Result()
		if err == nil {
			version = v
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("read wing version failed", zap.String("wing_id", wingID), zap.Error(err))
		}
	}
	return wingID + ":" + version
}

func (s *service) storeSummary(ctx context.Context, actor Actor, field string, summary Summary) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return
	}
	key := approval.SummaryCacheKey(actor.ID)
	if err := s.rdb.HSet(ctx, key, field, data).Err(); err != nil {
		s.logger.Warn("failed to cache dashboard summary", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.rdb.Expire(ctx, key, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("failed to expire dashboard summary", zap.String("key", key), zap.Error(err))
	}
}

// GetSummary returns the unfiltered per-status counts for the actor.
func (s *service) GetSummary(ctx context.Context, actor Actor) (Summary, error) {
	if _, err := uuid.Parse(actor.ID); err != nil {
		return Summary{}, dashboarderrors.ErrInvalidActor
	}

	key := approval.SummaryCacheKey(actor.ID)
	field := s.summaryField(ctx, actor.WingID)
	if s.rdb != nil {
		if cached, err := s.rdb.HGet(ctx, key, field).Result(); err == nil {
			var sum Summary
			if json.Unmarshal([]byte(cached), &sum) == nil {
				return sum, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		list, err := s.entries(ctx, actor)
		if err != nil {
			return nil, err
		}
		sum := Summarize(list)
		s.storeSummary(ctx, actor, field, sum)
		return sum, nil
	})
	if err != nil {
		s.logger.Error("dashboard summary failed", zap.String("actor_id", actor.ID), zap.Error(err))
		return Summary{}, err
	}

	return v.(Summary), nil
}

func (s *service) Export(ctx context.Context, actor Actor, filter ViewFilter) ([]byte, error) {
	filter = filter.withDefaults()

	list, err := s.entries(ctx, actor)
	if err != nil {
		return nil, err
	}

	personal, organizational := view(list, filter)
	data, err := renderWorkbook(personal, organizational)
	if err != nil {
		s.logger.Error("dashboard export failed", zap.String("actor_id", actor.ID), zap.Error(err))
		return nil, dashboarderrors.ErrExportFailed
	}
	return data, nil
}
