package approval

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	approvalerrors "go-invmis/internal/approval/errors"
	"go-invmis/internal/bootstrap"
	"go-invmis/internal/events"
	"go-invmis/internal/itemdecision"
	itemdecisionerrors "go-invmis/internal/itemdecision/errors"
	"go-invmis/internal/messaging/kafka"
	"go-invmis/internal/shared/apperror"
	"go-invmis/internal/shared/contextutil"
	"go-invmis/internal/user"
	"go-invmis/internal/workflow"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserDirectory resolves actors and supervisors.
type UserDirectory interface {
	GetProfile(ctx context.Context, id string) (user.Profile, error)
	GetSupervisor(ctx context.Context, userID string) (user.Profile, error)
}

// WorkflowDirectory is the read side of the workflow registry.
type WorkflowDirectory interface {
	FindActiveByRequestType(ctx context.Context, requestType string) (*workflow.Workflow, error)
	FindApprover(ctx context.Context, workflowID, userID string) (*workflow.WorkflowApprover, error)
	ListApprovers(ctx context.Context, workflowID string) ([]workflow.WorkflowApprover, error)
}

//go:generate mockgen -source=approval_service.go -destination=mock/approval_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, submitterID string, req SubmitRequest) (ApprovalResponse, error)

	GetByID(ctx context.Context, id, actorID string) (ApprovalDetailResponse, error)
	GetHistory(ctx context.Context, id string) ([]HistoryResponse, error)
	GetStatus(ctx context.Context, requestID, requestType string) (ApprovalResponse, error)
	ListMyPending(ctx context.Context, actorID string) ([]ApprovalResponse, error)
	GetAvailableForwarders(ctx context.Context, id, actorID string) ([]ForwarderResponse, error)

	ApplyAction(ctx context.Context, id, actorID string, req ActionRequest) (ApprovalResponse, error)
	Forward(ctx context.Context, id, actorID string, req ForwardRequest) (ApprovalResponse, error)
	Approve(ctx context.Context, id, actorID string, req CommentRequest) (ApprovalResponse, error)
	Reject(ctx context.Context, id, actorID string, req CommentRequest) (ApprovalResponse, error)
	Return(ctx context.Context, id, actorID string, req CommentRequest) (ApprovalResponse, error)
	Finalize(ctx context.Context, id, actorID string, req CommentRequest) (ApprovalResponse, error)
	SubmitDecisions(ctx context.Context, id, actorID string, req SubmitDecisionsRequest) (ApprovalResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	items     itemdecision.Repository
	workflows WorkflowDirectory
	users     UserDirectory
	outbox    kafka.OutboxRepository
	rdb       *redis.Client
	policy    AuthorizationPolicy
	audit     bootstrap.AuditLogger
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	items itemdecision.Repository,
	workflows WorkflowDirectory,
	users UserDirectory,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("approval.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		items:     items,
		workflows: workflows,
		users:     users,
		outbox:    outbox,
		rdb:       rdb,
		audit:     bootstrap.NewStdoutAuditLogger(l),
		now:       func() time.Time { return time.Now().UTC() },
		logger:    l,
	}
}

type forwardInput struct {
	forwardingType ForwardingType
	forwardedTo    string
	workflowID     string
}

type actionInput struct {
	action   ActionType
	comments string
	forward  forwardInput
}

// transition is one validated state change ready to be written.
type transition struct {
	action         ActionType
	actor          user.Profile
	comments       string
	target         *user.Profile
	forwardingType ForwardingType
	workflowID     *uuid.UUID
}

func validateIDs(id, actorID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return approvalerrors.ErrInvalidApprovalID
	}
	if _, err := uuid.Parse(actorID); err != nil {
		return approvalerrors.ErrInvalidActorID
	}
	return nil
}

func validateForward(actorID string, f forwardInput) (forwardInput, error) {
	if f.forwardingType == "" {
		f.forwardingType = ForwardApproval
	}

	switch f.forwardingType {
	case ForwardApproval:
		return f, nil
	case ForwardAction:
		if f.workflowID == "" || f.forwardedTo == "" {
			return f, approvalerrors.ErrForwardTargetRequired
		}
		if f.forwardedTo == actorID {
			return f, approvalerrors.ErrForwardToSelf
		}
		return f, nil
	}
	return f, approvalerrors.ErrUnknownAction
}

// validatePayload runs before any database work.
func validatePayload(actorID string, in actionInput) (actionInput, error) {
	switch in.action {
	case ActionReject, ActionReturn:
		if strings.TrimSpace(in.comments) == "" {
			return in, approvalerrors.ErrCommentsRequired
		}
	case ActionForward:
		f, err := validateForward(actorID, in.forward)
		if err != nil {
			return in, err
		}
		in.forward = f
	case ActionApprove, ActionFinalize:
	default:
		return in, approvalerrors.ErrUnknownAction
	}
	return in, nil
}

func (s *service) capabilities(ctx context.Context, repo Repository, a Approval, actorID string) (Capabilities, error) {
	ap, err := s.workflows.FindApprover(ctx, a.WorkflowID.String(), actorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.capabilitiesWithoutRow(ctx, repo, a, actorID)
	}
	if err != nil {
		return Capabilities{}, err
	}
	return Capabilities{
		CanApprove:  ap.CanApprove,
		CanForward:  ap.CanForward,
		CanFinalize: ap.CanFinalize,
	}, nil
}

func (s *service) capabilitiesWithoutRow(ctx context.Context, repo Repository, a Approval, actorID string) (Capabilities, error) {
	step, err := repo.FindCurrentStep(ctx, a.ID.String())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultCapabilities, nil
	}
	if err != nil {
		return Capabilities{}, err
	}
	if step.ForwardingType == ForwardAction {
		contextutil.GetLogger(ctx, s.logger).Warn("current approver no longer in workflow",
			zap.String("approval_id", a.ID.String()),
			zap.String("workflow_id", a.WorkflowID.String()),
			zap.String("actor_id", actorID),
		)
		return Capabilities{}, nil
	}
	return DefaultCapabilities, nil
}

func (s *service) resolveTarget(ctx context.Context, actorID string, f forwardInput) (user.Profile, *uuid.UUID, error) {
	switch f.forwardingType {
	case ForwardAction:
		ap, err := s.workflows.FindApprover(ctx, f.workflowID, f.forwardedTo)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.Profile{}, nil, approvalerrors.ErrTargetNotInWorkflow
		}
		if err != nil {
			return user.Profile{}, nil, err
		}
		wfID := ap.WorkflowID
		return user.Profile{
			ID:          ap.UserID.String(),
			FullName:    ap.UserName,
			Designation: ap.Designation,
		}, &wfID, nil
	default:
		sup, err := s.users.GetSupervisor(ctx, actorID)
		if err != nil {
			return user.Profile{}, nil, err
		}
		if sup.ID == actorID {
			return user.Profile{}, nil, approvalerrors.ErrForwardToSelf
		}
		return sup, nil, nil
	}
}

func (s *service) applyTransition(ctx context.Context, qtx Repository, a *Approval, t transition) error {
	to, err := Next(a.CurrentStatus, t.action)
	if err != nil {
		return err
	}

	actorID, err := uuid.Parse(t.actor.ID)
	if err != nil {
		return approvalerrors.ErrInvalidActorID
	}

	step, err := qtx.NextStepNumber(ctx, a.ID.String())
	if err != nil {
		return err
	}
	if err := qtx.ClearCurrentStep(ctx, a.ID.String()); err != nil {
		return err
	}

	now := s.now()
	h := &History{
		ID:                  uuid.New(),
		ApprovalID:          a.ID,
		StepNumber:          step,
		ActionType:          t.action.HistoryLabel(),
		ActionBy:            actorID,
		ActionByName:        t.actor.FullName,
		ActionByDesignation: t.actor.Designation,
		ActionDate:          now,
		Comments:            t.comments,
		IsCurrentStep:       true,
	}

	if t.action == ActionForward {
		targetID, err := uuid.Parse(t.target.ID)
		if err != nil {
			return err
		}
		h.ForwardedTo = &targetID
		h.ForwardedToName = t.target.FullName
		h.ForwardingType = t.forwardingType

		a.CurrentApproverID = &targetID
		a.CurrentApproverName = t.target.FullName
		if t.workflowID != nil {
			a.WorkflowID = *t.workflowID
		}
	}

	if err := qtx.AppendHistory(ctx, h); err != nil {
		return err
	}

	a.CurrentStatus = to
	a.UpdatedAt = now
	return qtx.Update(ctx, a)
}

func (s *service) enqueueApproved(ctx context.Context, tx *sql.Tx, a *Approval, actorID string, allocs []itemdecision.Allocation) error {
	if s.outbox == nil {
		return nil
	}

	lines := make([]events.IssuanceLine, len(allocs))
	for i, al := range allocs {
		lines[i] = events.IssuanceLine{
			ItemID:            al.ItemID,
			ItemMasterID:      al.ItemMasterID,
			Nomenclature:      al.Nomenclature,
			DecisionType:      string(al.DecisionType),
			RequestedQuantity: al.RequestedQuantity,
			AllocatedQuantity: al.AllocatedQuantity,
		}
	}

	payload, err := json.Marshal(events.ApprovalApprovedEvent{
		EventType:   events.ApprovalApprovedEventType,
		ApprovalID:  a.ID.String(),
		RequestID:   a.RequestID,
		RequestType: string(a.RequestType),
		WingID:      a.WingID,
		ApprovedBy:  actorID,
		Items:       lines,
		OccurredAt:  s.now(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: kafka.AggregateApproval,
		AggregateID:   a.ID.String(),
		EventType:     events.ApprovalApprovedEventType,
		Topic:         events.ApprovalApprovedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) afterCommit(ctx context.Context, a *Approval, actorID, previousApprover string, action ActionType) {
	l := contextutil.GetLogger(ctx, s.logger)

	if err := InvalidateSummaries(ctx, s.rdb, a.WingID,
		a.SubmittedBy.String(), previousApprover, approverOf(a), actorID,
	); err != nil {
		l.Error("invalidate dashboard summaries failed",
			zap.String("approval_id", a.ID.String()),
			zap.Error(err),
		)
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "APPROVAL_" + strings.ToUpper(string(action)),
		Message: "approval transitioned",
		Meta: map[string]any{
			"approval_id":          a.ID.String(),
			"request_id":           a.RequestID,
			"status":               string(a.CurrentStatus),
			"actor_id":             actorID,
			"previous_approver_id": previousApprover,
			"current_approver_id":  approverOf(a),
		},
	})
}

func approverOf(a *Approval) string {
	if a.CurrentApproverID == nil {
		return ""
	}
	return a.CurrentApproverID.String()
}

// decidedAllocations loads the stored item decisions of an approval and
// fails unless every item has one.
func (s *service) decidedAllocations(ctx context.Context, tx *sql.Tx, approvalID string) ([]itemdecision.Allocation, error) {
	items, err := s.items.WithTx(tx).FindByApproval(ctx, approvalID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, approvalerrors.ErrNoItemsOnRequest
	}
	return itemdecision.NewDecisionSet(items).Allocations()
}

func (s *service) Submit(ctx context.Context, submitterID string, req SubmitRequest) (ApprovalResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("submit approval requested",
		zap.String("submitter_id", submitterID),
		zap.String("request_id", req.RequestID),
		zap.String("request_type", req.RequestType),
	)

	submitterUUID, err := uuid.Parse(submitterID)
	if err != nil {
		return ApprovalResponse{}, approvalerrors.ErrInvalidActorID
	}
	rt := RequestType(req.RequestType)
	if !rt.Valid() {
		return ApprovalResponse{}, approvalerrors.ErrInvalidRequestType
	}
	if rt.HasItems() && len(req.Items) == 0 {
		return ApprovalResponse{}, approvalerrors.ErrItemsRequired
	}
	scope := ScopeIndividual
	if req.ScopeType != "" {
		scope = ScopeType(req.ScopeType)
	}

	submitter, err := s.users.GetProfile(ctx, submitterID)
	if err != nil {
		return ApprovalResponse{}, err
	}

	wf, err := s.workflows.FindActiveByRequestType(ctx, string(rt))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ApprovalResponse{}, approvalerrors.ErrNoActiveWorkflow
	}
	if err != nil {
		return ApprovalResponse{}, err
	}

	var approver user.Profile
	if req.InitialApproverID != "" {
		approver, err = s.users.GetProfile(ctx, req.InitialApproverID)
	} else {
		approver, err = s.users.GetSupervisor(ctx, submitterID)
	}
	if err != nil {
		l.Warn("submit approval approver resolution failed", zap.Error(err))
		return ApprovalResponse{}, err
	}
	approverID, err := uuid.Parse(approver.ID)
	if err != nil {
		return ApprovalResponse{}, approvalerrors.ErrInvalidActorID
	}

	now := s.now()
	a := &Approval{
		ID:                  uuid.New(),
		RequestID:           req.RequestID,
		RequestType:         rt,
		WorkflowID:          wf.ID,
		SubmittedBy:         submitterUUID,
		SubmittedByName:     submitter.FullName,
		SubmittedDate:       now,
		CurrentStatus:       StatusPending,
		CurrentApproverID:   &approverID,
		CurrentApproverName: approver.FullName,
		ScopeType:           scope,
		WingID:              submitter.WingID,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("submit approval begin tx failed", zap.Error(err))
		return ApprovalResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Create(ctx, a); err != nil {
		l.Warn("submit approval persist failed", zap.String("request_id", req.RequestID), zap.Error(err))
		return ApprovalResponse{}, mapRepositoryError(err)
	}

	if rt.HasItems() {
		if err := s.items.WithTx(tx).CreateBatch(ctx, itemdecision.NewItems(a.ID, req.Items)); err != nil {
			l.Error("submit approval items persist failed", zap.Error(err))
			return ApprovalResponse{}, err
		}
	}

	if err := qtx.AppendHistory(ctx, &History{
		ID:                  uuid.New(),
		ApprovalID:          a.ID,
		StepNumber:          1,
		ActionType:          HistorySubmitted,
		ActionBy:            submitterUUID,
		ActionByName:        submitter.FullName,
		ActionByDesignation: submitter.Designation,
		ActionDate:          now,
		Comments:            req.Comments,
		IsCurrentStep:       true,
		ForwardedTo:         &approverID,
		ForwardedToName:     approver.FullName,
	}); err != nil {
		return ApprovalResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		l.Error("submit approval commit failed", zap.Error(err))
		return ApprovalResponse{}, err
	}

	if err := InvalidateSummaries(ctx, s.rdb, a.WingID, submitterID, approverID.String()); err != nil {
		l.Error("invalidate dashboard summaries failed", zap.Error(err))
	}
	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "APPROVAL_SUBMITTED",
		Message: "approval submitted",
		Meta: map[string]any{
			"approval_id":         a.ID.String(),
			"request_id":          a.RequestID,
			"request_type":        string(a.RequestType),
			"submitted_by":        submitterID,
			"current_approver_id": approverID.String(),
		},
	})

	return mapToResponse(*a), nil
}

func (s *service) GetByID(ctx context.Context, id, actorID string) (ApprovalDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ApprovalDetailResponse{}, approvalerrors.ErrInvalidApprovalID
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ApprovalDetailResponse{}, mapRepositoryError(err)
	}

	resp := ApprovalDetailResponse{
		ApprovalResponse: mapToResponse(*a),
		AllowedActions:   []ActionType{},
	}

	if a.CurrentStatus == StatusPending && approverOf(a) == actorID && actorID != "" {
		resp.IsCurrentApprover = true
		caps, err := s.capabilities(ctx, s.repo, *a, actorID)
		if err != nil {
			return ApprovalDetailResponse{}, err
		}
		resp.AllowedActions = s.policy.AllowedActions(actorID, caps, *a)
	}

	return resp, nil
}

func (s *service) GetHistory(ctx context.Context, id string) ([]HistoryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, approvalerrors.ErrInvalidApprovalID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	list, err := s.repo.ListHistory(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := make([]HistoryResponse, len(list))
	for i, h := range list {
		resp[i] = mapHistoryToResponse(h)
	}
	return resp, nil
}

func (s *service) GetStatus(ctx context.Context, requestID, requestType string) (ApprovalResponse, error) {
	if strings.TrimSpace(requestID) == "" {
		return ApprovalResponse{}, apperror.RequiredField("request_id")
	}
	if !RequestType(requestType).Valid() {
		return ApprovalResponse{}, approvalerrors.ErrInvalidRequestType
	}

	a, err := s.repo.FindByRequest(ctx, requestID, requestType)
	if err != nil {
		return ApprovalResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*a), nil
}

func (s *service) ListMyPending(ctx context.Context, actorID string) ([]ApprovalResponse, error) {
	if _, err := uuid.Parse(actorID); err != nil {
		return nil, approvalerrors.ErrInvalidActorID
	}

	list, err := s.repo.ListPendingForApprover(ctx, actorID)
	if err != nil {
		s.logger.Error("list pending approvals failed", zap.String("actor_id", actorID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(list), nil
}

// GetAvailableForwarders lists who the actor can pass the record to: their
// supervisor first, then the other members of the record's workflow.
func (s *service) GetAvailableForwarders(ctx context.Context, id, actorID string) ([]ForwarderResponse, error) {
	if err := validateIDs(id, actorID); err != nil {
		return nil, err
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	out := make([]ForwarderResponse, 0)
	seen := map[string]bool{actorID: true}

	sup, err := s.users.GetSupervisor(ctx, actorID)
	switch {
	case err == nil:
		seen[sup.ID] = true
		out = append(out, ForwarderResponse{
			UserID:      sup.ID,
			FullName:    sup.FullName,
			Designation: sup.Designation,
			Source:      ForwarderSourceSupervisor,
			CanApprove:  DefaultCapabilities.CanApprove,
			CanForward:  DefaultCapabilities.CanForward,
		})
	case errors.Is(err, approvalerrors.ErrNoSupervisorFound):
	default:
		return nil, err
	}

	approvers, err := s.workflows.ListApprovers(ctx, a.WorkflowID.String())
	if err != nil {
		return nil, err
	}
	for _, ap := range approvers {
		uid := ap.UserID.String()
		if seen[uid] {
			continue
		}
		seen[uid] = true
		out = append(out, ForwarderResponse{
			UserID:      uid,
			FullName:    ap.UserName,
			Designation: ap.Designation,
			Source:      ForwarderSourceWorkflow,
			CanApprove:  ap.CanApprove,
			CanForward:  ap.CanForward,
			CanFinalize: ap.CanFinalize,
		})
	}

	return out, nil
}

func (s *service) ApplyAction(ctx context.Context, id, actorID string, req ActionRequest) (ApprovalResponse, error) {
	action, err := ParseAction(req.ActionType)
	if err != nil {
		return ApprovalResponse{}, err
	}
	return s.apply(ctx, id, actorID, actionInput{
		action:   action,
		comments: req.Comments,
		forward: forwardInput{
			forwardingType: ForwardingType(req.ForwardingType),
			forwardedTo:    req.ForwardedTo,
			workflowID:     req.WorkflowID,
		},
	})
}

func (s *service) Forward(ctx context.Context, id, actorID string, req ForwardRequest) (ApprovalResponse, error) {
	return s.apply(ctx, id, actorID, actionInput{
		action:   ActionForward,
		comments: req.Comments,
		forward: forwardInput{
			forwardingType: ForwardingType(req.ForwardingType),
			forwardedTo:    req.ForwardedTo,
			workflowID:     req.WorkflowID,
		},
	})
}

func (s *service) Approve(ctx context.Context, id, actorID string, req CommentRequest) (ApprovalResponse, error) {
	return s.apply(ctx, id, actorID, actionInput{action: ActionApprove, comments: req.Comments})
}

func (s *service) Reject(ctx context.Context, id, actorID string, req CommentRequest) (ApprovalResponse, error) {
	return s.apply(ctx, id, actorID, actionInput{action: ActionReject, comments: req.Comments})
}

func (s *service) Return(ctx context.Context, id, actorID string, req CommentRequest) (ApprovalResponse, error) {
	return s.apply(ctx, id, actorID, actionInput{action: ActionReturn, comments: req.Comments})
}

func (s *service) Finalize(ctx context.Context, id, actorID string, req CommentRequest) (ApprovalResponse, error) {
	return s.apply(ctx, id, actorID, actionInput{action: ActionFinalize, comments: req.Comments})
}

func (s *service) apply(ctx context.Context, id, actorID string, in actionInput) (ApprovalResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("approval action requested",
		zap.String("approval_id", id),
		zap.String("actor_id", actorID),
		zap.String("action", string(in.action)),
	)

	if err := validateIDs(id, actorID); err != nil {
		return ApprovalResponse{}, err
	}
	in, err := validatePayload(actorID, in)
	if err != nil {
		l.Warn("approval action validation failed", zap.String("action", string(in.action)), zap.Error(err))
		return ApprovalResponse{}, err
	}

	actor, err := s.users.GetProfile(ctx, actorID)
	if err != nil {
		return ApprovalResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("approval action begin tx failed", zap.Error(err))
		return ApprovalResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return ApprovalResponse{}, mapRepositoryError(err)
	}

	caps, err := s.capabilities(ctx, qtx, *a, actorID)
	if err != nil {
		return ApprovalResponse{}, err
	}
	if err := s.policy.Can(actorID, caps, *a, in.action); err != nil {
		l.Warn("approval action denied",
			zap.String("approval_id", id),
			zap.String("actor_id", actorID),
			zap.String("action", string(in.action)),
			zap.String("status", string(a.CurrentStatus)),
			zap.Error(err),
		)
		return ApprovalResponse{}, err
	}

	t := transition{action: in.action, actor: actor, comments: in.comments}

	var allocs []itemdecision.Allocation
	switch in.action {
	case ActionForward:
		target, wfID, err := s.resolveTarget(ctx, actorID, in.forward)
		if err != nil {
			l.Warn("approval forward target resolution failed", zap.String("approval_id", id), zap.Error(err))
			return ApprovalResponse{}, err
		}
		t.target = &target
		t.forwardingType = in.forward.forwardingType
		t.workflowID = wfID
	case ActionApprove:
		if a.RequestType.HasItems() {
			allocs, err = s.decidedAllocations(ctx, tx, id)
			if err != nil {
				return ApprovalResponse{}, err
			}
		}
	}

	previousApprover := approverOf(a)
	if err := s.applyTransition(ctx, qtx, a, t); err != nil {
		l.Error("approval transition failed", zap.String("approval_id", id), zap.Error(err))
		return ApprovalResponse{}, mapRepositoryError(err)
	}

	if in.action == ActionApprove && a.RequestType.HasItems() {
		if err := s.enqueueApproved(ctx, tx, a, actorID, allocs); err != nil {
			l.Error("approval outbox persist failed", zap.String("approval_id", id), zap.Error(err))
			return ApprovalResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		l.Error("approval action commit failed", zap.Error(err))
		return ApprovalResponse{}, err
	}

	s.afterCommit(ctx, a, actorID, previousApprover, in.action)
	return mapToResponse(*a), nil
}

type parsedAllocation struct {
	itemID string
	kind   itemdecision.Kind
	qty    *int
	reason string
}

func parseAllocations(in []ItemAllocationInput) ([]parsedAllocation, error) {
	out := make([]parsedAllocation, len(in))
	for i, al := range in {
		kind, ok := itemdecision.KindOf(itemdecision.DecisionType(strings.ToUpper(al.DecisionType)), al.RejectionReason)
		if !ok {
			return nil, itemdecisionerrors.ErrUnknownDecision
		}
		reason := al.RejectionReason
		if reason == "" {
			reason = al.ForwardingReason
		}
		out[i] = parsedAllocation{itemID: al.RequestedItemID, kind: kind, qty: al.AllocatedQuantity, reason: reason}
	}
	return out, nil
}

func actionForOutcome(o itemdecision.Outcome) ActionType {
	switch o {
	case itemdecision.OutcomeReturn:
		return ActionReturn
	case itemdecision.OutcomeReject:
		return ActionReject
	case itemdecision.OutcomeForward:
		return ActionForward
	default:
		return ActionApprove
	}
}

// SubmitDecisions records one decision per item and applies the
// request-level action those decisions imply, all in one transaction.
func (s *service) SubmitDecisions(ctx context.Context, id, actorID string, req SubmitDecisionsRequest) (ApprovalResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if err := validateIDs(id, actorID); err != nil {
		return ApprovalResponse{}, err
	}
	if strings.TrimSpace(req.ApproverName) == "" {
		return ApprovalResponse{}, itemdecisionerrors.ErrApproverNameRequired
	}
	bulk := itemdecision.Kind(req.BulkDecision)
	if bulk != "" && !bulk.Valid() {
		return ApprovalResponse{}, itemdecisionerrors.ErrUnknownDecision
	}
	parsed, err := parseAllocations(req.ItemAllocations)
	if err != nil {
		return ApprovalResponse{}, err
	}

	actor, err := s.users.GetProfile(ctx, actorID)
	if err != nil {
		return ApprovalResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("submit decisions begin tx failed", zap.Error(err))
		return ApprovalResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	itx := s.items.WithTx(tx)

	a, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return ApprovalResponse{}, mapRepositoryError(err)
	}
	if err := s.policy.CheckTurn(actorID, *a); err != nil {
		return ApprovalResponse{}, err
	}
	if !a.RequestType.HasItems() {
		return ApprovalResponse{}, approvalerrors.ErrNoItemsOnRequest
	}

	caps, err := s.capabilities(ctx, qtx, *a, actorID)
	if err != nil {
		return ApprovalResponse{}, err
	}

	items, err := itx.FindByApproval(ctx, id)
	if err != nil {
		return ApprovalResponse{}, err
	}

	set := itemdecision.NewDecisionSet(items)
	if bulk != "" {
		if err := set.ApplyToAll(bulk); err != nil {
			return ApprovalResponse{}, err
		}
	}
	for _, p := range parsed {
		if err := set.SetItemDecision(p.itemID, p.kind, p.qty); err != nil {
			return ApprovalResponse{}, err
		}
		if p.reason != "" {
			if err := set.SetReason(p.itemID, p.reason); err != nil {
				return ApprovalResponse{}, err
			}
		}
	}

	var action ActionType
	previousApprover := approverOf(a)

	err = set.Submit(ctx, func(ctx context.Context, batch itemdecision.Batch) error {
		action = actionForOutcome(itemdecision.DeriveOutcome(batch.Allocations))
		if err := s.policy.Can(actorID, caps, *a, action); err != nil {
			return err
		}

		designation := batch.ApproverDesignation
		if designation == "" {
			designation = actor.Designation
		}
		t := transition{
			action:   action,
			actor:    user.Profile{ID: actor.ID, FullName: batch.ApproverName, Designation: designation},
			comments: batch.Comments,
		}
		switch action {
		case ActionForward:
			target, _, err := s.resolveTarget(ctx, actorID, forwardInput{forwardingType: ForwardApproval})
			if err != nil {
				return err
			}
			t.target = &target
			t.forwardingType = ForwardApproval
			if t.comments == "" {
				t.comments = itemdecision.DefaultForwardReason
			}
		case ActionReject:
			if t.comments == "" {
				t.comments = itemdecision.DefaultRejectReason
			}
		case ActionReturn:
			if t.comments == "" {
				t.comments = itemdecision.DefaultReturnReason
			}
		}

		if err := itx.SaveAllocations(ctx, id, actorID, batch.Allocations); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return itemdecisionerrors.ErrItemNotFound
			}
			return err
		}
		if err := s.applyTransition(ctx, qtx, a, t); err != nil {
			return mapRepositoryError(err)
		}
		if action == ActionApprove {
			return s.enqueueApproved(ctx, tx, a, actorID, batch.Allocations)
		}
		return nil
	}, req.ApproverName, req.ApproverDesignation, req.ApprovalComments)
	if err != nil {
		l.Warn("submit decisions failed", zap.String("approval_id", id), zap.Error(err))
		return ApprovalResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("submit decisions commit failed", zap.Error(err))
		return ApprovalResponse{}, err
	}

	s.afterCommit(ctx, a, actorID, previousApprover, action)
	return mapToResponse(*a), nil
}

func mapToResponse(a Approval) ApprovalResponse {
	return ApprovalResponse{
		ID:                  a.ID.String(),
		RequestID:           a.RequestID,
		RequestType:         string(a.RequestType),
		WorkflowID:          a.WorkflowID.String(),
		SubmittedBy:         a.SubmittedBy.String(),
		SubmittedByName:     a.SubmittedByName,
		SubmittedDate:       a.SubmittedDate.Format(time.RFC3339),
		CurrentStatus:       string(a.CurrentStatus),
		CurrentApproverID:   approverOf(&a),
		CurrentApproverName: a.CurrentApproverName,
		ScopeType:           string(a.ScopeType),
		WingID:              a.WingID,
		UpdatedAt:           a.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(list []Approval) []ApprovalResponse {
	res := make([]ApprovalResponse, len(list))
	for i, a := range list {
		res[i] = mapToResponse(a)
	}
	return res
}

func mapHistoryToResponse(h History) HistoryResponse {
	resp := HistoryResponse{
		ID:                  h.ID.String(),
		StepNumber:          h.StepNumber,
		ActionType:          string(h.ActionType),
		ActionBy:            h.ActionBy.String(),
		ActionByName:        h.ActionByName,
		ActionByDesignation: h.ActionByDesignation,
		ActionDate:          h.ActionDate.Format(time.RFC3339),
		Comments:            h.Comments,
		IsCurrentStep:       h.IsCurrentStep,
		ForwardedToName:     h.ForwardedToName,
		ForwardingType:      string(h.ForwardingType),
	}
	if h.ForwardedTo != nil {
		resp.ForwardedTo = h.ForwardedTo.String()
	}
	return resp
}
