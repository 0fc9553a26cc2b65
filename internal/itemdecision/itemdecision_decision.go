package itemdecision

import (
	"context"
	"strings"

	itemdecisionerrors "go-invmis/internal/itemdecision/errors"
)

// Kind is the decision an approver picks for one item.
type Kind string

const (
	KindApproveWing       Kind = "approve_wing"
	KindForwardAdmin      Kind = "forward_admin"
	KindForwardSupervisor Kind = "forward_supervisor"
	KindReject            Kind = "reject"
	KindReturn            Kind = "return"
)

func (k Kind) Valid() bool {
	switch k {
	case KindApproveWing, KindForwardAdmin, KindForwardSupervisor, KindReject, KindReturn:
		return true
	}
	return false
}

// DecisionType is the persisted form of a Kind.
type DecisionType string

const (
	DecisionApproveFromStock      DecisionType = "APPROVE_FROM_STOCK"
	DecisionApproveForProcurement DecisionType = "APPROVE_FOR_PROCUREMENT"
	DecisionForwardToSupervisor   DecisionType = "FORWARD_TO_SUPERVISOR"
	DecisionReject                DecisionType = "REJECT"
	DecisionReturn                DecisionType = "RETURN"

	// legacyForwardToAdmin is still present on older rows.
	legacyForwardToAdmin DecisionType = "FORWARD_TO_ADMIN"
)

const (
	DefaultRejectReason  = "Request rejected by supervisor"
	DefaultReturnReason  = "Request returned to requester for editing"
	DefaultForwardReason = "Forwarded for further approval"

	legacyReturnMarker = "returned to requester"
)

func (k Kind) DecisionType() DecisionType {
	switch k {
	case KindApproveWing:
		return DecisionApproveFromStock
	case KindForwardAdmin:
		return DecisionApproveForProcurement
	case KindForwardSupervisor:
		return DecisionForwardToSupervisor
	case KindReturn:
		return DecisionReturn
	default:
		return DecisionReject
	}
}

// KindOf maps a stored decision back to its Kind. Rows written before RETURN
// existed carry REJECT with a "returned to requester" reason.
func KindOf(dt DecisionType, rejectionReason string) (Kind, bool) {
	switch dt {
	case DecisionApproveFromStock:
		return KindApproveWing, true
	case DecisionApproveForProcurement, legacyForwardToAdmin:
		return KindForwardAdmin, true
	case DecisionForwardToSupervisor:
		return KindForwardSupervisor, true
	case DecisionReturn:
		return KindReturn, true
	case DecisionReject:
		if strings.Contains(strings.ToLower(rejectionReason), legacyReturnMarker) {
			return KindReturn, true
		}
		return KindReject, true
	}
	return "", false
}

type ItemDecision struct {
	Kind             Kind
	ApprovedQuantity *int
}

type Allocation struct {
	ItemID            string       `json:"requested_item_id"`
	ItemMasterID      string       `json:"item_master_id,omitempty"`
	Nomenclature      string       `json:"nomenclature,omitempty"`
	RequestedQuantity int          `json:"requested_quantity"`
	AllocatedQuantity int          `json:"allocated_quantity"`
	DecisionType      DecisionType `json:"decision_type"`
	RejectionReason   string       `json:"rejection_reason,omitempty"`
	ForwardingReason  string       `json:"forwarding_reason,omitempty"`
}

type Summary struct {
	ApproveWing       int `json:"approve_wing"`
	ForwardAdmin      int `json:"forward_admin"`
	ForwardSupervisor int `json:"forward_supervisor"`
	Reject            int `json:"reject"`
	Return            int `json:"return"`
	Undecided         int `json:"undecided"`
}

// Batch is what a DecisionSet hands to the approval side on submit.
type Batch struct {
	ApproverName        string
	ApproverDesignation string
	Comments            string
	Allocations         []Allocation
}

type SubmitFunc func(ctx context.Context, batch Batch) error

// DecisionSet holds the pending per-item decisions for one approval. Nothing
// is persisted until Submit.
type DecisionSet struct {
	items     []RequestItem
	decisions map[string]ItemDecision
	reasons   map[string]string
}

// NewDecisionSet starts from the decisions already stored on items.
func NewDecisionSet(items []RequestItem) *DecisionSet {
	d := &DecisionSet{
		items:     items,
		decisions: make(map[string]ItemDecision, len(items)),
		reasons:   make(map[string]string),
	}
	for _, it := range items {
		if it.DecisionType == nil {
			continue
		}
		kind, ok := KindOf(DecisionType(*it.DecisionType), it.RejectionReason)
		if !ok {
			continue
		}
		d.decisions[it.ID.String()] = ItemDecision{Kind: kind, ApprovedQuantity: it.AllocatedQuantity}
		if reason := firstNonEmpty(it.RejectionReason, it.ForwardingReason); reason != "" {
			d.reasons[it.ID.String()] = reason
		}
	}
	return d
}

func (d *DecisionSet) find(itemID string) (RequestItem, bool) {
	for _, it := range d.items {
		if it.ID.String() == itemID {
			return it, true
		}
	}
	return RequestItem{}, false
}

func (d *DecisionSet) SetItemDecision(itemID string, kind Kind, approvedQty *int) error {
	if !kind.Valid() {
		return itemdecisionerrors.ErrUnknownDecision
	}
	if _, ok := d.find(itemID); !ok {
		return itemdecisionerrors.ErrItemNotFound
	}
	if approvedQty != nil && *approvedQty < 0 {
		return itemdecisionerrors.ErrNegativeQuantity
	}

	d.decisions[itemID] = ItemDecision{Kind: kind, ApprovedQuantity: approvedQty}
	return nil
}

func (d *DecisionSet) SetReason(itemID, reason string) error {
	if _, ok := d.find(itemID); !ok {
		return itemdecisionerrors.ErrItemNotFound
	}
	d.reasons[itemID] = reason
	return nil
}

// ApplyToAll gives every item the same decision, keeping any quantity
// already entered.
func (d *DecisionSet) ApplyToAll(kind Kind) error {
	if !kind.Valid() {
		return itemdecisionerrors.ErrUnknownDecision
	}
	for _, it := range d.items {
		id := it.ID.String()
		prev := d.decisions[id]
		d.decisions[id] = ItemDecision{Kind: kind, ApprovedQuantity: prev.ApprovedQuantity}
	}
	return nil
}

func (d *DecisionSet) Decision(itemID string) (ItemDecision, bool) {
	dec, ok := d.decisions[itemID]
	return dec, ok
}

func (d *DecisionSet) HasDecisionForAllItems() bool {
	for _, it := range d.items {
		if _, ok := d.decisions[it.ID.String()]; !ok {
			return false
		}
	}
	return true
}

func (d *DecisionSet) Summary() Summary {
	var s Summary
	for _, it := range d.items {
		dec, ok := d.decisions[it.ID.String()]
		if !ok {
			s.Undecided++
			continue
		}
		switch dec.Kind {
		case KindApproveWing:
			s.ApproveWing++
		case KindForwardAdmin:
			s.ForwardAdmin++
		case KindForwardSupervisor:
			s.ForwardSupervisor++
		case KindReject:
			s.Reject++
		case KindReturn:
			s.Return++
		}
	}
	return s
}

// Allocations renders the decisions in item order. Reject and return
// allocate nothing; other kinds allocate the decided quantity or, when none
// was entered, the requested quantity.
func (d *DecisionSet) Allocations() ([]Allocation, error) {
	if !d.HasDecisionForAllItems() {
		return nil, itemdecisionerrors.ErrDecisionsIncomplete
	}

	out := make([]Allocation, 0, len(d.items))
	for _, it := range d.items {
		dec := d.decisions[it.ID.String()]
		reason := d.reasons[it.ID.String()]
		a := Allocation{
			ItemID:            it.ID.String(),
			ItemMasterID:      it.ItemMasterID,
			Nomenclature:      it.Nomenclature,
			RequestedQuantity: it.RequestedQuantity,
			DecisionType:      dec.Kind.DecisionType(),
		}

		switch dec.Kind {
		case KindReject:
			a.RejectionReason = reasonOr(reason, DefaultRejectReason)
		case KindReturn:
			a.RejectionReason = reasonOr(reason, DefaultReturnReason)
		default:
			a.AllocatedQuantity = it.RequestedQuantity
			if dec.ApprovedQuantity != nil && *dec.ApprovedQuantity > 0 {
				a.AllocatedQuantity = *dec.ApprovedQuantity
			}
			if dec.Kind == KindForwardAdmin || dec.Kind == KindForwardSupervisor {
				a.ForwardingReason = reasonOr(reason, DefaultForwardReason)
			}
		}
		out = append(out, a)
	}
	return out, nil
}

// Submit validates the whole set and hands it to submit in one call. Nothing
// reaches submit unless the set is complete and the approver is named.
func (d *DecisionSet) Submit(ctx context.Context, submit SubmitFunc, approverName, designation, comments string) error {
	if strings.TrimSpace(approverName) == "" {
		return itemdecisionerrors.ErrApproverNameRequired
	}
	if len(d.items) == 0 {
		return itemdecisionerrors.ErrNoItems
	}

	allocs, err := d.Allocations()
	if err != nil {
		return err
	}

	return submit(ctx, Batch{
		ApproverName:        strings.TrimSpace(approverName),
		ApproverDesignation: designation,
		Comments:            comments,
		Allocations:         allocs,
	})
}

func reasonOr(reason, fallback string) string {
	if strings.TrimSpace(reason) == "" {
		return fallback
	}
	return reason
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Outcome is the request-level action implied by a batch of allocations.
type Outcome string

const (
	OutcomeApprove Outcome = "approve"
	OutcomeReject  Outcome = "reject"
	OutcomeForward Outcome = "forward"
	OutcomeReturn  Outcome = "return"
)

// DeriveOutcome: any return wins, then all-reject, then any supervisor
// forward; everything else approves.
func DeriveOutcome(allocs []Allocation) Outcome {
	if len(allocs) == 0 {
		return OutcomeApprove
	}

	allRejected := true
	forward := false
	for _, a := range allocs {
		kind, _ := KindOf(a.DecisionType, a.RejectionReason)
		switch kind {
		case KindReturn:
			return OutcomeReturn
		case KindReject:
		default:
			allRejected = false
		}
		if kind == KindForwardSupervisor {
			forward = true
		}
	}

	switch {
	case allRejected:
		return OutcomeReject
	case forward:
		return OutcomeForward
	default:
		return OutcomeApprove
	}
}
