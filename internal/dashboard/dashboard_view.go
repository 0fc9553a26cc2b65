package dashboard

import (
	"sort"
	"strings"
	"time"

	"go-invmis/internal/approval"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const DefaultPageSize = 5

type SortKey string

const (
	SortByDate      SortKey = "date"
	SortByRequester SortKey = "requester"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Entry is one approval as seen by a particular actor. Status is relative
// to that actor, so a record they forwarded shows as forwarded to them.
type Entry struct {
	ID                  string             `json:"id"`
	RequestID           string             `json:"request_id"`
	RequestType         string             `json:"request_type"`
	SubmittedBy         string             `json:"submitted_by"`
	SubmittedByName     string             `json:"submitted_by_name"`
	SubmittedDate       time.Time          `json:"submitted_date"`
	Status              approval.Status    `json:"status"`
	CurrentApproverName string             `json:"current_approver_name,omitempty"`
	ScopeType           approval.ScopeType `json:"scope_type"`
	WingID              string             `json:"wing_id,omitempty"`
}

// ActorStatus: a pending record the actor passed on without being its
// current approver reads as forwarded; everything else keeps its status.
func ActorStatus(a approval.Approval, actorID string, lastAction approval.HistoryAction) approval.Status {
	if a.CurrentStatus != approval.StatusPending {
		return a.CurrentStatus
	}
	if a.CurrentApproverID != nil && a.CurrentApproverID.String() == actorID {
		return approval.StatusPending
	}
	if lastAction == approval.HistoryForwarded {
		return approval.StatusForwarded
	}
	return approval.StatusPending
}

func NewEntry(a approval.Approval, status approval.Status) Entry {
	return Entry{
		ID:                  a.ID.String(),
		RequestID:           a.RequestID,
		RequestType:         string(a.RequestType),
		SubmittedBy:         a.SubmittedBy.String(),
		SubmittedByName:     a.SubmittedByName,
		SubmittedDate:       a.SubmittedDate,
		Status:              status,
		CurrentApproverName: a.CurrentApproverName,
		ScopeType:           a.ScopeType,
		WingID:              a.WingID,
	}
}

// FilterApprovals keeps entries whose request id, requester, request type or
// current approver contains search, ignoring case. A blank search keeps all.
func FilterApprovals(list []Entry, search string) []Entry {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]Entry, 0, len(list))
	for _, e := range list {
		if needle == "" || matches(e, needle) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e Entry, needle string) bool {
	for _, field := range []string{e.RequestID, e.SubmittedByName, e.RequestType, e.CurrentApproverName} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// FilterByStatus keeps entries with the given status; "" and "all" keep all.
func FilterByStatus(list []Entry, status string) []Entry {
	if status == "" || status == "all" {
		return append([]Entry(nil), list...)
	}
	out := make([]Entry, 0, len(list))
	for _, e := range list {
		if string(e.Status) == status {
			out = append(out, e)
		}
	}
	return out
}

func Partition(list []Entry) (personal, organizational []Entry) {
	personal = make([]Entry, 0, len(list))
	organizational = make([]Entry, 0)
	for _, e := range list {
		if e.ScopeType == approval.ScopeOrganizational {
			organizational = append(organizational, e)
		} else {
			personal = append(personal, e)
		}
	}
	return personal, organizational
}

// SortApprovals returns a sorted copy. The sort is stable in both orders so
// ties keep their input order.
func SortApprovals(list []Entry, key SortKey, order SortOrder) []Entry {
	out := append([]Entry(nil), list...)

	var cmp func(a, b Entry) int
	switch key {
	case SortByRequester:
		// collate.Collator is not safe for concurrent use.
		c := collate.New(language.English, collate.IgnoreCase)
		cmp = func(a, b Entry) int { return c.CompareString(a.SubmittedByName, b.SubmittedByName) }
	default:
		cmp = func(a, b Entry) int { return a.SubmittedDate.Compare(b.SubmittedDate) }
	}

	sort.SliceStable(out, func(i, j int) bool {
		if order == SortDesc {
			return cmp(out[i], out[j]) > 0
		}
		return cmp(out[i], out[j]) < 0
	})
	return out
}

func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// ClampPage pulls page back into [1, total]. An empty result set still has
// page 1.
func ClampPage(page, total int) int {
	if page < 1 || total < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// Paginate returns the 1-based page of list; pages past the end are empty.
func Paginate(list []Entry, page, size int) []Entry {
	if size <= 0 || page < 1 {
		return []Entry{}
	}
	start := (page - 1) * size
	if start >= len(list) {
		return []Entry{}
	}
	end := start + size
	if end > len(list) {
		end = len(list)
	}
	return append([]Entry(nil), list[start:end]...)
}

type Summary struct {
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
	Forwarded int `json:"forwarded"`
	Returned  int `json:"returned"`
	Finalized int `json:"finalized"`
	Total     int `json:"total"`
}

func Summarize(list []Entry) Summary {
	var s Summary
	for _, e := range list {
		switch e.Status {
		case approval.StatusPending:
			s.Pending++
		case approval.StatusApproved:
			s.Approved++
		case approval.StatusRejected:
			s.Rejected++
		case approval.StatusForwarded:
			s.Forwarded++
		case approval.StatusReturned:
			s.Returned++
		case approval.StatusFinalized:
			s.Finalized++
		}
	}
	s.Total = len(list)
	return s
}
