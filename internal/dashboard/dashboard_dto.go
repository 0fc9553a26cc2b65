package dashboard

// ViewFilter is the query of GET /approvals/dashboard. Pages are 1-based
// and clamped to the filtered result.
type ViewFilter struct {
	Status       string    `form:"status" binding:"omitempty,oneof=all pending approved rejected forwarded returned finalized"`
	Search       string    `form:"search" binding:"max=100"`
	SortKey      SortKey   `form:"sort_key" binding:"omitempty,oneof=date requester"`
	SortOrder    SortOrder `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	PersonalPage int       `form:"personal_page" binding:"omitempty,min=1"`
	OrgPage      int       `form:"org_page" binding:"omitempty,min=1"`
	ViewToken    string    `form:"view_token" binding:"max=64"`
}

func (f ViewFilter) withDefaults() ViewFilter {
	if f.SortKey == "" {
		f.SortKey = SortByDate
	}
	if f.SortOrder == "" {
		f.SortOrder = SortDesc
	}
	if f.PersonalPage < 1 {
		f.PersonalPage = 1
	}
	if f.OrgPage < 1 {
		f.OrgPage = 1
	}
	return f
}

type Actor struct {
	ID     string
	WingID string
}

type PageView struct {
	Items      []Entry `json:"items"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalPages int     `json:"total_pages"`
	Total      int     `json:"total"`
}

type ViewModel struct {
	Summary        Summary  `json:"summary"`
	Personal       PageView `json:"personal"`
	Organizational PageView `json:"organizational"`
	// ViewToken echoes the request so clients can drop stale responses.
	ViewToken string `json:"view_token,omitempty"`
}
