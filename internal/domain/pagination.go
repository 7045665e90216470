package domain

import "slices"

// DefaultPageSize is the page size used before the user picks one.
const DefaultPageSize = 10

// PageSizes are the page sizes offered to the user.
var PageSizes = []int{5, 10, 20, 50}

// PageState is the pagination snapshot of the dashboard.
// Totals are authoritative on the server side.
type PageState struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalCount  int `json:"totalCount"`
	PageSize    int `json:"pageSize"`
}

// InitialPageState is the snapshot before the first fetch completes.
func InitialPageState(pageSize int) PageState {
	return PageState{
		CurrentPage: 1,
		TotalPages:  1,
		TotalCount:  0,
		PageSize:    pageSize,
	}
}

// Valid reports whether 1 <= CurrentPage <= max(TotalPages, 1).
func (p PageState) Valid() bool {
	return p.CurrentPage >= 1 && p.CurrentPage <= max(p.TotalPages, 1)
}

// Clamped returns p with CurrentPage moved into [1, max(TotalPages, 1)].
func (p PageState) Clamped() PageState {
	p.CurrentPage = max(1, min(p.CurrentPage, max(p.TotalPages, 1)))
	return p
}

// HasNext reports whether a page after the current one exists.
func (p PageState) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// HasPrev reports whether a page before the current one exists.
func (p PageState) HasPrev() bool {
	return p.CurrentPage > 1
}

// IsValidPageSize reports whether size is one of PageSizes.
func IsValidPageSize(size int) bool {
	return slices.Contains(PageSizes, size)
}
