// Package query defines the immutable query state driving admin tables and
// browse pages. A State is replaced wholesale on every change, never mutated
// in place, so callers can compare generations to drop stale results.
package query

const (
	// All is the sentinel for an unset filter. It maps to "no predicate",
	// never to a literal match.
	All = ""

	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type State struct {
	StatusFilter   string
	CategoryFilter string
	RoleFilter     string
	SearchText     string
	Page           int
	PageSize       int
	SortBy         string
	SortDir        Direction
}

// NewState returns the default first-page state sorted by newest first.
func NewState() State {
	return State{
		Page:     1,
		PageSize: DefaultPageSize,
		SortBy:   "createdAt",
		SortDir:  Desc,
	}
}

// Normalize clamps pagination to sane bounds.
func (s State) Normalize() State {
	if s.Page < 1 {
		s.Page = 1
	}
	if s.PageSize < 1 || s.PageSize > MaxPageSize {
		s.PageSize = DefaultPageSize
	}
	return s
}

// Offset is the zero-based index of the first row of the current page.
func (s State) Offset() int {
	return (s.Page - 1) * s.PageSize
}

// Changing any filter or the search text resets the page to 1: the old page
// index is meaningless against a new result set.

func (s State) WithStatus(status string) State {
	s.StatusFilter = status
	s.Page = 1
	return s
}

func (s State) WithCategory(category string) State {
	s.CategoryFilter = category
	s.Page = 1
	return s
}

func (s State) WithRole(role string) State {
	s.RoleFilter = role
	s.Page = 1
	return s
}

func (s State) WithSearch(text string) State {
	s.SearchText = text
	s.Page = 1
	return s
}

func (s State) WithPage(page int) State {
	s.Page = page
	return s
}

func (s State) WithPageSize(size int) State {
	s.PageSize = size
	s.Page = 1
	return s
}

func (s State) WithSort(field string, dir Direction) State {
	s.SortBy = field
	s.SortDir = dir
	return s
}

// Filters returns the equality predicates the store should apply, with the
// sentinel values stripped.
func (s State) Filters() map[string]interface{} {
	filters := make(map[string]interface{})
	if s.StatusFilter != All {
		filters["status"] = s.StatusFilter
	}
	if s.CategoryFilter != All {
		filters["category"] = s.CategoryFilter
	}
	if s.RoleFilter != All {
		filters["role"] = s.RoleFilter
	}
	return filters
}

// Result is one page of rows plus the total count over the whole filtered
// set, computed in the same round trip so the caller can derive the page
// count without a second query.
type Result[T any] struct {
	Rows  []T
	Total int64
}

func (r Result[T]) TotalPages(pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(r.Total) / pageSize
	if int(r.Total)%pageSize > 0 {
		pages++
	}
	return pages
}
