package pagination

import "strconv"

// DefaultPerPage is the listing page size when the caller supplies none.
const DefaultPerPage = 9

// Params is a parsed page request. All=true disables pagination and returns
// the full result set as one page.
type Params struct {
	Page    int
	PerPage int
	All     bool
}

// Parse reads page and per_page strings. Parse failures fall back to
// defaults; per_page "all" disables pagination.
func Parse(pageStr, perPageStr string) Params {
	p := Params{Page: 1, PerPage: DefaultPerPage}
	if pageStr != "" {
		if n, err := strconv.Atoi(pageStr); err == nil && n > 0 {
			p.Page = n
		}
	}
	if perPageStr == "all" {
		p.All = true
		return p
	}
	if perPageStr != "" {
		if n, err := strconv.Atoi(perPageStr); err == nil && n > 0 {
			p.PerPage = n
		}
	}
	return p
}

// Window is the clamped result of applying Params to a total count.
type Window struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	Offset     int   `json:"-"`
	Limit      int   `json:"-"`
}

// Clamp resolves the params against a total count. Out-of-range pages snap to
// the nearest valid page. Limit -1 means no limit (per_page=all).
func (p Params) Clamp(total int64) Window {
	if p.All {
		return Window{Page: 1, PerPage: int(total), TotalItems: total, TotalPages: 1, Offset: 0, Limit: -1}
	}
	perPage := p.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return Window{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
		Offset:     (page - 1) * perPage,
		Limit:      perPage,
	}
}
