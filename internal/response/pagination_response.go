package response

import "math"

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest is a normalized page/page_size pair taken from a query string.
type PageRequest struct {
	Page     int
	PageSize int
}

func NewPageRequest(page, pageSize int) PageRequest {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return PageRequest{Page: page, PageSize: pageSize}
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// NewPagination describes the page p of a result set with total items, of
// which count are on the current page.
func NewPagination(p PageRequest, total int64, count int) *Pagination {
	pages := int64(math.Ceil(float64(total) / float64(p.PageSize)))
	from, to := 0, 0
	if count > 0 {
		from = p.Offset() + 1
		to = p.Offset() + count
	}
	return &Pagination{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: pages,
		TotalItems: total,
		HasMore:    int64(p.Page) < pages,
		From:       from,
		To:         to,
	}
}
