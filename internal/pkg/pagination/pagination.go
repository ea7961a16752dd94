package pagination

import "strconv"

// Params is a page-number window over an ordered listing.
type Params struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

type Meta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// Policy holds the default and maximum page size of one listing.
type Policy struct {
	DefaultSize int
	MaxSize     int
}

var (
	Bicycles = Policy{DefaultSize: 8, MaxSize: 10}
	Rentals  = Policy{DefaultSize: 8, MaxSize: 10}
	Payments = Policy{DefaultSize: 10, MaxSize: 20}
	Users    = Policy{DefaultSize: 20, MaxSize: 50}
)

// Parse accepts raw query values; malformed or out of range input falls back to defaults.
func (p Policy) Parse(page, pageSize string) Params {
	n, err := strconv.Atoi(page)
	if err != nil || n < 1 {
		n = 1
	}
	size, err := strconv.Atoi(pageSize)
	if err != nil || size < 1 {
		size = p.DefaultSize
	}
	if size > p.MaxSize {
		size = p.MaxSize
	}
	return Params{Page: n, PageSize: size}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Params) Limit() int {
	return p.PageSize
}

func NewMeta(p Params, total int64) Meta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = int(total) / p.PageSize
		if int(total)%p.PageSize > 0 {
			totalPages++
		}
	}
	return Meta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}
