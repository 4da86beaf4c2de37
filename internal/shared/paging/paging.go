// Package paging holds the pagination value objects shared by all
// list endpoints: a normalized page request and a generic page of results.
package paging

const (
	DefaultPage = 0
	DefaultSize = 10
	MinSize     = 1
	MaxSize     = 100
	DefaultSort = "title"
)

// PageRequest is a normalized pagination request. Construct it with
// NewPageRequest; construction never fails, out-of-range input is clamped.
type PageRequest struct {
	Page int    `json:"page"`
	Size int    `json:"size"`
	Sort string `json:"sort"`
}

// NewPageRequest clamps raw input into a valid request:
// page >= 0, size in [1,100], empty sort falls back to "title".
func NewPageRequest(page, size int, sort string) PageRequest {
	if page < 0 {
		page = 0
	}
	if size < MinSize {
		size = MinSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	if sort == "" {
		sort = DefaultSort
	}
	return PageRequest{Page: page, Size: size, Sort: sort}
}

// Offset is the row offset the storage layer uses for LIMIT/OFFSET paging.
func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// Page is one slice of a larger result set. Total is the authoritative
// count of all matching rows as reported by storage; it is never derived
// from len(Content).
type Page[T any] struct {
	Content []T   `json:"content"`
	Page    int   `json:"page"`
	Size    int   `json:"size"`
	Total   int64 `json:"total"`
}

func NewPage[T any](content []T, page, size int, total int64) Page[T] {
	return Page[T]{Content: content, Page: page, Size: size, Total: total}
}

// TotalPages is ceil(Total/Size).
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}

func (p Page[T]) HasNext() bool {
	return p.Page < p.TotalPages()-1
}

func (p Page[T]) HasPrevious() bool {
	return p.Page > 0
}
