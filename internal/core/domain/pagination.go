package domain

// Page wraps a slice of results with offset-based pagination metadata.
type Page[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewPage computes the page number and page count for the given window.
// A non-positive limit collapses everything onto a single page.
func NewPage[T any](data []T, skip, limit int, total int64) *Page[T] {
	page := 1
	totalPages := 1
	if limit > 0 {
		page = skip/limit + 1
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &Page[T]{
		Data:       data,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
