package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// Params carries normalized pagination input. Build it with Normalize so
// the limit clamp is applied regardless of what the client requested.
type Params struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

// Normalize clamps raw client input into a valid Params.
func Normalize(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset computes the slice offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Result is the envelope shared by every paginated listing.
type Result[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewResult fills the envelope; TotalPages is ceil(total/limit), zero
// when the collection is empty.
func NewResult[T any](data []T, total int64, p Params) *Result[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return &Result[T]{
		Data:       data,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
	}
}
