package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 6
	// MaxLimit caps how many rows any page query can request.
	MaxLimit = 100
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Page  int
	Limit int
}

// Envelope is the pagination metadata returned alongside a page of items.
// Category is only set on category-scoped listings.
type Envelope struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Total    int64  `json:"total"`
	Pages    int64  `json:"pages"`
	Category string `json:"category,omitempty"`
}

// Normalize enforces 1-based pages and the configured default and maximum
// limits.
func Normalize(p Params) Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset converts 1-based page/limit into the row offset for the query.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// NewEnvelope computes the page count over the filtered total, which is
// counted before LIMIT/OFFSET apply. Zero rows yields zero pages.
func NewEnvelope(p Params, total int64) Envelope {
	pages := int64(0)
	if total > 0 {
		pages = (total + int64(p.Limit) - 1) / int64(p.Limit)
	}
	return Envelope{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: pages,
	}
}
