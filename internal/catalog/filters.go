package catalog

import (
	"strings"

	"github.com/shopease/shopease-backend/pkg/pagination"
)

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "All"

// ListInput captures the browse knobs for the product listing.
type ListInput struct {
	Search   string
	Category string
	Page     pagination.Params
}

// predicate accumulates optional WHERE clauses conjunctively. Values are
// always bound parameters; user input never reaches the statement text.
type predicate struct {
	clauses []string
	args    []any
}

func (p *predicate) add(clause string, args ...any) {
	p.clauses = append(p.clauses, clause)
	p.args = append(p.args, args...)
}

func (p *predicate) where() string {
	if len(p.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.clauses, " AND ")
}

// listPredicate builds the shared filter for the list and count queries.
func listPredicate(input ListInput) *predicate {
	p := &predicate{}

	if search := strings.TrimSpace(input.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		p.add(
			"(LOWER(name) LIKE ? OR LOWER(short_desc) LIKE ? OR LOWER(long_desc) LIKE ?)",
			pattern, pattern, pattern,
		)
	}

	if input.Category != "" && input.Category != CategoryAll {
		p.add("category = ?", input.Category)
	}

	return p
}
