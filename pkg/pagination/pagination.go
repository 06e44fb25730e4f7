package pagination

import "github.com/kalakaar-art/kalakaar-backend/pkg/types"

// Offset pagination for public list endpoints. DefaultLimit and MaxLimit cap
// how many rows any page query can request.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params holds page/limit inputs from controllers.
type Params struct {
	Page  int
	Limit int
}

// Normalize clamps the params to sane defaults and bounds.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the row offset for the normalized page.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// Pages returns how many pages a total row count spans.
func Pages(total int64, limit int) int {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if total <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}

// Meta assembles the page metadata returned alongside list payloads.
func Meta(p Params, total int64) types.PageMeta {
	n := p.Normalize()
	return types.PageMeta{
		Page:  n.Page,
		Limit: n.Limit,
		Total: total,
		Pages: Pages(total, n.Limit),
	}
}
