package pagination

// Descriptor is returned alongside every listing result.
type Descriptor struct {
	Total int `json:"total"`
	Pages int `json:"pages"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Normalize coerces client-supplied page/limit to usable values. Page falls
// back to 1, limit to 10; limit is capped at MaxLimit.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return page, limit
}

// Offset returns how many rows to skip for the given page.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// NewDescriptor builds the descriptor for a listing. Pages is the ceiling of
// total/limit, so an empty result set reports zero pages.
func NewDescriptor(total, page, limit int) Descriptor {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}

	return Descriptor{
		Total: total,
		Pages: pages,
		Page:  page,
		Limit: limit,
	}
}
