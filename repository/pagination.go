package repository

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page is a normalised limit/offset window.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func NewPage(limit, offset int) Page {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Page{Limit: limit, Offset: offset}
}

// PageFromNumber converts 1-based page numbers, used by the admin listings.
func PageFromNumber(page, limit int) Page {
	if page <= 0 {
		page = 1
	}
	p := NewPage(limit, 0)
	p.Offset = (page - 1) * p.Limit
	return p
}
