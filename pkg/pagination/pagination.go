package pagination

// Page describes one slice of an ordered listing. Pages are 1-based.
// Out-of-range requests clamp instead of erroring: below 1 becomes 1,
// beyond the last page becomes the last page.
type Page struct {
	Number     int   `json:"number"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// New computes page metadata for a listing of total items. An empty
// listing still has one (empty) page so templates and clients never see
// page 0.
func New(total int64, number, size int) Page {
	if size < 1 {
		size = 1
	}
	pages := int((total + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > pages {
		number = pages
	}
	return Page{
		Number:     number,
		Size:       size,
		TotalItems: total,
		TotalPages: pages,
		HasNext:    number < pages,
		HasPrev:    number > 1,
	}
}

// Offset is the item index this page starts at.
func (p Page) Offset() int { return (p.Number - 1) * p.Size }

// Limit is the maximum number of items on this page.
func (p Page) Limit() int { return p.Size }
