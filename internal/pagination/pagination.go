// Package pagination slices ordered result sets into fixed-size pages
// addressed by a 1-based page number.
package pagination

// Page describes one page of an ordered result set.
type Page struct {
	Number     int   `json:"number"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// New computes page metadata for a result set of `total` items with the
// given page size. An out-of-range number clamps to the nearest valid page
// rather than failing; an empty result set still has one (empty) page.
func New(total int64, size, number int) Page {
	if size <= 0 {
		size = 1
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:     number,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    number < totalPages,
		HasPrev:    number > 1,
	}
}

// Offset returns the query offset for the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Limit returns the query limit for the page.
func (p Page) Limit() int {
	return p.Size
}
