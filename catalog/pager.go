package catalog

// Coords locate a page inside the batch system: a 1-based batch number
// and a 1-based page within that batch.
type Coords struct {
	Batch int
	Page  int
}

// SplitPage decomposes a global page number into batch coordinates.
// The mapping round-trips exactly with Coords.Global for any page size.
func SplitPage(globalPage, pageSize int) Coords {
	if globalPage < 1 {
		globalPage = 1
	}
	perBatch := MaxPagesInBatch(pageSize)
	return Coords{
		Batch: (globalPage-1)/perBatch + 1,
		Page:  (globalPage-1)%perBatch + 1,
	}
}

// Global recomposes the global page number.
func (c Coords) Global(pageSize int) int {
	return (c.Batch-1)*MaxPagesInBatch(pageSize) + c.Page
}

// ClampPage bounds a page target to [1, totalPages]. A zero totalPages
// clamps to 1 so navigation never lands on page 0.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Nav is the page-number navigation model rendered next to a listing:
// a sliding window of up to five page numbers centered on the current
// page, with first/last shortcuts when the window is detached from the
// edges.
type Nav struct {
	Current   int   `json:"current"`
	Total     int   `json:"total"`
	Pages     []int `json:"pages"`
	ShowFirst bool  `json:"showFirst"`
	ShowLast  bool  `json:"showLast"`
	HasPrev   bool  `json:"hasPrev"`
	HasNext   bool  `json:"hasNext"`
}

// BuildNav computes the navigation window. maxPages caps how far the
// window may extend (the page capacity of the current batch).
func BuildNav(current, totalPages, maxPages int) Nav {
	maxDisplay := totalPages
	if maxPages > 0 && maxDisplay > maxPages {
		maxDisplay = maxPages
	}
	if maxDisplay < 1 {
		maxDisplay = 1
	}
	current = ClampPage(current, maxDisplay)

	start := current - 2
	if start < 1 {
		start = 1
	}
	end := start + 4
	if end > maxDisplay {
		end = maxDisplay
	}
	if end-4 > 0 && end-4 < start {
		start = end - 4
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return Nav{
		Current:   current,
		Total:     totalPages,
		Pages:     pages,
		ShowFirst: start > 1,
		ShowLast:  end < maxDisplay,
		HasPrev:   current > 1,
		HasNext:   current < maxDisplay,
	}
}
