package catalog

// Pagination is the page-window math for a catalog listing. The window rule
// is deliberately asymmetric rather than a sliding ±1 window:
//
//   - page 1 or 2:  [1, 2, 3] (truncated when fewer pages exist)
//   - last page:    the last three page numbers
//   - otherwise:    [page-1, page], plus page+1 only when a next page exists
type Pagination struct {
	ProductCount int
	PageSize     int
	Page         int // clamped into [1, Pages]
	Pages        int // ceil(ProductCount / PageSize), minimum 1
	HasPrev      bool
	HasNext      bool
	Window       []int
}

// Paginate computes the pagination for a listing. The requested page is
// clamped into range before skip/limit are derived, so the count and the
// result set stay consistent.
func Paginate(productCount, pageSize, page int) Pagination {
	if pageSize < 1 {
		pageSize = 1
	}

	pages := (productCount + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	p := Pagination{
		ProductCount: productCount,
		PageSize:     pageSize,
		Page:         page,
		Pages:        pages,
		HasPrev:      page > 1,
		HasNext:      productCount > page*pageSize,
	}
	p.Window = window(page, pages, p.HasNext)
	return p
}

// Skip returns the number of records to skip for the current page.
func (p Pagination) Skip() int {
	return p.PageSize * (p.Page - 1)
}

// Limit returns the page size.
func (p Pagination) Limit() int {
	return p.PageSize
}

func window(page, pages int, hasNext bool) []int {
	switch page {
	case 1, 2:
		w := []int{1, 2, 3}
		if pages < 3 {
			w = w[:pages]
		}
		return w
	case pages:
		start := pages - 2
		if start < 1 {
			start = 1
		}
		w := make([]int, 0, 3)
		for n := start; n <= pages; n++ {
			w = append(w, n)
		}
		return w
	default:
		w := []int{page - 1, page}
		if hasNext {
			w = append(w, page+1)
		}
		return w
	}
}
