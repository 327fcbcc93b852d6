package paginate

// Page sizes used by the storefront pages.
const (
	ReviewsPerPage  = 16 // 4x4 grid
	ProductsPerPage = 12
	GalleryPerPage  = 12
)

// Page — одна страница списка
type Page[T any] struct {
	Items      []T
	Current    int
	TotalPages int
	TotalItems int
}

// Slice cuts out one page. TotalPages is never below 1 and the requested page
// is clamped into [1, TotalPages].
func Slice[T any](items []T, page, size int) Page[T] {
	if size < 1 {
		size = 1
	}
	total := len(items)
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page[T]{
		Items:      items[start:end],
		Current:    page,
		TotalPages: pages,
		TotalItems: total,
	}
}

func (p Page[T]) HasPrev() bool { return p.Current > 1 }
func (p Page[T]) HasNext() bool { return p.Current < p.TotalPages }
func (p Page[T]) Prev() int     { return p.Current - 1 }
func (p Page[T]) Next() int     { return p.Current + 1 }

// Numbers lists 1..TotalPages for the pager links.
func (p Page[T]) Numbers() []int {
	out := make([]int, p.TotalPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
