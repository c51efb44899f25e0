package workflow

// Paginate returns the slice [page*pageSize, page*pageSize+pageSize).
// Out-of-range pages yield an empty slice; callers are expected to
// clamp with ClampPage before asking.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 0 || pageSize <= 0 {
		return nil
	}
	start := page * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages returns ceil(count/pageSize). An empty list has zero
// pages and renders as "empty".
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// ClampPage keeps a page index inside [0, TotalPages-1] so the cursor
// never points past the end after the underlying list shrinks.
func ClampPage(page, count, pageSize int) int {
	last := TotalPages(count, pageSize) - 1
	if last < 0 {
		return 0
	}
	if page > last {
		return last
	}
	if page < 0 {
		return 0
	}
	return page
}
