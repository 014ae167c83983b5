package question

// Paginate returns page (1-indexed) of items, size items per page.
// Pages past the end are empty, not an error. page or size below 1 is a
// validation error.
func Paginate[T any](items []T, page, size int) ([]T, error) {
	if page < 1 {
		return nil, invalid("page", "must be a positive integer")
	}
	if size < 1 {
		return nil, invalid("page_size", "must be a positive integer")
	}
	if page-1 >= (len(items)+size-1)/size {
		return []T{}, nil
	}
	start := (page - 1) * size
	end := min(start+size, len(items))
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, nil
}
