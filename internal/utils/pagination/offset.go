// Package pagination holds the limit/offset arithmetic shared by list endpoints.
package pagination

// MaxLimit caps the page size a client may request.
const MaxLimit = 200

// NextOffset returns the offset of the page following one that started at
// offset and returned count items, or nil when nothing is left.
func NextOffset(offset, count, total int) *int {
	if count == 0 {
		return nil
	}
	next := offset + count
	if next >= total {
		return nil
	}
	return &next
}

// Window clamps offset and limit to n items and returns the slice bounds.
// A limit of zero means no limit.
func Window(n, offset, limit int) (start, end int) {
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	end = n
	if limit > 0 && offset+limit < n {
		end = offset + limit
	}
	return offset, end
}
