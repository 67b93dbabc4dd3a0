package postgres

import "go-booking-backend/internal/domain"

// pageArgs turns ListOptions paging into LIMIT/OFFSET arguments.
// A non-positive limit binds NULL, which Postgres reads as LIMIT ALL.
func pageArgs(opts domain.ListOptions) (limit *int, offset int) {
	if opts.Limit > 0 {
		l := opts.Limit
		limit = &l
	}
	if opts.Offset > 0 {
		offset = opts.Offset
	}
	return limit, offset
}
