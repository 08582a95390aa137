// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

// Order is one ORDER BY term. Column must be allow-listed by the consumer.
type Order struct {
	Column string
	Desc   bool
}

// String renders the term, e.g. "created_at DESC".
func (o Order) String() string {
	if o.Desc {
		return o.Column + " DESC"
	}
	return o.Column + " ASC"
}

// Plan is a render-ready listing request: predicate, ordering and window.
// A zero Limit means no window.
type Plan struct {
	Where   Clause
	OrderBy []Order
	Limit   uint64
	Offset  uint64
}

// Args returns the predicate arguments followed by limit and offset, the
// textual order of their placeholders in a rendered listing statement.
func (p Plan) Args() []any {
	args := make([]any, 0, len(p.Where.Args)+2)
	args = append(args, p.Where.Args...)
	if p.Limit > 0 {
		args = append(args, p.Limit, p.Offset)
	}
	return args
}

// Pagination is a normalised page request: Page ≥ 1, 1 ≤ PerPage ≤ max.
type Pagination struct {
	Page    int
	PerPage int
}

// NewPagination clamps a raw page request. A non-positive perPage becomes
// defaultSize; values above maxSize are capped.
func NewPagination(page, perPage, defaultSize, maxSize int) Pagination {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultSize
	}
	if maxSize > 0 && perPage > maxSize {
		perPage = maxSize
	}
	if perPage < 1 {
		perPage = 1
	}

	return Pagination{Page: page, PerPage: perPage}
}

// Limit is the window size.
func (p Pagination) Limit() uint64 {
	return uint64(p.PerPage)
}

// Offset is the number of rows skipped before the page.
func (p Pagination) Offset() uint64 {
	return uint64(p.Page-1) * uint64(p.PerPage)
}

// TotalPages is ceil(total / perPage). perPage below 1 counts as 1.
func TotalPages(total int64, perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	if total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
