// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

// Field binds a column to an extractor reading the column's value from T.
// The extractor reports false when the value is not set.
type Field[T any] struct {
	Column  string
	Extract func(T) (any, bool)
}

// Fields is the code-defined list of filterable or updatable columns of an
// entity payload. Its order is the declaration order used for rendering.
type Fields[T any] []Field[T]

// Optional builds a Field for a pointer-typed member: nil means not set.
func Optional[T, V any](column string, get func(T) *V) Field[T] {
	return Field[T]{
		Column: column,
		Extract: func(v T) (any, bool) {
			p := get(v)
			if p == nil {
				return nil, false
			}
			return *p, true
		},
	}
}

// Required builds a Field that is always set.
func Required[T, V any](column string, get func(T) V) Field[T] {
	return Field[T]{
		Column: column,
		Extract: func(v T) (any, bool) {
			return get(v), true
		},
	}
}

// Columns returns the allow-list formed by the fields.
func (f Fields[T]) Columns() Columns {
	cols := make(Columns, 0, len(f))
	for _, field := range f {
		cols = append(cols, field.Column)
	}
	return cols
}

// Filters collects the set fields of v into a FilterSet.
func (f Fields[T]) Filters(v T) FilterSet {
	set := make(FilterSet, len(f))
	for _, field := range f {
		if value, ok := field.Extract(v); ok {
			set[field.Column] = value
		}
	}
	return set
}

// Changes collects the set fields of v, in declaration order.
func (f Fields[T]) Changes(v T) []Change {
	changes := make([]Change, 0, len(f))
	for _, field := range f {
		if value, ok := field.Extract(v); ok {
			changes = append(changes, Change{Column: field.Column, Value: value})
		}
	}
	return changes
}
