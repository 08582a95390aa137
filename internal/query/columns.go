// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import "slices"

// Columns is an ordered allow-list of column names. The order is the field
// declaration order and drives the order of generated atoms.
type Columns []string

// Contains reports whether name is allow-listed.
func (c Columns) Contains(name string) bool {
	return slices.Contains(c, name)
}

// FilterSet maps column names to filter values. It is sparse: unset filters
// are absent, never present with a nil value.
type FilterSet map[string]any

// Change is one explicitly changed column of a partial update.
type Change struct {
	Column string
	Value  any
}
