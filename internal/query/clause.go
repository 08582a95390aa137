// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Joiners accepted by Combine.
const (
	And = "AND"
	Or  = "OR"
)

// Clause is a rendered predicate fragment plus its arguments in placeholder
// order. The zero Clause is empty and means "no restriction".
type Clause struct {
	SQL  string
	Args []any

	// joiner is the operator between the clause's top-level atoms, empty
	// when the clause holds a single atom.
	joiner string
}

// IsEmpty reports whether the clause restricts nothing.
func (c Clause) IsEmpty() bool {
	return c.SQL == ""
}

// ToSql lets a Clause be used directly in squirrel builders.
func (c Clause) ToSql() (string, []any, error) {
	return c.SQL, c.Args, nil
}

// BuildFilterClause emits "column = ?" for each allowed column present in
// filters, in allowed's order. Keys that are not allow-listed are dropped:
// filter sets are only populated from code-defined field lists.
func BuildFilterClause(filters FilterSet, allowed Columns) Clause {
	atoms := make([]sq.Sqlizer, 0, len(filters))
	for _, column := range allowed {
		value, ok := filters[column]
		if !ok {
			continue
		}
		atoms = append(atoms, sq.Eq{column: value})
	}

	return joinAtoms(atoms, And)
}

// BuildSearchClause emits "f1 LIKE ? OR f2 LIKE ?" with "%term%" for every
// field. An empty term yields an empty clause.
func BuildSearchClause(term string, fields Columns) Clause {
	term = strings.TrimSpace(term)
	if term == "" {
		return Clause{}
	}

	pattern := "%" + term + "%"
	atoms := make([]sq.Sqlizer, 0, len(fields))
	for _, field := range fields {
		atoms = append(atoms, sq.Like{field: pattern})
	}

	return joinAtoms(atoms, Or)
}

// Eq is a single "column = ?" atom.
func Eq(column string, value any) Clause {
	return joinAtoms([]sq.Sqlizer{sq.Eq{column: value}}, "")
}

// Combine joins the non-empty clauses with joiner. A compound clause built
// with a different joiner is parenthesised. No non-empty input yields an
// empty clause, which matches every row.
func Combine(joiner string, clauses ...Clause) Clause {
	parts := make([]string, 0, len(clauses))
	var args []any

	for _, c := range clauses {
		if c.IsEmpty() {
			continue
		}

		sqlText := c.SQL
		if c.joiner != "" && c.joiner != joiner {
			sqlText = "(" + sqlText + ")"
		}
		parts = append(parts, sqlText)
		args = append(args, c.Args...)
	}

	switch len(parts) {
	case 0:
		return Clause{}
	case 1:
		// a lone clause keeps its own joiner so a later Combine still wraps it
		for _, c := range clauses {
			if !c.IsEmpty() {
				return c
			}
		}
	}

	return Clause{
		SQL:    strings.Join(parts, " "+joiner+" "),
		Args:   args,
		joiner: joiner,
	}
}

// BuildUpdateSet renders "a = ?, b = ?" from the changed columns in order.
// Columns absent from changes are left untouched in storage.
func BuildUpdateSet(changes []Change) Clause {
	parts := make([]string, 0, len(changes))
	args := make([]any, 0, len(changes))
	for _, ch := range changes {
		parts = append(parts, fmt.Sprintf("%s = ?", ch.Column))
		args = append(args, ch.Value)
	}

	return Clause{SQL: strings.Join(parts, ", "), Args: args}
}

func joinAtoms(atoms []sq.Sqlizer, joiner string) Clause {
	if len(atoms) == 0 {
		return Clause{}
	}

	parts := make([]string, 0, len(atoms))
	var args []any
	for _, atom := range atoms {
		// squirrel's Eq/Like on a single key never fail
		sqlText, atomArgs, _ := atom.ToSql()
		parts = append(parts, sqlText)
		args = append(args, atomArgs...)
	}

	c := Clause{SQL: strings.Join(parts, " "+joiner+" "), Args: args}
	if len(atoms) > 1 {
		c.joiner = joiner
	}

	return c
}
