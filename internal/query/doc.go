// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package query assembles parameterized predicates, SET lists and
// pagination plans. Values only ever travel as placeholder arguments; the
// SQL text is built from allow-listed column names and fixed operators.
//
// Atoms are rendered with squirrel using the "?" placeholder format, so the
// output is accepted both by the remote SQL-over-HTTP store and by sqlite.
package query
