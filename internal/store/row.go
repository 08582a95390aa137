// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the SQLite CURRENT_TIMESTAMP format.
const TimestampLayout = "2006-01-02 15:04:05"

// Result is the outcome of one statement.
type Result struct {
	Rows []Row
	// Changes is the number of modified rows when the engine reports it.
	Changes int64
}

// Row is one result row keyed by column name. Values arrive as decoded by
// the executor: json.Number, string, bool or nil from the remote store;
// int64, float64, string, []byte, time.Time or nil from sqlite.
// The accessors normalise them and return the zero value on a mismatch.
type Row map[string]any

// Int64 reads an integer column. SQLite booleans (0/1) read as integers too.
func (r Row) Int64(column string) int64 {
	switch v := r[column].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		if f, err := v.Float64(); err == nil {
			return int64(f)
		}
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	case []byte:
		if n, err := strconv.ParseInt(string(v), 10, 64); err == nil {
			return n
		}
	case bool:
		if v {
			return 1
		}
	}
	return 0
}

// String reads a text column. NULL reads as "".
func (r Row) String(column string) string {
	switch v := r[column].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case json.Number:
		return v.String()
	case nil:
		return ""
	default:
		b, _ := json.Marshal(v)
		return strings.Trim(string(b), `"`)
	}
}

// NullString reads a nullable text column. NULL reads as nil.
func (r Row) NullString(column string) *string {
	if v, ok := r[column]; !ok || v == nil {
		return nil
	}
	s := r.String(column)
	return &s
}

// Bool reads a boolean stored as 0/1, true/false or "true"/"false".
func (r Row) Bool(column string) bool {
	switch v := r[column].(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
		return r.Int64(column) != 0
	default:
		return r.Int64(column) != 0
	}
}

// timeLayouts are the timestamp encodings SQLite and the remote store emit.
var timeLayouts = []string{
	TimestampLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Time reads a timestamp column as UTC.
func (r Row) Time(column string) time.Time {
	switch v := r[column].(type) {
	case time.Time:
		return v.UTC()
	case string:
		return parseTime(v)
	case []byte:
		return parseTime(string(v))
	case json.Number, int64, float64:
		return time.Unix(r.Int64(column), 0).UTC()
	}
	return time.Time{}
}

func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
