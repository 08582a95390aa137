package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow_Int64(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int64
	}{
		{name: "int64", value: int64(5), want: 5},
		{name: "float64", value: float64(6), want: 6},
		{name: "json number", value: json.Number("7"), want: 7},
		{name: "json float", value: json.Number("8.0"), want: 8},
		{name: "string", value: "9", want: 9},
		{name: "bytes", value: []byte("10"), want: 10},
		{name: "true", value: true, want: 1},
		{name: "null", value: nil, want: 0},
		{name: "garbage", value: "abc", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Row{"c": tt.value}.Int64("c"))
		})
	}
}

func TestRow_Bool(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "bool", value: true, want: true},
		{name: "one", value: int64(1), want: true},
		{name: "zero", value: int64(0), want: false},
		{name: "json one", value: json.Number("1"), want: true},
		{name: "string true", value: "true", want: true},
		{name: "string one", value: "1", want: true},
		{name: "missing", value: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Row{"c": tt.value}.Bool("c"))
		})
	}
}

func TestRow_NullString(t *testing.T) {
	row := Row{"set": "silk", "bytes": []byte("linen"), "null": nil}

	require.NotNil(t, row.NullString("set"))
	assert.Equal(t, "silk", *row.NullString("set"))
	assert.Equal(t, "linen", *row.NullString("bytes"))
	assert.Nil(t, row.NullString("null"))
	assert.Nil(t, row.NullString("missing"))
	assert.Equal(t, "", row.String("null"))
}

func TestRow_Time(t *testing.T) {
	want := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	tests := []struct {
		name  string
		value any
	}{
		{name: "sqlite layout", value: "2025-03-14 15:09:26"},
		{name: "rfc3339", value: "2025-03-14T15:09:26Z"},
		{name: "bytes", value: []byte("2025-03-14 15:09:26")},
		{name: "time", value: want.In(time.FixedZone("X", 3600))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, want.Equal(Row{"c": tt.value}.Time("c")))
		})
	}

	assert.True(t, Row{"c": "yesterday"}.Time("c").IsZero())
}
