package objectstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyGenerator_Generate(t *testing.T) {
	stamp := time.Date(2025, 3, 7, 9, 5, 1, 0, time.FixedZone("X", 2*3600))
	g := NewKeyGenerator(func() time.Time { return stamp }, func() string { return "a1b2c3d4" })

	tests := []struct {
		name     string
		category string
		filename string
		want     string
	}{
		{name: "png", category: "dress", filename: "Rose.PNG", want: "dress/2025/03/20250307_070501_a1b2c3d4.png"},
		{name: "no extension", category: "dress", filename: "rose", want: "dress/2025/03/20250307_070501_a1b2c3d4.jpg"},
		{name: "empty category", category: " ", filename: "a.webp", want: "general/2025/03/20250307_070501_a1b2c3d4.webp"},
		{name: "slashes trimmed", category: "/coat/", filename: "a.jpeg", want: "coat/2025/03/20250307_070501_a1b2c3d4.jpeg"},
		{name: "traversal flattened", category: "../../etc", filename: "a.png", want: "etc/2025/03/20250307_070501_a1b2c3d4.png"},
		{name: "inner segments joined", category: "Evening Wear/../x", filename: "a.png", want: "evening-wear-x/2025/03/20250307_070501_a1b2c3d4.png"},
		{name: "only punctuation", category: "./..", filename: "a.png", want: "general/2025/03/20250307_070501_a1b2c3d4.png"},
		{name: "extension cleaned", category: "dress", filename: "a.p/n g", want: "dress/2025/03/20250307_070501_a1b2c3d4.jpg"},
		{name: "kept characters", category: "summer_2025-sale", filename: "a.PNG", want: "summer_2025-sale/2025/03/20250307_070501_a1b2c3d4.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Generate(tt.category, tt.filename))
		})
	}
}
