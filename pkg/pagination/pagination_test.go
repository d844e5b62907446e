package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"valid values pass through", 3, 25, 3, 25},
		{"zero page falls back", 0, 25, 1, 25},
		{"negative page falls back", -4, 25, 1, 25},
		{"zero limit falls back", 2, 0, 2, 10},
		{"negative limit falls back", 2, -1, 2, 10},
		{"limit above cap falls back", 2, 101, 2, 10},
		{"limit at cap passes through", 2, 100, 2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := Normalize(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 45, Offset(4, 15))
}

func TestNewDescriptor(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		page      int
		limit     int
		wantPages int
	}{
		{"exact multiple", 30, 1, 10, 3},
		{"partial last page", 31, 1, 10, 4},
		{"single item", 1, 1, 10, 1},
		{"empty result has zero pages", 0, 1, 10, 0},
		{"total below limit", 7, 2, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDescriptor(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.wantPages, d.Pages)
			assert.Equal(t, tt.total, d.Total)
			assert.Equal(t, tt.page, d.Page)
			assert.Equal(t, tt.limit, d.Limit)
		})
	}
}
