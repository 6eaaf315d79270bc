package blogs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewListQuery_Clamping(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		size     int
		wantPage int
		wantSize int
	}{
		{"defaults kept", 1, 10, 1, 10},
		{"zero page", 0, 5, 1, 5},
		{"negative page", -3, 5, 1, 5},
		{"zero size", 2, 0, 2, DefaultPageSize},
		{"negative size", 2, -1, 2, DefaultPageSize},
		{"size above max", 1, 1000, 1, MaxPageSize},
		{"size at max", 1, MaxPageSize, 1, MaxPageSize},
		{"page above max", math.MaxInt, 10, MaxPage, 10},
		{"page at max", MaxPage, MaxPageSize, MaxPage, MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewListQuery(tt.page, tt.size, "", "")
			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantSize, q.Size)
		})
	}
}

func TestListQuery_SkipLimit(t *testing.T) {
	q := NewListQuery(3, 7, "", "")

	assert.Equal(t, int64(14), q.Skip())
	assert.Equal(t, int64(7), q.Limit())

	first := NewListQuery(1, 10, "", "")
	assert.Equal(t, int64(0), first.Skip())
}

func TestListQuery_SkipNeverNegative(t *testing.T) {
	for _, size := range []int{1, DefaultPageSize, MaxPageSize, math.MaxInt} {
		q := NewListQuery(math.MaxInt, size, "", "")
		assert.GreaterOrEqual(t, q.Skip(), int64(0), "size %d", size)
	}
}

func TestListQuery_FilterAndSearchFlags(t *testing.T) {
	q := NewListQuery(1, 10, "", "")
	assert.False(t, q.HasFilter())
	assert.False(t, q.HasSearch())

	q = NewListQuery(1, 10, "Go", "fiber")
	assert.True(t, q.HasFilter())
	assert.True(t, q.HasSearch())
	assert.Equal(t, "Go", q.Filter)
	assert.Equal(t, "fiber", q.Search)
}

func TestParseIntOrDefault(t *testing.T) {
	assert.Equal(t, 4, ParseIntOrDefault("4", 1))
	assert.Equal(t, 1, ParseIntOrDefault("", 1))
	assert.Equal(t, 10, ParseIntOrDefault("ten", 10))
	assert.Equal(t, 10, ParseIntOrDefault("0", 10))
	assert.Equal(t, -2, ParseIntOrDefault("-2", 10))

	// negatives are clamped afterwards
	q := NewListQuery(ParseIntOrDefault("-2", DefaultPage), ParseIntOrDefault("abc", DefaultPageSize), "", "")
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultPageSize, q.Size)
}
