package blogs

import (
	"math"
	"strconv"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxPage keeps (page-1)*size from overflowing for every allowed size.
	MaxPage = math.MaxInt / MaxPageSize
)

// SearchFields are the text fields a search term is matched against.
var SearchFields = []string{"title", "short_description", "long_description"}

// ListQuery is the store independent form of a blog listing request.
type ListQuery struct {
	Page   int
	Size   int
	Filter string
	Search string
}

// NewListQuery clamps paging: page below 1 becomes 1, page above MaxPage becomes
// MaxPage, size below 1 becomes the default and size above MaxPageSize becomes
// MaxPageSize.
func NewListQuery(page, size int, filter, search string) ListQuery {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return ListQuery{
		Page:   page,
		Size:   size,
		Filter: filter,
		Search: search,
	}
}

func (q ListQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.Size)
}

func (q ListQuery) Limit() int64 {
	return int64(q.Size)
}

func (q ListQuery) HasFilter() bool {
	return q.Filter != ""
}

func (q ListQuery) HasSearch() bool {
	return q.Search != ""
}

// ParseIntOrDefault returns def for an absent, non-numeric or zero value.
func ParseIntOrDefault(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n == 0 {
		return def
	}
	return n
}
