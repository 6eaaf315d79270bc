package blogRepository

import (
	"testing"

	"TechTalks/internal/api/blog"
	"github.com/stretchr/testify/assert"
)

func TestBuildListWhere_NoPredicate(t *testing.T) {
	where, args := buildListWhere(blogs.NewListQuery(1, 10, "", ""))

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildListWhere_Filter(t *testing.T) {
	where, args := buildListWhere(blogs.NewListQuery(1, 10, "DevOps", ""))

	assert.Equal(t, "WHERE category = :category", where)
	assert.Equal(t, map[string]interface{}{"category": "DevOps"}, args)
}

func TestBuildListWhere_FilterAndSearch(t *testing.T) {
	where, args := buildListWhere(blogs.NewListQuery(1, 10, "DevOps", "k8s"))

	assert.Equal(t,
		"WHERE category = :category AND (title ILIKE :pattern OR short_description ILIKE :pattern OR long_description ILIKE :pattern)",
		where,
	)
	assert.Equal(t, "DevOps", args["category"])
	assert.Equal(t, "%k8s%", args["pattern"])
}

func TestBuildListWhere_EscapesWildcards(t *testing.T) {
	_, args := buildListWhere(blogs.NewListQuery(1, 10, "", `50%_off\`))

	assert.Equal(t, `%50\%\_off\\%`, args["pattern"])
}
