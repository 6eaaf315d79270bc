package blogRepository

import (
	"testing"

	"TechTalks/internal/api/blog"
	"TechTalks/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildBlogFilter_Empty(t *testing.T) {
	filter := buildBlogFilter(blogs.NewListQuery(1, 10, "", ""))
	assert.Empty(t, filter)
}

func TestBuildBlogFilter_CategoryOnly(t *testing.T) {
	filter := buildBlogFilter(blogs.NewListQuery(1, 10, "Backend", ""))

	assert.Equal(t, bson.M{"category": "Backend"}, filter)
}

func TestBuildBlogFilter_SearchMatchesAnyTextField(t *testing.T) {
	filter := buildBlogFilter(blogs.NewListQuery(1, 10, "", "go"))

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, len(blogs.SearchFields))

	for i, field := range blogs.SearchFields {
		assert.Equal(t, bson.M{field: bson.M{"$regex": "go", "$options": "i"}}, or[i])
	}
	assert.NotContains(t, filter, "category")
}

func TestBuildBlogFilter_SearchIsLiteral(t *testing.T) {
	filter := buildBlogFilter(blogs.NewListQuery(1, 10, "", "c++ (intro)"))

	or := filter["$or"].(bson.A)
	clause := or[0].(bson.M)["title"].(bson.M)
	assert.Equal(t, `c\+\+ \(intro\)`, clause["$regex"])
}

func TestBuildBlogFilter_FilterAndSearch(t *testing.T) {
	filter := buildBlogFilter(blogs.NewListQuery(2, 5, "Frontend", "react"))

	assert.Equal(t, "Frontend", filter["category"])
	assert.Len(t, filter["$or"], len(blogs.SearchFields))
}

func TestBuildBlogSet_OnlyProvidedFields(t *testing.T) {
	title := "New title"
	image := ""

	set := buildBlogSet(entity.BlogUpdate{Title: &title, Image: &image})

	assert.Equal(t, bson.M{"title": "New title", "image": ""}, set)
}
