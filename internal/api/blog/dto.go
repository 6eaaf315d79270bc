package blogs

import "TechTalks/internal/entity"

type CreateBlogRequest struct {
	Title            string `json:"title"`
	Image            string `json:"image"`
	Category         string `json:"category"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
}

func (r CreateBlogRequest) ToEntity() entity.Blog {
	return entity.Blog{
		Title:            r.Title,
		Image:            r.Image,
		Category:         r.Category,
		ShortDescription: r.ShortDescription,
		LongDescription:  r.LongDescription,
	}
}

// UpdateBlogRequest uses the updated_* names the blog editor sends.
type UpdateBlogRequest struct {
	UpdatedTitle            *string `json:"updated_title"`
	UpdatedImage            *string `json:"updated_image"`
	UpdatedCategory         *string `json:"updated_category"`
	UpdatedShortDescription *string `json:"updated_short_description"`
	UpdatedLongDescription  *string `json:"updated_long_description"`
}

func (r UpdateBlogRequest) ToEntity() entity.BlogUpdate {
	return entity.BlogUpdate{
		Title:            r.UpdatedTitle,
		Image:            r.UpdatedImage,
		Category:         r.UpdatedCategory,
		ShortDescription: r.UpdatedShortDescription,
		LongDescription:  r.UpdatedLongDescription,
	}
}

type BlogIDParam struct {
	ID string `validate:"required"`
}

// ListBlogsRequest holds the raw listing params. Filter and search are taken
// as sent, any length.
type ListBlogsRequest struct {
	Page   string
	Size   string
	Filter string
	Search string
}

type BlogListResponse struct {
	Blogs []entity.Blog `json:"blogs"`
	Count int64         `json:"count"`
}

type CategoryListResponse struct {
	Categories []string `json:"categories"`
}
