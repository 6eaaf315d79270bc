package comments

import "TechTalks/internal/entity"

type CreateCommentRequest struct {
	BlogID    string `json:"blog_Id"`
	Text      string `json:"text"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserImage string `json:"user_image"`
}

func (r CreateCommentRequest) ToEntity() entity.Comment {
	return entity.Comment{
		BlogID:    r.BlogID,
		Text:      r.Text,
		UserName:  r.UserName,
		UserEmail: r.UserEmail,
		UserImage: r.UserImage,
	}
}

type BlogIDParam struct {
	BlogID string `validate:"required"`
}
