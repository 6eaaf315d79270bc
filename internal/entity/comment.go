package entity

import "time"

type Comment struct {
	ID        string    `json:"_id" db:"id"`
	BlogID    string    `json:"blog_Id" db:"blog_id"`
	Text      string    `json:"text" db:"text"`
	UserName  string    `json:"user_name,omitempty" db:"user_name"`
	UserEmail string    `json:"user_email,omitempty" db:"user_email"`
	UserImage string    `json:"user_image,omitempty" db:"user_image"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
