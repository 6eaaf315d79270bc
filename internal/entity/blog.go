package entity

import "time"

type Blog struct {
	ID               string    `json:"_id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Image            string    `json:"image" db:"image"`
	Category         string    `json:"category" db:"category"`
	ShortDescription string    `json:"short_description" db:"short_description"`
	LongDescription  string    `json:"long_description" db:"long_description"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// BlogUpdate holds the fields of a partial update. Nil fields are left as stored.
type BlogUpdate struct {
	Title            *string
	Image            *string
	Category         *string
	ShortDescription *string
	LongDescription  *string
}

func (u BlogUpdate) IsEmpty() bool {
	return u.Title == nil && u.Image == nil && u.Category == nil &&
		u.ShortDescription == nil && u.LongDescription == nil
}

// Apply copies the set fields onto b.
func (u BlogUpdate) Apply(b *Blog) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Image != nil {
		b.Image = *u.Image
	}
	if u.Category != nil {
		b.Category = *u.Category
	}
	if u.ShortDescription != nil {
		b.ShortDescription = *u.ShortDescription
	}
	if u.LongDescription != nil {
		b.LongDescription = *u.LongDescription
	}
}
