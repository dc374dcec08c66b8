package models

import "time"

// Blog is a blog post. Content is stored as authored (Markdown or raw
// HTML); the public API additionally serves it rendered to HTML.
// Blogs carry no tags; the admin form's tagsInput is discarded.
type Blog struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt"`
	Content    string    `json:"content"`
	CoverImage string    `json:"coverImage"`
	Category   string    `json:"category"`
	Date       string    `json:"date"`
	Link       *string   `json:"link"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BlogInput is the insert shape for blog posts.
type BlogInput struct {
	Title      string  `json:"title"`
	Excerpt    string  `json:"excerpt"`
	Content    string  `json:"content"`
	CoverImage string  `json:"coverImage"`
	Category   string  `json:"category"`
	Date       string  `json:"date"`
	Link       *string `json:"link"`
	TagsInput  string  `json:"tagsInput,omitempty"` // accepted from the admin form, ignored
}
