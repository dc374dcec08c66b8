package models

import "time"

// Book is a recommended book shown in the reading section.
type Book struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Description   string    `json:"description"`
	CoverImage    string    `json:"coverImage"`
	SummaryLink   *string   `json:"summaryLink"`
	PublishedYear *int      `json:"publishedYear"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BookInput is the insert shape for books. Tags may arrive either as an
// array or as a comma-separated TagsInput string from the admin form.
type BookInput struct {
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Description   string   `json:"description"`
	CoverImage    string   `json:"coverImage"`
	SummaryLink   *string  `json:"summaryLink"`
	PublishedYear *int     `json:"publishedYear"`
	Tags          []string `json:"tags"`
	TagsInput     string   `json:"tagsInput,omitempty"`
}
