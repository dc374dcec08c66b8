package models

import "time"

// Project is a portfolio project card.
type Project struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CoverImage  string    `json:"coverImage"`
	Tags        []string  `json:"tags"`
	DemoLink    *string   `json:"demoLink"`
	CodeLink    *string   `json:"codeLink"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProjectInput is the insert shape for projects.
type ProjectInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CoverImage  string   `json:"coverImage"`
	Tags        []string `json:"tags"`
	TagsInput   string   `json:"tagsInput,omitempty"`
	DemoLink    *string  `json:"demoLink"`
	CodeLink    *string  `json:"codeLink"`
	Featured    bool     `json:"featured"`
}
