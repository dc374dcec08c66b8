package models

import "time"

// Event is a conference, talk, or meetup appearance. The date is free
// text ("June 2023") rather than a timestamp.
type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Location    string    `json:"location"`
	Tags        []string  `json:"tags"`
	Link        *string   `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EventInput is the insert shape for events.
type EventInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Tags        []string `json:"tags"`
	TagsInput   string   `json:"tagsInput,omitempty"`
	Link        *string  `json:"link"`
}
