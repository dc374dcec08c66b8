// Package validate defines the input contracts for every entity. The same
// rules are enforced here that the admin and contact forms apply in the
// browser, so client and server never diverge. Each validator returns the
// full list of failing fields, never just the first.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"portfolio/internal/models"
)

// Minimum lengths for the contact form.
const (
	minContactName    = 2
	minContactSubject = 5
	minContactMessage = 10
)

// emailRe is a permissive email shape check: something@something.tld.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError names a single failing field with a human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the list of field errors produced by a validator. A nil or
// empty list means the input is valid.
type Errors []FieldError

// Error joins all field messages, making Errors usable as an error value.
func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(msgs, "; ")
}

// add appends a field error.
func (e *Errors) add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// requireText adds an error when value is empty or whitespace-only.
func (e *Errors) requireText(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.add(field, fmt.Sprintf("%s is required", field))
	}
}

// requireEmail adds an error when value is not a plausible email address.
func (e *Errors) requireEmail(field, value string) {
	if !emailRe.MatchString(strings.TrimSpace(value)) {
		e.add(field, "must be a valid email address")
	}
}

// requireMinLen adds an error when the trimmed value is shorter than min runes.
func (e *Errors) requireMinLen(field, value string, min int) {
	if len([]rune(strings.TrimSpace(value))) < min {
		e.add(field, fmt.Sprintf("must be at least %d characters", min))
	}
}

// Book validates the book insert shape.
func Book(in *models.BookInput) Errors {
	var errs Errors
	errs.requireText("title", in.Title)
	errs.requireText("author", in.Author)
	errs.requireText("description", in.Description)
	errs.requireText("coverImage", in.CoverImage)
	return errs
}

// Event validates the event insert shape.
func Event(in *models.EventInput) Errors {
	var errs Errors
	errs.requireText("title", in.Title)
	errs.requireText("description", in.Description)
	errs.requireText("date", in.Date)
	errs.requireText("location", in.Location)
	return errs
}

// Blog validates the blog insert shape.
func Blog(in *models.BlogInput) Errors {
	var errs Errors
	errs.requireText("title", in.Title)
	errs.requireText("excerpt", in.Excerpt)
	errs.requireText("content", in.Content)
	errs.requireText("coverImage", in.CoverImage)
	errs.requireText("category", in.Category)
	errs.requireText("date", in.Date)
	return errs
}

// Project validates the project insert shape.
func Project(in *models.ProjectInput) Errors {
	var errs Errors
	errs.requireText("title", in.Title)
	errs.requireText("description", in.Description)
	errs.requireText("coverImage", in.CoverImage)
	return errs
}

// Profile validates the profile insert shape.
func Profile(in *models.ProfileInput) Errors {
	var errs Errors
	errs.requireText("name", in.Name)
	errs.requireText("title", in.Title)
	errs.requireText("bio", in.Bio)
	errs.requireText("avatar", in.Avatar)
	errs.requireEmail("email", in.Email)
	errs.requireText("location", in.Location)
	return errs
}

// Contact validates a contact form submission.
func Contact(in *models.ContactInput) Errors {
	var errs Errors
	errs.requireMinLen("name", in.Name, minContactName)
	errs.requireEmail("email", in.Email)
	errs.requireMinLen("subject", in.Subject, minContactSubject)
	errs.requireMinLen("message", in.Message, minContactMessage)
	return errs
}

// Credentials validates a register or login request body.
func Credentials(in *models.Credentials) Errors {
	var errs Errors
	errs.requireText("username", in.Username)
	errs.requireText("password", in.Password)
	return errs
}
