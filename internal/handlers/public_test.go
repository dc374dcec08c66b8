// public_test.go covers the public read endpoints and the contact form.
package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"portfolio/internal/models"
)

// TestProfile_NotSeeded verifies the 404 when no profile exists yet.
func TestProfile_NotSeeded(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/profile", nil, nil)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
	var body errorBody
	decodeBody(t, rec, &body)
	if body.Message != "Profile not found" {
		t.Errorf("message: got %q", body.Message)
	}
}

// TestProfile_Returned verifies the profile read after an upsert.
func TestProfile_Returned(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.Store.UpdateProfile(&models.ProfileInput{
		Name: "John Doe", Title: "Engineer", Bio: "b", Avatar: "a",
		Email: "hello@johndoe.com", Location: "SF",
		SocialLinks: models.SocialLinks{GitHub: "https://github.com/johndoe"},
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	rec := env.do(t, http.MethodGet, "/api/profile", nil, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var got models.Profile
	decodeBody(t, rec, &got)
	if got.Name != "John Doe" || got.SocialLinks.GitHub != "https://github.com/johndoe" {
		t.Errorf("profile: got %+v", got)
	}
}

// TestBooks_EmptyList verifies that an empty table serializes as [] and
// not null.
func TestBooks_EmptyList(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/books", nil, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body: got %q, want []", got)
	}
}

// TestBook_ByID covers the single-book read and both failure shapes:
// non-numeric id is a 400, unknown id is a 404.
func TestBook_ByID(t *testing.T) {
	env := newTestEnv(t)
	created, err := env.Store.CreateBook(&models.BookInput{
		Title: "Atomic Habits", Author: "James Clear", Description: "d", CoverImage: "c",
		Tags: []string{"Productivity"},
	})
	if err != nil {
		t.Fatalf("seed book: %v", err)
	}

	rec := env.do(t, http.MethodGet, "/api/books/1", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var got models.Book
	decodeBody(t, rec, &got)
	if got.ID != created.ID || got.Title != "Atomic Habits" {
		t.Errorf("book: got %+v", got)
	}

	rec = env.do(t, http.MethodGet, "/api/books/abc", nil, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad id status: got %d, want 400", rec.Code)
	}
	var body errorBody
	decodeBody(t, rec, &body)
	if body.Message != "Invalid book ID" {
		t.Errorf("bad id message: got %q", body.Message)
	}

	rec = env.do(t, http.MethodGet, "/api/books/999", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing status: got %d, want 404", rec.Code)
	}
	decodeBody(t, rec, &body)
	if body.Message != "Book not found" {
		t.Errorf("missing message: got %q", body.Message)
	}
}

// TestEvent_ByID covers the event read failure shapes.
func TestEvent_ByID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/events/xyz", nil, nil)
	var body errorBody
	decodeBody(t, rec, &body)
	if rec.Code != http.StatusBadRequest || body.Message != "Invalid event ID" {
		t.Errorf("got %d %q", rec.Code, body.Message)
	}

	rec = env.do(t, http.MethodGet, "/api/events/1", nil, nil)
	decodeBody(t, rec, &body)
	if rec.Code != http.StatusNotFound || body.Message != "Event not found" {
		t.Errorf("got %d %q", rec.Code, body.Message)
	}
}

// TestBlogs_RenderedContent verifies that blog reads carry the Markdown
// source and the rendered contentHtml side by side.
func TestBlogs_RenderedContent(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.Store.CreateBlog(&models.BlogInput{
		Title: "Post", Excerpt: "e", Content: "# Heading\n\nBody text.",
		CoverImage: "c", Category: "Tech", Date: "August 15, 2023",
	}); err != nil {
		t.Fatalf("seed blog: %v", err)
	}

	rec := env.do(t, http.MethodGet, "/api/blogs/1", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var got struct {
		Content     string `json:"content"`
		ContentHTML string `json:"contentHtml"`
	}
	decodeBody(t, rec, &got)
	if got.Content != "# Heading\n\nBody text." {
		t.Errorf("content: got %q", got.Content)
	}
	if !strings.Contains(got.ContentHTML, "<h1") || !strings.Contains(got.ContentHTML, "Heading") {
		t.Errorf("contentHtml not rendered: got %q", got.ContentHTML)
	}

	rec = env.do(t, http.MethodGet, "/api/blogs", nil, nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "contentHtml") {
		t.Errorf("list missing contentHtml: %d %s", rec.Code, rec.Body.String())
	}
}

// TestProjects_List verifies the project list read.
func TestProjects_List(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.Store.CreateProject(&models.ProjectInput{
		Title: "Task Manager", Description: "d", CoverImage: "c",
		Tags: []string{"React"}, Featured: true,
	}); err != nil {
		t.Fatalf("seed project: %v", err)
	}

	rec := env.do(t, http.MethodGet, "/api/projects", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var got []models.Project
	decodeBody(t, rec, &got)
	if len(got) != 1 || !got[0].Featured || got[0].Tags[0] != "React" {
		t.Errorf("projects: got %+v", got)
	}
}

// TestContact_Success verifies the submission flow and the exact success
// message.
func TestContact_Success(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Jane",
		"email":   "jane@example.com",
		"subject": "Speaking inquiry",
		"message": "Would you be available for a talk next month?",
	}, nil)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var got struct {
		Message string `json:"message"`
		ID      int    `json:"id"`
	}
	decodeBody(t, rec, &got)
	if got.Message != "Thank you for your message! I'll get back to you soon." {
		t.Errorf("message: got %q", got.Message)
	}
	if got.ID != 1 {
		t.Errorf("id: got %d, want 1", got.ID)
	}
	if n := env.Store.ContactMessageCount(); n != 1 {
		t.Errorf("stored messages: got %d, want 1", n)
	}
}

// TestContact_ValidationFailure verifies that every failing field is
// listed and nothing is stored.
func TestContact_ValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/contact", map[string]string{
		"name":    "J",
		"email":   "nope",
		"subject": "Hi",
		"message": "Short",
	}, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}
	var body errorBody
	decodeBody(t, rec, &body)
	if body.Message != "Validation failed" {
		t.Errorf("message: got %q", body.Message)
	}
	if len(body.Errors) != 4 {
		t.Errorf("field errors: got %d, want 4 (%v)", len(body.Errors), body.Errors)
	}
	if n := env.Store.ContactMessageCount(); n != 0 {
		t.Errorf("stored messages after invalid submit: got %d, want 0", n)
	}
}

// TestContact_MalformedBody verifies the 400 on undecodable JSON.
func TestContact_MalformedBody(t *testing.T) {
	env := newTestEnv(t)

	// A JSON string is not decodable into the contact input struct.
	rec := env.do(t, http.MethodPost, "/api/contact", "not an object", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
	var body errorBody
	decodeBody(t, rec, &body)
	if body.Message != "Invalid request body" {
		t.Errorf("message: got %q", body.Message)
	}
}

// TestHealth verifies the health check endpoint.
func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", nil, nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("got %d %s", rec.Code, rec.Body.String())
	}
}
