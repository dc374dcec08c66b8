// Package models defines the data structures that map to database tables
// and the insert shapes accepted as client input. Insert shapes exclude
// server-assigned fields (id, createdAt).
package models

// User is an admin account. Only used to gate the admin API.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash, never serialized
}

// Credentials is the request body for register and login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
