package models

// SocialLinks holds the optional social media URLs shown on the site.
type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty"`
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Medium   string `json:"medium,omitempty"`
}

// Profile is the site owner's personal information. At most one row
// exists; updates create it if absent.
type Profile struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Title        string      `json:"title"`
	Bio          string      `json:"bio"`
	Avatar       string      `json:"avatar"`
	Email        string      `json:"email"`
	Location     string      `json:"location"`
	WorkingHours *string     `json:"workingHours"`
	SocialLinks  SocialLinks `json:"socialLinks"`
}

// ProfileInput is the insert shape for the profile upsert.
type ProfileInput struct {
	Name         string      `json:"name"`
	Title        string      `json:"title"`
	Bio          string      `json:"bio"`
	Avatar       string      `json:"avatar"`
	Email        string      `json:"email"`
	Location     string      `json:"location"`
	WorkingHours *string     `json:"workingHours"`
	SocialLinks  SocialLinks `json:"socialLinks"`
}
