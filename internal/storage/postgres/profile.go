package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"portfolio/internal/models"
)

// GetProfile returns the singleton profile row, or nil if none exists yet.
func (s *Store) GetProfile() (*models.Profile, error) {
	p := &models.Profile{}
	var links []byte
	err := s.db.QueryRow(`
		SELECT id, name, title, bio, avatar, email, location, working_hours, social_links
		FROM profile
		ORDER BY id
		LIMIT 1
	`).Scan(&p.ID, &p.Name, &p.Title, &p.Bio, &p.Avatar, &p.Email, &p.Location, &p.WorkingHours, &links)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if len(links) > 0 {
		if err := json.Unmarshal(links, &p.SocialLinks); err != nil {
			return nil, fmt.Errorf("unmarshal social links: %w", err)
		}
	}
	return p, nil
}

// UpdateProfile upserts the singleton profile. The row id is fixed at 1
// and the insert-or-update is a single statement, so concurrent first
// writes cannot leave a second row behind.
func (s *Store) UpdateProfile(in *models.ProfileInput) (*models.Profile, error) {
	links, err := json.Marshal(in.SocialLinks)
	if err != nil {
		return nil, fmt.Errorf("marshal social links: %w", err)
	}

	p := &models.Profile{}
	var rawLinks []byte
	err = s.db.QueryRow(`
		INSERT INTO profile (id, name, title, bio, avatar, email, location, working_hours, social_links)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			title = EXCLUDED.title,
			bio = EXCLUDED.bio,
			avatar = EXCLUDED.avatar,
			email = EXCLUDED.email,
			location = EXCLUDED.location,
			working_hours = EXCLUDED.working_hours,
			social_links = EXCLUDED.social_links
		RETURNING id, name, title, bio, avatar, email, location, working_hours, social_links
	`, in.Name, in.Title, in.Bio, in.Avatar, in.Email, in.Location, in.WorkingHours, links).Scan(
		&p.ID, &p.Name, &p.Title, &p.Bio, &p.Avatar, &p.Email, &p.Location, &p.WorkingHours, &rawLinks,
	)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if len(rawLinks) > 0 {
		if err := json.Unmarshal(rawLinks, &p.SocialLinks); err != nil {
			return nil, fmt.Errorf("unmarshal social links: %w", err)
		}
	}
	return p, nil
}
