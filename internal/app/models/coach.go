package models

import "time"

// CoachProfile defines the coach profile model based on the 'coach_profiles' table.
// The Offerings slice carries the coach's bookable session offerings and is what
// clients treat as the source of truth after every mutation.
type CoachProfile struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Headline  string    `json:"headline" db:"headline"`
	Bio       string    `json:"bio" db:"bio"`
	Website   *string   `json:"website,omitempty" db:"website"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	User      *User              `json:"user,omitempty"`     // Relation, no db tag
	Offerings []*SessionOffering `json:"sessions,omitempty"` // Relation, no db tag
}
