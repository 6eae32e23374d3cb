package dto

// UpdateCoachProfileRequest represents coach profile update data. Website,
// when present, must be a well-formed http(s) URL; offering meeting links are
// not held to the same rule.
type UpdateCoachProfileRequest struct {
	Headline string `json:"headline"`
	Bio      string `json:"bio"`
	Website  string `json:"website"`
}

// CoachSummary is the marketplace listing entry for a coach
type CoachSummary struct {
	ID              int64   `json:"id"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Headline        string  `json:"headline"`
	ProfilePhotoURL *string `json:"profilePhotoUrl,omitempty"`
	OfferingCount   int     `json:"offeringCount"`
}
