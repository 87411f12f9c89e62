package model

import "time"

// Profile is a named set of generator options saved by a user.
type Profile struct {
	ID               int64
	UserID           int64
	Name             string
	Length           int
	Lowercase        bool
	Uppercase        bool
	Digits           bool
	Symbols          bool
	ExcludeAmbiguous bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ProfileRequest represents a create or update of a profile.
type ProfileRequest struct {
	Name             string `json:"name"`
	Length           int    `json:"length"`
	Lowercase        *bool  `json:"lowercase"`
	Uppercase        *bool  `json:"uppercase"`
	Digits           *bool  `json:"digits"`
	Symbols          *bool  `json:"symbols"`
	ExcludeAmbiguous *bool  `json:"exclude_ambiguous"`
}

// ProfileResponse is the API view of a profile.
type ProfileResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Length           int       `json:"length"`
	Lowercase        bool      `json:"lowercase"`
	Uppercase        bool      `json:"uppercase"`
	Digits           bool      `json:"digits"`
	Symbols          bool      `json:"symbols"`
	ExcludeAmbiguous bool      `json:"exclude_ambiguous"`
	UpdatedAt        time.Time `json:"updated_at"`
}
