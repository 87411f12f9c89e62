package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default) and explicit false.
type GenerateRequest struct {
	Length           int    `json:"length"`
	Preset           string `json:"preset,omitempty"`
	Count            int    `json:"count,omitempty"`
	Lowercase        *bool  `json:"lowercase"`
	Uppercase        *bool  `json:"uppercase"`
	Digits           *bool  `json:"digits"`
	Symbols          *bool  `json:"symbols"`
	ExcludeAmbiguous *bool  `json:"exclude_ambiguous"`
}

// GenerateResponse represents a password generation response.
// Password is the first entry of Passwords.
type GenerateResponse struct {
	Password         string   `json:"password"`
	Passwords        []string `json:"passwords"`
	Length           int      `json:"length"`
	PoolSize         int      `json:"pool_size"`
	Entropy          float64  `json:"entropy_bits"`
	Strength         string   `json:"strength"`
	Summary          string   `json:"summary"`
	AmbiguousRemoved int      `json:"ambiguous_removed"`
}

// Preset is a named quick-pick password length.
type Preset struct {
	Name   string `json:"name"`
	Length int    `json:"length"`
}
