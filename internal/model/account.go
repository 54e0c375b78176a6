package model

import "time"

// Provider represents the activity source provider type
type Provider string

const (
	ProviderGitLab Provider = "gitlab"
	ProviderGitHub Provider = "github"
)

// Account is one configured provider account to discover activity from.
// A GitLab account points at an instance (cloud or self-hosted) plus a
// personal access token for the user whose activity is aggregated.
type Account struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Provider    Provider  `json:"provider"`
	BaseURL     string    `json:"base_url"`
	Token       string    `json:"-"` // never expose tokens in API
	Description *string   `json:"description,omitempty"`
	IsEnabled   bool      `json:"is_enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
