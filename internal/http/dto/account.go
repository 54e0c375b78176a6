package dto

type CreateAccountRequest struct {
	Name        string  `json:"name" binding:"required"`
	Provider    string  `json:"provider" binding:"required"`
	BaseURL     string  `json:"base_url,omitempty"`
	Token       string  `json:"token" binding:"required"`
	Description *string `json:"description,omitempty"`
}

type SetAccountEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type TestConnectionResponse struct {
	Connected bool   `json:"connected"`
	Username  string `json:"username,omitempty"`
	Name      string `json:"name,omitempty"`
	Error     string `json:"error,omitempty"`
}
