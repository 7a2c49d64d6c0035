package entity

import "time"

// Settings is the single row of integration configuration, edited from the admin panel.
type Settings struct {
	CompletionAPIKey string       `json:"completion_api_key"`
	CompletionModel  string       `json:"completion_model"`
	SystemPrompt     string       `json:"system_prompt"`
	GatewayURL       string       `json:"gateway_url"`
	GatewayAPIKey    string       `json:"gateway_api_key"`
	GatewayInstance  string       `json:"gateway_instance"`
	AdminPhone       string       `json:"admin_phone"`
	Active           bool         `json:"active"`
	OpeningHours     OpeningHours `json:"opening_hours"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// OpeningHours is the weekly schedule. Days is keyed by lowercase English weekday ("monday").
type OpeningHours struct {
	Timezone string                 `json:"timezone"`
	Days     map[string]DaySchedule `json:"days"`
}

// DaySchedule holds "HH:MM" bounds. Close earlier than Open means the shift ends after midnight.
type DaySchedule struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// GatewayCredentials groups what the messaging gateway needs for one call.
type GatewayCredentials struct {
	BaseURL  string
	APIKey   string
	Instance string
}

// CompletionCredentials groups what the completion engine needs for one call.
type CompletionCredentials struct {
	APIKey string
	Model  string
}

// Gateway returns the messaging gateway credentials.
func (s *Settings) Gateway() GatewayCredentials {
	return GatewayCredentials{BaseURL: s.GatewayURL, APIKey: s.GatewayAPIKey, Instance: s.GatewayInstance}
}

// Completion returns the completion engine credentials.
func (s *Settings) Completion() CompletionCredentials {
	return CompletionCredentials{APIKey: s.CompletionAPIKey, Model: s.CompletionModel}
}

// HasGateway reports whether outbound messaging is configured.
func (s *Settings) HasGateway() bool {
	return s.GatewayURL != "" && s.GatewayInstance != ""
}
