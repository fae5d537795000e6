package api

import "cdn-manager/core/faults"

// Config holds configuration for the StrikeTracker API client.
type Config struct {
	// BaseURL is the StrikeTracker API root.
	BaseURL string `mapstructure:"base_url" default:"https://striketracker.highwinds.com"`
	// Account is the account hash every account-scoped call is made against.
	Account string `mapstructure:"account" default:""`
	// Token is a pre-issued bearer token. Mutually exclusive with Username.
	Token string `mapstructure:"token" default:""`
	// Username is the login used for the password grant.
	Username string `mapstructure:"username" default:""`
	// Password is the password used for the password grant.
	Password string `mapstructure:"password" default:""`
	// ApplicationID is sent as X-Application-Id on every request.
	ApplicationID string `mapstructure:"application_id" default:"cdn-manager"`
	// TimeoutSeconds bounds connection setup and the wait for response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RequestsPerSecond caps the request rate. Zero disables the limiter.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"0"`
}

// Validate checks the credential combination before any network call is made.
func (c Config) Validate() error {
	if c.Token != "" && c.Username != "" {
		return faults.Configuration("token and username are mutually exclusive")
	}
	if c.Token == "" && c.Username == "" {
		return faults.Configuration("an API token or a username and password are required")
	}
	if c.Username != "" && c.Password == "" {
		return faults.Configuration("username requires a password")
	}
	return nil
}
