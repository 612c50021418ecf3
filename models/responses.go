package models

// MessageResponse is the generic single-message response body used for
// successful registrations and for auth rejections (401/403).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorsResponse carries one or more request-level error messages.
// Returned with HTTP 400 for validation failures, duplicate usernames,
// and invalid credentials.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// TokenResponse is the successful login response body.
type TokenResponse struct {
	Token string `json:"token"`
}

// ProfileResponse is the body of GET /profile: the identity resolved from
// the presented bearer token.
type ProfileResponse struct {
	Username string `json:"username"`
}
