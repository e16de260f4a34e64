// Package models defines the wire types exchanged with the job tracker API.
package models

// UserProfile is the authenticated user's profile as returned by the server.
// The session layer treats it as opaque beyond storage and display.
type UserProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Skills   string `json:"skills,omitempty"`
}

// AuthResponse is the body returned by the login and register endpoints.
// User is a pointer so a response missing it can be told apart from an
// empty profile.
type AuthResponse struct {
	Access  string       `json:"access"`
	User    *UserProfile `json:"user"`
	Message string       `json:"message,omitempty"`
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Skills   string `json:"skills"`
}
