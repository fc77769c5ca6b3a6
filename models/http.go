package models

// SignUpRequest is the JSON body accepted by POST /users/signup.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body accepted by POST /users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateContactRequest is the JSON body accepted by POST /contacts.
// The owner is taken from the authenticated request context, never from
// the body.
type CreateContactRequest struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// UserResponse is the public projection of a user account.
// It deliberately omits the ID and any credential material.
type UserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is returned by signup and login: the public user projection
// plus a freshly issued bearer token.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// MessageResponse is the generic `{"message": "..."}` payload used for
// confirmations and error bodies.
type MessageResponse struct {
	Message string `json:"message"`
}

// DeleteContactResponse confirms a contact deletion by echoing the
// deleted row's identifier.
type DeleteContactResponse struct {
	ID int64 `json:"id"`
}

// RootResponse is the static payload of GET /.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// HealthResponse is the static payload of GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
