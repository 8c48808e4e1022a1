package models

// SignupRequest represents the request body for customer signup.
// Password is a pointer so an absent field can be told apart from an empty one.
type SignupRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Password  *string `json:"password"`
	Firstname *string `json:"firstname,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
}

// LoginRequest represents the request body for customer login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
