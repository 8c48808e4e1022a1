package models

import "time"

// LoginResponseDTO carries the bearer token and its lifetime in seconds
type LoginResponseDTO struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

type SignupResponseDTO struct {
	Message string `json:"message"`
}

// CustomerInfoDTO is the public view of the authenticated customer
type CustomerInfoDTO struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Firstname *string   `json:"firstname,omitempty"`
	Lastname  *string   `json:"lastname,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type GenericResponseDTO struct {
	Message string `json:"message"`
	Extra   any    `json:"extra,omitempty"`
}
