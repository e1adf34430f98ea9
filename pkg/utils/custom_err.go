package utils

import "errors"

var (
	ErrInvalidShape       = errors.New("AI response has an invalid shape")
	ErrValidation         = errors.New("validation error")
	ErrDatabaseError      = errors.New("database error")
	ErrTripNotFound       = errors.New("trip not found")
	ErrPlaceNotFound      = errors.New("place not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMapsUnavailable    = errors.New("maps service not configured")
)
