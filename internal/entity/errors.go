package entity

import "errors"

var (
	// Session errors
	ErrSessionAbsent = errors.New("no active session")

	// Booking errors
	ErrInvalidTransition = errors.New("booking status transition not allowed")
	ErrNotBookingOwner   = errors.New("booking belongs to another user")

	// Validation errors, caught before any backend call is made
	ErrMissingCredentials  = errors.New("email and password are required")
	ErrMissingRegistration = errors.New("all registration fields are required")
	ErrMissingRoomFields   = errors.New("room name and a positive price are required")
	ErrMissingDates        = errors.New("check-in and check-out dates are required")
	ErrInvalidDateOrder    = errors.New("check-out date must be after check-in date")
	ErrInvalidGuests       = errors.New("at least one guest is required")
	ErrMissingRoom         = errors.New("a room must be selected")

	// General errors
	ErrForbidden = errors.New("forbidden operation")
)
