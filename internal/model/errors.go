package model

import "errors"

// Common errors used across the application
var (
	// Entity store errors
	ErrDriverNotFound       = errors.New("driver not found")
	ErrChampionshipNotFound = errors.New("championship not found")

	// Daily puzzle errors
	ErrPuzzleNotFound   = errors.New("daily puzzle not found")
	ErrNoEligibleDriver = errors.New("no eligible driver for daily puzzle")

	// Guess scoring errors
	ErrGuessLengthMismatch = errors.New("guess and solution lengths differ")

	// Guess-who session errors
	ErrSessionNotFound        = errors.New("session not found")
	ErrSessionExpired         = errors.New("session expired")
	ErrInvalidPlayerSlot      = errors.New("player slot must be 1 or 2")
	ErrNoChampionshipSelected = errors.New("at least one championship selection is required")
	ErrInsufficientDrivers    = errors.New("insufficient drivers to seed a session")
)
