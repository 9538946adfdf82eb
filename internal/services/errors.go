package services

import "errors"

var (
	// ErrRestaurantNotFound is returned when no restaurant has the requested ID
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrPizzaNotFound is returned when no pizza has the requested ID
	ErrPizzaNotFound = errors.New("pizza not found")
	// ErrValidation is returned when a restaurant pizza cannot be saved as requested
	ErrValidation = errors.New("validation failed")
)
