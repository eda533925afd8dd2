// Package service contains the application services that sit between the
// HTTP handlers and the stores.
package service

import "errors"

// Common service-level errors.
var (
	// ErrNotOwner is returned when a principal tries to mutate an
	// itinerary owned by someone else.
	ErrNotOwner = errors.New("itinerary is owned by another user")
)
