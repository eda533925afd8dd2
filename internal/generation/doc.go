// Package generation defines the boundary between the application core and
// the external text-generation provider used to suggest itinerary locations.
package generation
