// Package gemini implements the generation.LocationGenerator interface
// using Google's Gemini API.
package gemini
