package gemini

import (
	"fmt"
	"strings"

	"github.com/voyago/voyago-api/internal/generation"
)

// organizationNote is appended when the caller wants the list ordered
// geographically across the city.
const organizationNote = " The list should be organized geographically" +
	" from one side of the city to the other to minimize travel time."

// formatInstruction pins the provider to a bare JSON array so the response
// can be parsed without a second round trip.
const formatInstruction = ` Format your response as a JSON array like this:
[
  { "name": "Colosseum", "description": "An ancient Roman amphitheatre known for gladiator fights." },
  ...
]
`

// BuildPrompt composes the natural-language instruction sent to the
// provider: the travel-planner framing with the requested count and city,
// the optional geographic-ordering note, and the strict format instruction.
func BuildPrompt(req generation.Request) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		"You are a travel planner. Generate a list of %d interesting locations in %s with a short one-sentence description each.",
		req.NumberOfLocations, req.CityName)

	if req.OrganizedGeographically {
		b.WriteString(organizationNote)
	}

	b.WriteString(formatInstruction)

	return b.String()
}
