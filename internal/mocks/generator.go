package mocks

import (
	"context"
	"sync"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/generation"
)

// MockGenerator implements generation.LocationGenerator for testing
type MockGenerator struct {
	// GenerateLocationsFn allows test cases to mock the behavior
	GenerateLocationsFn func(ctx context.Context, req generation.Request) ([]domain.Location, error)

	// Default response values
	Locations []domain.Location
	Err       error

	// Call tracking for verification
	Calls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times GenerateLocations was called
		Count int

		// Requests contains all requests passed to GenerateLocations
		Requests []generation.Request
	}
}

// Ensure the interface is implemented.
var _ generation.LocationGenerator = (*MockGenerator)(nil)

// GenerateLocations implements the generation.LocationGenerator interface
func (m *MockGenerator) GenerateLocations(
	ctx context.Context,
	req generation.Request,
) ([]domain.Location, error) {
	m.Calls.mu.Lock()
	m.Calls.Count++
	m.Calls.Requests = append(m.Calls.Requests, req)
	m.Calls.mu.Unlock()

	if m.GenerateLocationsFn != nil {
		return m.GenerateLocationsFn(ctx, req)
	}

	if m.Err != nil {
		return nil, m.Err
	}
	return m.Locations, nil
}
