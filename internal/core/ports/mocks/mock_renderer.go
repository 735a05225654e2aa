package mocks

import (
	"image"
	"sync"
)

// MockBadgeRenderer is a mock implementation of the BadgeRenderer interface for testing
type MockBadgeRenderer struct {
	mu         sync.Mutex
	calls      int
	shouldFail bool
	failErr    error
	fallback   bool
}

// NewMockBadgeRenderer creates a new mock badge renderer
func NewMockBadgeRenderer() *MockBadgeRenderer {
	return &MockBadgeRenderer{}
}

// SetShouldFail makes subsequent Render calls fail with err
func (m *MockBadgeRenderer) SetShouldFail(fail bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFail = fail
	m.failErr = err
}

// SetFallback makes subsequent Render calls report the fallback font flag
func (m *MockBadgeRenderer) SetFallback(fallback bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = fallback
}

// Render returns the source image unchanged
func (m *MockBadgeRenderer) Render(src image.Image) (image.Image, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++

	if m.shouldFail {
		return nil, false, m.failErr
	}
	return src, m.fallback, nil
}

// GetCalls returns the number of Render invocations
func (m *MockBadgeRenderer) GetCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
