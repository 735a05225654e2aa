package mocks

import (
	"context"
	"fmt"
	"image"
	"sync"
)

// MockIconStore is a mock implementation of the IconStore interface for testing
type MockIconStore struct {
	mu     sync.RWMutex
	images map[string]image.Image
	saved  map[string]image.Image

	loadErr error
	saveErr error

	loadCalls []string
	saveCalls []string
}

// NewMockIconStore creates a new mock icon store
func NewMockIconStore() *MockIconStore {
	return &MockIconStore{
		images: make(map[string]image.Image),
		saved:  make(map[string]image.Image),
	}
}

// AddImage registers an image as existing at path
func (m *MockIconStore) AddImage(path string, img image.Image) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.images[path] = img
}

// SetLoadError makes subsequent Load calls fail with err
func (m *MockIconStore) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

// SetSaveError makes subsequent Save calls fail with err
func (m *MockIconStore) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// Load returns the registered image at path
func (m *MockIconStore) Load(ctx context.Context, path string) (image.Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loadCalls = append(m.loadCalls, path)

	if m.loadErr != nil {
		return nil, m.loadErr
	}

	img, ok := m.images[path]
	if !ok {
		return nil, fmt.Errorf("image not found: %s", path)
	}
	return img, nil
}

// Save records the image under path
func (m *MockIconStore) Save(ctx context.Context, path string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.saveCalls = append(m.saveCalls, path)

	if m.saveErr != nil {
		return m.saveErr
	}

	m.saved[path] = img
	return nil
}

// Exists checks if an image was registered at path
func (m *MockIconStore) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.images[path]
	return ok
}

// GetSaved returns the image saved under path, if any
func (m *MockIconStore) GetSaved(path string) (image.Image, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	img, ok := m.saved[path]
	return img, ok
}

// GetLoadCalls returns the paths passed to Load
func (m *MockIconStore) GetLoadCalls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]string, len(m.loadCalls))
	copy(calls, m.loadCalls)
	return calls
}

// GetSaveCalls returns the paths passed to Save
func (m *MockIconStore) GetSaveCalls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]string, len(m.saveCalls))
	copy(calls, m.saveCalls)
	return calls
}
