package mocks

import (
	"context"
	"sync"
)

// UploadCall records one Upload invocation
type UploadCall struct {
	LocalPath string
	ObjectKey string
}

// MockUploader is a mock implementation of the Uploader interface for testing
type MockUploader struct {
	mu    sync.Mutex
	Calls []UploadCall
	Err   error
}

// NewMockUploader creates a new mock uploader
func NewMockUploader() *MockUploader {
	return &MockUploader{}
}

// Upload records the call and returns the configured error
func (m *MockUploader) Upload(ctx context.Context, localPath string, objectKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, UploadCall{LocalPath: localPath, ObjectKey: objectKey})
	return m.Err
}

// CallCount returns the number of Upload invocations
func (m *MockUploader) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
