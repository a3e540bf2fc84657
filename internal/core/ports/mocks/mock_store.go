package mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pcawg2/payload-tools/internal/core/domain"
)

// MockDocumentStore is an in-memory DocumentStore for testing.
// Documents are stored as JSON so reads return fresh copies.
type MockDocumentStore struct {
	mu      sync.RWMutex
	inputs  map[string][]byte
	Written map[string][]byte
}

// NewMockDocumentStore creates a new mock document store
func NewMockDocumentStore() *MockDocumentStore {
	return &MockDocumentStore{
		inputs:  make(map[string][]byte),
		Written: make(map[string][]byte),
	}
}

// AddDocument registers doc as the content of path
func (m *MockDocumentStore) AddDocument(path string, doc any) {
	data, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs[path] = data
}

func (m *MockDocumentStore) load(path string, v any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.inputs[path]
	if !ok {
		return fmt.Errorf("document not found: %s", path)
	}
	// decode like the JSON repository so numbers stay json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// LoadMetadata decodes the document registered at path
func (m *MockDocumentStore) LoadMetadata(ctx context.Context, path string) (domain.Metadata, error) {
	var md domain.Metadata
	if err := m.load(path, &md); err != nil {
		return nil, err
	}
	return md, nil
}

// LoadPayload decodes the document registered at path
func (m *MockDocumentStore) LoadPayload(ctx context.Context, path string) (domain.Payload, error) {
	var p domain.Payload
	if err := m.load(path, &p); err != nil {
		return nil, err
	}
	return p, nil
}

// Write records doc under name
func (m *MockDocumentStore) Write(ctx context.Context, name string, doc any) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Written[name] = data
	return name, nil
}

// WrittenDocument decodes a written document into a generic map
func (m *MockDocumentStore) WrittenDocument(name string) (map[string]any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.Written[name]
	if !ok {
		return nil, false
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false
	}
	return out, true
}
