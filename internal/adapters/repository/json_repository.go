package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pcawg2/payload-tools/internal/core/domain"
	"github.com/pcawg2/payload-tools/internal/core/ports"
)

// JSONRepository reads input documents from disk and writes payloads into an output directory
type JSONRepository struct {
	outputDir string
}

// NewJSONRepository creates a repository writing into outputDir ("" means the working directory)
func NewJSONRepository(outputDir string) *JSONRepository {
	return &JSONRepository{
		outputDir: outputDir,
	}
}

// Ensure it implements the interface
var _ ports.DocumentStore = (*JSONRepository)(nil)

// LoadMetadata reads a metadata record or analysis document
func (r *JSONRepository) LoadMetadata(ctx context.Context, path string) (domain.Metadata, error) {
	var md domain.Metadata
	if err := readJSON(path, &md); err != nil {
		return nil, err
	}
	if md == nil {
		md = domain.Metadata{}
	}
	return md, nil
}

// LoadPayload reads a payload or payload template
func (r *JSONRepository) LoadPayload(ctx context.Context, path string) (domain.Payload, error) {
	var p domain.Payload
	if err := readJSON(path, &p); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%s does not contain a JSON object", path)
	}
	return p, nil
}

// Write persists doc as two-space indented JSON and returns the written path
func (r *JSONRepository) Write(ctx context.Context, name string, doc any) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", name, err)
	}

	path := name
	if r.outputDir != "" {
		if err := os.MkdirAll(r.outputDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
		path = filepath.Join(r.outputDir, name)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// readJSON decodes path into v, keeping numbers as json.Number so they
// are written back exactly as read.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
