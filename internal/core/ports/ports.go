package ports

import (
	"context"

	"github.com/pcawg2/payload-tools/internal/core/domain"
)

// DocumentStore defines the port for reading input documents and writing payloads
type DocumentStore interface {
	// LoadMetadata reads a metadata record or analysis document
	LoadMetadata(ctx context.Context, path string) (domain.Metadata, error)

	// LoadPayload reads a payload (or payload template) document
	LoadPayload(ctx context.Context, path string) (domain.Payload, error)

	// Write persists doc as indented JSON under name and returns the written path
	Write(ctx context.Context, name string, doc any) (string, error)
}

// Uploader defines the port for pushing a local file to object storage
type Uploader interface {
	// Upload copies localPath to objectKey ("<bucket>/<key>")
	Upload(ctx context.Context, localPath string, objectKey string) error
}

// FileInspector defines the port for computing file descriptors
type FileInspector interface {
	// Checksum returns the byte size and hex MD5 digest of a file
	Checksum(path string) (int64, string, error)

	// Exists reports whether path is an existing regular file
	Exists(path string) bool
}
