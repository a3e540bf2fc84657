package services

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// DefaultChunkSize is the read size used when streaming files through MD5
const DefaultChunkSize = 1024 * 1024

// FileInspector computes size and MD5 digests by streaming files in fixed-size chunks
type FileInspector struct {
	chunkSize int
}

// NewFileInspector creates an inspector reading chunkSize bytes at a time.
// Non-positive sizes fall back to DefaultChunkSize.
func NewFileInspector(chunkSize int) *FileInspector {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &FileInspector{chunkSize: chunkSize}
}

// Checksum returns the byte size and hex MD5 digest of the file at path
func (s *FileInspector) Checksum(path string) (int64, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	hasher := md5.New()
	buf := make([]byte, s.chunkSize)
	var size int64

	for {
		n, err := f.Read(buf)
		if n > 0 {
			hasher.Write(buf[:n])
			size += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, "", fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	return size, hex.EncodeToString(hasher.Sum(nil)), nil
}

// Exists checks if a file exists and is a regular file
func (s *FileInspector) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
