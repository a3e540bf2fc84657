package services

import "github.com/pcawg2/payload-tools/internal/core/domain"

// PayloadResult describes a written payload and the files it lists
type PayloadResult struct {
	Path  string
	Files []domain.FileDescriptor
}
