package services

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pcawg2/payload-tools/internal/core/domain"
	"github.com/pcawg2/payload-tools/internal/core/ports"
)

// AlignmentPayloadName is the file the alignment payload is written to
const AlignmentPayloadName = "payload.json"

//go:embed templates/dna_alignment.json
var defaultAlignmentTemplate []byte

// AlignmentRequest holds the inputs of an alignment payload generation
type AlignmentRequest struct {
	FilePath          string
	InputPayloads     []string
	WorkflowShortName string
	WorkflowVersion   string
	// TemplatePath overrides the built-in payload template when set
	TemplatePath string
}

// AlignmentPayloadService builds the payload describing an aligned reads file and its index
type AlignmentPayloadService struct {
	store     ports.DocumentStore
	inspector ports.FileInspector
	logger    *zap.Logger
}

// NewAlignmentPayloadService creates a new alignment payload service
func NewAlignmentPayloadService(store ports.DocumentStore, inspector ports.FileInspector, logger *zap.Logger) *AlignmentPayloadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AlignmentPayloadService{
		store:     store,
		inspector: inspector,
		logger:    logger,
	}
}

// Execute assembles the payload and writes payload.json
func (s *AlignmentPayloadService) Execute(ctx context.Context, req AlignmentRequest) (*PayloadResult, error) {
	// Resolve the workflow first so an unknown name fails without reading any file
	fullName, err := domain.WorkflowFullName(req.WorkflowShortName)
	if err != nil {
		return nil, err
	}

	payload, err := s.loadTemplate(ctx, req.TemplatePath)
	if err != nil {
		return nil, err
	}

	inputs := make([]any, 0, len(req.InputPayloads))
	for _, path := range req.InputPayloads {
		res, err := s.store.LoadMetadata(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load input payload: %w", err)
		}
		payload["program_id"] = res.Get("program_id")
		payload["study"] = res.Get("program_id")
		inputs = append(inputs, map[string]any{"read_group_ubam_id": res.Get("analysisId")})
	}
	payload["inputs"] = inputs

	indexPath, err := s.findIndex(req.FilePath)
	if err != nil {
		return nil, err
	}

	files := make([]domain.FileDescriptor, 0, 2)
	for _, path := range []string{req.FilePath, indexPath} {
		fd, err := s.describe(path)
		if err != nil {
			return nil, err
		}
		files = append(files, fd)
	}
	payload["file"] = files

	workflow, ok := payload["workflow"].(map[string]any)
	if !ok {
		workflow = make(map[string]any)
	}
	workflow["fullName"] = fullName
	workflow["shortName"] = req.WorkflowShortName
	workflow["version"] = req.WorkflowVersion
	payload["workflow"] = workflow

	written, err := s.store.Write(ctx, AlignmentPayloadName, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to write payload: %w", err)
	}

	s.logger.Info("alignment payload written",
		zap.String("path", written),
		zap.String("file", filepath.Base(req.FilePath)),
		zap.String("index", filepath.Base(indexPath)))

	return &PayloadResult{Path: written, Files: files}, nil
}

func (s *AlignmentPayloadService) loadTemplate(ctx context.Context, path string) (domain.Payload, error) {
	if path != "" {
		p, err := s.store.LoadPayload(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load template: %w", err)
		}
		return p, nil
	}

	var p domain.Payload
	if err := json.Unmarshal(defaultAlignmentTemplate, &p); err != nil {
		return nil, fmt.Errorf("failed to parse built-in template: %w", err)
	}
	return p, nil
}

// findIndex returns the .bai or .crai companion of an aligned reads file
func (s *AlignmentPayloadService) findIndex(filePath string) (string, error) {
	for _, ext := range []string{".bai", ".crai"} {
		candidate := filePath + ext
		if s.inspector.Exists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrMissingIndexFile, filePath)
}

func (s *AlignmentPayloadService) describe(path string) (domain.FileDescriptor, error) {
	size, sum, err := s.inspector.Checksum(path)
	if err != nil {
		return domain.FileDescriptor{}, err
	}

	fileType := domain.AlignedFileType(path)
	return domain.FileDescriptor{
		FileName:   filepath.Base(path),
		FileType:   fileType,
		FileSize:   size,
		FileMd5sum: sum,
		FileAccess: domain.AccessControlled,
		Info:       map[string]any{"data_type": domain.AlignedDataType(fileType)},
	}, nil
}
