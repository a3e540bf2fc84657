package services

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pcawg2/payload-tools/internal/core/domain"
	"github.com/pcawg2/payload-tools/internal/core/ports"
)

// VariantCallingRequest holds the inputs of a variant calling payload generation
type VariantCallingRequest struct {
	NormalAnalysisPath string
	TumourAnalysisPath string
	Files              []string
	WorkflowName       string
	WorkflowShortName  string
	WorkflowVersion    string
	WorkflowRunID      string
}

// VariantCallingService builds the payload describing variant calling output files
type VariantCallingService struct {
	store     ports.DocumentStore
	inspector ports.FileInspector
	logger    *zap.Logger
}

// NewVariantCallingService creates a new variant calling payload service
func NewVariantCallingService(store ports.DocumentStore, inspector ports.FileInspector, logger *zap.Logger) *VariantCallingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VariantCallingService{
		store:     store,
		inspector: inspector,
		logger:    logger,
	}
}

// Execute assembles the payload and writes <uuid>.variant_calling.payload.json
func (s *VariantCallingService) Execute(ctx context.Context, req VariantCallingRequest) (*PayloadResult, error) {
	caller, err := domain.LookupVariantCaller(req.WorkflowShortName)
	if err != nil {
		return nil, err
	}
	if len(req.Files) == 0 {
		return nil, &domain.FieldError{Field: "files", Err: domain.ErrMissingField}
	}

	normal, err := s.store.LoadMetadata(ctx, req.NormalAnalysisPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load normal analysis: %w", err)
	}

	var tumour domain.Metadata
	if req.TumourAnalysisPath != "" {
		tumour, err = s.store.LoadMetadata(ctx, req.TumourAnalysisPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load tumour analysis: %w", err)
		}
	}

	// Somatic calls describe the tumour sample, germline calls the normal one
	metadata := normal
	if !caller.Germline {
		if tumour == nil {
			return nil, &domain.FieldError{Field: "tumour_analysis", Err: domain.ErrMissingField}
		}
		metadata = tumour
	}

	payload := domain.VariantCallingPayload{
		AnalysisType: domain.AnalysisTypeRef{Name: "variant_calling"},
		StudyID:      metadata.Get("program_id"),
		Experiment:   map[string]any{},
		Samples:      []domain.VariantSample{domain.NewVariantSample(metadata)},
		Files:        make([]domain.FileDescriptor, 0, len(req.Files)),
		Inputs:       analysisInputs(normal, tumour),
		Workflow: domain.WorkflowRef{
			Name:      req.WorkflowName,
			ShortName: req.WorkflowShortName,
			Version:   req.WorkflowVersion,
			RunID:     req.WorkflowRunID,
		},
		VariantClass: caller.VariantClass(),
	}

	classify := !caller.Germline && domain.HasToolTable(caller.ShortName)
	for _, path := range req.Files {
		fd, err := s.describe(path, caller.ShortName, classify)
		if err != nil {
			return nil, err
		}
		payload.Files = append(payload.Files, fd)
	}

	written, err := s.store.Write(ctx, domain.VariantPayloadFileName(domain.NewPayloadID()), payload)
	if err != nil {
		return nil, fmt.Errorf("failed to write payload: %w", err)
	}

	s.logger.Info("variant calling payload written",
		zap.String("path", written),
		zap.String("caller", caller.ShortName),
		zap.Int("files", len(payload.Files)))

	return &PayloadResult{Path: written, Files: payload.Files}, nil
}

func (s *VariantCallingService) describe(path, workflow string, classify bool) (domain.FileDescriptor, error) {
	fd := domain.FileDescriptor{
		FileName:   filepath.Base(path),
		FileType:   domain.VariantFileType(path),
		FileAccess: domain.AccessControlled,
		DataType:   domain.VariantDataType(path),
	}

	if classify {
		dataType, err := domain.ClassifyDataType(path)
		if err != nil {
			return fd, err
		}
		tools, err := domain.LookupTools(workflow, dataType)
		if err != nil {
			return fd, err
		}
		analysisType, err := domain.AnalysisType(dataType)
		if err != nil {
			return fd, err
		}
		fd.Info = map[string]any{
			"data_type":      dataType,
			"analysis_tools": tools,
			"analysis_type":  analysisType,
		}
	}

	size, sum, err := s.inspector.Checksum(path)
	if err != nil {
		return fd, err
	}
	fd.FileSize = size
	fd.FileMd5sum = sum

	return fd, nil
}

// analysisInputs references the alignment analyses the calls were made from
func analysisInputs(normal, tumour domain.Metadata) []map[string]any {
	inputs := []map[string]any{
		{"analysisId": normal.Get("analysisId"), "tumourNormalDesignation": "Normal"},
	}
	if tumour != nil {
		inputs = append(inputs, map[string]any{
			"analysisId":              tumour.Get("analysisId"),
			"tumourNormalDesignation": "Tumour",
		})
	}
	return inputs
}
