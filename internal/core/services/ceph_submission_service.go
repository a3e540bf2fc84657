package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pcawg2/payload-tools/internal/core/domain"
	"github.com/pcawg2/payload-tools/internal/core/ports"
)

// SubmitRequest holds the inputs of a ceph submission
type SubmitRequest struct {
	MetadataPath string
	PayloadPath  string
	BucketName   string
	SkipUpload   bool
}

// SubmitResult describes what a submission produced
type SubmitResult struct {
	PayloadID string
	LocalPath string
	ObjectKey string
	Uploaded  bool
}

// CephSubmissionService finalizes a payload (ids, info block) and pushes it to object storage
type CephSubmissionService struct {
	store    ports.DocumentStore
	uploader ports.Uploader
	logger   *zap.Logger
}

// NewCephSubmissionService creates a new submission service
func NewCephSubmissionService(store ports.DocumentStore, uploader ports.Uploader, logger *zap.Logger) *CephSubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CephSubmissionService{
		store:    store,
		uploader: uploader,
		logger:   logger,
	}
}

// Execute builds the payload, writes <id>.json and uploads it.
// The object key is derived before anything is written, so lookup and
// validation failures leave no output behind.
func (s *CephSubmissionService) Execute(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	md, err := s.store.LoadMetadata(ctx, req.MetadataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load metadata: %w", err)
	}

	payload, err := s.store.LoadPayload(ctx, req.PayloadPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load payload: %w", err)
	}

	payload["id"] = domain.NewPayloadID()
	payload["info"] = md.Pick(domain.InfoKeys...)

	if err := payload.AssignObjectIDs(); err != nil {
		return nil, err
	}

	objectKey, err := domain.ObjectKey(req.BucketName, payload, md)
	if err != nil {
		return nil, err
	}

	payloadType, _ := payload.Type()
	if payloadType == domain.TypeSequencingExperiment {
		delete(payload, "info")
	}

	s.logger.Debug("payload assembled",
		zap.String("id", payload.ID()),
		zap.String("type", payloadType),
		zap.String("object_key", objectKey))

	localPath, err := s.store.Write(ctx, payload.FileName(), payload)
	if err != nil {
		return nil, fmt.Errorf("failed to write payload: %w", err)
	}

	result := &SubmitResult{
		PayloadID: payload.ID(),
		LocalPath: localPath,
		ObjectKey: objectKey,
	}

	if req.SkipUpload {
		s.logger.Info("upload skipped", zap.String("path", localPath))
		return result, nil
	}

	if err := s.uploader.Upload(ctx, localPath, objectKey); err != nil {
		return result, err
	}
	result.Uploaded = true

	s.logger.Info("payload uploaded",
		zap.String("path", localPath),
		zap.String("object_key", objectKey))

	return result, nil
}
