package uploader

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pcawg2/payload-tools/internal/core/ports"
	"github.com/pcawg2/payload-tools/pkg/config"
)

// New returns the uploader selected by cfg.Uploader.
// endpointURL overrides cfg.EndpointURL when non-empty.
func New(ctx context.Context, cfg *config.Config, endpointURL string, logger *zap.Logger) (ports.Uploader, error) {
	if endpointURL == "" {
		endpointURL = cfg.EndpointURL
	}

	switch cfg.Uploader {
	case config.UploaderAWSCLI:
		return NewAWSCLIUploader(cfg.AWSCLI, endpointURL, logger), nil
	case config.UploaderSDK:
		return NewS3Uploader(ctx, S3Config{
			Endpoint:        endpointURL,
			Region:          cfg.Region,
			AccessKeyID:     cfg.AccessKeyID,
			SecretAccessKey: cfg.SecretAccessKey,
			UsePathStyle:    cfg.PathStyle,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown uploader %q", cfg.Uploader)
	}
}
