package uploader

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/pcawg2/payload-tools/internal/core/domain"
	"github.com/pcawg2/payload-tools/internal/core/ports"
)

// AWSCLIUploader implements the Uploader port by running `aws s3 cp`
type AWSCLIUploader struct {
	binary      string
	endpointURL string
	logger      *zap.Logger
}

// NewAWSCLIUploader creates an uploader invoking binary (usually "aws")
func NewAWSCLIUploader(binary, endpointURL string, logger *zap.Logger) *AWSCLIUploader {
	if binary == "" {
		binary = "aws"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AWSCLIUploader{
		binary:      binary,
		endpointURL: endpointURL,
		logger:      logger,
	}
}

var _ ports.Uploader = (*AWSCLIUploader)(nil)

// Args returns the argument vector passed to the CLI.
// Arguments are never interpreted by a shell.
func (u *AWSCLIUploader) Args(localPath, objectKey string) []string {
	var args []string
	if u.endpointURL != "" {
		args = append(args, "--endpoint-url", u.endpointURL)
	}
	return append(args, "s3", "cp", localPath, "s3://"+objectKey)
}

// Upload copies localPath to s3://objectKey
func (u *AWSCLIUploader) Upload(ctx context.Context, localPath string, objectKey string) error {
	args := u.Args(localPath, objectKey)
	u.logger.Debug("running upload command", zap.String("binary", u.binary), zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, u.binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cmdErr := &domain.ExternalCommandError{
			Command: u.binary,
			Code:    -1,
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.Code = exitErr.ExitCode()
		}
		return cmdErr
	}

	return nil
}

// IsAvailable checks if the CLI binary can be found on PATH
func (u *AWSCLIUploader) IsAvailable() bool {
	_, err := exec.LookPath(u.binary)
	return err == nil
}
