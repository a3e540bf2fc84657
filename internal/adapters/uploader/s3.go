package uploader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/pcawg2/payload-tools/internal/core/ports"
)

// S3Config options for the SDK uploader
type S3Config struct {
	Endpoint        string // custom endpoint for Ceph RGW / MinIO
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
}

// S3Uploader implements the Uploader port with the AWS SDK
type S3Uploader struct {
	client *s3.Client
	logger *zap.Logger
}

var _ ports.Uploader = (*S3Uploader)(nil)

// NewS3Uploader creates an SDK based uploader
func NewS3Uploader(ctx context.Context, cfg S3Config, logger *zap.Logger) (*S3Uploader, error) {
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &S3Uploader{client: client, logger: logger}, nil
}

// Upload copies localPath to objectKey, whose first segment is the bucket
func (u *S3Uploader) Upload(ctx context.Context, localPath string, objectKey string) error {
	bucket, key, err := SplitObjectKey(objectKey)
	if err != nil {
		return err
	}

	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer f.Close()

	uploader := manager.NewUploader(u.client)
	_, err = uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	u.logger.Debug("object uploaded", zap.String("bucket", bucket), zap.String("key", key))
	return nil
}

// SplitObjectKey splits "<bucket>/<key>" into its parts
func SplitObjectKey(objectKey string) (string, string, error) {
	bucket, key, ok := strings.Cut(strings.TrimPrefix(objectKey, "s3://"), "/")
	if !ok || bucket == "" || key == "" {
		return "", "", errors.New("object key must be <bucket>/<key>: " + objectKey)
	}
	return bucket, key, nil
}
