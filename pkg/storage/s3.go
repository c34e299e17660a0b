package storage

import (
	"context"
	"fmt"
	"time"

	appconfig "journeyhome-backend/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DownloadURLExpiry is how long a signed document download link stays
// valid.
const DownloadURLExpiry = time.Hour

// UploadURLExpiry bounds how long a moderator has to complete an
// upload after requesting a slot.
const UploadURLExpiry = 15 * time.Minute

// Client issues time-limited signed URLs against an S3-compatible
// bucket. Credentials never leave the server; browsers only ever see
// the presigned URLs.
type Client struct {
	bucket        string
	presignClient *s3.PresignClient
}

// NewClient builds a storage client from application config.
func NewClient(cfg *appconfig.Config) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &Client{
		bucket:        cfg.S3Bucket,
		presignClient: s3.NewPresignClient(s3Client),
	}, nil
}

// PresignedDownloadURL returns a signed GET URL for the given object key.
func (c *Client) PresignedDownloadURL(ctx context.Context, key string) (string, error) {
	req, err := c.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(DownloadURLExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}
	return req.URL, nil
}

// PresignedUploadURL returns a signed PUT URL for the given object key.
func (c *Client) PresignedUploadURL(ctx context.Context, key string) (string, error) {
	req, err := c.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(UploadURLExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return req.URL, nil
}
