package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/CareLinkServices/care-scheduler/internal/config"
)

// Client wraps an S3-compatible bucket (AWS or a hosted storage service
// speaking the S3 protocol) and hands back public URLs for uploads.
type Client struct {
	s3        *s3.Client
	bucket    string
	publicURL string
}

func New(cfg *config.Config) *Client {
	opts := s3.Options{
		Region: cfg.StorageRegion,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			"",
		),
		UsePathStyle: true,
	}
	if cfg.StorageEndpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.StorageEndpoint)
	}

	return &Client{
		s3:        s3.New(opts),
		bucket:    cfg.StorageBucket,
		publicURL: strings.TrimRight(cfg.StoragePublicURL, "/"),
	}
}

// Upload writes the object and returns its public URL. The caller only
// persists the URL after a confirmed write.
func (c *Client) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(c.bucket),
		Key:          aws.String(path),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
	})
	if err != nil {
		return "", err
	}

	return c.PublicURL(path), nil
}

func (c *Client) PublicURL(path string) string {
	if c.publicURL != "" {
		return fmt.Sprintf("%s/%s/%s", c.publicURL, c.bucket, path)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", c.bucket, path)
}
