// Package storage wraps S3-compatible object storage behind the small
// uploader contract the application usecase needs: push a buffer into a
// folder, get back a public URL.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader is the file-storage collaborator consumed by usecases.
type Uploader interface {
	Upload(ctx context.Context, data []byte, filename, folder string) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

// Config holds S3-compatible storage settings.
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	// PublicBaseURL overrides the default virtual-hosted URL, for
	// buckets served through a CDN.
	PublicBaseURL string
}

type S3Uploader struct {
	client *s3.Client
	cfg    Config
}

func NewS3Uploader(ctx context.Context, cfg Config) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Uploader{client: s3.NewFromConfig(awsCfg), cfg: cfg}, nil
}

// Upload stores the buffer under folder/<unix-millis>-<basename> and
// returns the public URL of the object.
func (u *S3Uploader) Upload(ctx context.Context, data []byte, filename, folder string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	key := fmt.Sprintf("%s/%d-%s%s", strings.Trim(folder, "/"), time.Now().UnixMilli(), base, filepath.Ext(filename))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.cfg.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return u.publicURL(key), nil
}

// Delete removes an object previously returned by Upload. The key is
// recovered from the URL's path.
func (u *S3Uploader) Delete(ctx context.Context, fileURL string) error {
	key := u.keyFromURL(fileURL)
	if key == "" {
		return fmt.Errorf("cannot derive object key from %q", fileURL)
	}

	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.cfg.Bucket),
		Key:    aws.String(key),
	})
	return err
}

func (u *S3Uploader) publicURL(key string) string {
	if u.cfg.PublicBaseURL != "" {
		return strings.TrimRight(u.cfg.PublicBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.cfg.Bucket, u.cfg.Region, key)
}

func (u *S3Uploader) keyFromURL(fileURL string) string {
	prefix := u.publicURL("")
	if strings.HasPrefix(fileURL, prefix) {
		return strings.TrimPrefix(fileURL, prefix)
	}
	return ""
}
