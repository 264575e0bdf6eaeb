package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/styleverse/styleverse-backend/internal/config"
)

// UploadService stores uploaded images. When BUCKET_NAME is set the file
// goes to S3, otherwise it lands in the local uploads directory served
// under /uploads.
type UploadService struct {
	bucket string
	dir    string
	client *s3.Client
}

func NewUploadService(ctx context.Context, cfg *config.Config) (*UploadService, error) {
	u := &UploadService{
		bucket: cfg.BucketName,
		dir:    cfg.UploadsDir,
	}

	if u.bucket != "" {
		awsCfg, err := awscfg.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("unable to load AWS config: %w", err)
		}
		u.client = s3.NewFromConfig(awsCfg)
		return u, nil
	}

	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}
	return u, nil
}

// SaveImage persists the uploaded file under a random name and returns the
// URL path clients can fetch it from.
func (u *UploadService) SaveImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		return "", fmt.Errorf("unsupported file type %q", ext)
	}

	name := uuid.NewString() + ext

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	if u.client != nil {
		return u.putS3(ctx, "profile-pictures/"+name, src, fh.Header.Get("Content-Type"))
	}

	dstPath := filepath.Join(u.dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return "/uploads/" + name, nil
}

func (u *UploadService) putS3(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &u.bucket,
		Key:         &key,
		ContentType: &contentType,
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", u.bucket, key), nil
}
