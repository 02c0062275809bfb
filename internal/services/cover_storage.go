package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"movie-demo/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

var ErrUnsupportedContentType = errors.New("cover uploads must be images")

// CoverStorage keeps uploaded cover images in a MinIO/S3 bucket.
type CoverStorage struct {
	client    *minio.Client
	bucket    string
	region    string
	publicURL *url.URL
	expiry    time.Duration
	logger    *logrus.Logger
}

func NewCoverStorage(cfg *config.MinIOConfig, logger *logrus.Logger) (*CoverStorage, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	publicURL, err := url.Parse(cfg.PublicURL)
	if err != nil || publicURL.Host == "" {
		return nil, fmt.Errorf("invalid public URL %q", cfg.PublicURL)
	}

	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	return &CoverStorage{
		client:    client,
		bucket:    cfg.BucketName,
		region:    cfg.Region,
		publicURL: publicURL,
		expiry:    expiry,
		logger:    logger,
	}, nil
}

// EnsureBucket creates the bucket if needed and makes its objects publicly
// readable so cover URLs can be used directly in pages.
func (s *CoverStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read")
	return nil
}

// PresignUpload returns a URL the caller can PUT the image to and the public
// URL to store as the movie's cover_img.
func (s *CoverStorage) PresignUpload(ctx context.Context, filename, contentType string) (string, string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", "", ErrUnsupportedContentType
	}

	objectPath := uniqueObjectName(filename)

	presignedURL, err := s.client.PresignHeader(ctx, http.MethodPut, s.bucket, objectPath, s.expiry, nil,
		http.Header{"Content-Type": []string{contentType}})
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicURL := s.PublicURL(objectPath)

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectPath": objectPath,
		"expiry":     s.expiry,
	}).Info("Generated presigned URL")

	return presignedURL.String(), publicURL, nil
}

func (s *CoverStorage) PublicURL(objectPath string) string {
	u := url.URL{
		Scheme: s.publicURL.Scheme,
		Host:   s.publicURL.Host,
		Path:   path.Join("/", s.bucket, objectPath),
	}
	return u.String()
}

// OwnsURL reports whether coverURL points at an object in this bucket.
func (s *CoverStorage) OwnsURL(coverURL string) bool {
	_, ok := s.objectFromURL(coverURL)
	return ok
}

func (s *CoverStorage) objectFromURL(coverURL string) (string, bool) {
	u, err := url.Parse(coverURL)
	if err != nil || u.Host != s.publicURL.Host {
		return "", false
	}
	object := strings.TrimPrefix(u.Path, "/"+s.bucket+"/")
	if object == u.Path || object == "" {
		return "", false
	}
	return object, true
}

func (s *CoverStorage) DeleteByURL(ctx context.Context, coverURL string) error {
	objectPath, ok := s.objectFromURL(coverURL)
	if !ok {
		return nil
	}

	if err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{}); err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("objectPath", objectPath).Info("File deleted successfully from MinIO")
	return nil
}

func uniqueObjectName(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if name == "" || name == "." || name == "/" {
		name = "cover"
	}
	return fmt.Sprintf("%s_%s%s", name, uuid.New().String()[:8], ext)
}
