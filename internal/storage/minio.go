package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/cors"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
// To switch providers, change STORAGE_ENDPOINT and credentials — no code
// changes are needed for any S3-compatible service.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// MinioOptions configures NewMinioStorage.
type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool

	// Folders are the key prefixes the bucket policy permits writes and
	// reads under. Empty means the whole bucket.
	Folders []string
	// AllowedOrigins feed the bucket CORS configuration so browsers can PUT
	// directly against presigned URLs. Empty means no CORS rules are set.
	AllowedOrigins []string
}

// NewMinioStorage creates a MinIO client, ensures the bucket exists, and
// provisions the bucket policy and CORS rules that direct browser uploads
// rely on.
func NewMinioStorage(opts MinioOptions) (*MinioStorage, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{Region: opts.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", opts.Bucket, err)
		}
		log.Printf("storage: created bucket %q", opts.Bucket)
	}

	if err := client.SetBucketPolicy(ctx, opts.Bucket, uploadBucketPolicy(opts.Bucket, opts.Folders)); err != nil {
		return nil, fmt.Errorf("set bucket policy: %w", err)
	}

	if len(opts.AllowedOrigins) > 0 {
		if err := client.SetBucketCors(ctx, opts.Bucket, cors.NewConfig(uploadCORSRules(opts.AllowedOrigins))); err != nil {
			return nil, fmt.Errorf("set bucket cors: %w", err)
		}
	}

	return &MinioStorage{client: client, bucket: opts.Bucket}, nil
}

// PresignUpload signs a PUT of contentType to key, valid for expiry. The
// signature covers the Content-Type header, so the storage service rejects
// uploads that declare a different type.
func (s *MinioStorage) PresignUpload(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	headers := http.Header{}
	headers.Set("Content-Type", contentType)

	u, err := s.client.PresignHeader(ctx, http.MethodPut, s.bucket, key, expiry, nil, headers)
	if err != nil {
		return "", fmt.Errorf("presign put %q: %w", key, err)
	}
	return u.String(), nil
}

// PresignDownload signs a GET of key, valid for expiry.
func (s *MinioStorage) PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign get %q: %w", key, err)
	}
	return u.String(), nil
}

// Stat returns metadata for the object at key.
func (s *MinioStorage) Stat(ctx context.Context, key string) (ObjectInfo, error) {
	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
			return ObjectInfo{}, ErrObjectNotFound
		}
		return ObjectInfo{}, fmt.Errorf("stat object %q: %w", key, err)
	}
	return ObjectInfo{Key: info.Key, Size: info.Size, ContentType: info.ContentType}, nil
}

// Delete removes the object at key from the bucket.
func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

// uploadBucketPolicy returns an S3 bucket policy JSON that denies plaintext
// transport on the whole bucket and allows object reads and writes only
// under the given folder prefixes (the whole bucket when none are given).
func uploadBucketPolicy(bucket string, folders []string) string {
	resources := []string{}
	if len(folders) == 0 {
		resources = append(resources, fmt.Sprintf("arn:aws:s3:::%s/*", bucket))
	}
	for _, f := range folders {
		resources = append(resources, fmt.Sprintf("arn:aws:s3:::%s/%s/*", bucket, f))
	}

	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Sid":       "DenyInsecureTransport",
				"Effect":    "Deny",
				"Principal": "*",
				"Action":    "s3:*",
				"Resource": []string{
					fmt.Sprintf("arn:aws:s3:::%s", bucket),
					fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
				},
				"Condition": map[string]interface{}{
					"Bool": map[string]interface{}{"aws:SecureTransport": "false"},
				},
			},
			{
				"Sid":       "AllowPrefixReadWrite",
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    []string{"s3:PutObject", "s3:GetObject"},
				"Resource":  resources,
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}

// uploadCORSRules allowlists the given origins for the methods a browser
// needs to upload against a presigned URL and fetch the result back.
func uploadCORSRules(origins []string) []cors.Rule {
	return []cors.Rule{
		{
			AllowedOrigin: origins,
			AllowedMethod: []string{http.MethodPut, http.MethodGet, http.MethodHead},
			AllowedHeader: []string{"Content-Type"},
			ExposeHeader:  []string{"ETag"},
			MaxAgeSeconds: 300,
		},
	}
}
