// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup —
// the MinIO implementation works with any S3-compatible provider (MinIO, AWS S3, DigitalOcean Spaces).
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrObjectNotFound is returned by Stat when no object exists at the key.
var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo describes a stored object as reported by the backend.
type ObjectInfo struct {
	Key         string
	Size        int64
	ContentType string
}

// Storage is the interface for minting presigned URLs and managing objects.
// File bytes never pass through this service; clients write and read the
// bucket directly using the URLs returned here.
type Storage interface {
	// PresignUpload returns a URL authorizing a single PUT of the given
	// content type to key, valid for expiry.
	PresignUpload(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
	// PresignDownload returns a URL authorizing a single GET of key, valid for expiry.
	PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error)
	// Stat returns metadata for the object at key, or ErrObjectNotFound.
	Stat(ctx context.Context, key string) (ObjectInfo, error)
	// Delete removes an object identified by key.
	Delete(ctx context.Context, key string) error
}
