package upload

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/filedrop/service/internal/config"
	"github.com/filedrop/service/internal/storage"
)

// ErrNotFound is returned when an upload record does not exist (or belongs
// to another user).
var ErrNotFound = errors.New("upload not found")

// ErrNotUploaded is returned by Complete when no object exists at the
// record's key yet.
var ErrNotUploaded = errors.New("object has not been uploaded")

// ErrSizeMismatch is returned by Complete when the stored object's size
// disagrees with the declared fileSize. The record is marked rejected.
var ErrSizeMismatch = errors.New("uploaded object size does not match the declared fileSize")

// ValidationError describes a rejected upload descriptor. It is surfaced
// to the caller verbatim.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation returns true when the error is a descriptor validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Repo is the subset of repository behavior the service depends on.
type Repo interface {
	Create(ctx context.Context, u *Upload) (*Upload, error)
	GetByID(ctx context.Context, userID, id string) (*Upload, error)
	List(ctx context.Context, userID string) ([]Upload, error)
	SetStatus(ctx context.Context, userID, id, status string) (*Upload, error)
	Delete(ctx context.Context, userID, id string) error
}

// Service contains the business logic for issuing grants and tracking uploads.
type Service struct {
	repo     Repo
	store    storage.Storage
	maxBytes int64
	urlTTL   time.Duration
	folders  []string
}

// NewService creates a new upload Service.
func NewService(repo Repo, store storage.Storage, cfg *config.Config) *Service {
	return &Service{
		repo:     repo,
		store:    store,
		maxBytes: cfg.MaxUploadBytes,
		urlTTL:   cfg.UploadURLTTL,
		folders:  cfg.UploadFolders,
	}
}

// Issue validates the descriptor, mints a presigned upload grant, and
// records a pending upload for the user. The grant itself is never
// persisted; identical descriptors yield distinct keys.
func (s *Service) Issue(ctx context.Context, userID string, req Request) (*Grant, error) {
	fileName, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%d_%s", req.FolderName, time.Now().UnixNano(), fileName)

	uploadURL, err := s.store.PresignUpload(ctx, key, req.FileType, s.urlTTL)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	rec, err := s.repo.Create(ctx, &Upload{
		UserID:      userID,
		FileName:    fileName,
		ContentType: req.FileType,
		SizeBytes:   req.FileSize,
		Folder:      req.FolderName,
		ObjectKey:   key,
		Status:      StatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("record upload: %w", err)
	}

	return &Grant{
		UploadURL: uploadURL,
		Key:       key,
		UploadID:  rec.ID,
		ExpiresIn: int(s.urlTTL.Seconds()),
	}, nil
}

// Complete confirms that the client's direct transfer landed in storage.
// The object must exist at the record's key and match the declared size;
// on a size mismatch the record is marked rejected.
func (s *Service) Complete(ctx context.Context, userID, id string) (*Upload, error) {
	rec, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if rec.Status == StatusUploaded {
		return rec, nil
	}

	info, err := s.store.Stat(ctx, rec.ObjectKey)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, ErrNotUploaded
	}
	if err != nil {
		return nil, fmt.Errorf("stat upload %q: %w", rec.ObjectKey, err)
	}

	if info.Size != rec.SizeBytes {
		if _, err := s.repo.SetStatus(ctx, userID, id, StatusRejected); err != nil {
			return nil, fmt.Errorf("mark upload rejected: %w", err)
		}
		return nil, ErrSizeMismatch
	}

	return s.repo.SetStatus(ctx, userID, id, StatusUploaded)
}

// Get returns the user's upload record. When withDownload is true and the
// upload is confirmed, it also mints a presigned download URL.
func (s *Service) Get(ctx context.Context, userID, id string, withDownload bool) (*Upload, string, error) {
	rec, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}

	if !withDownload || rec.Status != StatusUploaded {
		return rec, "", nil
	}

	downloadURL, err := s.store.PresignDownload(ctx, rec.ObjectKey, s.urlTTL)
	if err != nil {
		return nil, "", fmt.Errorf("presign download: %w", err)
	}
	return rec, downloadURL, nil
}

// List returns all of the user's upload records, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Upload, error) {
	return s.repo.List(ctx, userID)
}

// Delete removes the stored object (if any) and the upload record.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	rec, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, rec.ObjectKey); err != nil {
		return fmt.Errorf("delete object %q: %w", rec.ObjectKey, err)
	}

	return s.repo.Delete(ctx, userID, id)
}

// IsNotFound returns true when the error indicates a missing upload record.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// validate checks the descriptor and returns the sanitized file name.
func (s *Service) validate(req Request) (string, error) {
	if req.FileName == "" {
		return "", validationErrorf("fileName is required")
	}
	if req.FileType == "" {
		return "", validationErrorf("fileType is required")
	}
	if req.FileSize == 0 {
		return "", validationErrorf("fileSize is required")
	}
	if req.FolderName == "" {
		return "", validationErrorf("folderName is required")
	}

	if req.FileSize < 0 {
		return "", validationErrorf("fileSize must be positive")
	}
	if req.FileSize > s.maxBytes {
		return "", validationErrorf("fileSize exceeds the %d byte limit", s.maxBytes)
	}

	fileName := sanitizeFileName(req.FileName)
	if fileName == "" {
		return "", validationErrorf("fileName is invalid")
	}

	if strings.ContainsAny(req.FolderName, "/\\") || strings.Contains(req.FolderName, "..") {
		return "", validationErrorf("folderName must be a single path segment")
	}
	if len(s.folders) > 0 && !contains(s.folders, req.FolderName) {
		return "", validationErrorf("folderName %q is not allowed", req.FolderName)
	}

	return fileName, nil
}

// sanitizeFileName strips any path components from a client-supplied name.
// Object keys are built from it, so traversal sequences must not survive.
func sanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	if name == "." || name == ".." || name == "/" {
		return ""
	}
	return name
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
