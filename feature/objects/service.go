package objects

import (
	"context"

	"oss-bridge/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles object operations for the HTTP and CLI surfaces.
type Service struct {
	adapter  *storage.Adapter
	recorder *Recorder
	logger   *zap.Logger
}

// NewService creates a new objects service. db may be nil to disable auditing.
func NewService(adapter *storage.Adapter, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		adapter:  adapter,
		recorder: NewRecorder(db, logger),
		logger:   logger,
	}
}

// Exists reports whether the object exists.
func (s *Service) Exists(ctx context.Context, path string) (bool, error) {
	return s.adapter.Exists(ctx, path)
}

// Upload stores the local file under remotePath.
func (s *Service) Upload(ctx context.Context, rayID, remotePath, localPath string) (string, error) {
	location, err := s.adapter.Upload(ctx, remotePath, localPath)
	if err != nil {
		return "", err
	}
	s.recorder.Record(ctx, OpUpload, remotePath, rayID)
	return location, nil
}

// Sign returns a signed URL for path.
func (s *Service) Sign(ctx context.Context, path string) (string, error) {
	return s.adapter.SignURL(ctx, path)
}

// URL returns a signed URL for private buckets and the plain object URL otherwise.
func (s *Service) URL(ctx context.Context, path string) (string, error) {
	if s.adapter.Config().IsPrivate {
		return s.adapter.SignURL(ctx, path)
	}
	return s.adapter.ObjectURL(path)
}

// Delete removes the object.
func (s *Service) Delete(ctx context.Context, rayID, path string) error {
	if err := s.adapter.Delete(ctx, path); err != nil {
		return err
	}
	s.recorder.Record(ctx, OpDelete, path, rayID)
	return nil
}

// CreateDir writes a directory marker.
func (s *Service) CreateDir(ctx context.Context, rayID, name string) error {
	if err := s.adapter.CreateDir(ctx, name); err != nil {
		return err
	}
	s.recorder.Record(ctx, OpMkdir, name, rayID)
	return nil
}

// List returns keys and directory prefixes.
func (s *Service) List(ctx context.Context, opts storage.ListOptions) (storage.ListResult, error) {
	return s.adapter.List(ctx, opts)
}

// ListRaw returns the full listing with pagination state.
func (s *Service) ListRaw(ctx context.Context, opts storage.ListOptions) (*storage.ObjectListing, error) {
	return s.adapter.ListRaw(ctx, opts)
}

// Read returns the full object contents.
func (s *Service) Read(ctx context.Context, path string) (*storage.ReadResult, error) {
	return s.adapter.Read(ctx, path)
}

// ReadStream opens the object. The caller closes the stream.
func (s *Service) ReadStream(ctx context.Context, path string) (*storage.Stream, error) {
	return s.adapter.ReadStream(ctx, path)
}

// Events returns the latest recorded mutations.
func (s *Service) Events(ctx context.Context, limit int) ([]Event, error) {
	return s.recorder.Recent(ctx, limit)
}
