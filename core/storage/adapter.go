package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"oss-bridge/core/metrics"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Adapter exposes a normalized operation set over a single bucket of an object storage service.
//
// The underlying client is created lazily on first use and held for the adapter's lifetime.
// Adapter methods are safe for concurrent use.
type Adapter struct {
	cfg       Config
	logger    *zap.Logger
	opener    Opener
	newClient func(Config) (Client, error)

	mu     sync.Mutex
	client Client
}

// New validates the configuration and returns an adapter for it.
// No connection is made until the first operation.
func New(cfg Config, logger *zap.Logger) (*Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultSignTimeoutSeconds
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := cfg.ConnectTimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return &Adapter{
		cfg:       cfg,
		logger:    logger,
		opener:    NewHTTPOpener(&http.Client{Transport: newTransport(time.Duration(timeout) * time.Second)}),
		newClient: NewClient,
	}, nil
}

// Config returns the adapter configuration.
func (a *Adapter) Config() Config {
	return a.cfg
}

// Bucket returns the bucket every operation targets.
func (a *Adapter) Bucket() string {
	return a.cfg.Bucket
}

// Client returns the storage client, creating it on first call.
// A construction failure is returned as *ClientError and is not cached.
func (a *Adapter) Client() (Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	client, err := a.newClient(a.cfg)
	if err != nil {
		return nil, &ClientError{Err: err}
	}
	a.client = client
	a.logger.Debug("Storage client created",
		zap.String("endpoint", a.cfg.Endpoint),
		zap.String("bucket", a.cfg.Bucket))
	return client, nil
}

// SetClient replaces the held client.
func (a *Adapter) SetClient(client Client) {
	a.mu.Lock()
	a.client = client
	a.mu.Unlock()
}

// SetOpener replaces the opener used by Read and ReadStream.
// It must be called before the adapter is shared between goroutines.
func (a *Adapter) SetOpener(opener Opener) {
	a.opener = opener
}

// Exists reports whether an object exists at path.
func (a *Adapter) Exists(ctx context.Context, path string) (exists bool, err error) {
	defer a.observe("exists", time.Now(), &err)

	client, err := a.Client()
	if err != nil {
		return false, err
	}

	_, err = client.StatObject(ctx, a.cfg.Bucket, path, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, &StorageError{Op: "exists", Path: path, Err: err}
}

// Upload stores the local file at localPath under remotePath and returns the request URL.
func (a *Adapter) Upload(ctx context.Context, remotePath, localPath string) (location string, err error) {
	defer a.observe("upload", time.Now(), &err)

	client, err := a.Client()
	if err != nil {
		return "", err
	}

	info, err := client.FPutObject(ctx, a.cfg.Bucket, remotePath, localPath, minio.PutObjectOptions{})
	if err != nil {
		return "", &StorageError{Op: "upload", Path: remotePath, Err: err}
	}
	if info.Key != remotePath {
		return "", &StorageError{Op: "upload", Path: remotePath, Err: fmt.Errorf("%w: stored key %q", ErrUnexpectedResult, info.Key)}
	}

	a.logger.Debug("Uploaded object",
		zap.String("path", remotePath),
		zap.Int64("size", info.Size),
		zap.String("etag", info.ETag))

	if info.Location != "" {
		return info.Location, nil
	}
	return objectURL(client, a.cfg.Bucket, remotePath), nil
}

// SignURL returns a pre-signed GET URL for path valid for TimeoutSeconds.
// The object is not checked for existence.
func (a *Adapter) SignURL(ctx context.Context, path string) (signed string, err error) {
	defer a.observe("sign", time.Now(), &err)
	return a.sign(ctx, "sign", path, time.Duration(a.cfg.TimeoutSeconds)*time.Second)
}

func (a *Adapter) sign(ctx context.Context, op, path string, expires time.Duration) (string, error) {
	client, err := a.Client()
	if err != nil {
		return "", err
	}

	u, err := client.PresignedGetObject(ctx, a.cfg.Bucket, path, expires, nil)
	if err != nil {
		return "", &StorageError{Op: op, Path: path, Err: err}
	}
	return u.String(), nil
}

// ObjectURL returns the unsigned path-style URL of path.
func (a *Adapter) ObjectURL(path string) (string, error) {
	client, err := a.Client()
	if err != nil {
		return "", err
	}
	return objectURL(client, a.cfg.Bucket, path), nil
}

// Delete removes the object at path.
func (a *Adapter) Delete(ctx context.Context, path string) (err error) {
	defer a.observe("delete", time.Now(), &err)

	client, err := a.Client()
	if err != nil {
		return err
	}

	if err := client.RemoveObject(ctx, a.cfg.Bucket, path, minio.RemoveObjectOptions{}); err != nil {
		return &StorageError{Op: "delete", Path: path, Err: err}
	}
	return nil
}

// CreateDir writes a zero-byte "name/" marker object. Trailing slashes on name are ignored.
func (a *Adapter) CreateDir(ctx context.Context, name string) (err error) {
	defer a.observe("mkdir", time.Now(), &err)

	trimmed := strings.TrimRight(name, "/")
	if trimmed == "" {
		return &StorageError{Op: "mkdir", Path: name, Err: ErrEmptyName}
	}
	marker := trimmed + "/"

	client, err := a.Client()
	if err != nil {
		return err
	}

	info, err := client.PutObject(ctx, a.cfg.Bucket, marker, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
	if err != nil {
		return &StorageError{Op: "mkdir", Path: marker, Err: err}
	}
	if info.Key != marker {
		return &StorageError{Op: "mkdir", Path: marker, Err: fmt.Errorf("%w: stored key %q", ErrUnexpectedResult, info.Key)}
	}
	return nil
}

func (a *Adapter) observe(op string, start time.Time, err *error) {
	status := metrics.StatusSuccess
	switch {
	case *err == nil:
	case errors.Is(*err, ErrNotOpenable):
		status = metrics.StatusNotFound
	default:
		status = metrics.StatusError
	}
	metrics.ObserveStorageOperation(op, status, time.Since(start))
}

func objectURL(client Client, bucket, path string) string {
	u := *client.EndpointURL()
	return u.JoinPath(bucket, path).String()
}

func isNotFound(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound
	}
	return false
}
