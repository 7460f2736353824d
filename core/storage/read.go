package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// streamSignExpiry is the lifetime of the URL ReadStream opens, independent of TimeoutSeconds.
const streamSignExpiry = 3600 * time.Second

// Opener opens a URL as a readable stream.
type Opener interface {
	Open(ctx context.Context, rawURL string) (io.ReadCloser, error)
}

// HTTPOpener opens URLs with an HTTP GET request.
type HTTPOpener struct {
	client *http.Client
}

// NewHTTPOpener creates an opener that uses client for requests.
func NewHTTPOpener(client *http.Client) *HTTPOpener {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPOpener{client: client}
}

// Open issues a GET request and returns the response body.
// Non-2xx responses are errors.
func (o *HTTPOpener) Open(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// Stream is an open object body. The caller must close it.
type Stream struct {
	Path string
	Body io.ReadCloser
}

// Close releases the underlying body.
func (s *Stream) Close() error {
	return s.Body.Close()
}

// ReadResult holds the full contents of an object.
type ReadResult struct {
	Path     string `json:"path"`
	Contents []byte `json:"contents"`
}

// ReadStream opens the object at path through a signed URL.
// If the URL cannot be opened the error wraps ErrNotOpenable.
func (a *Adapter) ReadStream(ctx context.Context, path string) (stream *Stream, err error) {
	defer a.observe("read_stream", time.Now(), &err)

	signed, err := a.sign(ctx, "read_stream", path, streamSignExpiry)
	if err != nil {
		return nil, err
	}

	body, err := a.opener.Open(ctx, signed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotOpenable, path, err)
	}
	return &Stream{Path: path, Body: body}, nil
}

// Read returns the full contents of the object at path.
// If the object cannot be opened the error wraps ErrNotOpenable;
// failures while reading are returned as *StorageError.
func (a *Adapter) Read(ctx context.Context, path string) (result *ReadResult, err error) {
	defer a.observe("read", time.Now(), &err)

	stream, err := a.ReadStream(ctx, path)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	contents, err := io.ReadAll(stream.Body)
	if err != nil {
		return nil, &StorageError{Op: "read", Path: path, Err: err}
	}
	return &ReadResult{Path: path, Contents: contents}, nil
}
