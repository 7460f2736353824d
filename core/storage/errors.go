package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotOpenable is returned by Read and ReadStream when the signed URL could not be opened.
	ErrNotOpenable = errors.New("object could not be opened")
	// ErrUnexpectedResult is returned when the storage service reports a result that does not
	// match the request (e.g. a different object key).
	ErrUnexpectedResult = errors.New("unexpected result from storage service")
	// ErrEmptyName is returned by CreateDir when the directory name is empty.
	ErrEmptyName = errors.New("directory name is empty")
)

// ConfigError reports a required configuration field that is missing.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("the %q property must be set", e.Field)
}

// ClientError reports that the storage client could not be constructed.
type ClientError struct {
	Err error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("failed to create storage client: %v", e.Err)
}

func (e *ClientError) Unwrap() error { return e.Err }

// StorageError wraps a failure surfaced by the storage client during an operation.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
