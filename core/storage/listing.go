package storage

import (
	"context"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

const (
	// DefaultMaxKeys is used when ListOptions.MaxKeys is not set.
	DefaultMaxKeys = 100
	// MaxKeysLimit is the largest page a listing returns.
	MaxKeysLimit = 1000
	// ServerDelimiter is the only delimiter the storage service groups on.
	ServerDelimiter = "/"
)

// ListOptions restricts a listing.
type ListOptions struct {
	// MaxKeys caps the number of entries (files and dirs) returned.
	// Zero means DefaultMaxKeys; values above MaxKeysLimit are clamped.
	MaxKeys int
	// Prefix restricts the listing to keys starting with it. Returned keys keep the prefix.
	Prefix string
	// Delimiter groups keys sharing Prefix up to the first Delimiter into a single dir entry.
	Delimiter string
	// Marker starts the listing after this key.
	Marker string
}

func (o ListOptions) maxKeys() int {
	switch {
	case o.MaxKeys <= 0:
		return DefaultMaxKeys
	case o.MaxKeys > MaxKeysLimit:
		return MaxKeysLimit
	default:
		return o.MaxKeys
	}
}

// ListResult is the simplified form of a listing.
type ListResult struct {
	Files []string `json:"files"`
	Dirs  []string `json:"dirs"`
}

// ObjectListing is the unprocessed form of a listing, including the pagination state.
type ObjectListing struct {
	Bucket      string             `json:"bucket"`
	Prefix      string             `json:"prefix"`
	Delimiter   string             `json:"delimiter"`
	Marker      string             `json:"marker"`
	MaxKeys     int                `json:"max_keys"`
	IsTruncated bool               `json:"is_truncated"`
	NextMarker  string             `json:"next_marker,omitempty"`
	Objects     []minio.ObjectInfo `json:"objects"`
	Prefixes    []string           `json:"prefixes"`
}

// Result projects the listing onto object keys and common prefixes.
func (l *ObjectListing) Result() ListResult {
	result := ListResult{
		Files: make([]string, 0, len(l.Objects)),
		Dirs:  make([]string, 0, len(l.Prefixes)),
	}
	for _, obj := range l.Objects {
		result.Files = append(result.Files, obj.Key)
	}
	result.Dirs = append(result.Dirs, l.Prefixes...)
	return result
}

// List returns the object keys and directory prefixes matching opts.
func (a *Adapter) List(ctx context.Context, opts ListOptions) (ListResult, error) {
	listing, err := a.ListRaw(ctx, opts)
	if err != nil {
		return ListResult{}, err
	}
	return listing.Result(), nil
}

// ListRaw returns the unprocessed listing for opts.
// Callers that need NextMarker to continue paging use this form.
func (a *Adapter) ListRaw(ctx context.Context, opts ListOptions) (listing *ObjectListing, err error) {
	defer a.observe("list", time.Now(), &err)

	client, err := a.Client()
	if err != nil {
		return nil, err
	}

	maxKeys := opts.maxKeys()
	listing = &ObjectListing{
		Bucket:    a.cfg.Bucket,
		Prefix:    opts.Prefix,
		Delimiter: opts.Delimiter,
		Marker:    opts.Marker,
		MaxKeys:   maxKeys,
		Objects:   []minio.ObjectInfo{},
		Prefixes:  []string{},
	}

	// Stops the client's paging goroutine once enough entries were consumed.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	objects := client.ListObjects(ctx, a.cfg.Bucket, listObjectsOptions(opts, maxKeys))

	var last string
	entries := 0
	for obj := range objects {
		if obj.Err != nil {
			return nil, &StorageError{Op: "list", Path: opts.Prefix, Err: obj.Err}
		}

		dir := commonPrefix(obj.Key, opts.Prefix, opts.Delimiter)
		if dir != "" {
			// Resuming from a NextMarker that named a dir.
			if dir == opts.Marker {
				continue
			}
			if len(listing.Prefixes) > 0 && listing.Prefixes[len(listing.Prefixes)-1] == dir {
				last = obj.Key
				continue
			}
		}

		if entries == maxKeys {
			listing.IsTruncated = true
			listing.NextMarker = last
			break
		}
		entries++
		last = obj.Key

		if dir != "" {
			listing.Prefixes = append(listing.Prefixes, dir)
		} else {
			listing.Objects = append(listing.Objects, obj)
		}
	}

	return listing, nil
}

// listObjectsOptions maps opts onto the client's listing request.
// The "/" delimiter is grouped by the server, which returns each common prefix as an entry
// keyed by the prefix. Any other delimiter needs a recursive listing grouped here, paged at
// MaxKeysLimit since a single dir entry may span many keys.
func listObjectsOptions(opts ListOptions, maxKeys int) minio.ListObjectsOptions {
	req := minio.ListObjectsOptions{
		Prefix:     opts.Prefix,
		StartAfter: opts.Marker,
		Recursive:  opts.Delimiter != ServerDelimiter,
		// One extra entry tells whether the listing is truncated.
		MaxKeys: min(maxKeys+1, MaxKeysLimit),
	}
	if opts.Delimiter != "" && opts.Delimiter != ServerDelimiter {
		req.MaxKeys = MaxKeysLimit
	}
	return req
}

// commonPrefix returns the directory entry key rolls up into, or "" when it is listed as a file.
func commonPrefix(key, prefix, delimiter string) string {
	if delimiter == "" || !strings.HasPrefix(key, prefix) {
		return ""
	}
	rest := key[len(prefix):]
	i := strings.Index(rest, delimiter)
	if i < 0 {
		return ""
	}
	return prefix + rest[:i+len(delimiter)]
}
