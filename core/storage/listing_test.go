package storage_test

import (
	"context"
	"fmt"
	"testing"

	"oss-bridge/core/storage"
	"oss-bridge/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdapter_List(t *testing.T) {
	ctx := context.Background()

	t.Run("FlatListing", func(t *testing.T) {
		adapter, mockClient := setupAdapter(t)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
			Return(mocks.ObjectChan("a.txt", "photos/a.jpg", "photos/b.jpg"))

		result, err := adapter.List(ctx, storage.ListOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt", "photos/a.jpg", "photos/b.jpg"}, result.Files)
		assert.Empty(t, result.Dirs)
	})

	t.Run("SlashDelimiterGroupedByServer", func(t *testing.T) {
		adapter, mockClient := setupAdapter(t)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return !opts.Recursive && opts.MaxKeys == storage.DefaultMaxKeys+1
		})).Return(mocks.ObjectChan("a.txt", "photos/", "videos/", "z.txt"))

		result, err := adapter.List(ctx, storage.ListOptions{Delimiter: "/"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt", "z.txt"}, result.Files)
		assert.Equal(t, []string{"photos/", "videos/"}, result.Dirs)
	})

	t.Run("OtherDelimiterGroupedLocally", func(t *testing.T) {
		adapter, mockClient := setupAdapter(t)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Recursive && opts.MaxKeys == storage.MaxKeysLimit
		})).Return(mocks.ObjectChan("a.txt", "photos-a.jpg", "photos-b.jpg", "videos-x.mp4", "z.txt"))

		result, err := adapter.List(ctx, storage.ListOptions{Delimiter: "-", MaxKeys: 10})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt", "z.txt"}, result.Files)
		assert.Equal(t, []string{"photos-", "videos-"}, result.Dirs)
	})

	t.Run("MarkerObjectListedAsFile", func(t *testing.T) {
		adapter, mockClient := setupAdapter(t)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
			Return(mocks.ObjectChan("photos/", "photos/a.jpg"))

		result, err := adapter.List(ctx, storage.ListOptions{Prefix: "photos/", Delimiter: "/"})
		require.NoError(t, err)
		assert.Equal(t, []string{"photos/", "photos/a.jpg"}, result.Files)
		assert.Empty(t, result.Dirs)
	})

	t.Run("PrefixKeptInKeys", func(t *testing.T) {
		adapter, mockClient := setupAdapter(t)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Prefix == "photos/" && !opts.Recursive && opts.StartAfter == "photos/a.jpg"
		})).Return(mocks.ObjectChan("photos/2024/", "photos/b.jpg"))

		result, err := adapter.List(ctx, storage.ListOptions{Prefix: "photos/", Delimiter: "/", Marker: "photos/a.jpg"})
		require.NoError(t, err)
		assert.Equal(t, []string{"photos/b.jpg"}, result.Files)
		assert.Equal(t, []string{"photos/2024/"}, result.Dirs)
	})

	t.Run("FlatListingIsRecursive", func(t *testing.T) {
		adapter, mockClient := setupAdapter(t)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Recursive
		})).Return(mocks.ObjectChan("photos/a.jpg"))

		result, err := adapter.List(ctx, storage.ListOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{"photos/a.jpg"}, result.Files)
	})

	t.Run("ClientError", func(t *testing.T) {
		adapter, mockClient := setupAdapter(t)
		ch := make(chan minio.ObjectInfo, 2)
		ch <- minio.ObjectInfo{Key: "a.txt"}
		ch <- minio.ObjectInfo{Err: assert.AnError}
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		_, err := adapter.List(ctx, storage.ListOptions{})
		var storageErr *storage.StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, "list", storageErr.Op)
	})
}

func TestAdapter_ListRaw(t *testing.T) {
	ctx := context.Background()

	t.Run("Truncated", func(t *testing.T) {
		adapter, mockClient := setupAdapter(t)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
			Return(mocks.ObjectChan("a.txt", "photos/", "z.txt"))

		listing, err := adapter.ListRaw(ctx, storage.ListOptions{MaxKeys: 2, Delimiter: "/"})
		require.NoError(t, err)
		assert.True(t, listing.IsTruncated)
		assert.Equal(t, "photos/", listing.NextMarker)
		assert.Equal(t, 2, listing.MaxKeys)
		require.Len(t, listing.Objects, 1)
		assert.Equal(t, "a.txt", listing.Objects[0].Key)
		assert.Equal(t, []string{"photos/"}, listing.Prefixes)
	})

	t.Run("TruncatedLocalGroupingResumesAfterDir", func(t *testing.T) {
		adapter, mockClient := setupAdapter(t)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
			Return(mocks.ObjectChan("a.txt", "photos-a.jpg", "photos-b.jpg", "z.txt"))

		listing, err := adapter.ListRaw(ctx, storage.ListOptions{MaxKeys: 2, Delimiter: "-"})
		require.NoError(t, err)
		assert.True(t, listing.IsTruncated)
		assert.Equal(t, "photos-b.jpg", listing.NextMarker)
		assert.Equal(t, []string{"photos-"}, listing.Prefixes)
	})

	t.Run("ResumesAfterDirMarker", func(t *testing.T) {
		adapter, mockClient := setupAdapter(t)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.StartAfter == "photos/"
		})).Return(mocks.ObjectChan("photos/", "z.txt"))

		listing, err := adapter.ListRaw(ctx, storage.ListOptions{Delimiter: "/", Marker: "photos/"})
		require.NoError(t, err)
		assert.False(t, listing.IsTruncated)
		assert.Empty(t, listing.Prefixes)
		require.Len(t, listing.Objects, 1)
		assert.Equal(t, "z.txt", listing.Objects[0].Key)
	})

	t.Run("LargeDirReadsOnlyWhatItReturns", func(t *testing.T) {
		adapter, mockClient := setupAdapter(t)

		objects := make(chan minio.ObjectInfo)
		sent := 0
		done := make(chan struct{})
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return !opts.Recursive && opts.MaxKeys == 2
		})).Run(func(args mock.Arguments) {
			listCtx := args.Get(0).(context.Context)
			go func() {
				defer close(done)
				defer close(objects)
				for i := 0; i < 50000; i++ {
					info := minio.ObjectInfo{Key: fmt.Sprintf("photos/%06d.jpg", i)}
					select {
					case objects <- info:
						sent++
					case <-listCtx.Done():
						return
					}
				}
			}()
		}).Return((<-chan minio.ObjectInfo)(objects))

		listing, err := adapter.ListRaw(ctx, storage.ListOptions{Prefix: "photos/", Delimiter: "/", MaxKeys: 1})
		require.NoError(t, err)
		<-done

		assert.True(t, listing.IsTruncated)
		assert.Equal(t, "photos/000000.jpg", listing.NextMarker)
		assert.Equal(t, 2, sent)
	})

	t.Run("Complete", func(t *testing.T) {
		adapter, mockClient := setupAdapter(t)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
			Return(mocks.ObjectChan("a.txt", "b.txt"))

		listing, err := adapter.ListRaw(ctx, storage.ListOptions{MaxKeys: 2})
		require.NoError(t, err)
		assert.False(t, listing.IsTruncated)
		assert.Empty(t, listing.NextMarker)
		assert.Equal(t, storage.ListResult{Files: []string{"a.txt", "b.txt"}, Dirs: []string{}}, listing.Result())
	})

	t.Run("MaxKeysDefaults", func(t *testing.T) {
		tests := []struct {
			name     string
			maxKeys  int
			want     int
			wantPage int
		}{
			{"Unset", 0, storage.DefaultMaxKeys, storage.DefaultMaxKeys + 1},
			{"Negative", -5, storage.DefaultMaxKeys, storage.DefaultMaxKeys + 1},
			{"InRange", 500, 500, 501},
			{"Clamped", 5000, storage.MaxKeysLimit, storage.MaxKeysLimit},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				adapter, mockClient := setupAdapter(t)
				mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
					return opts.MaxKeys == tt.wantPage
				})).Return(mocks.ObjectChan())

				listing, err := adapter.ListRaw(ctx, storage.ListOptions{MaxKeys: tt.maxKeys})
				require.NoError(t, err)
				assert.Equal(t, tt.want, listing.MaxKeys)
			})
		}
	})
}
