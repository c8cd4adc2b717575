package storage_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"storage-provider/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, c *storage.MemoryClient, bucket string, keys ...string) {
	t.Helper()
	for _, key := range keys {
		data := []byte("data:" + key)
		require.NoError(t, c.PutObject(t.Context(), bucket, key, bytes.NewReader(data), int64(len(data)), storage.PutOptions{}))
	}
}

func TestMemoryClient_ListObjectsPage(t *testing.T) {
	c := storage.NewMemoryClient("eu-west-1", "assets")
	seed(t, c, "assets", "b.txt", "a/1.txt", "a/2.txt", "a/3.txt", "c.txt")

	t.Run("Paged", func(t *testing.T) {
		first, err := c.ListObjectsPage(t.Context(), "assets", storage.ListInput{Prefix: "a/", MaxKeys: 2})
		require.NoError(t, err)
		assert.True(t, first.Truncated)
		require.Len(t, first.Objects, 2)
		assert.Equal(t, "a/1.txt", first.Objects[0].Key)

		second, err := c.ListObjectsPage(t.Context(), "assets", storage.ListInput{Prefix: "a/", MaxKeys: 2, ContinuationToken: first.NextToken})
		require.NoError(t, err)
		assert.False(t, second.Truncated)
		require.Len(t, second.Objects, 1)
		assert.Equal(t, "a/3.txt", second.Objects[0].Key)
	})

	t.Run("NoMatch", func(t *testing.T) {
		page, err := c.ListObjectsPage(t.Context(), "assets", storage.ListInput{Prefix: "zzz"})
		require.NoError(t, err)
		assert.NotNil(t, page.Objects)
		assert.Empty(t, page.Objects)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		_, err := c.ListObjectsPage(t.Context(), "other", storage.ListInput{})
		assert.ErrorIs(t, err, storage.ErrBucketNotFound)
	})
}

func TestMemoryClient_Objects(t *testing.T) {
	c := storage.NewMemoryClient("eu-west-1", "assets")
	opts := storage.PutOptions{ContentType: "text/plain", ACL: "private", StorageClass: "STANDARD"}

	require.NoError(t, c.PutObject(t.Context(), "assets", "doc.txt", bytes.NewReader([]byte("hello")), 5, opts))

	info, err := c.StatObject(t.Context(), "assets", "doc.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size)
	assert.Equal(t, "text/plain", info.ContentType)
	assert.False(t, info.LastModified.IsZero())

	body, err := c.GetObject(t.Context(), "assets", "doc.txt")
	require.NoError(t, err)
	data, _ := io.ReadAll(body)
	assert.Equal(t, "hello", string(data))

	copyOpts := storage.PutOptions{ACL: "public-read", StorageClass: "REDUCED_REDUNDANCY"}
	require.NoError(t, c.CopyObject(t.Context(), "assets", "doc.txt", "copy.txt", copyOpts))
	stored, ok := c.ObjectOptions("assets", "copy.txt")
	require.True(t, ok)
	assert.Equal(t, copyOpts, stored)

	require.NoError(t, c.RemoveObject(t.Context(), "assets", "doc.txt"))
	require.NoError(t, c.RemoveObject(t.Context(), "assets", "doc.txt"), "removing a missing key succeeds")

	_, err = c.StatObject(t.Context(), "assets", "doc.txt")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.True(t, storage.IsNotFound(err))

	err = c.CopyObject(t.Context(), "assets", "doc.txt", "again.txt", opts)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemoryClient_Files(t *testing.T) {
	c := storage.NewMemoryClient("eu-west-1", "assets")
	dir := t.TempDir()
	src := filepath.Join(dir, "in.bin")
	dst := filepath.Join(dir, "out.bin")
	require.NoError(t, os.WriteFile(src, []byte("file body"), 0o644))

	require.NoError(t, c.UploadFile(t.Context(), "assets", "f.bin", src, storage.PutOptions{}))
	require.NoError(t, c.DownloadFile(t.Context(), "assets", "f.bin", dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "file body", string(data))
}

func TestMemoryClient_Faults(t *testing.T) {
	c := storage.NewMemoryClient("eu-west-1", "assets")
	boom := errors.New("boom")

	c.FailOn(storage.OpRemoveObject, boom)
	err := c.RemoveObject(t.Context(), "assets", "x")
	assert.ErrorIs(t, err, boom)

	var serr *storage.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, storage.OpRemoveObject, serr.Op)

	c.FailOn(storage.OpRemoveObject, nil)
	assert.NoError(t, c.RemoveObject(t.Context(), "assets", "x"))

	c.FailAll(boom)
	_, err = c.ListBuckets(t.Context())
	assert.ErrorIs(t, err, boom)
	_, err = c.BucketLocation(t.Context(), "assets")
	assert.ErrorIs(t, err, boom)
}

func TestMemoryClient_KeysDetachedFromCaller(t *testing.T) {
	c := storage.NewMemoryClient("eu-west-1", "assets")
	buf := []byte("aaaa")
	// key shares memory with buf, like a fiber query value does with its request buffer
	key := unsafe.String(&buf[0], len(buf))

	require.NoError(t, c.PutObject(t.Context(), "assets", key, bytes.NewReader([]byte("1")), 1, storage.PutOptions{}))
	require.NoError(t, c.CopyObject(t.Context(), "assets", "aaaa", key+"-copy", storage.PutOptions{}))
	copy(buf, "bbbb")

	page, err := c.ListObjectsPage(t.Context(), "assets", storage.ListInput{})
	require.NoError(t, err)
	require.Len(t, page.Objects, 2)
	assert.Equal(t, "aaaa", page.Objects[0].Key)
	assert.Equal(t, "aaaa-copy", page.Objects[1].Key)
}
