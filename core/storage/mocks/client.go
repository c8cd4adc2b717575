package mocks

import (
	"context"
	"io"

	"storage-provider/core/storage"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) ListBuckets(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if names, ok := args.Get(0).([]string); ok {
		return names, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) HeadBucket(ctx context.Context, bucket string) error {
	args := m.Called(ctx, bucket)
	return args.Error(0)
}

func (m *Client) BucketLocation(ctx context.Context, bucket string) (string, error) {
	args := m.Called(ctx, bucket)
	return args.String(0), args.Error(1)
}

func (m *Client) ListObjectsPage(ctx context.Context, bucket string, in storage.ListInput) (storage.ListPage, error) {
	args := m.Called(ctx, bucket, in)
	return args.Get(0).(storage.ListPage), args.Error(1)
}

func (m *Client) StatObject(ctx context.Context, bucket, key string) (storage.ObjectInfo, error) {
	args := m.Called(ctx, bucket, key)
	return args.Get(0).(storage.ObjectInfo), args.Error(1)
}

func (m *Client) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, bucket, key)
	if obj, ok := args.Get(0).(io.ReadCloser); ok {
		return obj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) DownloadFile(ctx context.Context, bucket, key, filePath string) error {
	args := m.Called(ctx, bucket, key, filePath)
	return args.Error(0)
}

func (m *Client) PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, opts storage.PutOptions) error {
	args := m.Called(ctx, bucket, key, reader, size, opts)
	return args.Error(0)
}

func (m *Client) UploadFile(ctx context.Context, bucket, key, filePath string, opts storage.PutOptions) error {
	args := m.Called(ctx, bucket, key, filePath, opts)
	return args.Error(0)
}

func (m *Client) CopyObject(ctx context.Context, bucket, srcKey, dstKey string, opts storage.PutOptions) error {
	args := m.Called(ctx, bucket, srcKey, dstKey, opts)
	return args.Error(0)
}

func (m *Client) RemoveObject(ctx context.Context, bucket, key string) error {
	args := m.Called(ctx, bucket, key)
	return args.Error(0)
}

var _ storage.Client = (*Client)(nil)
