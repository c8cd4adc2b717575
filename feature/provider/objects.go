package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// GetObjectToFile streams the object into destinationPath without holding it
// in memory. Prefer it over GetObject.
func (s *Service) GetObjectToFile(ctx context.Context, key, destinationPath string) error {
	if err := s.client.DownloadFile(ctx, s.scope.Bucket, key, destinationPath); err != nil {
		return fmt.Errorf("get object %q: %w", key, err)
	}
	return nil
}

// GetObject reads the whole object into memory. Use GetObjectToFile unless
// the caller needs a buffer.
func (s *Service) GetObject(ctx context.Context, key string) ([]byte, error) {
	body, err := s.client.GetObject(ctx, s.scope.Bucket, key)
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", key, err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read object %q: %w", key, err)
	}
	return data, nil
}

// GetObjectInfo returns the object's size and modification time without
// transferring its body.
func (s *Service) GetObjectInfo(ctx context.Context, key string) (ObjectInfo, error) {
	info, err := s.client.StatObject(ctx, s.scope.Bucket, key)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("object info %q: %w", key, err)
	}
	return ObjectInfo{Size: info.Size, LastModified: info.LastModified.UTC()}, nil
}

// PutObjectFromFile streams sourcePath into key, replacing any existing
// object. Prefer it over PutObject.
func (s *Service) PutObjectFromFile(ctx context.Context, key, sourcePath string, meta ObjectMeta) error {
	opts := meta.putOptions()
	if err := s.client.UploadFile(ctx, s.scope.Bucket, key, sourcePath, opts); err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	s.logger.Debug("Stored object",
		zap.String("key", key),
		zap.String("acl", opts.ACL),
		zap.String("storage_class", opts.StorageClass))
	return nil
}

// PutObject writes data to key, replacing any existing object.
func (s *Service) PutObject(ctx context.Context, key string, data []byte, meta ObjectMeta) error {
	opts := meta.putOptions()
	if err := s.client.PutObject(ctx, s.scope.Bucket, key, bytes.NewReader(data), int64(len(data)), opts); err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	s.logger.Debug("Stored object",
		zap.String("key", key),
		zap.Int("size", len(data)),
		zap.String("acl", opts.ACL),
		zap.String("storage_class", opts.StorageClass))
	return nil
}

// DeleteObject removes key. Deleting a key that does not exist succeeds.
func (s *Service) DeleteObject(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.scope.Bucket, key); err != nil {
		return fmt.Errorf("delete object %q: %w", key, err)
	}
	s.logger.Debug("Deleted object", zap.String("key", key))
	return nil
}
