package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	defaultS3Endpoint = "s3.amazonaws.com"
	amzACLHeader      = "x-amz-acl"
	amzStorageClass   = "X-Amz-Storage-Class"
)

// MinioClient implements Client on top of the MinIO Go SDK.
type MinioClient struct {
	client *minio.Client
	core   minio.Core
	// locator has no region configured: a region-pinned minio client
	// answers GetBucketLocation from its own settings without asking the server.
	locator *minio.Client
}

// NewMinioClient creates a MinIO backed client based on the configuration.
func NewMinioClient(cfg Config) (*MinioClient, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")
	if endpoint == "" {
		endpoint = defaultS3Endpoint
	}

	lookup := minio.BucketLookupAuto
	if cfg.ForcePathStyle {
		lookup = minio.BucketLookupPath
	}

	opts := &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       cfg.UseSSL,
		Region:       cfg.Region,
		Transport:    newTransport(cfg),
		BucketLookup: lookup,
	}

	minioClient, err := minio.New(endpoint, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	locatorOpts := *opts
	locatorOpts.Region = ""
	locatorOpts.Transport = newTransport(cfg)
	locator, err := minio.New(endpoint, &locatorOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create minio location client: %w", err)
	}

	// Minio connects lazily; the provider's access checks are the ping.
	return &MinioClient{
		client:  minioClient,
		core:    minio.Core{Client: minioClient},
		locator: locator,
	}, nil
}

func (c *MinioClient) ListBuckets(ctx context.Context) ([]string, error) {
	buckets, err := c.client.ListBuckets(ctx)
	if err != nil {
		return nil, wrap(OpListBuckets, "", "", err, classifyMinio)
	}
	names := make([]string, 0, len(buckets))
	for _, b := range buckets {
		names = append(names, b.Name)
	}
	return names, nil
}

func (c *MinioClient) HeadBucket(ctx context.Context, bucket string) error {
	exists, err := c.client.BucketExists(ctx, bucket)
	if err != nil {
		return wrap(OpHeadBucket, bucket, "", err, classifyMinio)
	}
	if !exists {
		return &Error{Op: OpHeadBucket, Bucket: bucket, Kind: ErrBucketNotFound, Err: fmt.Errorf("bucket %s does not exist", bucket)}
	}
	return nil
}

func (c *MinioClient) BucketLocation(ctx context.Context, bucket string) (string, error) {
	location, err := c.locator.GetBucketLocation(ctx, bucket)
	if err != nil {
		return "", wrap(OpBucketLocation, bucket, "", err, classifyMinio)
	}
	return location, nil
}

func (c *MinioClient) ListObjectsPage(ctx context.Context, bucket string, in ListInput) (ListPage, error) {
	if err := ctx.Err(); err != nil {
		return ListPage{}, wrap(OpListObjects, bucket, in.Prefix, err, nil)
	}
	// Core.ListObjectsV2 is the only page-level listing call in the SDK.
	res, err := c.core.ListObjectsV2(bucket, in.Prefix, "", in.ContinuationToken, "", in.MaxKeys)
	if err != nil {
		return ListPage{}, wrap(OpListObjects, bucket, in.Prefix, err, classifyMinio)
	}

	page := ListPage{
		Objects:   make([]ObjectInfo, 0, len(res.Contents)),
		NextToken: res.NextContinuationToken,
		Truncated: res.IsTruncated,
	}
	for _, obj := range res.Contents {
		page.Objects = append(page.Objects, ObjectInfo{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
			ContentType:  obj.ContentType,
		})
	}
	return page, nil
}

func (c *MinioClient) StatObject(ctx context.Context, bucket, key string) (ObjectInfo, error) {
	info, err := c.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return ObjectInfo{}, wrap(OpStatObject, bucket, key, err, classifyMinio)
	}
	return ObjectInfo{
		Key:          info.Key,
		Size:         info.Size,
		LastModified: info.LastModified,
		ContentType:  info.ContentType,
	}, nil
}

func (c *MinioClient) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	obj, err := c.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, wrap(OpGetObject, bucket, key, err, classifyMinio)
	}
	// GetObject is lazy; Stat issues the request so missing keys fail here.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, wrap(OpGetObject, bucket, key, err, classifyMinio)
	}
	return obj, nil
}

func (c *MinioClient) DownloadFile(ctx context.Context, bucket, key, filePath string) error {
	if err := c.client.FGetObject(ctx, bucket, key, filePath, minio.GetObjectOptions{}); err != nil {
		return wrap(OpDownloadFile, bucket, key, err, classifyMinio)
	}
	return nil
}

func (c *MinioClient) PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, opts PutOptions) error {
	if _, err := c.client.PutObject(ctx, bucket, key, reader, size, minioPutOptions(opts)); err != nil {
		return wrap(OpPutObject, bucket, key, err, classifyMinio)
	}
	return nil
}

func (c *MinioClient) UploadFile(ctx context.Context, bucket, key, filePath string, opts PutOptions) error {
	if _, err := c.client.FPutObject(ctx, bucket, key, filePath, minioPutOptions(opts)); err != nil {
		return wrap(OpUploadFile, bucket, key, err, classifyMinio)
	}
	return nil
}

func (c *MinioClient) CopyObject(ctx context.Context, bucket, srcKey, dstKey string, opts PutOptions) error {
	meta := map[string]string{}
	if opts.ACL != "" {
		meta[amzACLHeader] = opts.ACL
	}
	if opts.StorageClass != "" {
		meta[amzStorageClass] = opts.StorageClass
	}

	dst := minio.CopyDestOptions{
		Bucket:             bucket,
		Object:             dstKey,
		ReplaceMetadata:    true,
		UserMetadata:       meta,
		ContentType:        opts.ContentType,
		ContentDisposition: opts.ContentDisposition,
	}
	src := minio.CopySrcOptions{Bucket: bucket, Object: srcKey}

	if _, err := c.client.CopyObject(ctx, dst, src); err != nil {
		return wrap(OpCopyObject, bucket, srcKey, err, classifyMinio)
	}
	return nil
}

func (c *MinioClient) RemoveObject(ctx context.Context, bucket, key string) error {
	if err := c.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return wrap(OpRemoveObject, bucket, key, err, classifyMinio)
	}
	return nil
}

func minioPutOptions(opts PutOptions) minio.PutObjectOptions {
	out := minio.PutObjectOptions{
		ContentType:        opts.ContentType,
		ContentDisposition: opts.ContentDisposition,
		StorageClass:       opts.StorageClass,
	}
	if opts.ACL != "" {
		// x-amz-acl is passed through unprefixed by the SDK.
		out.UserMetadata = map[string]string{amzACLHeader: opts.ACL}
	}
	return out
}

func classifyMinio(err error) error {
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NotFound":
		return ErrNotFound
	case "NoSuchBucket":
		return ErrBucketNotFound
	case "AccessDenied":
		return ErrAccessDenied
	}
	return nil
}

var _ Client = (*MinioClient)(nil)
