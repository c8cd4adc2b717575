package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryClient is an in-process Client holding a single region's buckets.
// It pages listings like S3 (keys in lexical order) and can be told to fail
// specific operations, which makes it the backend for tests and offline runs.
type MemoryClient struct {
	region string

	mtx     sync.RWMutex
	buckets map[string]map[string]memoryObject
	faults  map[Op]error
	now     func() time.Time
}

type memoryObject struct {
	data         []byte
	lastModified time.Time
	opts         PutOptions
}

// NewMemoryClient creates an empty store in region with the given buckets.
func NewMemoryClient(region string, buckets ...string) *MemoryClient {
	c := &MemoryClient{
		region:  region,
		buckets: make(map[string]map[string]memoryObject),
		faults:  make(map[Op]error),
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, b := range buckets {
		c.buckets[b] = make(map[string]memoryObject)
	}
	return c
}

// FailOn makes every subsequent call of op return err. A nil err clears it.
func (c *MemoryClient) FailOn(op Op, err error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if err == nil {
		delete(c.faults, op)
		return
	}
	c.faults[op] = err
}

// FailAll makes every operation return err.
func (c *MemoryClient) FailAll(err error) {
	for _, op := range []Op{
		OpListBuckets, OpHeadBucket, OpBucketLocation, OpListObjects, OpStatObject, OpGetObject,
		OpDownloadFile, OpPutObject, OpUploadFile, OpCopyObject, OpRemoveObject,
	} {
		c.FailOn(op, err)
	}
}

// ObjectOptions returns the write options stored with an object.
func (c *MemoryClient) ObjectOptions(bucket, key string) (PutOptions, bool) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	obj, ok := c.buckets[bucket][key]
	return obj.opts, ok
}

func (c *MemoryClient) fault(op Op, bucket, key string) error {
	if err, ok := c.faults[op]; ok {
		return &Error{Op: op, Bucket: bucket, Key: key, Err: err}
	}
	return nil
}

// bucket returns the named bucket; callers must hold mtx.
func (c *MemoryClient) bucket(op Op, name string) (map[string]memoryObject, error) {
	if err := c.fault(op, name, ""); err != nil {
		return nil, err
	}
	b, ok := c.buckets[name]
	if !ok {
		return nil, &Error{Op: op, Bucket: name, Kind: ErrBucketNotFound, Err: fmt.Errorf("bucket %s does not exist", name)}
	}
	return b, nil
}

func (c *MemoryClient) ListBuckets(ctx context.Context) ([]string, error) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	if err := c.fault(OpListBuckets, "", ""); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(c.buckets))
	for name := range c.buckets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (c *MemoryClient) HeadBucket(ctx context.Context, bucket string) error {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	_, err := c.bucket(OpHeadBucket, bucket)
	return err
}

func (c *MemoryClient) BucketLocation(ctx context.Context, bucket string) (string, error) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	if _, err := c.bucket(OpBucketLocation, bucket); err != nil {
		return "", err
	}
	return c.region, nil
}

func (c *MemoryClient) ListObjectsPage(ctx context.Context, bucket string, in ListInput) (ListPage, error) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	b, err := c.bucket(OpListObjects, bucket)
	if err != nil {
		return ListPage{}, err
	}

	keys := make([]string, 0, len(b))
	for key := range b {
		if strings.HasPrefix(key, in.Prefix) && key > in.ContinuationToken {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	maxKeys := in.MaxKeys
	if maxKeys <= 0 || maxKeys > 1000 {
		maxKeys = 1000
	}

	page := ListPage{Objects: []ObjectInfo{}}
	if len(keys) > maxKeys {
		keys = keys[:maxKeys]
		page.Truncated = true
		page.NextToken = keys[len(keys)-1]
	}
	for _, key := range keys {
		page.Objects = append(page.Objects, b[key].info(key))
	}
	return page, nil
}

func (c *MemoryClient) StatObject(ctx context.Context, bucket, key string) (ObjectInfo, error) {
	obj, err := c.lookup(OpStatObject, bucket, key)
	if err != nil {
		return ObjectInfo{}, err
	}
	return obj.info(key), nil
}

func (c *MemoryClient) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	obj, err := c.lookup(OpGetObject, bucket, key)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(obj.data)), nil
}

func (c *MemoryClient) DownloadFile(ctx context.Context, bucket, key, filePath string) error {
	obj, err := c.lookup(OpDownloadFile, bucket, key)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filePath, obj.data, 0o644); err != nil {
		return &Error{Op: OpDownloadFile, Bucket: bucket, Key: key, Err: err}
	}
	return nil
}

func (c *MemoryClient) PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, opts PutOptions) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return &Error{Op: OpPutObject, Bucket: bucket, Key: key, Err: err}
	}
	if size >= 0 && int64(len(data)) != size {
		return &Error{Op: OpPutObject, Bucket: bucket, Key: key, Err: fmt.Errorf("read %d bytes, expected %d", len(data), size)}
	}
	return c.store(OpPutObject, bucket, key, data, opts)
}

func (c *MemoryClient) UploadFile(ctx context.Context, bucket, key, filePath string, opts PutOptions) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return &Error{Op: OpUploadFile, Bucket: bucket, Key: key, Err: err}
	}
	return c.store(OpUploadFile, bucket, key, data, opts)
}

func (c *MemoryClient) CopyObject(ctx context.Context, bucket, srcKey, dstKey string, opts PutOptions) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	b, err := c.bucket(OpCopyObject, bucket)
	if err != nil {
		return err
	}
	src, ok := b[srcKey]
	if !ok {
		return &Error{Op: OpCopyObject, Bucket: bucket, Key: srcKey, Kind: ErrNotFound, Err: fmt.Errorf("key %s does not exist", srcKey)}
	}
	b[strings.Clone(dstKey)] = memoryObject{
		data:         append([]byte(nil), src.data...),
		lastModified: c.now(),
		opts:         cloneOptions(opts),
	}
	return nil
}

func (c *MemoryClient) RemoveObject(ctx context.Context, bucket, key string) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	b, err := c.bucket(OpRemoveObject, bucket)
	if err != nil {
		return err
	}
	delete(b, key)
	return nil
}

func (c *MemoryClient) lookup(op Op, bucket, key string) (memoryObject, error) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	b, err := c.bucket(op, bucket)
	if err != nil {
		return memoryObject{}, err
	}
	obj, ok := b[key]
	if !ok {
		return memoryObject{}, &Error{Op: op, Bucket: bucket, Key: key, Kind: ErrNotFound, Err: fmt.Errorf("key %s does not exist", key)}
	}
	return obj, nil
}

func (c *MemoryClient) store(op Op, bucket, key string, data []byte, opts PutOptions) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	b, err := c.bucket(op, bucket)
	if err != nil {
		return err
	}
	// Callers may hand in keys backed by reused buffers (fiber query values).
	b[strings.Clone(key)] = memoryObject{data: data, lastModified: c.now(), opts: cloneOptions(opts)}
	return nil
}

func cloneOptions(opts PutOptions) PutOptions {
	return PutOptions{
		ContentType:        strings.Clone(opts.ContentType),
		ContentDisposition: strings.Clone(opts.ContentDisposition),
		ACL:                opts.ACL,
		StorageClass:       opts.StorageClass,
	}
}

func (o memoryObject) info(key string) ObjectInfo {
	return ObjectInfo{
		Key:          key,
		Size:         int64(len(o.data)),
		LastModified: o.lastModified,
		ContentType:  o.opts.ContentType,
	}
}

var _ Client = (*MemoryClient)(nil)
