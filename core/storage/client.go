package storage

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"
)

// ObjectInfo is the metadata a backend reports for one object.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
	ContentType  string
}

// ListInput selects one page of a prefix listing.
type ListInput struct {
	Prefix            string
	ContinuationToken string
	MaxKeys           int
}

// ListPage is one page of a prefix listing. NextToken is only meaningful
// when Truncated is true.
type ListPage struct {
	Objects   []ObjectInfo
	NextToken string
	Truncated bool
}

// PutOptions are the request parameters attached to a write or copy.
// ACL and StorageClass carry S3 wire values ("private", "STANDARD", ...).
type PutOptions struct {
	ContentType        string
	ContentDisposition string
	ACL                string
	StorageClass       string
}

// Client defines the backend operations the provider needs.
// Every object operation takes the bucket explicitly; copies never leave it.
type Client interface {
	// ListBuckets lists the buckets visible to the credentials.
	ListBuckets(ctx context.Context) ([]string, error)
	// HeadBucket returns nil if the bucket exists and is accessible.
	HeadBucket(ctx context.Context, bucket string) error
	// BucketLocation returns the region the bucket lives in.
	BucketLocation(ctx context.Context, bucket string) (string, error)
	// ListObjectsPage returns one page of objects under a prefix.
	ListObjectsPage(ctx context.Context, bucket string, in ListInput) (ListPage, error)
	// StatObject returns object metadata without transferring the body.
	StatObject(ctx context.Context, bucket, key string) (ObjectInfo, error)
	// GetObject opens the object body. Callers must close it.
	GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error)
	// DownloadFile streams the object body into a local file.
	DownloadFile(ctx context.Context, bucket, key, filePath string) error
	// PutObject uploads size bytes from reader.
	PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, opts PutOptions) error
	// UploadFile streams a local file into the object.
	UploadFile(ctx context.Context, bucket, key, filePath string, opts PutOptions) error
	// CopyObject copies srcKey to dstKey server side, replacing metadata with opts.
	CopyObject(ctx context.Context, bucket, srcKey, dstKey string, opts PutOptions) error
	// RemoveObject deletes the object. Deleting a missing key is not an error.
	RemoveObject(ctx context.Context, bucket, key string) error
}

// NewClient creates the backend client selected by cfg.Driver.
func NewClient(cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Driver {
	case DriverS3:
		return NewS3Client(context.Background(), cfg)
	case DriverMemory:
		return NewMemoryClient(cfg.Region, cfg.Bucket), nil
	default:
		return NewMinioClient(cfg)
	}
}

// newTransport builds an HTTP transport with strict connection timeouts.
// Request bodies are not bounded here, so large streams are not cut off.
func newTransport(cfg Config) *http.Transport {
	tr := &http.Transport{Proxy: http.ProxyFromEnvironment}
	configureTransport(tr, cfg)
	return tr
}

// configureTransport applies the timeout settings to tr. TLS settings are
// left alone so SDK-managed CA bundles survive.
func configureTransport(tr *http.Transport, cfg Config) {
	timeout := cfg.Timeout()

	tr.DialContext = (&net.Dialer{
		Timeout:   timeout, // Connection setup timeout
		KeepAlive: 30 * time.Second,
	}).DialContext
	tr.ForceAttemptHTTP2 = true
	tr.MaxIdleConns = 100
	tr.IdleConnTimeout = 90 * time.Second
	tr.TLSHandshakeTimeout = timeout
	tr.ExpectContinueTimeout = 1 * time.Second
	tr.ResponseHeaderTimeout = timeout // Wait for first response byte timeout
}
