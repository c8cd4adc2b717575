package storage

import (
	"fmt"
	"time"
)

// Supported storage drivers.
const (
	DriverMinio  = "minio"
	DriverS3     = "s3"
	DriverMemory = "memory"
)

// Config holds configuration for the storage provider.
type Config struct {
	// Driver selects the backend client (minio, s3, memory).
	Driver string `mapstructure:"driver" default:"minio"`
	// Endpoint is the URL of the storage service. Empty means AWS S3.
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Bucket is the name of the bucket every operation is scoped to.
	Bucket string `mapstructure:"bucket" default:""`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:"us-east-1"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// ListPageSize is the number of keys requested per listing page.
	ListPageSize int `mapstructure:"list_page_size" default:"1000"`
	// ForcePathStyle addresses buckets as endpoint/bucket instead of bucket.endpoint.
	ForcePathStyle bool `mapstructure:"force_path_style" default:"false"`
}

// Validate checks that the configuration describes exactly one bucket scope.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverMinio, DriverS3, DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Driver)
	}
	if c.Bucket == "" {
		return fmt.Errorf("storage bucket is required")
	}
	if c.Region == "" {
		return fmt.Errorf("storage region is required")
	}
	return nil
}

// Timeout returns the configured transport timeout, defaulting to 30 seconds.
func (c Config) Timeout() time.Duration {
	timeout := c.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return time.Duration(timeout) * time.Second
}

// PageSize returns the listing page size, defaulting to 1000 (the S3 maximum).
func (c Config) PageSize() int {
	if c.ListPageSize <= 0 || c.ListPageSize > 1000 {
		return 1000
	}
	return c.ListPageSize
}
