package storage

import (
	"errors"
	"fmt"
)

// Sentinel errors drivers attach to backend failures they can classify.
var (
	ErrNotFound       = errors.New("object not found")
	ErrBucketNotFound = errors.New("bucket not found")
	ErrAccessDenied   = errors.New("access denied")
)

// Op names a backend operation. It is used for error context and for
// fault injection in the memory driver.
type Op string

const (
	OpListBuckets    Op = "list_buckets"
	OpHeadBucket     Op = "head_bucket"
	OpBucketLocation Op = "bucket_location"
	OpListObjects    Op = "list_objects"
	OpStatObject     Op = "stat_object"
	OpGetObject      Op = "get_object"
	OpDownloadFile   Op = "download_file"
	OpPutObject      Op = "put_object"
	OpUploadFile     Op = "upload_file"
	OpCopyObject     Op = "copy_object"
	OpRemoveObject   Op = "remove_object"
)

// Error is a backend failure with the operation and object it concerned.
// Kind is one of the sentinel errors above (or nil when unclassified); Err
// is the original error reported by the backend client.
type Error struct {
	Op     Op
	Bucket string
	Key    string
	Kind   error
	Err    error
}

func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Kind != nil {
		msg = e.Kind.Error() + ": " + msg
	}
	if e.Key != "" {
		return fmt.Sprintf("storage.%s %s/%s: %s", e.Op, e.Bucket, e.Key, msg)
	}
	if e.Bucket != "" {
		return fmt.Sprintf("storage.%s bucket %s: %s", e.Op, e.Bucket, msg)
	}
	return fmt.Sprintf("storage.%s: %s", e.Op, msg)
}

// Unwrap exposes both the classification and the backend error, so
// errors.Is(err, ErrNotFound) and errors.As(err, &sdkErr) both work.
func (e *Error) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// wrap builds an *Error, classifying err with the driver-specific classifier.
func wrap(op Op, bucket, key string, err error, classify func(error) error) error {
	if err == nil {
		return nil
	}
	var kind error
	if classify != nil {
		kind = classify(err)
	}
	return &Error{Op: op, Bucket: bucket, Key: key, Kind: kind, Err: err}
}

// IsNotFound reports whether err means the object or bucket does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrBucketNotFound)
}
