package storage

import (
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	sdkErr := minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}
	err := wrap(OpStatObject, "assets", "a/b.txt", sdkErr, classifyMinio)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "storage.stat_object assets/a/b.txt: object not found: The specified key does not exist.", err.Error())

	var resp minio.ErrorResponse
	assert.True(t, errors.As(err, &resp))
	assert.Equal(t, "NoSuchKey", resp.Code)

	assert.Nil(t, wrap(OpStatObject, "assets", "k", nil, classifyMinio))

	bucketErr := &Error{Op: OpHeadBucket, Bucket: "assets", Err: errors.New("timeout")}
	assert.Equal(t, "storage.head_bucket bucket assets: timeout", bucketErr.Error())
	assert.False(t, IsNotFound(bucketErr))
}

func TestClassifyMinio(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"NoSuchKey", ErrNotFound},
		{"NotFound", ErrNotFound},
		{"NoSuchBucket", ErrBucketNotFound},
		{"AccessDenied", ErrAccessDenied},
		{"SlowDown", nil},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyMinio(minio.ErrorResponse{Code: tt.code}))
		})
	}
	assert.Nil(t, classifyMinio(errors.New("dial tcp: refused")))
}

func TestMinioPutOptions(t *testing.T) {
	opts := minioPutOptions(PutOptions{
		ContentType:        "image/png",
		ContentDisposition: "inline",
		ACL:                "private",
		StorageClass:       "REDUCED_REDUNDANCY",
	})

	assert.Equal(t, "image/png", opts.ContentType)
	assert.Equal(t, "inline", opts.ContentDisposition)
	assert.Equal(t, "REDUCED_REDUNDANCY", opts.StorageClass)
	assert.Equal(t, map[string]string{"x-amz-acl": "private"}, opts.UserMetadata)

	assert.Nil(t, minioPutOptions(PutOptions{}).UserMetadata)
}

func TestS3PutInput(t *testing.T) {
	in := s3PutInput("assets", "k", nil, 3, PutOptions{ACL: "public-read", StorageClass: "STANDARD", ContentType: "text/plain"})

	assert.Equal(t, "assets", *in.Bucket)
	assert.Equal(t, int64(3), *in.ContentLength)
	assert.Equal(t, "public-read", string(in.ACL))
	assert.Equal(t, "STANDARD", string(in.StorageClass))
	assert.Equal(t, "text/plain", *in.ContentType)
	assert.Nil(t, in.ContentDisposition)
}

func TestEscapeKey(t *testing.T) {
	assert.Equal(t, "a/b%20c.txt", escapeKey("a/b c.txt"))
	assert.Equal(t, "plain.txt", escapeKey("plain.txt"))
}
