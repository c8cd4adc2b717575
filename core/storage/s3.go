package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client implements Client with the AWS SDK for Go v2.
type S3Client struct {
	client *awss3.Client
}

// NewS3Client creates an AWS SDK backed client from the given config.
// Static credentials are used when both keys are set; otherwise the default
// AWS credential chain applies.
func NewS3Client(ctx context.Context, cfg Config) (*S3Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		// A BuildableClient keeps AWS_CA_BUNDLE working; a plain *http.Client
		// makes LoadDefaultConfig fail when a bundle is configured.
		awsconfig.WithHTTPClient(awshttp.NewBuildableClient().WithTransportOptions(func(tr *http.Transport) {
			configureTransport(tr, cfg)
		})),
	}

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	var s3Opts []func(*awss3.Options)
	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		if u, err := url.Parse(endpoint); err != nil || u.Scheme == "" {
			scheme := "https"
			if !cfg.UseSSL {
				scheme = "http"
			}
			endpoint = scheme + "://" + endpoint
		}
		s3Opts = append(s3Opts, func(o *awss3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}
	if cfg.ForcePathStyle {
		s3Opts = append(s3Opts, func(o *awss3.Options) {
			o.UsePathStyle = true
		})
	}

	return &S3Client{client: awss3.NewFromConfig(awsCfg, s3Opts...)}, nil
}

func (c *S3Client) ListBuckets(ctx context.Context) ([]string, error) {
	out, err := c.client.ListBuckets(ctx, &awss3.ListBucketsInput{})
	if err != nil {
		return nil, wrap(OpListBuckets, "", "", err, classifyS3)
	}
	names := make([]string, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		names = append(names, aws.ToString(b.Name))
	}
	return names, nil
}

func (c *S3Client) HeadBucket(ctx context.Context, bucket string) error {
	_, err := c.client.HeadBucket(ctx, &awss3.HeadBucketInput{Bucket: aws.String(bucket)})
	if err != nil {
		return wrap(OpHeadBucket, bucket, "", err, classifyS3Bucket)
	}
	return nil
}

func (c *S3Client) BucketLocation(ctx context.Context, bucket string) (string, error) {
	out, err := c.client.GetBucketLocation(ctx, &awss3.GetBucketLocationInput{Bucket: aws.String(bucket)})
	if err != nil {
		return "", wrap(OpBucketLocation, bucket, "", err, classifyS3Bucket)
	}
	location := string(out.LocationConstraint)
	switch location {
	case "":
		// Buckets in us-east-1 report a null constraint.
		location = "us-east-1"
	case "EU":
		location = "eu-west-1"
	}
	return location, nil
}

func (c *S3Client) ListObjectsPage(ctx context.Context, bucket string, in ListInput) (ListPage, error) {
	input := &awss3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(in.Prefix),
	}
	if in.ContinuationToken != "" {
		input.ContinuationToken = aws.String(in.ContinuationToken)
	}
	if in.MaxKeys > 0 {
		input.MaxKeys = aws.Int32(int32(in.MaxKeys))
	}

	out, err := c.client.ListObjectsV2(ctx, input)
	if err != nil {
		return ListPage{}, wrap(OpListObjects, bucket, in.Prefix, err, classifyS3Bucket)
	}

	page := ListPage{
		Objects:   make([]ObjectInfo, 0, len(out.Contents)),
		NextToken: aws.ToString(out.NextContinuationToken),
		Truncated: aws.ToBool(out.IsTruncated),
	}
	for _, obj := range out.Contents {
		page.Objects = append(page.Objects, ObjectInfo{
			Key:          aws.ToString(obj.Key),
			Size:         aws.ToInt64(obj.Size),
			LastModified: aws.ToTime(obj.LastModified),
		})
	}
	return page, nil
}

func (c *S3Client) StatObject(ctx context.Context, bucket, key string) (ObjectInfo, error) {
	out, err := c.client.HeadObject(ctx, &awss3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return ObjectInfo{}, wrap(OpStatObject, bucket, key, err, classifyS3)
	}
	return ObjectInfo{
		Key:          key,
		Size:         aws.ToInt64(out.ContentLength),
		LastModified: aws.ToTime(out.LastModified),
		ContentType:  aws.ToString(out.ContentType),
	}, nil
}

func (c *S3Client) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	out, err := c.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrap(OpGetObject, bucket, key, err, classifyS3)
	}
	return out.Body, nil
}

func (c *S3Client) DownloadFile(ctx context.Context, bucket, key, filePath string) error {
	body, err := c.GetObject(ctx, bucket, key)
	if err != nil {
		var serr *Error
		if errors.As(err, &serr) {
			serr.Op = OpDownloadFile
		}
		return err
	}
	defer body.Close()

	f, err := os.Create(filePath)
	if err != nil {
		return wrap(OpDownloadFile, bucket, key, err, nil)
	}
	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(filePath)
		return wrap(OpDownloadFile, bucket, key, err, nil)
	}
	if err := f.Close(); err != nil {
		return wrap(OpDownloadFile, bucket, key, err, nil)
	}
	return nil
}

func (c *S3Client) PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, opts PutOptions) error {
	if _, err := c.client.PutObject(ctx, s3PutInput(bucket, key, reader, size, opts)); err != nil {
		return wrap(OpPutObject, bucket, key, err, classifyS3)
	}
	return nil
}

func (c *S3Client) UploadFile(ctx context.Context, bucket, key, filePath string, opts PutOptions) error {
	f, err := os.Open(filePath)
	if err != nil {
		return wrap(OpUploadFile, bucket, key, err, nil)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return wrap(OpUploadFile, bucket, key, err, nil)
	}

	// *os.File is seekable, so the SDK streams it without buffering.
	if _, err := c.client.PutObject(ctx, s3PutInput(bucket, key, f, stat.Size(), opts)); err != nil {
		return wrap(OpUploadFile, bucket, key, err, classifyS3)
	}
	return nil
}

func (c *S3Client) CopyObject(ctx context.Context, bucket, srcKey, dstKey string, opts PutOptions) error {
	input := &awss3.CopyObjectInput{
		Bucket:            aws.String(bucket),
		Key:               aws.String(dstKey),
		CopySource:        aws.String(url.PathEscape(bucket) + "/" + escapeKey(srcKey)),
		MetadataDirective: types.MetadataDirectiveReplace,
		ACL:               types.ObjectCannedACL(opts.ACL),
		StorageClass:      types.StorageClass(opts.StorageClass),
	}
	if opts.ContentType != "" {
		input.ContentType = aws.String(opts.ContentType)
	}
	if opts.ContentDisposition != "" {
		input.ContentDisposition = aws.String(opts.ContentDisposition)
	}

	if _, err := c.client.CopyObject(ctx, input); err != nil {
		return wrap(OpCopyObject, bucket, srcKey, err, classifyS3)
	}
	return nil
}

func (c *S3Client) RemoveObject(ctx context.Context, bucket, key string) error {
	_, err := c.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return wrap(OpRemoveObject, bucket, key, err, classifyS3)
	}
	return nil
}

func s3PutInput(bucket, key string, body io.Reader, size int64, opts PutOptions) *awss3.PutObjectInput {
	input := &awss3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ACL:           types.ObjectCannedACL(opts.ACL),
		StorageClass:  types.StorageClass(opts.StorageClass),
	}
	if opts.ContentType != "" {
		input.ContentType = aws.String(opts.ContentType)
	}
	if opts.ContentDisposition != "" {
		input.ContentDisposition = aws.String(opts.ContentDisposition)
	}
	return input
}

// escapeKey URL-encodes each key segment for the CopySource header.
func escapeKey(key string) string {
	return (&url.URL{Path: key}).EscapedPath()
}

func classifyS3(err error) error {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return ErrNotFound
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return ErrNotFound
	}
	return classifyS3Bucket(err)
}

func classifyS3Bucket(err error) error {
	var noSuchBucket *types.NoSuchBucket
	if errors.As(err, &noSuchBucket) {
		return ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchBucket", "NotFound":
			return ErrBucketNotFound
		case "AccessDenied", "Forbidden":
			return ErrAccessDenied
		}
	}
	return nil
}

var _ Client = (*S3Client)(nil)
