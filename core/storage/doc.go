// Package storage provides an abstraction layer for object storage services.
//
// The Client interface covers exactly the backend calls the storage provider
// issues: account and bucket checks, bucket location, paged prefix listing,
// metadata heads, whole and streamed reads and writes, same-bucket copies and
// deletes. Request parameters use S3 wire values so every driver maps them
// one to one.
//
// # Drivers
//
//   - minio (default): the MinIO Go SDK, for AWS S3 and S3 compatible servers.
//   - s3: the AWS SDK for Go v2.
//   - memory: an in-process store with paging and fault injection (MemoryClient.FailOn).
//
// # Errors
//
// Drivers return *Error values. errors.Is(err, ErrNotFound) identifies a
// missing key while the SDK error stays reachable through errors.As.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	page, err := client.ListObjectsPage(ctx, "assets", storage.ListInput{Prefix: "img/"})
package storage
