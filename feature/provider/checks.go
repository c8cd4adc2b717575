package provider

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// CheckStoreAccess reports whether an account level call succeeds.
// Any failure reads as false; use the other operations for diagnostics.
func (s *Service) CheckStoreAccess(ctx context.Context) bool {
	if _, err := s.client.ListBuckets(ctx); err != nil {
		s.logger.Debug("Store access check failed", zap.Error(err))
		return false
	}
	return true
}

// CheckBucketAccess reports whether the bound bucket can be reached.
// Any failure, including a missing bucket, reads as false.
func (s *Service) CheckBucketAccess(ctx context.Context) bool {
	if err := s.client.HeadBucket(ctx, s.scope.Bucket); err != nil {
		s.logger.Debug("Bucket access check failed", zap.Error(err))
		return false
	}
	return true
}

// CheckBucketRegion reports whether the bucket lives in the configured region.
// Unlike the access checks, a failed lookup is returned as an error: a
// region mismatch is a configuration fault, not a check result.
//
// The comparison uses the driver's normalised location. The S3 driver maps
// a null location constraint to us-east-1 and the legacy "EU" to eu-west-1,
// so a bucket configured as eu-west-1 matches either answer.
func (s *Service) CheckBucketRegion(ctx context.Context) (bool, error) {
	location, err := s.client.BucketLocation(ctx, s.scope.Bucket)
	if err != nil {
		return false, fmt.Errorf("bucket location: %w", err)
	}
	return location == s.scope.Region, nil
}
