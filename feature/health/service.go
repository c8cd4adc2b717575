package health

import (
	"context"

	"storage-provider/feature/provider"

	"go.uber.org/zap"
)

const (
	StatusOK    = "ok"
	StatusFail  = "fail"
	StatusError = "error"
)

// Check is the result of one check.
type Check struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Report is the combined result of all checks.
type Report struct {
	Healthy bool   `json:"healthy"`
	Region  string `json:"region"`
	Bucket  string `json:"bucket"`
	Store   Check  `json:"store"`
	Access  Check  `json:"bucket_access"`
	Locate  Check  `json:"bucket_region"`
}

// Service runs health checks against a provider.
type Service struct {
	provider *provider.Service
	logger   *zap.Logger
}

// NewService creates a new health service.
func NewService(p *provider.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: p, logger: logger}
}

// Check runs every check. Later checks run even if earlier ones fail.
func (s *Service) Check(ctx context.Context) Report {
	scope := s.provider.Scope()
	r := Report{Region: scope.Region, Bucket: scope.Bucket}

	r.Store = boolCheck(s.provider.CheckStoreAccess(ctx))
	r.Access = boolCheck(s.provider.CheckBucketAccess(ctx))

	match, err := s.provider.CheckBucketRegion(ctx)
	switch {
	case err != nil:
		s.logger.Warn("Bucket region lookup failed", zap.Error(err))
		r.Locate = Check{Status: StatusError, Error: err.Error()}
	case !match:
		r.Locate = Check{Status: StatusFail, Error: "bucket is not in region " + scope.Region}
	default:
		r.Locate = Check{Status: StatusOK}
	}

	r.Healthy = r.Store.Status == StatusOK && r.Access.Status == StatusOK && r.Locate.Status == StatusOK
	return r
}

func boolCheck(ok bool) Check {
	if ok {
		return Check{Status: StatusOK}
	}
	return Check{Status: StatusFail}
}
