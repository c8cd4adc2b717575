package provider

import (
	"storage-provider/core/storage"

	"go.uber.org/zap"
)

// Scope is the region and bucket a Service is bound to.
type Scope struct {
	Region string
	Bucket string
}

// ScopeFromConfig returns the scope described by the storage configuration.
func ScopeFromConfig(cfg storage.Config) Scope {
	return Scope{Region: cfg.Region, Bucket: cfg.Bucket}
}

// Service is the storage provider facade. All of its operations act on the
// bound scope only. It holds no mutable state and is safe for concurrent use.
type Service struct {
	client   storage.Client
	scope    Scope
	pageSize int
	logger   *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithPageSize sets how many keys each listing request asks for.
func WithPageSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// NewService creates a new provider service bound to scope.
func NewService(client storage.Client, scope Scope, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		client:   client,
		scope:    scope,
		pageSize: 1000,
		logger:   logger.With(zap.String("bucket", scope.Bucket)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scope returns the region and bucket the service is bound to.
func (s *Service) Scope() Scope {
	return s.scope
}
