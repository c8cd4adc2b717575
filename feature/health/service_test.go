package health

import (
	"errors"
	"testing"

	"storage-provider/core/storage"
	"storage-provider/core/storage/mocks"
	"storage-provider/feature/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var scope = provider.Scope{Region: "eu-west-1", Bucket: "test-bucket"}

func newService(client storage.Client) *Service {
	return NewService(provider.NewService(client, scope, zap.NewNop()), zap.NewNop())
}

func TestService_Check(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		svc := newService(storage.NewMemoryClient("eu-west-1", "test-bucket"))

		r := svc.Check(t.Context())
		assert.True(t, r.Healthy)
		assert.Equal(t, StatusOK, r.Store.Status)
		assert.Equal(t, StatusOK, r.Access.Status)
		assert.Equal(t, StatusOK, r.Locate.Status)
		assert.Equal(t, "test-bucket", r.Bucket)
	})

	t.Run("WrongRegion", func(t *testing.T) {
		svc := newService(storage.NewMemoryClient("us-west-2", "test-bucket"))

		r := svc.Check(t.Context())
		assert.False(t, r.Healthy)
		assert.Equal(t, StatusFail, r.Locate.Status)
	})

	t.Run("LookupError", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("ListBuckets", mock.Anything).Return([]string{"test-bucket"}, nil)
		mockClient.On("HeadBucket", mock.Anything, "test-bucket").Return(nil)
		mockClient.On("BucketLocation", mock.Anything, "test-bucket").Return("", errors.New("access denied"))

		r := newService(mockClient).Check(t.Context())
		assert.False(t, r.Healthy)
		assert.Equal(t, StatusOK, r.Store.Status)
		assert.Equal(t, StatusOK, r.Access.Status)
		assert.Equal(t, StatusError, r.Locate.Status)
		assert.Contains(t, r.Locate.Error, "access denied")
	})

	t.Run("Unreachable", func(t *testing.T) {
		mem := storage.NewMemoryClient("eu-west-1", "test-bucket")
		mem.FailAll(errors.New("connection refused"))

		r := newService(mem).Check(t.Context())
		assert.False(t, r.Healthy)
		assert.Equal(t, StatusFail, r.Store.Status)
		assert.Equal(t, StatusFail, r.Access.Status)
		assert.Equal(t, StatusError, r.Locate.Status)
	})
}
