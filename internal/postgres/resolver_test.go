package postgres

import (
	"context"
	"sync"
	"testing"

	"github.com/pacsflow/pacsflow/internal/config"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) TenantClientResolver {
	t.Helper()
	r := NewTenantClientResolver(config.GetDefaultConfig(), logger.GetLogger())
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestTenantClientRequiresSubdomain(t *testing.T) {
	r := newTestResolver(t)

	client, err := r.TenantClient("")
	assert.Nil(t, client)
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestTenantClientIsMemoized(t *testing.T) {
	r := newTestResolver(t)

	first, err := r.TenantClient("clinic-one")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := r.TenantClient("clinic-one")
	require.NoError(t, err)
	assert.Same(t, first, second)

	other, err := r.TenantClient("clinic-two")
	require.NoError(t, err)
	assert.NotSame(t, first, other)
}

func TestTenantClientConcurrentFirstUse(t *testing.T) {
	r := newTestResolver(t)

	const workers = 16
	clients := make([]IClient, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			client, err := r.TenantClient("clinic-one")
			assert.NoError(t, err)
			clients[i] = client
		}(i)
	}
	wg.Wait()

	// Every goroutine converged on a single handle
	for i := 1; i < workers; i++ {
		assert.Same(t, clients[0], clients[i])
	}
}

func TestClientForContext(t *testing.T) {
	r := newTestResolver(t)

	t.Run("no subdomain in context", func(t *testing.T) {
		client, err := r.ClientForContext(context.Background())
		assert.Nil(t, client)
		assert.Error(t, err)
		assert.True(t, ierr.IsPermissionDenied(err))
	})

	t.Run("resolves subdomain from context", func(t *testing.T) {
		ctx := types.SetTenantSubdomain(context.Background(), "clinic-one")

		client, err := r.ClientForContext(ctx)
		require.NoError(t, err)
		require.NotNil(t, client)

		direct, err := r.TenantClient("clinic-one")
		require.NoError(t, err)
		assert.Same(t, direct, client)
	})
}

func TestSharedClientIsSingleton(t *testing.T) {
	r := newTestResolver(t)

	first := r.SharedClient()
	second := r.SharedClient()
	assert.Same(t, first, second)
}
