package postgres

import (
	"context"
	"sync"

	"github.com/pacsflow/pacsflow/internal/config"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/pacsflow/pacsflow/internal/types"
)

// TenantClientResolver maps a tenant subdomain to a live database client.
// The shared catalog client serves cross-tenant data (plans, tenant registry,
// bond companies); tenant clients are built from the configured DSN prefix
// plus the subdomain. All handles are created lazily on first use and live
// for the process lifetime; the resolver owns them, callers only borrow.
type TenantClientResolver interface {
	// SharedClient returns the process-wide shared catalog client. Every
	// call after the first returns the same instance.
	SharedClient() IClient

	// TenantClient returns the client for the given subdomain, creating it
	// on first use. Concurrent first requests for the same subdomain
	// converge on a single handle.
	TenantClient(subdomain string) (IClient, error)

	// ClientForContext resolves the tenant client for the subdomain stored
	// in the request context.
	ClientForContext(ctx context.Context) (IClient, error)

	// Close closes every handle created by the resolver.
	Close() error
}

type tenantClientResolver struct {
	cfg    *config.Configuration
	logger *logger.Logger

	sharedOnce sync.Once
	shared     IClient

	mu      sync.RWMutex
	tenants map[string]IClient
}

// NewTenantClientResolver creates an empty resolver; clients are built on
// demand.
func NewTenantClientResolver(cfg *config.Configuration, logger *logger.Logger) TenantClientResolver {
	return &tenantClientResolver{
		cfg:     cfg,
		logger:  logger,
		tenants: make(map[string]IClient),
	}
}

func (r *tenantClientResolver) SharedClient() IClient {
	r.sharedOnce.Do(func() {
		entClient, err := NewEntClient(r.cfg.Postgres.URL, &r.cfg.Postgres)
		if err != nil {
			// sql.Open only fails on an unregistered driver; connectivity
			// problems surface at first query.
			r.logger.Fatalf("failed to open shared catalog client: %v", err)
		}
		r.logger.Infow("opened shared catalog client")
		r.shared = NewClient(entClient, r.logger)
	})
	return r.shared
}

func (r *tenantClientResolver) TenantClient(subdomain string) (IClient, error) {
	if subdomain == "" {
		return nil, ierr.NewError("subdomain is required").
			WithHint("Tenant subdomain must not be empty").
			Mark(ierr.ErrValidation)
	}

	r.mu.RLock()
	client, ok := r.tenants[subdomain]
	r.mu.RUnlock()
	if ok {
		return client, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the write lock so concurrent first requests for the
	// same subdomain materialize exactly one handle.
	if client, ok := r.tenants[subdomain]; ok {
		return client, nil
	}

	dsn := r.cfg.Postgres.TenantURLPrefix + subdomain
	entClient, err := NewEntClient(dsn, &r.cfg.Postgres)
	if err != nil {
		return nil, err
	}

	client = NewClient(entClient, r.logger)
	r.tenants[subdomain] = client
	r.logger.Infow("opened tenant database client", "subdomain", subdomain)
	return client, nil
}

func (r *tenantClientResolver) ClientForContext(ctx context.Context) (IClient, error) {
	subdomain := types.GetTenantSubdomain(ctx)
	if subdomain == "" {
		return nil, ierr.NewError("no tenant subdomain in context").
			WithHint("Request is not scoped to a tenant").
			Mark(ierr.ErrPermissionDenied)
	}
	return r.TenantClient(subdomain)
}

func (r *tenantClientResolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	if r.shared != nil {
		if err := r.shared.Close(); err != nil {
			firstErr = err
		}
	}
	for subdomain, client := range r.tenants {
		if err := client.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(r.tenants, subdomain)
	}
	return firstErr
}
