package cache

import "time"

const (
	ExpiryDefaultInMemory = 30 * time.Minute
	ExpiryDefaultRedis    = 5 * time.Minute

	// ExpiryTenantLookup bounds how stale a tenant-by-subdomain lookup can
	// get; deactivations must propagate within this window.
	ExpiryTenantLookup = 5 * time.Minute
)
