package types

const (
	HeaderRequestID       = "X-Request-ID"
	HeaderTenantSubdomain = "X-Tenant-Subdomain"
	HeaderAuthorization   = "Authorization"
	HeaderCronSecret      = "X-Cron-Secret"
)
