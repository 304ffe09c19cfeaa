package types

import "context"

type ContextKey string

const (
	CtxRequestID       ContextKey = "ctx_request_id"
	CtxTenantID        ContextKey = "ctx_tenant_id"
	CtxTenantSubdomain ContextKey = "ctx_tenant_subdomain"
	CtxUserID          ContextKey = "ctx_user_id"

	// DefaultUserID is used as the audit actor for system initiated
	// operations like cron jobs where no user is present in the context.
	DefaultUserID = "system"
)

func GetRequestID(ctx context.Context) string {
	return getString(ctx, CtxRequestID)
}

func GetTenantID(ctx context.Context) string {
	return getString(ctx, CtxTenantID)
}

func GetTenantSubdomain(ctx context.Context) string {
	return getString(ctx, CtxTenantSubdomain)
}

func GetUserID(ctx context.Context) string {
	if userID := getString(ctx, CtxUserID); userID != "" {
		return userID
	}
	return DefaultUserID
}

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxRequestID, requestID)
}

func SetTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, CtxTenantID, tenantID)
}

func SetTenantSubdomain(ctx context.Context, subdomain string) context.Context {
	return context.WithValue(ctx, CtxTenantSubdomain, subdomain)
}

func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxUserID, userID)
}

func getString(ctx context.Context, key ContextKey) string {
	if value, ok := ctx.Value(key).(string); ok {
		return value
	}
	return ""
}
