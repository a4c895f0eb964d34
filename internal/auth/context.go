package auth

import (
	"context"

	"github.com/fekuna/omnipos-inventory-service/pkg/middleware"
	"google.golang.org/grpc/metadata"
)

// SystemActor is recorded on movements that no user initiated, such as order consumption.
const SystemActor = "system"

// GetUserID returns the caller recorded by middleware.ContextInterceptor,
// falling back to the raw x-user-id metadata.
func GetUserID(ctx context.Context) string {
	if val, ok := ctx.Value(middleware.UserIDKey).(string); ok {
		return val
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get("x-user-id"); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}
