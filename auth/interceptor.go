package auth

import (
	"chat-relay/errors"
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RolesKey  contextKey = "roles"
)

// UnaryInterceptor validates the bearer token of every call and requires
// the given role. The caller identity is injected into the context.
func UnaryInterceptor(tokens *TokenManager, role string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any,
		info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, errors.MapToGRPCError(errors.ErrMissingToken)
		}

		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, errors.MapToGRPCError(errors.ErrMissingToken)
		}

		claims, err := tokens.ValidateToken(BearerToken(values[0]))
		if err != nil {
			return nil, errors.MapToGRPCError(err)
		}
		if !claims.HasRole(role) {
			return nil, errors.MapToGRPCError(errors.ErrForbidden)
		}

		return handler(WithClaims(ctx, claims), req)
	}
}

func WithClaims(ctx context.Context, claims *CustomClaims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	return context.WithValue(ctx, RolesKey, claims.Roles)
}

// UserIDFromContext returns the caller injected by the interceptor or middleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}
