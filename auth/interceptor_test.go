package auth_test

import (
	"chat-relay/auth"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestUnaryInterceptor(t *testing.T) {
	tokens := auth.NewTokenManager("my_strong_and_long_secret_key_for_tests", "chat-relay", time.Hour)
	interceptor := auth.UnaryInterceptor(tokens, auth.RolePublisher)
	info := &grpc.UnaryServerInfo{FullMethod: "/relay.v1.BroadcastService/AddGroupMessage"}

	// Returns the context it received so that injected values can be inspected
	dummyHandler := func(ctx context.Context, req any) (any, error) {
		return ctx, nil
	}
	withToken := func(token string) context.Context {
		md := metadata.Pairs("authorization", "Bearer "+token)
		return metadata.NewIncomingContext(context.Background(), md)
	}

	t.Run("should fail when metadata is missing", func(t *testing.T) {
		req := require.New(t)
		_, err := interceptor(context.Background(), nil, info, dummyHandler)
		req.Equal(codes.Unauthenticated, status.Code(err))
	})

	t.Run("should fail when authorization header is missing", func(t *testing.T) {
		req := require.New(t)
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-request-id", "1"))
		_, err := interceptor(ctx, nil, info, dummyHandler)
		req.Equal(codes.Unauthenticated, status.Code(err))
	})

	t.Run("should fail with invalid token", func(t *testing.T) {
		req := require.New(t)
		_, err := interceptor(withToken("invalid-token-string"), nil, info, dummyHandler)
		req.Equal(codes.Unauthenticated, status.Code(err))
		req.Contains(err.Error(), "invalid or expired token")
	})

	t.Run("should refuse a subscriber token", func(t *testing.T) {
		req := require.New(t)
		token, err := tokens.GenerateToken("user-1", []string{auth.RoleSubscriber})
		req.NoError(err)
		_, err = interceptor(withToken(token), nil, info, dummyHandler)
		req.Equal(codes.PermissionDenied, status.Code(err))
	})

	t.Run("should succeed and inject user_id when token is valid", func(t *testing.T) {
		req := require.New(t)
		token, err := tokens.GenerateToken("api-1", []string{auth.RolePublisher})
		req.NoError(err)

		res, err := interceptor(withToken(token), nil, info, dummyHandler)
		req.NoError(err)

		ctx, ok := res.(context.Context)
		req.True(ok)
		userID, ok := auth.UserIDFromContext(ctx)
		req.True(ok)
		req.Equal("api-1", userID)
	})
}
