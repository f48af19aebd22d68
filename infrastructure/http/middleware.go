package http

import (
	"chat-relay/auth"
	"chat-relay/errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	userIDKey       = "user_id"
)

func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetHeader(requestIDHeader) == "" {
			ctx.Request.Header.Set(requestIDHeader, uuid.NewString())
		}
		ctx.Header(requestIDHeader, ctx.GetHeader(requestIDHeader))
		ctx.Next()
	}
}

// Logger writes one structured line per request.
func Logger(log *slog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		log.Debug("HTTP request",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"status", ctx.Writer.Status(),
			"duration", time.Since(start),
			"request_id", ctx.GetHeader(requestIDHeader))
	}
}

// Authenticate requires a bearer token carrying the given role.
func Authenticate(tokens *auth.TokenManager, role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := tokens.ValidateToken(auth.BearerToken(ctx.GetHeader("Authorization")))
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		if !claims.HasRole(role) {
			abortWithError(ctx, errors.ErrForbidden)
			return
		}
		ctx.Set(userIDKey, claims.UserID)
		ctx.Request = ctx.Request.WithContext(auth.WithClaims(ctx.Request.Context(), claims))
		ctx.Next()
	}
}

func abortWithError(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(errors.HTTPStatus(err), gin.H{"error": err.Error()})
}
