package http

import (
	"chat-relay/auth"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	Handler   *Handler
	Tokens    *auth.TokenManager
	WebSocket http.Handler
	Log       *slog.Logger
}

// NewRouter wires the ingress routes used by the API layer, the admin
// routes and the websocket endpoint used by live clients.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(Logger(deps.Log))

	r.GET("/health", func(ctx *gin.Context) { ctx.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	if deps.WebSocket != nil {
		r.GET("/ws", gin.WrapH(deps.WebSocket))
	}

	api := r.Group("/api", Authenticate(deps.Tokens, auth.RolePublisher))
	registerGroupRoutes(api.Group("/groups"), deps)
	registerMessageRoutes(api.Group("/messages"), deps)
	registerConnectionRoutes(api.Group("/connections"), deps)

	admin := r.Group("/admin", Authenticate(deps.Tokens, auth.RolePublisher))
	admin.GET("/stats", deps.Handler.Stats)
	admin.GET("/failures", deps.Handler.Failures)

	return r
}

func registerGroupRoutes(r *gin.RouterGroup, deps RouterDeps) {
	r.POST("/:groupId/messages", deps.Handler.AddGroupMessage)
	r.PUT("/:groupId/messages", deps.Handler.EditGroupMessage)
	r.DELETE("/:groupId/messages/:messageId", deps.Handler.DeleteGroupMessage)
	r.DELETE("/:groupId", deps.Handler.DeleteGroup)
}

func registerMessageRoutes(r *gin.RouterGroup, deps RouterDeps) {
	r.POST("", deps.Handler.AddMessage)
	r.PUT("", deps.Handler.EditMessage)
	r.DELETE("", deps.Handler.DeleteMessage)
}

func registerConnectionRoutes(r *gin.RouterGroup, deps RouterDeps) {
	r.POST("/:connectionId/groups/:groupId", deps.Handler.JoinGroup)
	r.DELETE("/:connectionId/groups/:groupId", deps.Handler.LeaveGroup)
}
