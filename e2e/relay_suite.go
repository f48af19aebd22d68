package e2e

import (
	"chat-relay/auth"
	"chat-relay/infrastructure/grpc/client"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// RelaySuite talks to a running relay: gRPC as the API layer, websocket as viewers.
type RelaySuite struct {
	suite.Suite
	Config Config
	Tokens *auth.TokenManager
}

func (s *RelaySuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if !s.Config.Enabled() {
		s.T().Skip("RELAY_GRPC_ADDR, RELAY_HTTP_ADDR and JWT_SECRET must be set to run e2e tests")
	}
	s.Tokens = auth.NewTokenManager(s.Config.JWTSecret, s.Config.JWTIssuer, time.Hour)
}

func (s *RelaySuite) step(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// WithPublisher provides a BroadcastService client authenticated as the API layer.
func (s *RelaySuite) WithPublisher(name string, fn func(ctx context.Context, client *client.BroadcastClient)) {
	t := s.T()
	s.step(t, name)

	conn, err := grpc.NewClient(s.Config.RelayGRPCAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(logCalls(t)),
	)
	s.Require().NoError(err)
	defer conn.Close()

	token, err := s.Tokens.GenerateToken("e2e-api", []string{auth.RolePublisher})
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fn(ctx, client.NewBroadcastClient(conn, token))
}

// Viewer opens a live websocket connection. The caller closes it.
func (s *RelaySuite) Viewer(ctx context.Context, name string) *websocket.Conn {
	s.step(s.T(), name)
	token, err := s.Tokens.GenerateToken("e2e-"+name, []string{auth.RoleSubscriber})
	s.Require().NoError(err)

	conn, _, err := websocket.Dial(ctx, fmt.Sprintf("ws://%s/ws?token=%s", s.Config.RelayHTTPAddr, token), nil)
	s.Require().NoError(err)
	return conn
}

func logCalls(t *testing.T) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any,
		cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		t.Logf("GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))
		return err
	}
}
