package main

import (
	"chat-relay/auth"
	"chat-relay/domain"
	grpcserver "chat-relay/infrastructure/grpc/server"
	httpserver "chat-relay/infrastructure/http"
	"chat-relay/infrastructure/websocket"
	"chat-relay/internal"
	"chat-relay/observability"
	"chat-relay/repositories"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const (
	shutdownTimeout  = 10 * time.Second
	reportSaturation = 0.8
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Relay terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and owns their lifecycle so that deferred
// cleanups always execute before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	// A missing .env file is fine, the environment may already be set.
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Database (BadgerDB), only used by the delivery journal
	db, err := badger.Open(buildBadgerOpts(config, log, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Relay core
	tokens := auth.NewTokenManager(config.JWTSecret, config.JWTIssuer, config.AuthTokenDuration)
	registry := runtime.NewRegistry()
	monitor := observability.NewMonitor(log, registry.Len)
	hub := websocket.NewHub(log, tokens, config.ConnectionBufferSize, config.WriteTimeout)
	fanout := workers.NewEventFanout(log, registry, hub, config.SinkTimeout)
	reports := make(chan domain.DeliveryReport, config.ReportBufferSize)
	gateway := runtime.NewGateway(log, registry, fanout, reports).WithMonitor(monitor)
	hub.SetGateway(gateway)

	journal := repositories.NewDeliveryJournal(db, log, config.JournalRetention)

	// 4. Background workers
	supervisor := workers.NewSupervisor(log, config.RestartInterval)
	supervisor.Add(
		workers.NewJournalWorker(log, journal, reports),
		workers.NewValueLogGCWorker(log, db, config.GCInterval),
		workers.NewReporterWorker(log, monitor, config.MetricInterval),
		workers.NewChannelCapacityWorker(log, []workers.NamedChannel{
			{Name: "delivery_reports", Channel: reports},
		}, reportSaturation, config.MetricInterval),
	)
	supervisorDone := make(chan struct{})
	go func() {
		defer close(supervisorDone)
		supervisor.Run(ctx)
	}()

	if log.Enabled(ctx, slog.LevelDebug) {
		address := fmt.Sprintf("%s:%d", config.Host, config.DebugPort)
		debug := internal.StartDebugServer(log, db, address, "/inspect", FailureMapper, statsProvider(monitor))
		log.Info("Debug journal inspector available", "url", "http://"+address+"/inspect")
		defer func() { _ = debug.Close() }()
	}

	// 5. HTTP server (API ingress + websocket)
	if !log.Enabled(ctx, slog.LevelDebug) {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpserver.NewRouter(httpserver.RouterDeps{
		Handler:   httpserver.NewHandler(log, gateway, journal, monitor),
		Tokens:    tokens,
		WebSocket: hub,
		Log:       log,
	})
	httpServer := &http.Server{
		Addr:              config.HTTPAddress(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	// 6. gRPC server (API ingress)
	listener, err := net.Listen("tcp", config.GRPCAddress())
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", config.GRPCAddress(), err)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(auth.UnaryInterceptor(tokens, auth.RolePublisher)))
	grpcserver.RegisterBroadcastServiceServer(grpcServer, grpcserver.NewBroadcastServer(log, gateway))

	errChan := make(chan error, 2)
	go func() {
		log.Info("Starting HTTP server", "address", httpServer.Addr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()
	go func() {
		log.Info("Starting gRPC server", "address", config.GRPCAddress(), "at", time.Now().UTC())
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	code := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case runErr = <-errChan:
		code = exitRuntime
	}

	// 8. Final Cleanup: ingress first, then workers so the journal drains
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "error", err)
	}
	grpcServer.GracefulStop()
	supervisor.Stop()
	<-supervisorDone
	log.Info("Relay stopped cleanly")

	return code, runErr
}

func buildBadgerOpts(config internal.Config, log *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if log.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.WARNING)
}

// FailureMapper renders a journaled failure in the debug inspector.
func FailureMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)

	var record domain.FailureRecord
	if err := json.Unmarshal(val, &record); err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}
	row.Detail = fmt.Sprintf("%s %s -> %s: %s",
		record.Kind, record.Scope.String(), record.ConnectionID, record.Reason)
	return row
}

func statsProvider(monitor *observability.Monitor) internal.StatsProvider {
	return func() map[string]any {
		var stats map[string]any
		data, err := json.Marshal(monitor.Snapshot())
		if err != nil {
			return nil
		}
		_ = json.Unmarshal(data, &stats)
		return stats
	}
}
