package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Host     string `env:"HOST,default=localhost"`
	HTTPPort int    `env:"HTTP_PORT,default=8080"`
	GRPCPort int    `env:"GRPC_PORT,default=9090"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`

	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,required=true"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	WriteTimeout         time.Duration `env:"WRITE_TIMEOUT,default=5s"`
	ReportBufferSize     int           `env:"REPORT_BUFFER_SIZE,default=256"`

	BadgerFilepath   string        `env:"BADGER_FILEPATH,required=true"`
	JournalRetention time.Duration `env:"JOURNAL_RETENTION,default=24h"`
	GCInterval       time.Duration `env:"GC_INTERVAL,default=10m"`
	MetricInterval   time.Duration `env:"METRIC_INTERVAL,default=1m"`
	RestartInterval  time.Duration `env:"RESTART_INTERVAL,default=1s"`
	DebugPort        int           `env:"DEBUG_PORT,default=8081"`

	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	JWTIssuer         string        `env:"JWT_ISSUER,default=chat-relay"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=1h"`
}

// Validate rejects values the env tags cannot express.
func (c Config) Validate() error {
	if c.SinkTimeout <= 0 {
		return fmt.Errorf("SINK_TIMEOUT must be positive, got %s", c.SinkTimeout)
	}
	if c.ConnectionBufferSize <= 0 {
		return fmt.Errorf("CONNECTION_BUFFER_SIZE must be positive, got %d", c.ConnectionBufferSize)
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("WRITE_TIMEOUT must be positive, got %s", c.WriteTimeout)
	}
	if c.ReportBufferSize < 0 {
		return fmt.Errorf("REPORT_BUFFER_SIZE must not be negative, got %d", c.ReportBufferSize)
	}
	// Both drive a time.Ticker, which panics on a non-positive period.
	if c.GCInterval <= 0 {
		return fmt.Errorf("GC_INTERVAL must be positive, got %s", c.GCInterval)
	}
	if c.MetricInterval <= 0 {
		return fmt.Errorf("METRIC_INTERVAL must be positive, got %s", c.MetricInterval)
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 bytes")
	}
	return nil
}

func (c Config) HTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.HTTPPort)
}

func (c Config) GRPCAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.GRPCPort)
}
