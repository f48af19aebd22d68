package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Empty addresses skip the suite
	RelayGRPCAddr string `envconfig:"RELAY_GRPC_ADDR"`
	RelayHTTPAddr string `envconfig:"RELAY_HTTP_ADDR"`
	JWTSecret     string `envconfig:"JWT_SECRET"`
	JWTIssuer     string `envconfig:"JWT_ISSUER" default:"chat-relay"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

func (c Config) Enabled() bool {
	return c.RelayGRPCAddr != "" && c.RelayHTTPAddr != "" && c.JWTSecret != ""
}
