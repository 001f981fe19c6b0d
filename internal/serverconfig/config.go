// Package serverconfig loads the demo server's runtime configuration from the
// environment, in the same style the wider example pack uses for its own
// service configuration.
package serverconfig

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the tunables for cmd/respb-server. Every field is overridable
// through the environment so the binary needs no config file to run.
type Config struct {
	// ListenAddr is the host:port the netpoll listener binds to.
	ListenAddr string `env:"RESPB_LISTEN_ADDR,default=0.0.0.0:6410"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"RESPB_LOG_LEVEL,default=info"`

	// Reuseport enables SO_REUSEPORT on the listening socket.
	Reuseport bool `env:"RESPB_REUSEPORT,default=false"`
}

// Load reads Config from the process environment, applying defaults for any
// variable left unset.
func Load(ctx context.Context) (*Config, error) {
	cfg := Config{}
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
