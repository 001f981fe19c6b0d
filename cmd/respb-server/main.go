// Command respb-server runs the demonstration RESPB TCP frontend.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/maxpert/respb-protocol/internal/respbserver"
	"github.com/maxpert/respb-protocol/internal/serverconfig"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "respb-server:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := serverconfig.Load(ctx)
	if err != nil {
		return err
	}

	log, err := serverconfig.MakeLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("starting respb-server",
		zap.String("listen_addr", cfg.ListenAddr),
		zap.Bool("reuseport", cfg.Reuseport))

	srv := respbserver.New(log)
	return srv.Serve(ctx, cfg.ListenAddr, cfg.Reuseport)
}
