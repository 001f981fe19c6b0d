package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maxpert/respb-protocol/internal/respbserver"
	"github.com/maxpert/respb-protocol/internal/serverconfig"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the demo RESPB TCP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg, err := serverconfig.Load(ctx)
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.ListenAddr = serveAddr
		}

		log.Info("serving", zap.String("listen_addr", cfg.ListenAddr))
		srv := respbserver.New(log)
		return srv.Serve(ctx, cfg.ListenAddr, cfg.Reuseport)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address override (default from RESPB_LISTEN_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
