package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maxpert/respb-protocol/internal/serverconfig"
)

var (
	logLevel string
	log      *zap.Logger
)

// rootCmd is the base command for respbctl.
var rootCmd = &cobra.Command{
	Use:   "respbctl",
	Short: "Inspect, build, and serve RESPB frames",
	Long: `respbctl is the operator-facing CLI for the RESPB wire protocol.

It can decode a captured frame into a human-readable form, encode a
frame from a command name and arguments, or run the demo TCP server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		log, err = serverconfig.MakeLogger(logLevel)
		return err
	},
}

// Execute runs the root command, printing any error to stderr.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
}
