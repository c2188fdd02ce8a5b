// Package main is the entry point for the lmserver binary. It exposes two
// subcommands: "balancer" runs the discovery listener plus the HTTP balancer
// (adapters.NewUDPListener, service.NewRegistry/NewSelector/NewRouter/NewSweeper,
// handlers.RegisterRoutes on echo), and "node" announces local inference
// services to a balancer over UDP (adapters.NewAnnouncer per configured
// endpoint). Configuration is loaded from defaults, an optional YAML file,
// LMSERVER_* environment variables and command-line flags, in that order.
package main

import (
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lmserver",
		Short: "lmserver - load balancer for local LLM inference nodes",
		Long: `lmserver balances HTTP traffic across LM Studio and Ollama instances.

Nodes announce themselves to the balancer over UDP; the balancer tracks the
live set and forwards each request to the least loaded instance of the
requested service kind.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "path to the lmserver YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(balancerCmd())
	rootCmd.AddCommand(nodeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadCommandConfig resolves the full configuration for a subcommand from its
// flag set plus the persistent root flags.
func loadCommandConfig(cmd *cobra.Command) (*Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return LoadConfig(configPath, cmd.Flags())
}

// newLogger builds the process logger: logfmt on stderr with timestamp and
// caller, filtered to the configured level.
func newLogger(levelName string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return level.NewFilter(logger, levelOption(levelName))
}

func levelOption(levelName string) level.Option {
	switch levelName {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}
