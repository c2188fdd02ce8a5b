package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ICI-Laboratories/lmServer/adapters"
	"github.com/ICI-Laboratories/lmServer/domain"

	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func nodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Announce local inference services to a balancer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCommandConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.ValidateNode(); err != nil {
				return err
			}
			return runNode(cfg)
		},
	}
	cmd.Flags().StringP("balancer-host", "i", "", "balancer host to announce to")
	cmd.Flags().IntP("balancer-port", "p", 4000, "balancer announcement port")
	cmd.Flags().String("lmstudio-endpoint", "", "host:port of the local LM Studio server")
	cmd.Flags().String("ollama-endpoint", "", "host:port of the local Ollama server")
	cmd.Flags().Float64("load-hint", -1.0, "static load hint to report, negative disables load reporting")
	return cmd
}

// runNode starts one announcer per configured service and blocks until
// SIGINT/SIGTERM. The node identifier is minted per process so a restarted
// node registers as a fresh entry rather than resurrecting the old one.
func runNode(cfg *Config) error {
	logger := newLogger(cfg.Logging.Level)

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown-host"
	}
	nodeID := hostname + "-" + uuid.NewString()

	type announcedService struct {
		kind     domain.ServiceKind
		endpoint string
	}
	var services []announcedService
	if cfg.Node.LMStudioEndpoint != "" {
		services = append(services, announcedService{kind: domain.KindLMStudio, endpoint: cfg.Node.LMStudioEndpoint})
	}
	if cfg.Node.OllamaEndpoint != "" {
		services = append(services, announcedService{kind: domain.KindOllama, endpoint: cfg.Node.OllamaEndpoint})
	}

	target := cfg.Node.BalancerTarget()
	var loadFn func() *float64
	if hint := cfg.Node.LoadHintValue(); hint != nil {
		loadFn = func() *float64 { return hint }
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	conns := make([]net.Conn, 0, len(services))
	for _, svc := range services {
		conn, dialErr := net.Dial("udp", target)
		if dialErr != nil {
			for _, c := range conns {
				_ = c.Close()
			}
			return fmt.Errorf("failed to dial balancer at %s: %w", target, dialErr)
		}
		conns = append(conns, conn)

		announcer := adapters.NewAnnouncer(conn, nodeID, svc.kind, svc.endpoint, loadFn, logger, cfg.Node.AnnounceInterval())
		wg.Add(1)
		go func() {
			defer wg.Done()
			announcer.Run(ctx)
		}()
	}

	level.Info(logger).Log("msg", "node started",
		"node_id", nodeID,
		"balancer", target,
		"services", len(services),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	level.Info(logger).Log("msg", "shutting down")
	cancel()
	wg.Wait()
	for _, c := range conns {
		_ = c.Close()
	}
	return nil
}
