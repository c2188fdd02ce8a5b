package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ICI-Laboratories/lmServer/adapters"
	"github.com/ICI-Laboratories/lmServer/handlers"
	"github.com/ICI-Laboratories/lmServer/metrics"
	"github.com/ICI-Laboratories/lmServer/service"

	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

func balancerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balancer",
		Short: "Run the announcement listener and the HTTP load balancer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCommandConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.ValidateBalancer(); err != nil {
				return err
			}
			return runBalancer(cfg)
		},
	}
	cmd.Flags().String("listen-addr", "", "HTTP listen address, [host]:port")
	cmd.Flags().String("udp-addr", "", "UDP announcement listen address, [host]:port")
	return cmd
}

// runBalancer wires the balancer and blocks until SIGINT/SIGTERM. The UDP
// socket is bound before anything starts so a bad address fails the command
// instead of surfacing later in the listener goroutine.
func runBalancer(cfg *Config) error {
	logger := newLogger(cfg.Logging.Level)

	clock := service.NewTimeProvider(func() time.Time { return time.Now().UTC() })
	registry := service.NewRegistry(clock, cfg.Balancer.HeartbeatTTL(), logger)
	selector := service.NewSelector()

	var discoveryMetrics *metrics.DiscoveryMetrics
	var routerMetrics *metrics.RouterMetrics
	if cfg.Metrics.Enabled {
		discoveryMetrics = metrics.NewDiscoveryMetrics(func() float64 { return float64(registry.Size()) })
		routerMetrics = metrics.NewRouterMetrics()
	}

	forwarder := adapters.ForwarderHTTP(&http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: cfg.Balancer.ConnectTimeout()}).DialContext,
		},
	})
	router := service.NewRouter(registry, selector, forwarder, logger, routerMetrics,
		cfg.Balancer.RetryBudget, cfg.Balancer.ForwardTimeout())

	conn, err := net.ListenPacket("udp", cfg.Balancer.UDPAddr)
	if err != nil {
		return fmt.Errorf("failed to bind announcement socket on %s: %w", cfg.Balancer.UDPAddr, err)
	}
	listener := adapters.NewUDPListener(conn, registry, logger, discoveryMetrics)
	sweeper := service.NewSweeper(registry, clock, logger, discoveryMetrics, cfg.Balancer.SweepInterval())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go listener.Run(ctx)
	go sweeper.Run(ctx)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	service.RegisterErrorHandler(e, logger)
	handlers.RegisterRoutes(e,
		handlers.NewProxy(router, logger),
		handlers.NewStatus(registry, clock, logger),
		cfg.Metrics.Enabled,
	)

	level.Info(logger).Log("msg", "starting balancer",
		"listen_addr", cfg.Balancer.ListenAddr,
		"udp_addr", cfg.Balancer.UDPAddr,
		"heartbeat_ttl", cfg.Balancer.HeartbeatTTL(),
		"retry_budget", cfg.Balancer.RetryBudget,
	)
	go func() {
		if err := e.Start(cfg.Balancer.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			level.Error(logger).Log("msg", "http server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	level.Info(logger).Log("msg", "shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "http shutdown failed", "err", err)
	}
	return nil
}
