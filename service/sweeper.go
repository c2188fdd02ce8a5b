package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ICI-Laboratories/lmServer/helpers"
	"github.com/ICI-Laboratories/lmServer/interfaces"
	"github.com/ICI-Laboratories/lmServer/metrics"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Sweeper periodically deletes expired records from the registry. Reads never
// depend on it for correctness (liveness is derived at snapshot time); the
// sweeper only keeps the table from growing with nodes that stopped
// announcing. One pass failing or panicking never stops the loop.
type Sweeper struct {
	registry         interfaces.NodeRegistry
	clock            interfaces.TimeProvider
	logger           log.Logger
	discoveryMetrics *metrics.DiscoveryMetrics
	interval         time.Duration
}

// NewSweeper creates the eviction sweeper. Panics on nil registry/clock/logger
// or a non-positive interval.
//
// Parameters: registry — table to sweep; clock — tick reference time; logger —
// eviction counts and sweep failures are logged; discoveryMetrics — may be nil
// (recording is skipped); interval — time between passes, typically half the
// heartbeat TTL with a one second floor.
//
// Returns: *Sweeper.
//
// Called from cmd when building the balancer; Run is started in its own goroutine.
func NewSweeper(
	registry interfaces.NodeRegistry,
	clock interfaces.TimeProvider,
	logger log.Logger,
	discoveryMetrics *metrics.DiscoveryMetrics,
	interval time.Duration,
) *Sweeper {
	if interval <= 0 {
		panic("service.sweeper.go: interval must be positive")
	}
	return &Sweeper{
		registry:         helpers.NilPanic(registry, "service.sweeper.go: registry is required"),
		clock:            helpers.NilPanic(clock, "service.sweeper.go: clock is required"),
		logger:           log.With(helpers.NilPanic(logger, "service.sweeper.go: logger is required"), "component", "sweeper"),
		discoveryMetrics: discoveryMetrics,
		interval:         interval,
	}
}

// Run sweeps every interval until ctx is canceled. This is the only way the
// loop exits; it is meant to be canceled at process shutdown.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	_ = log.With(s.logger, "interval", s.interval).Log("msg", "sweeper started")
	for {
		select {
		case <-ctx.Done():
			_ = s.logger.Log("msg", "sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep runs one eviction pass. A panic out of the registry is recovered and
// logged so the next tick still runs.
func (s *Sweeper) sweep() {
	defer func() {
		if r := recover(); r != nil {
			level.Error(s.logger).Log(
				"msg", "sweep failed",
				"err", NewRegistryInternalError(fmt.Sprintf("sweep panic: %v", r), nil),
			)
		}
	}()

	evicted := s.registry.EvictExpired(s.clock.Now())
	if evicted > 0 {
		s.discoveryMetrics.RecordEvicted(evicted)
		_ = log.With(s.logger, "evicted", evicted).Log("msg", "evicted expired nodes")
	}
}
