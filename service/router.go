package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ICI-Laboratories/lmServer/domain"
	"github.com/ICI-Laboratories/lmServer/helpers"
	"github.com/ICI-Laboratories/lmServer/interfaces"
	"github.com/ICI-Laboratories/lmServer/metrics"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Router forwards one inbound request to a node of the requested kind. It takes
// a single registry snapshot per request (the registry lock is released before
// any network I/O), asks the selector for a node, and forwards with a
// per-attempt deadline. A transport failure or deadline expiry moves on to a
// different node from the same snapshot, up to retryBudget extra attempts; an
// upstream response of any HTTP status ends the loop and is relayed as-is.
// Fields: registry, selector, forwarder, logger, routerMetrics, retryBudget,
// forwardTimeout. The router keeps no cross-request state.
type Router struct {
	registry       interfaces.NodeRegistry
	selector       interfaces.NodeSelector
	forwarder      interfaces.Forwarder
	logger         log.Logger
	routerMetrics  *metrics.RouterMetrics
	retryBudget    int
	forwardTimeout time.Duration
}

// NewRouter creates the request router. Panics on nil registry/selector/
// forwarder/logger, a negative retryBudget or a non-positive forwardTimeout.
//
// Parameters: registry — snapshot source; selector — node choice policy;
// forwarder — upstream HTTP client; logger — failed attempts are logged;
// routerMetrics — may be nil (recording is skipped); retryBudget — extra
// attempts after the first (e.g. 2); forwardTimeout — per-attempt deadline.
//
// Returns: *Router.
//
// Called from cmd when building the balancer.
func NewRouter(
	registry interfaces.NodeRegistry,
	selector interfaces.NodeSelector,
	forwarder interfaces.Forwarder,
	logger log.Logger,
	routerMetrics *metrics.RouterMetrics,
	retryBudget int,
	forwardTimeout time.Duration,
) *Router {
	if retryBudget < 0 {
		panic("service.router.go: retryBudget must not be negative")
	}
	if forwardTimeout <= 0 {
		panic("service.router.go: forwardTimeout must be positive")
	}
	return &Router{
		registry:       helpers.NilPanic(registry, "service.router.go: registry is required"),
		selector:       helpers.NilPanic(selector, "service.router.go: selector is required"),
		forwarder:      helpers.NilPanic(forwarder, "service.router.go: forwarder is required"),
		logger:         log.With(helpers.NilPanic(logger, "service.router.go: logger is required"), "component", "router"),
		routerMetrics:  routerMetrics,
		retryBudget:    retryBudget,
		forwardTimeout: forwardTimeout,
	}
}

// Route forwards req to a node of the given kind and returns the upstream
// response unmodified.
//
// Returns: (*domain.UpstreamResponse, nil) when some node answered, whatever
// its HTTP status; bad_parameter when kind is not routable; no_available_node
// when the snapshot holds no live node (no network call is made);
// upstream_unavailable carrying the ordered attempted identities when every
// attempt failed or the snapshot ran out of untried nodes.
//
// Called from handlers.Proxy for every inbound /lmstudio and /ollama request.
func (r *Router) Route(ctx context.Context, kind domain.ServiceKind, req *domain.UpstreamRequest) (*domain.UpstreamResponse, error) {
	if !kind.Routable() {
		return nil, NewBadParameterError(fmt.Sprintf("kind %q is not routable", kind), nil)
	}

	start := time.Now()
	snapshot := r.registry.Snapshot(kind)

	tried := make(map[domain.NodeIdentity]struct{}, len(snapshot))
	attempted := make([]string, 0, 1+r.retryBudget)
	var lastErr error

	for attempt := 0; attempt < 1+r.retryBudget; attempt++ {
		remaining := make([]domain.NodeRecord, 0, len(snapshot)-len(tried))
		for _, rec := range snapshot {
			if _, done := tried[rec.Identity]; !done {
				remaining = append(remaining, rec)
			}
		}

		node, ok := r.selector.Select(remaining)
		if !ok {
			if attempt == 0 {
				r.routerMetrics.RecordLatency(string(kind), time.Since(start).Seconds(), false)
				return nil, NewNoAvailableNodeError(fmt.Sprintf("no live %s node registered", kind), nil)
			}
			break
		}
		tried[node.Identity] = struct{}{}
		attempted = append(attempted, string(node.Identity))
		if attempt > 0 {
			r.routerMetrics.RecordRetry()
		}

		attemptCtx, cancel := context.WithTimeout(ctx, r.forwardTimeout)
		resp, err := r.forwarder.Forward(attemptCtx, node.Endpoint, req)
		cancel()
		if err == nil {
			r.routerMetrics.RecordLatency(string(kind), time.Since(start).Seconds(), true)
			return resp, nil
		}
		lastErr = err
		level.Warn(r.logger).Log(
			"msg", "forward attempt failed",
			"kind", kind,
			"node", node.Identity,
			"attempt", attempt+1,
			"err", err,
		)
	}

	r.routerMetrics.RecordLatency(string(kind), time.Since(start).Seconds(), false)
	return nil, NewUpstreamUnavailableError(
		fmt.Sprintf("no %s node answered after %d attempts", kind, len(attempted)),
		attempted,
		lastErr,
	)
}
