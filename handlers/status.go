package handlers

import (
	"net/http"

	"github.com/ICI-Laboratories/lmServer/helpers"
	"github.com/ICI-Laboratories/lmServer/interfaces"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// StatusResponse is the balancer state view returned by GET /status.
type StatusResponse struct {
	// Services lists every routable kind plus, when present, the unknown bucket.
	Services []ServiceStatus `json:"services"`
	// TrackedNodes is the total registry size, stale-but-unevicted records included.
	TrackedNodes int `json:"tracked_nodes"`
}

// ServiceStatus groups the currently-live nodes of one kind.
type ServiceStatus struct {
	Kind  string       `json:"kind"`
	Nodes []NodeStatus `json:"nodes"`
}

// NodeStatus is one live node row.
type NodeStatus struct {
	Identity      string   `json:"identity"`
	Endpoint      string   `json:"endpoint"`
	LastSeenAgeMs int64    `json:"last_seen_age_ms"`
	LoadHint      *float64 `json:"load_hint,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// Status serves the live node table per service kind.
type Status struct {
	registry interfaces.NodeRegistry
	clock    interfaces.TimeProvider
	logger   log.Logger
}

// NewStatus creates a new Status. Panics on nil registry, clock or logger.
func NewStatus(registry interfaces.NodeRegistry, clock interfaces.TimeProvider, logger log.Logger) *Status {
	logger = log.WithPrefix(helpers.NilPanic(logger, "handlers.status.go: logger is required"), "component", "Status")
	return &Status{
		registry: helpers.NilPanic(registry, "handlers.status.go: registry is required"),
		clock:    helpers.NilPanic(clock, "handlers.status.go: clock is required"),
		logger:   logger,
	}
}

// Handle (GET /status) returns the per-kind table of currently-live nodes.
func (h *Status) Handle(ectx echo.Context) error {
	records := h.registry.SnapshotAll()
	return ectx.JSON(http.StatusOK, toStatusResponse(records, h.clock.Now(), h.registry.Size()))
}

// Healthz (GET /healthz) reports process liveness.
func Healthz(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
