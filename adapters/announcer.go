package adapters

import (
	"context"
	"net"
	"time"

	"github.com/ICI-Laboratories/lmServer/domain"
	"github.com/ICI-Laboratories/lmServer/helpers"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Announcer periodically announces one service over UDP so the balancer keeps
// this node's registry record fresh. One announcer handles one service kind;
// a node offering several kinds runs one announcer per kind, all sharing the
// node id. Announcements are fire-and-forget: nothing is ever read back and a
// failed send only costs one heartbeat.
type Announcer struct {
	conn     net.Conn
	nodeID   string
	kind     domain.ServiceKind
	endpoint string
	loadHint func() *float64
	logger   log.Logger
	interval time.Duration
}

// NewAnnouncer creates an announcer writing to conn. Panics on nil conn or
// logger, empty nodeID or endpoint, or a non-positive interval.
//
// Parameters: conn — UDP socket dialed to the balancer's announce address (cmd
// dials it so startup fails fast on a bad target); nodeID — stable node
// identifier shared by all of this node's announcers; kind — the service kind
// to announce; endpoint — host:port the balancer should forward requests to;
// loadHint — sampled before every send, nil when the node never reports load;
// logger; interval — time between announcements (e.g. 10s).
//
// Returns: *Announcer. Run starts the announce loop.
//
// Called from cmd when building the node.
func NewAnnouncer(
	conn net.Conn,
	nodeID string,
	kind domain.ServiceKind,
	endpoint string,
	loadHint func() *float64,
	logger log.Logger,
	interval time.Duration,
) *Announcer {
	if interval <= 0 {
		panic("adapters.announcer.go: interval must be positive")
	}
	return &Announcer{
		conn:     helpers.NilPanic(conn, "adapters.announcer.go: conn is required"),
		nodeID:   helpers.StrPanic(nodeID, "adapters.announcer.go: nodeID is required"),
		kind:     kind,
		endpoint: helpers.StrPanic(endpoint, "adapters.announcer.go: endpoint is required"),
		loadHint: loadHint,
		logger:   log.With(helpers.NilPanic(logger, "adapters.announcer.go: logger is required"), "component", "announcer", "kind", kind),
		interval: interval,
	}
}

// Run announces immediately, then every interval until ctx is canceled. The
// immediate send lets the balancer learn about the node without waiting out
// one full interval. Send failures are logged and the next tick proceeds.
func (a *Announcer) Run(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	_ = log.With(a.logger, "endpoint", a.endpoint, "balancer", a.conn.RemoteAddr().String(), "interval", a.interval).Log("msg", "announcing service")

	a.announce()
	for {
		select {
		case <-ctx.Done():
			_ = a.logger.Log("msg", "announcer stopped")
			return
		case <-ticker.C:
			a.announce()
		}
	}
}

// announce sends one announcement with the current load hint.
func (a *Announcer) announce() {
	ann := domain.Announcement{
		NodeID:   a.nodeID,
		Kind:     a.kind,
		Endpoint: a.endpoint,
	}
	if a.loadHint != nil {
		ann.LoadHint = a.loadHint()
	}

	if _, err := a.conn.Write(domain.EncodeAnnouncement(ann)); err != nil {
		level.Error(a.logger).Log("msg", "announcement send failed", "err", err)
	}
}
