package adapters

import (
	"context"
	"net"
	"time"

	"github.com/ICI-Laboratories/lmServer/domain"
	"github.com/ICI-Laboratories/lmServer/helpers"
	"github.com/ICI-Laboratories/lmServer/interfaces"
	"github.com/ICI-Laboratories/lmServer/metrics"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/time/rate"
)

// maxDatagramSize bounds one announcement read. Announcements are short
// single-line messages; anything larger is already malformed.
const maxDatagramSize = 1024

// UDPListener receives announcement datagrams and feeds the registry. One
// instance owns the socket read loop; decode failures are counted and dropped
// without ever answering the sender.
type UDPListener struct {
	conn             net.PacketConn
	registry         interfaces.NodeRegistry
	logger           log.Logger
	discoveryMetrics *metrics.DiscoveryMetrics
	malformedLog     *rate.Limiter
}

// NewUDPListener creates the announcement listener on an already bound socket.
// Panics on nil conn, registry or logger.
//
// Parameters: conn — bound UDP socket (cmd binds it so startup fails fast on a
// bad address); registry — upsert target; logger — lifecycle and drop logging;
// discoveryMetrics — may be nil (recording is skipped).
//
// Returns: *UDPListener. Run starts the read loop.
//
// Called from cmd when building the balancer.
func NewUDPListener(
	conn net.PacketConn,
	registry interfaces.NodeRegistry,
	logger log.Logger,
	discoveryMetrics *metrics.DiscoveryMetrics,
) *UDPListener {
	return &UDPListener{
		conn:             helpers.NilPanic(conn, "adapters.listener.go: conn is required"),
		registry:         helpers.NilPanic(registry, "adapters.listener.go: registry is required"),
		logger:           log.With(helpers.NilPanic(logger, "adapters.listener.go: logger is required"), "component", "udp_listener"),
		discoveryMetrics: discoveryMetrics,
		// A flood of garbage datagrams must not flood the log; the metric
		// still counts every drop.
		malformedLog: rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

// Run reads datagrams until ctx is canceled, upserting every well-formed
// announcement. Read errors are logged and the loop continues after a short
// pause; the loop exits only via ctx cancellation, which closes the socket.
func (l *UDPListener) Run(ctx context.Context) {
	go func() {
		<-ctx.Done()
		_ = l.conn.Close()
	}()

	_ = log.With(l.logger, "addr", l.conn.LocalAddr().String()).Log("msg", "listening for announcements")

	buf := make([]byte, maxDatagramSize)
	for {
		n, sender, err := l.conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				_ = l.logger.Log("msg", "listener stopped")
				return
			}
			level.Error(l.logger).Log("msg", "udp read failed", "err", err)
			time.Sleep(time.Second)
			continue
		}
		l.handle(buf[:n], sender)
	}
}

// handle decodes one datagram and upserts it. Malformed payloads are counted,
// rate-limited-logged and dropped; the sender never gets a response.
func (l *UDPListener) handle(payload []byte, sender net.Addr) {
	ann, err := domain.DecodeAnnouncement(payload)
	if err != nil {
		l.discoveryMetrics.RecordMalformed()
		if l.malformedLog.Allow() {
			level.Warn(l.logger).Log("msg", "dropping malformed announcement", "sender", sender.String(), "err", err)
		}
		return
	}

	l.discoveryMetrics.RecordAnnouncement()
	if l.registry.Upsert(ann.Record()) {
		l.discoveryMetrics.RecordJoined()
	}
}
