package domain

import (
	"math"
	"net"
	"strconv"
	"strings"
)

// announceTag is the leading field of every announcement datagram.
const announceTag = "DISCOVER"

// Announcement is one UDP datagram's worth of node presence: who the node is,
// what it serves, where to forward to, and optionally how loaded it is.
// Wire format, comma-delimited:
//
//	DISCOVER,<kind>,<node-id>,<endpoint>[,<load>]
type Announcement struct {
	NodeID   string
	Kind     ServiceKind
	Endpoint string // host:port
	LoadHint *float64
}

// Identity returns the registry identity this announcement upserts.
func (a Announcement) Identity() NodeIdentity {
	return IdentityFor(a.NodeID, a.Endpoint)
}

// Record converts the announcement into a registry record. LastSeen is left
// zero; the registry stamps it on upsert.
func (a Announcement) Record() NodeRecord {
	return NodeRecord{
		Identity: a.Identity(),
		Kind:     a.Kind,
		Endpoint: a.Endpoint,
		LoadHint: a.LoadHint,
	}
}

// MalformedAnnouncementError is returned by DecodeAnnouncement when a datagram
// does not match the wire format. Such packets are dropped at the UDP
// boundary; the error never propagates past it.
type MalformedAnnouncementError struct {
	Reason string
}

// Error returns a string like "malformed announcement: missing DISCOVER tag".
func (e *MalformedAnnouncementError) Error() string {
	return "malformed announcement: " + e.Reason
}

// DecodeAnnouncement parses a datagram payload. An unrecognized kind tag is
// not a failure: the announcement decodes with KindUnknown. Everything else
// that deviates from the format fails with *MalformedAnnouncementError:
// wrong leading tag, fewer than four fields, empty node id, an endpoint that
// is not host:port, or a load field that does not parse as a finite number.
func DecodeAnnouncement(data []byte) (Announcement, error) {
	msg := strings.TrimSpace(string(data))
	parts := strings.Split(msg, ",")
	if len(parts) < 4 || len(parts) > 5 {
		return Announcement{}, &MalformedAnnouncementError{Reason: "expected 4 or 5 fields, got " + strconv.Itoa(len(parts))}
	}
	if parts[0] != announceTag {
		return Announcement{}, &MalformedAnnouncementError{Reason: "missing " + announceTag + " tag"}
	}
	nodeID := parts[2]
	if nodeID == "" {
		return Announcement{}, &MalformedAnnouncementError{Reason: "empty node id"}
	}
	endpoint := parts[3]
	host, port, err := net.SplitHostPort(endpoint)
	if err != nil || host == "" || port == "" {
		return Announcement{}, &MalformedAnnouncementError{Reason: "endpoint is not host:port: " + strconv.Quote(endpoint)}
	}
	out := Announcement{
		NodeID:   nodeID,
		Kind:     ParseServiceKind(parts[1]),
		Endpoint: endpoint,
	}
	if len(parts) == 5 {
		load, err := strconv.ParseFloat(parts[4], 64)
		if err != nil || math.IsNaN(load) || math.IsInf(load, 0) {
			return Announcement{}, &MalformedAnnouncementError{Reason: "load hint is not a finite number: " + strconv.Quote(parts[4])}
		}
		out.LoadHint = &load
	}
	return out, nil
}

// EncodeAnnouncement renders the wire form of an announcement. The load field
// is omitted when the hint is nil.
func EncodeAnnouncement(a Announcement) []byte {
	fields := []string{announceTag, string(a.Kind), a.NodeID, a.Endpoint}
	if a.LoadHint != nil {
		fields = append(fields, strconv.FormatFloat(*a.LoadHint, 'g', -1, 64))
	}
	return []byte(strings.Join(fields, ","))
}
