package handlers

import (
	"time"

	"github.com/ICI-Laboratories/lmServer/domain"

	"github.com/labstack/echo/v4"
)

// toStatusResponse converts live records into the status view. Every routable
// kind appears even when it has no nodes; unknown-kind nodes get their own
// section only when present. Rows keep the registry's identity order.
func toStatusResponse(records []domain.NodeRecord, now time.Time, tracked int) StatusResponse {
	byKind := make(map[domain.ServiceKind][]NodeStatus, len(domain.RoutableKinds))
	for _, rec := range records {
		byKind[rec.Kind] = append(byKind[rec.Kind], NodeStatus{
			Identity:      string(rec.Identity),
			Endpoint:      rec.Endpoint,
			LastSeenAgeMs: now.Sub(rec.LastSeen).Milliseconds(),
			LoadHint:      rec.LoadHint,
		})
	}

	kinds := append([]domain.ServiceKind{}, domain.RoutableKinds...)
	if len(byKind[domain.KindUnknown]) > 0 {
		kinds = append(kinds, domain.KindUnknown)
	}

	services := make([]ServiceStatus, 0, len(kinds))
	for _, kind := range kinds {
		nodes := byKind[kind]
		if nodes == nil {
			nodes = []NodeStatus{}
		}
		services = append(services, ServiceStatus{Kind: string(kind), Nodes: nodes})
	}

	return StatusResponse{Services: services, TrackedNodes: tracked}
}

// toRelayedResponse writes an upstream reply to the client unmodified: the
// status code, headers and body exactly as the node sent them.
func toRelayedResponse(ectx echo.Context, resp *domain.UpstreamResponse) error {
	header := ectx.Response().Header()
	for name, values := range resp.Header {
		for _, value := range values {
			header.Add(name, value)
		}
	}
	ectx.Response().WriteHeader(resp.StatusCode)
	_, err := ectx.Response().Write(resp.Body)
	return err
}
