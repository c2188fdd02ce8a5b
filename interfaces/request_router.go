package interfaces

import (
	"context"

	"github.com/ICI-Laboratories/lmServer/domain"
)

// RequestRouter routes one inbound request to a live node of the requested
// kind and returns that node's response.
//
// Implemented by service.Router. Called from handlers.Proxy for every
// inbound proxied request.
//
//go:generate moq -stub -out mock/request_router.go -pkg mock . RequestRouter
type RequestRouter interface {
	// Route forwards req to a node of the given kind, retrying a different node on transport failure.
	// Parameters: ctx — inbound request context; kind — required service kind; req — replayable request.
	// Returns: (*domain.UpstreamResponse, nil) when some node answered, whatever its HTTP status;
	// a coded error (bad_parameter, no_available_node, upstream_unavailable) otherwise.
	// Called from handlers.Proxy.Handle once per inbound request.
	Route(ctx context.Context, kind domain.ServiceKind, req *domain.UpstreamRequest) (*domain.UpstreamResponse, error)
}
