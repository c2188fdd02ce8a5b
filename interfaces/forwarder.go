package interfaces

import (
	"context"

	"github.com/ICI-Laboratories/lmServer/domain"
)

// Forwarder performs a single proxied HTTP exchange with one upstream node.
//
// Implemented by adapters.ForwarderHTTP. Called from service.Router
// with a per-attempt deadline. A response of any HTTP status is a success and
// is relayed as-is; transport errors and deadline expiry are failures that
// make the router retry against a different node.
//
//go:generate moq -stub -out mock/forwarder.go -pkg mock . Forwarder
type Forwarder interface {
	// Forward sends req to the node at endpoint and returns the fully received response.
	// Parameters: ctx — carries the per-attempt deadline; endpoint — upstream "host:port"; req — replayable request.
	// Returns: (*domain.UpstreamResponse, nil) for any HTTP status code; (nil, error) on dial/write/read failure or ctx expiry.
	// Called from service.Router.Route once per attempt.
	Forward(ctx context.Context, endpoint string, req *domain.UpstreamRequest) (*domain.UpstreamResponse, error)
}
