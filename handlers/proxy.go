// Package handlers contains the http handlers for the lmserver balancer.
package handlers

import (
	"github.com/ICI-Laboratories/lmServer/helpers"
	"github.com/ICI-Laboratories/lmServer/interfaces"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// Proxy forwards inference traffic to live nodes of the requested kind.
type Proxy struct {
	router interfaces.RequestRouter
	logger log.Logger
}

// NewProxy creates a new Proxy. Panics on nil router or logger.
func NewProxy(router interfaces.RequestRouter, logger log.Logger) *Proxy {
	logger = log.WithPrefix(helpers.NilPanic(logger, "handlers.proxy.go: logger is required"), "component", "Proxy")
	return &Proxy{
		router: helpers.NilPanic(router, "handlers.proxy.go: router is required"),
		logger: logger,
	}
}

// Handle (ANY /:kind and /:kind/*) forwards one request to a live node of the
// kind named by the first path segment and relays the node's response
// unmodified. Returns 400 on an unknown service segment, 503 when no node is
// live, 502 when every forward attempt failed.
func (h *Proxy) Handle(ectx echo.Context) error {
	kind, err := fromKindParam(ectx.Param("kind"))
	if err != nil {
		return err
	}

	req, err := fromProxyRequest(ectx)
	if err != nil {
		return err
	}

	resp, err := h.router.Route(ectx.Request().Context(), kind, req)
	if err != nil {
		return err
	}

	return toRelayedResponse(ectx, resp)
}
