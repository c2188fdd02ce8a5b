package handlers

import (
	"fmt"
	"io"

	"github.com/ICI-Laboratories/lmServer/domain"
	"github.com/ICI-Laboratories/lmServer/service"

	"github.com/labstack/echo/v4"
)

// fromKindParam maps the first path segment onto a routable service kind.
// Returns service.BadParameterError for anything else.
func fromKindParam(segment string) (domain.ServiceKind, error) {
	kind := domain.ParseServiceKind(segment)
	if !kind.Routable() {
		return domain.KindUnknown, service.NewBadParameterError(fmt.Sprintf("unknown service %q", segment), nil)
	}
	return kind, nil
}

// fromProxyRequest converts an inbound echo request into a replayable upstream
// request. The body is fully buffered so a failed forward can be retried
// against another node with the same bytes. The upstream path is the wildcard
// remainder after the kind segment; a bare /<kind> request maps to "/".
func fromProxyRequest(ectx echo.Context) (*domain.UpstreamRequest, error) {
	httpReq := ectx.Request()

	body, err := io.ReadAll(httpReq.Body)
	if err != nil {
		return nil, service.NewBadParameterError("failed to read request body", err)
	}

	return &domain.UpstreamRequest{
		Method: httpReq.Method,
		Path:   "/" + ectx.Param("*"),
		Query:  httpReq.URL.RawQuery,
		Header: httpReq.Header.Clone(),
		Body:   body,
	}, nil
}
