package adapters

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/ICI-Laboratories/lmServer/domain"
	"github.com/ICI-Laboratories/lmServer/helpers"
	"github.com/ICI-Laboratories/lmServer/interfaces"
)

// hopHeaders are connection-scoped headers that must not be relayed in either
// direction (RFC 7230 section 6.1).
var hopHeaders = []string{
	"Connection",
	"Proxy-Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// ForwarderHTTP creates an interfaces.Forwarder that performs one plain-HTTP
// exchange per call against a node endpoint. Panics on nil client.
//
// Parameter client — shared HTTP client; cmd builds it with the connect
// timeout, the overall deadline comes from the caller's ctx.
//
// Returns: interfaces.Forwarder (*forwarderHTTP).
//
// Called from cmd when building the balancer.
func ForwarderHTTP(client *http.Client) interfaces.Forwarder {
	return &forwarderHTTP{
		client: helpers.NilPanic(client, "adapters.forwarder.go: http client is required"),
	}
}

// forwarderHTTP implements interfaces.Forwarder. Used by service.Router for every
// forward attempt. Holds the shared http.Client.
type forwarderHTTP struct {
	client *http.Client
}

// Forward sends req to http://endpoint{req.Path}?{req.Query} and buffers the
// full response. Hop-by-hop headers are stripped in both directions; everything
// else is relayed untouched. The request body is replayed from req.Body, so the
// same req can be forwarded again to another node after a failure.
//
// Returns: (*domain.UpstreamResponse, nil) for any HTTP status; (nil, error) on
// dial/write/read failure or when ctx expires mid-exchange.
//
// Called from service.Router.Route once per attempt.
func (f *forwarderHTTP) Forward(ctx context.Context, endpoint string, req *domain.UpstreamRequest) (*domain.UpstreamResponse, error) {
	u := url.URL{
		Scheme:   "http",
		Host:     endpoint,
		Path:     req.Path,
		RawQuery: req.Query,
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), bytes.NewReader(req.Body))
	if err != nil {
		return nil, err
	}
	httpReq.Header = relayedHeaders(req.Header)

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &domain.UpstreamResponse{
		StatusCode: resp.StatusCode,
		Header:     relayedHeaders(resp.Header),
		Body:       body,
	}, nil
}

// relayedHeaders copies h without hop-by-hop headers and without
// Content-Length, which the writing side recomputes from the buffered body.
func relayedHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for name, values := range h {
		out[name] = append([]string(nil), values...)
	}
	for _, name := range hopHeaders {
		out.Del(name)
	}
	out.Del("Content-Length")
	return out
}
