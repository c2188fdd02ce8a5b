package domain

import "net/http"

// UpstreamRequest is the replayable form of an inbound proxy request: the body
// is fully buffered so the same request can be retried against another node.
// Path is the upstream-relative path beginning with "/"; Query is the raw query
// string without "?" (may be empty).
type UpstreamRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// UpstreamResponse is a fully received upstream reply. Any HTTP status counts
// as a successful forward; the caller relays status, headers and body as-is.
type UpstreamResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}
