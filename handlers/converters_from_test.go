package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ICI-Laboratories/lmServer/domain"
	"github.com/ICI-Laboratories/lmServer/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromKindParam(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		want    domain.ServiceKind
		wantErr bool
	}{
		{name: "ollama", segment: "ollama", want: domain.KindOllama},
		{name: "lmstudio", segment: "lmstudio", want: domain.KindLMStudio},
		{name: "unknown service", segment: "vllm", wantErr: true},
		{name: "empty segment", segment: "", wantErr: true},
		{name: "case sensitive", segment: "Ollama", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fromKindParam(tt.segment)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, service.IsBadParameterError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// newProxyContext builds an echo context the way the proxy catch-all route
// produces it, with the wildcard parameter already extracted.
func newProxyContext(t *testing.T, method, target, wildcard string, body string) echo.Context {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	ectx := echo.New().NewContext(req, rec)
	ectx.SetParamNames("kind", "*")
	ectx.SetParamValues("ollama", wildcard)
	return ectx
}

func TestFromProxyRequest(t *testing.T) {
	ectx := newProxyContext(t, http.MethodPost, "/ollama/api/generate?stream=false", "api/generate", `{"prompt":"hi"}`)
	ectx.Request().Header.Set("Content-Type", "application/json")

	req, err := fromProxyRequest(ectx)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/generate", req.Path)
	assert.Equal(t, "stream=false", req.Query)
	assert.Equal(t, `{"prompt":"hi"}`, string(req.Body))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
}

func TestFromProxyRequest_BarePath(t *testing.T) {
	ectx := newProxyContext(t, http.MethodPost, "/ollama", "", "")

	req, err := fromProxyRequest(ectx)
	require.NoError(t, err)
	assert.Equal(t, "/", req.Path)
	assert.Empty(t, req.Query)
	assert.Empty(t, req.Body)
}

func TestFromProxyRequest_HeaderIsACopy(t *testing.T) {
	ectx := newProxyContext(t, http.MethodGet, "/ollama/api/tags", "api/tags", "")
	ectx.Request().Header.Set("Authorization", "Bearer token")

	req, err := fromProxyRequest(ectx)
	require.NoError(t, err)

	// Mutating the converted request must not leak back into the inbound one.
	req.Header.Set("Authorization", "mutated")
	assert.Equal(t, "Bearer token", ectx.Request().Header.Get("Authorization"))
}
