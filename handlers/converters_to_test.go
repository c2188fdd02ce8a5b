package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ICI-Laboratories/lmServer/domain"
	"github.com/ICI-Laboratories/lmServer/helpers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStatusResponse(t *testing.T) {
	now := helpers.TestNow()
	records := []domain.NodeRecord{
		{
			Identity: domain.IdentityFor("a", "10.0.0.1:1234"),
			Kind:     domain.KindLMStudio,
			Endpoint: "10.0.0.1:1234",
			LastSeen: now.Add(-2 * time.Second),
		},
		{
			Identity: domain.IdentityFor("b", "10.0.0.2:11434"),
			Kind:     domain.KindOllama,
			Endpoint: "10.0.0.2:11434",
			LastSeen: now.Add(-7 * time.Second),
			LoadHint: helpers.Ptr(1.5),
		},
		{
			Identity: domain.IdentityFor("c", "10.0.0.3:11434"),
			Kind:     domain.KindOllama,
			Endpoint: "10.0.0.3:11434",
			LastSeen: now,
		},
	}

	resp := toStatusResponse(records, now, 5)

	assert.Equal(t, 5, resp.TrackedNodes)
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "lmstudio", resp.Services[0].Kind)
	assert.Equal(t, "ollama", resp.Services[1].Kind)

	require.Len(t, resp.Services[0].Nodes, 1)
	assert.Equal(t, int64(2000), resp.Services[0].Nodes[0].LastSeenAgeMs)

	require.Len(t, resp.Services[1].Nodes, 2)
	assert.Equal(t, "b@10.0.0.2:11434", resp.Services[1].Nodes[0].Identity)
	assert.Equal(t, "c@10.0.0.3:11434", resp.Services[1].Nodes[1].Identity)
	assert.Equal(t, int64(0), resp.Services[1].Nodes[1].LastSeenAgeMs)
}

func TestToStatusResponse_UnknownKindSectionOnlyWhenPresent(t *testing.T) {
	now := helpers.TestNow()

	resp := toStatusResponse(nil, now, 0)
	require.Len(t, resp.Services, 2, "no unknown section without unknown nodes")

	resp = toStatusResponse([]domain.NodeRecord{{
		Identity: domain.IdentityFor("x", "10.0.0.9:9000"),
		Kind:     domain.KindUnknown,
		Endpoint: "10.0.0.9:9000",
		LastSeen: now,
	}}, now, 1)
	require.Len(t, resp.Services, 3)
	assert.Equal(t, "unknown", resp.Services[2].Kind)
	assert.Len(t, resp.Services[2].Nodes, 1)
}

func TestToRelayedResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ollama", nil)
	rec := httptest.NewRecorder()
	ectx := echo.New().NewContext(req, rec)

	err := toRelayedResponse(ectx, &domain.UpstreamResponse{
		StatusCode: http.StatusTeapot,
		Header:     http.Header{"X-Upstream": {"one", "two"}, "Content-Type": {"text/plain"}},
		Body:       []byte("short and stout"),
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
	assert.Equal(t, []string{"one", "two"}, rec.Header().Values("X-Upstream"))
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}
