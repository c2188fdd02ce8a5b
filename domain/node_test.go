package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseServiceKind(t *testing.T) {
	assert.Equal(t, KindLMStudio, ParseServiceKind("lmstudio"))
	assert.Equal(t, KindOllama, ParseServiceKind("ollama"))
	assert.Equal(t, KindUnknown, ParseServiceKind("vllm"))
	assert.Equal(t, KindUnknown, ParseServiceKind(""))
}

func TestServiceKindRoutable(t *testing.T) {
	assert.True(t, KindLMStudio.Routable())
	assert.True(t, KindOllama.Routable())
	assert.False(t, KindUnknown.Routable())
	assert.False(t, ServiceKind("vllm").Routable())
}

func TestNodeRecordLiveAt(t *testing.T) {
	seen := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ttl := 30 * time.Second
	rec := NodeRecord{Identity: "a@1.2.3.4:11434", Kind: KindOllama, Endpoint: "1.2.3.4:11434", LastSeen: seen}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "just announced", now: seen, want: true},
		{name: "inside ttl", now: seen.Add(ttl - time.Second), want: true},
		{name: "exactly at ttl", now: seen.Add(ttl), want: true},
		{name: "past ttl", now: seen.Add(ttl + time.Nanosecond), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rec.LiveAt(tt.now, ttl))
		})
	}
}

func TestIdentityFor(t *testing.T) {
	assert.Equal(t, NodeIdentity("host-1@10.0.0.5:11434"), IdentityFor("host-1", "10.0.0.5:11434"))
}
