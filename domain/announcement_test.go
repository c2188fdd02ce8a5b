package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAnnouncement(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		want     Announcement
		wantLoad float64
		hasLoad  bool
	}{
		{
			name:    "ollama without load",
			payload: "DISCOVER,ollama,host-1,10.0.0.5:11434",
			want:    Announcement{NodeID: "host-1", Kind: KindOllama, Endpoint: "10.0.0.5:11434"},
		},
		{
			name:     "lmstudio with load",
			payload:  "DISCOVER,lmstudio,host-2,10.0.0.6:1234,3.5",
			want:     Announcement{NodeID: "host-2", Kind: KindLMStudio, Endpoint: "10.0.0.6:1234"},
			wantLoad: 3.5,
			hasLoad:  true,
		},
		{
			name:     "integer load",
			payload:  "DISCOVER,ollama,host-3,10.0.0.7:11434,7",
			want:     Announcement{NodeID: "host-3", Kind: KindOllama, Endpoint: "10.0.0.7:11434"},
			wantLoad: 7,
			hasLoad:  true,
		},
		{
			name:    "unknown kind is retained not rejected",
			payload: "DISCOVER,vllm,host-4,10.0.0.8:8000",
			want:    Announcement{NodeID: "host-4", Kind: KindUnknown, Endpoint: "10.0.0.8:8000"},
		},
		{
			name:    "surrounding whitespace trimmed",
			payload: "  DISCOVER,ollama,host-5,10.0.0.9:11434\n",
			want:    Announcement{NodeID: "host-5", Kind: KindOllama, Endpoint: "10.0.0.9:11434"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeAnnouncement([]byte(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.want.NodeID, got.NodeID)
			assert.Equal(t, tt.want.Kind, got.Kind)
			assert.Equal(t, tt.want.Endpoint, got.Endpoint)
			if tt.hasLoad {
				require.NotNil(t, got.LoadHint)
				assert.Equal(t, tt.wantLoad, *got.LoadHint)
			} else {
				assert.Nil(t, got.LoadHint)
			}
		})
	}
}

func TestDecodeAnnouncement_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty payload", payload: ""},
		{name: "wrong tag", payload: "HELLO,ollama,host-1,10.0.0.5:11434"},
		{name: "too few fields", payload: "DISCOVER,ollama,host-1"},
		{name: "too many fields", payload: "DISCOVER,ollama,host-1,10.0.0.5:11434,1,extra"},
		{name: "empty node id", payload: "DISCOVER,ollama,,10.0.0.5:11434"},
		{name: "endpoint missing port", payload: "DISCOVER,ollama,host-1,10.0.0.5"},
		{name: "endpoint missing host", payload: "DISCOVER,ollama,host-1,:11434"},
		{name: "load not numeric", payload: "DISCOVER,ollama,host-1,10.0.0.5:11434,busy"},
		{name: "load NaN", payload: "DISCOVER,ollama,host-1,10.0.0.5:11434,NaN"},
		{name: "load infinite", payload: "DISCOVER,ollama,host-1,10.0.0.5:11434,+Inf"},
		{name: "trailing comma", payload: "DISCOVER,ollama,host-1,10.0.0.5:11434,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAnnouncement([]byte(tt.payload))
			require.Error(t, err)
			var malformed *MalformedAnnouncementError
			assert.ErrorAs(t, err, &malformed)
		})
	}
}

func TestEncodeAnnouncement_RoundTrip(t *testing.T) {
	load := 2.25
	in := Announcement{NodeID: "host-1", Kind: KindLMStudio, Endpoint: "127.0.0.1:1234", LoadHint: &load}
	out, err := DecodeAnnouncement(EncodeAnnouncement(in))
	require.NoError(t, err)
	assert.Equal(t, in.NodeID, out.NodeID)
	assert.Equal(t, in.Kind, out.Kind)
	assert.Equal(t, in.Endpoint, out.Endpoint)
	require.NotNil(t, out.LoadHint)
	assert.Equal(t, load, *out.LoadHint)

	noLoad := Announcement{NodeID: "host-2", Kind: KindOllama, Endpoint: "127.0.0.1:11434"}
	assert.Equal(t, "DISCOVER,ollama,host-2,127.0.0.1:11434", string(EncodeAnnouncement(noLoad)))
}

func TestAnnouncementIdentity(t *testing.T) {
	a := Announcement{NodeID: "host-1", Kind: KindOllama, Endpoint: "10.0.0.5:11434"}
	assert.Equal(t, NodeIdentity("host-1@10.0.0.5:11434"), a.Identity())

	rec := a.Record()
	assert.Equal(t, a.Identity(), rec.Identity)
	assert.Equal(t, KindOllama, rec.Kind)
	assert.Equal(t, "10.0.0.5:11434", rec.Endpoint)
	assert.True(t, rec.LastSeen.IsZero())
}
