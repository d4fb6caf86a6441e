package gateway

import (
	"encoding/json"
	"testing"
)

func TestProtocolVersionSupported(t *testing.T) {
	cases := []struct {
		name string
		v    ProtocolVersion
		want bool
	}{
		{"exactly current", CurrentProtocolVersion, true},
		{"exactly minimum", MinSupportedProtocolVersion, true},
		{"future major", ProtocolVersion{Major: CurrentProtocolVersion.Major + 1, Minor: 0}, false},
		{"future minor", ProtocolVersion{Major: CurrentProtocolVersion.Major, Minor: CurrentProtocolVersion.Minor + 1}, false},
		{"past major", ProtocolVersion{Major: MinSupportedProtocolVersion.Major - 1, Minor: 0}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.supported(); got != c.want {
				t.Fatalf("supported() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestInboundMessageRoundTrip(t *testing.T) {
	raw := []byte(`{"authenticate": {"identifier": "alice@example.com"}}`)
	var m InboundMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Tag != "authenticate" {
		t.Fatalf("expected tag authenticate, got %q", m.Tag)
	}

	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var roundTripped InboundMessage
	if err := json.Unmarshal(out, &roundTripped); err != nil {
		t.Fatalf("unmarshal round trip: %v", err)
	}
	if roundTripped.Tag != "authenticate" {
		t.Fatalf("expected tag to survive round trip, got %q", roundTripped.Tag)
	}
}

func TestOutboundMessageMarshalsTaggedShape(t *testing.T) {
	msg := OutboundMessage{Tag: "pong", Payload: map[string]string{"hello": "world"}}
	out, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := decoded["pong"]; !ok {
		t.Fatalf("expected key \"pong\", got %v", decoded)
	}
}

func TestReplyCarriesCorrelationID(t *testing.T) {
	env := reply("req-1", "authenticated", authenticatedPayload{UserID: "u1"})
	if env.CorrelationID == nil || *env.CorrelationID != "req-1" {
		t.Fatalf("expected correlation id req-1, got %+v", env.CorrelationID)
	}
	if env.Message.Tag != "authenticated" {
		t.Fatalf("expected tag authenticated, got %q", env.Message.Tag)
	}
}

func TestBroadcastHasNoCorrelationID(t *testing.T) {
	env := broadcast(tagGameEvents, gameEventsPayload{GameID: "g1"})
	if env.CorrelationID != nil {
		t.Fatalf("expected nil correlation id, got %v", *env.CorrelationID)
	}
}
