// Package gateway implements the Session Gateway (C10): the wire-envelope
// protocol, protocol-version gating, per-connection authentication state,
// lobby/game intent dispatch, and reconnection synchronization, per §4.10
// and §6.
package gateway

import (
	"encoding/json"
	"time"
)

// ProtocolVersion is {major, minor} per §6. Current and minimum supported
// are both 1.0: there has been no protocol revision yet.
type ProtocolVersion struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

// CurrentProtocolVersion is the version this gateway emits.
var CurrentProtocolVersion = ProtocolVersion{Major: 1, Minor: 0}

// MinSupportedProtocolVersion is the oldest version this gateway accepts.
var MinSupportedProtocolVersion = ProtocolVersion{Major: 1, Minor: 0}

// supported reports whether v falls within the closed range
// [MinSupportedProtocolVersion, CurrentProtocolVersion] (§8 "Protocol
// version exactly at current and at min_supported is accepted").
func (v ProtocolVersion) supported() bool {
	if v.Major != CurrentProtocolVersion.Major {
		return v.Major >= MinSupportedProtocolVersion.Major && v.Major <= CurrentProtocolVersion.Major
	}
	return v.Minor >= MinSupportedProtocolVersion.Minor && v.Minor <= CurrentProtocolVersion.Minor
}

// InboundEnvelope is a client -> server frame (§6).
type InboundEnvelope struct {
	ProtocolVersion    ProtocolVersion `json:"protocol_version"`
	RequestID          string          `json:"request_id"`
	LastSeenEventIndex *int            `json:"last_seen_event_index,omitempty"`
	SentAt             time.Time       `json:"sent_at"`
	Message            InboundMessage  `json:"message"`
}

// InboundMessage is the tagged-union client message: exactly one of its
// fields (keyed by wire tag) is populated per §9 "Polymorphic events and
// messages" — `{"<tag>": {...}}`.
type InboundMessage struct {
	Tag     string          `json:"-"`
	Payload json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the single-key tagged object into Tag/Payload.
func (m *InboundMessage) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for tag, payload := range raw {
		m.Tag = tag
		m.Payload = payload
		break
	}
	return nil
}

// MarshalJSON encodes Tag/Payload back into the single-key tagged form.
func (m InboundMessage) MarshalJSON() ([]byte, error) {
	payload := m.Payload
	if payload == nil {
		payload = json.RawMessage("{}")
	}
	return json.Marshal(map[string]json.RawMessage{m.Tag: payload})
}

// OutboundEnvelope is a server -> client frame (§6).
type OutboundEnvelope struct {
	ProtocolVersion ProtocolVersion `json:"protocol_version"`
	CorrelationID   *string         `json:"correlation_id,omitempty"`
	SentAt          time.Time       `json:"sent_at"`
	Message         OutboundMessage `json:"message"`
}

// OutboundMessage mirrors InboundMessage's tagged-union shape for server
// messages.
type OutboundMessage struct {
	Tag     string
	Payload any
}

// MarshalJSON encodes Tag/Payload as {"<tag>": {...}}.
func (m OutboundMessage) MarshalJSON() ([]byte, error) {
	inner, err := json.Marshal(m.Payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]json.RawMessage{m.Tag: inner})
}

func outbound(correlationID *string, tag string, payload any) OutboundEnvelope {
	return OutboundEnvelope{
		ProtocolVersion: CurrentProtocolVersion,
		CorrelationID:   correlationID,
		SentAt:          time.Now().UTC(),
		Message:         OutboundMessage{Tag: tag, Payload: payload},
	}
}

func reply(requestID, tag string, payload any) OutboundEnvelope {
	id := requestID
	return outbound(&id, tag, payload)
}

func broadcast(tag string, payload any) OutboundEnvelope {
	return outbound(nil, tag, payload)
}
