package discord

import (
	"encoding/json"
	"fmt"

	"github.com/q21league/q21player/internal/models"
	"github.com/q21league/q21player/internal/protocol"
)

// envelope is the JSON wire format carried in Discord message content.
// Inbound and outbound traffic share the shape; sender is set on inbound
// messages, recipient on outbound ones.
type envelope struct {
	MessageType string         `json:"message_type"`
	Payload     map[string]any `json:"payload"`
	Sender      string         `json:"sender,omitempty"`
	Recipient   string         `json:"recipient,omitempty"`
}

// decodeEnvelope parses one inbound message body. Match identifiers are
// canonicalized here, at the transport boundary, so everything downstream
// only ever sees the bare 7-character form.
func decodeEnvelope(content string) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal([]byte(content), &env); err != nil {
		return nil, fmt.Errorf("decoding message envelope: %w", err)
	}

	if env.MessageType == "" {
		return nil, fmt.Errorf("message envelope has no message_type")
	}

	if env.Payload == nil {
		env.Payload = make(map[string]any)
	}
	for _, key := range []string{"match_id", "game_id"} {
		if raw, ok := env.Payload[key].(string); ok {
			env.Payload[key] = protocol.CanonicalMatchID(raw)
		}
	}

	return &env, nil
}

// encodeOutbound renders an outbound message as envelope JSON
func encodeOutbound(msg *models.OutboundMessage) (string, error) {
	data, err := json.Marshal(&envelope{
		MessageType: msg.Type,
		Payload:     msg.Payload,
		Recipient:   msg.Recipient,
	})
	if err != nil {
		return "", fmt.Errorf("encoding message envelope: %w", err)
	}
	return string(data), nil
}
