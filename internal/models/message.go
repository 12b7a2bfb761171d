package models

// InboundMessage is one message received from the league wire
type InboundMessage struct {
	// Type is the protocol message type (e.g. BROADCAST_START_SEASON)
	Type string

	// Payload contains the message body as decoded JSON
	Payload map[string]any

	// Sender is the address of the originating participant
	Sender string
}

// OutboundMessage describes a message for the transport to deliver
type OutboundMessage struct {
	// Type is the protocol message type (e.g. SEASON_REGISTRATION_REQUEST)
	Type string

	// Payload contains the message body
	Payload map[string]any

	// Recipient is the address the message should be delivered to
	Recipient string
}
