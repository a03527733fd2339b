package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "VOICE_COMMAND").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type codes published on the internal bus and the NATS stream.
const (
	TypeVoiceCommand        = "VOICE_COMMAND"
	TypeVoiceUnrecognized   = "VOICE_UNRECOGNIZED"
	TypeAssistanceRequested = "ASSISTANCE_REQUESTED"
)

// BaseEvent is the generic implementation used by publishers.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewVoiceCommand builds the event recorded when a spoken command resolves to
// an action. Route is empty for font-size commands.
func NewVoiceCommand(sessionID, commandType, route string) BaseEvent {
	return BaseEvent{
		Type: TypeVoiceCommand,
		Data: map[string]interface{}{
			"session_id":   sessionID,
			"command_type": commandType,
			"route":        route,
		},
		OccurredAt: time.Now(),
	}
}

// NewVoiceUnrecognized records a transcript the classifier could not resolve,
// so keyword coverage gaps show up in usage reports.
func NewVoiceUnrecognized(sessionID, transcript string) BaseEvent {
	return BaseEvent{
		Type: TypeVoiceUnrecognized,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"transcript": transcript,
		},
		OccurredAt: time.Now(),
	}
}

// NewAssistanceRequested is published when a visitor asks for volunteer help.
func NewAssistanceRequested(requestID, name, phone, topic string) BaseEvent {
	return BaseEvent{
		Type: TypeAssistanceRequested,
		Data: map[string]interface{}{
			"request_id": requestID,
			"name":       name,
			"phone":      phone,
			"topic":      topic,
		},
		OccurredAt: time.Now(),
	}
}
