package dto

// Voice websocket frames. The client streams interim transcripts; the server
// answers with feedback text and, once a command fires, a navigate or
// font_size frame.

const (
	VoiceFrameStart      = "start"
	VoiceFrameTranscript = "transcript"
	VoiceFrameStop       = "stop"

	VoiceFrameFeedback = "feedback"
	VoiceFrameNavigate = "navigate"
	VoiceFrameFontSize = "font_size"
)

// PublishVoiceUsageMessage goes onto the internal bus whenever a spoken
// command resolves; the consumer aggregates it into usage counts.
type PublishVoiceUsageMessage struct {
	SessionId   string `json:"session_id"`
	CommandType string `json:"command_type"`
	Route       string `json:"route,omitempty"`
	Transcript  string `json:"transcript,omitempty"`
}

// VoiceUsageReport is the aggregated view served to coordinators.
type VoiceUsageReport struct {
	ByCommand    map[string]int `json:"by_command"`
	ByRoute      map[string]int `json:"by_route"`
	Unrecognized []string       `json:"unrecognized"`
}

type VoiceInboundFrame struct {
	Type       string `json:"type"`
	Transcript string `json:"transcript,omitempty"`
}

type VoiceFeedbackFrame struct {
	Type  string `json:"type"`
	Phase string `json:"phase"`
	Text  string `json:"text"`
}

type VoiceNavigateFrame struct {
	Type         string `json:"type"`
	Route        string `json:"route"`
	Confirmation string `json:"confirmation"`
}

type VoiceFontSizeFrame struct {
	Type         string `json:"type"`
	Delta        int    `json:"delta"`
	Confirmation string `json:"confirmation"`
}
