package voice

// Phase is the presentation state of the floating voice indicator.
type Phase string

const (
	// PhaseIdle shows nothing.
	PhaseIdle Phase = "idle"
	// PhaseListening shows the live transcript, or a placeholder while the
	// transcript is still empty.
	PhaseListening Phase = "listening"
	// PhaseConfirming shows the classifier's confirmation or error text.
	PhaseConfirming Phase = "confirming"
)

// Feedback is the derived indicator state for one session snapshot. It is a
// pure projection of the controller state and holds no timers of its own.
type Feedback struct {
	Phase Phase  `json:"phase"`
	Text  string `json:"text"`
}

// DeriveFeedback maps a session snapshot to the indicator presentation.
func DeriveFeedback(s Session) Feedback {
	switch {
	case s.Active && s.Transcript != "":
		return Feedback{Phase: PhaseListening, Text: s.Transcript}
	case s.Active:
		return Feedback{Phase: PhaseListening, Text: "Listening..."}
	case s.Feedback != "":
		return Feedback{Phase: PhaseConfirming, Text: s.Feedback}
	default:
		return Feedback{Phase: PhaseIdle}
	}
}
