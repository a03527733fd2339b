package voice

import (
	"strings"
)

// CommandType identifies the kind of action resolved from a transcript.
type CommandType string

const (
	CommandNavigate     CommandType = "navigate"
	CommandFontSize     CommandType = "font_size"
	CommandUnrecognized CommandType = "unrecognized"

	// CommandEmpty is returned for an empty or whitespace-only transcript.
	// It is a capture failure, not a classification failure, and carries a
	// different user-facing message than CommandUnrecognized.
	CommandEmpty CommandType = "empty"
)

// Route identifiers for navigation commands. They match the page ids the
// front-end registers for each language variant.
const (
	RouteHome       = "home"
	RouteVitalInfo  = "vital-info"
	RouteServices   = "services"
	RouteHealthcare = "healthcare"
	RouteEvents     = "events"
)

const (
	msgEmpty        = "Sorry, I didn't catch that. Please try again."
	msgUnrecognized = "Command not recognized. Try saying 'Go to healthcare' or 'Show government services'"
)

// Command is the resolved action for a finished transcript.
type Command struct {
	Type         CommandType `json:"type"`
	Route        string      `json:"route,omitempty"`
	FontDelta    int         `json:"font_delta,omitempty"`
	Confirmation string      `json:"confirmation"`
}

// rule pairs a predicate with the command it produces. Rules are evaluated in
// order and the first match wins; there is no scoring or backtracking.
type rule struct {
	match   func(s string) bool
	command Command
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// rules is the fixed, ordered command table. The order is load-bearing: the
// keyword sets overlap (a transcript with both "health" and "government"
// resolves to the healthcare rule because it comes first), so entries must not
// be reordered.
var rules = []rule{
	{
		match: func(s string) bool { return containsAny(s, "home", "main page") },
		command: Command{
			Type:         CommandNavigate,
			Route:        RouteHome,
			Confirmation: "Going to Home page...",
		},
	},
	{
		match: func(s string) bool { return containsAny(s, "health", "clinic", "hospital") },
		command: Command{
			Type:         CommandNavigate,
			Route:        RouteHealthcare,
			Confirmation: "Opening Healthcare Resources...",
		},
	},
	{
		match: func(s string) bool { return containsAny(s, "government", "service", "passport") },
		command: Command{
			Type:         CommandNavigate,
			Route:        RouteServices,
			Confirmation: "Showing Government Services...",
		},
	},
	{
		match: func(s string) bool { return containsAny(s, "event", "community", "activity") },
		command: Command{
			Type:         CommandNavigate,
			Route:        RouteEvents,
			Confirmation: "Displaying Community Events...",
		},
	},
	{
		match: func(s string) bool {
			return strings.Contains(s, "increase") && containsAny(s, "font", "text", "size")
		},
		command: Command{
			Type:         CommandFontSize,
			FontDelta:    1,
			Confirmation: "Increasing text size...",
		},
	},
	{
		match: func(s string) bool {
			return strings.Contains(s, "decrease") && containsAny(s, "font", "text", "size")
		},
		command: Command{
			Type:         CommandFontSize,
			FontDelta:    -1,
			Confirmation: "Decreasing text size...",
		},
	},
}

// Classify maps a finished transcript to exactly one Command. It is a pure
// function of the transcript text: the input is lower-cased, the ordered rule
// table is scanned, and the first matching rule wins. A blank transcript
// short-circuits to CommandEmpty before any rule is tested.
func Classify(transcript string) Command {
	if strings.TrimSpace(transcript) == "" {
		return Command{Type: CommandEmpty, Confirmation: msgEmpty}
	}

	input := strings.ToLower(transcript)
	for _, r := range rules {
		if r.match(input) {
			return r.command
		}
	}

	return Command{Type: CommandUnrecognized, Confirmation: msgUnrecognized}
}
