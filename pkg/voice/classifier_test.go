package voice

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		wantType   CommandType
		wantRoute  string
		wantDelta  int
	}{
		{
			name:       "go to healthcare",
			transcript: "go to healthcare",
			wantType:   CommandNavigate,
			wantRoute:  RouteHealthcare,
		},
		{
			name:       "home",
			transcript: "take me home",
			wantType:   CommandNavigate,
			wantRoute:  RouteHome,
		},
		{
			name:       "main page alias",
			transcript: "back to the main page please",
			wantType:   CommandNavigate,
			wantRoute:  RouteHome,
		},
		{
			name:       "government services",
			transcript: "show government services",
			wantType:   CommandNavigate,
			wantRoute:  RouteServices,
		},
		{
			name:       "passport keyword routes to services",
			transcript: "I want to renew my passport",
			wantType:   CommandNavigate,
			wantRoute:  RouteServices,
		},
		{
			name:       "community events",
			transcript: "any community activity today",
			wantType:   CommandNavigate,
			wantRoute:  RouteEvents,
		},
		{
			name:       "increase text size",
			transcript: "increase text size",
			wantType:   CommandFontSize,
			wantDelta:  1,
		},
		{
			name:       "decrease font size",
			transcript: "decrease font size",
			wantType:   CommandFontSize,
			wantDelta:  -1,
		},
		{
			name:       "increase without size keyword is unrecognized",
			transcript: "increase the volume",
			wantType:   CommandUnrecognized,
		},
		{
			name:       "nonsense",
			transcript: "xyz nonsense",
			wantType:   CommandUnrecognized,
		},
		{
			name:       "case insensitive",
			transcript: "GO TO HEALTHCARE",
			wantType:   CommandNavigate,
			wantRoute:  RouteHealthcare,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.transcript)

			if got.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tt.wantType)
			}
			if got.Route != tt.wantRoute {
				t.Errorf("Route = %q, want %q", got.Route, tt.wantRoute)
			}
			if got.FontDelta != tt.wantDelta {
				t.Errorf("FontDelta = %d, want %d", got.FontDelta, tt.wantDelta)
			}
			if got.Confirmation == "" {
				t.Error("Confirmation should never be empty")
			}
		})
	}
}

func TestClassifyEmptyTranscript(t *testing.T) {
	for _, transcript := range []string{"", "   ", "\t\n"} {
		got := Classify(transcript)
		if got.Type != CommandEmpty {
			t.Errorf("Classify(%q).Type = %q, want %q", transcript, got.Type, CommandEmpty)
		}
		if got.Type == CommandUnrecognized {
			t.Errorf("Classify(%q) must not be the unrecognized outcome", transcript)
		}
	}
}

func TestClassifyRulePrecedence(t *testing.T) {
	// Overlapping keywords resolve to the earlier rule. "government" and
	// "service" belong to the services rule, but "health" is tested first.
	got := Classify("show government health services")
	if got.Type != CommandNavigate || got.Route != RouteHealthcare {
		t.Errorf("overlapping transcript resolved to %q/%q, want navigate/%q",
			got.Type, got.Route, RouteHealthcare)
	}

	// "event" vs "home": home rule is earlier.
	got = Classify("home event")
	if got.Route != RouteHome {
		t.Errorf("Route = %q, want %q", got.Route, RouteHome)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	inputs := []string{"go to healthcare", "xyz nonsense", "", "increase text size"}
	for _, in := range inputs {
		first := Classify(in)
		for i := 0; i < 10; i++ {
			if got := Classify(in); got != first {
				t.Fatalf("Classify(%q) not deterministic: %+v vs %+v", in, got, first)
			}
		}
	}
}
