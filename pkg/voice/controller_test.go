package voice

import (
	"sync"
	"testing"
	"time"
)

// fakeSource is a controllable capture capability for tests.
type fakeSource struct {
	mu        sync.Mutex
	available bool
	started   int
	stopped   int
}

func (f *fakeSource) Available() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.available
}

func (f *fakeSource) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started++
	return nil
}

func (f *fakeSource) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped++
}

func (f *fakeSource) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.started, f.stopped
}

// commandRecorder collects executed commands.
type commandRecorder struct {
	mu   sync.Mutex
	cmds []Command
}

func (r *commandRecorder) record(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cmds = append(r.cmds, cmd)
}

func (r *commandRecorder) all() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.cmds))
	copy(out, r.cmds)
	return out
}

func testConfig() Config {
	return Config{
		SilenceWindow: 40 * time.Millisecond,
		ActionDelay:   0,
		DisplayWindow: 40 * time.Millisecond,
		ClearDelay:    20 * time.Millisecond,
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not reached before timeout")
}

func TestStartUnavailableSourceIsNoop(t *testing.T) {
	src := &fakeSource{available: false}
	c := NewController(src, testConfig(), nil, nil)

	c.Start()

	if c.Snapshot().Active {
		t.Error("session must not activate when capture is unavailable")
	}
	if started, _ := src.counts(); started != 0 {
		t.Errorf("source started %d times, want 0", started)
	}
}

func TestSilenceWindowClassifiesAndExecutes(t *testing.T) {
	src := &fakeSource{available: true}
	rec := &commandRecorder{}
	c := NewController(src, testConfig(), rec.record, nil)

	c.Start()
	c.OnTranscript("go to healthcare")

	waitFor(t, time.Second, func() bool { return len(rec.all()) == 1 })

	cmd := rec.all()[0]
	if cmd.Type != CommandNavigate || cmd.Route != RouteHealthcare {
		t.Errorf("executed %+v, want navigate/%s", cmd, RouteHealthcare)
	}
	waitFor(t, time.Second, func() bool { return !c.Snapshot().Active })
}

func TestTranscriptUpdateReschedulesTimer(t *testing.T) {
	src := &fakeSource{available: true}
	rec := &commandRecorder{}
	cfg := testConfig()
	cfg.SilenceWindow = 60 * time.Millisecond
	c := NewController(src, cfg, rec.record, nil)

	c.Start()
	c.OnTranscript("go to")

	// Keep updating inside the silence window; no classification may happen
	// at the originally scheduled time.
	for i := 0; i < 4; i++ {
		time.Sleep(30 * time.Millisecond)
		c.OnTranscript("go to healthcare")
		if n := len(rec.all()); n != 0 {
			t.Fatalf("classification fired while updates were still arriving (%d commands)", n)
		}
	}

	waitFor(t, time.Second, func() bool { return len(rec.all()) == 1 })
	if got := rec.all()[0].Route; got != RouteHealthcare {
		t.Errorf("Route = %q, want %q", got, RouteHealthcare)
	}
}

func TestStopCancelsPendingClassification(t *testing.T) {
	src := &fakeSource{available: true}
	rec := &commandRecorder{}
	c := NewController(src, testConfig(), rec.record, nil)

	c.Start()
	c.OnTranscript("go to healthcare")
	c.Stop()

	if c.Snapshot().Active {
		t.Error("Stop must deactivate the session synchronously")
	}

	// The silence window elapses after stop; nothing may execute.
	time.Sleep(120 * time.Millisecond)
	if n := len(rec.all()); n != 0 {
		t.Errorf("stale timer executed %d commands after Stop", n)
	}
}

func TestStartWhileActiveRestarts(t *testing.T) {
	src := &fakeSource{available: true}
	rec := &commandRecorder{}
	c := NewController(src, testConfig(), rec.record, nil)

	c.Start()
	c.OnTranscript("go to healthcare")
	c.Start() // restart: old window must not classify the cleared transcript

	snap := c.Snapshot()
	if !snap.Active {
		t.Error("restart must leave the session active")
	}
	if snap.Transcript != "" {
		t.Errorf("restart must clear the transcript, got %q", snap.Transcript)
	}

	time.Sleep(120 * time.Millisecond)
	if n := len(rec.all()); n != 0 {
		t.Errorf("old session's timer executed %d commands after restart", n)
	}
}

func TestUnrecognizedWindsDownWithoutCommand(t *testing.T) {
	src := &fakeSource{available: true}
	rec := &commandRecorder{}
	c := NewController(src, testConfig(), rec.record, nil)

	c.Start()
	c.OnTranscript("xyz nonsense")

	waitFor(t, time.Second, func() bool { return !c.Snapshot().Active })
	if n := len(rec.all()); n != 0 {
		t.Errorf("unrecognized transcript executed %d commands, want 0", n)
	}
}

func TestCaptureErrorStops(t *testing.T) {
	src := &fakeSource{available: true}
	c := NewController(src, testConfig(), nil, nil)

	c.Start()
	c.OnError()

	if c.Snapshot().Active {
		t.Error("capture error must stop the session")
	}
	if _, stopped := src.counts(); stopped != 1 {
		t.Errorf("source stopped %d times, want 1", stopped)
	}
}

func TestFeedbackClearedAfterStop(t *testing.T) {
	src := &fakeSource{available: true}
	c := NewController(src, testConfig(), nil, nil)

	c.Start()
	c.Stop()

	waitFor(t, time.Second, func() bool { return c.Snapshot().Feedback == "" })
}

func TestDeriveFeedback(t *testing.T) {
	tests := []struct {
		name      string
		session   Session
		wantPhase Phase
		wantText  string
	}{
		{"idle", Session{}, PhaseIdle, ""},
		{"listening placeholder", Session{Active: true, Feedback: "Listening..."}, PhaseListening, "Listening..."},
		{"listening live transcript", Session{Active: true, Transcript: "go to"}, PhaseListening, "go to"},
		{"confirming", Session{Feedback: "Going to Home page..."}, PhaseConfirming, "Going to Home page..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveFeedback(tt.session)
			if got.Phase != tt.wantPhase {
				t.Errorf("Phase = %q, want %q", got.Phase, tt.wantPhase)
			}
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
		})
	}
}
