package voice

import (
	"sync"
	"time"
)

// CaptureSource abstracts the speech capture capability consumed by the
// controller. The real capability lives in the browser; the server sees it
// through the websocket as a stream of cumulative transcript updates. A fake
// source is substituted in tests.
type CaptureSource interface {
	// Available reports whether speech capture can be used at all. When it
	// returns false, Start is a silent no-op and the voice feature is inert.
	Available() bool
	Start() error
	Stop()
}

// Config holds the controller timing knobs. The zero value is not usable;
// call DefaultConfig and override what you need.
type Config struct {
	// SilenceWindow is how long the transcript must stay unchanged before it
	// is considered final and classified.
	SilenceWindow time.Duration

	// ActionDelay is the cosmetic pause between showing a confirmation and
	// executing the resolved command. Zero is valid and used in tests.
	ActionDelay time.Duration

	// DisplayWindow is how long an unrecognized/empty outcome stays visible
	// before the session winds down.
	DisplayWindow time.Duration

	// ClearDelay is the cosmetic pause after stop before feedback is cleared.
	ClearDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		SilenceWindow: 2000 * time.Millisecond,
		ActionDelay:   1500 * time.Millisecond,
		DisplayWindow: 3000 * time.Millisecond,
		ClearDelay:    2000 * time.Millisecond,
	}
}

// Session is a snapshot of the controller state, safe to serialize.
type Session struct {
	Active     bool      `json:"active"`
	Transcript string    `json:"transcript"`
	Feedback   string    `json:"feedback"`
	LastUpdate time.Time `json:"last_update"`
}

// Controller manages the lifecycle of one voice-input session: it buffers
// cumulative transcript updates, decides when the user has finished speaking
// (the silence window), runs the classifier, and drives the feedback string.
//
// All three timers (silence, action, clear) are single-shot and are cancelled
// before being replaced. A generation counter guards against a stale timer
// firing into a session that was stopped or restarted after the timer was
// scheduled.
type Controller struct {
	mu  sync.Mutex
	cfg Config

	source    CaptureSource
	onCommand func(Command)
	onChange  func(Session)

	active     bool
	transcript string
	lastUpdate time.Time
	feedback   string
	gen        uint64

	onResolved func(Command, string)

	silenceTimer *time.Timer
	actionTimer  *time.Timer
	clearTimer   *time.Timer
}

// NewController wires a capture source to a command sink. onCommand receives
// each actionable resolved command (navigate, font size); onChange receives a
// session snapshot after every state transition. Either callback may be nil.
func NewController(source CaptureSource, cfg Config, onCommand func(Command), onChange func(Session)) *Controller {
	return &Controller{
		cfg:       cfg,
		source:    source,
		onCommand: onCommand,
		onChange:  onChange,
	}
}

// OnResolved registers an observer invoked with every classification outcome
// and the transcript it came from, including unrecognized ones that execute
// nothing. Used for usage reporting. Must be set before Start.
func (c *Controller) OnResolved(fn func(Command, string)) {
	c.mu.Lock()
	c.onResolved = fn
	c.mu.Unlock()
}

// Start begins a listening session. It is a silent no-op when the capture
// capability is unavailable. Calling Start while a session is active restarts
// it: the transcript is cleared and the silence window starts over.
func (c *Controller) Start() {
	if c.source == nil || !c.source.Available() {
		return
	}

	c.mu.Lock()
	c.gen++
	c.cancelTimersLocked()
	c.active = true
	c.transcript = ""
	c.lastUpdate = time.Time{}
	c.feedback = "Listening..."
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.source.Start()
	c.notify(snap)
}

// OnTranscript replaces the session transcript with the cumulative recognized
// text and restarts the inactivity timer. Updates arriving for an inactive
// session are dropped.
func (c *Controller) OnTranscript(text string) {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return
	}
	c.transcript = text
	c.lastUpdate = time.Now()

	if c.silenceTimer != nil {
		c.silenceTimer.Stop()
	}
	gen := c.gen
	c.silenceTimer = time.AfterFunc(c.cfg.SilenceWindow, func() {
		c.silenceElapsed(gen)
	})
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
}

// OnError handles a capture error as an implicit stop. There is no retry; the
// user must start a new session.
func (c *Controller) OnError() {
	c.Stop()
}

// Stop ends the session. The active flag drops synchronously and any pending
// inactivity timer is invalidated before Stop returns, so a late classification
// can never fire against a closed session. Feedback is cleared after a short
// cosmetic delay.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.gen++
	c.cancelTimersLocked()
	wasActive := c.active
	c.active = false

	gen := c.gen
	c.clearTimer = time.AfterFunc(c.cfg.ClearDelay, func() {
		c.clearFeedback(gen)
	})
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if wasActive && c.source != nil {
		c.source.Stop()
	}
	c.notify(snap)
}

// Snapshot returns the current session state.
func (c *Controller) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// silenceElapsed runs when the inactivity timer fires. The generation check
// discards firings that lost a race with Stop or a restart.
func (c *Controller) silenceElapsed(gen uint64) {
	c.mu.Lock()
	if !c.active || gen != c.gen {
		c.mu.Unlock()
		return
	}
	if elapsed := time.Since(c.lastUpdate); elapsed < c.cfg.SilenceWindow {
		// A newer update raced in; its own timer is pending.
		c.mu.Unlock()
		return
	}

	cmd := Classify(c.transcript)
	transcript := c.transcript
	resolved := c.onResolved
	c.feedback = cmd.Confirmation
	snap := c.snapshotLocked()

	switch cmd.Type {
	case CommandNavigate, CommandFontSize:
		c.actionTimer = time.AfterFunc(c.cfg.ActionDelay, func() {
			c.executeCommand(gen, cmd)
		})
	default:
		// Nothing to execute; let the message display, then wind down.
		c.actionTimer = time.AfterFunc(c.cfg.DisplayWindow, func() {
			c.windDown(gen)
		})
	}
	c.mu.Unlock()

	if resolved != nil {
		resolved(cmd, transcript)
	}
	c.notify(snap)
}

func (c *Controller) executeCommand(gen uint64, cmd Command) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	if c.onCommand != nil {
		c.onCommand(cmd)
	}
	c.Stop()
}

func (c *Controller) windDown(gen uint64) {
	c.mu.Lock()
	stale := gen != c.gen
	c.mu.Unlock()
	if !stale {
		c.Stop()
	}
}

func (c *Controller) clearFeedback(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.active {
		c.mu.Unlock()
		return
	}
	c.feedback = ""
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
}

func (c *Controller) cancelTimersLocked() {
	if c.silenceTimer != nil {
		c.silenceTimer.Stop()
		c.silenceTimer = nil
	}
	if c.actionTimer != nil {
		c.actionTimer.Stop()
		c.actionTimer = nil
	}
	if c.clearTimer != nil {
		c.clearTimer.Stop()
		c.clearTimer = nil
	}
}

func (c *Controller) snapshotLocked() Session {
	return Session{
		Active:     c.active,
		Transcript: c.transcript,
		Feedback:   c.feedback,
		LastUpdate: c.lastUpdate,
	}
}

func (c *Controller) notify(snap Session) {
	if c.onChange != nil {
		c.onChange(snap)
	}
}
