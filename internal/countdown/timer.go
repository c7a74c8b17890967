package countdown

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Mode selects how a running Timer measures remaining time.
type Mode int

const (
	// ModeWallClock stores a due instant and recomputes remaining time from the
	// clock on every tick, so late ticks never accumulate drift.
	ModeWallClock Mode = iota
	// ModeCounter decrements a seconds counter once per tick at a fixed 1s cadence.
	ModeCounter
)

// IdleText is the display label whenever no countdown is running.
const IdleText = "0:00"

const counterInterval = time.Second

// ParseMode maps a config or flag value onto a Mode. Empty means ModeWallClock.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "wallclock":
		return ModeWallClock, nil
	case "counter":
		return ModeCounter, nil
	default:
		return ModeWallClock, fmt.Errorf("unknown timer mode %q (want wallclock or counter)", s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeWallClock:
		return "wallclock"
	case ModeCounter:
		return "counter"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// PresetBinding associates a preset with the control that triggers it.
// Trigger may be nil when the preset has no on-screen control.
type PresetBinding struct {
	Preset  Preset
	Trigger Affordance
}

// Option configures a Timer.
type Option func(*Timer)

// WithMode selects the timing strategy.
func WithMode(m Mode) Option {
	return func(t *Timer) { t.mode = m }
}

// WithClock overrides the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(t *Timer) { t.clock = c }
}

// WithAlerter sets the alert used on expiry and on rejected input.
func WithAlerter(a Alerter) Option {
	return func(t *Timer) { t.alerter = a }
}

// WithTextStart registers the free-text field and its start control as affordances.
func WithTextStart(controls ...Affordance) Option {
	return func(t *Timer) { t.textControls = append(t.textControls, controls...) }
}

// WithID sets the identifier used in log fields. Defaults to a random UUID.
func WithID(id string) Option {
	return func(t *Timer) { t.id = id }
}

// Timer is the countdown controller. It is not safe for concurrent use: every
// method and every scheduled tick must run on the owning event loop.
type Timer struct {
	id           string
	mode         Mode
	sched        Scheduler
	clock        Clock
	display      Display
	alerter      Alerter
	presets      []PresetBinding
	textControls []Affordance

	running   bool
	destroyed bool
	due       time.Time
	left      int

	pending    Handle
	pendingSeq uint64
	seq        uint64

	log *logrus.Entry
}

// New builds an idle Timer and sets the display to "0:00".
func New(sched Scheduler, display Display, presets []PresetBinding, opts ...Option) (*Timer, error) {
	if sched == nil {
		return nil, fmt.Errorf("countdown: scheduler is required")
	}
	if display == nil {
		return nil, fmt.Errorf("countdown: display is required")
	}
	for i, p := range presets {
		if p.Preset.Seconds <= 0 {
			return nil, fmt.Errorf("%w: preset %d (%q) has %d seconds", ErrBadPreset, i, p.Preset.Label, p.Preset.Seconds)
		}
	}

	t := &Timer{
		mode:    ModeWallClock,
		sched:   sched,
		clock:   realClock{},
		display: display,
		alerter: noAlert{},
		presets: append([]PresetBinding(nil), presets...),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.id == "" {
		t.id = uuid.NewString()
	}
	t.log = logrus.WithFields(logrus.Fields{"timer": t.id, "mode": t.mode.String()})

	t.display.SetText(IdleText)
	return t, nil
}

// ID returns the identifier used in log fields.
func (t *Timer) ID() string { return t.id }

// Mode returns the timing strategy.
func (t *Timer) Mode() Mode { return t.mode }

// Running reports whether a countdown is in progress.
func (t *Timer) Running() bool { return t.running }

// Presets returns a copy of the configured presets in order.
func (t *Timer) Presets() []Preset {
	out := make([]Preset, 0, len(t.presets))
	for _, p := range t.presets {
		out = append(out, p.Preset)
	}
	return out
}

// StartPreset starts the preset at index i. Presets are caller controlled, so an
// out of range index panics.
func (t *Timer) StartPreset(i int) {
	if i < 0 || i >= len(t.presets) {
		panic(fmt.Sprintf("countdown: preset index %d out of range [0,%d)", i, len(t.presets)))
	}
	t.Start(t.presets[i].Preset.Seconds)
}

// StartText parses user input and starts a countdown. On a syntax or zero
// duration error it alerts, returns the error and leaves the Timer idle.
func (t *Timer) StartText(text string) error {
	seconds, err := ParseDuration(text)
	if err != nil {
		t.log.WithError(err).Debug("rejected duration")
		t.alerter.Alert()
		return err
	}
	t.Start(seconds)
	return nil
}

// Start arms a countdown of the given length. Starting is only reachable from
// idle because every affordance is disabled while running; anything else panics.
func (t *Timer) Start(seconds int) {
	switch {
	case t.destroyed:
		panic("countdown: start on destroyed timer")
	case t.running:
		panic("countdown: start while running")
	case seconds <= 0:
		panic(fmt.Sprintf("countdown: start with non-positive duration %d", seconds))
	}

	switch t.mode {
	case ModeCounter:
		t.left = seconds
	default:
		t.due = t.clock.Now().Add(time.Duration(seconds) * time.Second)
	}
	t.setEnabled(false)
	t.running = true
	// A zero delay forces the first display update on the next loop turn.
	t.schedule(0)
	t.log.WithField("seconds", seconds).Debug("countdown started")
}

// Destroy cancels an outstanding tick and releases the affordances. It is safe
// to call more than once.
func (t *Timer) Destroy() {
	if t.destroyed {
		return
	}
	if t.running {
		t.pending.Cancel()
		t.pending = nil
		t.running = false
		t.log.Debug("countdown cancelled by teardown")
	}
	t.presets = nil
	t.textControls = nil
	t.destroyed = true
}

func (t *Timer) schedule(d time.Duration) {
	t.seq++
	seq := t.seq
	t.pendingSeq = seq
	t.pending = t.sched.AfterFunc(d, func() { t.tick(seq) })
}

func (t *Timer) tick(seq uint64) {
	if !t.running {
		panic("countdown: tick while idle")
	}
	if seq != t.pendingSeq {
		panic(fmt.Sprintf("countdown: tick for handle %d, want %d", seq, t.pendingSeq))
	}
	t.pending = nil

	switch t.mode {
	case ModeCounter:
		t.tickCounter()
	default:
		t.tickWallClock()
	}
}

func (t *Timer) tickWallClock() {
	remaining := t.due.Sub(t.clock.Now())
	if remaining < 0 {
		t.expire()
		return
	}

	seconds := int(remaining / time.Second)
	frac := remaining % time.Second
	if frac > 0 {
		seconds++
	}
	t.display.SetText(FormatSeconds(seconds))
	// Wake on the next whole-second boundary.
	t.schedule(frac.Truncate(time.Millisecond))
	t.log.WithField("remaining", remaining).Trace("tick")
}

func (t *Timer) tickCounter() {
	if t.left <= 0 {
		t.expire()
		return
	}
	t.display.SetText(FormatSeconds(t.left))
	t.left--
	t.schedule(counterInterval)
	t.log.WithField("left", t.left).Trace("tick")
}

func (t *Timer) expire() {
	t.alerter.Alert()
	t.setEnabled(true)
	t.display.SetText(IdleText)
	t.running = false
	t.log.Debug("countdown expired")
}

func (t *Timer) setEnabled(enabled bool) {
	for _, p := range t.presets {
		if p.Trigger != nil {
			p.Trigger.SetEnabled(enabled)
		}
	}
	for _, c := range t.textControls {
		c.SetEnabled(enabled)
	}
}
