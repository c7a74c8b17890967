//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package countdown

import (
	"time"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct{ now time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fakeEntry is one scheduled callback.
type fakeEntry struct {
	delay     time.Duration
	f         func()
	fired     bool
	cancelled bool
}

func (e *fakeEntry) Cancel() { e.cancelled = true }

// fakeScheduler records callbacks and fires them on demand, like a loop that only
// advances when the test says so.
type fakeScheduler struct {
	entries []*fakeEntry
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Handle {
	e := &fakeEntry{delay: d, f: f}
	s.entries = append(s.entries, e)
	return e
}

func (s *fakeScheduler) outstanding() []*fakeEntry {
	var out []*fakeEntry
	for _, e := range s.entries {
		if !e.fired && !e.cancelled {
			out = append(out, e)
		}
	}
	return out
}

func (s *fakeScheduler) cancelled() int {
	n := 0
	for _, e := range s.entries {
		if e.cancelled {
			n++
		}
	}
	return n
}

// fireNext runs the oldest outstanding callback after advancing clock by its delay
// plus latency. It reports false when nothing is scheduled.
func (s *fakeScheduler) fireNext(clock *fakeClock, latency time.Duration) bool {
	pending := s.outstanding()
	if len(pending) == 0 {
		return false
	}
	e := pending[0]
	if clock != nil {
		clock.Advance(e.delay + latency)
	}
	e.fired = true
	e.f()
	return true
}

type fakeDisplay struct{ texts []string }

func (d *fakeDisplay) SetText(text string) { d.texts = append(d.texts, text) }

func (d *fakeDisplay) last() string {
	if len(d.texts) == 0 {
		return ""
	}
	return d.texts[len(d.texts)-1]
}

type fakeAffordance struct {
	enabled bool
	changes int
}

func newFakeAffordance() *fakeAffordance { return &fakeAffordance{enabled: true} }

func (a *fakeAffordance) SetEnabled(enabled bool) {
	a.enabled = enabled
	a.changes++
}

type fakeAlerter struct{ count int }

func (a *fakeAlerter) Alert() { a.count++ }
