package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/countdown/internal/countdown"
)

// teaScheduler implements countdown.Scheduler on top of the Bubble Tea loop.
// AfterFunc queues a tea.Tick; the resulting fireMsg comes back through Update,
// so callbacks always run on the program goroutine.
type teaScheduler struct {
	owner   string
	seq     uint64
	pending map[uint64]func()
	queued  []tea.Cmd
}

func newTeaScheduler(owner string) *teaScheduler {
	return &teaScheduler{owner: owner, pending: make(map[uint64]func())}
}

type teaHandle struct {
	s   *teaScheduler
	seq uint64
}

// Cancel drops the callback; the tick message still arrives and is ignored.
func (h teaHandle) Cancel() { delete(h.s.pending, h.seq) }

func (s *teaScheduler) AfterFunc(d time.Duration, f func()) countdown.Handle { //nolint:ireturn
	s.seq++
	seq := s.seq
	owner := s.owner
	s.pending[seq] = f
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return fireMsg{Owner: owner, Seq: seq}
	}))
	return teaHandle{s: s, seq: seq}
}

// fire runs the callback for seq if it is still pending.
func (s *teaScheduler) fire(seq uint64) bool {
	f, ok := s.pending[seq]
	if !ok {
		return false
	}
	delete(s.pending, seq)
	f()
	return true
}

// drain hands the queued ticks to Bubble Tea.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

func (s *teaScheduler) outstanding() int { return len(s.pending) }
