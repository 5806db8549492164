// Package schedule produces the delayed messages that drive each stage view.
//
// Every view mount gets its own Mount token and every timer message carries
// the token it was scheduled under. A view drops any FiredMsg whose Mount is
// not its own, so a timer armed by a view that has since been replaced can
// never act on the view that replaced it.
package schedule

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Mount identifies one activation of a view.
type Mount uint64

// FiredMsg is delivered when a scheduled timer elapses.
// Event is a view-defined discriminator.
type FiredMsg struct {
	Mount Mount
	Event int
}

// Clock turns a delay into a tea.Cmd that eventually yields msg.
type Clock interface {
	After(d time.Duration, msg tea.Msg) tea.Cmd
}

// RealClock schedules with tea.Tick.
type RealClock struct{}

func (RealClock) After(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Timer is a convenience for scheduling a FiredMsg on clock.
func Timer(c Clock, d time.Duration, mount Mount, event int) tea.Cmd {
	return c.After(d, FiredMsg{Mount: mount, Event: event})
}

// Mounter hands out increasing Mount tokens. The zero value is ready to use
// and never returns Mount(0), so a zero Mount always means "not mounted".
type Mounter struct {
	last Mount
}

// Next returns a fresh token.
func (m *Mounter) Next() Mount {
	m.last++
	return m.last
}

type pending struct {
	at  time.Duration
	seq int
	msg tea.Msg
}

// ManualClock is a deterministic Clock for tests. Scheduling records the
// message; nothing fires until the test advances time.
type ManualClock struct {
	now     time.Duration
	seq     int
	pending []pending
}

// NewManualClock returns a clock positioned at zero.
func NewManualClock() *ManualClock { return &ManualClock{} }

// After records msg to fire d after the clock's current time.
// It returns nil so command drains never block on it.
func (c *ManualClock) After(d time.Duration, msg tea.Msg) tea.Cmd {
	c.seq++
	c.pending = append(c.pending, pending{at: c.now + d, seq: c.seq, msg: msg})
	sort.SliceStable(c.pending, func(i, j int) bool {
		if c.pending[i].at != c.pending[j].at {
			return c.pending[i].at < c.pending[j].at
		}
		return c.pending[i].seq < c.pending[j].seq
	})
	return nil
}

// Now returns the elapsed virtual time.
func (c *ManualClock) Now() time.Duration { return c.now }

// Pending returns how many timers have not fired yet.
func (c *ManualClock) Pending() int { return len(c.pending) }

// Next pops the earliest timer due at or before deadline and moves the clock
// to its fire time. It returns false when nothing is due.
func (c *ManualClock) Next(deadline time.Duration) (tea.Msg, bool) {
	if len(c.pending) == 0 || c.pending[0].at > deadline {
		return nil, false
	}
	p := c.pending[0]
	c.pending = c.pending[1:]
	if p.at > c.now {
		c.now = p.at
	}
	return p.msg, true
}

// Settle moves the clock to deadline once every due timer has been popped.
func (c *ManualClock) Settle(deadline time.Duration) {
	if deadline > c.now {
		c.now = deadline
	}
}
