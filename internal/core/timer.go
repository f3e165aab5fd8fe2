package core

import "time"

// Pacer spreads fire steps over wall-clock time so the viewer can animate
// propagation slower than its frame rate.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer returns a Pacer releasing rate steps per second. A non-positive
// rate releases one step per call to Due.
func NewPacer(rate int) *Pacer {
	p := &Pacer{}
	p.SetRate(rate)
	return p
}

// SetRate changes the number of steps released per second.
func (p *Pacer) SetRate(rate int) {
	if rate <= 0 {
		p.step = 0
		return
	}
	p.step = time.Second / time.Duration(rate)
}

// Due reports how many steps should run at time now. The first call only
// anchors the clock, except for an unpaced Pacer which always returns 1.
func (p *Pacer) Due(now time.Time) int {
	if p.step == 0 {
		return 1
	}
	if p.last.IsZero() {
		p.last = now
		return 0
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	n := int(p.accumulator / p.step)
	p.accumulator -= time.Duration(n) * p.step
	return n
}

// Reset forgets accumulated time.
func (p *Pacer) Reset() {
	p.accumulator = 0
	p.last = time.Time{}
}
