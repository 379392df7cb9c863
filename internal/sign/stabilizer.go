package sign

import "time"

// DefaultHoldDuration is how long a sign must be held before it is
// confirmed. Long enough to suppress transient misclassifications while the
// hand settles into a pose.
const DefaultHoldDuration = 1500 * time.Millisecond

// Stabilizer debounces per-frame classifications with a hold-to-confirm
// window: a symbol is emitted only after being classified continuously for
// the hold duration. The window is measured in elapsed time, not frames, so
// confirmation behaves the same across variable frame rates.
//
// Not safe for concurrent use; it is owned by the single frame-processing
// path.
type Stabilizer struct {
	hold      time.Duration
	candidate Symbol
	elapsed   time.Duration
	confirmed Symbol // last confirmed symbol, for display
}

// NewStabilizer creates a Stabilizer with the given hold duration.
// Durations <= 0 fall back to DefaultHoldDuration.
func NewStabilizer(hold time.Duration) *Stabilizer {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &Stabilizer{hold: hold}
}

// Observe feeds one frame's classified symbol and the time elapsed since
// the previous frame. It returns the confirmed symbol and true if the hold
// completed this frame, otherwise None and false.
//
// Any None frame abandons an in-progress hold, so a single flicker of
// non-detection cancels an unconfirmed candidate. A completed hold resets
// the state: sustaining the same pose only emits again after another full
// hold window.
func (s *Stabilizer) Observe(symbol Symbol, dt time.Duration) (Symbol, bool) {
	if symbol == None {
		s.candidate = None
		s.elapsed = 0
		return None, false
	}

	if symbol != s.candidate {
		// New candidate; this frame's dt starts the hold.
		s.candidate = symbol
		s.elapsed = dt
	} else {
		s.elapsed += dt
	}

	if s.elapsed >= s.hold {
		s.candidate = None
		s.elapsed = 0
		s.confirmed = symbol
		return symbol, true
	}

	return None, false
}

// Candidate returns the symbol currently being held, or None.
func (s *Stabilizer) Candidate() Symbol {
	return s.candidate
}

// Confirmed returns the most recently confirmed symbol, or None if nothing
// has been confirmed yet.
func (s *Stabilizer) Confirmed() Symbol {
	return s.confirmed
}

// Progress reports how far the current hold has advanced, from 0 to 1.
// Zero when there is no candidate.
func (s *Stabilizer) Progress() float64 {
	if s.candidate == None {
		return 0
	}
	p := float64(s.elapsed) / float64(s.hold)
	if p > 1 {
		p = 1
	}
	return p
}

// Reset abandons any in-progress hold and clears the last confirmed symbol.
func (s *Stabilizer) Reset() {
	s.candidate = None
	s.elapsed = 0
	s.confirmed = None
}
