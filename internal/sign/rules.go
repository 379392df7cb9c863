package sign

import (
	"github.com/ayusman/mudra/internal/detector"
)

// Distance and angle thresholds for the default rule table. Values are in
// normalized frame units and were tuned empirically against MediaPipe
// output; embedders with different camera setups can supply their own table.
const (
	// PinchDist is the tip separation below which thumb and another
	// fingertip count as touching (letters D, F, O).
	PinchDist = 0.08

	// CurveMinDist and CurveMaxDist bound the thumb-index gap of a curved
	// open hand (letter C).
	CurveMinDist = 0.10
	CurveMaxDist = 0.25

	// SpreadDist is the tip separation above which index and middle count
	// as spread apart (letters K, V).
	SpreadDist = 0.08

	// TogetherDist is the tip separation below which index and middle
	// count as held together (letter U).
	TogetherDist = 0.05

	// LShapeDist is the minimum thumb-index gap for the L shape, and
	// LAngleMin/LAngleMax bound the angle between them at the index
	// knuckle.
	LShapeDist = 0.15
	LAngleMin  = 70.0
	LAngleMax  = 110.0
)

func pattern(thumb, index, middle, ring, pinky bool) *FingerState {
	s := FingerState{thumb, index, middle, ring, pinky}
	return &s
}

// DefaultRules returns the built-in ASL table: fourteen letters plus a
// handful of common words. Order matters; the first matching rule wins.
func DefaultRules() []Rule {
	return []Rule{
		// A: fist with the thumb at its side, below the folded index tip
		{Symbol: "A", Fingers: pattern(true, false, false, false, false), When: func(f *Features) bool {
			return f.Above(detector.IndexTip, detector.ThumbTip)
		}},

		// B: four fingers up, thumb tucked
		{Symbol: "B", Fingers: pattern(false, true, true, true, true)},

		// C: curved hand, thumb and index apart but not fully open
		{Symbol: "C", MinExtended: 3, When: func(f *Features) bool {
			d := f.Distance(detector.ThumbTip, detector.IndexTip)
			return d > CurveMinDist && d < CurveMaxDist
		}},

		// D: index up, thumb resting on the middle fingertip
		{Symbol: "D", Fingers: pattern(true, true, false, false, false), When: func(f *Features) bool {
			return f.Distance(detector.ThumbTip, detector.MiddleTip) < PinchDist
		}},

		// E: closed fist
		{Symbol: "E", Fingers: pattern(false, false, false, false, false)},

		// F: thumb and index form a circle, other fingers up
		{Symbol: "F", Fingers: pattern(true, true, true, true, true), When: func(f *Features) bool {
			return f.Distance(detector.ThumbTip, detector.IndexTip) < PinchDist
		}},

		// I: pinky only
		{Symbol: "I", Fingers: pattern(false, false, false, false, true)},

		// K: index and middle up in a V with the thumb raised
		{Symbol: "K", Fingers: pattern(true, true, true, false, false), When: func(f *Features) bool {
			return f.Distance(detector.IndexTip, detector.MiddleTip) > SpreadDist
		}},

		// L: thumb and index at a right angle
		{Symbol: "L", Fingers: pattern(true, true, false, false, false), When: func(f *Features) bool {
			if f.Distance(detector.ThumbTip, detector.IndexTip) <= LShapeDist {
				return false
			}
			a := f.Angle(detector.ThumbTip, detector.IndexMCP, detector.IndexTip)
			return a > LAngleMin && a < LAngleMax
		}},

		// O: all fingertips gathered into a circle
		{Symbol: "O", MinExtended: 3, When: func(f *Features) bool {
			return f.Distance(detector.ThumbTip, detector.IndexTip) < PinchDist
		}},

		// U: index and middle up, held together
		{Symbol: "U", Fingers: pattern(false, true, true, false, false), When: func(f *Features) bool {
			return f.Distance(detector.IndexTip, detector.MiddleTip) < TogetherDist
		}},

		// V: index and middle up, spread apart
		{Symbol: "V", Fingers: pattern(false, true, true, false, false), When: func(f *Features) bool {
			return f.Distance(detector.IndexTip, detector.MiddleTip) > SpreadDist
		}},

		// W: index, middle and ring up
		{Symbol: "W", Fingers: pattern(false, true, true, true, false)},

		// Y: thumb and pinky out (shaka)
		{Symbol: "Y", Fingers: pattern(true, false, false, false, true)},

		// HELLO: fully open hand
		{Symbol: "HELLO", MinExtended: 5},

		// THANKS: open palm raised above the wrist
		{Symbol: "THANKS", Fingers: pattern(true, true, true, true, true), When: func(f *Features) bool {
			return f.Above(detector.IndexTip, detector.Wrist)
		}},

		// PLEASE: open palm
		{Symbol: "PLEASE", Fingers: pattern(true, true, true, true, true)},

		// YES: fist raised above the wrist
		{Symbol: "YES", Fingers: pattern(false, false, false, false, false), When: func(f *Features) bool {
			return f.Above(detector.IndexTip, detector.Wrist)
		}},

		// GOOD: thumbs up
		{Symbol: "GOOD", Fingers: pattern(true, false, false, false, false), When: func(f *Features) bool {
			return f.Above(detector.ThumbTip, detector.IndexTip)
		}},

		// HELP: thumb and index raised
		{Symbol: "HELP", Fingers: pattern(true, true, false, false, false)},
	}
}
