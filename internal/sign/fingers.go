// Package sign converts hand landmarks into text symbols: a finger-state
// extractor, a declarative rule-table classifier, and a hold-to-confirm
// stabilizer that debounces per-frame classifications over time.
package sign

import (
	"errors"

	"github.com/ayusman/mudra/internal/detector"
)

// ErrMalformedLandmarks is returned when a caller supplies a landmark set
// that is not exactly 21 points. The frame is rejected rather than guessed at.
var ErrMalformedLandmarks = errors.New("landmark set must contain exactly 21 points")

// Finger indices into a FingerState vector.
const (
	Thumb = iota
	Index
	Middle
	Ring
	Pinky
	NumFingers
)

// FingerState records which fingers are extended (true) or curled (false),
// ordered thumb, index, middle, ring, pinky.
type FingerState [NumFingers]bool

// ExtendedCount returns the number of extended fingers.
func (s FingerState) ExtendedCount() int {
	n := 0
	for _, extended := range s {
		if extended {
			n++
		}
	}
	return n
}

// ExtractConfig holds the geometric margins used when deciding whether a
// finger is extended. The zero value reproduces the strict comparisons the
// recognizer was tuned with; positive margins demand a clearer separation
// before a finger counts as extended.
type ExtractConfig struct {
	// ThumbMargin is how far the thumb tip must sit beyond the IP joint
	// horizontally to count as extended.
	ThumbMargin float64

	// FingerMargin is how far a fingertip must rise above its PIP joint
	// to count as extended.
	FingerMargin float64
}

// fingertip/PIP pairs for the four non-thumb fingers, in FingerState order.
var fingerJoints = [4][2]int{
	{detector.IndexTip, detector.IndexPIP},
	{detector.MiddleTip, detector.MiddlePIP},
	{detector.RingTip, detector.RingPIP},
	{detector.PinkyTip, detector.PinkyPIP},
}

// ExtractFingers derives a FingerState from a 21-point landmark set.
//
// The thumb extends sideways rather than upward, so it is judged on the
// horizontal axis: extended when the tip clears the IP joint toward the
// hand's outside. The other four fingers are extended when the fingertip
// sits above the PIP joint (frame y grows downward).
//
// Pure function of its inputs; the only failure mode is a wrong point
// count, which is a caller contract violation.
func ExtractFingers(points []detector.Point3D, cfg ExtractConfig) (FingerState, error) {
	var state FingerState
	if len(points) != detector.NumLandmarks {
		return state, ErrMalformedLandmarks
	}

	state[Thumb] = points[detector.ThumbTip].X < points[detector.ThumbIP].X-cfg.ThumbMargin

	for i, joints := range fingerJoints {
		tip, pip := joints[0], joints[1]
		state[Index+i] = points[tip].Y < points[pip].Y-cfg.FingerMargin
	}

	return state, nil
}
