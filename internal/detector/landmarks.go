// Package detector provides hand detection interfaces and types for sign recognition.
package detector

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D represents a 3D point with x, y, z coordinates.
// Coordinates are normalized to the frame: x and y in [0,1] with y
// increasing downward, z is relative depth.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks detected by MediaPipe.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// Normalize returns a copy of the landmarks translated so the wrist is at
// the origin and scaled so the wrist-to-middle-MCP distance is 1. Useful
// for rule predicates that should not depend on hand size or position.
func (h HandLandmarks) Normalize() HandLandmarks {
	wrist := h.Points[Wrist]

	ref := h.Points[MiddleMCP]
	dx := ref.X - wrist.X
	dy := ref.Y - wrist.Y
	dz := ref.Z - wrist.Z
	scale := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if scale == 0 {
		return h
	}
	scale = 1.0 / scale

	out := h
	for i := range out.Points {
		out.Points[i] = Point3D{
			X: (h.Points[i].X - wrist.X) * scale,
			Y: (h.Points[i].Y - wrist.Y) * scale,
			Z: (h.Points[i].Z - wrist.Z) * scale,
		}
	}
	return out
}

// FirstHand deterministically selects the hand to feed into recognition.
// The recognizer follows a single-hand policy: when the detector reports
// more than one hand, only the first-reported one is considered.
// Returns nil when no hands were detected.
func FirstHand(hands []HandLandmarks) *HandLandmarks {
	if len(hands) == 0 {
		return nil
	}
	return &hands[0]
}
