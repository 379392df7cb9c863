package detector

// Posed landmark fixtures for tests and the mock detector. All poses are
// right hands in normalized frame coordinates (y grows downward), built by
// mutating a closed fist one finger chain at a time.

// FistLandmarks returns a closed fist: every finger curled, thumb tucked
// against the knuckles.
func FistLandmarks() HandLandmarks {
	h := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	h.Points[Wrist] = Point3D{X: 0.50, Y: 0.80, Z: 0.0}

	// Thumb tucked: tip to the right of the IP joint
	h.Points[ThumbCMC] = Point3D{X: 0.45, Y: 0.75, Z: 0.01}
	h.Points[ThumbMCP] = Point3D{X: 0.42, Y: 0.70, Z: 0.01}
	h.Points[ThumbIP] = Point3D{X: 0.44, Y: 0.68, Z: 0.02}
	h.Points[ThumbTip] = Point3D{X: 0.48, Y: 0.67, Z: 0.02}

	// Fingers folded: each tip below its PIP joint
	h.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.65, Z: 0.0}
	h.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.60, Z: -0.02}
	h.Points[IndexDIP] = Point3D{X: 0.55, Y: 0.64, Z: -0.03}
	h.Points[IndexTip] = Point3D{X: 0.54, Y: 0.68, Z: -0.02}

	h.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.64, Z: 0.0}
	h.Points[MiddlePIP] = Point3D{X: 0.51, Y: 0.59, Z: -0.02}
	h.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.63, Z: -0.03}
	h.Points[MiddleTip] = Point3D{X: 0.49, Y: 0.67, Z: -0.02}

	h.Points[RingMCP] = Point3D{X: 0.45, Y: 0.65, Z: 0.0}
	h.Points[RingPIP] = Point3D{X: 0.46, Y: 0.60, Z: -0.02}
	h.Points[RingDIP] = Point3D{X: 0.45, Y: 0.64, Z: -0.03}
	h.Points[RingTip] = Point3D{X: 0.44, Y: 0.68, Z: -0.02}

	h.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.67, Z: 0.0}
	h.Points[PinkyPIP] = Point3D{X: 0.41, Y: 0.62, Z: -0.02}
	h.Points[PinkyDIP] = Point3D{X: 0.40, Y: 0.66, Z: -0.03}
	h.Points[PinkyTip] = Point3D{X: 0.39, Y: 0.70, Z: -0.02}

	return h
}

// OpenPalmLandmarks returns an open hand: thumb out to the side, all four
// fingers extended upward.
func OpenPalmLandmarks() HandLandmarks {
	h := FistLandmarks()
	extendThumbSide(&h)
	extendIndex(&h)
	extendMiddle(&h)
	extendRing(&h)
	extendPinky(&h)
	return h
}

// ThumbsUpLandmarks returns a fist with the thumb pointing upward.
func ThumbsUpLandmarks() HandLandmarks {
	h := FistLandmarks()
	h.Points[ThumbCMC] = Point3D{X: 0.46, Y: 0.75, Z: 0.01}
	h.Points[ThumbMCP] = Point3D{X: 0.44, Y: 0.62, Z: 0.01}
	h.Points[ThumbIP] = Point3D{X: 0.43, Y: 0.50, Z: 0.01}
	h.Points[ThumbTip] = Point3D{X: 0.41, Y: 0.38, Z: 0.01}
	return h
}

// ThumbSideLandmarks returns a fist with the thumb extended sideways at
// knuckle height, below the folded index tip.
func ThumbSideLandmarks() HandLandmarks {
	h := FistLandmarks()
	extendThumbSide(&h)
	return h
}

// VictoryLandmarks returns index and middle fingers extended and spread
// apart, the rest curled.
func VictoryLandmarks() HandLandmarks {
	h := FistLandmarks()
	h.Points[IndexMCP] = Point3D{X: 0.56, Y: 0.65, Z: 0.0}
	h.Points[IndexPIP] = Point3D{X: 0.59, Y: 0.52, Z: 0.0}
	h.Points[IndexDIP] = Point3D{X: 0.61, Y: 0.43, Z: 0.0}
	h.Points[IndexTip] = Point3D{X: 0.62, Y: 0.36, Z: 0.0}
	h.Points[MiddleMCP] = Point3D{X: 0.49, Y: 0.64, Z: 0.0}
	h.Points[MiddlePIP] = Point3D{X: 0.47, Y: 0.50, Z: 0.0}
	h.Points[MiddleDIP] = Point3D{X: 0.46, Y: 0.40, Z: 0.0}
	h.Points[MiddleTip] = Point3D{X: 0.46, Y: 0.31, Z: 0.0}
	return h
}

// ShakaLandmarks returns thumb and pinky extended, middle fingers curled.
func ShakaLandmarks() HandLandmarks {
	h := FistLandmarks()
	extendThumbSide(&h)
	extendPinky(&h)
	return h
}

// PointingLandmarks returns only the index finger extended.
func PointingLandmarks() HandLandmarks {
	h := FistLandmarks()
	extendIndex(&h)
	return h
}

// LShapeLandmarks returns thumb and index at a right angle: thumb straight
// out to the side, index straight up.
func LShapeLandmarks() HandLandmarks {
	h := FistLandmarks()
	h.Points[ThumbCMC] = Point3D{X: 0.44, Y: 0.74, Z: 0.0}
	h.Points[ThumbMCP] = Point3D{X: 0.40, Y: 0.72, Z: 0.0}
	h.Points[ThumbIP] = Point3D{X: 0.35, Y: 0.70, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.30, Y: 0.70, Z: 0.0}
	h.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.65, Z: 0.0}
	h.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.52, Z: 0.0}
	h.Points[IndexDIP] = Point3D{X: 0.55, Y: 0.43, Z: 0.0}
	h.Points[IndexTip] = Point3D{X: 0.55, Y: 0.35, Z: 0.0}
	return h
}

// PinchLandmarks returns an open hand with thumb and index tips touching.
func PinchLandmarks() HandLandmarks {
	h := FistLandmarks()
	h.Points[ThumbCMC] = Point3D{X: 0.48, Y: 0.74, Z: 0.0}
	h.Points[ThumbMCP] = Point3D{X: 0.52, Y: 0.62, Z: 0.0}
	h.Points[ThumbIP] = Point3D{X: 0.58, Y: 0.50, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.56, Y: 0.40, Z: 0.0}
	h.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.65, Z: 0.0}
	h.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.52, Z: 0.0}
	h.Points[IndexDIP] = Point3D{X: 0.57, Y: 0.45, Z: 0.0}
	h.Points[IndexTip] = Point3D{X: 0.57, Y: 0.38, Z: 0.0}
	extendMiddle(&h)
	extendRing(&h)
	extendPinky(&h)
	return h
}

func extendThumbSide(h *HandLandmarks) {
	h.Points[ThumbCMC] = Point3D{X: 0.44, Y: 0.76, Z: 0.0}
	h.Points[ThumbMCP] = Point3D{X: 0.40, Y: 0.73, Z: 0.0}
	h.Points[ThumbIP] = Point3D{X: 0.35, Y: 0.71, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.30, Y: 0.72, Z: 0.0}
}

func extendIndex(h *HandLandmarks) {
	h.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.65, Z: 0.0}
	h.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.52, Z: 0.0}
	h.Points[IndexDIP] = Point3D{X: 0.57, Y: 0.43, Z: 0.0}
	h.Points[IndexTip] = Point3D{X: 0.57, Y: 0.35, Z: 0.0}
}

func extendMiddle(h *HandLandmarks) {
	h.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.64, Z: 0.0}
	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.50, Z: 0.0}
	h.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40, Z: 0.0}
	h.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.30, Z: 0.0}
}

func extendRing(h *HandLandmarks) {
	h.Points[RingMCP] = Point3D{X: 0.45, Y: 0.65, Z: 0.0}
	h.Points[RingPIP] = Point3D{X: 0.44, Y: 0.52, Z: 0.0}
	h.Points[RingDIP] = Point3D{X: 0.43, Y: 0.43, Z: 0.0}
	h.Points[RingTip] = Point3D{X: 0.43, Y: 0.34, Z: 0.0}
}

func extendPinky(h *HandLandmarks) {
	h.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.67, Z: 0.0}
	h.Points[PinkyPIP] = Point3D{X: 0.38, Y: 0.57, Z: 0.0}
	h.Points[PinkyDIP] = Point3D{X: 0.37, Y: 0.50, Z: 0.0}
	h.Points[PinkyTip] = Point3D{X: 0.36, Y: 0.44, Z: 0.0}
}
