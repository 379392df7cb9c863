package sign

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

// Features bundles the per-frame measurements a classification rule may
// inspect: the raw landmark points and the derived finger-state vector.
type Features struct {
	Points  []detector.Point3D
	Fingers FingerState
}

// Distance returns the Euclidean distance between two landmarks.
func (f *Features) Distance(i, j int) float64 {
	a, b := f.Points[i], f.Points[j]
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Angle returns the angle in degrees at landmark b formed by landmarks
// a and c, measured in the image plane. The result is folded into [0, 180].
func (f *Features) Angle(a, b, c int) float64 {
	pa, pb, pc := f.Points[a], f.Points[b], f.Points[c]
	radians := math.Atan2(pc.Y-pb.Y, pc.X-pb.X) - math.Atan2(pa.Y-pb.Y, pa.X-pb.X)
	angle := math.Abs(radians * 180.0 / math.Pi)
	if angle > 180.0 {
		angle = 360.0 - angle
	}
	return angle
}

// Above reports whether landmark i sits above landmark j in the frame
// (smaller y means higher).
func (f *Features) Above(i, j int) bool {
	return f.Points[i].Y < f.Points[j].Y
}
