package detector

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxHands != 1 {
		t.Errorf("MaxHands = %d, want 1", cfg.MaxHands)
	}
	if cfg.MinConfidence != 0.7 {
		t.Errorf("MinConfidence = %f, want 0.7", cfg.MinConfidence)
	}
	if cfg.MinTrackingConf != 0.7 {
		t.Errorf("MinTrackingConf = %f, want 0.7", cfg.MinTrackingConf)
	}
}

func TestFirstHand(t *testing.T) {
	t.Run("no hands", func(t *testing.T) {
		if got := FirstHand(nil); got != nil {
			t.Errorf("FirstHand(nil) = %v, want nil", got)
		}
		if got := FirstHand([]HandLandmarks{}); got != nil {
			t.Errorf("FirstHand(empty) = %v, want nil", got)
		}
	})

	t.Run("single hand", func(t *testing.T) {
		hands := []HandLandmarks{FistLandmarks()}
		got := FirstHand(hands)
		if got == nil {
			t.Fatal("FirstHand returned nil for one hand")
		}
		if got != &hands[0] {
			t.Error("FirstHand should return the first-reported hand")
		}
	})

	t.Run("two hands picks first deterministically", func(t *testing.T) {
		hands := []HandLandmarks{OpenPalmLandmarks(), FistLandmarks()}

		// Repeated calls with the same ordering must agree
		for i := 0; i < 5; i++ {
			got := FirstHand(hands)
			if got != &hands[0] {
				t.Fatalf("call %d: FirstHand did not pick the first hand", i)
			}
		}
	})
}

func TestMockDetector(t *testing.T) {
	m := NewMockDetector()

	// Defaults to no hands
	hands, err := m.Detect(nil)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(hands) != 0 {
		t.Errorf("Detect() returned %d hands, want 0", len(hands))
	}

	// Returns configured hands
	m.SetHands([]HandLandmarks{ThumbsUpLandmarks()})
	hands, err = m.Detect(nil)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(hands) != 1 {
		t.Fatalf("Detect() returned %d hands, want 1", len(hands))
	}
	if hands[0].Handedness != "Right" {
		t.Errorf("Handedness = %q, want %q", hands[0].Handedness, "Right")
	}

	// Returns configured error
	wantErr := errors.New("camera unplugged")
	m.SetError(wantErr)
	if _, err := m.Detect(nil); !errors.Is(err, wantErr) {
		t.Errorf("Detect() error = %v, want %v", err, wantErr)
	}

	if err := m.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestFixtures_Distinct(t *testing.T) {
	fist := FistLandmarks()
	palm := OpenPalmLandmarks()
	up := ThumbsUpLandmarks()

	// Fist: index tip folded below its PIP joint
	if fist.Points[IndexTip].Y <= fist.Points[IndexPIP].Y {
		t.Error("fist index tip should sit below its PIP joint")
	}

	// Open palm: index tip raised above its PIP joint
	if palm.Points[IndexTip].Y >= palm.Points[IndexPIP].Y {
		t.Error("open palm index tip should sit above its PIP joint")
	}

	// Thumbs up: thumb tip well above the folded index tip
	if up.Points[ThumbTip].Y >= up.Points[IndexTip].Y {
		t.Error("thumbs up thumb tip should sit above the folded index tip")
	}
}

func TestNormalize(t *testing.T) {
	h := OpenPalmLandmarks()
	n := h.Normalize()

	// Wrist moves to the origin
	if w := n.Points[Wrist]; w.X != 0 || w.Y != 0 || w.Z != 0 {
		t.Errorf("normalized wrist = %+v, want origin", w)
	}

	// Wrist-to-middle-MCP distance becomes 1
	ref := n.Points[MiddleMCP]
	d := math.Sqrt(ref.X*ref.X + ref.Y*ref.Y + ref.Z*ref.Z)
	if math.Abs(d-1.0) > 1e-9 {
		t.Errorf("normalized reference distance = %f, want 1", d)
	}

	// Shifting the whole hand does not change the normalized pose
	shifted := h
	for i := range shifted.Points {
		shifted.Points[i].X += 0.2
		shifted.Points[i].Y -= 0.1
	}
	sn := shifted.Normalize()
	for i := range n.Points {
		if math.Abs(sn.Points[i].X-n.Points[i].X) > 1e-9 ||
			math.Abs(sn.Points[i].Y-n.Points[i].Y) > 1e-9 {
			t.Fatalf("landmark %d changed under translation: %+v vs %+v", i, sn.Points[i], n.Points[i])
		}
	}
}
