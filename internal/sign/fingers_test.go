package sign

import (
	"errors"
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

func TestExtractFingers(t *testing.T) {
	tests := []struct {
		name string
		hand detector.HandLandmarks
		want FingerState
	}{
		{
			name: "fist",
			hand: detector.FistLandmarks(),
			want: FingerState{false, false, false, false, false},
		},
		{
			name: "open palm",
			hand: detector.OpenPalmLandmarks(),
			want: FingerState{true, true, true, true, true},
		},
		{
			name: "thumbs up",
			hand: detector.ThumbsUpLandmarks(),
			want: FingerState{true, false, false, false, false},
		},
		{
			name: "pointing index",
			hand: detector.PointingLandmarks(),
			want: FingerState{false, true, false, false, false},
		},
		{
			name: "victory",
			hand: detector.VictoryLandmarks(),
			want: FingerState{false, true, true, false, false},
		},
		{
			name: "shaka",
			hand: detector.ShakaLandmarks(),
			want: FingerState{true, false, false, false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFingers(tt.hand.Points[:], ExtractConfig{})
			if err != nil {
				t.Fatalf("ExtractFingers() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractFingers() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractFingers_MalformedInput(t *testing.T) {
	hand := detector.OpenPalmLandmarks()

	tests := []struct {
		name   string
		points []detector.Point3D
	}{
		{name: "nil", points: nil},
		{name: "empty", points: []detector.Point3D{}},
		{name: "too few", points: hand.Points[:10]},
		{name: "too many", points: append(hand.Points[:], detector.Point3D{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractFingers(tt.points, ExtractConfig{})
			if !errors.Is(err, ErrMalformedLandmarks) {
				t.Errorf("ExtractFingers() error = %v, want ErrMalformedLandmarks", err)
			}
		})
	}
}

func TestExtractFingers_Margins(t *testing.T) {
	// The open palm index tip clears its PIP joint by 0.17; a margin larger
	// than that flips the finger back to curled.
	hand := detector.OpenPalmLandmarks()

	got, err := ExtractFingers(hand.Points[:], ExtractConfig{FingerMargin: 0.3})
	if err != nil {
		t.Fatalf("ExtractFingers() error = %v", err)
	}
	if got[Index] {
		t.Error("index should count as curled under a large finger margin")
	}
	if !got[Thumb] {
		t.Error("thumb should be unaffected by the finger margin")
	}

	got, err = ExtractFingers(hand.Points[:], ExtractConfig{ThumbMargin: 0.2})
	if err != nil {
		t.Fatalf("ExtractFingers() error = %v", err)
	}
	if got[Thumb] {
		t.Error("thumb should count as curled under a large thumb margin")
	}
}

func TestFingerState_ExtendedCount(t *testing.T) {
	tests := []struct {
		state FingerState
		want  int
	}{
		{FingerState{}, 0},
		{FingerState{true, false, false, false, false}, 1},
		{FingerState{false, true, true, false, false}, 2},
		{FingerState{true, true, true, true, true}, 5},
	}

	for _, tt := range tests {
		if got := tt.state.ExtendedCount(); got != tt.want {
			t.Errorf("ExtendedCount(%v) = %d, want %d", tt.state, got, tt.want)
		}
	}
}
