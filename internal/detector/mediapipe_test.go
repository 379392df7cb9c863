package detector

import "testing"

func TestFilterHands(t *testing.T) {
	hands := []jsonHand{
		{Handedness: "Right", Score: 0.95},
		{Handedness: "Left", Score: 0.55},
		{Handedness: "Right", Score: 0.80},
	}

	tests := []struct {
		name   string
		hands  []jsonHand
		config Config
		want   []float64 // scores of the hands that survive, in order
	}{
		{
			name:   "keeps all above threshold",
			hands:  hands,
			config: Config{MaxHands: 5, MinConfidence: 0.5},
			want:   []float64{0.95, 0.55, 0.80},
		},
		{
			name:   "drops below threshold",
			hands:  hands,
			config: Config{MaxHands: 5, MinConfidence: 0.7},
			want:   []float64{0.95, 0.80},
		},
		{
			name:   "caps at max hands",
			hands:  hands,
			config: Config{MaxHands: 1, MinConfidence: 0.5},
			want:   []float64{0.95},
		},
		{
			name:   "zero max hands means no cap",
			hands:  hands,
			config: Config{MaxHands: 0, MinConfidence: 0},
			want:   []float64{0.95, 0.55, 0.80},
		},
		{
			name:   "cap counts kept hands not seen hands",
			hands:  hands,
			config: Config{MaxHands: 2, MinConfidence: 0.7},
			want:   []float64{0.95, 0.80},
		},
		{
			name:   "no hands",
			hands:  nil,
			config: DefaultConfig(),
			want:   []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterHands(tt.hands, tt.config)
			if len(got) != len(tt.want) {
				t.Fatalf("filterHands returned %d hands, want %d", len(got), len(tt.want))
			}
			for i, score := range tt.want {
				if got[i].Score != score {
					t.Errorf("hand %d: score = %v, want %v", i, got[i].Score, score)
				}
			}
		})
	}
}

func TestFilterHands_PreservesHandedness(t *testing.T) {
	got := filterHands([]jsonHand{{Handedness: "Left", Score: 0.9}}, Config{MaxHands: 1, MinConfidence: 0.5})
	if len(got) != 1 || got[0].Handedness != "Left" {
		t.Fatalf("filterHands = %+v, want one Left hand", got)
	}
}
