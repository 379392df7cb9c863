package sign

import (
	"testing"
	"time"
)

func TestStabilizer_ConfirmsAfterHold(t *testing.T) {
	s := NewStabilizer(1 * time.Second)
	frame := 100 * time.Millisecond

	// Nine frames of "A" accumulate 900ms: no confirmation yet
	for i := 0; i < 9; i++ {
		if sym, ok := s.Observe("A", frame); ok {
			t.Fatalf("frame %d: unexpected confirmation %q at %v", i+1, sym, s.elapsed)
		}
	}

	// Tenth frame reaches exactly 1s: confirm once
	sym, ok := s.Observe("A", frame)
	if !ok {
		t.Fatal("expected confirmation on the 10th matching frame")
	}
	if sym != "A" {
		t.Errorf("confirmed symbol = %q, want %q", sym, "A")
	}

	// Frame 11 starts a fresh hold and must not re-emit
	if sym, ok := s.Observe("A", frame); ok {
		t.Errorf("frame after confirmation re-emitted %q", sym)
	}
	if s.Candidate() != "A" {
		t.Errorf("Candidate() = %q, want %q", s.Candidate(), "A")
	}

	// Another nine frames complete the second hold: a separate emission
	var confirmations int
	for i := 0; i < 9; i++ {
		if _, ok := s.Observe("A", frame); ok {
			confirmations++
		}
	}
	if confirmations != 1 {
		t.Errorf("second hold produced %d confirmations, want 1", confirmations)
	}
}

func TestStabilizer_JustUnderThresholdNeverEmits(t *testing.T) {
	s := NewStabilizer(1 * time.Second)

	// 999ms of sustained "B"
	for i := 0; i < 9; i++ {
		if _, ok := s.Observe("B", 111*time.Millisecond); ok {
			t.Fatal("emitted below the hold threshold")
		}
	}
}

func TestStabilizer_NoneAbandonsHold(t *testing.T) {
	s := NewStabilizer(300 * time.Millisecond)
	frame := 100 * time.Millisecond

	// A, A, none, A, A, A: the none frame resets accumulation, so the
	// first two A frames never contribute to a confirmation.
	if _, ok := s.Observe("A", frame); ok {
		t.Fatal("premature confirmation")
	}
	if _, ok := s.Observe("A", frame); ok {
		t.Fatal("premature confirmation")
	}

	s.Observe(None, frame)
	if s.Candidate() != None {
		t.Fatal("none frame should return the stabilizer to idle")
	}

	if _, ok := s.Observe("A", frame); ok {
		t.Fatal("confirmation should need a full hold after the reset")
	}
	if _, ok := s.Observe("A", frame); ok {
		t.Fatal("confirmation should need a full hold after the reset")
	}
	sym, ok := s.Observe("A", frame)
	if !ok || sym != "A" {
		t.Fatalf("Observe() = (%q, %v), want (A, true)", sym, ok)
	}
}

func TestStabilizer_SwitchingCandidateRestartsHold(t *testing.T) {
	s := NewStabilizer(300 * time.Millisecond)
	frame := 100 * time.Millisecond

	s.Observe("A", frame)
	s.Observe("A", frame)

	// Switch to B before A confirms
	if sym, ok := s.Observe("B", frame); ok {
		t.Fatalf("switching candidates emitted %q", sym)
	}
	if s.Candidate() != "B" {
		t.Errorf("Candidate() = %q, want %q", s.Candidate(), "B")
	}

	// B needs its own full hold
	if _, ok := s.Observe("B", frame); ok {
		t.Fatal("B confirmed before a full hold")
	}
	sym, ok := s.Observe("B", frame)
	if !ok || sym != "B" {
		t.Fatalf("Observe() = (%q, %v), want (B, true)", sym, ok)
	}
}

func TestStabilizer_SeparatedHoldsEmitTwice(t *testing.T) {
	s := NewStabilizer(200 * time.Millisecond)
	frame := 100 * time.Millisecond

	var emissions int
	feed := []Symbol{"A", "A", None, "A", "A"}
	for _, sym := range feed {
		if _, ok := s.Observe(sym, frame); ok {
			emissions++
		}
	}

	if emissions != 2 {
		t.Errorf("two separated holds emitted %d times, want 2", emissions)
	}
}

func TestStabilizer_Progress(t *testing.T) {
	s := NewStabilizer(1 * time.Second)

	if p := s.Progress(); p != 0 {
		t.Errorf("idle Progress() = %f, want 0", p)
	}

	s.Observe("A", 250*time.Millisecond)
	if p := s.Progress(); p != 0.25 {
		t.Errorf("Progress() = %f, want 0.25", p)
	}

	s.Observe("A", 250*time.Millisecond)
	if p := s.Progress(); p != 0.5 {
		t.Errorf("Progress() = %f, want 0.5", p)
	}

	// Confirmation returns progress to zero
	s.Observe("A", 500*time.Millisecond)
	if p := s.Progress(); p != 0 {
		t.Errorf("Progress() after confirmation = %f, want 0", p)
	}
}

func TestStabilizer_Reset(t *testing.T) {
	s := NewStabilizer(200 * time.Millisecond)

	s.Observe("A", 100*time.Millisecond)
	s.Observe("A", 100*time.Millisecond)
	if s.Confirmed() != "A" {
		t.Fatalf("Confirmed() = %q, want %q", s.Confirmed(), "A")
	}

	s.Observe("B", 100*time.Millisecond)
	s.Reset()

	if s.Candidate() != None {
		t.Error("Reset should clear the candidate")
	}
	if s.Confirmed() != None {
		t.Error("Reset should clear the confirmed symbol")
	}
	if s.Progress() != 0 {
		t.Error("Reset should clear hold progress")
	}
}

func TestStabilizer_DefaultHold(t *testing.T) {
	s := NewStabilizer(0)
	if s.hold != DefaultHoldDuration {
		t.Errorf("hold = %v, want %v", s.hold, DefaultHoldDuration)
	}
}
