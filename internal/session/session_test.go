package session

import (
	"fmt"
	"sync"
	"testing"
)

func TestSession_AppendBackspaceSnapshot(t *testing.T) {
	s := New()

	s.Append("A")
	s.Append("B")
	s.Backspace()

	if got := s.Snapshot(); got != "A" {
		t.Errorf("Snapshot() = %q, want %q", got, "A")
	}

	s.Clear()
	if got := s.Snapshot(); got != "" {
		t.Errorf("Snapshot() after Clear = %q, want empty", got)
	}
}

func TestSession_BackspaceRemovesWholeSymbol(t *testing.T) {
	s := New()

	// Word symbols are multi-character; backspace removes the whole entry
	s.Append("HELLO")
	s.Append("GOOD")
	s.Backspace()

	if got := s.Snapshot(); got != "HELLO" {
		t.Errorf("Snapshot() = %q, want %q", got, "HELLO")
	}
}

func TestSession_BackspaceOnEmptyIsNoop(t *testing.T) {
	s := New()

	s.Backspace()
	if got := s.Snapshot(); got != "" {
		t.Errorf("Snapshot() = %q, want empty", got)
	}
}

func TestSession_AppendSpaceAndWordCount(t *testing.T) {
	s := New()

	s.Append("HELLO")
	s.AppendSpace()
	s.Append("GOOD")

	if got := s.Snapshot(); got != "HELLO GOOD" {
		t.Errorf("Snapshot() = %q, want %q", got, "HELLO GOOD")
	}

	stats := s.Stats()
	if stats.Signs != 2 {
		t.Errorf("Stats().Signs = %d, want 2 (spaces are not signs)", stats.Signs)
	}
	if stats.Words != 2 {
		t.Errorf("Stats().Words = %d, want 2", stats.Words)
	}
}

func TestSession_EmptySymbolIgnored(t *testing.T) {
	s := New()

	s.Append("")
	if got := s.Stats().Signs; got != 0 {
		t.Errorf("Stats().Signs = %d, want 0", got)
	}
}

func TestSession_HistoryKeepsLastTen(t *testing.T) {
	s := New()

	for i := 0; i < 15; i++ {
		s.Append(fmt.Sprintf("S%d", i))
	}

	history := s.History()
	if len(history) != HistorySize {
		t.Fatalf("len(History()) = %d, want %d", len(history), HistorySize)
	}
	if history[0] != "S5" {
		t.Errorf("oldest history entry = %q, want %q", history[0], "S5")
	}
	if history[len(history)-1] != "S14" {
		t.Errorf("newest history entry = %q, want %q", history[len(history)-1], "S14")
	}
}

func TestSession_ClearResetsEverything(t *testing.T) {
	s := New()

	s.Append("A")
	s.AppendSpace()
	s.Append("B")
	s.Clear()

	if got := s.Snapshot(); got != "" {
		t.Errorf("Snapshot() = %q, want empty", got)
	}
	if stats := s.Stats(); stats.Signs != 0 || stats.Words != 0 {
		t.Errorf("Stats() = %+v, want zeroes", stats)
	}
	if history := s.History(); len(history) != 0 {
		t.Errorf("History() has %d entries, want 0", len(history))
	}
}

func TestSession_ConcurrentReadersAndWriter(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			s.Append("A")
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			s.Snapshot()
			s.Stats()
			s.History()
		}
	}()

	wg.Wait()

	if got := s.Stats().Signs; got != 100 {
		t.Errorf("Stats().Signs = %d, want 100", got)
	}
}
