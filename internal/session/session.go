// Package session owns the text accumulated from confirmed signs.
package session

import (
	"strings"
	"sync"
)

// HistorySize is how many recent signs the session remembers for display.
const HistorySize = 10

// Stats summarizes a session for display and export.
type Stats struct {
	Signs int `json:"signs"`
	Words int `json:"words"`
}

// Session accumulates confirmed sign symbols into a running text buffer.
// The buffer is only ever mutated by appending a confirmed symbol or by
// explicit clear/backspace commands from the UI layer.
//
// A single lock serializes the frame-processing writer against UI, export
// and speech readers.
type Session struct {
	mu      sync.Mutex
	symbols []string
	history []string
	signs   int
}

// New creates an empty Session.
func New() *Session {
	return &Session{}
}

// Append adds a confirmed symbol to the end of the buffer and records it
// in the recent-sign history.
func (s *Session) Append(symbol string) {
	if symbol == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.symbols = append(s.symbols, symbol)
	s.signs++

	s.history = append(s.history, symbol)
	if len(s.history) > HistorySize {
		s.history = s.history[len(s.history)-HistorySize:]
	}
}

// AppendSpace adds a word separator to the buffer.
func (s *Session) AppendSpace() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.symbols = append(s.symbols, " ")
}

// Backspace removes the last appended symbol. No-op on an empty buffer.
func (s *Session) Backspace() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.symbols) == 0 {
		return
	}
	s.symbols = s.symbols[:len(s.symbols)-1]
}

// Clear empties the buffer, the history and the counters. Explicit user
// action only; nothing in the recognition path calls this.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.symbols = nil
	s.history = nil
	s.signs = 0
}

// Snapshot returns the current buffer contents without mutating state.
func (s *Session) Snapshot() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.symbols, "")
}

// History returns the most recently confirmed signs, oldest first.
func (s *Session) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// Stats returns the total confirmed sign count and the current word count.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		Signs: s.signs,
		Words: len(strings.Fields(strings.Join(s.symbols, ""))),
	}
}
