// Package speech speaks session text aloud through an external
// text-to-speech command.
package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ErrNoEngine is returned when no supported text-to-speech command is
// installed on this machine.
var ErrNoEngine = errors.New("no text-to-speech engine found")

// DefaultTimeout bounds a single utterance; long transcripts are cut off
// rather than holding the caller hostage.
const DefaultTimeout = 30 * time.Second

// Speaker converts text to audible speech.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// engines lists supported TTS commands in preference order. Each takes the
// utterance as its final argument.
var engines = [][]string{
	{"say"},       // macOS
	{"espeak-ng"}, // Linux
	{"espeak"},    // Linux, older installs
	{"flite", "-voice", "slt", "-t"},
}

// CommandSpeaker speaks by running an external TTS command per utterance.
type CommandSpeaker struct {
	command string
	args    []string
	timeout time.Duration
}

// NewCommandSpeaker locates an installed TTS engine and returns a speaker
// that uses it. Returns ErrNoEngine when none of the supported commands is
// on the PATH.
func NewCommandSpeaker() (*CommandSpeaker, error) {
	for _, engine := range engines {
		path, err := exec.LookPath(engine[0])
		if err != nil {
			continue
		}
		return &CommandSpeaker{
			command: path,
			args:    engine[1:],
			timeout: DefaultTimeout,
		}, nil
	}
	return nil, ErrNoEngine
}

// Command returns the TTS executable this speaker runs.
func (s *CommandSpeaker) Command() string {
	return s.command
}

// Speak runs the TTS command with the given text. Empty text is a no-op.
func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	args := append(append([]string{}, s.args...), text)
	cmd := exec.CommandContext(ctx, s.command, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("speech timeout after %v", s.timeout)
	}

	if err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("speech failed: %w, stderr: %s", err, stderr.String())
		}
		return fmt.Errorf("speech failed: %w", err)
	}

	return nil
}

// MockSpeaker records utterances for tests.
type MockSpeaker struct {
	Utterances []string
	Err        error
}

// Speak records the text or returns the configured error.
func (m *MockSpeaker) Speak(ctx context.Context, text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Utterances = append(m.Utterances, text)
	return nil
}
