// Package translate binds the sign classifier, the hold-to-confirm
// stabilizer and the text session into a single per-frame entry point.
package translate

import (
	"sync"
	"time"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/session"
	"github.com/ayusman/mudra/internal/sign"
)

// Config holds configuration options for a Translator. Zero-value fields
// fall back to the defaults the application ships with.
type Config struct {
	// Classifier maps landmarks to symbols (default: built-in ASL table).
	Classifier *sign.Classifier

	// HoldDuration is how long a sign must be held before confirmation
	// (default: sign.DefaultHoldDuration).
	HoldDuration time.Duration

	// Session receives confirmed symbols (default: a fresh session).
	Session *session.Session
}

// Translator turns a stream of per-frame landmark sets into session text.
// Each Translator is independent: all recognition state lives here, so an
// embedding application can run several side by side.
//
// ProcessFrame belongs to the single frame-processing path; the accessors
// and the session are safe to read from other goroutines.
type Translator struct {
	classifier *sign.Classifier
	session    *session.Session

	mu         sync.Mutex
	stabilizer *sign.Stabilizer
}

// New creates a Translator from the given configuration.
func New(cfg Config) *Translator {
	classifier := cfg.Classifier
	if classifier == nil {
		classifier = sign.NewDefaultClassifier()
	}

	sess := cfg.Session
	if sess == nil {
		sess = session.New()
	}

	return &Translator{
		classifier: classifier,
		stabilizer: sign.NewStabilizer(cfg.HoldDuration),
		session:    sess,
	}
}

// ProcessFrame feeds one frame's landmarks through classification and
// stabilization. points is the selected hand's 21 landmarks, or nil/empty
// when no hand is visible this frame; dt is the time elapsed since the
// previous frame.
//
// Returns the confirmed symbol and true when a hold completes this frame;
// the symbol has already been appended to the session. A landmark set with
// the wrong point count rejects the frame with an error and leaves the
// recognition state untouched.
func (t *Translator) ProcessFrame(points []detector.Point3D, dt time.Duration) (sign.Symbol, bool, error) {
	if len(points) == 0 {
		// No hand this frame: equivalent to classifying "none"
		t.mu.Lock()
		t.stabilizer.Observe(sign.None, dt)
		t.mu.Unlock()
		return sign.None, false, nil
	}

	symbol, err := t.classifier.Classify(points)
	if err != nil {
		return sign.None, false, err
	}

	t.mu.Lock()
	confirmed, ok := t.stabilizer.Observe(symbol, dt)
	t.mu.Unlock()
	if !ok {
		return sign.None, false, nil
	}

	t.session.Append(string(confirmed))
	return confirmed, true, nil
}

// Session returns the text session this translator appends to.
func (t *Translator) Session() *session.Session {
	return t.session
}

// Candidate returns the symbol currently being held, or sign.None.
func (t *Translator) Candidate() sign.Symbol {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stabilizer.Candidate()
}

// Confirmed returns the most recently confirmed symbol, or sign.None.
func (t *Translator) Confirmed() sign.Symbol {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stabilizer.Confirmed()
}

// Progress reports hold completion for the current candidate, from 0 to 1.
func (t *Translator) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stabilizer.Progress()
}

// Reset abandons any in-progress hold, e.g. when recognition is paused.
// The session text is left alone.
func (t *Translator) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stabilizer.Reset()
}
