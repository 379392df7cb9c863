package sign

import (
	"github.com/ayusman/mudra/internal/detector"
)

// Symbol is a recognized sign: a letter or word from the rule table.
type Symbol string

// None is the sentinel for "no recognizable sign this frame". It is not an
// error; the stabilizer treats it as the absence of a candidate.
const None Symbol = ""

// Predicate is an optional geometric check a rule may impose beyond its
// finger pattern, e.g. "thumb and index tips close together".
type Predicate func(f *Features) bool

// Rule is one entry in the classification table.
//
// A rule matches when the frame's finger state satisfies the pattern
// (exact Fingers match, or at least MinExtended fingers extended when
// Fingers is nil) and the optional When predicate holds. Rules are checked
// in declaration order and the first match wins, so more specific rules
// must be listed before more general ones.
type Rule struct {
	Symbol      Symbol
	Fingers     *FingerState // exact finger pattern; nil matches any
	MinExtended int          // minimum extended fingers, used when Fingers is nil
	When        Predicate    // optional extra geometric condition
}

func (r *Rule) matches(f *Features) bool {
	if r.Fingers != nil {
		if f.Fingers != *r.Fingers {
			return false
		}
	} else if f.Fingers.ExtendedCount() < r.MinExtended {
		return false
	}
	if r.When != nil && !r.When(f) {
		return false
	}
	return true
}

// Classifier maps a landmark set to a Symbol using an ordered rule table.
// Adding a sign means adding a table entry, not new control flow.
type Classifier struct {
	rules   []Rule
	extract ExtractConfig
}

// NewClassifier creates a Classifier with the given rule table and
// extraction margins. Rules keep their slice order for matching priority.
func NewClassifier(rules []Rule, extract ExtractConfig) *Classifier {
	return &Classifier{
		rules:   rules,
		extract: extract,
	}
}

// NewDefaultClassifier creates a Classifier with the built-in ASL rule
// table and zero extraction margins.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultRules(), ExtractConfig{})
}

// Classify maps the landmark set to a Symbol, or None when no rule matches
// within tolerance. The only error is a malformed landmark set (wrong point
// count), which rejects the frame.
func (c *Classifier) Classify(points []detector.Point3D) (Symbol, error) {
	fingers, err := ExtractFingers(points, c.extract)
	if err != nil {
		return None, err
	}

	f := &Features{
		Points:  points,
		Fingers: fingers,
	}

	for i := range c.rules {
		if c.rules[i].matches(f) {
			return c.rules[i].Symbol, nil
		}
	}

	return None, nil
}

// Rules returns the classifier's rule table in priority order.
func (c *Classifier) Rules() []Rule {
	return c.rules
}
