// Package filter decides whether value cells pass a set of rules.
//
// A Rule maps a candidate to Accept, Deny or Neutral. Base implements the
// common shape: a matcher plus the decisions returned on match and on
// mismatch. A Chain asks its rules in order and stops at the first
// decision that is not Neutral.
package filter

import (
	"fmt"
	"path"
	"strings"

	"github.com/samber/lo"

	"github.com/lixenwraith/commons/value"
)

// Decision is the outcome of a rule.
type Decision int

const (
	// Neutral defers to the next rule.
	Neutral Decision = iota
	// Accept lets the candidate through.
	Accept
	// Deny rejects the candidate.
	Deny
)

func (d Decision) String() string {
	switch d {
	case Neutral:
		return "NEUTRAL"
	case Accept:
		return "ACCEPT"
	case Deny:
		return "DENY"
	}
	return fmt.Sprintf("Decision(%d)", int(d))
}

// ParseDecision reads a decision name, ignoring case.
func ParseDecision(s string) (Decision, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NEUTRAL":
		return Neutral, nil
	case "ACCEPT":
		return Accept, nil
	case "DENY":
		return Deny, nil
	}
	return Neutral, fmt.Errorf("unknown filter decision %q", s)
}

// Rule decides on a single candidate.
type Rule interface {
	Decide(v any) Decision
}

// Base is a rule driven by a matcher. A nil Matcher never matches.
type Base struct {
	Name       string
	OnMatch    Decision
	OnMismatch Decision
	Matcher    func(any) bool
}

// Option adjusts a Base after construction.
type Option func(*Base)

// OnMatch sets the decision returned when the matcher matches.
func OnMatch(d Decision) Option {
	return func(b *Base) { b.OnMatch = d }
}

// OnMismatch sets the decision returned when the matcher does not match.
func OnMismatch(d Decision) Option {
	return func(b *Base) { b.OnMismatch = d }
}

// NewBase returns a rule accepting matches and neutral on the rest.
func NewBase(name string, matcher func(any) bool, opts ...Option) *Base {
	b := &Base{
		Name:       name,
		OnMatch:    Accept,
		OnMismatch: Neutral,
		Matcher:    matcher,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Decide implements Rule.
func (b *Base) Decide(v any) Decision {
	if b.Matcher != nil && b.Matcher(v) {
		return b.OnMatch
	}
	return b.OnMismatch
}

func (b *Base) String() string {
	return fmt.Sprintf("%s[match=%s, mismatch=%s]", b.Name, b.OnMatch, b.OnMismatch)
}

// TypeRule matches cells whose type is t.
func TypeRule(t value.Type, opts ...Option) *Base {
	return NewBase("type("+t.String()+")", func(v any) bool {
		cell, _, ok := cellOf(v)
		return ok && cell.Type() == t
	}, opts...)
}

// NameRule matches named cells whose name matches pattern, using
// path.Match syntax.
func NameRule(pattern string, opts ...Option) (*Base, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid name pattern %q: %w", pattern, err)
	}
	return NewBase("name("+pattern+")", func(v any) bool {
		_, name, ok := cellOf(v)
		if !ok || name == "" {
			return false
		}
		matched, _ := path.Match(pattern, name)
		return matched
	}, opts...), nil
}

// EqualRule matches cells holding exactly the type and value of want.
// A multi-valued cell matches only if it holds want's single value.
func EqualRule(want *value.Value, opts ...Option) *Base {
	target := want.ToMultiValues()
	return NewBase("equal("+want.String()+")", func(v any) bool {
		cell, _, ok := cellOf(v)
		return ok && cell.Equal(target)
	}, opts...)
}

// cellOf views a candidate as a multi-valued cell and its name.
func cellOf(v any) (*value.MultiValues, string, bool) {
	switch c := v.(type) {
	case *value.MultiValues:
		return c, "", c != nil
	case *value.Value:
		if c == nil {
			return nil, "", false
		}
		return c.ToMultiValues(), "", true
	case *value.NamedMultiValues:
		if c == nil {
			return nil, "", false
		}
		return &c.MultiValues, c.Name, true
	case *value.NamedValue:
		if c == nil {
			return nil, "", false
		}
		return c.Value.ToMultiValues(), c.Name, true
	}
	return nil, "", false
}

// Chain evaluates rules in order. The first non-Neutral decision wins;
// if every rule is Neutral the chain returns Default.
type Chain struct {
	Rules   []Rule
	Default Decision
}

// NewChain returns a chain with the given fallback decision.
func NewChain(def Decision, rules ...Rule) *Chain {
	return &Chain{Rules: rules, Default: def}
}

// Add appends a rule.
func (c *Chain) Add(r Rule) *Chain {
	c.Rules = append(c.Rules, r)
	return c
}

// Decide implements Rule, so chains nest.
func (c *Chain) Decide(v any) Decision {
	for _, r := range c.Rules {
		if d := r.Decide(v); d != Neutral {
			return d
		}
	}
	return c.Default
}

// Filter returns the cells the chain accepts, in their original order.
func (c *Chain) Filter(cells []*value.NamedMultiValues) []*value.NamedMultiValues {
	return lo.Filter(cells, func(cell *value.NamedMultiValues, _ int) bool {
		return c.Decide(cell) == Accept
	})
}
