package performance

import (
	"slices"

	"github.com/google/uuid"
)

// Effect is a modifier attached to the performance by a technique or a setback.
// Any combination of capabilities may be set.
type Effect struct {
	ID     string
	Name   string
	Source string

	// HandDuration counts down once per technique played; zero means no hand limit.
	HandDuration int
	// RoundDuration counts down once per round advance; zero means no round limit.
	RoundDuration int

	// Combo fires after every replay of every technique played.
	Combo func(s *State)
	// ModifyTechnique rewrites a technique while it sits in the effective hand.
	ModifyTechnique func(t Technique) Technique
	// Intercept guards one counter around each intercepted mutation.
	Intercept *Intercept
	// DrawPenalty reduces the number of techniques drawn at round start.
	DrawPenalty int
}

// Permanent reports whether the effect has no duration.
func (e Effect) Permanent() bool {
	return e.HandDuration == 0 && e.RoundDuration == 0
}

// Intercept is a two-phase hook around a mutation: the engine captures Field before
// the mutation runs and stores Adjust(before, after) once it has finished.
type Intercept struct {
	Field  Field
	Adjust func(before, after int) int
}

// NoGain keeps a counter from rising above its captured value.
func NoGain(before, after int) int {
	return min(before, after)
}

// NoLoss keeps a counter from falling below its captured value.
func NoLoss(before, after int) int {
	return max(before, after)
}

// AddPendingEffect stages an effect; it becomes active once the current play or round
// setup completes. It returns the effect's id.
func (s *State) AddPendingEffect(e Effect) string {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	s.pending = append(s.pending, e)
	return e.ID
}

// RemoveEffect removes an active or pending effect by id.
func (s *State) RemoveEffect(id string) bool {
	before := len(s.effects) + len(s.pending)
	match := func(e Effect) bool { return e.ID == id }
	s.effects = slices.DeleteFunc(s.effects, match)
	s.pending = slices.DeleteFunc(s.pending, match)
	return before != len(s.effects)+len(s.pending)
}

// ClearEffects removes every active effect and returns how many were removed.
func (s *State) ClearEffects() int {
	n := len(s.effects)
	s.effects = nil
	return n
}

// ActiveEffects returns a copy of the active effects in registration order.
func (s *State) ActiveEffects() []Effect {
	return slices.Clone(s.effects)
}

func (s *State) promotePending() {
	s.effects = append(s.effects, s.pending...)
	s.pending = nil
}

func (s *State) drawPenalty() int {
	total := 0
	for _, e := range s.effects {
		total += e.DrawPenalty
	}
	return total
}

// countDown decrements the duration selected by dur on every effect that has one and
// drops the effects whose counter reaches zero.
func countDown(effects []Effect, dur func(e *Effect) *int) []Effect {
	kept := make([]Effect, 0, len(effects))
	for _, e := range effects {
		d := dur(&e)
		if *d > 0 {
			*d--
			if *d == 0 {
				continue
			}
		}
		kept = append(kept, e)
	}
	return kept
}

func handDuration(e *Effect) *int  { return &e.HandDuration }
func roundDuration(e *Effect) *int { return &e.RoundDuration }

// intercepted runs mutate between the capture and adjust phases of every active intercept.
func (s *State) intercepted(mutate func()) {
	type capture struct {
		intercept Intercept
		before    int
	}
	var captures []capture
	for _, e := range s.effects {
		if e.Intercept == nil || e.Intercept.Adjust == nil {
			continue
		}
		captures = append(captures, capture{intercept: *e.Intercept, before: s.field(e.Intercept.Field)})
	}

	mutate()

	for _, c := range captures {
		f := c.intercept.Field
		s.setField(f, c.intercept.Adjust(c.before, s.field(f)))
	}
}
