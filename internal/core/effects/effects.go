// Package effects defines shell effects as data structures.
// This is the foundation of the Functional Core / Imperative Shell split: planners
// describe what should be recorded, the application layer decides how.
//
// These are not game effects (see performance.Effect); they are the I/O a transition
// asks the shell to perform.
package effects

// Effect is the base interface for all effects.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// LogEffect represents a logging operation.
type LogEffect struct {
	Level   string // "debug", "info", "warn", "error"
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// PersistEffect represents a journal write.
type PersistEffect struct {
	Entity    string // e.g., "journal"
	Operation string // e.g., "append"
	Data      any    // The record to write
}

func (e PersistEffect) EffectType() string { return "persist" }

// CompositeEffect holds multiple effects to be executed in sequence.
type CompositeEffect struct {
	Effects []Effect
}

func (e CompositeEffect) EffectType() string { return "composite" }

// NoEffect represents an operation that produces no side effects.
type NoEffect struct{}

func (e NoEffect) EffectType() string { return "none" }
