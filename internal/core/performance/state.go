// Package performance contains the game simulation engine for a single performance.
// This is part of the Functional Core - no I/O, only state and the transitions over it.
package performance

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Status represents the lifecycle state of a performance.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusComplete Status = "complete"
	StatusFailed   Status = "failed"
)

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == StatusComplete || s == StatusFailed
}

// Sentinel errors. Game-rule outcomes are reported through Status, never through these.
var (
	// ErrInvalidSelection is returned when a hand index does not exist.
	ErrInvalidSelection = errors.New("invalid technique selection")
	// ErrPerformanceOver is returned when a transition is requested on a terminal state.
	ErrPerformanceOver = errors.New("performance is over")
	// ErrEmptyCatalog is returned when a required catalog has no entries.
	ErrEmptyCatalog = errors.New("catalog is empty")
	// ErrInvalidRules is returned when rules cannot describe a playable game.
	ErrInvalidRules = errors.New("invalid rules")
)

// Rules holds the fixed numbers a performance is played with.
type Rules struct {
	StartingAudience int
	StartingMomentum int
	StartingStamina  int
	HandSize         int
	StaminaGain      int
	MaxRounds        int
}

// DefaultRules returns the standard rules.
func DefaultRules() Rules {
	return Rules{
		StartingAudience: 5,
		StartingMomentum: 1,
		StartingStamina:  5,
		HandSize:         4,
		StaminaGain:      3,
		MaxRounds:        5,
	}
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	switch {
	case r.HandSize < 1:
		return fmt.Errorf("%w: hand size must be at least 1, got %d", ErrInvalidRules, r.HandSize)
	case r.MaxRounds < 1:
		return fmt.Errorf("%w: max rounds must be at least 1, got %d", ErrInvalidRules, r.MaxRounds)
	case r.StaminaGain < 0:
		return fmt.Errorf("%w: stamina gain cannot be negative, got %d", ErrInvalidRules, r.StaminaGain)
	case r.StartingAudience < 0:
		return fmt.Errorf("%w: starting audience cannot be negative, got %d", ErrInvalidRules, r.StartingAudience)
	}
	return nil
}

// Field names a counter that an intercept can guard.
type Field string

const (
	FieldCheers   Field = "cheers"
	FieldAudience Field = "audience"
	FieldMomentum Field = "momentum"
	FieldStamina  Field = "stamina"
)

// Message is one line of the event log shown to the player.
type Message struct {
	Text   string
	Recent bool
}

// PlayedTechnique is a history entry: the technique as it resolved, and when.
type PlayedTechnique struct {
	Technique Technique
	Round     int
}

// Setback is a round-start complication.
type Setback struct {
	Name        string
	Description string
	Apply       func(s *State)
}

// State is the single owner of a performance. Catalog hooks mutate it through its
// methods; everything else reads it through Snapshot and Hand.
type State struct {
	rules    Rules
	rng      *rand.Rand
	setbacks []Setback

	status   Status
	deck     []Card
	hand     []Card
	cheers   int
	audience int
	momentum int
	stamina  int
	round    int

	effects []Effect
	pending []Effect

	history  []PlayedTechnique
	messages []Message
	batch    []string
	setback  *Setback
}

// Rules returns the rules this performance was created with.
func (s *State) Rules() Rules { return s.rules }

// Status returns the lifecycle state.
func (s *State) Status() Status { return s.status }

func (s *State) Cheers() int   { return s.cheers }
func (s *State) Audience() int { return s.audience }
func (s *State) Momentum() int { return s.momentum }
func (s *State) Stamina() int  { return s.stamina }
func (s *State) Round() int    { return s.round }

// DeckSize returns the number of techniques left to draw.
func (s *State) DeckSize() int { return len(s.deck) }

// HandSize returns the number of techniques currently in hand.
func (s *State) HandSize() int { return len(s.hand) }

// AddCheers adds n cheers.
func (s *State) AddCheers(n int) { s.cheers += n }

// AddAudience adds n audience (n may be negative). Audience never drops below zero.
func (s *State) AddAudience(n int) {
	s.audience = max(0, s.audience+n)
}

// AddMomentum adds n momentum (n may be negative).
func (s *State) AddMomentum(n int) { s.momentum += n }

// AddStamina adds n stamina (n may be negative).
func (s *State) AddStamina(n int) { s.stamina += n }

// SetStamina overwrites stamina.
func (s *State) SetStamina(n int) { s.stamina = n }

// Energize adds the current audience to cheers and returns the amount gained.
func (s *State) Energize() int {
	s.cheers += s.audience
	return s.audience
}

// Draw moves up to n techniques from the front of the deck to the end of the hand.
// It returns how many were drawn.
func (s *State) Draw(n int) int {
	n = min(max(n, 0), len(s.deck))
	s.hand = append(s.hand, s.deck[:n]...)
	s.deck = append(s.deck[:0:0], s.deck[n:]...)
	return n
}

// DiscardHand moves the whole hand to the bottom of the deck and returns how many moved.
func (s *State) DiscardHand() int {
	n := len(s.hand)
	s.deck = append(s.deck, s.hand...)
	s.hand = nil
	return n
}

// PlayedCount returns how many techniques have been played this performance.
func (s *State) PlayedCount() int { return len(s.history) }

// PlayedThisRound returns how many techniques have been played in the current round.
func (s *State) PlayedThisRound() int {
	count := 0
	for _, p := range s.history {
		if p.Round == s.round {
			count++
		}
	}
	return count
}

// Setback returns the setback applied at the start of the current round.
// Round one has none.
func (s *State) Setback() (Setback, bool) {
	if s.setback == nil {
		return Setback{}, false
	}
	return *s.setback, true
}

// LastPlayed returns the most recent technique that counts as "last played".
func (s *State) LastPlayed() (Technique, bool) {
	for i := len(s.history) - 1; i >= 0; i-- {
		if !s.history[i].Technique.SkipLastPlayed {
			return s.history[i].Technique, true
		}
	}
	return Technique{}, false
}

// Note queues a message for the current transition's batch.
func (s *State) Note(text string) {
	s.batch = append(s.batch, text)
}

func (s *State) field(f Field) int {
	switch f {
	case FieldCheers:
		return s.cheers
	case FieldAudience:
		return s.audience
	case FieldMomentum:
		return s.momentum
	case FieldStamina:
		return s.stamina
	}
	return 0
}

func (s *State) setField(f Field, v int) {
	switch f {
	case FieldCheers:
		s.cheers = v
	case FieldAudience:
		s.audience = v
	case FieldMomentum:
		s.momentum = v
	case FieldStamina:
		s.stamina = v
	}
}

// flushMessages demotes every logged message and appends the current batch as recent.
func (s *State) flushMessages() {
	for i := range s.messages {
		s.messages[i].Recent = false
	}
	for _, text := range s.batch {
		s.messages = append(s.messages, Message{Text: text, Recent: true})
	}
	s.batch = nil
}
