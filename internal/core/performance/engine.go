package performance

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Catalog is the fixed content a performance is dealt from.
type Catalog struct {
	Techniques []Card
	Setbacks   []Setback
}

// New creates a performance: two copies of every catalog technique are shuffled into
// the deck with a PRNG seeded by seed, and the opening hand is drawn. The same seed and
// the same sequence of actions always produce the same game.
func New(rules Rules, catalog Catalog, seed uint64) (*State, error) {
	if len(catalog.Techniques) == 0 {
		return nil, fmt.Errorf("techniques: %w", ErrEmptyCatalog)
	}
	rng := newRand(seed)
	deck := make([]Card, 0, 2*len(catalog.Techniques))
	for _, card := range catalog.Techniques {
		deck = append(deck, card, card)
	}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return newState(rules, deck, catalog.Setbacks, rng)
}

// NewWithDeck creates a performance from an already ordered deck (front is drawn first).
// The deck is used as given, without shuffling.
func NewWithDeck(rules Rules, deck []Card, setbacks []Setback, seed uint64) (*State, error) {
	if len(deck) == 0 {
		return nil, fmt.Errorf("deck: %w", ErrEmptyCatalog)
	}
	return newState(rules, slices.Clone(deck), setbacks, newRand(seed))
}

func newState(rules Rules, deck []Card, setbacks []Setback, rng *rand.Rand) (*State, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if len(setbacks) == 0 {
		return nil, fmt.Errorf("setbacks: %w", ErrEmptyCatalog)
	}
	s := &State{
		rules:    rules,
		rng:      rng,
		setbacks: slices.Clone(setbacks),
		status:   StatusPlaying,
		deck:     deck,
		audience: rules.StartingAudience,
		momentum: rules.StartingMomentum,
		stamina:  rules.StartingStamina,
		round:    1,
	}
	s.Draw(rules.HandSize)
	return s, nil
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// PlayTechniqueFromHand plays the technique at index in the effective hand.
//
// The card moves to the bottom of the deck and its effective cost is subtracted from
// stamina without any affordability check; callers enforce CanPlayTechnique first.
// The play effect then fires Replays() times, each followed by every active combo.
// Afterwards hand durations tick down, pending effects become active, the message
// batch is published and the technique is appended to the history.
func (s *State) PlayTechniqueFromHand(index int) error {
	if s.status.Terminal() {
		return fmt.Errorf("play technique: %w (status %s)", ErrPerformanceOver, s.status)
	}
	hand := s.Hand()
	if index < 0 || index >= len(hand) {
		return fmt.Errorf("%w: no technique at index %d (hand has %d)", ErrInvalidSelection, index, len(hand))
	}
	technique := hand[index]

	s.deck = append(s.deck, s.hand[index])
	s.hand = slices.Delete(s.hand, index, index+1)
	s.stamina -= technique.Cost

	replays := technique.Replays()
	for i := range replays {
		s.intercepted(func() {
			if technique.Play != nil {
				technique.Play(s)
			}
			s.Note(replayText(fmt.Sprintf("Played: %s (%s)", technique.Name, technique.Description), i, replays))

			for _, effect := range slices.Clone(s.effects) {
				if effect.Combo == nil {
					continue
				}
				effect.Combo(s)
				s.Note(replayText(fmt.Sprintf("Effect: %s (from %s)", effect.Name, effect.Source), i, replays))
			}
		})
	}

	s.effects = countDown(s.effects, handDuration)
	s.promotePending()
	s.flushMessages()
	s.history = append(s.history, PlayedTechnique{Technique: technique, Round: s.round})
	return nil
}

func replayText(text string, i, replays int) string {
	if replays <= 1 {
		return text
	}
	return fmt.Sprintf("%s (Replay %d)", text, i+1)
}

// AdvanceRound ends the current round.
//
// With no audience left the performance fails. Otherwise momentum is added to the
// audience and the audience is added to cheers; on the last round the performance
// completes. Any other round sets up the next one: round durations tick down, stamina
// is replenished, the hand is discarded, a setback is applied, pending effects become
// active and a fresh hand is drawn.
func (s *State) AdvanceRound() error {
	if s.status.Terminal() {
		return fmt.Errorf("advance round: %w (status %s)", ErrPerformanceOver, s.status)
	}

	if s.audience < 1 {
		s.status = StatusFailed
		s.Note("The audience has gone home. Performance failed.")
		s.flushMessages()
		return nil
	}

	s.intercepted(func() {
		s.AddAudience(s.momentum)
	})
	gained := s.Energize()
	s.Note(fmt.Sprintf("Round %d ends: %d audience, +%d cheers", s.round, s.audience, gained))

	if s.round >= s.rules.MaxRounds {
		s.status = StatusComplete
		s.Note(fmt.Sprintf("Performance complete with %d cheers!", s.cheers))
		s.flushMessages()
		return nil
	}

	s.effects = countDown(s.effects, roundDuration)
	s.round++
	s.stamina += s.rules.StaminaGain
	s.DiscardHand()

	setback := s.setbacks[s.rng.IntN(len(s.setbacks))]
	s.setback = &setback
	if setback.Apply != nil {
		setback.Apply(s)
	}
	s.Note(fmt.Sprintf("Setback: %s (%s)", setback.Name, setback.Description))

	s.promotePending()
	s.Draw(s.rules.HandSize - s.drawPenalty())
	s.flushMessages()
	return nil
}
