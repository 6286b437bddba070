package performance

// Technique is a playable card as it stands at resolution time.
type Technique struct {
	Name        string
	Description string
	Cost        int
	// Replay is how many times Play fires per selection. Zero means once.
	Replay int
	Play   func(s *State)
	// SkipLastPlayed keeps this technique out of LastPlayed lookups.
	SkipLastPlayed bool
}

// Replays returns the effective replay count (at least 1).
func (t Technique) Replays() int {
	if t.Replay < 1 {
		return 1
	}
	return t.Replay
}

// Card is a deck slot. It is either a fixed technique or a technique derived from
// the current state every time it is resolved.
type Card struct {
	base   Technique
	derive func(s *State, base Technique) Technique
}

// Static returns a card that always resolves to t.
func Static(t Technique) Card {
	return Card{base: t}
}

// Derived returns a card whose technique is recomputed from the state on every
// resolution. base is what catalogs show when no state exists.
func Derived(base Technique, derive func(s *State, base Technique) Technique) Card {
	return Card{base: base, derive: derive}
}

// Base returns the card's technique without consulting any state.
func (c Card) Base() Technique { return c.base }

// IsDerived reports whether the card depends on state.
func (c Card) IsDerived() bool { return c.derive != nil }

// Resolve returns the technique this card stands for in s. Never cached.
func (c Card) Resolve(s *State) Technique {
	if c.derive == nil {
		return c.base
	}
	return c.derive(s, c.base)
}

// Hand returns the effective hand: every card resolved against the current state,
// then folded through each active effect's ModifyTechnique in registration order.
func (s *State) Hand() []Technique {
	resolved := make([]Technique, len(s.hand))
	for i, card := range s.hand {
		resolved[i] = card.Resolve(s)
	}
	for _, effect := range s.effects {
		if effect.ModifyTechnique == nil {
			continue
		}
		for i := range resolved {
			resolved[i] = effect.ModifyTechnique(resolved[i])
		}
	}
	return resolved
}
