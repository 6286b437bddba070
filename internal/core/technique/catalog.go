// Package technique holds the fixed catalog of playable techniques.
// This is part of the Functional Core - every play hook touches only the state it is given.
//
// Terms used in descriptions:
//   - Draw: move a technique from the deck into the hand
//   - Discard: move a technique to the bottom of the deck
//   - Energize: +1 cheer per audience (also happens at the end of every round)
//   - Combo: an effect that fires after every technique played
//   - Replay X: the effect applies X times, each one followed by combos
package technique

import (
	"fmt"

	"github.com/example/encore/internal/core/performance"
)

// Catalog returns every technique, grouped by the performer they suit.
func Catalog() []performance.Card {
	var cards []performance.Card
	cards = append(cards, deckWork()...)
	cards = append(cards, crowdWork()...)
	cards = append(cards, momentumWork()...)
	cards = append(cards, trickery()...)
	return cards
}

// Lookup returns the catalog card with the given name.
func Lookup(name string) (performance.Card, bool) {
	for _, card := range Catalog() {
		if card.Base().Name == name {
			return card, true
		}
	}
	return performance.Card{}, false
}

// deckWork techniques manipulate the hand.
func deckWork() []performance.Card {
	return []performance.Card{
		performance.Static(performance.Technique{
			Name:        "Take a Breather",
			Description: "Draw 3 techniques",
			Cost:        2,
			Play: func(s *performance.State) {
				s.Draw(3)
			},
		}),
		performance.Static(performance.Technique{
			Name:        "Indecision",
			Description: "Discard all techniques, then draw 1 per discarded technique",
			Cost:        1,
			Play: func(s *performance.State) {
				s.Draw(s.DiscardHand())
			},
		}),
		performance.Static(performance.Technique{
			Name:        "Overthinking",
			Description: "Draw 5 techniques, -5 Momentum",
			Cost:        2,
			Play: func(s *performance.State) {
				s.Draw(5)
				s.AddMomentum(-5)
			},
		}),
		performance.Static(performance.Technique{
			Name:        "Explosion of Talent",
			Description: "Replay 2: +1 Audience, Momentum and Cheers per technique in hand",
			Cost:        1,
			Replay:      2,
			Play: func(s *performance.State) {
				n := s.HandSize()
				s.AddAudience(n)
				s.AddMomentum(n)
				s.AddCheers(n)
			},
		}),
	}
}

// crowdWork techniques grow audience and cheers.
func crowdWork() []performance.Card {
	return []performance.Card{
		performance.Static(performance.Technique{
			Name:        "Appeal",
			Description: "+7 Audience",
			Cost:        1,
			Play: func(s *performance.State) {
				s.AddAudience(7)
			},
		}),
		performance.Static(performance.Technique{
			Name:        "Dress to Impress",
			Description: "Combo: +1 Audience",
			Cost:        1,
			Play: func(s *performance.State) {
				s.AddPendingEffect(performance.Effect{
					Name:   "Combo: +1 Audience",
					Source: "Dress to Impress",
					Combo: func(s *performance.State) {
						s.AddAudience(1)
					},
				})
			},
		}),
		performance.Static(performance.Technique{
			Name:        "All Eyes on Me",
			Description: "Replay 5: +2 Audience",
			Cost:        3,
			Replay:      5,
			Play: func(s *performance.State) {
				s.AddAudience(2)
			},
		}),
		performance.Static(performance.Technique{
			Name:        "Hype",
			Description: "Replay 2: Energize",
			Cost:        2,
			Replay:      2,
			Play: func(s *performance.State) {
				s.Energize()
			},
		}),
		crowdFavorite(),
	}
}

// crowdFavorite gets pricier the longer the show runs.
func crowdFavorite() performance.Card {
	base := performance.Technique{
		Name:        "Crowd Favorite",
		Description: "+1 Cheers per technique played this performance. Costs 1 more per 4 played",
		Cost:        1,
		Play: func(s *performance.State) {
			s.AddCheers(s.PlayedCount())
		},
	}
	return performance.Derived(base, func(s *performance.State, t performance.Technique) performance.Technique {
		played := s.PlayedCount()
		t.Cost = base.Cost + played/4
		t.Description = fmt.Sprintf("+1 Cheers per technique played this performance (+%d now)", played)
		return t
	})
}

// momentumWork techniques build momentum.
func momentumWork() []performance.Card {
	return []performance.Card{
		performance.Static(performance.Technique{
			Name:        "Patience",
			Description: "Combo: +1 Momentum",
			Cost:        2,
			Play: func(s *performance.State) {
				s.AddPendingEffect(performance.Effect{
					Name:   "Combo: +1 Momentum",
					Source: "Patience",
					Combo: func(s *performance.State) {
						s.AddMomentum(1)
					},
				})
			},
		}),
		performance.Static(performance.Technique{
			Name:        "Connection",
			Description: "+1 Momentum for every 5 Audience",
			Cost:        2,
			Play: func(s *performance.State) {
				s.AddMomentum(s.Audience() / 5)
			},
		}),
		performance.Static(performance.Technique{
			Name:        "Ringleader",
			Description: "Replay 5: +1 Momentum",
			Cost:        2,
			Replay:      5,
			Play: func(s *performance.State) {
				s.AddMomentum(1)
			},
		}),
		performance.Static(performance.Technique{
			Name:        "Motivate",
			Description: "Set your Stamina to 7",
			Cost:        2,
			Play: func(s *performance.State) {
				s.SetStamina(7)
			},
		}),
	}
}

// trickery techniques bend stamina and the other techniques.
func trickery() []performance.Card {
	return []performance.Card{
		performance.Static(performance.Technique{
			Name:        "Leap of Faith",
			Description: "x2 Stamina, discard your hand",
			Cost:        1,
			Play: func(s *performance.State) {
				s.SetStamina(s.Stamina() * 2)
				s.DiscardHand()
			},
		}),
		performance.Static(performance.Technique{
			Name:        "Cutting Corners",
			Description: "Next technique costs 0 Stamina",
			Cost:        1,
			Play: func(s *performance.State) {
				s.AddPendingEffect(performance.Effect{
					Name:         "Next Technique Costs 0",
					Source:       "Cutting Corners",
					HandDuration: 1,
					ModifyTechnique: func(t performance.Technique) performance.Technique {
						t.Cost = 0
						return t
					},
				})
			},
		}),
		doWhatWorks(),
		performance.Static(performance.Technique{
			Name:        "Shake It Off",
			Description: "Remove the effects of this round's setback",
			Cost:        1,
			Play: func(s *performance.State) {
				sb, ok := s.Setback()
				if !ok {
					return
				}
				for _, e := range s.ActiveEffects() {
					if e.Source == sb.Name {
						s.RemoveEffect(e.ID)
					}
				}
			},
		}),
		performance.Static(performance.Technique{
			Name:        "They Just Don't Get It",
			Description: "-1 Audience and +1 Momentum per Stamina, lose all Stamina",
			Cost:        0,
			Play: func(s *performance.State) {
				stamina := s.Stamina()
				s.AddAudience(-stamina)
				s.AddMomentum(stamina)
				s.SetStamina(0)
			},
		}),
	}
}

// doWhatWorks resolves to whatever was played last, replays included.
func doWhatWorks() performance.Card {
	base := performance.Technique{
		Name:           "Do What Works",
		Description:    "Replay your last played technique",
		Cost:           2,
		SkipLastPlayed: true,
	}
	return performance.Derived(base, func(s *performance.State, t performance.Technique) performance.Technique {
		last, ok := s.LastPlayed()
		if !ok {
			t.Description = "Replay your last played technique (nothing played yet)"
			return t
		}
		t.Description = fmt.Sprintf("Replay your last played technique: %s (%s)", last.Name, last.Description)
		t.Replay = last.Replay
		t.Play = last.Play
		return t
	})
}
