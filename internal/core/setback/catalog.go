// Package setback holds the fixed catalog of round-start complications.
// This is part of the Functional Core - every Apply hook touches only the state it is given.
package setback

import "github.com/example/encore/internal/core/performance"

// Catalog returns every setback. One is picked uniformly at random each new round.
func Catalog() []performance.Setback {
	return []performance.Setback{
		{
			Name:        "Small Venue",
			Description: "You cannot gain audience this round",
			Apply: func(s *performance.State) {
				s.AddPendingEffect(performance.Effect{
					Name:          "No Audience Gain",
					Source:        "Small Venue",
					RoundDuration: 1,
					Intercept: &performance.Intercept{
						Field:  performance.FieldAudience,
						Adjust: performance.NoGain,
					},
				})
			},
		},
		{
			Name:        "In a Rut",
			Description: "You cannot gain momentum this round",
			Apply: func(s *performance.State) {
				s.AddPendingEffect(performance.Effect{
					Name:          "No Momentum Gain",
					Source:        "In a Rut",
					RoundDuration: 1,
					Intercept: &performance.Intercept{
						Field:  performance.FieldMomentum,
						Adjust: performance.NoGain,
					},
				})
			},
		},
		{
			Name:        "High Expectations",
			Description: "-3 Momentum",
			Apply: func(s *performance.State) {
				s.AddMomentum(-3)
			},
		},
		{
			Name:        "Trying Too Hard",
			Description: "Combo this round: -1 Audience per Momentum",
			Apply: func(s *performance.State) {
				s.AddPendingEffect(performance.Effect{
					Name:          "Combo: -Momentum Audience",
					Source:        "Trying Too Hard",
					RoundDuration: 1,
					Combo: func(s *performance.State) {
						s.AddAudience(-s.Momentum())
					},
				})
			},
		},
		{
			Name:        "Stress",
			Description: "Draw 2 fewer techniques this round",
			Apply: func(s *performance.State) {
				s.AddPendingEffect(performance.Effect{
					Name:          "Draw 2 Fewer",
					Source:        "Stress",
					RoundDuration: 1,
					DrawPenalty:   2,
				})
			},
		},
		{
			Name:        "Doubt",
			Description: "Combo this round: -1 Momentum",
			Apply: func(s *performance.State) {
				s.AddPendingEffect(performance.Effect{
					Name:          "Combo: -1 Momentum",
					Source:        "Doubt",
					RoundDuration: 1,
					Combo: func(s *performance.State) {
						s.AddMomentum(-1)
					},
				})
			},
		},
		{
			Name:        "Exhaustion",
			Description: "Combo this round: -1 Stamina",
			Apply: func(s *performance.State) {
				s.AddPendingEffect(performance.Effect{
					Name:          "Combo: -1 Stamina",
					Source:        "Exhaustion",
					RoundDuration: 1,
					Combo: func(s *performance.State) {
						s.SetStamina(max(0, s.Stamina()-1))
					},
				})
			},
		},
		{
			Name:        "Demoralized",
			Description: "Remove all active effects",
			Apply: func(s *performance.State) {
				s.ClearEffects()
			},
		},
	}
}

// Lookup returns the setback with the given name.
func Lookup(name string) (performance.Setback, bool) {
	for _, sb := range Catalog() {
		if sb.Name == name {
			return sb, true
		}
	}
	return performance.Setback{}, false
}
