package performance

import "slices"

// TechniqueView is the display form of a resolved technique.
type TechniqueView struct {
	Name        string
	Description string
	Cost        int
	Replay      int
}

// EffectView is the display form of an effect.
type EffectView struct {
	ID            string
	Name          string
	Source        string
	HandDuration  int
	RoundDuration int
}

// SetbackView is the display form of a setback.
type SetbackView struct {
	Name        string
	Description string
}

// HistoryEntry is the display form of a played technique.
type HistoryEntry struct {
	Name  string
	Round int
}

// Snapshot is a read-only copy of a performance. Nothing in it aliases the state.
type Snapshot struct {
	Status    Status
	Round     int
	MaxRounds int
	Cheers    int
	Audience  int
	Momentum  int
	Stamina   int
	DeckSize  int

	// PlayedThisRound counts techniques played since the round began.
	PlayedThisRound int

	Hand     []TechniqueView
	Effects  []EffectView
	Pending  []EffectView
	Messages []Message
	History  []HistoryEntry
	Setback  *SetbackView
}

// Snapshot copies the state for display.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Status:    s.status,
		Round:     s.round,
		MaxRounds: s.rules.MaxRounds,
		Cheers:    s.cheers,
		Audience:  s.audience,
		Momentum:  s.momentum,
		Stamina:   s.stamina,
		DeckSize:  len(s.deck),
		Messages:  slices.Clone(s.messages),

		PlayedThisRound: s.PlayedThisRound(),
	}
	for _, t := range s.Hand() {
		snap.Hand = append(snap.Hand, ViewTechnique(t))
	}
	for _, e := range s.effects {
		snap.Effects = append(snap.Effects, viewEffect(e))
	}
	for _, e := range s.pending {
		snap.Pending = append(snap.Pending, viewEffect(e))
	}
	for _, p := range s.history {
		snap.History = append(snap.History, HistoryEntry{Name: p.Technique.Name, Round: p.Round})
	}
	if s.setback != nil {
		snap.Setback = &SetbackView{Name: s.setback.Name, Description: s.setback.Description}
	}
	return snap
}

// ViewTechnique converts a technique to its display form.
func ViewTechnique(t Technique) TechniqueView {
	return TechniqueView{
		Name:        t.Name,
		Description: t.Description,
		Cost:        t.Cost,
		Replay:      t.Replays(),
	}
}

func viewEffect(e Effect) EffectView {
	return EffectView{
		ID:            e.ID,
		Name:          e.Name,
		Source:        e.Source,
		HandDuration:  e.HandDuration,
		RoundDuration: e.RoundDuration,
	}
}

// RecentMessages returns the messages produced by the most recent transition.
func (snap Snapshot) RecentMessages() []Message {
	var recent []Message
	for _, m := range snap.Messages {
		if m.Recent {
			recent = append(recent, m)
		}
	}
	return recent
}
