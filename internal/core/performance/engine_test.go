package performance

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

var quietNight = Setback{Name: "Quiet Night", Description: "Nothing happens"}

func card(name string, cost int, play func(s *State)) Card {
	return Static(Technique{Name: name, Description: name, Cost: cost, Play: play})
}

func fillers(n int) []Card {
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = card(fmt.Sprintf("Filler %d", i+1), 1, nil)
	}
	return cards
}

func newTestState(t *testing.T, rules Rules, deck []Card, setbacks ...Setback) *State {
	t.Helper()
	if len(setbacks) == 0 {
		setbacks = []Setback{quietNight}
	}
	s, err := NewWithDeck(rules, deck, setbacks, 1)
	if err != nil {
		t.Fatalf("NewWithDeck failed: %v", err)
	}
	return s
}

func handNames(s *State) []string {
	var names []string
	for _, tech := range s.Hand() {
		names = append(names, tech.Name)
	}
	return names
}

func TestNew_DealsTwoCopiesAndOpeningHand(t *testing.T) {
	catalog := Catalog{Techniques: fillers(5), Setbacks: []Setback{quietNight}}

	s, err := New(DefaultRules(), catalog, 42)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if s.HandSize() != 4 {
		t.Errorf("HandSize() = %d, want 4", s.HandSize())
	}
	if s.DeckSize() != 2*5-4 {
		t.Errorf("DeckSize() = %d, want %d", s.DeckSize(), 2*5-4)
	}
	if s.Audience() != 5 || s.Momentum() != 1 || s.Stamina() != 5 || s.Round() != 1 || s.Cheers() != 0 {
		t.Errorf("starting counters = audience %d momentum %d stamina %d round %d cheers %d, want 5 1 5 1 0",
			s.Audience(), s.Momentum(), s.Stamina(), s.Round(), s.Cheers())
	}
	if s.Status() != StatusPlaying {
		t.Errorf("Status() = %q, want %q", s.Status(), StatusPlaying)
	}

	snap := s.Snapshot()
	if len(snap.Messages) != 0 || len(snap.History) != 0 || len(snap.Effects) != 0 || len(snap.Pending) != 0 {
		t.Errorf("expected empty logs and effects, got %+v", snap)
	}
}

func TestNew_SameSeedDealsSameHand(t *testing.T) {
	catalog := Catalog{Techniques: fillers(8), Setbacks: []Setback{quietNight}}

	a, err := New(DefaultRules(), catalog, 7)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	b, err := New(DefaultRules(), catalog, 7)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !slices.Equal(handNames(a), handNames(b)) {
		t.Errorf("same seed dealt %v and %v", handNames(a), handNames(b))
	}
}

func TestNew_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		rules   Rules
		catalog Catalog
		wantErr error
	}{
		{
			name:    "no techniques",
			rules:   DefaultRules(),
			catalog: Catalog{Setbacks: []Setback{quietNight}},
			wantErr: ErrEmptyCatalog,
		},
		{
			name:    "no setbacks",
			rules:   DefaultRules(),
			catalog: Catalog{Techniques: fillers(3)},
			wantErr: ErrEmptyCatalog,
		},
		{
			name:    "zero hand size",
			rules:   Rules{HandSize: 0, MaxRounds: 5},
			catalog: Catalog{Techniques: fillers(3), Setbacks: []Setback{quietNight}},
			wantErr: ErrInvalidRules,
		},
		{
			name:    "zero rounds",
			rules:   Rules{HandSize: 4, MaxRounds: 0},
			catalog: Catalog{Techniques: fillers(3), Setbacks: []Setback{quietNight}},
			wantErr: ErrInvalidRules,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rules, tt.catalog, 1)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPlayTechniqueFromHand_InvalidIndex(t *testing.T) {
	s := newTestState(t, DefaultRules(), fillers(6))

	for _, index := range []int{-1, 4, 100} {
		t.Run(fmt.Sprintf("index %d", index), func(t *testing.T) {
			before := s.Snapshot()
			err := s.PlayTechniqueFromHand(index)
			if !errors.Is(err, ErrInvalidSelection) {
				t.Fatalf("PlayTechniqueFromHand(%d) error = %v, want ErrInvalidSelection", index, err)
			}
			after := s.Snapshot()
			if after.Stamina != before.Stamina || len(after.Hand) != len(before.Hand) || after.DeckSize != before.DeckSize {
				t.Errorf("state changed on invalid selection: before %+v after %+v", before, after)
			}
		})
	}
}

func TestPlayTechniqueFromHand_MovesCardToBottomOfDeck(t *testing.T) {
	deck := append([]Card{card("Opener", 2, nil)}, fillers(5)...)
	s := newTestState(t, DefaultRules(), deck)

	if err := s.PlayTechniqueFromHand(0); err != nil {
		t.Fatalf("PlayTechniqueFromHand failed: %v", err)
	}

	if s.HandSize() != 3 {
		t.Errorf("HandSize() = %d, want 3", s.HandSize())
	}
	if s.DeckSize() != 3 {
		t.Errorf("DeckSize() = %d, want 3", s.DeckSize())
	}
	if got := s.deck[len(s.deck)-1].Base().Name; got != "Opener" {
		t.Errorf("bottom of deck = %q, want Opener", got)
	}
	if s.Stamina() != 3 {
		t.Errorf("Stamina() = %d, want 3", s.Stamina())
	}
	last, ok := s.LastPlayed()
	if !ok || last.Name != "Opener" {
		t.Errorf("LastPlayed() = %q, %v, want Opener", last.Name, ok)
	}
	if got := s.Snapshot().History; len(got) != 1 || got[0].Round != 1 {
		t.Errorf("History = %+v, want one entry in round 1", got)
	}
}

func TestPlayTechniqueFromHand_AllowsNegativeStamina(t *testing.T) {
	deck := append([]Card{card("Big Finish", 9, nil)}, fillers(3)...)
	s := newTestState(t, DefaultRules(), deck)

	if err := s.PlayTechniqueFromHand(0); err != nil {
		t.Fatalf("PlayTechniqueFromHand failed: %v", err)
	}
	if s.Stamina() != 5-9 {
		t.Errorf("Stamina() = %d, want %d", s.Stamina(), 5-9)
	}
}

func TestPlayTechniqueFromHand_ReplaysPlayAndCombosInOrder(t *testing.T) {
	var calls []string
	record := func(name string) func(s *State) {
		return func(s *State) { calls = append(calls, name) }
	}

	triple := Static(Technique{Name: "Triple", Description: "Replay 3", Cost: 1, Replay: 3, Play: record("play")})
	s := newTestState(t, DefaultRules(), append([]Card{triple}, fillers(5)...))
	s.AddPendingEffect(Effect{Name: "First", Source: "test", Combo: record("first")})
	s.AddPendingEffect(Effect{Name: "Second", Source: "test", Combo: record("second")})
	s.promotePending()

	if err := s.PlayTechniqueFromHand(0); err != nil {
		t.Fatalf("PlayTechniqueFromHand failed: %v", err)
	}

	want := []string{
		"play", "first", "second",
		"play", "first", "second",
		"play", "first", "second",
	}
	if !slices.Equal(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}

	recent := s.Snapshot().RecentMessages()
	if len(recent) != 9 {
		t.Fatalf("recent messages = %d, want 9", len(recent))
	}
	if recent[0].Text != "Played: Triple (Replay 3) (Replay 1)" {
		t.Errorf("first message = %q", recent[0].Text)
	}
	if recent[8].Text != "Effect: Second (from test) (Replay 3)" {
		t.Errorf("last message = %q", recent[8].Text)
	}
	if got := len(s.Snapshot().History); got != 1 {
		t.Errorf("History entries = %d, want 1 per selection", got)
	}
}

func TestPlayTechniqueFromHand_PendingEffectSkipsOwnPlay(t *testing.T) {
	var fired int
	combo := card("Combo Starter", 1, func(s *State) {
		s.AddPendingEffect(Effect{Name: "Count", Source: "Combo Starter", Combo: func(*State) { fired++ }})
	})
	s := newTestState(t, DefaultRules(), append([]Card{combo}, fillers(5)...))

	if err := s.PlayTechniqueFromHand(0); err != nil {
		t.Fatalf("PlayTechniqueFromHand failed: %v", err)
	}
	if fired != 0 {
		t.Errorf("combo fired %d times on its own play, want 0", fired)
	}
	if len(s.ActiveEffects()) != 1 {
		t.Fatalf("active effects = %d, want 1", len(s.ActiveEffects()))
	}

	if err := s.PlayTechniqueFromHand(0); err != nil {
		t.Fatalf("PlayTechniqueFromHand failed: %v", err)
	}
	if fired != 1 {
		t.Errorf("combo fired %d times after next play, want 1", fired)
	}
}

func TestHandDurationExpiresAfterOnePlay(t *testing.T) {
	s := newTestState(t, DefaultRules(), fillers(8))
	s.AddPendingEffect(Effect{
		Name:         "Free Next",
		Source:       "test",
		HandDuration: 1,
		ModifyTechnique: func(t Technique) Technique {
			t.Cost = 0
			return t
		},
	})
	s.promotePending()

	if len(s.ActiveEffects()) != 1 {
		t.Fatalf("effect should be active right after creation")
	}
	for _, tech := range s.Hand() {
		if tech.Cost != 0 {
			t.Errorf("%s cost = %d, want 0 while effect is active", tech.Name, tech.Cost)
		}
	}

	if err := s.PlayTechniqueFromHand(0); err != nil {
		t.Fatalf("PlayTechniqueFromHand failed: %v", err)
	}
	if s.Stamina() != 5 {
		t.Errorf("Stamina() = %d, want 5 (free play)", s.Stamina())
	}
	if len(s.ActiveEffects()) != 0 {
		t.Errorf("effect still active after one play: %+v", s.ActiveEffects())
	}
	if s.Hand()[0].Cost != 1 {
		t.Errorf("cost after expiry = %d, want 1", s.Hand()[0].Cost)
	}
}

func TestRoundDurationExpiresAfterOneAdvance(t *testing.T) {
	s := newTestState(t, DefaultRules(), fillers(12))
	s.AddPendingEffect(Effect{Name: "Short", Source: "test", RoundDuration: 1})
	s.AddPendingEffect(Effect{Name: "Forever", Source: "test"})
	s.promotePending()

	if err := s.AdvanceRound(); err != nil {
		t.Fatalf("AdvanceRound failed: %v", err)
	}

	effects := s.ActiveEffects()
	if len(effects) != 1 || effects[0].Name != "Forever" {
		t.Errorf("effects after advance = %+v, want only Forever", effects)
	}
	if !effects[0].Permanent() {
		t.Errorf("Forever should be permanent")
	}
}

func TestModifyTechniqueFoldsInRegistrationOrder(t *testing.T) {
	s := newTestState(t, DefaultRules(), fillers(6))
	s.AddPendingEffect(Effect{Name: "Cheap", Source: "test", ModifyTechnique: func(t Technique) Technique {
		t.Cost = 0
		t.Description = "cheap"
		return t
	}})
	s.AddPendingEffect(Effect{Name: "Pricey", Source: "test", ModifyTechnique: func(t Technique) Technique {
		t.Cost = 4
		return t
	}})
	s.promotePending()

	got := s.Hand()[0]
	if got.Cost != 4 {
		t.Errorf("Cost = %d, want 4 (later effect wins)", got.Cost)
	}
	if got.Description != "cheap" {
		t.Errorf("Description = %q, want earlier override to survive", got.Description)
	}
}

func TestDerivedCardResolvesAgainstCurrentState(t *testing.T) {
	counter := Derived(Technique{Name: "Counter", Cost: 1}, func(s *State, t Technique) Technique {
		t.Cost = 1 + s.PlayedCount()
		return t
	})
	deck := append([]Card{counter}, fillers(6)...)
	s := newTestState(t, DefaultRules(), deck)

	if got := s.Hand()[0].Cost; got != 1 {
		t.Fatalf("initial cost = %d, want 1", got)
	}
	if err := s.PlayTechniqueFromHand(1); err != nil {
		t.Fatalf("PlayTechniqueFromHand failed: %v", err)
	}
	if got := s.Hand()[0].Cost; got != 2 {
		t.Errorf("cost after one play = %d, want 2", got)
	}
	if !counter.IsDerived() || counter.Base().Cost != 1 {
		t.Errorf("Base() should not depend on state")
	}
}

func TestAdvanceRound_FailsWithoutAudience(t *testing.T) {
	rules := DefaultRules()
	rules.StartingAudience = 0
	s := newTestState(t, rules, fillers(8))

	if err := s.AdvanceRound(); err != nil {
		t.Fatalf("AdvanceRound failed: %v", err)
	}

	if s.Status() != StatusFailed {
		t.Errorf("Status() = %q, want failed", s.Status())
	}
	if s.Cheers() != 0 || s.Round() != 1 {
		t.Errorf("cheers %d round %d, want 0 and 1", s.Cheers(), s.Round())
	}
}

func TestAdvanceRound_CompletesOnLastRound(t *testing.T) {
	rules := DefaultRules()
	rules.MaxRounds = 1
	applied := false
	sb := Setback{Name: "Tracker", Description: "records", Apply: func(*State) { applied = true }}
	s := newTestState(t, rules, fillers(8), sb)
	hand := handNames(s)

	if err := s.AdvanceRound(); err != nil {
		t.Fatalf("AdvanceRound failed: %v", err)
	}

	if s.Status() != StatusComplete {
		t.Errorf("Status() = %q, want complete", s.Status())
	}
	if s.Audience() != 6 {
		t.Errorf("Audience() = %d, want 6", s.Audience())
	}
	if s.Cheers() != 6 {
		t.Errorf("Cheers() = %d, want 6", s.Cheers())
	}
	if applied {
		t.Errorf("setback applied on the final round")
	}
	if !slices.Equal(handNames(s), hand) {
		t.Errorf("hand changed on completion: %v -> %v", hand, handNames(s))
	}
}

func TestAdvanceRound_SetsUpNextRound(t *testing.T) {
	applied := 0
	sb := Setback{Name: "Tracker", Description: "records", Apply: func(*State) { applied++ }}
	s := newTestState(t, DefaultRules(), fillers(10), sb)

	if err := s.PlayTechniqueFromHand(0); err != nil {
		t.Fatalf("PlayTechniqueFromHand failed: %v", err)
	}
	if err := s.AdvanceRound(); err != nil {
		t.Fatalf("AdvanceRound failed: %v", err)
	}

	if s.Round() != 2 {
		t.Errorf("Round() = %d, want 2", s.Round())
	}
	if s.Stamina() != 5-1+3 {
		t.Errorf("Stamina() = %d, want %d", s.Stamina(), 5-1+3)
	}
	if s.HandSize() != 4 {
		t.Errorf("HandSize() = %d, want 4", s.HandSize())
	}
	if s.HandSize()+s.DeckSize() != 10 {
		t.Errorf("cards in play = %d, want 10", s.HandSize()+s.DeckSize())
	}
	if applied != 1 {
		t.Errorf("setback applied %d times, want 1", applied)
	}
	if snap := s.Snapshot(); snap.Setback == nil || snap.Setback.Name != "Tracker" {
		t.Errorf("Snapshot().Setback = %+v, want Tracker", snap.Setback)
	}
}

func TestAdvanceRound_DrawPenaltyReducesDraw(t *testing.T) {
	stress := Setback{Name: "Stress", Description: "draw 2 fewer", Apply: func(s *State) {
		s.AddPendingEffect(Effect{Name: "Draw 2 Fewer", Source: "Stress", RoundDuration: 1, DrawPenalty: 2})
	}}
	s := newTestState(t, DefaultRules(), fillers(10), stress)

	if err := s.AdvanceRound(); err != nil {
		t.Fatalf("AdvanceRound failed: %v", err)
	}
	if s.HandSize() != 2 {
		t.Errorf("HandSize() = %d, want 2", s.HandSize())
	}
}

func TestInterceptCapsAudienceForOneRound(t *testing.T) {
	applied := false
	smallVenue := Setback{Name: "Small Venue", Description: "no audience gain", Apply: func(s *State) {
		if applied {
			return
		}
		applied = true
		s.AddPendingEffect(Effect{
			Name:          "No Audience Gain",
			Source:        "Small Venue",
			RoundDuration: 1,
			Intercept:     &Intercept{Field: FieldAudience, Adjust: NoGain},
		})
	}}
	s := newTestState(t, DefaultRules(), fillers(12), smallVenue)

	// Round 1 ends uncapped and draws the setback for round 2.
	if err := s.AdvanceRound(); err != nil {
		t.Fatalf("AdvanceRound failed: %v", err)
	}
	if s.Audience() != 6 {
		t.Fatalf("Audience() = %d, want 6", s.Audience())
	}

	before := s.Audience()
	if err := s.AdvanceRound(); err != nil {
		t.Fatalf("AdvanceRound failed: %v", err)
	}
	if s.Audience() > before {
		t.Errorf("Audience() = %d, must not exceed %d while capped", s.Audience(), before)
	}

	before = s.Audience()
	if err := s.AdvanceRound(); err != nil {
		t.Fatalf("AdvanceRound failed: %v", err)
	}
	if s.Audience() != before+1 {
		t.Errorf("Audience() = %d, want %d once the cap has expired", s.Audience(), before+1)
	}
}

func TestInterceptWrapsPlays(t *testing.T) {
	boost := card("Boost", 1, func(s *State) { s.AddAudience(5) })
	drop := card("Drop", 1, func(s *State) { s.AddAudience(-2) })
	s := newTestState(t, DefaultRules(), append([]Card{boost, drop}, fillers(4)...))
	s.AddPendingEffect(Effect{Name: "Cap", Source: "test", Intercept: &Intercept{Field: FieldAudience, Adjust: NoGain}})
	s.promotePending()

	if err := s.PlayTechniqueFromHand(0); err != nil {
		t.Fatalf("PlayTechniqueFromHand failed: %v", err)
	}
	if s.Audience() != 5 {
		t.Errorf("Audience() = %d, want 5 (gain blocked)", s.Audience())
	}
	if err := s.PlayTechniqueFromHand(0); err != nil {
		t.Fatalf("PlayTechniqueFromHand failed: %v", err)
	}
	if s.Audience() != 3 {
		t.Errorf("Audience() = %d, want 3 (losses pass)", s.Audience())
	}
}

func TestTerminalStatusIsStable(t *testing.T) {
	rules := DefaultRules()
	rules.StartingAudience = 0
	s := newTestState(t, rules, fillers(8))
	if err := s.AdvanceRound(); err != nil {
		t.Fatalf("AdvanceRound failed: %v", err)
	}

	if err := s.AdvanceRound(); !errors.Is(err, ErrPerformanceOver) {
		t.Errorf("AdvanceRound() on failed performance error = %v, want ErrPerformanceOver", err)
	}
	if err := s.PlayTechniqueFromHand(0); !errors.Is(err, ErrPerformanceOver) {
		t.Errorf("PlayTechniqueFromHand() on failed performance error = %v, want ErrPerformanceOver", err)
	}
	if s.Status() != StatusFailed {
		t.Errorf("Status() = %q, want failed", s.Status())
	}
}

func TestMessagesOnlyLatestTransitionIsRecent(t *testing.T) {
	s := newTestState(t, DefaultRules(), fillers(8))

	if err := s.PlayTechniqueFromHand(0); err != nil {
		t.Fatalf("PlayTechniqueFromHand failed: %v", err)
	}
	if err := s.PlayTechniqueFromHand(0); err != nil {
		t.Fatalf("PlayTechniqueFromHand failed: %v", err)
	}

	msgs := s.Snapshot().Messages
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2", len(msgs))
	}
	if msgs[0].Recent {
		t.Errorf("older message still recent: %+v", msgs[0])
	}
	if !msgs[1].Recent {
		t.Errorf("latest message not recent: %+v", msgs[1])
	}
}

func TestRemoveEffect(t *testing.T) {
	s := newTestState(t, DefaultRules(), fillers(6))
	active := s.AddPendingEffect(Effect{Name: "Active", Source: "test"})
	s.promotePending()
	pending := s.AddPendingEffect(Effect{Name: "Pending", Source: "test"})

	if !s.RemoveEffect(active) {
		t.Errorf("RemoveEffect(active) = false, want true")
	}
	if !s.RemoveEffect(pending) {
		t.Errorf("RemoveEffect(pending) = false, want true")
	}
	if s.RemoveEffect("missing") {
		t.Errorf("RemoveEffect(missing) = true, want false")
	}
	if len(s.ActiveEffects()) != 0 || len(s.Snapshot().Pending) != 0 {
		t.Errorf("effects left behind")
	}
}

func TestSnapshot_PlayedThisRoundResetsEachRound(t *testing.T) {
	s := newTestState(t, DefaultRules(), fillers(12))

	for range 2 {
		if err := s.PlayTechniqueFromHand(0); err != nil {
			t.Fatalf("PlayTechniqueFromHand failed: %v", err)
		}
	}
	if got := s.Snapshot().PlayedThisRound; got != 2 {
		t.Errorf("PlayedThisRound = %d, want 2", got)
	}

	if err := s.AdvanceRound(); err != nil {
		t.Fatalf("AdvanceRound failed: %v", err)
	}
	if got := s.Snapshot().PlayedThisRound; got != 0 {
		t.Errorf("PlayedThisRound after advance = %d, want 0", got)
	}
	if err := s.PlayTechniqueFromHand(0); err != nil {
		t.Fatalf("PlayTechniqueFromHand failed: %v", err)
	}
	snap := s.Snapshot()
	if snap.PlayedThisRound != 1 || len(snap.History) != 3 {
		t.Errorf("PlayedThisRound = %d with %d in history, want 1 and 3", snap.PlayedThisRound, len(snap.History))
	}
}

func TestSetback_NoneInRoundOne(t *testing.T) {
	s := newTestState(t, DefaultRules(), fillers(12))
	if _, ok := s.Setback(); ok {
		t.Fatalf("round one has a setback")
	}

	if err := s.AdvanceRound(); err != nil {
		t.Fatalf("AdvanceRound failed: %v", err)
	}
	sb, ok := s.Setback()
	if !ok || sb.Name != quietNight.Name {
		t.Errorf("Setback() = %q, %v, want %q", sb.Name, ok, quietNight.Name)
	}
}

func TestCardsAreConservedAndRoundsMonotonic(t *testing.T) {
	catalog := Catalog{
		Techniques: []Card{
			card("Draw Two", 1, func(s *State) { s.Draw(2) }),
			card("Reshuffle", 1, func(s *State) { s.Draw(s.DiscardHand()) }),
			card("Dump", 0, func(s *State) { s.DiscardHand() }),
			card("Crowd", 1, func(s *State) { s.AddAudience(3) }),
			card("Rest", 0, func(s *State) { s.AddStamina(2) }),
		},
		Setbacks: []Setback{quietNight, {Name: "Tired", Description: "draw fewer", Apply: func(s *State) {
			s.AddPendingEffect(Effect{Name: "Tired", Source: "Tired", RoundDuration: 1, DrawPenalty: 3})
		}}},
	}

	for seed := uint64(0); seed < 25; seed++ {
		s, err := New(DefaultRules(), catalog, seed)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		total := s.HandSize() + s.DeckSize()
		lastRound := s.Round()

		for step := 0; !s.Status().Terminal() && step < 200; step++ {
			if s.HandSize() > 0 && step%3 != 2 {
				if err := s.PlayTechniqueFromHand(int(seed+uint64(step)) % s.HandSize()); err != nil {
					t.Fatalf("seed %d: PlayTechniqueFromHand failed: %v", seed, err)
				}
			} else if err := s.AdvanceRound(); err != nil {
				t.Fatalf("seed %d: AdvanceRound failed: %v", seed, err)
			}

			if got := s.HandSize() + s.DeckSize(); got != total {
				t.Fatalf("seed %d step %d: cards = %d, want %d", seed, step, got, total)
			}
			if s.Round() < lastRound || s.Round() > s.Rules().MaxRounds {
				t.Fatalf("seed %d step %d: round went from %d to %d", seed, step, lastRound, s.Round())
			}
			lastRound = s.Round()
		}
		if !s.Status().Terminal() {
			t.Errorf("seed %d: performance did not finish", seed)
		}
	}
}
