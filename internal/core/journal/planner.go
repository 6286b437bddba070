// Package journal contains the pure planning logic for recording performance transitions.
// This is part of the Functional Core - no I/O, only pure functions that generate effects.
package journal

import (
	"strings"

	"github.com/example/encore/internal/core/effects"
	"github.com/example/encore/internal/core/performance"
)

// Action identifies what the player did.
type Action string

const (
	ActionStart Action = "start"
	ActionPlay  Action = "play"
	ActionPass  Action = "pass"
)

// Entry is one journal row. Values are the counters after the transition.
type Entry struct {
	RunID       string
	Seq         int
	Round       int
	Action      Action
	Technique   string
	Status      string
	Cheers      int
	CheersDelta int
	Audience    int
	Momentum    int
	Stamina     int
	Detail      string
}

// TransitionInput contains everything needed to plan the journal writes for one transition.
// All values are captured by the caller - no I/O in the planner.
type TransitionInput struct {
	RunID     string
	Seq       int
	Action    Action
	Technique string // empty unless Action is ActionPlay
	Before    performance.Snapshot
	After     performance.Snapshot
}

// TransitionPlan represents the planned effects for one transition.
type TransitionPlan struct {
	Journal []effects.PersistEffect
	Logs    []effects.LogEffect
}

// Effects returns all effects as a flat slice for execution.
func (p TransitionPlan) Effects() []effects.Effect {
	result := make([]effects.Effect, 0, len(p.Journal)+len(p.Logs))
	for _, e := range p.Journal {
		result = append(result, e)
	}
	for _, e := range p.Logs {
		result = append(result, e)
	}
	return result
}

// GenerateTransitionPlan creates the journal and log effects for a transition.
func GenerateTransitionPlan(in TransitionInput) TransitionPlan {
	var detail []string
	for _, m := range in.After.RecentMessages() {
		detail = append(detail, m.Text)
	}

	// A start has no "before"; the round it belongs to is the one it opens.
	round := in.Before.Round
	if in.Action == ActionStart {
		round = in.After.Round
	}

	entry := Entry{
		RunID:       in.RunID,
		Seq:         in.Seq,
		Round:       round,
		Action:      in.Action,
		Technique:   in.Technique,
		Status:      string(in.After.Status),
		Cheers:      in.After.Cheers,
		CheersDelta: in.After.Cheers - in.Before.Cheers,
		Audience:    in.After.Audience,
		Momentum:    in.After.Momentum,
		Stamina:     in.After.Stamina,
		Detail:      strings.Join(detail, "; "),
	}

	plan := TransitionPlan{
		Journal: []effects.PersistEffect{{
			Entity:    "journal",
			Operation: "append",
			Data:      entry,
		}},
		Logs: []effects.LogEffect{{
			Level:   "debug",
			Message: "transition",
			Fields: map[string]any{
				"seq":       in.Seq,
				"action":    string(in.Action),
				"technique": in.Technique,
				"round":     round,
				"cheers":    in.After.Cheers,
				"audience":  in.After.Audience,
				"momentum":  in.After.Momentum,
				"stamina":   in.After.Stamina,
			},
		}},
	}

	if in.After.Status.Terminal() && !in.Before.Status.Terminal() {
		plan.Logs = append(plan.Logs, effects.LogEffect{
			Level:   "info",
			Message: "performance finished",
			Fields: map[string]any{
				"status": string(in.After.Status),
				"cheers": in.After.Cheers,
				"round":  in.After.Round,
			},
		})
	}

	return plan
}

// GenerateRejectionLog describes a move that a guard refused. Rejections are not journaled.
func GenerateRejectionLog(action Action, reason string) effects.LogEffect {
	return effects.LogEffect{
		Level:   "info",
		Message: "move rejected",
		Fields: map[string]any{
			"action": string(action),
			"reason": reason,
		},
	}
}
