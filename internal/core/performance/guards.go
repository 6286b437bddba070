package performance

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// PlayContext provides the context needed to decide whether a selection may be played.
// Populated by the caller from the effective hand.
type PlayContext struct {
	Status   Status
	Index    int
	HandSize int
	Cost     int
	Stamina  int
}

// CanPlayTechnique evaluates whether the technique at Index may be played.
// Rule: the performance must be running, the index must exist, and the effective cost
// must not exceed current stamina. The engine itself never checks cost.
func CanPlayTechnique(ctx PlayContext) GuardResult {
	if ctx.Status.Terminal() {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Performance is %s - start a new one to keep playing", ctx.Status),
		}
	}
	if ctx.Index < 0 || ctx.Index >= ctx.HandSize {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("No technique %d in hand (hand has %d)", ctx.Index+1, ctx.HandSize),
		}
	}
	if ctx.Cost > ctx.Stamina {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Not enough stamina: technique costs %d, you have %d", ctx.Cost, ctx.Stamina),
		}
	}
	return GuardResult{Allowed: true}
}

// CanAdvanceRound evaluates whether the round may be ended.
// Rule: only a running performance has rounds left to end.
func CanAdvanceRound(status Status) GuardResult {
	if status.Terminal() {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Performance is %s - there are no rounds left", status),
		}
	}
	return GuardResult{Allowed: true}
}

// PlayContextFor builds the PlayContext for index from a snapshot.
func PlayContextFor(snap Snapshot, index int) PlayContext {
	ctx := PlayContext{
		Status:   snap.Status,
		Index:    index,
		HandSize: len(snap.Hand),
		Stamina:  snap.Stamina,
	}
	if index >= 0 && index < len(snap.Hand) {
		ctx.Cost = snap.Hand[index].Cost
	}
	return ctx
}
