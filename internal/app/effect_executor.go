// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/example/encore/internal/core/effects"
	"github.com/example/encore/internal/core/journal"
	"github.com/example/encore/internal/ctxutil"
	"github.com/example/encore/internal/ports/secondary"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place I/O happens.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) error
}

// DefaultEffectExecutor implements EffectExecutor against the journal and a logger.
type DefaultEffectExecutor struct {
	journal secondary.JournalRepository
	logger  zerolog.Logger
}

// NewEffectExecutor creates a new DefaultEffectExecutor.
func NewEffectExecutor(journalRepo secondary.JournalRepository, logger zerolog.Logger) *DefaultEffectExecutor {
	return &DefaultEffectExecutor{journal: journalRepo, logger: logger}
}

// Execute processes a slice of effects, executing each in sequence.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	for _, eff := range effs {
		if err := e.executeOne(ctx, eff); err != nil {
			return fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err)
		}
	}
	return nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case effects.PersistEffect:
		return e.executePersist(ctx, typed)
	case effects.CompositeEffect:
		return e.Execute(ctx, typed.Effects)
	case effects.NoEffect:
		return nil
	case effects.LogEffect:
		e.executeLog(ctx, typed)
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executeLog(ctx context.Context, eff effects.LogEffect) {
	level, err := zerolog.ParseLevel(eff.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	event := e.logger.WithLevel(level)
	if runID := ctxutil.RunIDFromContext(ctx); runID != "" {
		event = event.Str("run", runID)
	}
	event.Fields(eff.Fields).Msg(eff.Message)
}

func (e *DefaultEffectExecutor) executePersist(ctx context.Context, eff effects.PersistEffect) error {
	switch eff.Entity {
	case "journal":
		return e.executeJournalOp(ctx, eff)
	default:
		return fmt.Errorf("unknown entity: %s", eff.Entity)
	}
}

func (e *DefaultEffectExecutor) executeJournalOp(ctx context.Context, eff effects.PersistEffect) error {
	switch eff.Operation {
	case "append":
		entry, ok := eff.Data.(journal.Entry)
		if !ok {
			return fmt.Errorf("invalid journal append data type: %T", eff.Data)
		}
		return e.journal.Append(ctx, entryToRecord(entry))
	default:
		return fmt.Errorf("unknown journal operation: %s", eff.Operation)
	}
}

func entryToRecord(entry journal.Entry) *secondary.JournalRecord {
	return &secondary.JournalRecord{
		RunID:       entry.RunID,
		Seq:         entry.Seq,
		Round:       entry.Round,
		Action:      string(entry.Action),
		Technique:   entry.Technique,
		Status:      entry.Status,
		Cheers:      entry.Cheers,
		CheersDelta: entry.CheersDelta,
		Audience:    entry.Audience,
		Momentum:    entry.Momentum,
		Stamina:     entry.Stamina,
		Detail:      entry.Detail,
	}
}
