// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// game logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/encore/internal/core/performance"
	"github.com/example/encore/internal/ports/primary"
)

// MessageLimit is how many messages the board shows.
const MessageLimit = 10

var (
	headerColor   = color.New(color.Bold)
	cheersColor   = color.New(color.FgHiYellow)
	audienceColor = color.New(color.FgHiCyan)
	momentumColor = color.New(color.FgHiMagenta)
	staminaColor  = color.New(color.FgHiGreen)
	setbackColor  = color.New(color.FgRed)
	dimColor      = color.New(color.FgHiBlack)
	recentColor   = color.New(color.FgGreen)
	failColor     = color.New(color.FgHiRed, color.Bold)
	successColor  = color.New(color.FgHiGreen, color.Bold)
)

// PerformanceAdapter is a thin adapter that translates CLI operations to PerformanceService calls.
// It depends only on the PerformanceService interface, enabling easy testing with mocks.
type PerformanceAdapter struct {
	service primary.PerformanceService
	out     io.Writer
}

// NewPerformanceAdapter creates a new PerformanceAdapter with the given service.
func NewPerformanceAdapter(service primary.PerformanceService, out io.Writer) *PerformanceAdapter {
	return &PerformanceAdapter{
		service: service,
		out:     out,
	}
}

// Start deals a new performance and shows the opening board.
func (a *PerformanceAdapter) Start(ctx context.Context, seed uint64) (*primary.StartResponse, error) {
	resp, err := a.service.Start(ctx, primary.StartRequest{Seed: seed})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Performance %s started (seed %d)\n", resp.RunID, resp.Seed)
	a.Render(resp.Snapshot)
	return resp, nil
}

// Play plays the technique at the 1-based position shown on the board.
func (a *PerformanceAdapter) Play(ctx context.Context, position int) (performance.Snapshot, error) {
	snap, err := a.service.Play(ctx, position-1)
	if err != nil {
		return snap, err
	}

	a.Render(snap)
	return snap, nil
}

// Pass ends the round.
func (a *PerformanceAdapter) Pass(ctx context.Context) (performance.Snapshot, error) {
	snap, err := a.service.Pass(ctx)
	if err != nil {
		return snap, err
	}

	a.Render(snap)
	return snap, nil
}

// Render writes the whole board for snap.
func (a *PerformanceAdapter) Render(snap performance.Snapshot) {
	fmt.Fprintln(a.out)
	a.renderCounters(snap)
	if snap.Setback != nil {
		fmt.Fprintf(a.out, "%s %s (%s)\n", setbackColor.Sprint("Setback:"), snap.Setback.Name, snap.Setback.Description)
	}
	a.renderEffects(snap)

	switch snap.Status {
	case performance.StatusComplete:
		fmt.Fprintln(a.out, successColor.Sprintf("★ Performance complete with %d cheers!", snap.Cheers))
	case performance.StatusFailed:
		fmt.Fprintln(a.out, failColor.Sprintf("✗ Performance failed in round %d with %d cheers", snap.Round, snap.Cheers))
	default:
		a.renderHand(snap)
	}

	a.renderMessages(snap.Messages)
}

func (a *PerformanceAdapter) renderCounters(snap performance.Snapshot) {
	fmt.Fprintf(a.out, "%s   %s   %s   %s   %s   %s\n",
		headerColor.Sprintf("Round %d/%d", snap.Round, snap.MaxRounds),
		cheersColor.Sprintf("Cheers %d", snap.Cheers),
		audienceColor.Sprintf("Audience %d", snap.Audience),
		momentumColor.Sprintf("Momentum %+d", snap.Momentum),
		staminaColor.Sprintf("Stamina %d", snap.Stamina),
		dimColor.Sprintf("Deck %d", snap.DeckSize),
	)
}

func (a *PerformanceAdapter) renderEffects(snap performance.Snapshot) {
	if len(snap.Effects) == 0 && len(snap.Pending) == 0 {
		return
	}

	fmt.Fprintln(a.out, headerColor.Sprint("Effects:"))
	for _, e := range snap.Effects {
		fmt.Fprintf(a.out, "  %s (from %s)%s\n", e.Name, e.Source, dimColor.Sprint(durationText(e)))
	}
	for _, e := range snap.Pending {
		fmt.Fprintf(a.out, "  %s (from %s)%s\n", e.Name, e.Source, dimColor.Sprint(" [next]"+durationText(e)))
	}
}

func durationText(e performance.EffectView) string {
	var parts []string
	if e.HandDuration > 0 {
		parts = append(parts, plural(e.HandDuration, "play"))
	}
	if e.RoundDuration > 0 {
		parts = append(parts, plural(e.RoundDuration, "round"))
	}
	if len(parts) == 0 {
		return ""
	}
	return " [" + strings.Join(parts, ", ") + " left]"
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func (a *PerformanceAdapter) renderHand(snap performance.Snapshot) {
	fmt.Fprintln(a.out, headerColor.Sprint("Hand:"))
	if len(snap.Hand) == 0 {
		fmt.Fprintln(a.out, dimColor.Sprint("  (empty)"))
	}
	for i, t := range snap.Hand {
		line := fmt.Sprintf("  %d. %s", i+1, TechniqueLine(t))
		if t.Cost > snap.Stamina {
			line = dimColor.Sprint(line)
		}
		fmt.Fprintln(a.out, line)
	}
	fmt.Fprintln(a.out, dimColor.Sprint("  ⏎ next round"))
}

// TechniqueLine formats a technique as "Name [cost] description xN".
func TechniqueLine(t performance.TechniqueView) string {
	line := fmt.Sprintf("%s [%d] %s", t.Name, t.Cost, t.Description)
	if t.Replay > 1 {
		line += fmt.Sprintf(" x%d", t.Replay)
	}
	return line
}

// renderMessages shows the newest messages first; the latest transition's are highlighted.
func (a *PerformanceAdapter) renderMessages(messages []performance.Message) {
	if len(messages) == 0 {
		return
	}

	start := max(0, len(messages)-MessageLimit)
	for i := len(messages) - 1; i >= start; i-- {
		m := messages[i]
		if m.Recent {
			fmt.Fprintln(a.out, recentColor.Sprint("› "+m.Text))
		} else {
			fmt.Fprintln(a.out, dimColor.Sprint("  "+m.Text))
		}
	}
}

// Summary prints the per-round journal totals of the current run.
func (a *PerformanceAdapter) Summary(ctx context.Context) error {
	summary, err := a.service.Summary(ctx)
	if err != nil {
		return fmt.Errorf("failed to summarize performance: %w", err)
	}

	fmt.Fprintf(a.out, "\nRun %s (seed %d): %s, %d cheers from %d plays\n",
		summary.RunID, summary.Seed, summary.Status, summary.Cheers, summary.Plays)
	fmt.Fprintf(a.out, "%-6s %-6s %-8s %s\n", "ROUND", "PLAYS", "CHEERS", "AUDIENCE")
	fmt.Fprintln(a.out, "────────────────────────────────")
	for _, r := range summary.Rounds {
		fmt.Fprintf(a.out, "%-6d %-6d %-8s %d\n", r.Round, r.Plays, fmt.Sprintf("+%d", r.CheersGained), r.EndAudience)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Runs prints the outcome of the most recent runs with totals.
func (a *PerformanceAdapter) Runs(ctx context.Context, limit int) error {
	runs, err := a.service.Runs(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(a.out, "No runs found")
		return nil
	}

	var completed, cheers int
	fmt.Fprintf(a.out, "\n%-22s %-10s %-6s %s\n", "SEED", "STATUS", "ROUND", "CHEERS")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────")
	for _, r := range runs {
		status := r.Status
		switch r.Status {
		case string(performance.StatusComplete):
			completed++
			status = successColor.Sprintf("%-10s", r.Status)
		case string(performance.StatusFailed):
			status = failColor.Sprintf("%-10s", r.Status)
		default:
			status = fmt.Sprintf("%-10s", r.Status)
		}
		cheers += r.Cheers
		fmt.Fprintf(a.out, "%-22d %s %-6d %d\n", r.Seed, status, r.Round, r.Cheers)
	}
	fmt.Fprintf(a.out, "\n%d/%d complete, %.1f cheers on average\n\n",
		completed, len(runs), float64(cheers)/float64(len(runs)))

	return nil
}
