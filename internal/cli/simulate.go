package cli

import (
	"context"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/example/encore/internal/core/strategy"
	"github.com/example/encore/internal/ports/primary"
	"github.com/example/encore/internal/wire"
)

// SimulateCmd returns the simulate command
func SimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Autoplay performances with a greedy strategy",
		Long: `Autoplay several performances, always playing the most expensive
affordable technique, and print how each one ended.

With --seed, game i uses seed+i so a batch can be reproduced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			games, _ := cmd.Flags().GetInt("games")
			seed, err := seedFlag(cmd)
			if err != nil {
				return err
			}
			seeds, err := gameSeeds(seed, games)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			service, err := wire.PerformanceService()
			if err != nil {
				return err
			}
			for _, gameSeed := range seeds {
				if err := autoplay(ctx, service, gameSeed); err != nil {
					return err
				}
			}

			adapter, err := wire.PerformanceAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return adapter.Runs(ctx, games)
		},
	}

	cmd.Flags().IntP("games", "n", 10, "Number of performances to play")
	cmd.Flags().Uint64("seed", 0, "Seed of the first game (0 picks a seed per game)")

	return cmd
}

// gameSeeds returns the seed of each game in a batch. A zero seed leaves every
// game to pick its own; otherwise game i uses seed+i, which must not wrap.
func gameSeeds(seed uint64, games int) ([]uint64, error) {
	if games < 1 {
		return nil, fmt.Errorf("--games must be at least 1, got %d", games)
	}
	if seed != 0 && seed > math.MaxUint64-uint64(games-1) {
		return nil, fmt.Errorf("--seed %d is too large for %d games", seed, games)
	}

	seeds := make([]uint64, games)
	for i := range seeds {
		if seed != 0 {
			seeds[i] = seed + uint64(i)
		}
	}
	return seeds, nil
}

// autoplay plays one performance to the end with the greedy strategy.
func autoplay(ctx context.Context, service primary.PerformanceService, seed uint64) error {
	resp, err := service.Start(ctx, primary.StartRequest{Seed: seed})
	if err != nil {
		return fmt.Errorf("failed to start performance: %w", err)
	}

	snap := resp.Snapshot
	for !snap.Status.Terminal() {
		if move := strategy.Greedy(snap); move.Pass {
			snap, err = service.Pass(ctx)
		} else {
			snap, err = service.Play(ctx, move.Index)
		}
		if err != nil {
			return fmt.Errorf("simulation with seed %d: %w", resp.Seed, err)
		}
	}

	return nil
}
