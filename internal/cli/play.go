package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	cliadapter "github.com/example/encore/internal/adapters/cli"
	"github.com/example/encore/internal/wire"
)

var errorColor = color.New(color.FgRed)

// PlayCmd returns the play command
func PlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a performance in the terminal",
		Long: `Play a performance round by round.

At the prompt:
  <number>  play that technique from your hand
  <enter>   end the round
  q         stop and show the summary

Pass --seed to replay a previous performance exactly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := seedFlag(cmd)
			if err != nil {
				return err
			}

			adapter, err := wire.PerformanceAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return runSession(cmd.Context(), adapter, cmd.InOrStdin(), cmd.OutOrStdout(), seed)
		},
	}

	cmd.Flags().Uint64("seed", 0, "Seed for the shuffle and setbacks (0 picks one)")

	return cmd
}

// seedFlag returns --seed, falling back to the configured seed when the flag is unset.
func seedFlag(cmd *cobra.Command) (uint64, error) {
	seed, _ := cmd.Flags().GetUint64("seed")
	if cmd.Flags().Changed("seed") {
		return seed, nil
	}

	cfg, err := wire.Config()
	if err != nil {
		return 0, err
	}
	return cfg.Seed, nil
}

// runSession plays one performance reading moves from in until it ends or the player quits.
func runSession(ctx context.Context, adapter *cliadapter.PerformanceAdapter, in io.Reader, out io.Writer, seed uint64) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := adapter.Start(ctx, seed); err != nil {
		return fmt.Errorf("failed to start performance: %w", err)
	}

	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "> ")
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("failed to read input: %w", readErr)
		}
		input := strings.TrimSpace(line)

		if input == "q" || (errors.Is(readErr, io.EOF) && input == "") {
			fmt.Fprintln(out)
			break
		}

		finished, err := applyMove(ctx, adapter, input)
		if err != nil {
			fmt.Fprintln(out, errorColor.Sprint(err.Error()))
		}
		if finished {
			break
		}
	}

	return adapter.Summary(ctx)
}

// applyMove runs one prompt answer and reports whether the performance is over.
func applyMove(ctx context.Context, adapter *cliadapter.PerformanceAdapter, input string) (bool, error) {
	if input == "" {
		snap, err := adapter.Pass(ctx)
		return snap.Status.Terminal(), err
	}

	position, err := strconv.Atoi(input)
	if err != nil {
		return false, errors.New("enter a technique number, nothing to end the round, or q to quit")
	}

	snap, err := adapter.Play(ctx, position)
	return snap.Status.Terminal(), err
}
