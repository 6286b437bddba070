package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/encore/internal/config"
)

func newTestRoot(args ...string) (*cobra.Command, *bytes.Buffer) {
	root := &cobra.Command{
		Use:               "encore",
		PersistentPreRunE: ConfigureOutput,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	root.PersistentFlags().Bool("no-color", false, "Disable colored output")
	root.AddCommand(CatalogCmd())
	root.AddCommand(ConfigCmd())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	return root, &out
}

// The resolved config is cached for the whole test binary, so every command
// that depends on it is exercised from this one test.
func TestConfigCommands_BrokenConfigFile(t *testing.T) {
	noColor := color.NoColor
	t.Cleanup(func() { color.NoColor = noColor })

	dir := t.TempDir()
	path := filepath.Join(dir, ".encore", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{ broken"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Chdir(dir)

	t.Run("show returns the load error", func(t *testing.T) {
		root, _ := newTestRoot("config", "show")
		err := root.Execute()
		if err == nil || !strings.Contains(err.Error(), "failed to load config") {
			t.Fatalf("expected load error, got %v", err)
		}
	})

	t.Run("catalog still runs", func(t *testing.T) {
		root, out := newTestRoot("catalog", "--no-color")
		if err := root.Execute(); err != nil {
			t.Fatalf("catalog failed: %v", err)
		}
		if !strings.Contains(out.String(), "Shake It Off") {
			t.Errorf("expected the catalog in output:\n%s", out.String())
		}
	})

	t.Run("init without force keeps the file", func(t *testing.T) {
		root, _ := newTestRoot("config", "init")
		err := root.Execute()
		if err == nil || !strings.Contains(err.Error(), "already exists") {
			t.Fatalf("expected already exists error, got %v", err)
		}
	})

	t.Run("init with force rewrites the file", func(t *testing.T) {
		root, out := newTestRoot("config", "init", "--force")
		if err := root.Execute(); err != nil {
			t.Fatalf("config init --force failed: %v", err)
		}
		if !strings.Contains(out.String(), "Wrote") {
			t.Errorf("expected confirmation, got:\n%s", out.String())
		}

		cfg, err := config.LoadConfig(dir)
		if err != nil {
			t.Fatalf("rewritten config does not load: %v", err)
		}
		if cfg.Game.MaxRounds != config.Default().Game.MaxRounds {
			t.Errorf("MaxRounds = %d, want %d", cfg.Game.MaxRounds, config.Default().Game.MaxRounds)
		}
	})
}
