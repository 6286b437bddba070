package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/encore/internal/wire"
)

// annotationConfigOptional marks commands that still run when the config file
// cannot be loaded.
const annotationConfigOptional = "encore/config-optional"

// ConfigureOutput resolves the configuration and applies --no-color before a
// command runs. It is meant to be the root command's PersistentPreRunE.
func ConfigureOutput(cmd *cobra.Command, args []string) error {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color.NoColor = true
	}

	cfg, err := wire.Config()
	if err != nil {
		if cmd.Annotations[annotationConfigOptional] == "true" {
			logger := wire.Logger()
			logger.Warn().Err(err).Msg("ignoring config")
			return nil
		}
		return err
	}

	if cfg.NoColor {
		color.NoColor = true
	}
	return nil
}
