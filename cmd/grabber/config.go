package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/money-grabber/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in grabber.yaml. Save it to ~/.grabber/configs/grabber.yaml
or ./configs/grabber.yaml and edit it to tune the game, or pass it with --config.

Example:
  grabber config > ~/.grabber/configs/grabber.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		_, _ = os.Stdout.Write(config.DefaultYAML())
	},
}
