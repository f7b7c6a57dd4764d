// grabber is a terminal reflex game: grab the coin before the bot does.
//
// Usage:
//
//	grabber play             - Play a round against the bot
//	grabber serve            - Start SSH server for remote play
//	grabber presets          - Show the difficulty presets
//	grabber config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible spawns
//	--config <path>     - Use a custom YAML config
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "grabber",
	Short: "Money Grabber - beat the bot to the coin",
	Long: `Money Grabber is a reflex game for the terminal. A coin or a bill
appears somewhere on the field; grab it with the mouse (or the keyboard
pointer) before the bot walks over and takes it. Rounds last 30 seconds.

Available commands:
  play     - Play against the bot
  serve    - Start SSH server for remote play
  presets  - Show difficulty presets
  config   - Print the default configuration

Examples:
  grabber play
  grabber play --difficulty hard
  grabber serve --ssh :2222
  grabber config > configs/grabber.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom grabber config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}
