package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/money-grabber/internal/config"
	"github.com/vovakirdan/money-grabber/internal/core"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `List the bot speed and reaction delay for each difficulty level in the active configuration.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	game, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Difficulty presets (config: %s):\n", source)
	fmt.Println()

	// Print header
	fmt.Printf("  %-8s  %-10s  %s\n", "Level", "Bot speed", "Reaction")
	fmt.Printf("  %-8s  %-10s  %s\n", "-----", "---------", "--------")

	def := game.Difficulty.DefaultLevel()
	for _, d := range core.Difficulties {
		p := game.Difficulty.Preset(d)
		marker := ""
		if d == def {
			marker = "  (default)"
		}
		fmt.Printf("  %-8s  %-10s  %s%s\n", d.String(), fmt.Sprintf("%g/tick", p.Speed), p.ReactionDelay(), marker)
	}

	fmt.Println()
	fmt.Printf("Field %gx%g, item radius %g, round %s.\n",
		game.Field.Width, game.Field.Height, game.Item.Radius, config.RoundDuration)
	fmt.Println("Run 'grabber play --difficulty <level>' to play.")
}
