package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/money-grabber/internal/config"
	"github.com/vovakirdan/money-grabber/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagSSHAssets   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the grabber SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own match against its own bot; sessions
do not see each other. Remote sessions have no sound.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.grabber/host_key

Examples:
  grabber serve                           # Listen on :23234 with auto-generated key
  grabber serve --ssh :2222               # Listen on port 2222
  grabber serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagSSHAssets, "assets", "", "Directory with sprite files")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("grabber-ssh", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, source, err := config.Load(flagConfig)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Game = game
	cfg.AssetsDir = flagSSHAssets
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting grabber SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	serveErr := server.ListenAndServe()
	closeLog()
	if serveErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", serveErr)
		os.Exit(1)
	}
}
