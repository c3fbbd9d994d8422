package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "duelctl",
		Short: "CLI tool for the digit duel API",
		Long: `duelctl is a CLI tool for playing digit duels over the JSON API.

Create or join a room, lock in a secret number, then trade guesses until
someone cracks their opponent's secret. Your room code and player ID are
remembered between invocations in a session file.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Fill room/player from the session file if not provided via flags
			if err := cfg.LoadSession(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: DUELCTL_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.RoomCode, "room", cfg.RoomCode, "Room code (default: last created/joined room)")
	rootCmd.PersistentFlags().StringVar(&cfg.PlayerID, "player", cfg.PlayerID, "Player ID (default: from session file)")
	rootCmd.PersistentFlags().StringVar(&cfg.SessionFile, "session-file", cfg.SessionFile, "Session file path (env: DUELCTL_SESSION_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newRoomCmd())
	rootCmd.AddCommand(newSecretCmd())
	rootCmd.AddCommand(newGuessCmd())
	rootCmd.AddCommand(newRematchCmd())
	rootCmd.AddCommand(newReactCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
