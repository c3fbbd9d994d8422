package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the current room and print state changes",
		Long: `Poll the room on a fixed interval and reprint its state whenever
something changed: a player joined, a secret was locked in, a guess was
scored, the round resolved, or a reaction arrived.

Press Ctrl+C to stop.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			return watchRoom(interval)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "Poll interval")

	return cmd
}

func watchRoom(interval time.Duration) error {
	out := NewOutput(cfg.Output)
	path := fmt.Sprintf("/api/v1/rooms/%s?player_id=%s", cfg.RoomCode, cfg.PlayerID)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastUpdated time.Time
	fetch := func() error {
		var room Room
		if err := client.Get(path, &room); err != nil {
			return err
		}
		if !room.UpdatedAt.After(lastUpdated) {
			return nil
		}
		lastUpdated = room.UpdatedAt
		out.Print(room)
		fmt.Println()
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	for {
		select {
		case <-sigCh:
			return nil
		case <-ticker.C:
			if err := fetch(); err != nil {
				// The room may have expired mid-watch; report and stop
				return err
			}
		}
	}
}
