package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Room management commands",
	}

	cmd.AddCommand(newRoomCreateCmd())
	cmd.AddCommand(newRoomGetCmd())
	cmd.AddCommand(newRoomJoinCmd())

	return cmd
}

// requireSession checks that the session identifies a room and player,
// either from flags or from the saved session file
func requireSession() error {
	if cfg.RoomCode == "" {
		return fmt.Errorf("no room selected: pass --room or create/join one first")
	}
	if cfg.PlayerID == "" {
		return fmt.Errorf("no player identity: pass --player or create/join a room first")
	}
	return nil
}

func newRoomCreateCmd() *cobra.Command {
	var name string
	var avatar string
	var digits int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new duel room",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":   name,
				"avatar": avatar,
			}
			if digits > 0 {
				req["digit_count"] = digits
			}

			var result CreateRoomResult

			if err := client.Post("/api/v1/rooms", req, &result); err != nil {
				return err
			}

			if err := cfg.SaveSession(result.Room.ID, result.PlayerID); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your display name (required)")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Your avatar emoji")
	cmd.Flags().IntVar(&digits, "digits", 0, "Secret length: 4, 5 or 6 (default: server default)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRoomGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [code]",
		Short: "Get the current state of a room",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				cfg.RoomCode = args[0]
			}
			if err := requireSession(); err != nil {
				return err
			}

			var result Room

			path := fmt.Sprintf("/api/v1/rooms/%s?player_id=%s", cfg.RoomCode, cfg.PlayerID)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomJoinCmd() *cobra.Command {
	var name string
	var avatar string

	cmd := &cobra.Command{
		Use:   "join <code>",
		Short: "Join an existing room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			req := map[string]any{
				"name":   name,
				"avatar": avatar,
			}

			var result CreateRoomResult

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/join", code), req, &result); err != nil {
				return err
			}

			if err := cfg.SaveSession(result.Room.ID, result.PlayerID); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your display name (required)")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Your avatar emoji")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSecretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "secret <digits>",
		Short: "Lock in your secret number for this round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			req := map[string]string{
				"player_id": cfg.PlayerID,
				"secret":    args[0],
			}

			var result Room

			path := fmt.Sprintf("/api/v1/rooms/%s/secret", cfg.RoomCode)
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <digits>",
		Short: "Guess your opponent's secret number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			req := map[string]string{
				"player_id": cfg.PlayerID,
				"guess":     args[0],
			}

			var result GuessResult

			path := fmt.Sprintf("/api/v1/rooms/%s/guess", cfg.RoomCode)
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRematchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rematch",
		Short: "Start a new round in the current room",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			req := map[string]string{
				"player_id": cfg.PlayerID,
			}

			var result Room

			path := fmt.Sprintf("/api/v1/rooms/%s/rematch", cfg.RoomCode)
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newReactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "react <emoji>",
		Short: "Send a reaction to your opponent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			req := map[string]string{
				"player_id": cfg.PlayerID,
				"emoji":     args[0],
			}

			var result Room

			path := fmt.Sprintf("/api/v1/rooms/%s/reaction", cfg.RoomCode)
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
