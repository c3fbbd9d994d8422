package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Room:
		o.printRoom(v)
	case CreateRoomResult:
		o.printCreateRoomResult(v)
	case GuessResult:
		o.printGuessResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Guess response type (matches API)
type Guess struct {
	Value     string    `json:"value"`
	Feedback  []string  `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}

// Player response type
type Player struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Avatar       string  `json:"avatar"`
	Ready        bool    `json:"ready"`
	Secret       string  `json:"secret,omitempty"`
	Guesses      []Guess `json:"guesses"`
	LastReaction string  `json:"last_reaction,omitempty"`
}

// Reaction response type
type Reaction struct {
	Emoji    string `json:"emoji"`
	PlayerID string `json:"player_id"`
}

// Room response type
type Room struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	DigitCount   int       `json:"digit_count"`
	Round        int       `json:"round"`
	Players      []Player  `json:"players"`
	WinnerID     *string   `json:"winner_id"`
	LastReaction *Reaction `json:"last_reaction,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateRoomResult response type
type CreateRoomResult struct {
	Room     Room   `json:"room"`
	PlayerID string `json:"player_id"`
}

// GuessResult response type
type GuessResult struct {
	Room     Room     `json:"room"`
	Feedback []string `json:"feedback"`
	IsWin    bool     `json:"is_win"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printRoom(r Room) {
	fmt.Printf("Room: %s\n", r.ID)
	fmt.Printf("Status: %s\n", r.Status)
	fmt.Printf("Digits: %d\n", r.DigitCount)
	fmt.Printf("Round: %d\n", r.Round)

	fmt.Printf("Players (%d):\n", len(r.Players))
	for _, p := range r.Players {
		markers := []string{}
		if p.Ready {
			markers = append(markers, "ready")
		}
		if r.WinnerID != nil && *r.WinnerID == p.ID {
			markers = append(markers, "winner")
		}
		markerStr := ""
		if len(markers) > 0 {
			markerStr = " [" + strings.Join(markers, ", ") + "]"
		}
		fmt.Printf("  - %s %s (%s)%s\n", p.Avatar, p.Name, p.ID, markerStr)
		if p.Secret != "" {
			fmt.Printf("    Secret: %s\n", p.Secret)
		}
		for _, g := range p.Guesses {
			fmt.Printf("    %s  %s\n", g.Value, feedbackGlyphs(g.Feedback))
		}
	}

	if r.LastReaction != nil {
		fmt.Printf("Last reaction: %s from %s\n", r.LastReaction.Emoji, r.LastReaction.PlayerID)
	}
}

func (o *Output) printCreateRoomResult(c CreateRoomResult) {
	o.printRoom(c.Room)
	fmt.Printf("Your Player ID: %s\n", c.PlayerID)
}

func (o *Output) printGuessResult(g GuessResult) {
	fmt.Printf("Feedback: %s\n", feedbackGlyphs(g.Feedback))
	if g.IsWin {
		fmt.Println("You cracked it! You win!")
	}
	fmt.Println()
	o.printRoom(g.Room)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

// feedbackGlyphs renders per-digit feedback as a compact glyph string:
// ● exact digit, ◐ right digit wrong place, ○ not in the secret
func feedbackGlyphs(feedback []string) string {
	var b strings.Builder
	for _, f := range feedback {
		switch f {
		case "correct":
			b.WriteString("●")
		case "misplaced":
			b.WriteString("◐")
		default:
			b.WriteString("○")
		}
	}
	return b.String()
}
