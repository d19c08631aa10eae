package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-narrative/internal/tui"
)

var (
	playPlayer string
	playHero   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the story in the terminal",
	Long: `Play against an in-process session service. Storage and content settings
come from the same NARRATIVE_* variables the server reads, so a --player
with a redis or sqlite backend resumes where it left off.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playPlayer, "player", "", "player ID used to save and resume progress")
	playCmd.Flags().StringVar(&playHero, "hero", "", "hero name, asked for when empty")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// the alternate screen owns the terminal
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	a, err := newApp(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return tui.Run(&tui.Config{
		Service:  a.service,
		PlayerID: playPlayer,
		HeroName: playHero,
	})
}
