package client

import (
	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/rpg-narrative/internal/handlers/story/v1alpha1"
)

var registerHeroCmd = &cobra.Command{
	Use:   "register-hero [player-id] [first-name] [last-name]",
	Short: "Register a hero name and restart the player's story",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.StoryServiceClient.RegisterHero, map[string]any{
			v1alpha1.KeyPlayerID: args[0],
			v1alpha1.KeyName:     args[1] + " " + args[2],
		})
	},
}

var (
	sessionPlayer string
	sessionHero   string
)

var createSessionCmd = &cobra.Command{
	Use:   "create-session",
	Short: "Start a session, resuming the player's saved progress",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return invoke(cmd, v1alpha1.StoryServiceClient.CreateSession, map[string]any{
			v1alpha1.KeyPlayerID: sessionPlayer,
			v1alpha1.KeyHeroName: sessionHero,
		})
	},
}

func init() {
	createSessionCmd.Flags().StringVar(&sessionPlayer, "player", "", "player ID, empty for an unsaved session")
	createSessionCmd.Flags().StringVar(&sessionHero, "hero", "", "hero name, defaults to the registered one")
}
