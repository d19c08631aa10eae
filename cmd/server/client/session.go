package client

import (
	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/rpg-narrative/internal/handlers/story/v1alpha1"
)

// sessionCommand builds a command whose first argument is the session ID
func sessionCommand(use, short string, method rpc, extra ...string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1 + len(extra)),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := map[string]any{v1alpha1.KeySessionID: args[0]}
			for i, key := range extra {
				fields[key] = args[i+1]
			}
			return invoke(cmd, method, fields)
		},
	}
}

var (
	statusCmd = sessionCommand("status [session-id]",
		"Show location, health and inventory", v1alpha1.StoryServiceClient.GetStatus)

	advanceCmd = sessionCommand("advance [session-id]",
		"Show the next dialogue line or the location prompt", v1alpha1.StoryServiceClient.Advance)

	chooseCmd = sessionCommand("choose [session-id] [A|B]",
		"Pick an option on the pending fork", v1alpha1.StoryServiceClient.ChooseOption, v1alpha1.KeyOption)

	moveCmd = sessionCommand("move [session-id] [direction]",
		"Walk to a connected location", v1alpha1.StoryServiceClient.Move, v1alpha1.KeyDirection)

	whereCmd = sessionCommand("where [session-id]",
		"List directions once the dialogue is over", v1alpha1.StoryServiceClient.LocationPrompt)

	inventoryCmd = sessionCommand("inventory [session-id]",
		"List held items", v1alpha1.StoryServiceClient.GetInventory)

	giveCmd = sessionCommand("give [session-id] [item] [receiver]",
		"Hand an item to a character", v1alpha1.StoryServiceClient.GiveItem, v1alpha1.KeyItem, v1alpha1.KeyReceiver)

	useCmd = sessionCommand("use [session-id] [item]",
		"Use an item to recover health", v1alpha1.StoryServiceClient.UseItem, v1alpha1.KeyItem)

	endSessionCmd = sessionCommand("end-session [session-id]",
		"Save progress and close the session", v1alpha1.StoryServiceClient.EndSession)
)
