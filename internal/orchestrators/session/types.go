package session

import (
	"github.com/KirkDiggler/rpg-narrative/internal/engine"
)

// State is where a session stands in the story
type State string

// Session states
const (
	StateAtDialogue   State = "AT_DIALOGUE"
	StateChoosingFork State = "CHOOSING_FORK"
	StateAtLocation   State = "AT_LOCATION"
	StateGameOver     State = "GAME_OVER"
)

// OutcomeKind tells the transport how to render an Outcome
type OutcomeKind string

// Outcome kinds
const (
	OutcomeDialogue        OutcomeKind = "dialogue"
	OutcomeLocation        OutcomeKind = "location"
	OutcomeMovementBlocked OutcomeKind = "movement_blocked"
	OutcomeGameOver        OutcomeKind = "game_over"
)

// Options a player can pick on a fork
const (
	OptionA = "A"
	OptionB = "B"
)

// Player facing texts
const (
	MessageListenFirst   = "Сначала дослушайте диалог до конца."
	MessageCannotProceed = "Вы пока не можете покинуть эту локацию."
)

// Outcome is the result of one player action
type Outcome struct {
	Kind     OutcomeKind
	Dialogue *engine.DialogueView
	Location *LocationPrompt
	// Message carries the blocked reason or the end-of-game narrative
	Message string
}

// LocationPrompt lists where the protagonist can go next
type LocationPrompt struct {
	LocationID  int
	Name        string
	Description string
	Directions  []string
}

// Status is a snapshot of a live session
type Status struct {
	SessionID           string
	PlayerID            string
	State               State
	HeroName            string
	LineID              int
	LocationID          int
	LocationName        string
	LocationDescription string
	Directions          []string
	ProtagonistHP       int
	ProtagonistXP       int
	AntagonistHP        int
	Inventory           []string
}

// RegisterHeroInput defines the input for registering a hero
type RegisterHeroInput struct {
	PlayerID string
	Name     string
}

// RegisterHeroOutput defines the output for registering a hero
type RegisterHeroOutput struct {
	// HeroName is the normalized name that was stored
	HeroName string
}

// CreateSessionInput defines the input for creating a session. PlayerID
// enables resume and progress persistence; HeroName overrides the stored
// name and is required for anonymous sessions.
type CreateSessionInput struct {
	PlayerID string
	HeroName string
}

// CreateSessionOutput defines the output for creating a session
type CreateSessionOutput struct {
	SessionID string
	Status    *Status
}

// GetStatusInput defines the input for getting a session status
type GetStatusInput struct {
	SessionID string
}

// GetStatusOutput defines the output for getting a session status
type GetStatusOutput struct {
	Status *Status
}

// AdvanceInput defines the input for advancing dialogue
type AdvanceInput struct {
	SessionID string
}

// AdvanceOutput defines the output for advancing dialogue
type AdvanceOutput struct {
	Outcome *Outcome
}

// ChooseOptionInput defines the input for answering a fork
type ChooseOptionInput struct {
	SessionID string
	// Option is "A" or "B"
	Option string
}

// ChooseOptionOutput defines the output for answering a fork
type ChooseOptionOutput struct {
	Outcome *Outcome
}

// MoveInput defines the input for moving
type MoveInput struct {
	SessionID string
	Direction string
}

// MoveOutput defines the output for moving
type MoveOutput struct {
	Outcome *Outcome
}

// LocationPromptInput defines the input for asking where to go
type LocationPromptInput struct {
	SessionID string
}

// LocationPromptOutput defines the output for asking where to go
type LocationPromptOutput struct {
	Outcome *Outcome
}

// GetInventoryInput defines the input for listing the inventory
type GetInventoryInput struct {
	SessionID string
}

// GetInventoryOutput defines the output for listing the inventory
type GetInventoryOutput struct {
	Items []string
}

// GiveItemInput defines the input for handing an item to an NPC
type GiveItemInput struct {
	SessionID string
	Item      string
	Receiver  string
}

// GiveItemOutput defines the output for handing an item to an NPC
type GiveItemOutput struct {
	Items []string
}

// UseItemInput defines the input for using an inventory item
type UseItemInput struct {
	SessionID string
	Item      string
}

// UseItemOutput defines the output for using an inventory item
type UseItemOutput struct {
	Items         []string
	ProtagonistHP int
	ProtagonistXP int
}

// EndSessionInput defines the input for ending a session
type EndSessionInput struct {
	SessionID string
}

// EndSessionOutput defines the output for ending a session
type EndSessionOutput struct {
	// ProgressMarker is the line to resume from, 0 for location selection
	ProgressMarker int
	LocationID     int
}

// SweepOutput lists the sessions a Sweep or CloseAll removed
type SweepOutput struct {
	Evicted []string
}
