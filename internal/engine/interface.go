// Package engine drives one player's walk through the story graph: dialogue
// traversal, scripted combat and movement between locations.
package engine

import (
	"context"
)

// Engine is the story facade bound to one protagonist/antagonist pair.
// It is not safe for concurrent use; callers serialize per session.
type Engine interface {
	// AdvanceDialogue resolves a line, applies its combat event on first
	// visit and runs the scripted side effects. Output.Line is nil when the
	// dialogue at this point is exhausted.
	// Returns errors.CharacterDefeated when combat ends the game
	AdvanceDialogue(ctx context.Context, input *AdvanceDialogueInput) (*AdvanceDialogueOutput, error)

	// ApplyCombatEvent applies the health/experience event of a line
	// Returns errors.CharacterDefeated when combat ends the game
	ApplyCombatEvent(ctx context.Context, input *ApplyCombatEventInput) (*ApplyCombatEventOutput, error)

	// CanAdvanceLocation reports whether the protagonist may leave the
	// current location
	CanAdvanceLocation(ctx context.Context) (bool, error)

	// Go moves the protagonist along a direction and positions it on the
	// first line of the new location
	// Returns errors.InvalidDirection when no such direction leaves the
	// current location; nothing is mutated in that case
	Go(ctx context.Context, input *GoInput) (*GoOutput, error)

	// GetCurrentLocation describes where the protagonist stands
	GetCurrentLocation(ctx context.Context) (*GetCurrentLocationOutput, error)
}

// DialogueView is a dialogue line rendered for one protagonist
type DialogueView struct {
	LineID     int
	LocationID int
	Text       string
	OptionA    string
	OptionB    string
	Fork       bool
	// NextLineID is where a linear line continues, 0 when it is the last
	NextLineID int
	// OptionANextLineID and OptionBNextLineID are the fork targets
	OptionANextLineID int
	OptionBNextLineID int
}

// AdvanceDialogueInput defines the input for advancing dialogue
type AdvanceDialogueInput struct {
	LineID int
}

// AdvanceDialogueOutput defines the output for advancing dialogue
type AdvanceDialogueOutput struct {
	// ResolvedLineID differs from the requested id when an override fired
	ResolvedLineID int
	Line           *DialogueView
}

// ApplyCombatEventInput defines the input for applying a combat event
type ApplyCombatEventInput struct {
	LineID int
}

// ApplyCombatEventOutput defines the output for applying a combat event
type ApplyCombatEventOutput struct {
	Applied bool
}

// GoInput defines the input for moving
type GoInput struct {
	Direction string
}

// GoOutput defines the output for moving
type GoOutput struct {
	LocationID int
	// LineID is the first line of the new location, 0 when it has none
	LineID int
}

// GetCurrentLocationOutput describes the protagonist's location
type GetCurrentLocationOutput struct {
	LocationID  int
	Name        string
	Description string
	Directions  []string
}
