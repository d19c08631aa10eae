// Package story provides read-only access to the content graph: locations,
// directions, dialogue lines and combat events.
package story

//go:generate mockgen -destination=mock/mock_repository.go -package=storymock github.com/KirkDiggler/rpg-narrative/internal/repositories/story Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-narrative/internal/entities"
)

// Repository is the query surface over the story graph. Implementations are
// safe for concurrent use and never mutate shared state.
type Repository interface {
	// GetLocation returns a location's name and description
	// Returns errors.NotFound if the location doesn't exist
	GetLocation(ctx context.Context, input GetLocationInput) (*GetLocationOutput, error)

	// ListDirections returns the direction labels leaving a location in
	// content order. Unknown locations yield an empty list.
	ListDirections(ctx context.Context, input ListDirectionsInput) (*ListDirectionsOutput, error)

	// GetStoryLine returns the dialogue line with the given id.
	// Output.Line is nil when no such line exists.
	GetStoryLine(ctx context.Context, input GetStoryLineInput) (*GetStoryLineOutput, error)

	// GetHealthEvent returns the combat event attached to a line.
	// Output.Event is nil when the line has none.
	GetHealthEvent(ctx context.Context, input GetHealthEventInput) (*GetHealthEventOutput, error)

	// GetNextLocation resolves a direction from a location.
	// Output.Found is false when no connection carries that label.
	GetNextLocation(ctx context.Context, input GetNextLocationInput) (*GetNextLocationOutput, error)

	// GetLineRange returns the lowest and highest line ids owned by a location.
	// Output.Found is false when the location has no lines.
	GetLineRange(ctx context.Context, input GetLineRangeInput) (*GetLineRangeOutput, error)
}

// GetLocationInput defines the input for getting a location
type GetLocationInput struct {
	LocationID int
}

// GetLocationOutput defines the output for getting a location
type GetLocationOutput struct {
	Location *entities.Location
}

// ListDirectionsInput defines the input for listing directions
type ListDirectionsInput struct {
	LocationID int
}

// ListDirectionsOutput defines the output for listing directions
type ListDirectionsOutput struct {
	Directions []string
}

// GetStoryLineInput defines the input for getting a dialogue line
type GetStoryLineInput struct {
	LineID int
}

// GetStoryLineOutput defines the output for getting a dialogue line
type GetStoryLineOutput struct {
	Line *entities.DialogueLine
}

// GetHealthEventInput defines the input for getting a combat event
type GetHealthEventInput struct {
	LineID int
}

// GetHealthEventOutput defines the output for getting a combat event
type GetHealthEventOutput struct {
	Event *entities.HealthEvent
}

// GetNextLocationInput defines the input for resolving a direction
type GetNextLocationInput struct {
	LocationID int
	Direction  string
}

// GetNextLocationOutput defines the output for resolving a direction
type GetNextLocationOutput struct {
	LocationID int
	Found      bool
}

// GetLineRangeInput defines the input for getting a location's line range
type GetLineRangeInput struct {
	LocationID int
}

// GetLineRangeOutput defines the output for getting a location's line range
type GetLineRangeOutput struct {
	Min   int
	Max   int
	Found bool
}
