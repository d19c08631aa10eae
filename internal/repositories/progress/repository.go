// Package progress persists hero names and resume markers across sessions
package progress

//go:generate mockgen -destination=mock/mock_repository.go -package=progressmock github.com/KirkDiggler/rpg-narrative/internal/repositories/progress Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-narrative/internal/entities"
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
)

const (
	errPlayerIDEmpty = "player ID cannot be empty"
	errHeroNameEmpty = "hero name cannot be empty"
)

// Repository defines the interface for player progress persistence
type Repository interface {
	// Get retrieves a player's progress
	// Returns errors.InvalidArgument for an empty player ID
	// Returns errors.NotFound if nothing was saved for the player
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// SaveHeroName stores the hero name, creating the record when needed.
	// A new record starts at the first line.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	SaveHeroName(ctx context.Context, input SaveHeroNameInput) (*SaveHeroNameOutput, error)

	// SaveProgress stores the resume marker, keeping any saved hero name
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	SaveProgress(ctx context.Context, input SaveProgressInput) (*SaveProgressOutput, error)
}

// GetInput defines the input for getting progress
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for getting progress
type GetOutput struct {
	Progress *entities.Progress
}

// SaveHeroNameInput defines the input for saving a hero name
type SaveHeroNameInput struct {
	PlayerID string
	HeroName string
}

// SaveHeroNameOutput defines the output for saving a hero name
type SaveHeroNameOutput struct {
	Progress *entities.Progress
}

// SaveProgressInput defines the input for saving a resume marker.
// LineID 0 records a player standing at location selection.
type SaveProgressInput struct {
	PlayerID   string
	LineID     int
	LocationID int
}

// SaveProgressOutput defines the output for saving a resume marker
type SaveProgressOutput struct {
	Progress *entities.Progress
}

func (i GetInput) validate() error {
	if i.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	return nil
}

func (i SaveHeroNameInput) validate() error {
	vb := errors.NewValidationBuilder()
	if i.PlayerID == "" {
		vb.Field("player_id", errPlayerIDEmpty)
	}
	if i.HeroName == "" {
		vb.Field("hero_name", errHeroNameEmpty)
	}
	return vb.Build()
}

func (i SaveProgressInput) validate() error {
	vb := errors.NewValidationBuilder()
	if i.PlayerID == "" {
		vb.Field("player_id", errPlayerIDEmpty)
	}
	if i.LineID < 0 {
		vb.Fieldf("line_id", "must not be negative, got %d", i.LineID)
	}
	if i.LocationID < 0 {
		vb.Fieldf("location_id", "must not be negative, got %d", i.LocationID)
	}
	return vb.Build()
}
