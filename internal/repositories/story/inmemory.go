package story

import (
	"context"

	"github.com/KirkDiggler/rpg-narrative/internal/content"
	"github.com/KirkDiggler/rpg-narrative/internal/entities"
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
)

type lineRange struct {
	min, max int
}

type edgeKey struct {
	locationID int
	direction  string
}

// inMemoryRepository serves a loaded story from indexed maps. The maps are
// built once and only read afterwards, so no locking is needed.
type inMemoryRepository struct {
	locations  map[int]entities.Location
	directions map[int][]string
	edges      map[edgeKey]int
	lines      map[int]entities.DialogueLine
	events     map[int]entities.HealthEvent
	ranges     map[int]lineRange
}

// InMemoryConfig contains configuration for the in-memory story repository
type InMemoryConfig struct {
	Story *content.Story
}

// Validate validates the InMemoryConfig
func (cfg *InMemoryConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Story == nil {
		return errors.InvalidArgument("story cannot be nil")
	}
	return nil
}

// NewInMemory indexes a story for lookups
func NewInMemory(cfg *InMemoryConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := cfg.Story
	r := &inMemoryRepository{
		locations:  make(map[int]entities.Location, len(s.Locations)),
		directions: make(map[int][]string),
		edges:      make(map[edgeKey]int, len(s.Connections)),
		lines:      make(map[int]entities.DialogueLine, len(s.Lines)),
		events:     make(map[int]entities.HealthEvent, len(s.Events)),
		ranges:     make(map[int]lineRange),
	}

	for _, loc := range s.Locations {
		r.locations[loc.ID] = loc
	}

	for _, conn := range s.Connections {
		key := edgeKey{locationID: conn.LocationID, direction: conn.Direction}
		if _, dup := r.edges[key]; dup {
			continue
		}
		r.edges[key] = conn.TargetLocationID
		r.directions[conn.LocationID] = append(r.directions[conn.LocationID], conn.Direction)
	}

	for _, line := range s.Lines {
		if line == nil {
			continue
		}
		r.lines[line.ID] = *line

		rng, ok := r.ranges[line.LocationID]
		if !ok {
			rng = lineRange{min: line.ID, max: line.ID}
		}
		rng.min = min(rng.min, line.ID)
		rng.max = max(rng.max, line.ID)
		r.ranges[line.LocationID] = rng
	}

	for _, event := range s.Events {
		if event == nil {
			continue
		}
		r.events[event.LineID] = *event
	}

	return r, nil
}

func (r *inMemoryRepository) GetLocation(_ context.Context, input GetLocationInput) (*GetLocationOutput, error) {
	loc, ok := r.locations[input.LocationID]
	if !ok {
		return nil, errors.NotFoundf("location %d not found", input.LocationID).
			WithMeta("location_id", input.LocationID)
	}
	return &GetLocationOutput{Location: &loc}, nil
}

func (r *inMemoryRepository) ListDirections(_ context.Context, input ListDirectionsInput) (*ListDirectionsOutput, error) {
	dirs := r.directions[input.LocationID]
	out := make([]string, len(dirs))
	copy(out, dirs)
	return &ListDirectionsOutput{Directions: out}, nil
}

func (r *inMemoryRepository) GetStoryLine(_ context.Context, input GetStoryLineInput) (*GetStoryLineOutput, error) {
	line, ok := r.lines[input.LineID]
	if !ok {
		return &GetStoryLineOutput{}, nil
	}
	return &GetStoryLineOutput{Line: &line}, nil
}

func (r *inMemoryRepository) GetHealthEvent(_ context.Context, input GetHealthEventInput) (*GetHealthEventOutput, error) {
	event, ok := r.events[input.LineID]
	if !ok {
		return &GetHealthEventOutput{}, nil
	}
	return &GetHealthEventOutput{Event: &event}, nil
}

func (r *inMemoryRepository) GetNextLocation(_ context.Context, input GetNextLocationInput) (*GetNextLocationOutput, error) {
	target, ok := r.edges[edgeKey{locationID: input.LocationID, direction: input.Direction}]
	return &GetNextLocationOutput{LocationID: target, Found: ok}, nil
}

func (r *inMemoryRepository) GetLineRange(_ context.Context, input GetLineRangeInput) (*GetLineRangeOutput, error) {
	rng, ok := r.ranges[input.LocationID]
	if !ok {
		return &GetLineRangeOutput{}, nil
	}
	return &GetLineRangeOutput{Min: rng.min, Max: rng.max, Found: true}, nil
}
