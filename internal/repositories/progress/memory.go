package progress

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-narrative/internal/entities"
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
	"github.com/KirkDiggler/rpg-narrative/internal/pkg/clock"
)

type memoryRepository struct {
	mu    sync.RWMutex
	store map[string]entities.Progress
	clock clock.Clock
}

// MemoryConfig contains configuration for the in-memory progress repository
type MemoryConfig struct {
	Clock clock.Clock
}

// NewMemory creates a process-local progress repository
func NewMemory(cfg *MemoryConfig) Repository {
	c := clock.New()
	if cfg != nil && cfg.Clock != nil {
		c = cfg.Clock
	}
	return &memoryRepository{
		store: make(map[string]entities.Progress),
		clock: c,
	}
}

func (r *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.store[input.PlayerID]
	if !ok {
		return nil, errors.NotFoundf("no progress for player %s", input.PlayerID)
	}
	return &GetOutput{Progress: &p}, nil
}

func (r *memoryRepository) SaveHeroName(_ context.Context, input SaveHeroNameInput) (*SaveHeroNameOutput, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.load(input.PlayerID)
	p.HeroName = input.HeroName
	p.UpdatedAt = r.clock.Now()
	r.store[input.PlayerID] = p

	return &SaveHeroNameOutput{Progress: &p}, nil
}

func (r *memoryRepository) SaveProgress(_ context.Context, input SaveProgressInput) (*SaveProgressOutput, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.load(input.PlayerID)
	p.LineID = input.LineID
	p.LocationID = input.LocationID
	p.UpdatedAt = r.clock.Now()
	r.store[input.PlayerID] = p

	return &SaveProgressOutput{Progress: &p}, nil
}

// load must be called with the write lock held
func (r *memoryRepository) load(playerID string) entities.Progress {
	p, ok := r.store[playerID]
	if !ok {
		p = entities.Progress{PlayerID: playerID, LineID: entities.StartLineID}
	}
	return p
}
