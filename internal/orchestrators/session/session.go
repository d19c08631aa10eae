package session

import (
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-narrative/internal/engine"
	"github.com/KirkDiggler/rpg-narrative/internal/entities"
)

// session is one player's live game. mu serializes every operation on it.
type session struct {
	mu sync.Mutex

	id       string
	playerID string

	protagonist *entities.Protagonist
	antagonist  *entities.Antagonist
	engine      engine.Engine
	npcs        map[string]*entities.NPC

	state  State
	cursor int
	// fork is the pending choice while in StateChoosingFork
	fork            *engine.DialogueView
	gameOverMessage string

	lastActive time.Time
	closed     bool
}

func (s *session) npc(name string) *entities.NPC {
	n, ok := s.npcs[name]
	if !ok {
		n = &entities.NPC{Name: name}
		s.npcs[name] = n
	}
	return n
}

// marker is the resume point saved when the session ends: the cursor, which
// is 0 at location selection. A finished game restarts from the beginning.
func (s *session) marker() (lineID, locationID int) {
	if s.state == StateGameOver {
		return entities.StartLineID, entities.StartLocationID
	}
	return s.cursor, s.protagonist.LocationID
}
