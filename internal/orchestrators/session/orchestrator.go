// Package session implements the per-player session registry that binds a
// protagonist, an antagonist and a story cursor to the story engine.
package session

//go:generate mockgen -destination=mock/mock_service.go -package=sessionmock github.com/KirkDiggler/rpg-narrative/internal/orchestrators/session Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-narrative/internal/engine"
	"github.com/KirkDiggler/rpg-narrative/internal/entities"
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
	"github.com/KirkDiggler/rpg-narrative/internal/metrics"
	"github.com/KirkDiggler/rpg-narrative/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-narrative/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-narrative/internal/repositories/progress"
	"github.com/KirkDiggler/rpg-narrative/internal/repositories/story"
)

// DefaultIdleTTL is how long an untouched session survives a sweep
const DefaultIdleTTL = 30 * time.Minute

// Reasons a session is removed
const (
	endReasonExit     = "exit"
	endReasonReplaced = "replaced"
	endReasonEvicted  = "evicted"
	endReasonShutdown = "shutdown"
)

// Service defines the operations the transport layer drives
type Service interface {
	// RegisterHero validates and stores a hero name and restarts the story
	// Returns errors.InvalidHeroName for a malformed name
	RegisterHero(ctx context.Context, input *RegisterHeroInput) (*RegisterHeroOutput, error)

	// CreateSession starts a session, resuming stored progress when the
	// player has any. A live session of the same player is saved and
	// replaced, and the new one resumes where it stood. A rejected create
	// leaves that session untouched.
	// Returns errors.InvalidHeroName when no valid hero name is available
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetStatus reports location, health and inventory
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)

	// Advance shows the line under the cursor or, once the dialogue is
	// exhausted, the location prompt
	Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error)

	// ChooseOption answers the pending fork
	// Returns errors.InvalidArgument when no fork is pending or the option
	// is not offered
	ChooseOption(ctx context.Context, input *ChooseOptionInput) (*ChooseOptionOutput, error)

	// Move walks along a direction. Blocked moves are an outcome, not an error.
	// Returns errors.InvalidDirection for an unknown direction
	Move(ctx context.Context, input *MoveInput) (*MoveOutput, error)

	// LocationPrompt lists the directions once the dialogue is exhausted
	LocationPrompt(ctx context.Context, input *LocationPromptInput) (*LocationPromptOutput, error)

	// GetInventory lists held items in pickup order
	GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)

	// GiveItem hands one item to a named NPC
	// Returns errors.NotFound when the item is not held
	GiveItem(ctx context.Context, input *GiveItemInput) (*GiveItemOutput, error)

	// UseItem consumes one held item to restore health and gain experience
	// Returns errors.NotFound when the item is not held
	UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error)

	// EndSession saves the resume marker and removes the session. It is the
	// only operation a finished game still accepts.
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// Sweep saves and removes sessions idle longer than the configured TTL
	Sweep(ctx context.Context) (*SweepOutput, error)

	// CloseAll saves and removes every live session
	CloseAll(ctx context.Context) (*SweepOutput, error)
}

// Config holds the dependencies for the session orchestrator
type Config struct {
	StoryRepo    story.Repository
	ProgressRepo progress.Repository
	IDGenerator  idgen.Generator
	// Clock defaults to the system clock
	Clock clock.Clock
	// Rules defaults to engine.DefaultRules
	Rules *engine.Rules
	// IdleTTL defaults to DefaultIdleTTL
	IdleTTL time.Duration
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.StoryRepo == nil {
		vb.RequiredField("StoryRepo")
	}
	if c.ProgressRepo == nil {
		vb.RequiredField("ProgressRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.IdleTTL < 0 {
		vb.Field("IdleTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	storyRepo    story.Repository
	progressRepo progress.Repository
	idGen        idgen.Generator
	clock        clock.Clock
	rules        *engine.Rules
	idleTTL      time.Duration
	metrics      *metrics.Metrics
	logger       *slog.Logger

	createMu sync.Mutex
	mu       sync.RWMutex
	sessions map[string]*session
	byPlayer map[string]string
}

// NewOrchestrator creates a session orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		storyRepo:    cfg.StoryRepo,
		progressRepo: cfg.ProgressRepo,
		idGen:        cfg.IDGenerator,
		clock:        cfg.Clock,
		rules:        cfg.Rules,
		idleTTL:      cfg.IdleTTL,
		metrics:      cfg.Metrics,
		logger:       cfg.Logger,
		sessions:     make(map[string]*session),
		byPlayer:     make(map[string]string),
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.rules == nil {
		o.rules = engine.DefaultRules()
	}
	if o.idleTTL == 0 {
		o.idleTTL = DefaultIdleTTL
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o, nil
}

func (o *orchestrator) RegisterHero(ctx context.Context, input *RegisterHeroInput) (*RegisterHeroOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	name, err := NormalizeHeroName(input.Name)
	if err != nil {
		return nil, err
	}

	if _, err := o.progressRepo.SaveHeroName(ctx, progress.SaveHeroNameInput{
		PlayerID: input.PlayerID,
		HeroName: name,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to save hero name")
	}

	if _, err := o.progressRepo.SaveProgress(ctx, progress.SaveProgressInput{
		PlayerID:   input.PlayerID,
		LineID:     entities.StartLineID,
		LocationID: entities.StartLocationID,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to reset progress")
	}

	o.logger.InfoContext(ctx, "hero registered", "player_id", input.PlayerID, "hero_name", name)

	return &RegisterHeroOutput{HeroName: name}, nil
}

func (o *orchestrator) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	// creates run one at a time so a player never ends up with two sessions
	o.createMu.Lock()
	defer o.createMu.Unlock()

	marker := entities.StartLineID
	locationID := 0
	heroName := input.HeroName
	savedName := ""

	// a live session of the same player is the freshest resume point. It
	// stays locked until the new session replaces it.
	var prev *session
	if input.PlayerID != "" {
		if live := o.playerSession(input.PlayerID); live != nil {
			live.mu.Lock()
			defer live.mu.Unlock()
			if !live.closed {
				prev = live
			}
		}
	}

	switch {
	case prev != nil:
		marker, locationID = prev.marker()
		savedName = prev.protagonist.Name
		if heroName == "" {
			heroName = savedName
		}
	case input.PlayerID != "":
		stored, err := o.progressRepo.Get(ctx, progress.GetInput{PlayerID: input.PlayerID})
		switch {
		case errors.IsNotFound(err):
		case err != nil:
			return nil, errors.Wrap(err, "failed to load progress")
		default:
			marker = stored.Progress.LineID
			locationID = stored.Progress.LocationID
			savedName = stored.Progress.HeroName
			if heroName == "" {
				heroName = savedName
			}
		}
	}

	name, err := NormalizeHeroName(heroName)
	if err != nil {
		return nil, err
	}

	// the protagonist keeps the start line as its last seen line, so the
	// line under the marker gets its event when it is shown
	protagonist := entities.NewProtagonist(name)
	switch {
	case locationID > 0:
		protagonist.LocationID = locationID
	case marker > 0:
		lineOut, err := o.storyRepo.GetStoryLine(ctx, story.GetStoryLineInput{LineID: marker})
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve resume line")
		}
		if lineOut.Line != nil {
			protagonist.LocationID = lineOut.Line.LocationID
		}
	}
	antagonist := entities.NewAntagonist("Роман")

	eng, err := engine.New(&engine.Config{
		Repository:  o.storyRepo,
		Protagonist: protagonist,
		Antagonist:  antagonist,
		Rules:       o.rules,
		Logger:      o.logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	s := &session{
		id:          o.idGen.Generate(),
		playerID:    input.PlayerID,
		protagonist: protagonist,
		antagonist:  antagonist,
		engine:      eng,
		npcs:        make(map[string]*entities.NPC),
		state:       StateAtDialogue,
		cursor:      marker,
		lastActive:  o.clock.Now(),
	}
	if marker == 0 {
		s.state = StateAtLocation
	}

	status, err := o.status(ctx, s)
	if err != nil {
		return nil, err
	}

	// a name typed at create time is what a later resume greets
	if s.playerID != "" && name != savedName {
		if _, err := o.progressRepo.SaveHeroName(ctx, progress.SaveHeroNameInput{
			PlayerID: s.playerID,
			HeroName: name,
		}); err != nil {
			return nil, errors.Wrap(err, "failed to save hero name")
		}
	}

	o.mu.Lock()
	o.sessions[s.id] = s
	if s.playerID != "" {
		o.byPlayer[s.playerID] = s.id
	}
	o.mu.Unlock()

	if prev != nil {
		line, location, err := o.save(ctx, prev)
		if err != nil {
			o.logger.WarnContext(ctx, "failed to save replaced session", "session_id", prev.id, "error", err)
		}
		o.unregister(ctx, prev, endReasonReplaced, line, location)
	}

	o.metrics.SessionStarted()
	o.logger.InfoContext(ctx, "session created",
		"session_id", s.id,
		"player_id", s.playerID,
		"line_id", marker,
		"location_id", protagonist.LocationID)

	return &CreateSessionOutput{SessionID: s.id, Status: status}, nil
}

func (o *orchestrator) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var status *Status
	err := o.withPlayableSession(input.SessionID, func(s *session) error {
		var err error
		status, err = o.status(ctx, s)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &GetStatusOutput{Status: status}, nil
}

func (o *orchestrator) Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var outcome *Outcome
	err := o.withPlayableSession(input.SessionID, func(s *session) error {
		var err error
		outcome, err = o.advance(ctx, s)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &AdvanceOutput{Outcome: outcome}, nil
}

func (o *orchestrator) ChooseOption(ctx context.Context, input *ChooseOptionInput) (*ChooseOptionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var outcome *Outcome
	err := o.withPlayableSession(input.SessionID, func(s *session) error {
		if s.state != StateChoosingFork || s.fork == nil {
			return errors.InvalidArgument("no choice is pending").WithMeta("state", string(s.state))
		}

		var text string
		var next int
		switch strings.ToUpper(strings.TrimSpace(input.Option)) {
		case OptionA:
			text, next = s.fork.OptionA, s.fork.OptionANextLineID
		case OptionB:
			text, next = s.fork.OptionB, s.fork.OptionBNextLineID
		default:
			return errors.InvalidArgumentf("option must be %s or %s, got %q", OptionA, OptionB, input.Option)
		}
		if text == "" {
			return errors.InvalidArgumentf("option %s is not offered on line %d", input.Option, s.fork.LineID)
		}

		o.logger.DebugContext(ctx, "option chosen",
			"session_id", s.id,
			"line_id", s.fork.LineID,
			"option", input.Option,
			"next_line_id", next)

		s.fork = nil
		s.cursor = next
		s.state = StateAtDialogue

		var err error
		outcome, err = o.advance(ctx, s)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &ChooseOptionOutput{Outcome: outcome}, nil
}

func (o *orchestrator) Move(ctx context.Context, input *MoveInput) (*MoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Direction) == "" {
		return nil, errors.InvalidArgument("direction is required")
	}

	var outcome *Outcome
	err := o.withPlayableSession(input.SessionID, func(s *session) error {
		if s.state != StateAtLocation {
			o.metrics.Move(metrics.MoveBlocked)
			outcome = &Outcome{Kind: OutcomeMovementBlocked, Message: MessageListenFirst}
			return nil
		}

		ok, err := s.engine.CanAdvanceLocation(ctx)
		if err != nil {
			return err
		}
		if !ok {
			o.metrics.Move(metrics.MoveBlocked)
			outcome = &Outcome{Kind: OutcomeMovementBlocked, Message: MessageCannotProceed}
			return nil
		}

		moved, err := s.engine.Go(ctx, &engine.GoInput{Direction: input.Direction})
		if errors.IsInvalidDirection(err) {
			o.metrics.Move(metrics.MoveInvalid)
			return err
		}
		if err != nil {
			return err
		}

		o.metrics.Move(metrics.MoveOK)
		o.logger.InfoContext(ctx, "protagonist moved",
			"session_id", s.id,
			"direction", input.Direction,
			"location_id", moved.LocationID,
			"line_id", moved.LineID)

		s.cursor = moved.LineID
		s.state = StateAtDialogue

		outcome, err = o.advance(ctx, s)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &MoveOutput{Outcome: outcome}, nil
}

func (o *orchestrator) LocationPrompt(ctx context.Context, input *LocationPromptInput) (*LocationPromptOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var outcome *Outcome
	err := o.withPlayableSession(input.SessionID, func(s *session) error {
		if s.state != StateAtLocation {
			outcome = &Outcome{Kind: OutcomeMovementBlocked, Message: MessageListenFirst}
			return nil
		}

		var err error
		outcome, err = o.locationOutcome(ctx, s)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &LocationPromptOutput{Outcome: outcome}, nil
}

func (o *orchestrator) GetInventory(_ context.Context, input *GetInventoryInput) (*GetInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var items []string
	err := o.withPlayableSession(input.SessionID, func(s *session) error {
		items = s.protagonist.ShowInventory()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &GetInventoryOutput{Items: items}, nil
}

func (o *orchestrator) GiveItem(ctx context.Context, input *GiveItemInput) (*GiveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("item", input.Item, vb)
	errors.ValidateRequired("receiver", input.Receiver, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var items []string
	err := o.withPlayableSession(input.SessionID, func(s *session) error {
		npc := s.npc(input.Receiver)
		if err := s.protagonist.Give(npc, input.Item); err != nil {
			return err
		}

		o.logger.InfoContext(ctx, "item given",
			"session_id", s.id,
			"item", input.Item,
			"receiver", npc.Name)

		items = s.protagonist.ShowInventory()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &GiveItemOutput{Items: items}, nil
}

func (o *orchestrator) UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Item) == "" {
		return nil, errors.InvalidArgument("item is required")
	}

	var out *UseItemOutput
	err := o.withPlayableSession(input.SessionID, func(s *session) error {
		if err := s.protagonist.Use(input.Item); err != nil {
			return err
		}

		o.logger.InfoContext(ctx, "item used",
			"session_id", s.id,
			"item", input.Item,
			"protagonist_hp", s.protagonist.HP,
			"protagonist_xp", s.protagonist.XP)

		out = &UseItemOutput{
			Items:         s.protagonist.ShowInventory(),
			ProtagonistHP: s.protagonist.HP,
			ProtagonistXP: s.protagonist.XP,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (o *orchestrator) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.lookup(input.SessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}

	line, location, err := o.close(ctx, s, endReasonExit)
	if err != nil {
		return nil, err
	}

	return &EndSessionOutput{ProgressMarker: line, LocationID: location}, nil
}

func (o *orchestrator) Sweep(ctx context.Context) (*SweepOutput, error) {
	now := o.clock.Now()
	return o.evict(ctx, endReasonEvicted, func(s *session) bool {
		return now.Sub(s.lastActive) >= o.idleTTL
	})
}

func (o *orchestrator) CloseAll(ctx context.Context) (*SweepOutput, error) {
	return o.evict(ctx, endReasonShutdown, func(*session) bool { return true })
}

// evict closes every session matching pick and keeps going past failures
func (o *orchestrator) evict(ctx context.Context, reason string, pick func(s *session) bool) (*SweepOutput, error) {
	o.mu.RLock()
	candidates := make([]*session, 0, len(o.sessions))
	for _, s := range o.sessions {
		candidates = append(candidates, s)
	}
	o.mu.RUnlock()

	out := &SweepOutput{Evicted: []string{}}
	var firstErr error

	for _, s := range candidates {
		s.mu.Lock()
		if s.closed || !pick(s) {
			s.mu.Unlock()
			continue
		}

		if _, _, err := o.close(ctx, s, reason); err != nil {
			o.logger.ErrorContext(ctx, "failed to close session", "session_id", s.id, "reason", reason, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			s.mu.Unlock()
			continue
		}
		out.Evicted = append(out.Evicted, s.id)
		s.mu.Unlock()
	}

	if len(out.Evicted) > 0 {
		o.logger.InfoContext(ctx, "sessions closed", "reason", reason, "count", len(out.Evicted))
	}

	return out, firstErr
}

// advance must be called with the session lock held
func (o *orchestrator) advance(ctx context.Context, s *session) (*Outcome, error) {
	switch s.state {
	case StateChoosingFork:
		return &Outcome{Kind: OutcomeDialogue, Dialogue: s.fork}, nil
	case StateAtLocation:
		return o.locationOutcome(ctx, s)
	}

	if s.cursor == 0 {
		s.state = StateAtLocation
		return o.locationOutcome(ctx, s)
	}

	out, err := s.engine.AdvanceDialogue(ctx, &engine.AdvanceDialogueInput{LineID: s.cursor})
	if err != nil {
		return o.defeatOrError(ctx, s, err)
	}

	view := out.Line
	if view == nil {
		s.cursor = 0
		s.state = StateAtLocation
		return o.locationOutcome(ctx, s)
	}

	o.metrics.LineShown()
	if view.Fork {
		s.cursor = view.LineID
		s.fork = view
		s.state = StateChoosingFork
		return &Outcome{Kind: OutcomeDialogue, Dialogue: view}, nil
	}

	s.cursor = view.NextLineID
	if s.cursor == 0 {
		s.state = StateAtLocation
	}
	return &Outcome{Kind: OutcomeDialogue, Dialogue: view}, nil
}

// defeatOrError turns a defeat into the terminal outcome. Defeat is only
// ever handled here.
func (o *orchestrator) defeatOrError(ctx context.Context, s *session, err error) (*Outcome, error) {
	if !errors.IsCharacterDefeated(err) {
		return nil, err
	}

	character, _ := errors.GetMeta(err)["character"].(string)
	message := errors.GetMessage(err)

	s.state = StateGameOver
	s.fork = nil
	s.gameOverMessage = message
	o.metrics.GameOver(character)
	o.logger.InfoContext(ctx, "game over",
		"session_id", s.id,
		"character", character,
		"protagonist_hp", s.protagonist.HP,
		"antagonist_hp", s.antagonist.HP)

	return &Outcome{Kind: OutcomeGameOver, Message: message}, nil
}

func (o *orchestrator) locationOutcome(ctx context.Context, s *session) (*Outcome, error) {
	loc, err := s.engine.GetCurrentLocation(ctx)
	if err != nil {
		return nil, err
	}
	return &Outcome{
		Kind: OutcomeLocation,
		Location: &LocationPrompt{
			LocationID:  loc.LocationID,
			Name:        loc.Name,
			Description: loc.Description,
			Directions:  loc.Directions,
		},
	}, nil
}

func (o *orchestrator) status(ctx context.Context, s *session) (*Status, error) {
	loc, err := s.engine.GetCurrentLocation(ctx)
	if err != nil {
		return nil, err
	}

	return &Status{
		SessionID:           s.id,
		PlayerID:            s.playerID,
		State:               s.state,
		HeroName:            s.protagonist.Name,
		LineID:              s.cursor,
		LocationID:          loc.LocationID,
		LocationName:        loc.Name,
		LocationDescription: loc.Description,
		Directions:          loc.Directions,
		ProtagonistHP:       s.protagonist.HP,
		ProtagonistXP:       s.protagonist.XP,
		AntagonistHP:        s.antagonist.HP,
		Inventory:           s.protagonist.ShowInventory(),
	}, nil
}

func (o *orchestrator) lookup(sessionID string) (*session, error) {
	if sessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.RLock()
	s, ok := o.sessions[sessionID]
	o.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("session %s not found", sessionID).WithMeta("session_id", sessionID)
	}
	return s, nil
}

// withPlayableSession runs fn under the session lock and rejects finished games
func (o *orchestrator) withPlayableSession(sessionID string, fn func(s *session) error) error {
	s, err := o.lookup(sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.NotFoundf("session %s not found", sessionID).WithMeta("session_id", sessionID)
	}
	if s.state == StateGameOver {
		return errors.GameOver(sessionID).WithMeta("message", s.gameOverMessage)
	}

	s.lastActive = o.clock.Now()
	return fn(s)
}

// close persists progress and unregisters s. Caller holds s.mu.
func (o *orchestrator) close(ctx context.Context, s *session, reason string) (int, int, error) {
	line, location, err := o.save(ctx, s)
	if err != nil {
		return 0, 0, err
	}
	o.unregister(ctx, s, reason, line, location)
	return line, location, nil
}

// save stores the resume marker of a player's session. Caller holds s.mu.
func (o *orchestrator) save(ctx context.Context, s *session) (int, int, error) {
	line, location := s.marker()
	if s.playerID == "" {
		return line, location, nil
	}

	if _, err := o.progressRepo.SaveProgress(ctx, progress.SaveProgressInput{
		PlayerID:   s.playerID,
		LineID:     line,
		LocationID: location,
	}); err != nil {
		return 0, 0, errors.Wrap(err, "failed to save progress")
	}
	return line, location, nil
}

// unregister closes s for good. Caller holds s.mu.
func (o *orchestrator) unregister(ctx context.Context, s *session, reason string, line, location int) {
	s.closed = true

	o.mu.Lock()
	delete(o.sessions, s.id)
	if s.playerID != "" && o.byPlayer[s.playerID] == s.id {
		delete(o.byPlayer, s.playerID)
	}
	o.mu.Unlock()

	o.metrics.SessionEnded(reason)
	o.logger.InfoContext(ctx, "session ended",
		"session_id", s.id,
		"player_id", s.playerID,
		"reason", reason,
		"line_id", line,
		"location_id", location)
}

// playerSession returns the registered session of a player, if any
func (o *orchestrator) playerSession(playerID string) *session {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.sessions[o.byPlayer[playerID]]
}
