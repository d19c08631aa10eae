package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-narrative/internal/errors"
	"github.com/KirkDiggler/rpg-narrative/internal/orchestrators/session"
)

// Request and response keys
const (
	KeyPlayerID  = "player_id"
	KeyHeroName  = "hero_name"
	KeyName      = "name"
	KeySessionID = "session_id"
	KeyOption    = "option"
	KeyDirection = "direction"
	KeyItem      = "item"
	KeyReceiver  = "receiver"
)

// HandlerConfig holds dependencies for the story handler
type HandlerConfig struct {
	SessionService session.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.SessionService == nil {
		return errors.InvalidArgument("session service is required")
	}
	return nil
}

// Handler implements StoryServiceServer on top of the session service
type Handler struct {
	sessionService session.Service
}

var _ StoryServiceServer = (*Handler)(nil)

// NewHandler creates a new story handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{sessionService: cfg.SessionService}, nil
}

// RegisterHero stores a hero name and restarts the player's story
func (h *Handler) RegisterHero(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID := stringField(req, KeyPlayerID)
	if playerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.sessionService.RegisterHero(ctx, &session.RegisterHeroInput{
		PlayerID: playerID,
		Name:     stringField(req, KeyName),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{KeyHeroName: out.HeroName})
}

// CreateSession starts or resumes a session
func (h *Handler) CreateSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.sessionService.CreateSession(ctx, &session.CreateSessionInput{
		PlayerID: stringField(req, KeyPlayerID),
		HeroName: stringField(req, KeyHeroName),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{
		KeySessionID: out.SessionID,
		"status":     statusToMap(out.Status),
	})
}

// GetStatus reports the session snapshot
func (h *Handler) GetStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requireSessionID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.sessionService.GetStatus(ctx, &session.GetStatusInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(statusToMap(out.Status))
}

// Advance shows the next line or the location prompt
func (h *Handler) Advance(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requireSessionID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.sessionService.Advance(ctx, &session.AdvanceInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(outcomeToMap(out.Outcome))
}

// ChooseOption resolves a pending fork
func (h *Handler) ChooseOption(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requireSessionID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.sessionService.ChooseOption(ctx, &session.ChooseOptionInput{
		SessionID: sessionID,
		Option:    stringField(req, KeyOption),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(outcomeToMap(out.Outcome))
}

// Move walks the protagonist in a direction
func (h *Handler) Move(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requireSessionID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.sessionService.Move(ctx, &session.MoveInput{
		SessionID: sessionID,
		Direction: stringField(req, KeyDirection),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(outcomeToMap(out.Outcome))
}

// LocationPrompt lists directions once the dialogue is over
func (h *Handler) LocationPrompt(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requireSessionID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.sessionService.LocationPrompt(ctx, &session.LocationPromptInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(outcomeToMap(out.Outcome))
}

// GetInventory lists held items
func (h *Handler) GetInventory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requireSessionID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.sessionService.GetInventory(ctx, &session.GetInventoryInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{"items": stringList(out.Items)})
}

// GiveItem hands an item to an NPC
func (h *Handler) GiveItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requireSessionID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.sessionService.GiveItem(ctx, &session.GiveItemInput{
		SessionID: sessionID,
		Item:      stringField(req, KeyItem),
		Receiver:  stringField(req, KeyReceiver),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{"items": stringList(out.Items)})
}

// UseItem consumes an item from the inventory
func (h *Handler) UseItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requireSessionID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.sessionService.UseItem(ctx, &session.UseItemInput{
		SessionID: sessionID,
		Item:      stringField(req, KeyItem),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{
		"items":          stringList(out.Items),
		"protagonist_hp": out.ProtagonistHP,
		"protagonist_xp": out.ProtagonistXP,
	})
}

// EndSession saves progress and closes the session
func (h *Handler) EndSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requireSessionID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.sessionService.EndSession(ctx, &session.EndSessionInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{
		"progress_marker": out.ProgressMarker,
		"location_id":     out.LocationID,
	})
}
