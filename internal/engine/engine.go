package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-narrative/internal/entities"
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
	"github.com/KirkDiggler/rpg-narrative/internal/repositories/story"
)

type engine struct {
	repo        story.Repository
	protagonist *entities.Protagonist
	antagonist  *entities.Antagonist
	rules       *Rules
	logger      *slog.Logger
}

// Config contains what one facade instance operates on
type Config struct {
	Repository  story.Repository
	Protagonist *entities.Protagonist
	Antagonist  *entities.Antagonist
	// Rules defaults to DefaultRules
	Rules  *Rules
	Logger *slog.Logger
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Repository == nil {
		vb.RequiredField("repository")
	}
	if cfg.Protagonist == nil {
		vb.RequiredField("protagonist")
	} else if cfg.Protagonist.Inventory == nil {
		vb.RequiredField("protagonist.inventory")
	}
	if cfg.Antagonist == nil {
		vb.RequiredField("antagonist")
	}
	return vb.Build()
}

// New creates a facade for one session
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rules := cfg.Rules
	if rules == nil {
		rules = DefaultRules()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &engine{
		repo:        cfg.Repository,
		protagonist: cfg.Protagonist,
		antagonist:  cfg.Antagonist,
		rules:       rules,
		logger:      logger,
	}, nil
}

func (e *engine) AdvanceDialogue(ctx context.Context, input *AdvanceDialogueInput) (*AdvanceDialogueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	p := e.protagonist
	lineID := input.LineID
	if lineID == e.rules.WeakenedLineID && (p.HP < e.rules.WeakenedHP || p.XP < e.rules.WeakenedXP) {
		lineID = e.rules.WeakenedRedirectLineID
	}

	lineOut, err := e.repo.GetStoryLine(ctx, story.GetStoryLineInput{LineID: lineID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get line %d", lineID)
	}

	if lineID != p.LineID {
		if _, err := e.ApplyCombatEvent(ctx, &ApplyCombatEventInput{LineID: lineID}); err != nil {
			return nil, err
		}
	}
	p.LineID = lineID

	out := &AdvanceDialogueOutput{ResolvedLineID: lineID}
	if lineOut.Line != nil {
		out.Line = e.render(lineOut.Line)
	}

	if e.rules.forcesLocation(lineID) {
		p.LocationID = e.rules.ForcedLocationID
	}
	if lineID == e.rules.ItemLineID {
		p.Take(e.rules.ItemName)
		e.logger.DebugContext(ctx, "item granted", "line_id", lineID, "item", e.rules.ItemName)
	}

	return out, nil
}

func (e *engine) ApplyCombatEvent(ctx context.Context, input *ApplyCombatEventInput) (*ApplyCombatEventOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	eventOut, err := e.repo.GetHealthEvent(ctx, story.GetHealthEventInput{LineID: input.LineID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get health event for line %d", input.LineID)
	}

	event := eventOut.Event
	if event == nil {
		if input.LineID != e.rules.AntagonistDefeatLineID {
			return &ApplyCombatEventOutput{}, nil
		}
		e.logger.DebugContext(ctx, "scripted antagonist defeat", "line_id", input.LineID)
		if err := e.antagonist.TakeHit(e.antagonist.HP); err != nil {
			return nil, err
		}
		return &ApplyCombatEventOutput{Applied: true}, nil
	}

	e.logger.DebugContext(ctx, "combat event",
		"line_id", input.LineID,
		"health", event.Health,
		"experience", event.Experience,
		"enemy_health", event.EnemyHealth)

	if event.Health != 0 {
		if err := e.protagonist.TakeHit(-event.Health); err != nil {
			return nil, err
		}
	}
	if event.Experience != 0 {
		e.protagonist.AdvanceXP(event.Experience)
	}
	if event.EnemyHealth != 0 {
		if err := e.antagonist.TakeHit(-event.EnemyHealth); err != nil {
			return nil, err
		}
	}

	return &ApplyCombatEventOutput{Applied: true}, nil
}

func (e *engine) CanAdvanceLocation(ctx context.Context) (bool, error) {
	locationID := e.protagonist.LocationID
	rng, err := e.repo.GetLineRange(ctx, story.GetLineRangeInput{LocationID: locationID})
	if err != nil {
		return false, errors.Wrapf(err, "failed to get line range for location %d", locationID)
	}
	if !rng.Found {
		return true, nil
	}
	// line ids and location ids share the numeric comparison on purpose
	return rng.Max >= locationID, nil
}

func (e *engine) Go(ctx context.Context, input *GoInput) (*GoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	p := e.protagonist
	next, err := e.repo.GetNextLocation(ctx, story.GetNextLocationInput{
		LocationID: p.LocationID,
		Direction:  input.Direction,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve direction %q", input.Direction)
	}
	if !next.Found {
		return nil, errors.InvalidDirectionf(p.LocationID, input.Direction)
	}

	rng, err := e.repo.GetLineRange(ctx, story.GetLineRangeInput{LocationID: next.LocationID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get line range for location %d", next.LocationID)
	}

	lineID := 0
	if rng.Found {
		lineID = rng.Min
	}
	if lineID == e.rules.WeakenedLineID && p.HP < e.rules.WeakenedHP && p.XP < e.rules.WeakenedXP {
		lineID = e.rules.WeakenedRedirectLineID
	}

	p.LocationID = next.LocationID
	p.LineID = lineID

	return &GoOutput{LocationID: next.LocationID, LineID: lineID}, nil
}

func (e *engine) GetCurrentLocation(ctx context.Context) (*GetCurrentLocationOutput, error) {
	locationID := e.protagonist.LocationID

	loc, err := e.repo.GetLocation(ctx, story.GetLocationInput{LocationID: locationID})
	if err != nil {
		return nil, err
	}
	dirs, err := e.repo.ListDirections(ctx, story.ListDirectionsInput{LocationID: locationID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list directions for location %d", locationID)
	}

	return &GetCurrentLocationOutput{
		LocationID:  loc.Location.ID,
		Name:        loc.Location.Name,
		Description: loc.Location.Description,
		Directions:  dirs.Directions,
	}, nil
}

func (e *engine) render(line *entities.DialogueLine) *DialogueView {
	view := &DialogueView{
		LineID:     line.ID,
		LocationID: line.LocationID,
		Text:       strings.ReplaceAll(line.Text, entities.NameSurnamePlaceholder, e.protagonist.Name),
		Fork:       line.IsFork(),
		NextLineID: line.NextLineID(),
	}
	if view.Fork {
		view.OptionA = line.OptionA.Text
		view.OptionB = line.OptionB.Text
		view.OptionANextLineID = line.OptionA.NextLineID
		view.OptionBNextLineID = line.OptionB.NextLineID
	}
	return view
}
