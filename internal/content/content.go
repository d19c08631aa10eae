// Package content loads story documents (locations, dialogue lines and
// combat events) from YAML and validates their references.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-narrative/internal/entities"
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
)

//go:embed default.yaml
var defaultStory []byte

// Story is a validated content graph ready to back a story repository
type Story struct {
	Locations   []entities.Location
	Connections []entities.Connection
	Lines       []*entities.DialogueLine
	Events      []*entities.HealthEvent
}

type document struct {
	Locations []locationDoc `yaml:"locations"`
	Lines     []lineDoc     `yaml:"lines"`
	Events    []eventDoc    `yaml:"events"`
}

type locationDoc struct {
	ID          int            `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Directions  []directionDoc `yaml:"directions"`
}

type directionDoc struct {
	Label string `yaml:"label"`
	To    int    `yaml:"to"`
}

type lineDoc struct {
	ID       int        `yaml:"id"`
	Location int        `yaml:"location"`
	Text     string     `yaml:"text"`
	Next     int        `yaml:"next"`
	OptionA  *optionDoc `yaml:"option_a"`
	OptionB  *optionDoc `yaml:"option_b"`
}

type optionDoc struct {
	Text string `yaml:"text"`
	Next int    `yaml:"next"`
}

type eventDoc struct {
	Line        int `yaml:"line"`
	Health      int `yaml:"health"`
	Experience  int `yaml:"experience"`
	EnemyHealth int `yaml:"enemy_health"`
}

// Default returns the story embedded in the binary
func Default() (*Story, error) {
	return Parse(defaultStory)
}

// Load reads and parses the story document at path
func Load(path string) (*Story, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator supplied content path
	if os.IsNotExist(err) {
		return nil, errors.NotFoundf("story %s does not exist", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read story %s", path)
	}
	return Parse(data)
}

// Parse decodes a YAML story document and validates it
func Parse(data []byte) (*Story, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode story document")
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}

	return doc.toStory(), nil
}

func (d *document) validate() error {
	vb := errors.NewValidationBuilder()

	if len(d.Locations) == 0 {
		vb.RequiredField("locations")
	}

	locations := make(map[int]bool, len(d.Locations))
	for i, loc := range d.Locations {
		field := fmt.Sprintf("locations[%d]", i)
		errors.ValidatePositive(field+".id", loc.ID, vb)
		errors.ValidateRequired(field+".name", loc.Name, vb)
		if locations[loc.ID] {
			vb.Fieldf(field+".id", "duplicate location id %d", loc.ID)
		}
		locations[loc.ID] = true
	}

	for i, loc := range d.Locations {
		labels := make(map[string]bool, len(loc.Directions))
		for j, dir := range loc.Directions {
			field := fmt.Sprintf("locations[%d].directions[%d]", i, j)
			errors.ValidateRequired(field+".label", dir.Label, vb)
			if labels[dir.Label] {
				vb.Fieldf(field+".label", "duplicate direction %q", dir.Label)
			}
			labels[dir.Label] = true
			if !locations[dir.To] {
				vb.Fieldf(field+".to", "unknown location %d", dir.To)
			}
		}
	}

	lines := make(map[int]bool, len(d.Lines))
	for i, line := range d.Lines {
		field := fmt.Sprintf("lines[%d]", i)
		errors.ValidatePositive(field+".id", line.ID, vb)
		errors.ValidateRequired(field+".text", line.Text, vb)
		if lines[line.ID] {
			vb.Fieldf(field+".id", "duplicate line id %d", line.ID)
		}
		lines[line.ID] = true
		if !locations[line.Location] {
			vb.Fieldf(field+".location", "unknown location %d", line.Location)
		}
	}

	for i, line := range d.Lines {
		field := fmt.Sprintf("lines[%d]", i)
		fork := line.OptionA != nil || line.OptionB != nil
		if fork && line.Next != 0 {
			vb.Field(field+".next", "a line with options continues through its options")
		}
		if line.Next != 0 && !lines[line.Next] {
			vb.Fieldf(field+".next", "unknown line %d", line.Next)
		}
		for name, opt := range map[string]*optionDoc{"option_a": line.OptionA, "option_b": line.OptionB} {
			if opt == nil {
				continue
			}
			errors.ValidateRequired(field+"."+name+".text", opt.Text, vb)
			if opt.Next != 0 && !lines[opt.Next] {
				vb.Fieldf(field+"."+name+".next", "unknown line %d", opt.Next)
			}
		}
	}

	events := make(map[int]bool, len(d.Events))
	for i, event := range d.Events {
		field := fmt.Sprintf("events[%d].line", i)
		if events[event.Line] {
			vb.Fieldf(field, "duplicate event for line %d", event.Line)
		}
		events[event.Line] = true
		if !lines[event.Line] {
			vb.Fieldf(field, "unknown line %d", event.Line)
		}
	}

	return vb.Build()
}

func (d *document) toStory() *Story {
	story := &Story{
		Locations: make([]entities.Location, 0, len(d.Locations)),
		Lines:     make([]*entities.DialogueLine, 0, len(d.Lines)),
		Events:    make([]*entities.HealthEvent, 0, len(d.Events)),
	}

	for _, loc := range d.Locations {
		story.Locations = append(story.Locations, entities.Location{
			ID:          loc.ID,
			Name:        loc.Name,
			Description: loc.Description,
		})
		for _, dir := range loc.Directions {
			story.Connections = append(story.Connections, entities.Connection{
				LocationID:       loc.ID,
				Direction:        dir.Label,
				TargetLocationID: dir.To,
			})
		}
	}

	for _, doc := range d.Lines {
		line := &entities.DialogueLine{
			ID:         doc.ID,
			LocationID: doc.Location,
			Text:       doc.Text,
			OptionA:    entities.Option{NextLineID: doc.Next},
		}
		if doc.OptionA != nil {
			line.OptionA = entities.Option{Text: doc.OptionA.Text, NextLineID: doc.OptionA.Next}
		}
		if doc.OptionB != nil {
			line.OptionB = entities.Option{Text: doc.OptionB.Text, NextLineID: doc.OptionB.Next}
		}
		story.Lines = append(story.Lines, line)
	}
	sort.Slice(story.Lines, func(i, j int) bool { return story.Lines[i].ID < story.Lines[j].ID })

	for _, event := range d.Events {
		story.Events = append(story.Events, &entities.HealthEvent{
			LineID:      event.Line,
			Health:      event.Health,
			Experience:  event.Experience,
			EnemyHealth: event.EnemyHealth,
		})
	}

	return story
}
