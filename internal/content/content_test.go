package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-narrative/internal/content"
	"github.com/KirkDiggler/rpg-narrative/internal/entities"
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
)

const smallStory = `
locations:
  - id: 1
    name: Hall
    description: A quiet hall
    directions:
      - label: north
        to: 2
  - id: 2
    name: Yard
lines:
  - id: 1
    location: 1
    text: Hello, {name_surname}
    next: 2
  - id: 2
    location: 1
    text: Pick one
    option_a:
      text: Left
      next: 3
    option_b:
      text: Right
  - id: 3
    location: 2
    text: The end
events:
  - line: 3
    health: -2
    experience: 1
    enemy_health: -1
`

type ContentTestSuite struct {
	suite.Suite
}

func TestContentSuite(t *testing.T) {
	suite.Run(t, new(ContentTestSuite))
}

func (s *ContentTestSuite) TestParse() {
	story, err := content.Parse([]byte(smallStory))
	s.Require().NoError(err)

	s.Len(story.Locations, 2)
	s.Equal(entities.Location{ID: 1, Name: "Hall", Description: "A quiet hall"}, story.Locations[0])
	s.Equal([]entities.Connection{{LocationID: 1, Direction: "north", TargetLocationID: 2}}, story.Connections)

	s.Require().Len(story.Lines, 3)
	linear := story.Lines[0]
	s.False(linear.IsFork())
	s.Equal(2, linear.NextLineID())

	fork := story.Lines[1]
	s.True(fork.IsFork())
	s.Equal(entities.Option{Text: "Left", NextLineID: 3}, fork.OptionA)
	s.Equal(entities.Option{Text: "Right"}, fork.OptionB)

	s.Equal([]*entities.HealthEvent{{LineID: 3, Health: -2, Experience: 1, EnemyHealth: -1}}, story.Events)
}

func (s *ContentTestSuite) TestParseRejectsBrokenReferences() {
	testCases := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name:  "no locations",
			doc:   "lines: []",
			field: "locations",
		},
		{
			name: "unknown direction target",
			doc: `
locations:
  - id: 1
    name: Hall
    directions:
      - label: north
        to: 7
`,
			field: "locations[0].directions[0].to",
		},
		{
			name: "duplicate direction label",
			doc: `
locations:
  - id: 1
    name: Hall
    directions:
      - label: north
        to: 1
      - label: north
        to: 1
`,
			field: "locations[0].directions[1].label",
		},
		{
			name: "dangling next line",
			doc: `
locations:
  - id: 1
    name: Hall
lines:
  - id: 1
    location: 1
    text: Hi
    next: 9
`,
			field: "lines[0].next",
		},
		{
			name: "duplicate line id",
			doc: `
locations:
  - id: 1
    name: Hall
lines:
  - id: 1
    location: 1
    text: Hi
  - id: 1
    location: 1
    text: Again
`,
			field: "lines[1].id",
		},
		{
			name: "event for unknown line",
			doc: `
locations:
  - id: 1
    name: Hall
events:
  - line: 4
    health: -1
`,
			field: "events[0].line",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := content.Parse([]byte(tc.doc))

			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			fields, ok := errors.GetMeta(err)["validation_errors"].(map[string]any)
			s.Require().True(ok)
			s.Contains(fields, tc.field)
		})
	}
}

func (s *ContentTestSuite) TestParseRejectsMalformedYAML() {
	_, err := content.Parse([]byte("locations: ["))
	s.True(errors.IsInvalidArgument(err))
}

func (s *ContentTestSuite) TestLoad() {
	path := filepath.Join(s.T().TempDir(), "story.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(smallStory), 0o600))

	story, err := content.Load(path)
	s.Require().NoError(err)
	s.Len(story.Lines, 3)
}

func (s *ContentTestSuite) TestLoadMissingFile() {
	_, err := content.Load(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.True(errors.IsNotFound(err))
}

func (s *ContentTestSuite) TestDefaultStoryCarriesScriptedScenes() {
	story, err := content.Default()
	s.Require().NoError(err)

	lines := make(map[int]*entities.DialogueLine, len(story.Lines))
	for _, line := range story.Lines {
		lines[line.ID] = line
	}
	events := make(map[int]bool, len(story.Events))
	for _, event := range story.Events {
		events[event.LineID] = true
	}

	for _, id := range []int{1, 20, 25, 27, 29, 51, 59} {
		s.Contains(lines, id)
	}
	s.Equal(9, lines[51].LocationID)
	s.Equal(9, lines[59].LocationID)
	s.Contains(lines[1].Text, entities.NameSurnamePlaceholder)
	s.False(events[59], "line 59 is the scripted antagonist defeat and must not carry an event")
}
