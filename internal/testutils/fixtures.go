package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-narrative/internal/content"
	"github.com/KirkDiggler/rpg-narrative/internal/repositories/story"
)

// Hero names used across session level tests
const (
	TestHeroName      = "Иван Петров"
	TestOtherHeroName = "Анна Смирнова"
)

// TestStoryYAML is a small story that reaches every session branch: a fork
// offering only option A and costing some health, the item line, a
// location nobody can leave, a lethal event and the scripted antagonist
// defeat.
const TestStoryYAML = `
locations:
  - id: 1
    name: Холл
    description: Светло
    directions:
      - label: На крышу
        to: 100
      - label: В подвал
        to: 2
  - id: 2
    name: Подвал
    description: Темно
    directions:
      - label: В холл
        to: 1
  - id: 100
    name: Крыша
    description: Ветер
    directions:
      - label: Вниз
        to: 1
lines:
  - id: 1
    location: 1
    text: Здравствуйте, {name_surname}
    next: 2
  - id: 2
    location: 1
    text: Куда дальше?
    option_a:
      text: Взять укол
      next: 20
  - id: 20
    location: 1
    text: Укол в кармане
  - id: 30
    location: 2
    text: В подвале сыро
    option_a:
      text: Шагнуть в темноту
      next: 31
    option_b:
      text: Позвать Романа
      next: 59
  - id: 31
    location: 2
    text: Вы падаете с лестницы
  - id: 59
    location: 2
    text: Роман не отвечает
  - id: 60
    location: 100
    text: Ветер сбивает с ног
events:
  - line: 2
    health: -3
  - line: 31
    health: -20
`

// CreateTestStory parses TestStoryYAML
func CreateTestStory(t *testing.T) *content.Story {
	t.Helper()

	doc, err := content.Parse([]byte(TestStoryYAML))
	require.NoError(t, err)
	return doc
}

// CreateTestStoryRepository serves TestStoryYAML from memory
func CreateTestStoryRepository(t *testing.T) story.Repository {
	t.Helper()

	repo, err := story.NewInMemory(&story.InMemoryConfig{Story: CreateTestStory(t)})
	require.NoError(t, err)
	return repo
}
