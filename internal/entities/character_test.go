package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-narrative/internal/entities"
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
)

type CharacterTestSuite struct {
	suite.Suite
	hero *entities.Protagonist
}

func TestCharacterSuite(t *testing.T) {
	suite.Run(t, new(CharacterTestSuite))
}

func (s *CharacterTestSuite) SetupTest() {
	s.hero = entities.NewProtagonist("Иван Петров")
}

func (s *CharacterTestSuite) TestNewProtagonistDefaults() {
	s.Equal(10, s.hero.HP)
	s.Equal(7, s.hero.XP)
	s.Equal(1, s.hero.LocationID)
	s.Equal(1, s.hero.LineID)
	s.Empty(s.hero.ShowInventory())
	s.NotNil(s.hero.ShowInventory())
}

func (s *CharacterTestSuite) TestTakeHitSurvives() {
	s.Require().NoError(s.hero.TakeHit(3))
	s.Equal(7, s.hero.HP)
}

func (s *CharacterTestSuite) TestTakeHitLethalKeepsComputedHP() {
	testCases := []struct {
		name   string
		damage int
		wantHP int
	}{
		{name: "exact", damage: 10, wantHP: 0},
		{name: "overkill", damage: 13, wantHP: -3},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			hero := entities.NewProtagonist("Иван Петров")

			err := hero.TakeHit(tc.damage)

			s.Require().Error(err)
			s.True(errors.IsCharacterDefeated(err))
			s.Equal(entities.ProtagonistDefeatedMessage, errors.GetMessage(err))
			s.Equal(tc.wantHP, hero.HP)
		})
	}
}

func (s *CharacterTestSuite) TestNegativeDamageHeals() {
	s.Require().NoError(s.hero.TakeHit(-2))
	s.Equal(12, s.hero.HP)
}

func (s *CharacterTestSuite) TestAdvanceXPAllowsNegative() {
	s.hero.AdvanceXP(-9)
	s.Equal(-2, s.hero.XP)
	s.hero.AdvanceXP(4)
	s.Equal(2, s.hero.XP)
}

func (s *CharacterTestSuite) TestInventoryOrderAndCounts() {
	s.hero.Take("Укол")
	s.hero.Take("Ключ")
	s.hero.Take("Укол")

	s.Equal([]string{"Укол", "Ключ"}, s.hero.ShowInventory())
	s.Equal(2, s.hero.Inventory.Count("Укол"))
}

func (s *CharacterTestSuite) TestGiveRemovesEntryAtZero() {
	nurse := &entities.NPC{Name: "Медсестра"}
	s.hero.Take("Укол")
	s.hero.Take("Ключ")

	s.Require().NoError(s.hero.Give(nurse, "Укол"))

	s.Equal([]string{"Ключ"}, s.hero.ShowInventory())
	s.Equal(0, s.hero.Inventory.Count("Укол"))
	s.Equal([]string{"Укол"}, nurse.Received())
}

func (s *CharacterTestSuite) TestGiveDecrementsStack() {
	nurse := &entities.NPC{Name: "Медсестра"}
	s.hero.Take("Укол")
	s.hero.Take("Укол")

	s.Require().NoError(s.hero.Give(nurse, "Укол"))

	s.Equal([]string{"Укол"}, s.hero.ShowInventory())
	s.Equal(1, s.hero.Inventory.Count("Укол"))
}

func (s *CharacterTestSuite) TestUseConsumesItemAndRestores() {
	s.Require().NoError(s.hero.TakeHit(3))
	s.hero.Take("Укол")
	s.hero.Take("Укол")

	s.Require().NoError(s.hero.Use("Укол"))

	s.Equal(entities.ProtagonistStartHP-3+entities.UseItemHP, s.hero.HP)
	s.Equal(entities.ProtagonistStartXP+entities.UseItemXP, s.hero.XP)
	s.Equal(1, s.hero.Inventory.Count("Укол"))

	s.Require().NoError(s.hero.Use("Укол"))
	s.Empty(s.hero.ShowInventory())
}

func (s *CharacterTestSuite) TestUseMissingItemChangesNothing() {
	err := s.hero.Use("Укол")
	s.True(errors.IsNotFound(err))
	s.Equal(entities.ProtagonistStartHP, s.hero.HP)
	s.Equal(entities.ProtagonistStartXP, s.hero.XP)
}

func (s *CharacterTestSuite) TestGiveMissingItem() {
	err := s.hero.Give(&entities.NPC{}, "Ключ")
	s.True(errors.IsNotFound(err))
}

func (s *CharacterTestSuite) TestAntagonist() {
	roman := entities.NewAntagonist("Роман")
	s.Equal(1, roman.HP)

	err := roman.TakeHit(roman.HP)

	s.True(errors.IsCharacterDefeated(err))
	s.Equal(0, roman.HP)
	s.Equal(entities.AntagonistDefeatedMessage, errors.GetMessage(err))
	s.Equal(entities.CharacterAntagonist, errors.GetMeta(err)["character"])
}

func (s *CharacterTestSuite) TestDialogueLineClassification() {
	linear := &entities.DialogueLine{ID: 1, OptionA: entities.Option{NextLineID: 2}}
	s.False(linear.IsFork())
	s.Equal(2, linear.NextLineID())

	last := &entities.DialogueLine{ID: 2}
	s.False(last.IsFork())
	s.Equal(0, last.NextLineID())

	fork := &entities.DialogueLine{ID: 3, OptionB: entities.Option{Text: "Уйти", NextLineID: 5}}
	s.True(fork.IsFork())
	s.Equal(0, fork.NextLineID())
}
