package entities

import (
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
)

// Starting values for a new game
const (
	ProtagonistStartHP = 10
	ProtagonistStartXP = 7
	AntagonistStartHP  = 1
	StartLocationID    = 1
	StartLineID        = 1
)

// Using an inventory item restores hp and teaches something
const (
	UseItemHP = 2
	UseItemXP = 2
)

// Character kinds reported in defeat metadata
const (
	CharacterProtagonist = "protagonist"
	CharacterAntagonist  = "antagonist"
)

// End-of-game narrative shown when a character falls
const (
	ProtagonistDefeatedMessage = "Сожалеем, но вы умерли. 💔\n\nКонец игры"
	AntagonistDefeatedMessage  = "Сожалеем, но ваш пациент не выжил. 💔😢\n\nКонец игры"
)

// Receiver is anything that can be handed an item by the protagonist
type Receiver interface {
	Receive(item string)
}

// Protagonist is the player's hero
type Protagonist struct {
	Name       string
	HP         int
	XP         int
	LocationID int
	LineID     int
	Inventory  *Inventory
}

// NewProtagonist creates a hero at the start of the story
func NewProtagonist(name string) *Protagonist {
	return &Protagonist{
		Name:       name,
		HP:         ProtagonistStartHP,
		XP:         ProtagonistStartXP,
		LocationID: StartLocationID,
		LineID:     StartLineID,
		Inventory:  NewInventory(),
	}
}

// TakeHit subtracts damage from hp. When hp drops to zero or below it
// returns a CharacterDefeated error and hp keeps the computed value.
func (p *Protagonist) TakeHit(damage int) error {
	p.HP -= damage
	if p.HP <= 0 {
		return errors.CharacterDefeated(CharacterProtagonist, p.HP, ProtagonistDefeatedMessage)
	}
	return nil
}

// Heal adds hp
func (p *Protagonist) Heal(value int) {
	p.HP += value
}

// AdvanceXP adds delta to xp. Negative deltas are allowed.
func (p *Protagonist) AdvanceXP(delta int) {
	p.XP += delta
}

// Take puts an item into the inventory
func (p *Protagonist) Take(item string) {
	p.Inventory.Add(item)
}

// Give hands one item to npc
func (p *Protagonist) Give(npc Receiver, item string) error {
	if npc == nil {
		return errors.InvalidArgument("receiver is required")
	}
	if !p.Inventory.Remove(item) {
		return errors.NotFoundf("item %q is not in the inventory", item).WithMeta("item", item)
	}
	npc.Receive(item)
	return nil
}

// Use consumes one item, restoring UseItemHP and adding UseItemXP
func (p *Protagonist) Use(item string) error {
	if !p.Inventory.Remove(item) {
		return errors.NotFoundf("item %q is not in the inventory", item).WithMeta("item", item)
	}
	p.Heal(UseItemHP)
	p.AdvanceXP(UseItemXP)
	return nil
}

// ShowInventory lists held items in the order they were first taken
func (p *Protagonist) ShowInventory() []string {
	return p.Inventory.Items()
}

// Antagonist is the story's opponent. Only its health is tracked.
type Antagonist struct {
	Name string
	HP   int
}

// NewAntagonist creates the opponent with starting health
func NewAntagonist(name string) *Antagonist {
	return &Antagonist{
		Name: name,
		HP:   AntagonistStartHP,
	}
}

// TakeHit subtracts damage from hp, failing with CharacterDefeated at hp <= 0
func (a *Antagonist) TakeHit(damage int) error {
	a.HP -= damage
	if a.HP <= 0 {
		return errors.CharacterDefeated(CharacterAntagonist, a.HP, AntagonistDefeatedMessage)
	}
	return nil
}

// NPC is a non-player character that can receive items
type NPC struct {
	Name     string
	received []string
}

// Receive records an item handed over by the protagonist
func (n *NPC) Receive(item string) {
	n.received = append(n.received, item)
}

// Received lists the items this NPC was given
func (n *NPC) Received() []string {
	out := make([]string, len(n.received))
	copy(out, n.received)
	return out
}
