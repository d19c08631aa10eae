// Package entities provides the core data structures of the narrative engine.
package entities

// NameSurnamePlaceholder is replaced with the protagonist's name when a
// dialogue line is rendered.
const NameSurnamePlaceholder = "{name_surname}"

// Location is a node of the movement graph. Immutable once loaded.
type Location struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Connection is a directed, labeled edge between two locations. Direction
// labels are unique per source location.
type Connection struct {
	LocationID       int    `json:"location_id"`
	Direction        string `json:"direction"`
	TargetLocationID int    `json:"target_location_id"`
}

// Option is one branch of a dialogue line. An empty Text means the option is
// absent; NextLineID 0 means there is no follow-up line.
type Option struct {
	Text       string `json:"text,omitempty"`
	NextLineID int    `json:"next_line_id,omitempty"`
}

// Present reports whether the option carries text to offer the player
func (o Option) Present() bool {
	return o.Text != ""
}

// DialogueLine is one unit of narrative text. Line ids form a single global
// numbering space shared by all locations.
//
// A line with neither option text present is linear and continues with
// OptionA.NextLineID; any option text makes it a fork.
type DialogueLine struct {
	ID         int    `json:"id"`
	LocationID int    `json:"location_id"`
	Text       string `json:"text"`
	OptionA    Option `json:"option_a"`
	OptionB    Option `json:"option_b"`
}

// IsFork reports whether the player has to pick an option
func (l *DialogueLine) IsFork() bool {
	return l.OptionA.Present() || l.OptionB.Present()
}

// NextLineID returns the line a linear line continues with, 0 when the
// dialogue at this location is exhausted.
func (l *DialogueLine) NextLineID() int {
	if l.IsFork() {
		return 0
	}
	return l.OptionA.NextLineID
}

// HealthEvent is the scripted combat effect of a dialogue line. Health and
// EnemyHealth are hp deltas, so a hit is stored as a negative number.
type HealthEvent struct {
	LineID      int `json:"line_id"`
	Health      int `json:"health"`
	Experience  int `json:"experience"`
	EnemyHealth int `json:"enemy_health"`
}
