package entities

import "time"

// Progress is what survives between sessions for one player: the hero's
// name and the resume marker.
type Progress struct {
	PlayerID   string    `json:"player_id"`
	HeroName   string    `json:"hero_name"`
	LineID     int       `json:"line_id"`
	LocationID int       `json:"location_id"`
	UpdatedAt  time.Time `json:"updated_at"`
}
