package engine

import "slices"

// Rules holds the scripted narrative branches of a story
type Rules struct {
	// WeakenedLineID is redirected to WeakenedRedirectLineID when the
	// protagonist is below WeakenedHP or WeakenedXP
	WeakenedLineID         int
	WeakenedRedirectLineID int
	WeakenedHP             int
	WeakenedXP             int

	// ItemLineID hands ItemName to the protagonist every time it resolves
	ItemLineID int
	ItemName   string

	// AntagonistDefeatLineID kills the antagonist when it has no event
	AntagonistDefeatLineID int

	// ForcedLocationLineIDs move the protagonist to ForcedLocationID
	ForcedLocationLineIDs []int
	ForcedLocationID      int
}

// DefaultRules returns the branches of the bundled hospital story
func DefaultRules() *Rules {
	return &Rules{
		WeakenedLineID:         51,
		WeakenedRedirectLineID: 29,
		WeakenedHP:             10,
		WeakenedXP:             5,
		ItemLineID:             20,
		ItemName:               "Укол",
		AntagonistDefeatLineID: 59,
		ForcedLocationLineIDs:  []int{25, 27, 29},
		ForcedLocationID:       9,
	}
}

func (r *Rules) forcesLocation(lineID int) bool {
	return slices.Contains(r.ForcedLocationLineIDs, lineID)
}
