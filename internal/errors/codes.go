package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"

	// Story domain codes

	// CodeInvalidDirection is returned when a move names a direction that is
	// not connected from the protagonist's current location.
	CodeInvalidDirection Code = "INVALID_DIRECTION"
	// CodeCharacterDefeated is raised when a hit drops a character to hp <= 0.
	CodeCharacterDefeated Code = "CHARACTER_DEFEATED"
	// CodeInvalidHeroName is returned when a hero name fails validation.
	CodeInvalidHeroName Code = "INVALID_HERO_NAME"
	// CodeGameOver is returned for any non-exit operation on a finished session.
	CodeGameOver Code = "GAME_OVER"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
