package errors

import (
	"errors"
)

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsInvalidDirection checks if an error is an invalid direction error
func IsInvalidDirection(err error) bool {
	return GetCode(err) == CodeInvalidDirection
}

// IsCharacterDefeated checks if an error signals a defeated character
func IsCharacterDefeated(err error) bool {
	return GetCode(err) == CodeCharacterDefeated
}

// IsInvalidHeroName checks if an error is a hero name validation error
func IsInvalidHeroName(err error) bool {
	return GetCode(err) == CodeInvalidHeroName
}

// IsGameOver checks if an error was returned for a finished session
func IsGameOver(err error) bool {
	return GetCode(err) == CodeGameOver
}
