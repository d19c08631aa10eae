package session

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-narrative/internal/errors"
)

var heroNamePattern = regexp.MustCompile(`^[A-Za-zА-Яа-яЁё]{2,}\s+[A-Za-zА-Яа-яЁё]{2,}$`)

// NormalizeHeroName validates a "Name Surname" pair and capitalizes both words
func NormalizeHeroName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if !heroNamePattern.MatchString(trimmed) {
		return "", errors.InvalidHeroName(name)
	}

	words := strings.Fields(trimmed)
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " "), nil
}

func capitalize(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
}
