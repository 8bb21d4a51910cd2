package corrector

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidWord is returned by ValidateWord for words the byte-indexed edit search cannot handle.
var ErrInvalidWord = errors.New("invalid word")

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// IsWord reports whether s is a non-empty run of a-z letters, the shape of every learned key.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// ValidateWord rejects query words containing non-ASCII bytes.
func ValidateWord(word string) error {
	if word == "" {
		return fmt.Errorf("%w: empty word", ErrInvalidWord)
	}
	if !isASCII(word) {
		return fmt.Errorf("%w: %q contains non-ASCII characters", ErrInvalidWord, word)
	}
	return nil
}
