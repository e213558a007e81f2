package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedString  = errors.New("unterminated string")
)

// Error describes a scanning failure. Pos is the zero-based rune offset where
// the failure was detected.
type Error struct {
	Err  error
	Char rune
	Pos  int
}

func (e *Error) Error() string {
	if errors.Is(e.Err, ErrUnexpectedCharacter) {
		return fmt.Sprintf("%v %q at position %d", e.Err, e.Char, e.Pos)
	}
	return fmt.Sprintf("%v starting at position %d", e.Err, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}
