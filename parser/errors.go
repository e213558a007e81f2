package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/callexpr/lexer"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnexpectedToken = errors.New("unexpected token")
)

// Error describes a parsing failure. Token is the offending token, it is only
// meaningful when Err is ErrUnexpectedToken.
type Error struct {
	Err   error
	Token lexer.Token
}

func (e *Error) Error() string {
	if errors.Is(e.Err, ErrUnexpectedToken) {
		return fmt.Sprintf("%v: %v", e.Err, e.Token)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsIncomplete returns true if err was caused by the input ending before an
// expression was closed, which means that more input could fix it.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrUnexpectedEOF)
}

func unexpectedToken(tok lexer.Token) error {
	return &Error{Err: ErrUnexpectedToken, Token: tok}
}

func unexpectedEOF() error {
	return &Error{Err: ErrUnexpectedEOF}
}
