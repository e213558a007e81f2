package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string) Token {
	return Token{
		tt:     tt,
		lexeme: lexeme,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// IsOpenParen returns true if the token is "("
func (t Token) IsOpenParen() bool {
	return t.tt == TokenParen && t.lexeme == string(openParen)
}

// IsCloseParen returns true if the token is ")"
func (t Token) IsCloseParen() bool {
	return t.tt == TokenParen && t.lexeme == string(closeParen)
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q)", t.tt, t.lexeme)
}
