package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid TokenType = iota
	TokenParen             // Open or close parenthesis: "(" or ")"
	TokenNumber            // Decimal digits: [0-9]+
	TokenString            // Double quoted text, quotes stripped
	TokenName              // Letters
)

const (
	openParen  = '('
	closeParen = ')'
	quote      = '"'
)

var tokenNames = map[TokenType]string{
	TokenInvalid: "invalid",
	TokenParen:   "paren",
	TokenNumber:  "number",
	TokenString:  "string",
	TokenName:    "name",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isParen(r rune) bool {
	return r == openParen || r == closeParen
}

func isQuote(r rune) bool {
	return r == quote
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// only ASCII digits, "٣" and friends are rejected
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}
