package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner(t *testing.T) {
	testCases := []string{
		``,

		`1`,

		`(add 1 2)`,

		`(add 1 (sub 4 3))`,

		`(concat "hello" "" "brave new world")`,

		`(foo
			bar 12
			"g
			hi"
		)`,

		`(print "😊" "(not a call)")`,

		"\t\r\n   \f",
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i])
		t.Logf("tokens: %v", tokens)

		assert.NotNil(t, tokens)
		assert.NoError(t, err)
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []Token
	}{
		{
			``,
			[]Token{},
		},
		{
			" \t\n\n  \t",
			[]Token{},
		},
		{
			`1 2`,
			[]Token{
				NewToken(TokenNumber, "1"),
				NewToken(TokenNumber, "2"),
			},
		},
		{
			`1a`,
			[]Token{
				NewToken(TokenNumber, "1"),
				NewToken(TokenName, "a"),
			},
		},
		{
			`abc123def`,
			[]Token{
				NewToken(TokenName, "abc"),
				NewToken(TokenNumber, "123"),
				NewToken(TokenName, "def"),
			},
		},
		{
			`"hello"`,
			[]Token{
				NewToken(TokenString, "hello"),
			},
		},
		{
			`""`,
			[]Token{
				NewToken(TokenString, ""),
			},
		},
		{
			`"a (b) 1"`,
			[]Token{
				NewToken(TokenString, "a (b) 1"),
			},
		},
		{
			"\"two\nlines\"",
			[]Token{
				NewToken(TokenString, "two\nlines"),
			},
		},
		{
			`()`,
			[]Token{
				NewToken(TokenParen, "("),
				NewToken(TokenParen, ")"),
			},
		},
		{
			`(add 22 (subtract 4 "x"))`,
			[]Token{
				NewToken(TokenParen, "("),
				NewToken(TokenName, "add"),
				NewToken(TokenNumber, "22"),
				NewToken(TokenParen, "("),
				NewToken(TokenName, "subtract"),
				NewToken(TokenNumber, "4"),
				NewToken(TokenString, "x"),
				NewToken(TokenParen, ")"),
				NewToken(TokenParen, ")"),
			},
		},
		{
			`(héllo 0042)`,
			[]Token{
				NewToken(TokenParen, "("),
				NewToken(TokenName, "héllo"),
				NewToken(TokenNumber, "0042"),
				NewToken(TokenParen, ")"),
			},
		},
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i].In)

		assert.NoError(t, err)
		assert.Equal(t, testCases[i].Out, tokens, "input: %q", testCases[i].In)
	}
}

func TestTokenizeErrors(t *testing.T) {
	testCases := []struct {
		In   string
		Err  error
		Char rune
		Pos  int
	}{
		{`@`, ErrUnexpectedCharacter, '@', 0},
		{`(add 1 -2)`, ErrUnexpectedCharacter, '-', 7},
		{`(add 1.5)`, ErrUnexpectedCharacter, '.', 6},
		{`(ñ ~)`, ErrUnexpectedCharacter, '~', 3},
		{`(print "hello)`, ErrUnterminatedString, '"', 7},
		{`"`, ErrUnterminatedString, '"', 0},
		{`"a" "b`, ErrUnterminatedString, '"', 4},
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i].In)

		assert.Nil(t, tokens)
		require.Error(t, err)
		assert.True(t, errors.Is(err, testCases[i].Err), "input: %q, got: %v", testCases[i].In, err)

		var lexErr *Error
		require.True(t, errors.As(err, &lexErr))
		assert.Equal(t, testCases[i].Char, lexErr.Char)
		assert.Equal(t, testCases[i].Pos, lexErr.Pos)
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := Tokenize(`(a @)`)
	assert.EqualError(t, err, `unexpected character '@' at position 3`)

	_, err = Tokenize(`(a "b`)
	assert.EqualError(t, err, `unterminated string starting at position 3`)
}

func TestTokenizeIsIdempotent(t *testing.T) {
	in := `(add 1 (mul 2 "three") four)`

	a, err := Tokenize(in)
	require.NoError(t, err)

	b, err := Tokenize(in)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, a, mustTokenizeBytes(t, []byte(in)))
}

func TestTokenString(t *testing.T) {
	tok := NewToken(TokenName, "add")
	assert.Equal(t, `(:name "add")`, tok.String())
	assert.True(t, tok.Is(TokenName))
	assert.False(t, tok.IsOpenParen())

	assert.True(t, NewToken(TokenParen, "(").IsOpenParen())
	assert.True(t, NewToken(TokenParen, ")").IsCloseParen())
	assert.Equal(t, "invalid", TokenType(99).String())
}

func mustTokenizeBytes(t *testing.T, in []byte) []Token {
	tokens, err := TokenizeBytes(in)
	require.NoError(t, err)
	return tokens
}
