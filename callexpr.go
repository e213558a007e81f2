// Package callexpr is the front end of a small S-expression language: it
// turns source text into tokens and tokens into a tree of call expressions
// and literals.
package callexpr

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xiam/callexpr/ast"
	"github.com/xiam/callexpr/lexer"
	"github.com/xiam/callexpr/parser"
)

// Version of the front end
const Version = "0.3.0"

// Reader parses programs read from an io.Reader
type Reader struct {
	r io.Reader
}

// Parse tokenizes and parses the given input
func Parse(in []byte) (*ast.Node, error) {
	r := NewReader(bytes.NewReader(in))
	return r.Parse()
}

// ParseString is like Parse but takes a string
func ParseString(s string) (*ast.Node, error) {
	return Parse([]byte(s))
}

// Tokenize returns the tokens within the given input
func Tokenize(in []byte) ([]lexer.Token, error) {
	return lexer.TokenizeBytes(in)
}

// NewReader creates a Reader on top of r
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Parse reads all of the underlying input and parses it. Lexing errors stop
// the pipeline before the parser runs.
func (r *Reader) Parse() (*ast.Node, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	tokens, err := lexer.TokenizeBytes(in)
	if err != nil {
		return nil, err
	}

	return parser.Parse(tokens)
}
