package parser

import (
	"github.com/xiam/callexpr/ast"
	"github.com/xiam/callexpr/lexer"
)

// Parser builds an AST out of a sequence of tokens
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New creates a parser over the given tokens
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes all the tokens and returns the root of the tree. No partial
// tree is returned on failure.
func (p *Parser) Parse() (*ast.Node, error) {
	return p.parseProgram()
}

func (p *Parser) curr() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) advance() {
	p.pos++
}

func (p *Parser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) parseProgram() (*ast.Node, error) {
	root := ast.NewProgram()

	for !p.done() {
		node, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := root.Push(node); err != nil {
			return nil, err
		}
	}

	return root, nil
}

func (p *Parser) parseExpression() (*ast.Node, error) {
	tok, ok := p.curr()
	if !ok {
		return nil, unexpectedEOF()
	}

	switch {
	case tok.Is(lexer.TokenNumber):
		p.advance()
		return ast.NewNumberLiteral(tok.Text()), nil

	case tok.Is(lexer.TokenString):
		p.advance()
		return ast.NewStringLiteral(tok.Text()), nil

	case tok.IsOpenParen():
		p.advance()
		return p.parseCallExpression()
	}

	return nil, unexpectedToken(tok)
}

// parseCallExpression expects the opening paren to be already consumed.
func (p *Parser) parseCallExpression() (*ast.Node, error) {
	// any token names the call, it is not required to be a name
	nameTok, ok := p.curr()
	if !ok {
		return nil, unexpectedEOF()
	}
	p.advance()

	call := ast.NewCallExpression(nameTok.Text())

	for {
		tok, ok := p.curr()
		if !ok {
			return nil, unexpectedEOF()
		}
		if tok.IsCloseParen() {
			break
		}

		param, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := call.Push(param); err != nil {
			return nil, err
		}
	}

	// closing paren
	p.advance()

	return call, nil
}

// Parse builds a tree out of the given tokens.
func Parse(tokens []lexer.Token) (*ast.Node, error) {
	return New(tokens).Parse()
}

// ParseBytes tokenizes and parses the given input.
func ParseBytes(in []byte) (*ast.Node, error) {
	tokens, err := lexer.TokenizeBytes(in)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}
