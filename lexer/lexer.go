package lexer

type lexState func(*Lexer) lexState

const eof rune = -1

// New initializes a Lexer object over the given source text
func New(src string) *Lexer {
	return &Lexer{
		in:     []rune(src),
		buf:    []rune{},
		tokens: []Token{},
	}
}

// Lexer represents a lexical analyzer. A Lexer is not safe for concurrent
// use, but independent lexers share nothing.
type Lexer struct {
	in  []rune
	pos int

	buf    []rune
	tokens []Token

	lastErr error
}

// Scan reads the whole source and returns the tokens within it. On failure
// no tokens are returned.
func (lx *Lexer) Scan() ([]Token, error) {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr != nil {
		return nil, lx.lastErr
	}

	return lx.tokens, nil
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, NewToken(tt, string(lx.buf)))
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	if lx.pos >= len(lx.in) {
		return eof
	}
	return lx.in[lx.pos]
}

// next consumes the current rune and adds it to the lexeme being built.
func (lx *Lexer) next() rune {
	r := lx.peek()
	if r == eof {
		return eof
	}
	lx.pos++
	lx.buf = append(lx.buf, r)
	return r
}

// skip consumes the current rune without keeping it.
func (lx *Lexer) skip() {
	if lx.pos < len(lx.in) {
		lx.pos++
	}
}

func lexDefaultState(lx *Lexer) lexState {
	r := lx.peek()

	switch {
	case r == eof:
		return nil

	case isParen(r):
		lx.next()
		return lexEmit(TokenParen)

	case isWhitespace(r):
		lx.skip()
		return lexDefaultState

	case isDigit(r):
		return lexCollectStream(TokenNumber, isDigit)

	case isQuote(r):
		return lexString

	case isLetter(r):
		return lexCollectStream(TokenName, isLetter)

	default:
		return lexStateError(&Error{
			Err:  ErrUnexpectedCharacter,
			Char: r,
			Pos:  lx.pos,
		})
	}
}

func lexString(lx *Lexer) lexState {
	start := lx.pos

	// opening quote
	lx.skip()

	for {
		switch r := lx.peek(); {
		case r == eof:
			return lexStateError(&Error{
				Err:  ErrUnterminatedString,
				Char: quote,
				Pos:  start,
			})
		case isQuote(r):
			lx.skip()
			return lexEmit(TokenString)
		default:
			lx.next()
		}
	}
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexCollectStream(tt TokenType, accept func(rune) bool) lexState {
	return func(lx *Lexer) lexState {
		for accept(lx.peek()) {
			lx.next()
		}
		return lexEmit(tt)
	}
}

func lexStateError(err error) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes a source text and returns all the tokens within it, or an
// error if a token can't be identified.
func Tokenize(src string) ([]Token, error) {
	return New(src).Scan()
}

// TokenizeBytes is like Tokenize but takes an array of bytes.
func TokenizeBytes(in []byte) ([]Token, error) {
	return Tokenize(string(in))
}
