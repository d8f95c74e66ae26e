package lexer

import (
	"github.com/HicaroD/sexpc/internal/diagnostics"
	"github.com/HicaroD/sexpc/internal/lexer/token"
)

// Policy decides what happens when the lexer meets a character that cannot
// start a token.
type Policy int

const (
	// Stop scanning and keep the tokens read so far.
	TRUNCATE Policy = iota
	// Fail with a *diagnostics.LexError.
	STRICT
)

func (policy Policy) String() string {
	switch policy {
	case TRUNCATE:
		return "truncate"
	case STRICT:
		return "strict"
	}
	return "unknown"
}

type Whitespace int

const (
	// Only ' ' is skipped. Tabs and newlines are unrecognized characters.
	SPACE_ONLY Whitespace = iota
	ANY_WHITESPACE
)

func (ws Whitespace) String() string {
	switch ws {
	case SPACE_ONLY:
		return "space"
	case ANY_WHITESPACE:
		return "any"
	}
	return "unknown"
}

type Lexer struct {
	Filename   string
	Policy     Policy
	Whitespace Whitespace

	src    []byte
	offset int
	pos    token.Pos
}

func New(filename string, src []byte) *Lexer {
	lexer := new(Lexer)

	lexer.Filename = filename
	lexer.Policy = TRUNCATE
	lexer.Whitespace = SPACE_ONLY
	lexer.pos = token.NewPosition(filename, 1, 1)
	lexer.src = src
	lexer.offset = 0

	return lexer
}

// Tokenize scans src with the default policies, under which scanning never
// fails.
func Tokenize(src string) []*token.Token {
	tokens, _ := New("", []byte(src)).Tokenize()
	return tokens
}

func (lex *Lexer) Tokenize() ([]*token.Token, error) {
	tokens := make([]*token.Token, 0)

	for !lex.isAtEnd() {
		ch := lex.peekChar()
		switch {
		case ch == '(' || ch == ')':
			tokens = append(tokens, token.New(string(ch), token.PAREN, lex.pos))
			lex.nextChar()
		case lex.isWhitespace(ch):
			lex.nextChar()
		case isDigit(ch):
			pos := lex.pos
			number := lex.readWhile(isDigit)
			tokens = append(tokens, token.New(string(number), token.NUMBER, pos))
		case isLower(ch):
			pos := lex.pos
			name := lex.readWhile(isLower)
			tokens = append(tokens, token.New(string(name), token.NAME, pos))
		default:
			if lex.Policy == STRICT {
				return nil, &diagnostics.LexError{Pos: lex.pos, Char: ch}
			}
			// Everything after the first unrecognized character is dropped.
			return tokens, nil
		}
	}

	return tokens, nil
}

func (lex *Lexer) isWhitespace(ch byte) bool {
	if ch == ' ' {
		return true
	}
	if lex.Whitespace == ANY_WHITESPACE {
		return ch == '\t' || ch == '\r' || ch == '\n'
	}
	return false
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isLower(ch byte) bool { return ch >= 'a' && ch <= 'z' }

func (lex *Lexer) readWhile(isValid func(byte) bool) []byte {
	start := lex.offset
	for !lex.isAtEnd() && isValid(lex.peekChar()) {
		lex.nextChar()
	}
	return lex.src[start:lex.offset]
}

func (lex *Lexer) nextChar() byte {
	character := lex.src[lex.offset]
	lex.pos.Move(character)
	lex.offset++
	return character
}

func (lex *Lexer) peekChar() byte {
	return lex.src[lex.offset]
}

func (lex *Lexer) isAtEnd() bool {
	return lex.offset >= len(lex.src)
}
