package parser

import (
	"github.com/HicaroD/sexpc/internal/lexer/token"
)

type cursor struct {
	offset int
	tokens []*token.Token
}

func newCursor(tokens []*token.Token) *cursor {
	return &cursor{offset: 0, tokens: tokens}
}

// peek returns false once every token has been consumed.
func (cursor *cursor) peek() (*token.Token, bool) {
	if cursor.isOutOfBound() {
		return nil, false
	}
	return cursor.tokens[cursor.offset], true
}

func (cursor *cursor) next() (*token.Token, bool) {
	token, ok := cursor.peek()
	if ok {
		cursor.offset++
	}
	return token, ok
}

func (cursor *cursor) skip() {
	cursor.next()
}

func (cursor *cursor) isOutOfBound() bool {
	return cursor.offset >= len(cursor.tokens)
}
