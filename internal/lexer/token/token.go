package token

import "fmt"

type Token struct {
	Lexeme string
	Kind   Kind
	Pos    Pos
}

func New(lexeme string, kind Kind, position Pos) *Token {
	return &Token{Lexeme: lexeme, Kind: kind, Pos: position}
}

func (token *Token) IsOpenParen() bool {
	return token.Kind == PAREN && token.Lexeme == OPEN_PAREN
}

func (token *Token) IsCloseParen() bool {
	return token.Kind == PAREN && token.Lexeme == CLOSE_PAREN
}

func (token *Token) String() string {
	return fmt.Sprintf("%s:%s", token.Kind, token.Lexeme)
}
