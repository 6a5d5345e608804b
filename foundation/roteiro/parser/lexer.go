// File: lexer.go
// Title: Itinerary Lexical Analyzer
// Description: Converts itinerary source text into tokens. Keywords are
//              case-sensitive and include accented forms (país, até).
//              Column positions count runes, not bytes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// TokenType represents the kind of a lexical token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdentifier
	TokenDestino
	TokenPais
	TokenViagem
	TokenDe
	TokenAte
	TokenBudget
	TokenUSD
	TokenDia
	TokenPara
	TokenCada
	TokenIn
	TokenAtividade
	TokenCusto
	TokenDate
	TokenInteger
	TokenString
	TokenRange      // ..
	TokenLeftBrace  // {
	TokenRightBrace // }
	TokenComma      // ,
	TokenAssign     // =
)

var tokenNames = map[TokenType]string{
	TokenEOF:        "EOF",
	TokenIdentifier: "IDENTIFIER",
	TokenDestino:    "DESTINO",
	TokenPais:       "PAIS",
	TokenViagem:     "VIAGEM",
	TokenDe:         "DE",
	TokenAte:        "ATE",
	TokenBudget:     "BUDGET",
	TokenUSD:        "USD",
	TokenDia:        "DIA",
	TokenPara:       "PARA",
	TokenCada:       "CADA",
	TokenIn:         "IN",
	TokenAtividade:  "ATIVIDADE",
	TokenCusto:      "CUSTO",
	TokenDate:       "DATE",
	TokenInteger:    "INTEGER",
	TokenString:     "STRING",
	TokenRange:      "RANGE",
	TokenLeftBrace:  "LBRACE",
	TokenRightBrace: "RBRACE",
	TokenComma:      "COMMA",
	TokenAssign:     "ASSIGN",
}

// String returns the upper-case token kind name used in error messages
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// keywords maps reserved words to their token types. Lookup is exact, so
// "Destino" and "usd" lex as identifiers.
var keywords = map[string]TokenType{
	"destino":   TokenDestino,
	"país":      TokenPais,
	"viagem":    TokenViagem,
	"de":        TokenDe,
	"até":       TokenAte,
	"budget":    TokenBudget,
	"USD":       TokenUSD,
	"dia":       TokenDia,
	"para":      TokenPara,
	"cada":      TokenCada,
	"in":        TokenIn,
	"atividade": TokenAtividade,
	"custo":     TokenCusto,
}

var symbols = map[rune]TokenType{
	'{': TokenLeftBrace,
	'}': TokenRightBrace,
	',': TokenComma,
	'=': TokenAssign,
}

// LookupIdent returns the keyword token type for word, or TokenIdentifier
func LookupIdent(word string) TokenType {
	if tokenType, ok := keywords[word]; ok {
		return tokenType
	}
	return TokenIdentifier
}

// Token represents a lexical token
type Token struct {
	Type   TokenType
	Value  string // keyword or identifier text, string content, date or digits
	Int    int64  // parsed value for TokenInteger
	Offset int    // byte offset of the first character
	Line   int
	Column int
}

// String returns a human readable representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenString, TokenIdentifier:
		return fmt.Sprintf("%s %q", t.Type, t.Value)
	case TokenInteger, TokenDate:
		return fmt.Sprintf("%s %s", t.Type, t.Value)
	default:
		return t.Type.String()
	}
}

// LexError reports a character the lexer cannot start a token with, or an
// integer literal that does not fit in 64 bits
type LexError struct {
	Char   rune
	Text   string
	Reason string
	Offset int
	Line   int
	Column int
}

// Error implements the error interface
func (e *LexError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("lexical error at line %d, column %d: %s %q", e.Line, e.Column, e.Reason, e.Text)
	}
	return fmt.Sprintf("lexical error at line %d, column %d: unexpected character %q", e.Line, e.Column, e.Char)
}

// Lexer performs lexical analysis of itinerary source. After the end of
// input every call to NextToken returns an EOF token.
type Lexer struct {
	input  string
	pos    int // byte offset of the next unread rune
	line   int
	column int
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

// Tokenize lexes the whole input. The returned slice ends with the EOF
// token unless an error stopped the scan.
func Tokenize(input string) ([]Token, error) {
	lexer := NewLexer(input)
	var tokens []Token
	for {
		tok, err := lexer.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	tok := Token{Offset: l.pos, Line: l.line, Column: l.column}
	if l.pos >= len(l.input) {
		tok.Type = TokenEOF
		return tok, nil
	}

	ch := l.peek()
	switch {
	case unicode.IsLetter(ch):
		tok.Value = l.readWord()
		tok.Type = LookupIdent(tok.Value)
		return tok, nil

	case isDigit(ch):
		if l.atDate() {
			tok.Type = TokenDate
			tok.Value = l.input[l.pos : l.pos+10]
			l.skip(10)
			return tok, nil
		}
		tok.Value = l.readDigits()
		n, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return Token{}, &LexError{
				Char:   ch,
				Text:   tok.Value,
				Reason: "integer literal out of range",
				Offset: tok.Offset,
				Line:   tok.Line,
				Column: tok.Column,
			}
		}
		tok.Type = TokenInteger
		tok.Int = n
		return tok, nil

	case ch == '"':
		l.advance()
		tok.Type = TokenString
		tok.Value = l.readString()
		return tok, nil

	case ch == '.' && l.peekAt(1) == '.':
		l.skip(2)
		tok.Type = TokenRange
		tok.Value = ".."
		return tok, nil
	}

	if tokenType, ok := symbols[ch]; ok {
		l.advance()
		tok.Type = tokenType
		tok.Value = string(ch)
		return tok, nil
	}

	return Token{}, &LexError{
		Char:   ch,
		Offset: tok.Offset,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// peek returns the next unread rune without consuming it
func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

// peekAt returns the byte at pos+n, which is enough for ASCII lookahead
func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) skip(n int) {
	end := l.pos + n
	for l.pos < end && l.pos < len(l.input) {
		l.advance()
	}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

// readWord consumes a maximal run of letters
func (l *Lexer) readWord() string {
	start := l.pos
	for l.pos < len(l.input) && unicode.IsLetter(l.peek()) {
		l.advance()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) readDigits() string {
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.peek()) {
		l.advance()
	}
	return l.input[start:l.pos]
}

// readString consumes up to and including the closing quote and returns the
// text in between. A string left open at end of input takes the rest of the
// input. There are no escape sequences.
func (l *Lexer) readString() string {
	start := l.pos
	for l.pos < len(l.input) {
		if l.input[l.pos] == '"' {
			text := l.input[start:l.pos]
			l.advance()
			return text
		}
		l.advance()
	}
	return l.input[start:]
}

// atDate reports whether the next ten bytes have the shape YYYY-MM-DD.
// Characters after the tenth are not inspected.
func (l *Lexer) atDate() bool {
	if l.pos+10 > len(l.input) {
		return false
	}
	candidate := l.input[l.pos : l.pos+10]
	for i := 0; i < len(candidate); i++ {
		switch i {
		case 4, 7:
			if candidate[i] != '-' {
				return false
			}
		default:
			if !isDigitByte(candidate[i]) {
				return false
			}
		}
	}
	return true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
