// File: parser.go
// Title: Itinerary Recursive Descent Parser
// Description: Builds the itinerary AST from the token stream. Top-level
//              parsing is permissive (stray tokens become NoOp statements)
//              while day and loop bodies are strict.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/roteiro/foundation/core/error"
	mdwlog "github.com/msto63/roteiro/foundation/core/log"
	mdwast "github.com/msto63/roteiro/foundation/roteiro/ast"
)

// DefaultMaxInputLength is the input limit applied when Options leaves it 0
const DefaultMaxInputLength = 1 << 20

// Parser implements recursive descent parsing for itineraries. A Parser
// keeps per-parse state and must not be shared between goroutines.
type Parser struct {
	lexer   *Lexer
	current Token
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int

	// StrictTopLevel turns stray top-level tokens into syntax errors
	// instead of NoOp statements
	StrictTopLevel bool
}

// SyntaxError reports a token the grammar does not allow at its position
type SyntaxError struct {
	Expected []TokenType
	Found    Token
	Context  string
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("syntax error at line %d, column %d: expected %s, found %s",
		e.Found.Line, e.Found.Column, joinKinds(e.Expected), e.Found.Type)
	if e.Context != "" {
		msg += " in " + e.Context
	}
	return msg
}

func joinKinds(kinds []TokenType) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	if len(names) <= 1 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

var (
	statementKinds = []TokenType{TokenDestino, TokenViagem, TokenBudget, TokenDia, TokenPara}
	bodyKinds      = []TokenType{TokenAtividade, TokenCusto, TokenRightBrace}
)

// New creates a new itinerary parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.MaxInputLength < 0 {
		return nil, mdwerror.Newf("invalid maximum input length %d", opts.MaxInputLength).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parser.New")
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "roteiro-parser"),
		options: opts,
	}, nil
}

// Parse parses itinerary source and returns the program tree. The input is
// lexed as is; comments must already be stripped (see Preprocess).
func (p *Parser) Parse(input string) (*mdwast.Program, error) {
	if len(input) > p.options.MaxInputLength {
		return nil, mdwerror.Newf("input exceeds maximum length: %d > %d",
			len(input), p.options.MaxInputLength).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parser.Parse")
	}

	p.lexer = NewLexer(input)
	if err := p.advance(); err != nil {
		return nil, err
	}

	p.logger.Debug("Starting itinerary parsing", mdwlog.Fields{
		"length": len(input),
	})

	program := &mdwast.Program{Pos: mdwast.Position{Line: 1, Column: 1}}
	for p.current.Type != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			p.logger.Debug("Itinerary parsing failed", mdwlog.Fields{
				"error": err.Error(),
			})
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}

	p.logger.Debug("Itinerary parsing completed", mdwlog.Fields{
		"statements": len(program.Statements),
	})

	return program, nil
}

// advance loads the next token into current
func (p *Parser) advance() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.current = tok
	if p.logger.IsLevelEnabled(mdwlog.LevelTrace) {
		p.logger.Trace("Token", mdwlog.Fields{"token": tok.String(), "line": tok.Line, "column": tok.Column})
	}
	return nil
}

// eat consumes the current token if it has the expected type
func (p *Parser) eat(expected TokenType) (Token, error) {
	if p.current.Type != expected {
		return Token{}, &SyntaxError{Expected: []TokenType{expected}, Found: p.current}
	}
	tok := p.current
	if err := p.advance(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

func (p *Parser) position() mdwast.Position {
	return mdwast.Position{Line: p.current.Line, Column: p.current.Column, Offset: p.current.Offset}
}

// parseStatement dispatches on the current token
func (p *Parser) parseStatement() (mdwast.Node, error) {
	switch p.current.Type {
	case TokenDestino:
		return p.parseDestino()
	case TokenViagem:
		return p.parseViagem()
	case TokenBudget:
		return p.parseBudget()
	case TokenDia:
		return p.parseDia()
	case TokenPara:
		return p.parseLoop()
	}

	if p.options.StrictTopLevel {
		return nil, &SyntaxError{Expected: statementKinds, Found: p.current, Context: "top level"}
	}

	// Skip the token so the statement loop always makes progress
	skipped := p.current
	pos := p.position()
	p.logger.Warn("Skipping unexpected top-level token", mdwlog.Fields{
		"token":  skipped.String(),
		"line":   skipped.Line,
		"column": skipped.Column,
	})
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &mdwast.NoOp{Skipped: skipped.String(), Pos: pos}, nil
}

// destino STRING [ , país = STRING ]
func (p *Parser) parseDestino() (mdwast.Node, error) {
	pos := p.position()
	if _, err := p.eat(TokenDestino); err != nil {
		return nil, err
	}
	nome, err := p.eat(TokenString)
	if err != nil {
		return nil, err
	}

	node := &mdwast.DestinoDec{Nome: nome.Value, Pos: pos}
	if p.current.Type != TokenComma {
		return node, nil
	}

	for _, kind := range []TokenType{TokenComma, TokenPais, TokenAssign} {
		if _, err := p.eat(kind); err != nil {
			return nil, err
		}
	}
	pais, err := p.eat(TokenString)
	if err != nil {
		return nil, err
	}
	node.Pais = &pais.Value
	return node, nil
}

// viagem de DATE até DATE
func (p *Parser) parseViagem() (mdwast.Node, error) {
	pos := p.position()
	for _, kind := range []TokenType{TokenViagem, TokenDe} {
		if _, err := p.eat(kind); err != nil {
			return nil, err
		}
	}
	inicio, err := p.eat(TokenDate)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenAte); err != nil {
		return nil, err
	}
	fim, err := p.eat(TokenDate)
	if err != nil {
		return nil, err
	}
	return &mdwast.ViagemDec{Inicio: mdwast.Date(inicio.Value), Fim: mdwast.Date(fim.Value), Pos: pos}, nil
}

// budget INTEGER USD
func (p *Parser) parseBudget() (mdwast.Node, error) {
	pos := p.position()
	if _, err := p.eat(TokenBudget); err != nil {
		return nil, err
	}
	valor, err := p.eat(TokenInteger)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenUSD); err != nil {
		return nil, err
	}
	return &mdwast.BudgetDec{Valor: valor.Int, Pos: pos}, nil
}

// dia INTEGER { body }
func (p *Parser) parseDia() (mdwast.Node, error) {
	pos := p.position()
	if _, err := p.eat(TokenDia); err != nil {
		return nil, err
	}
	dia, err := p.eat(TokenInteger)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody("day body")
	if err != nil {
		return nil, err
	}
	return &mdwast.DiaBlock{Dia: dia.Int, Body: body, Pos: pos}, nil
}

// para cada dia in INTEGER .. INTEGER { body }
func (p *Parser) parseLoop() (mdwast.Node, error) {
	pos := p.position()
	for _, kind := range []TokenType{TokenPara, TokenCada, TokenDia, TokenIn} {
		if _, err := p.eat(kind); err != nil {
			return nil, err
		}
	}
	inicio, err := p.eat(TokenInteger)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenRange); err != nil {
		return nil, err
	}
	fim, err := p.eat(TokenInteger)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody("loop body")
	if err != nil {
		return nil, err
	}
	return &mdwast.LoopStmt{Inicio: inicio.Int, Fim: fim.Int, Body: body, Pos: pos}, nil
}

// parseBody parses { (atividade STRING | custo INTEGER USD)* }
func (p *Parser) parseBody(context string) ([]mdwast.Node, error) {
	if _, err := p.eat(TokenLeftBrace); err != nil {
		return nil, err
	}

	body := []mdwast.Node{}
	for p.current.Type != TokenRightBrace {
		pos := p.position()
		switch p.current.Type {
		case TokenAtividade:
			if err := p.advance(); err != nil {
				return nil, err
			}
			desc, err := p.eat(TokenString)
			if err != nil {
				return nil, err
			}
			body = append(body, &mdwast.Atividade{Descricao: desc.Value, Pos: pos})

		case TokenCusto:
			if err := p.advance(); err != nil {
				return nil, err
			}
			valor, err := p.eat(TokenInteger)
			if err != nil {
				return nil, err
			}
			if _, err := p.eat(TokenUSD); err != nil {
				return nil, err
			}
			body = append(body, &mdwast.Custo{Valor: valor.Int, Pos: pos})

		default:
			return nil, &SyntaxError{Expected: bodyKinds, Found: p.current, Context: context}
		}
	}

	if _, err := p.eat(TokenRightBrace); err != nil {
		return nil, err
	}
	return body, nil
}
