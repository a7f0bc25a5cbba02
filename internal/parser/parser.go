// Package parser builds a terno AST from a token stream using Pratt-style
// operator precedence for expressions.
package parser

import (
	"fmt"
	"io"
	"strconv"

	"github.com/terno-lang/terno/internal/lexer"
)

// Error reports a token the grammar did not expect.
type Error struct {
	Pos   lexer.Position
	Msg   string
	Found lexer.Kind
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s, found %s at %s", e.Msg, e.Found, e.Pos)
}

// Binding powers. Higher binds tighter.
const (
	bpLowest = iota * 10
	bpAssignment
	bpLogicalOr
	bpLogicalAnd
	bpEquality
	bpBitOr
	bpBitAnd
	bpAdditive
	bpMultiplicative
)

func bindingPower(k lexer.Kind) int {
	switch k {
	case lexer.Equals, lexer.PlusEquals, lexer.MinusEquals:
		return bpAssignment
	case lexer.Or:
		return bpLogicalOr
	case lexer.And:
		return bpLogicalAnd
	case lexer.EqualsEquals, lexer.BangEquals:
		return bpEquality
	case lexer.BitOr:
		return bpBitOr
	case lexer.BitAnd:
		return bpBitAnd
	case lexer.Plus, lexer.Dash:
		return bpAdditive
	case lexer.Star, lexer.Slash:
		return bpMultiplicative
	default:
		return bpLowest
	}
}

func rightAssociative(k lexer.Kind) bool {
	return bindingPower(k) == bpAssignment
}

// Parser consumes tokens produced by the lexer.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New creates a parser. tokens should end with an EOF token; one is assumed
// if missing.
func New(tokens []lexer.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != lexer.EOF {
		var end lexer.Position
		if len(tokens) > 0 {
			end = tokens[len(tokens)-1].Pos
		}
		tokens = append(tokens, lexer.Token{Kind: lexer.EOF, Pos: end})
	}
	return &Parser{tokens: tokens}
}

// ParseReader lexes and parses everything read from r.
func ParseReader(r io.Reader) (*Program, error) {
	tokens, err := lexer.Read(r)
	if err != nil {
		return nil, err
	}
	return New(tokens).Parse()
}

// Parse parses a whole program.
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{Kind: KindProgram, Body: []Stmt{}}
	for p.current().Kind != lexer.EOF {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, stmt)
	}
	return prog, nil
}

func (p *Parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) errorf(format string, args ...any) *Error {
	tok := p.current()
	return &Error{Pos: tok.Pos, Msg: fmt.Sprintf(format, args...), Found: tok.Kind}
}

func (p *Parser) expect(k lexer.Kind) (lexer.Token, error) {
	if p.current().Kind != k {
		return lexer.Token{}, p.errorf("expected %s", k)
	}
	return p.advance(), nil
}

func (p *Parser) statement() (Stmt, error) {
	tok := p.current()
	switch tok.Kind {
	case lexer.Let, lexer.Const:
		p.advance()
		return p.variableDecl(tok)
	case lexer.Semi:
		p.advance()
		return &EmptyStmt{Kind: KindEmpty, Pos: tok.Pos}, nil
	case lexer.LCB:
		p.advance()
		return p.block(tok.Pos)
	case lexer.Def:
		p.advance()
		return p.functionDecl(tok.Pos)
	case lexer.Return:
		p.advance()
		value, err := p.expr(bpLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Semi); err != nil {
			return nil, err
		}
		return &ReturnStmt{Kind: KindReturn, Pos: tok.Pos, Value: value}, nil
	default:
		expr, err := p.expr(bpLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Semi); err != nil {
			return nil, err
		}
		return &ExprStmt{Kind: KindExpr, Pos: tok.Pos, Expr: expr}, nil
	}
}

// block parses statements up to and including the closing brace. The
// opening brace has already been consumed.
func (p *Parser) block(pos lexer.Position) (*CompoundStmt, error) {
	body := &CompoundStmt{Kind: KindCompound, Pos: pos, Body: []Stmt{}}
	for p.current().Kind != lexer.RCB {
		if p.current().Kind == lexer.EOF {
			return nil, p.errorf("expected %s", lexer.RCB)
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		body.Body = append(body.Body, stmt)
	}
	p.advance()
	return body, nil
}

func (p *Parser) typeAnnotation() (Type, error) {
	switch tok := p.current(); tok.Kind {
	case lexer.LSB:
		p.advance()
		elem, err := p.typeAnnotation()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RSB); err != nil {
			return nil, err
		}
		return ArrayType{Elem: elem}, nil
	case lexer.Identifier:
		p.advance()
		return NamedType{Name: tok.Value}, nil
	default:
		return nil, p.errorf("expected type")
	}
}

func (p *Parser) variableDecl(kw lexer.Token) (Stmt, error) {
	name, err := p.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	decl := &VariableStmt{
		Kind:  KindVariable,
		Pos:   kw.Pos,
		Name:  name.Value,
		Const: kw.Kind == lexer.Const,
		Type:  ImplicitType{},
		Value: &UndefinedExpr{Kind: KindUndefined},
	}

	if p.current().Kind == lexer.Colon {
		p.advance()
		if decl.Type, err = p.typeAnnotation(); err != nil {
			return nil, err
		}
	}
	if p.current().Kind == lexer.Equals {
		p.advance()
		if decl.Value, err = p.expr(bpLowest); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.Semi); err != nil {
		return nil, err
	}
	return decl, nil
}

func (p *Parser) params() ([]Param, error) {
	params := []Param{}
	for p.current().Kind != lexer.RParen {
		name, err := p.expect(lexer.Identifier)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Colon); err != nil {
			return nil, err
		}
		typ, err := p.typeAnnotation()
		if err != nil {
			return nil, err
		}
		params = append(params, Param{Name: name.Value, Type: typ})

		if p.current().Kind == lexer.Comma {
			p.advance()
		}
	}
	p.advance()
	return params, nil
}

func (p *Parser) functionDecl(pos lexer.Position) (Stmt, error) {
	name, err := p.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}
	params, err := p.params()
	if err != nil {
		return nil, err
	}

	var typ Type = ImplicitType{}
	if p.current().Kind == lexer.Colon {
		p.advance()
		if typ, err = p.typeAnnotation(); err != nil {
			return nil, err
		}
	}

	open, err := p.expect(lexer.LCB)
	if err != nil {
		return nil, err
	}
	body, err := p.block(open.Pos)
	if err != nil {
		return nil, err
	}
	return &FunctionStmt{Kind: KindFunction, Pos: pos, Name: name.Value, Params: params, Type: typ, Body: body}, nil
}

func (p *Parser) expr(bp int) (Expr, error) {
	left, err := p.nud()
	if err != nil {
		return nil, err
	}
	for bindingPower(p.current().Kind) > bp {
		if left, err = p.led(left); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) nud() (Expr, error) {
	tok := p.current()
	switch tok.Kind {
	case lexer.LParen:
		p.advance()
		inner, err := p.expr(bpLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return &ParenthesizedExpr{Kind: KindParenthesis, Inner: inner}, nil
	case lexer.Identifier:
		p.advance()
		return &IdentifierExpr{Kind: KindIdentifier, Name: tok.Value}, nil
	case lexer.Number:
		value, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, p.errorf("invalid number %q", tok.Value)
		}
		p.advance()
		return &NumericExpr{Kind: KindNumeric, Value: value}, nil
	default:
		return nil, p.errorf("unexpected token")
	}
}

func (p *Parser) led(left Expr) (Expr, error) {
	op := p.advance().Kind
	bp := bindingPower(op)
	if rightAssociative(op) {
		bp--
	}
	right, err := p.expr(bp)
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Kind: KindBinary, Op: op, Left: left, Right: right}, nil
}
