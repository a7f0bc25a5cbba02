// Package lexer turns terno source text into a flat token stream.
package lexer

import "fmt"

// Kind identifies the lexical category of a token.
type Kind string

const (
	EOF        Kind = "EOF"
	Number     Kind = "number"
	Identifier Kind = "id"

	LParen Kind = "("
	RParen Kind = ")"
	LSB    Kind = "["
	RSB    Kind = "]"
	LCB    Kind = "{"
	RCB    Kind = "}"
	Semi   Kind = ";"
	Colon  Kind = ":"
	Comma  Kind = ","

	Plus         Kind = "+"
	Dash         Kind = "-"
	Star         Kind = "*"
	Slash        Kind = "/"
	Equals       Kind = "="
	BitOr        Kind = "|"
	BitAnd       Kind = "&"
	And          Kind = "&&"
	Or           Kind = "||"
	PlusEquals   Kind = "+="
	MinusEquals  Kind = "-="
	EqualsEquals Kind = "=="
	BangEquals   Kind = "!="

	// Keywords
	Let    Kind = "let"
	Const  Kind = "const"
	Def    Kind = "def"
	Return Kind = "return"
)

var keywords = map[string]Kind{
	"let":    Let,
	"const":  Const,
	"def":    Def,
	"return": Return,
}

// Position is a 1-based line/column location in the source.
type Position struct {
	Line   int `yaml:"line"`
	Column int `yaml:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexeme.
type Token struct {
	Kind  Kind
	Value string
	Pos   Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s\t%s\t%s", t.Kind, t.Value, t.Pos)
}
