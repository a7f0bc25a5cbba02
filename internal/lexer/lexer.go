package lexer

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Error reports a character that no lexing rule accepts.
type Error struct {
	Pos  Position
	Char rune
}

func (e *Error) Error() string {
	return fmt.Sprintf("unexpected character %q at %s", e.Char, e.Pos)
}

type rule struct {
	pattern *regexp.Regexp
	kind    Kind // empty kind means the match is skipped
}

func newRule(pattern string, kind Kind) rule {
	return rule{pattern: regexp.MustCompile(`^(?:` + pattern + `)`), kind: kind}
}

// Rules are tried in order; two-character operators must precede their
// one-character prefixes.
var rules = []rule{
	newRule(`//[^\n]*`, ""),
	newRule(`\s+`, ""),
	newRule(`\+=`, PlusEquals),
	newRule(`-=`, MinusEquals),
	newRule(`==`, EqualsEquals),
	newRule(`!=`, BangEquals),
	newRule(`\|\|`, Or),
	newRule(`&&`, And),
	newRule(`\(`, LParen),
	newRule(`\)`, RParen),
	newRule(`\+`, Plus),
	newRule(`-`, Dash),
	newRule(`/`, Slash),
	newRule(`\*`, Star),
	newRule(`=`, Equals),
	newRule(`;`, Semi),
	newRule(`:`, Colon),
	newRule(`,`, Comma),
	newRule(`\[`, LSB),
	newRule(`\]`, RSB),
	newRule(`\{`, LCB),
	newRule(`\}`, RCB),
	newRule(`\|`, BitOr),
	newRule(`&`, BitAnd),
	newRule(`\d+`, Number),
	newRule(`[a-zA-Z_@][a-zA-Z0-9_]*`, Identifier),
}

// Lexer scans a source string into tokens.
type Lexer struct {
	src    string
	offset int
	pos    Position
}

// New creates a lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: src, pos: Position{Line: 1, Column: 1}}
}

// Read drains r and lexes its contents.
func Read(r io.Reader) ([]Token, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return New(string(data)).Tokens()
}

// Tokens lexes the whole input. The returned slice always ends with an EOF
// token when err is nil.
func (l *Lexer) Tokens() ([]Token, error) {
	var tokens []Token
	for l.offset < len(l.src) {
		tok, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if ok {
			tokens = append(tokens, tok)
		}
	}
	return append(tokens, Token{Kind: EOF, Pos: l.pos}), nil
}

func (l *Lexer) next() (Token, bool, error) {
	rest := l.src[l.offset:]
	for _, r := range rules {
		m := r.pattern.FindString(rest)
		if m == "" {
			continue
		}
		start := l.pos
		l.advance(m)
		if r.kind == "" {
			return Token{}, false, nil
		}
		kind := r.kind
		if kind == Identifier {
			if kw, ok := keywords[m]; ok {
				kind = kw
			}
		}
		return Token{Kind: kind, Value: m, Pos: start}, true, nil
	}
	ch, _ := utf8.DecodeRuneInString(rest)
	return Token{}, false, &Error{Pos: l.pos, Char: ch}
}

func (l *Lexer) advance(s string) {
	l.offset += len(s)
	if n := strings.Count(s, "\n"); n > 0 {
		l.pos.Line += n
		l.pos.Column = utf8.RuneCountInString(s[strings.LastIndexByte(s, '\n')+1:]) + 1
		return
	}
	l.pos.Column += utf8.RuneCountInString(s)
}
