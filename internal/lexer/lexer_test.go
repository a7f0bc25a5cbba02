package lexer

import (
	"errors"
	"strings"
	"testing"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func equalKinds(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokens_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Kind
	}{
		{"empty", "", []Kind{EOF}},
		{"whitespace only", "  \n\t ", []Kind{EOF}},
		{"comment skipped", "// hello\n1", []Kind{Number, EOF}},
		{"compound assign before plus", "a += 1", []Kind{Identifier, PlusEquals, Number, EOF}},
		{"minus equals", "a -= 1", []Kind{Identifier, MinusEquals, Number, EOF}},
		{"equality", "a == b != c", []Kind{Identifier, EqualsEquals, Identifier, BangEquals, Identifier, EOF}},
		{"logical before bitwise", "a || b | c && d & e", []Kind{
			Identifier, Or, Identifier, BitOr, Identifier, And, Identifier, BitAnd, Identifier, EOF,
		}},
		{"punctuation", "()[]{};:,", []Kind{LParen, RParen, LSB, RSB, LCB, RCB, Semi, Colon, Comma, EOF}},
		{"arithmetic", "1+2-3*4/5", []Kind{Number, Plus, Number, Dash, Number, Star, Number, Slash, Number, EOF}},
		{"keywords", "let const def return", []Kind{Let, Const, Def, Return, EOF}},
		{"keyword prefix is identifier", "letter returned", []Kind{Identifier, Identifier, EOF}},
		{"at identifier", "@builtin _x1", []Kind{Identifier, Identifier, EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := New(tt.input).Tokens()
			if err != nil {
				t.Fatalf("Tokens() error = %v", err)
			}
			if got := kinds(tokens); !equalKinds(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokens_ValuesAndPositions(t *testing.T) {
	tokens, err := New("let x = 42;\n  // note\n  x += 1;").Tokens()
	if err != nil {
		t.Fatalf("Tokens() error = %v", err)
	}

	want := []Token{
		{Kind: Let, Value: "let", Pos: Position{1, 1}},
		{Kind: Identifier, Value: "x", Pos: Position{1, 5}},
		{Kind: Equals, Value: "=", Pos: Position{1, 7}},
		{Kind: Number, Value: "42", Pos: Position{1, 9}},
		{Kind: Semi, Value: ";", Pos: Position{1, 11}},
		{Kind: Identifier, Value: "x", Pos: Position{3, 3}},
		{Kind: PlusEquals, Value: "+=", Pos: Position{3, 5}},
		{Kind: Number, Value: "1", Pos: Position{3, 8}},
		{Kind: Semi, Value: ";", Pos: Position{3, 9}},
		{Kind: EOF, Value: "", Pos: Position{3, 10}},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token[%d] = %+v, want %+v", i, tokens[i], want[i])
		}
	}
}

func TestTokens_UnexpectedCharacter(t *testing.T) {
	_, err := New("let a = 1;\nlet b = $;").Tokens()
	if err == nil {
		t.Fatal("expected error for '$'")
	}

	var lexErr *Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if lexErr.Char != '$' {
		t.Errorf("Char = %q, want '$'", lexErr.Char)
	}
	if lexErr.Pos != (Position{Line: 2, Column: 9}) {
		t.Errorf("Pos = %v, want 2:9", lexErr.Pos)
	}
	if !strings.Contains(err.Error(), "2:9") {
		t.Errorf("error message %q should contain position", err.Error())
	}
}

func TestRead(t *testing.T) {
	tokens, err := Read(strings.NewReader("def f() {}"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []Kind{Def, Identifier, LParen, RParen, LCB, RCB, EOF}
	if got := kinds(tokens); !equalKinds(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestToken_String(t *testing.T) {
	tok := Token{Kind: Number, Value: "7", Pos: Position{Line: 2, Column: 4}}
	if got := tok.String(); got != "number\t7\t2:4" {
		t.Errorf("String() = %q", got)
	}
}
