package parser

import "github.com/terno-lang/terno/internal/lexer"

// Node kinds, as they appear in YAML dumps.
const (
	KindProgram     = "Program"
	KindVariable    = "Variable"
	KindFunction    = "Function"
	KindCompound    = "Compound"
	KindReturn      = "Return"
	KindExpr        = "Expr"
	KindEmpty       = "Empty"
	KindBinary      = "BinaryExpression"
	KindNumeric     = "NumericExpression"
	KindIdentifier  = "IdentifierExpression"
	KindParenthesis = "ParenthesizedExpression"
	KindUndefined   = "UndefinedExpression"
)

// Stmt is a statement node.
type Stmt interface {
	stmtNode()
}

// Expr is an expression node.
type Expr interface {
	exprNode()
}

// Type is a type annotation.
type Type interface {
	typeNode()
	String() string
}

// ImplicitType marks a declaration without an annotation.
type ImplicitType struct{}

func (ImplicitType) typeNode()      {}
func (ImplicitType) String() string { return "implicit" }

// MarshalYAML renders the type by name.
func (t ImplicitType) MarshalYAML() (any, error) { return t.String(), nil }

// NamedType is a reference to a type by identifier.
type NamedType struct {
	Name string
}

func (NamedType) typeNode()        {}
func (t NamedType) String() string { return t.Name }

// MarshalYAML renders the type by name.
func (t NamedType) MarshalYAML() (any, error) { return t.String(), nil }

// ArrayType is `[Elem]`.
type ArrayType struct {
	Elem Type
}

func (ArrayType) typeNode()        {}
func (t ArrayType) String() string { return "[" + t.Elem.String() + "]" }

// MarshalYAML renders the type by name.
func (t ArrayType) MarshalYAML() (any, error) { return t.String(), nil }

// Program is the root of a parsed source file.
type Program struct {
	Kind string `yaml:"kind"`
	Body []Stmt `yaml:"body"`
}

// CompoundStmt is a braced block.
type CompoundStmt struct {
	Kind string         `yaml:"kind"`
	Pos  lexer.Position `yaml:"pos"`
	Body []Stmt         `yaml:"body"`
}

// VariableStmt declares a variable or constant.
type VariableStmt struct {
	Kind  string         `yaml:"kind"`
	Pos   lexer.Position `yaml:"pos"`
	Name  string         `yaml:"name"`
	Const bool           `yaml:"const"`
	Type  Type           `yaml:"type"`
	Value Expr           `yaml:"value"`
}

// Param is one function parameter.
type Param struct {
	Name string `yaml:"name"`
	Type Type   `yaml:"type"`
}

// FunctionStmt declares a function.
type FunctionStmt struct {
	Kind   string         `yaml:"kind"`
	Pos    lexer.Position `yaml:"pos"`
	Name   string         `yaml:"name"`
	Params []Param        `yaml:"params"`
	Type   Type           `yaml:"type"`
	Body   *CompoundStmt  `yaml:"body"`
}

// ReturnStmt returns a value from a function.
type ReturnStmt struct {
	Kind  string         `yaml:"kind"`
	Pos   lexer.Position `yaml:"pos"`
	Value Expr           `yaml:"value"`
}

// ExprStmt is an expression evaluated for its effect.
type ExprStmt struct {
	Kind string         `yaml:"kind"`
	Pos  lexer.Position `yaml:"pos"`
	Expr Expr           `yaml:"expr"`
}

// EmptyStmt is a lone semicolon.
type EmptyStmt struct {
	Kind string         `yaml:"kind"`
	Pos  lexer.Position `yaml:"pos"`
}

func (*CompoundStmt) stmtNode() {}
func (*VariableStmt) stmtNode() {}
func (*FunctionStmt) stmtNode() {}
func (*ReturnStmt) stmtNode()   {}
func (*ExprStmt) stmtNode()     {}
func (*EmptyStmt) stmtNode()    {}

// BinaryExpr is `Left Op Right`.
type BinaryExpr struct {
	Kind  string     `yaml:"kind"`
	Op    lexer.Kind `yaml:"op"`
	Left  Expr       `yaml:"left"`
	Right Expr       `yaml:"right"`
}

// NumericExpr is an integer literal.
type NumericExpr struct {
	Kind  string `yaml:"kind"`
	Value int64  `yaml:"value"`
}

// IdentifierExpr references a name.
type IdentifierExpr struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`
}

// ParenthesizedExpr is `( Inner )`.
type ParenthesizedExpr struct {
	Kind  string `yaml:"kind"`
	Inner Expr   `yaml:"inner"`
}

// UndefinedExpr is the value of a declaration without an initializer.
type UndefinedExpr struct {
	Kind string `yaml:"kind"`
}

func (*BinaryExpr) exprNode()        {}
func (*NumericExpr) exprNode()       {}
func (*IdentifierExpr) exprNode()    {}
func (*ParenthesizedExpr) exprNode() {}
func (*UndefinedExpr) exprNode()     {}
