// Package scope derives the tree of declarations introduced by a parsed
// terno program.
package scope

import "github.com/terno-lang/terno/internal/parser"

// Kind identifies what introduced a scope entry.
type Kind string

const (
	KindGlobal   Kind = "global"
	KindVariable Kind = "variable"
	KindBlock    Kind = "block"
	KindFunction Kind = "function"
)

// Param is a function parameter recorded on a function scope.
type Param struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Scope is one node of the declaration tree. Variables are leaves; blocks,
// functions and the global scope carry children.
type Scope struct {
	Kind     Kind     `yaml:"kind"`
	Name     string   `yaml:"name,omitempty"`
	Const    bool     `yaml:"const,omitempty"`
	Type     string   `yaml:"type,omitempty"`
	Params   []Param  `yaml:"params,omitempty"`
	Children []*Scope `yaml:"children,omitempty"`

	parent *Scope
}

// Parent returns the enclosing scope, or nil for the global scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Lookup finds the nearest variable or function named name, searching this
// scope and then its ancestors.
func (s *Scope) Lookup(name string) (*Scope, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		for i := len(cur.Children) - 1; i >= 0; i-- {
			c := cur.Children[i]
			if c.Name == name && (c.Kind == KindVariable || c.Kind == KindFunction) {
				return c, true
			}
		}
	}
	return nil, false
}

// Build walks prog and returns its global scope.
func Build(prog *parser.Program) *Scope {
	global := &Scope{Kind: KindGlobal}
	global.add(prog.Body)
	return global
}

func (s *Scope) child(c *Scope) *Scope {
	c.parent = s
	s.Children = append(s.Children, c)
	return c
}

func (s *Scope) add(body []parser.Stmt) {
	for _, stmt := range body {
		switch n := stmt.(type) {
		case *parser.VariableStmt:
			s.child(&Scope{Kind: KindVariable, Name: n.Name, Const: n.Const, Type: n.Type.String()})
		case *parser.CompoundStmt:
			s.child(&Scope{Kind: KindBlock}).add(n.Body)
		case *parser.FunctionStmt:
			fn := s.child(&Scope{Kind: KindFunction, Name: n.Name, Type: n.Type.String()})
			for _, p := range n.Params {
				fn.Params = append(fn.Params, Param{Name: p.Name, Type: p.Type.String()})
			}
			fn.add(n.Body.Body)
		}
	}
}
