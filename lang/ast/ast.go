// Package ast defines the parse-tree node types for the adv2 language
// (spec §3 "Parse-tree node"): a tagged sum type, one Go struct per
// variant, so that an exhaustive switch over node kinds fails to compile
// rather than falling through to an "unknown node type" runtime panic
// (spec §9 "Tagged AST").
package ast

import (
	"github.com/advsys/advc/lang/symtab"
	"github.com/advsys/advc/lang/token"
)

// Node is any node in the parse tree.
type Node interface {
	// Span reports the node's start and end source positions.
	Span() (start, end token.Pos)
	// Walk visits this node's direct children, in source order.
	Walk(v Visitor)
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
	// BlockEnding reports whether this statement may only appear as the
	// last statement in a block (return, break, continue, throw).
	BlockEnding() bool
}

// Block is a braced sequence of statements.
type Block struct {
	Start, End token.Pos
	Stmts      []Stmt
}

func (b *Block) Span() (token.Pos, token.Pos) { return b.Start, b.End }
func (b *Block) Walk(v Visitor) {
	if v.Visit(b) == nil {
		return
	}
	for _, s := range b.Stmts {
		Walk(v, s)
	}
}

// FunctionDef is a compiled function or method body (spec §3, §4.2). Note
// that object/var/property declarations never appear in the tree: they are
// resolved directly into the symbol and data arenas as they are parsed
// (spec §4.3), so FunctionDef (for top-level `def` functions and for
// object `method` bodies alike) is the only declaration-shaped node.
type FunctionDef struct {
	Pos          token.Pos
	Name         string
	IsMethod     bool
	NumArguments int
	NumLocals    int
	MaxTryDepth  int
	Body         *Block

	// Global is the global symbol table entry for a top-level `def`
	// function (nil for a method). It is left undefined by the parser
	// and only given its value by lang/compiler, once codegen has
	// decided where this function's bytecode starts: any forward
	// reference recorded against it before then resolves through its
	// own ordinary fixup list (spec §4.5).
	Global *symtab.Global

	// PropertyPatchOffset is, for a method, the data-arena offset of
	// the property value word that must receive this method's code
	// offset once it is known. Zero (and unused) for a top-level
	// function, whose code offset is carried on Global instead.
	PropertyPatchOffset int32
}

func (f *FunctionDef) Span() (token.Pos, token.Pos) {
	end := f.Pos
	if f.Body != nil {
		_, end = f.Body.Span()
	}
	return f.Pos, end
}
func (f *FunctionDef) Walk(v Visitor) {
	if v.Visit(f) == nil {
		return
	}
	if f.Body != nil {
		Walk(v, f.Body)
	}
}

// Program is the result of parsing one root source file (and everything it
// transitively includes): every `def`-declared function and every object's
// methods, in the order their bodies were compiled.
type Program struct {
	Functions []*FunctionDef
}

func (p *Program) Span() (start, end token.Pos) {
	if n := len(p.Functions); n > 0 {
		start, _ = p.Functions[0].Span()
		_, end = p.Functions[n-1].Span()
	}
	return start, end
}
func (p *Program) Walk(v Visitor) {
	if v.Visit(p) == nil {
		return
	}
	for _, f := range p.Functions {
		Walk(v, f)
	}
}
