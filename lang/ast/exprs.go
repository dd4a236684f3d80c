package ast

import "github.com/advsys/advc/lang/token"

// GlobalSymbolRef refers to a global constant, variable, object or
// function by name (spec §3 "Parse-tree node").
type GlobalSymbolRef struct {
	Pos  token.Pos
	Name string
}

func (e *GlobalSymbolRef) exprNode()                 {}
func (e *GlobalSymbolRef) Span() (token.Pos, token.Pos) { return e.Pos, e.Pos + token.Pos(len(e.Name)) }
func (e *GlobalSymbolRef) Walk(v Visitor)             { v.Visit(e) }

// LocalSymbolRef refers to a function local variable or a visible catch
// symbol by its resolved slot index.
type LocalSymbolRef struct {
	Pos   token.Pos
	Name  string
	Index int32
}

func (e *LocalSymbolRef) exprNode()                 {}
func (e *LocalSymbolRef) Span() (token.Pos, token.Pos) { return e.Pos, e.Pos + token.Pos(len(e.Name)) }
func (e *LocalSymbolRef) Walk(v Visitor)             { v.Visit(e) }

// ArgumentRef refers to a function or method argument by its resolved
// slot index.
type ArgumentRef struct {
	Pos   token.Pos
	Name  string
	Index int32
}

func (e *ArgumentRef) exprNode()                 {}
func (e *ArgumentRef) Span() (token.Pos, token.Pos) { return e.Pos, e.Pos + token.Pos(len(e.Name)) }
func (e *ArgumentRef) Walk(v Visitor)             { v.Visit(e) }

// StringLit is an interned string literal; Offset is its stable offset in
// the string pool (spec §3 "String").
type StringLit struct {
	Pos    token.Pos
	Value  string
	Offset int32
}

func (e *StringLit) exprNode()                 {}
func (e *StringLit) Span() (token.Pos, token.Pos) { return e.Pos, e.Pos }
func (e *StringLit) Walk(v Visitor)             { v.Visit(e) }

// IntegerLit is a literal integer, the product of a numeric/char literal
// or of constant folding (spec §4.2).
type IntegerLit struct {
	Pos   token.Pos
	Value int32
}

func (e *IntegerLit) exprNode()                 {}
func (e *IntegerLit) Span() (token.Pos, token.Pos) { return e.Pos, e.Pos }
func (e *IntegerLit) Walk(v Visitor)             { v.Visit(e) }

// UnaryOp is a prefix `+ - ! ~` applied to X (spec §4.2).
type UnaryOp struct {
	Pos token.Pos
	Op  token.Token
	X   Expr
}

func (e *UnaryOp) exprNode()                 {}
func (e *UnaryOp) Span() (token.Pos, token.Pos) { _, end := e.X.Span(); return e.Pos, end }
func (e *UnaryOp) Walk(v Visitor) {
	if v.Visit(e) == nil {
		return
	}
	Walk(v, e.X)
}

// IncDecExpr is `++X`/`--X` (Post == false) or `X++`/`X--` (Post == true);
// X must be an addressable l-value (spec §4.4).
type IncDecExpr struct {
	Pos  token.Pos
	End  token.Pos
	Op   token.Token // INC or DEC
	X    Expr
	Post bool
}

func (e *IncDecExpr) exprNode()                 {}
func (e *IncDecExpr) Span() (token.Pos, token.Pos) { return e.Pos, e.End }
func (e *IncDecExpr) Walk(v Visitor) {
	if v.Visit(e) == nil {
		return
	}
	Walk(v, e.X)
}

// CommaExpr is the lowest-precedence comma operator, `a, b, c` (spec
// §4.2).
type CommaExpr struct {
	Exprs []Expr
}

func (e *CommaExpr) exprNode() {}
func (e *CommaExpr) Span() (token.Pos, token.Pos) {
	start, _ := e.Exprs[0].Span()
	_, end := e.Exprs[len(e.Exprs)-1].Span()
	return start, end
}
func (e *CommaExpr) Walk(v Visitor) {
	if v.Visit(e) == nil {
		return
	}
	for _, x := range e.Exprs {
		Walk(v, x)
	}
}

// BinaryOp is a left-associative binary operator at one of the eight
// non-short-circuit precedence levels (spec §4.2).
type BinaryOp struct {
	Op   token.Token
	X, Y Expr
}

func (e *BinaryOp) exprNode() {}
func (e *BinaryOp) Span() (token.Pos, token.Pos) {
	start, _ := e.X.Span()
	_, end := e.Y.Span()
	return start, end
}
func (e *BinaryOp) Walk(v Visitor) {
	if v.Visit(e) == nil {
		return
	}
	Walk(v, e.X)
	Walk(v, e.Y)
}

// AssignmentOp is `Left = Right` or a compound `Left <op>= Right` (spec
// §4.2, §4.4). Left must be an addressable l-value.
type AssignmentOp struct {
	Op          token.Token // EQ, or one of the <op>= tokens
	Left, Right Expr
}

func (e *AssignmentOp) exprNode() {}
func (e *AssignmentOp) Span() (token.Pos, token.Pos) {
	start, _ := e.Left.Span()
	_, end := e.Right.Span()
	return start, end
}
func (e *AssignmentOp) Walk(v Visitor) {
	if v.Visit(e) == nil {
		return
	}
	Walk(v, e.Left)
	Walk(v, e.Right)
}

// TernaryOp is `Cond ? Then : Else` (spec §4.2).
type TernaryOp struct {
	Cond, Then, Else Expr
}

func (e *TernaryOp) exprNode() {}
func (e *TernaryOp) Span() (token.Pos, token.Pos) {
	start, _ := e.Cond.Span()
	_, end := e.Else.Span()
	return start, end
}
func (e *TernaryOp) Walk(v Visitor) {
	if v.Visit(e) == nil {
		return
	}
	Walk(v, e.Cond)
	Walk(v, e.Then)
	Walk(v, e.Else)
}

// Disjunction is a flat, variadic `a || b || c` (spec §4.2: "collect their
// operands into a flat variadic disjunction/conjunction node").
type Disjunction struct {
	Exprs []Expr
}

func (e *Disjunction) exprNode() {}
func (e *Disjunction) Span() (token.Pos, token.Pos) {
	start, _ := e.Exprs[0].Span()
	_, end := e.Exprs[len(e.Exprs)-1].Span()
	return start, end
}
func (e *Disjunction) Walk(v Visitor) {
	if v.Visit(e) == nil {
		return
	}
	for _, x := range e.Exprs {
		Walk(v, x)
	}
}

// Conjunction is a flat, variadic `a && b && c` (spec §4.2).
type Conjunction struct {
	Exprs []Expr
}

func (e *Conjunction) exprNode() {}
func (e *Conjunction) Span() (token.Pos, token.Pos) {
	start, _ := e.Exprs[0].Span()
	_, end := e.Exprs[len(e.Exprs)-1].Span()
	return start, end
}
func (e *Conjunction) Walk(v Visitor) {
	if v.Visit(e) == nil {
		return
	}
	for _, x := range e.Exprs {
		Walk(v, x)
	}
}

// ArrayRef is `Array[Index]` (long-word indexing) or `Array.byte[Index]`
// (Byte == true, byte indexing), per spec §4.2/§4.4.
type ArrayRef struct {
	End   token.Pos
	Array Expr
	Index Expr
	Byte  bool
}

func (e *ArrayRef) exprNode() {}
func (e *ArrayRef) Span() (token.Pos, token.Pos) {
	start, _ := e.Array.Span()
	return start, e.End
}
func (e *ArrayRef) Walk(v Visitor) {
	if v.Visit(e) == nil {
		return
	}
	Walk(v, e.Array)
	Walk(v, e.Index)
}

// FunctionCall is `Fn(Args...)` (spec §4.2).
type FunctionCall struct {
	End  token.Pos
	Fn   Expr
	Args []Expr
}

func (e *FunctionCall) exprNode() {}
func (e *FunctionCall) Span() (token.Pos, token.Pos) {
	start, _ := e.Fn.Span()
	return start, e.End
}
func (e *FunctionCall) Walk(v Visitor) {
	if v.Visit(e) == nil {
		return
	}
	Walk(v, e.Fn)
	for _, a := range e.Args {
		Walk(v, a)
	}
}

// MethodCall is `Receiver.Selector(Args...)`, or, when IsSuper is true,
// `super.Selector(Args...)`, which additionally records the enclosing
// object as an explicit class reference for dispatch (spec §4.2, §4.4).
// Selector is a static property name when SelectorTag >= 0 (resolved at
// parse time); otherwise it is the dynamic expression from `obj.(expr)`.
type MethodCall struct {
	End          token.Pos
	Receiver     Expr // nil when IsSuper (the receiver is always `self`)
	SelectorName string
	SelectorTag  int32 // -1 if Selector is computed
	Selector     Expr  // non-nil only for a computed `obj.(expr)(...)` selector
	Args         []Expr
	IsSuper      bool
	ClassRef     string // enclosing object's symbol name, set when IsSuper
}

func (e *MethodCall) exprNode() {}
func (e *MethodCall) Span() (token.Pos, token.Pos) {
	var start token.Pos
	if e.Receiver != nil {
		start, _ = e.Receiver.Span()
	}
	return start, e.End
}
func (e *MethodCall) Walk(v Visitor) {
	if v.Visit(e) == nil {
		return
	}
	if e.Receiver != nil {
		Walk(v, e.Receiver)
	}
	if e.Selector != nil {
		Walk(v, e.Selector)
	}
	for _, a := range e.Args {
		Walk(v, a)
	}
}

// ClassRef is `Object.class` (spec §4.2).
type ClassRef struct {
	End    token.Pos
	Object Expr
}

func (e *ClassRef) exprNode() {}
func (e *ClassRef) Span() (token.Pos, token.Pos) {
	start, _ := e.Object.Span()
	return start, e.End
}
func (e *ClassRef) Walk(v Visitor) {
	if v.Visit(e) == nil {
		return
	}
	Walk(v, e.Object)
}

// PropertyRef is `Object.Name` (a static property reference, interned to
// Tag at parse time) or `Object.(Computed)` (a dynamic selector
// expression), per spec §4.2.
type PropertyRef struct {
	End      token.Pos
	Object   Expr
	Name     string
	Tag      int32 // -1 if Computed is set
	Computed Expr  // non-nil only for `obj.(expr)`
}

func (e *PropertyRef) exprNode() {}
func (e *PropertyRef) Span() (token.Pos, token.Pos) {
	start, _ := e.Object.Span()
	return start, e.End
}
func (e *PropertyRef) Walk(v Visitor) {
	if v.Visit(e) == nil {
		return
	}
	Walk(v, e.Object)
	if e.Computed != nil {
		Walk(v, e.Computed)
	}
}
