package ast

import "github.com/advsys/advc/lang/token"

// IfStmt is `if (Cond) Then [else Else]` (Else is nil if absent; an
// "else if" is represented as a Block containing a single nested IfStmt).
type IfStmt struct {
	Start      token.Pos
	Cond       Expr
	Then, Else *Block
}

func (s *IfStmt) stmtNode()          {}
func (s *IfStmt) BlockEnding() bool  { return false }
func (s *IfStmt) Span() (token.Pos, token.Pos) {
	end := s.Start
	if s.Else != nil {
		_, end = s.Else.Span()
	} else if s.Then != nil {
		_, end = s.Then.Span()
	}
	return s.Start, end
}
func (s *IfStmt) Walk(v Visitor) {
	if v.Visit(s) == nil {
		return
	}
	Walk(v, s.Cond)
	Walk(v, s.Then)
	if s.Else != nil {
		Walk(v, s.Else)
	}
}

// WhileStmt is `while (Cond) Body`.
type WhileStmt struct {
	Start token.Pos
	Cond  Expr
	Body  *Block
}

func (s *WhileStmt) stmtNode()         {}
func (s *WhileStmt) BlockEnding() bool { return false }
func (s *WhileStmt) Span() (token.Pos, token.Pos) {
	_, end := s.Body.Span()
	return s.Start, end
}
func (s *WhileStmt) Walk(v Visitor) {
	if v.Visit(s) == nil {
		return
	}
	Walk(v, s.Cond)
	Walk(v, s.Body)
}

// DoWhileStmt is `do Body while (Cond);`.
type DoWhileStmt struct {
	Start token.Pos
	End   token.Pos
	Body  *Block
	Cond  Expr
}

func (s *DoWhileStmt) stmtNode()                 {}
func (s *DoWhileStmt) BlockEnding() bool          { return false }
func (s *DoWhileStmt) Span() (token.Pos, token.Pos) { return s.Start, s.End }
func (s *DoWhileStmt) Walk(v Visitor) {
	if v.Visit(s) == nil {
		return
	}
	Walk(v, s.Body)
	Walk(v, s.Cond)
}

// ForStmt is a classic three-part `for (Init; Cond; Post) Body`. Init and
// Post may be nil.
type ForStmt struct {
	Start      token.Pos
	Init       Stmt
	Cond       Expr
	Post       Stmt
	Body       *Block
}

func (s *ForStmt) stmtNode()         {}
func (s *ForStmt) BlockEnding() bool { return false }
func (s *ForStmt) Span() (token.Pos, token.Pos) {
	_, end := s.Body.Span()
	return s.Start, end
}
func (s *ForStmt) Walk(v Visitor) {
	if v.Visit(s) == nil {
		return
	}
	if s.Init != nil {
		Walk(v, s.Init)
	}
	if s.Cond != nil {
		Walk(v, s.Cond)
	}
	if s.Post != nil {
		Walk(v, s.Post)
	}
	Walk(v, s.Body)
}

// ReturnStmt is `return [Value];`.
type ReturnStmt struct {
	Start, End token.Pos
	Value      Expr // nil for a bare `return;`
}

func (s *ReturnStmt) stmtNode()                 {}
func (s *ReturnStmt) BlockEnding() bool          { return true }
func (s *ReturnStmt) Span() (token.Pos, token.Pos) { return s.Start, s.End }
func (s *ReturnStmt) Walk(v Visitor) {
	if v.Visit(s) == nil {
		return
	}
	if s.Value != nil {
		Walk(v, s.Value)
	}
}

// BreakStmt is `break;`.
type BreakStmt struct {
	Start, End token.Pos
}

func (s *BreakStmt) stmtNode()                 {}
func (s *BreakStmt) BlockEnding() bool          { return true }
func (s *BreakStmt) Span() (token.Pos, token.Pos) { return s.Start, s.End }
func (s *BreakStmt) Walk(v Visitor)             { v.Visit(s) }

// ContinueStmt is `continue;`.
type ContinueStmt struct {
	Start, End token.Pos
}

func (s *ContinueStmt) stmtNode()                 {}
func (s *ContinueStmt) BlockEnding() bool          { return true }
func (s *ContinueStmt) Span() (token.Pos, token.Pos) { return s.Start, s.End }
func (s *ContinueStmt) Walk(v Visitor)             { v.Visit(s) }

// BlockStmt wraps a bare `{ ... }` used as a statement.
type BlockStmt struct {
	Block *Block
}

func (s *BlockStmt) stmtNode()         {}
func (s *BlockStmt) BlockEnding() bool { return false }
func (s *BlockStmt) Span() (token.Pos, token.Pos) { return s.Block.Span() }
func (s *BlockStmt) Walk(v Visitor) {
	if v.Visit(s) == nil {
		return
	}
	Walk(v, s.Block)
}

// TryStmt is `try { Body } catch (CatchName) { CatchBody }` (spec §4.2:
// try without catch is a compile error, so CatchBody is never nil here).
type TryStmt struct {
	Start, End token.Pos
	Body       *Block
	CatchName  string
	CatchDepth int // the try-nesting depth this catch symbol occupies
	CatchBody  *Block
}

func (s *TryStmt) stmtNode()                 {}
func (s *TryStmt) BlockEnding() bool          { return false }
func (s *TryStmt) Span() (token.Pos, token.Pos) { return s.Start, s.End }
func (s *TryStmt) Walk(v Visitor) {
	if v.Visit(s) == nil {
		return
	}
	Walk(v, s.Body)
	Walk(v, s.CatchBody)
}

// ThrowStmt is `throw Value;`.
type ThrowStmt struct {
	Start, End token.Pos
	Value      Expr
}

func (s *ThrowStmt) stmtNode()                 {}
func (s *ThrowStmt) BlockEnding() bool          { return true }
func (s *ThrowStmt) Span() (token.Pos, token.Pos) { return s.Start, s.End }
func (s *ThrowStmt) Walk(v Visitor) {
	if v.Visit(s) == nil {
		return
	}
	Walk(v, s.Value)
}

// ExprStmt is an expression used as a statement; the parser accepts any
// expression here, and its value is discarded.
type ExprStmt struct {
	X Expr
}

func (s *ExprStmt) stmtNode()                 {}
func (s *ExprStmt) BlockEnding() bool          { return false }
func (s *ExprStmt) Span() (token.Pos, token.Pos) { return s.X.Span() }
func (s *ExprStmt) Walk(v Visitor) {
	if v.Visit(s) == nil {
		return
	}
	Walk(v, s.X)
}

// EmptyStmt is a bare `;`.
type EmptyStmt struct {
	Pos token.Pos
}

func (s *EmptyStmt) stmtNode()                 {}
func (s *EmptyStmt) BlockEnding() bool          { return false }
func (s *EmptyStmt) Span() (token.Pos, token.Pos) { return s.Pos, s.Pos }
func (s *EmptyStmt) Walk(v Visitor)             { v.Visit(s) }

// AsmStmt is an `asm { ... }` block (spec §4.2): Code holds the bytecode
// already assembled by the parser at parse time, captured verbatim so the
// code generator can re-emit it in place.
type AsmStmt struct {
	Start, End token.Pos
	Code       []byte
}

func (s *AsmStmt) stmtNode()                 {}
func (s *AsmStmt) BlockEnding() bool          { return false }
func (s *AsmStmt) Span() (token.Pos, token.Pos) { return s.Start, s.End }
func (s *AsmStmt) Walk(v Visitor)             { v.Visit(s) }

// PrintItem is one comma-separated element of a print/println statement
// (spec §4.2).
type PrintItem struct {
	X            Expr
	ForceString  bool // true if preceded by a leading '#'
}

// PrintStmt is `print`/`println` followed by a comma-separated expression
// list (spec §4.2). Newline is true for `println`.
type PrintStmt struct {
	Start, End token.Pos
	Items      []PrintItem
	Newline    bool
}

func (s *PrintStmt) stmtNode()                 {}
func (s *PrintStmt) BlockEnding() bool          { return false }
func (s *PrintStmt) Span() (token.Pos, token.Pos) { return s.Start, s.End }
func (s *PrintStmt) Walk(v Visitor) {
	if v.Visit(s) == nil {
		return
	}
	for _, it := range s.Items {
		Walk(v, it.X)
	}
}
