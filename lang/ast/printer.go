package ast

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Fprint writes a human-readable dump of n to w, one node per line with
// indentation showing nesting. It backs the `parse` command's tree dump,
// supplementing the original adv2com.c symbol/tree dump (spec
// SUPPLEMENTED FROM original_source/).
func Fprint(w io.Writer, n Node) error {
	p := &printer{w: w}
	p.print(n, 0)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(depth int, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	_, err := fmt.Fprintf(p.w, "%s%s\n", indent, fmt.Sprintf(format, args...))
	if err != nil {
		p.err = err
	}
}

func (p *printer) print(n Node, depth int) {
	if p.err != nil {
		return
	}
	if n == nil || reflect.ValueOf(n).IsNil() {
		return
	}
	switch n := n.(type) {
	case *Program:
		p.printf(depth, "Program (%d functions)", len(n.Functions))
		for _, f := range n.Functions {
			p.print(f, depth+1)
		}
	case *FunctionDef:
		kind := "function"
		if n.IsMethod {
			kind = "method"
		}
		p.printf(depth, "%s %s (args=%d locals=%d maxTry=%d)", kind, n.Name, n.NumArguments, n.NumLocals, n.MaxTryDepth)
		p.print(n.Body, depth+1)
	case *Block:
		p.printf(depth, "Block")
		for _, s := range n.Stmts {
			p.print(s, depth+1)
		}
	case *IfStmt:
		p.printf(depth, "If")
		p.print(n.Cond, depth+1)
		p.print(n.Then, depth+1)
		if n.Else != nil {
			p.print(n.Else, depth+1)
		}
	case *WhileStmt:
		p.printf(depth, "While")
		p.print(n.Cond, depth+1)
		p.print(n.Body, depth+1)
	case *DoWhileStmt:
		p.printf(depth, "DoWhile")
		p.print(n.Body, depth+1)
		p.print(n.Cond, depth+1)
	case *ForStmt:
		p.printf(depth, "For")
		if n.Init != nil {
			p.print(n.Init, depth+1)
		}
		if n.Cond != nil {
			p.print(n.Cond, depth+1)
		}
		if n.Post != nil {
			p.print(n.Post, depth+1)
		}
		p.print(n.Body, depth+1)
	case *ReturnStmt:
		p.printf(depth, "Return")
		if n.Value != nil {
			p.print(n.Value, depth+1)
		}
	case *BreakStmt:
		p.printf(depth, "Break")
	case *ContinueStmt:
		p.printf(depth, "Continue")
	case *BlockStmt:
		p.print(n.Block, depth)
	case *TryStmt:
		p.printf(depth, "Try catch(%s depth=%d)", n.CatchName, n.CatchDepth)
		p.print(n.Body, depth+1)
		p.print(n.CatchBody, depth+1)
	case *ThrowStmt:
		p.printf(depth, "Throw")
		p.print(n.Value, depth+1)
	case *ExprStmt:
		p.printf(depth, "ExprStmt")
		p.print(n.X, depth+1)
	case *EmptyStmt:
		p.printf(depth, "Empty")
	case *AsmStmt:
		p.printf(depth, "Asm (%d bytes)", len(n.Code))
	case *PrintStmt:
		name := "Print"
		if n.Newline {
			name = "Println"
		}
		p.printf(depth, "%s (%d items)", name, len(n.Items))
		for _, it := range n.Items {
			p.print(it.X, depth+1)
		}
	case *GlobalSymbolRef:
		p.printf(depth, "GlobalRef %s", n.Name)
	case *LocalSymbolRef:
		p.printf(depth, "LocalRef %s#%d", n.Name, n.Index)
	case *ArgumentRef:
		p.printf(depth, "ArgRef %s#%d", n.Name, n.Index)
	case *StringLit:
		p.printf(depth, "String %q", n.Value)
	case *IntegerLit:
		p.printf(depth, "Int %d", n.Value)
	case *UnaryOp:
		p.printf(depth, "Unary %s", n.Op)
		p.print(n.X, depth+1)
	case *IncDecExpr:
		p.printf(depth, "IncDec %s post=%v", n.Op, n.Post)
		p.print(n.X, depth+1)
	case *CommaExpr:
		p.printf(depth, "Comma")
		for _, x := range n.Exprs {
			p.print(x, depth+1)
		}
	case *BinaryOp:
		p.printf(depth, "Binary %s", n.Op)
		p.print(n.X, depth+1)
		p.print(n.Y, depth+1)
	case *AssignmentOp:
		p.printf(depth, "Assign %s", n.Op)
		p.print(n.Left, depth+1)
		p.print(n.Right, depth+1)
	case *TernaryOp:
		p.printf(depth, "Ternary")
		p.print(n.Cond, depth+1)
		p.print(n.Then, depth+1)
		p.print(n.Else, depth+1)
	case *Disjunction:
		p.printf(depth, "Or")
		for _, x := range n.Exprs {
			p.print(x, depth+1)
		}
	case *Conjunction:
		p.printf(depth, "And")
		for _, x := range n.Exprs {
			p.print(x, depth+1)
		}
	case *ArrayRef:
		p.printf(depth, "ArrayRef byte=%v", n.Byte)
		p.print(n.Array, depth+1)
		p.print(n.Index, depth+1)
	case *FunctionCall:
		p.printf(depth, "Call (%d args)", len(n.Args))
		p.print(n.Fn, depth+1)
		for _, a := range n.Args {
			p.print(a, depth+1)
		}
	case *MethodCall:
		p.printf(depth, "MethodCall %s super=%v (%d args)", n.SelectorName, n.IsSuper, len(n.Args))
		if n.Receiver != nil {
			p.print(n.Receiver, depth+1)
		}
		if n.Selector != nil {
			p.print(n.Selector, depth+1)
		}
		for _, a := range n.Args {
			p.print(a, depth+1)
		}
	case *ClassRef:
		p.printf(depth, "ClassRef")
		p.print(n.Object, depth+1)
	case *PropertyRef:
		p.printf(depth, "PropertyRef %s", n.Name)
		p.print(n.Object, depth+1)
		if n.Computed != nil {
			p.print(n.Computed, depth+1)
		}
	default:
		p.printf(depth, "%T", n)
	}
}
