package compiler

import (
	"github.com/advsys/advc/lang/ast"
	"github.com/advsys/advc/lang/symtab"
	"github.com/advsys/advc/lang/token"
)

// expr compiles x so that evaluating it leaves exactly one value on the
// stack (spec §4.4).
func (fc *fcomp) expr(x ast.Expr) error {
	switch x := x.(type) {
	case *ast.IntegerLit:
		fc.emitOp(OpPushInt)
		fc.emitLong(x.Value)
		return nil
	case *ast.StringLit:
		// a string's value is its stable string-pool offset (spec §3
		// "String"); there is no separate string type at this level.
		fc.emitOp(OpPushInt)
		fc.emitLong(x.Offset)
		return nil
	case *ast.GlobalSymbolRef:
		g := fc.lookupGlobal(x.Name)
		fc.emitGlobal(OpPushGlobalAddr, g)
		if g.Class == symtab.Variable {
			fc.emitOp(OpLoad)
		}
		return nil
	case *ast.LocalSymbolRef:
		fc.emitOp(OpPushLocalVal)
		fc.emitByte(byte(x.Index))
		return nil
	case *ast.ArgumentRef:
		fc.emitOp(OpPushArgVal)
		fc.emitByte(byte(x.Index))
		return nil
	case *ast.UnaryOp:
		if err := fc.expr(x.X); err != nil {
			return err
		}
		fc.emitOp(unaryOpcode(x.Op))
		return nil
	case *ast.IncDecExpr:
		return fc.incDec(x)
	case *ast.CommaExpr:
		for i, e := range x.Exprs {
			if err := fc.expr(e); err != nil {
				return err
			}
			if i < len(x.Exprs)-1 {
				fc.emitOp(OpPop)
			}
		}
		return nil
	case *ast.BinaryOp:
		if err := fc.expr(x.X); err != nil {
			return err
		}
		if err := fc.expr(x.Y); err != nil {
			return err
		}
		fc.emitOp(binaryOpcode(x.Op))
		return nil
	case *ast.AssignmentOp:
		return fc.assign(x)
	case *ast.TernaryOp:
		return fc.ternary(x)
	case *ast.Disjunction:
		return fc.disjunction(x)
	case *ast.Conjunction:
		return fc.conjunction(x)
	case *ast.ArrayRef:
		if err := fc.arrayAddr(x); err != nil {
			return err
		}
		fc.emitOp(loadOp(x.Byte))
		return nil
	case *ast.FunctionCall:
		for _, a := range x.Args {
			if err := fc.expr(a); err != nil {
				return err
			}
		}
		if err := fc.expr(x.Fn); err != nil {
			return err
		}
		fc.emitOp(OpCall)
		fc.emitByte(byte(len(x.Args)))
		return nil
	case *ast.MethodCall:
		return fc.methodCall(x)
	case *ast.ClassRef:
		if err := fc.expr(x.Object); err != nil {
			return err
		}
		fc.emitOp(OpClassRef)
		return nil
	case *ast.PropertyRef:
		if err := fc.propertyAddr(x); err != nil {
			return err
		}
		fc.emitOp(OpLoad)
		return nil
	default:
		return fc.errorf(0, "compiler: unhandled expression %T", x)
	}
}

func (fc *fcomp) disjunction(x *ast.Disjunction) error {
	trueLabel := fc.newLabel()
	end := fc.newLabel()
	for _, e := range x.Exprs {
		if err := fc.expr(e); err != nil {
			return err
		}
		fc.emitBranch(OpJumpIfNotZero, trueLabel)
	}
	fc.emitOp(OpPushInt)
	fc.emitLong(0)
	fc.emitBranch(OpJump, end)
	fc.bindLabel(trueLabel)
	fc.emitOp(OpPushInt)
	fc.emitLong(1)
	fc.bindLabel(end)
	return nil
}

func (fc *fcomp) conjunction(x *ast.Conjunction) error {
	falseLabel := fc.newLabel()
	end := fc.newLabel()
	for _, e := range x.Exprs {
		if err := fc.expr(e); err != nil {
			return err
		}
		fc.emitBranch(OpJumpIfZero, falseLabel)
	}
	fc.emitOp(OpPushInt)
	fc.emitLong(1)
	fc.emitBranch(OpJump, end)
	fc.bindLabel(falseLabel)
	fc.emitOp(OpPushInt)
	fc.emitLong(0)
	fc.bindLabel(end)
	return nil
}

func (fc *fcomp) ternary(x *ast.TernaryOp) error {
	if err := fc.expr(x.Cond); err != nil {
		return err
	}
	elseLabel := fc.newLabel()
	end := fc.newLabel()
	fc.emitBranch(OpJumpIfZero, elseLabel)
	if err := fc.expr(x.Then); err != nil {
		return err
	}
	fc.emitBranch(OpJump, end)
	fc.bindLabel(elseLabel)
	if err := fc.expr(x.Else); err != nil {
		return err
	}
	fc.bindLabel(end)
	return nil
}

// arrayAddr compiles x's base and index and leaves the element's address on
// the stack (spec §4.4 "Array indexing"), for both a read (expr) and a
// write (assign/incDec).
func (fc *fcomp) arrayAddr(x *ast.ArrayRef) error {
	if err := fc.expr(x.Array); err != nil {
		return err
	}
	if err := fc.expr(x.Index); err != nil {
		return err
	}
	if x.Byte {
		fc.emitOp(OpIndexByte)
	} else {
		fc.emitOp(OpIndex)
	}
	return nil
}

// propertyAddr compiles x's object (and, for a computed selector, the
// selector value) and leaves the property's address on the stack (spec
// §4.4 "Property access").
func (fc *fcomp) propertyAddr(x *ast.PropertyRef) error {
	if err := fc.expr(x.Object); err != nil {
		return err
	}
	if x.Tag >= 0 {
		fc.emitOp(OpPropAddr)
		fc.emitLong(x.Tag)
		return nil
	}
	if err := fc.expr(x.Computed); err != nil {
		return err
	}
	fc.emitOp(OpPropAddrDyn)
	return nil
}

func (fc *fcomp) methodCall(x *ast.MethodCall) error {
	for _, a := range x.Args {
		if err := fc.expr(a); err != nil {
			return err
		}
	}
	if x.IsSuper {
		fc.emitOp(OpPushArgVal)
		fc.emitByte(0) // self occupies argument slot 0 (spec §4.2)
	} else if err := fc.expr(x.Receiver); err != nil {
		return err
	}
	if x.SelectorTag >= 0 {
		fc.emitOp(OpPushInt)
		fc.emitLong(x.SelectorTag)
	} else if err := fc.expr(x.Selector); err != nil {
		return err
	}
	if x.IsSuper {
		g := fc.lookupGlobal(x.ClassRef)
		fc.emitGlobal(OpPushGlobalAddr, g)
		fc.emitOp(OpCallMethodSuper)
	} else {
		fc.emitOp(OpCallMethod)
	}
	fc.emitByte(byte(len(x.Args)))
	return nil
}

func loadOp(isByte bool) Opcode {
	if isByte {
		return OpLoadByte
	}
	return OpLoad
}

func storeOp(isByte bool) Opcode {
	if isByte {
		return OpStoreByte
	}
	return OpStore
}

func unaryOpcode(op token.Token) Opcode {
	switch op {
	case token.MINUS:
		return OpNeg
	case token.BANG:
		return OpLogNot
	case token.TILDE:
		return OpBitNot
	}
	return OpNop
}

func binaryOpcode(op token.Token) Opcode {
	switch op {
	case token.PLUS:
		return OpAdd
	case token.MINUS:
		return OpSub
	case token.STAR:
		return OpMul
	case token.SLASH:
		return OpDiv
	case token.PERCENT:
		return OpMod
	case token.AMPERSAND:
		return OpAnd
	case token.PIPE:
		return OpOr
	case token.CIRCUMFLEX:
		return OpXor
	case token.LTLT:
		return OpShl
	case token.GTGT:
		return OpShr
	case token.EQEQ:
		return OpCmpEq
	case token.NEQ:
		return OpCmpNe
	case token.LT:
		return OpCmpLt
	case token.LE:
		return OpCmpLe
	case token.GE:
		return OpCmpGe
	case token.GT:
		return OpCmpGt
	}
	return OpNop
}

// compoundBase returns the non-assignment binary token a compound
// assignment operator (`+=`, `&=`, ...) applies, e.g. PLUS_EQ -> PLUS.
func compoundBase(op token.Token) token.Token {
	switch op {
	case token.PLUS_EQ:
		return token.PLUS
	case token.MINUS_EQ:
		return token.MINUS
	case token.STAR_EQ:
		return token.STAR
	case token.SLASH_EQ:
		return token.SLASH
	case token.PERCENT_EQ:
		return token.PERCENT
	case token.AMP_EQ:
		return token.AMPERSAND
	case token.PIPE_EQ:
		return token.PIPE
	case token.CIRCUMFLEX_EQ:
		return token.CIRCUMFLEX
	case token.LTLT_EQ:
		return token.LTLT
	case token.GTGT_EQ:
		return token.GTGT
	}
	return token.ILLEGAL
}

// incDecDelta picks the binary op `++`/`--` lowers to.
func incDecDelta(op token.Token) token.Token {
	if op == token.INC {
		return token.PLUS
	}
	return token.MINUS
}
