package compiler

import (
	"github.com/advsys/advc/lang/ast"
	"github.com/advsys/advc/lang/token"
)

// assign compiles `Left = Right` or a compound `Left <op>= Right` (spec
// §4.2, §4.4). Every store opcode family here (OpPopGlobal/Local/Arg,
// OpStore/OpStoreByte) pops the stored value, writes it, and pushes it
// straight back, so the assignment's own value is just whatever is left on
// the stack afterward -- no separate dup is needed for the `=` case.
func (fc *fcomp) assign(x *ast.AssignmentOp) error {
	if x.Op == token.EQ {
		switch t := x.Left.(type) {
		case *ast.GlobalSymbolRef:
			g := fc.lookupGlobal(t.Name)
			if err := fc.expr(x.Right); err != nil {
				return err
			}
			fc.emitGlobal(OpPopGlobal, g)
			return nil
		case *ast.LocalSymbolRef:
			if err := fc.expr(x.Right); err != nil {
				return err
			}
			fc.emitOp(OpPopLocal)
			fc.emitByte(byte(t.Index))
			return nil
		case *ast.ArgumentRef:
			if err := fc.expr(x.Right); err != nil {
				return err
			}
			fc.emitOp(OpPopArg)
			fc.emitByte(byte(t.Index))
			return nil
		case *ast.ArrayRef:
			if err := fc.arrayAddr(t); err != nil {
				return err
			}
			if err := fc.expr(x.Right); err != nil {
				return err
			}
			fc.emitOp(storeOp(t.Byte))
			return nil
		case *ast.PropertyRef:
			if err := fc.propertyAddr(t); err != nil {
				return err
			}
			if err := fc.expr(x.Right); err != nil {
				return err
			}
			fc.emitOp(OpStore)
			return nil
		}
		return fc.errorf(0, "compiler: invalid assignment target %T", x.Left)
	}

	base := compoundBase(x.Op)
	switch t := x.Left.(type) {
	case *ast.GlobalSymbolRef:
		g := fc.lookupGlobal(t.Name)
		fc.emitGlobal(OpPushGlobalVal, g)
		if err := fc.expr(x.Right); err != nil {
			return err
		}
		fc.emitOp(binaryOpcode(base))
		fc.emitGlobal(OpPopGlobal, g)
		return nil
	case *ast.LocalSymbolRef:
		fc.emitOp(OpPushLocalVal)
		fc.emitByte(byte(t.Index))
		if err := fc.expr(x.Right); err != nil {
			return err
		}
		fc.emitOp(binaryOpcode(base))
		fc.emitOp(OpPopLocal)
		fc.emitByte(byte(t.Index))
		return nil
	case *ast.ArgumentRef:
		fc.emitOp(OpPushArgVal)
		fc.emitByte(byte(t.Index))
		if err := fc.expr(x.Right); err != nil {
			return err
		}
		fc.emitOp(binaryOpcode(base))
		fc.emitOp(OpPopArg)
		fc.emitByte(byte(t.Index))
		return nil
	case *ast.ArrayRef:
		if err := fc.arrayAddr(t); err != nil {
			return err
		}
		fc.emitOp(OpDup)
		fc.emitOp(loadOp(t.Byte))
		if err := fc.expr(x.Right); err != nil {
			return err
		}
		fc.emitOp(binaryOpcode(base))
		fc.emitOp(storeOp(t.Byte))
		return nil
	case *ast.PropertyRef:
		if err := fc.propertyAddr(t); err != nil {
			return err
		}
		fc.emitOp(OpDup)
		fc.emitOp(OpLoad)
		if err := fc.expr(x.Right); err != nil {
			return err
		}
		fc.emitOp(binaryOpcode(base))
		fc.emitOp(OpStore)
		return nil
	}
	return fc.errorf(0, "compiler: invalid assignment target %T", x.Left)
}

// incDec compiles `++X`/`--X`/`X++`/`X--` (spec §4.4). A slot target (global,
// local, argument) reads and writes through the direct Push*Val/Pop* family;
// an addressable target (array element, property) computes its address once
// and reads/writes through it, since re-evaluating Array/Index or
// Object/Computed would double any side effect they carry.
func (fc *fcomp) incDec(x *ast.IncDecExpr) error {
	base := incDecDelta(x.Op)
	switch t := x.X.(type) {
	case *ast.GlobalSymbolRef:
		g := fc.lookupGlobal(t.Name)
		return fc.incDecSlot(
			func() { fc.emitGlobal(OpPushGlobalVal, g) },
			func() { fc.emitGlobal(OpPopGlobal, g) },
			base, x.Post)
	case *ast.LocalSymbolRef:
		idx := byte(t.Index)
		return fc.incDecSlot(
			func() { fc.emitOp(OpPushLocalVal); fc.emitByte(idx) },
			func() { fc.emitOp(OpPopLocal); fc.emitByte(idx) },
			base, x.Post)
	case *ast.ArgumentRef:
		idx := byte(t.Index)
		return fc.incDecSlot(
			func() { fc.emitOp(OpPushArgVal); fc.emitByte(idx) },
			func() { fc.emitOp(OpPopArg); fc.emitByte(idx) },
			base, x.Post)
	case *ast.ArrayRef:
		return fc.incDecAddr(func() error { return fc.arrayAddr(t) }, loadOp(t.Byte), storeOp(t.Byte), base, x.Post)
	case *ast.PropertyRef:
		return fc.incDecAddr(func() error { return fc.propertyAddr(t) }, OpLoad, OpStore, base, x.Post)
	}
	return fc.errorf(0, "compiler: invalid increment/decrement target %T", x.X)
}

func (fc *fcomp) incDecSlot(pushVal, popSlot func(), base token.Token, post bool) error {
	pushVal()
	if post {
		fc.emitOp(OpDup)
	}
	fc.emitOp(OpPushInt)
	fc.emitLong(1)
	fc.emitOp(binaryOpcode(base))
	popSlot()
	if post {
		fc.emitOp(OpPop)
	}
	return nil
}

func (fc *fcomp) incDecAddr(addr func() error, load, store Opcode, base token.Token, post bool) error {
	if err := addr(); err != nil {
		return err
	}
	fc.emitOp(OpDup)
	fc.emitOp(load)
	if post {
		fc.emitOp(OpSwap)
		fc.emitOp(OpDup)
		fc.emitOp(load)
	}
	fc.emitOp(OpPushInt)
	fc.emitLong(1)
	fc.emitOp(binaryOpcode(base))
	fc.emitOp(store)
	if post {
		fc.emitOp(OpPop)
	}
	return nil
}
