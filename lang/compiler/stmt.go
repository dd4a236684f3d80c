package compiler

import "github.com/advsys/advc/lang/ast"

func (fc *fcomp) stmts(list []ast.Stmt) error {
	for _, s := range list {
		if err := fc.stmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (fc *fcomp) stmt(s ast.Stmt) error {
	switch s := s.(type) {
	case *ast.EmptyStmt:
		return nil
	case *ast.ExprStmt:
		if err := fc.expr(s.X); err != nil {
			return err
		}
		fc.emitOp(OpPop)
		return nil
	case *ast.BlockStmt:
		return fc.stmts(s.Block.Stmts)
	case *ast.IfStmt:
		return fc.ifStmt(s)
	case *ast.WhileStmt:
		return fc.whileStmt(s)
	case *ast.DoWhileStmt:
		return fc.doWhileStmt(s)
	case *ast.ForStmt:
		return fc.forStmt(s)
	case *ast.ReturnStmt:
		if s.Value != nil {
			if err := fc.expr(s.Value); err != nil {
				return err
			}
		} else {
			fc.emitOp(OpPushInt)
			fc.emitLong(0)
		}
		fc.emitOp(OpReturn)
		return nil
	case *ast.BreakStmt:
		fc.emitBranch(OpJump, fc.breakLabels[len(fc.breakLabels)-1])
		return nil
	case *ast.ContinueStmt:
		fc.emitBranch(OpJump, fc.continueLabels[len(fc.continueLabels)-1])
		return nil
	case *ast.TryStmt:
		return fc.tryStmt(s)
	case *ast.ThrowStmt:
		if err := fc.expr(s.Value); err != nil {
			return err
		}
		fc.emitOp(OpThrow)
		return nil
	case *ast.AsmStmt:
		fc.code = append(fc.code, s.Code...)
		return nil
	case *ast.PrintStmt:
		return fc.printStmt(s)
	default:
		return fc.errorf(0, "compiler: unhandled statement %T", s)
	}
}

func (fc *fcomp) ifStmt(s *ast.IfStmt) error {
	if err := fc.expr(s.Cond); err != nil {
		return err
	}
	elseLabel := fc.newLabel()
	fc.emitBranch(OpJumpIfZero, elseLabel)
	if err := fc.stmts(s.Then.Stmts); err != nil {
		return err
	}
	if s.Else == nil {
		fc.bindLabel(elseLabel)
		return nil
	}
	end := fc.newLabel()
	fc.emitBranch(OpJump, end)
	fc.bindLabel(elseLabel)
	if err := fc.stmts(s.Else.Stmts); err != nil {
		return err
	}
	fc.bindLabel(end)
	return nil
}

func (fc *fcomp) whileStmt(s *ast.WhileStmt) error {
	start := fc.newLabel()
	end := fc.newLabel()
	fc.bindLabel(start)
	if err := fc.expr(s.Cond); err != nil {
		return err
	}
	fc.emitBranch(OpJumpIfZero, end)

	fc.continueLabels = append(fc.continueLabels, start)
	fc.breakLabels = append(fc.breakLabels, end)
	err := fc.stmts(s.Body.Stmts)
	fc.continueLabels = fc.continueLabels[:len(fc.continueLabels)-1]
	fc.breakLabels = fc.breakLabels[:len(fc.breakLabels)-1]
	if err != nil {
		return err
	}

	fc.emitBranch(OpJump, start)
	fc.bindLabel(end)
	return nil
}

func (fc *fcomp) doWhileStmt(s *ast.DoWhileStmt) error {
	start := fc.newLabel()
	cont := fc.newLabel()
	end := fc.newLabel()
	fc.bindLabel(start)

	fc.continueLabels = append(fc.continueLabels, cont)
	fc.breakLabels = append(fc.breakLabels, end)
	err := fc.stmts(s.Body.Stmts)
	fc.continueLabels = fc.continueLabels[:len(fc.continueLabels)-1]
	fc.breakLabels = fc.breakLabels[:len(fc.breakLabels)-1]
	if err != nil {
		return err
	}

	fc.bindLabel(cont)
	if err := fc.expr(s.Cond); err != nil {
		return err
	}
	fc.emitBranch(OpJumpIfNotZero, start)
	fc.bindLabel(end)
	return nil
}

func (fc *fcomp) forStmt(s *ast.ForStmt) error {
	if s.Init != nil {
		if err := fc.stmt(s.Init); err != nil {
			return err
		}
	}
	start := fc.newLabel()
	cont := fc.newLabel()
	end := fc.newLabel()
	fc.bindLabel(start)
	if s.Cond != nil {
		if err := fc.expr(s.Cond); err != nil {
			return err
		}
		fc.emitBranch(OpJumpIfZero, end)
	}

	fc.continueLabels = append(fc.continueLabels, cont)
	fc.breakLabels = append(fc.breakLabels, end)
	err := fc.stmts(s.Body.Stmts)
	fc.continueLabels = fc.continueLabels[:len(fc.continueLabels)-1]
	fc.breakLabels = fc.breakLabels[:len(fc.breakLabels)-1]
	if err != nil {
		return err
	}

	fc.bindLabel(cont)
	if s.Post != nil {
		if err := fc.stmt(s.Post); err != nil {
			return err
		}
	}
	fc.emitBranch(OpJump, start)
	fc.bindLabel(end)
	return nil
}

// tryStmt compiles `try { Body } catch (CatchName) { CatchBody }` (spec
// §4.2, §4.4): OpTryPush installs the handler for Body's extent, and the
// thrown value arrives on the stack when the handler is entered, so the
// first thing the catch body does is pop it into its reserved local slot.
func (fc *fcomp) tryStmt(s *ast.TryStmt) error {
	catch := fc.newLabel()
	end := fc.newLabel()
	fc.emitBranch(OpTryPush, catch)
	if err := fc.stmts(s.Body.Stmts); err != nil {
		return err
	}
	fc.emitOp(OpTryPop)
	fc.emitBranch(OpJump, end)

	fc.bindLabel(catch)
	fc.emitOp(OpPopLocal)
	fc.emitByte(byte(fc.fn.NumLocals + s.CatchDepth - 1))
	fc.emitOp(OpPop)
	if err := fc.stmts(s.CatchBody.Stmts); err != nil {
		return err
	}
	fc.bindLabel(end)
	return nil
}

func (fc *fcomp) printStmt(s *ast.PrintStmt) error {
	for _, it := range s.Items {
		_, isStr := it.X.(*ast.StringLit)
		if err := fc.expr(it.X); err != nil {
			return err
		}
		if it.ForceString || isStr {
			fc.emitOp(OpTrapPrintStr)
		} else {
			fc.emitOp(OpTrapPrintInt)
		}
	}
	if s.Newline {
		fc.emitOp(OpTrapNewline)
	}
	return nil
}
