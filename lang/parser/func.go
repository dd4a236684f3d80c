package parser

import (
	"github.com/advsys/advc/lang/ast"
	"github.com/advsys/advc/lang/symtab"
	"github.com/advsys/advc/lang/token"
)

// parseFunction parses a function or method body: the argument list, the
// `var` locals prelude, and the statement block (spec §4.2 "Function /
// method bodies"). name and isMethod are already known to the caller
// (parseDef/parseObject), which also owns recording the result against the
// right symbol or property slot.
func (p *parser) parseFunction(name string, isMethod bool) *ast.FunctionDef {
	pos := p.pos()

	locals := symtab.NewLocalTable()
	if isMethod {
		locals.ReserveMethodSlots()
	}

	p.expect(token.LPAREN)
	if p.tok != token.RPAREN {
		for {
			argName, _ := p.expectIdent()
			if _, err := locals.AddArgument(argName); err != nil {
				p.errorf("%s", err)
			}
			if !p.accept(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN)

	p.expect(token.LBRACE)

	var prelude []ast.Stmt
	for p.tok == token.VAR {
		p.advance()
		for {
			localName, lpos := p.expectIdent()
			sym, err := locals.AddLocal(localName)
			if err != nil {
				p.errorf("%s", err)
			}
			if p.accept(token.EQ) {
				value := p.parseAssignmentExpr()
				prelude = append(prelude, &ast.ExprStmt{X: &ast.AssignmentOp{
					Op:    token.EQ,
					Left:  &ast.LocalSymbolRef{Pos: lpos, Name: localName, Index: sym.Index},
					Right: value,
				}})
			}
			if !p.accept(token.COMMA) {
				break
			}
		}
		p.expect(token.SEMI)
	}

	prevLocals, prevTry, prevLoop := p.curLocals, p.curTry, p.loopDepth
	p.curLocals = locals
	p.curTry = symtab.NewCatchStack(locals.NumLocals())
	p.loopDepth = 0
	defer func() {
		p.curLocals, p.curTry, p.loopDepth = prevLocals, prevTry, prevLoop
	}()

	var stmts []ast.Stmt
	stmts = append(stmts, prelude...)
	for p.tok != token.RBRACE {
		stmts = append(stmts, p.parseStatement())
	}
	end := p.expect(token.RBRACE)

	return &ast.FunctionDef{
		Pos:          pos,
		Name:         name,
		IsMethod:     isMethod,
		NumArguments: locals.NumArguments(),
		NumLocals:    locals.NumLocals(),
		MaxTryDepth:  p.curTry.MaxDepth(),
		Body:         &ast.Block{Start: pos, End: end, Stmts: stmts},
	}
}

// parseBlock parses a braced `{ ... }` statement sequence.
func (p *parser) parseBlock() *ast.Block {
	start := p.expect(token.LBRACE)
	var stmts []ast.Stmt
	for p.tok != token.RBRACE {
		stmts = append(stmts, p.parseStatement())
	}
	end := p.expect(token.RBRACE)
	return &ast.Block{Start: start, End: end, Stmts: stmts}
}

// parseControlledBlock parses the body of an if/while/do/for: a braced
// block, or a single statement treated as a one-statement block.
func (p *parser) parseControlledBlock() *ast.Block {
	if p.tok == token.LBRACE {
		return p.parseBlock()
	}
	stmt := p.parseStatement()
	start, end := stmt.Span()
	return &ast.Block{Start: start, End: end, Stmts: []ast.Stmt{stmt}}
}

// parseStatement dispatches on the leading token (spec §4.2).
func (p *parser) parseStatement() ast.Stmt {
	switch p.tok {
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.DO:
		return p.parseDoWhile()
	case token.FOR:
		return p.parseFor()
	case token.BREAK:
		return p.parseBreak()
	case token.CONTINUE:
		return p.parseContinue()
	case token.RETURN:
		return p.parseReturn()
	case token.TRY:
		return p.parseTry()
	case token.THROW:
		return p.parseThrow()
	case token.ASM:
		return p.parseAsm()
	case token.PRINT:
		return p.parsePrint(false)
	case token.PRINTLN:
		return p.parsePrint(true)
	case token.LBRACE:
		return &ast.BlockStmt{Block: p.parseBlock()}
	case token.SEMI:
		pos := p.pos()
		p.advance()
		return &ast.EmptyStmt{Pos: pos}
	default:
		return p.parseExprStatement()
	}
}

func (p *parser) parseIf() ast.Stmt {
	start := p.expect(token.IF)
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	then := p.parseControlledBlock()
	var els *ast.Block
	if p.accept(token.ELSE) {
		els = p.parseControlledBlock()
	}
	return &ast.IfStmt{Start: start, Cond: cond, Then: then, Else: els}
}

func (p *parser) parseWhile() ast.Stmt {
	start := p.expect(token.WHILE)
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	p.loopDepth++
	body := p.parseControlledBlock()
	p.loopDepth--
	return &ast.WhileStmt{Start: start, Cond: cond, Body: body}
}

func (p *parser) parseDoWhile() ast.Stmt {
	start := p.expect(token.DO)
	p.loopDepth++
	body := p.parseControlledBlock()
	p.loopDepth--
	p.expect(token.WHILE)
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	end := p.expect(token.SEMI)
	return &ast.DoWhileStmt{Start: start, End: end, Body: body, Cond: cond}
}

func (p *parser) parseFor() ast.Stmt {
	start := p.expect(token.FOR)
	p.expect(token.LPAREN)
	var init ast.Stmt
	if p.tok != token.SEMI {
		init = &ast.ExprStmt{X: p.parseExpr()}
	}
	p.expect(token.SEMI)
	var cond ast.Expr
	if p.tok != token.SEMI {
		cond = p.parseExpr()
	}
	p.expect(token.SEMI)
	var post ast.Stmt
	if p.tok != token.RPAREN {
		post = &ast.ExprStmt{X: p.parseExpr()}
	}
	p.expect(token.RPAREN)
	p.loopDepth++
	body := p.parseControlledBlock()
	p.loopDepth--
	return &ast.ForStmt{Start: start, Init: init, Cond: cond, Post: post, Body: body}
}

func (p *parser) parseBreak() ast.Stmt {
	if p.loopDepth == 0 {
		p.errorf("'break' outside a loop")
	}
	start := p.expect(token.BREAK)
	end := p.expect(token.SEMI)
	return &ast.BreakStmt{Start: start, End: end}
}

func (p *parser) parseContinue() ast.Stmt {
	if p.loopDepth == 0 {
		p.errorf("'continue' outside a loop")
	}
	start := p.expect(token.CONTINUE)
	end := p.expect(token.SEMI)
	return &ast.ContinueStmt{Start: start, End: end}
}

func (p *parser) parseReturn() ast.Stmt {
	start := p.expect(token.RETURN)
	var value ast.Expr
	if p.tok != token.SEMI {
		value = p.parseExpr()
	}
	end := p.expect(token.SEMI)
	return &ast.ReturnStmt{Start: start, End: end, Value: value}
}

// parseTry handles `try { ... } catch (NAME) { ... }` (spec §4.2: try
// without catch is a compile error, enforced here simply by requiring the
// CATCH token). The try's depth is entered before its body is parsed, so a
// try nested in the body (or in the catch body) takes the next depth. The
// catch symbol gets its name only once `catch (NAME)` is read and is
// popped right after the catch body, so it shadows identically-named
// globals only within that scope (spec §4.2, §9 open question).
func (p *parser) parseTry() ast.Stmt {
	start := p.expect(token.TRY)
	sym := p.curTry.Push("")
	body := p.parseBlock()
	p.expect(token.CATCH)
	p.expect(token.LPAREN)
	name, _ := p.expectIdent()
	p.expect(token.RPAREN)
	sym.Name = name
	catchBody := p.parseBlock()
	p.curTry.Pop()
	end, _ := catchBody.Span()
	return &ast.TryStmt{Start: start, End: end, Body: body, CatchName: name, CatchDepth: sym.Depth, CatchBody: catchBody}
}

func (p *parser) parseThrow() ast.Stmt {
	start := p.expect(token.THROW)
	value := p.parseExpr()
	end := p.expect(token.SEMI)
	return &ast.ThrowStmt{Start: start, End: end, Value: value}
}

func (p *parser) parseExprStatement() ast.Stmt {
	x := p.parseExpr()
	p.expect(token.SEMI)
	return &ast.ExprStmt{X: x}
}

// parsePrint handles `print`/`println` (spec §4.2 "Print statement"): a
// leading '#' forces an item to the string-emit trap regardless of its
// static kind; otherwise a string literal uses the string trap and
// anything else uses the integer trap. `println` (newline == true) with an
// empty item list emits only the newline trap.
func (p *parser) parsePrint(newline bool) ast.Stmt {
	var start token.Pos
	if newline {
		start = p.expect(token.PRINTLN)
	} else {
		start = p.expect(token.PRINT)
	}

	var items []ast.PrintItem
	if p.tok != token.SEMI {
		for {
			forceString := p.accept(token.HASH)
			x := p.parseAssignmentExpr()
			items = append(items, ast.PrintItem{X: x, ForceString: forceString})
			if !p.accept(token.COMMA) {
				break
			}
		}
	}
	end := p.expect(token.SEMI)
	return &ast.PrintStmt{Start: start, End: end, Items: items, Newline: newline}
}
