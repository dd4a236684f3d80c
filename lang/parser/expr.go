package parser

import (
	"github.com/advsys/advc/lang/ast"
	"github.com/advsys/advc/lang/symtab"
	"github.com/advsys/advc/lang/token"
)

// parseExpr parses the lowest-precedence comma operator (spec §4.2's level
// 1, "comma").
func (p *parser) parseExpr() ast.Expr {
	first := p.parseAssignmentExpr()
	if p.tok != token.COMMA {
		return first
	}
	exprs := []ast.Expr{first}
	for p.accept(token.COMMA) {
		exprs = append(exprs, p.parseAssignmentExpr())
	}
	return &ast.CommaExpr{Exprs: exprs}
}

// parseAssignmentExpr parses level 2: right-associative `=` and the
// compound assignment operators, over a ternary-or-lower left-hand side
// (spec §4.2).
func (p *parser) parseAssignmentExpr() ast.Expr {
	left := p.parseTernaryExpr()
	if p.tok == token.EQ || p.tok.IsCompoundAssign() {
		op := p.tok
		p.advance()
		right := p.parseAssignmentExpr()
		p.checkLValue(left)
		return &ast.AssignmentOp{Op: op, Left: left, Right: right}
	}
	return left
}

// parseTernaryExpr parses level 3: `Cond ? Then : Else` (spec §4.2).
func (p *parser) parseTernaryExpr() ast.Expr {
	cond := p.parseDisjunction()
	if !p.accept(token.QUESTION) {
		return cond
	}
	then := p.parseAssignmentExpr()
	p.expect(token.COLON)
	els := p.parseAssignmentExpr()
	if lit, ok := cond.(*ast.IntegerLit); ok {
		if lit.Value != 0 {
			return then
		}
		return els
	}
	return &ast.TernaryOp{Cond: cond, Then: then, Else: els}
}

// parseDisjunction parses level 4: `||`, flattened into one variadic node
// (spec §4.2).
func (p *parser) parseDisjunction() ast.Expr {
	first := p.parseConjunction()
	if p.tok != token.OROR {
		return first
	}
	exprs := []ast.Expr{first}
	for p.accept(token.OROR) {
		exprs = append(exprs, p.parseConjunction())
	}
	return &ast.Disjunction{Exprs: exprs}
}

// parseConjunction parses level 5: `&&`, flattened into one variadic node
// (spec §4.2).
func (p *parser) parseConjunction() ast.Expr {
	first := p.parseExpr3()
	if p.tok != token.ANDAND {
		return first
	}
	exprs := []ast.Expr{first}
	for p.accept(token.ANDAND) {
		exprs = append(exprs, p.parseExpr3())
	}
	return &ast.Conjunction{Exprs: exprs}
}

// parseExpr3 parses level 6: bitwise `^`.
func (p *parser) parseExpr3() ast.Expr { return p.parseBinaryLevel(p.parseExpr4, token.CIRCUMFLEX) }

// parseExpr4 parses level 7: bitwise `|`.
func (p *parser) parseExpr4() ast.Expr { return p.parseBinaryLevel(p.parseExpr5, token.PIPE) }

// parseExpr5 parses level 8: bitwise `&`.
func (p *parser) parseExpr5() ast.Expr { return p.parseBinaryLevel(p.parseExpr6, token.AMPERSAND) }

// parseExpr6 parses level 9: equality `== !=`.
func (p *parser) parseExpr6() ast.Expr {
	return p.parseBinaryLevel(p.parseExpr7, token.EQEQ, token.NEQ)
}

// parseExpr7 parses level 10: relational `< <= >= >`.
func (p *parser) parseExpr7() ast.Expr {
	return p.parseBinaryLevel(p.parseExpr8, token.LT, token.LE, token.GE, token.GT)
}

// parseExpr8 parses level 11: shifts `<< >>`.
func (p *parser) parseExpr8() ast.Expr {
	return p.parseBinaryLevel(p.parseExpr9, token.LTLT, token.GTGT)
}

// parseExpr9 parses level 12: additive `+ -`.
func (p *parser) parseExpr9() ast.Expr {
	return p.parseBinaryLevel(p.parseExpr10, token.PLUS, token.MINUS)
}

// parseExpr10 parses level 13: multiplicative `* / %`.
func (p *parser) parseExpr10() ast.Expr {
	return p.parseBinaryLevel(p.parseUnaryExpr, token.STAR, token.SLASH, token.PERCENT)
}

// parseBinaryLevel parses one left-associative binary precedence level,
// constant-folding whenever both operands are integer literals (spec §4.2
// "Constant folding").
func (p *parser) parseBinaryLevel(next func() ast.Expr, ops ...token.Token) ast.Expr {
	left := next()
	for {
		matched := false
		for _, op := range ops {
			if p.tok == op {
				matched = true
				break
			}
		}
		if !matched {
			return left
		}
		op := p.tok
		p.advance()
		right := next()
		left = p.foldBinary(op, left, right)
	}
}

func (p *parser) foldBinary(op token.Token, x, y ast.Expr) ast.Expr {
	xi, xok := x.(*ast.IntegerLit)
	yi, yok := y.(*ast.IntegerLit)
	if xok && yok {
		if v, ok := p.evalBinary(op, xi.Value, yi.Value); ok {
			return &ast.IntegerLit{Pos: xi.Pos, Value: v}
		}
	}
	return &ast.BinaryOp{Op: op, X: x, Y: y}
}

func (p *parser) evalBinary(op token.Token, a, b int32) (int32, bool) {
	switch op {
	case token.PLUS:
		return a + b, true
	case token.MINUS:
		return a - b, true
	case token.STAR:
		return a * b, true
	case token.SLASH:
		if b == 0 {
			p.errorf("division by zero in constant expression")
			return 0, false
		}
		return a / b, true
	case token.PERCENT:
		if b == 0 {
			p.errorf("division by zero in constant expression")
			return 0, false
		}
		return a % b, true
	case token.AMPERSAND:
		return a & b, true
	case token.PIPE:
		return a | b, true
	case token.CIRCUMFLEX:
		return a ^ b, true
	case token.LTLT:
		return a << uint32(b), true
	case token.GTGT:
		return a >> uint32(b), true
	case token.EQEQ:
		return boolWord(a == b), true
	case token.NEQ:
		return boolWord(a != b), true
	case token.LT:
		return boolWord(a < b), true
	case token.LE:
		return boolWord(a <= b), true
	case token.GE:
		return boolWord(a >= b), true
	case token.GT:
		return boolWord(a > b), true
	}
	return 0, false
}

func boolWord(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// parseUnaryExpr parses level 14: prefix `+ - ! ~ ++ --` (spec §4.2), with
// immediate constant folding for `+ - ! ~` on a literal operand.
func (p *parser) parseUnaryExpr() ast.Expr {
	switch p.tok {
	case token.PLUS:
		p.advance()
		return p.parseUnaryExpr()
	case token.MINUS:
		pos := p.pos()
		p.advance()
		x := p.parseUnaryExpr()
		if lit, ok := x.(*ast.IntegerLit); ok {
			return &ast.IntegerLit{Pos: pos, Value: -lit.Value}
		}
		return &ast.UnaryOp{Pos: pos, Op: token.MINUS, X: x}
	case token.BANG:
		pos := p.pos()
		p.advance()
		x := p.parseUnaryExpr()
		if lit, ok := x.(*ast.IntegerLit); ok {
			return &ast.IntegerLit{Pos: pos, Value: boolWord(lit.Value == 0)}
		}
		return &ast.UnaryOp{Pos: pos, Op: token.BANG, X: x}
	case token.TILDE:
		pos := p.pos()
		p.advance()
		x := p.parseUnaryExpr()
		if lit, ok := x.(*ast.IntegerLit); ok {
			return &ast.IntegerLit{Pos: pos, Value: ^lit.Value}
		}
		return &ast.UnaryOp{Pos: pos, Op: token.TILDE, X: x}
	case token.INC, token.DEC:
		op := p.tok
		pos := p.pos()
		p.advance()
		x := p.parseUnaryExpr()
		p.checkLValue(x)
		_, end := x.Span()
		return &ast.IncDecExpr{Pos: pos, End: end, Op: op, X: x, Post: false}
	default:
		return p.parsePostfixExpr()
	}
}

// parsePostfixExpr parses level 15: primary with its postfix chain --
// `[...]`, `(...)`, `.selector`, trailing `++`/`--` (spec §4.2).
func (p *parser) parsePostfixExpr() ast.Expr {
	x := p.parsePrimaryExpr()
	for {
		switch p.tok {
		case token.LBRACK:
			p.advance()
			idx := p.parseExpr()
			end := p.expect(token.RBRACK)
			x = &ast.ArrayRef{End: end, Array: x, Index: idx}
		case token.LPAREN:
			p.advance()
			args := p.parseArgList()
			end := p.expect(token.RPAREN)
			x = &ast.FunctionCall{End: end, Fn: x, Args: args}
		case token.DOT:
			p.advance()
			x = p.parseSelector(x, false)
		case token.INC, token.DEC:
			op := p.tok
			end := p.pos() + 2
			p.advance()
			p.checkLValue(x)
			start, _ := x.Span()
			x = &ast.IncDecExpr{Pos: start, End: end, Op: op, X: x, Post: true}
		default:
			return x
		}
	}
}

// parseSelector parses everything after a `.` following object: `.class`,
// `.byte[i]`, `.IDENT`, `.IDENT(args)`, `.(expr)` and `.(expr)(args)` (spec
// §4.2 "Property access"). isSuper is true when object is nil because the
// receiver was the `super` keyword.
func (p *parser) parseSelector(object ast.Expr, isSuper bool) ast.Expr {
	if p.tok == token.CLASS {
		end := p.pos() + 5
		p.advance()
		return &ast.ClassRef{End: end, Object: object}
	}
	if p.tok == token.BYTE {
		p.advance()
		p.expect(token.LBRACK)
		idx := p.parseExpr()
		end := p.expect(token.RBRACK)
		return &ast.ArrayRef{End: end, Array: object, Index: idx, Byte: true}
	}
	if p.tok == token.LPAREN {
		p.advance()
		sel := p.parseAssignmentExpr()
		p.expect(token.RPAREN)
		if p.tok == token.LPAREN {
			p.advance()
			args := p.parseArgList()
			end := p.expect(token.RPAREN)
			return p.finishMethodCall(object, "", -1, sel, args, end, isSuper)
		}
		end, _ := sel.Span()
		return &ast.PropertyRef{End: end, Object: object, Tag: -1, Computed: sel}
	}
	name, _ := p.expectIdent()
	tag := p.props.Intern(name)
	if p.tok == token.LPAREN {
		p.advance()
		args := p.parseArgList()
		end := p.expect(token.RPAREN)
		return p.finishMethodCall(object, name, tag, nil, args, end, isSuper)
	}
	end := p.pos()
	return &ast.PropertyRef{End: end, Object: object, Name: name, Tag: tag}
}

func (p *parser) finishMethodCall(object ast.Expr, name string, tag int32, sel ast.Expr, args []ast.Expr, end token.Pos, isSuper bool) ast.Expr {
	mc := &ast.MethodCall{
		End:          end,
		Receiver:     object,
		SelectorName: name,
		SelectorTag:  tag,
		Selector:     sel,
		Args:         args,
		IsSuper:      isSuper,
	}
	if isSuper {
		if p.curClass == "" {
			p.errorf("'super' used outside a method")
		}
		mc.ClassRef = p.curClass
	}
	return mc
}

func (p *parser) parseArgList() []ast.Expr {
	var args []ast.Expr
	if p.tok == token.RPAREN {
		return args
	}
	for {
		args = append(args, p.parseAssignmentExpr())
		if !p.accept(token.COMMA) {
			break
		}
	}
	return args
}

// parsePrimaryExpr parses a literal, parenthesized expression, `super.…`,
// or an identifier resolved per GetSymbolRef's shadowing order (spec §9
// open question: try symbols, then locals, then arguments, then globals).
func (p *parser) parsePrimaryExpr() ast.Expr {
	switch p.tok {
	case token.INT:
		v, pos := p.val.Int, p.pos()
		p.advance()
		return &ast.IntegerLit{Pos: pos, Value: v}
	case token.STRING:
		s, pos := p.val.String, p.pos()
		p.advance()
		off, _, err := p.img.InternString(s)
		if err != nil {
			p.errorf("%s", err)
		}
		return &ast.StringLit{Pos: pos, Value: s, Offset: off}
	case token.LPAREN:
		p.advance()
		x := p.parseExpr()
		p.expect(token.RPAREN)
		return x
	case token.SUPER:
		p.advance()
		p.expect(token.DOT)
		return p.parseSelector(nil, true)
	case token.IDENT:
		name, pos := p.expectIdent()
		return p.resolveIdent(name, pos)
	default:
		p.errorf("unexpected token %s in expression", p.tok)
		return &ast.IntegerLit{}
	}
}

// resolveIdent implements GetSymbolRef's name resolution order (spec §9):
// an active try/catch symbol shadows a same-named local, which shadows a
// same-named argument, which shadows a same-named global. A name matching
// none of those becomes a forward-declared global placeholder (spec §4.5,
// preserving the "added as undefined objects" behavior the open question
// calls out).
func (p *parser) resolveIdent(name string, pos token.Pos) ast.Expr {
	if p.curTry != nil {
		if sym, ok := p.curTry.Find(name); ok {
			return &ast.LocalSymbolRef{Pos: pos, Name: name, Index: p.curTry.SlotFor(sym.Depth)}
		}
	}
	if p.curLocals != nil {
		if sym, ok := p.curLocals.FindLocal(name); ok {
			return &ast.LocalSymbolRef{Pos: pos, Name: name, Index: sym.Index}
		}
		if sym, ok := p.curLocals.FindArgument(name); ok {
			return &ast.ArgumentRef{Pos: pos, Name: name, Index: sym.Index}
		}
	}
	g, ok := p.globals.Find(name)
	if !ok {
		g = p.globals.Undefined(name, symtab.Object)
	}
	if g.Class == symtab.Constant && g.Defined {
		return &ast.IntegerLit{Pos: pos, Value: g.Value}
	}
	return &ast.GlobalSymbolRef{Pos: pos, Name: name}
}

// checkLValue rejects an assignment or increment/decrement target that can
// never be an addressable l-value (spec §4.4 "Assignment targets").
func (p *parser) checkLValue(x ast.Expr) {
	switch x.(type) {
	case *ast.GlobalSymbolRef, *ast.LocalSymbolRef, *ast.ArgumentRef, *ast.ArrayRef, *ast.PropertyRef:
		return
	default:
		p.errorf("expression is not assignable")
	}
}
