package parser

import (
	"github.com/advsys/advc/lang/ast"
	"github.com/advsys/advc/lang/symtab"
	"github.com/advsys/advc/lang/token"
)

// parseDeclarations is the top-level loop: include, def, var, object and
// property declarations, plus bare vocabulary-word lists, until EOF (spec
// §4.3).
func (p *parser) parseDeclarations() {
	for p.tok != token.EOF {
		switch p.tok {
		case token.INCLUDE:
			p.parseInclude()
		case token.DEF:
			p.parseDef()
		case token.VAR:
			p.parseVar()
		case token.OBJECT:
			p.advance()
			p.parseObject("")
		case token.PROPERTY:
			p.parseProperty()
		case token.IDENT:
			name := p.val.Raw
			if wt := token.LookupWordType(name); wt != token.WordNone {
				p.advance()
				p.parseWords(wt)
			} else {
				p.advance()
				p.parseObject(name)
			}
		default:
			p.errorf("unknown declaration")
		}
	}
}

// parseInclude handles `include "file";` (spec §4.1): the named file is
// pushed onto the lexer's include stack and declarations resume from it
// transparently.
func (p *parser) parseInclude() {
	p.expect(token.INCLUDE)
	if p.tok != token.STRING {
		p.errorf("expected a string literal, found %s", p.tok)
	}
	name := p.val.String
	p.advance()
	// The include is pushed before advancing past the ';', so the token
	// that follows it is scanned only once the included file is exhausted.
	if p.tok != token.SEMI {
		p.errorf("expected %s, found %s", token.SEMI, p.tok)
	}
	if err := p.lex.PushFile(name); err != nil {
		p.errorf("%s", err)
	}
	p.advance()
}

// parseDef handles `def NAME = <const-expr>;` and `def NAME (...) {...}`
// (spec §4.2, §4.3).
func (p *parser) parseDef() {
	p.expect(token.DEF)
	name, _ := p.expectIdent()
	if p.accept(token.EQ) {
		value := p.parseConstantIntegerExpr()
		p.expect(token.SEMI)
		if _, err := p.globals.Define(p.img.Code, p.img.Data, name, symtab.Constant, value); err != nil {
			p.errorf("%s", err)
		}
		return
	}
	g := p.globals.Undefined(name, symtab.Function)
	if g.Defined {
		p.errorf("redefinition of %q", name)
	}
	if g.Class == symtab.Object {
		// an earlier forward reference left an undefined Object
		// placeholder; this definition claims it as a function.
		g.Class = symtab.Function
	}
	fn := p.parseFunction(name, false)
	fn.Global = g
	p.funcs = append(p.funcs, fn)
}

// parseVar handles the `var` statement: a comma-separated list of scalar
// and array global variable declarations (spec §4.3, grounded on
// adv2parse.c's ParseVar).
func (p *parser) parseVar() {
	p.expect(token.VAR)
	for {
		name, _ := p.expectIdent()
		if p.tok == token.LBRACK {
			p.parseArrayVar(name)
		} else {
			p.parseScalarVar(name)
		}
		if !p.accept(token.COMMA) {
			break
		}
	}
	p.expect(token.SEMI)
}

func (p *parser) parseScalarVar(name string) {
	off, err := p.img.Data.AllocWord(0)
	if err != nil {
		p.errorf("%s", err)
	}
	if _, err := p.globals.Define(p.img.Code, p.img.Data, name, symtab.Variable, int32(off)); err != nil {
		p.errorf("%s", err)
	}
	if p.accept(token.EQ) {
		value := p.parseScalarInitializer(int32(off))
		p.img.Data.PutWord(off, value)
	}
}

// parseArrayVar handles `name[size] = { ... };` and the bare `name[size];`
// and `name[] = { ... };` forms (spec §4.3). The array's own length word
// is allocated up front (so that forward references to the variable see
// a stable data offset immediately) and patched once the element count is
// known.
func (p *parser) parseArrayVar(name string) {
	p.expect(token.LBRACK)
	sizeOff, err := p.img.Data.AllocWord(0)
	if err != nil {
		p.errorf("%s", err)
	}
	if _, err := p.globals.Define(p.img.Code, p.img.Data, name, symtab.Variable, int32(sizeOff)+4); err != nil {
		p.errorf("%s", err)
	}

	declaredSize := -1
	if p.tok != token.RBRACK {
		declaredSize = int(p.parseConstantIntegerExpr())
		if declaredSize < 0 {
			p.errorf("expecting a positive array size")
		}
	}
	p.expect(token.RBRACK)

	var fill int32
	count := 0
	if p.accept(token.EQ) {
		if p.tok == token.LBRACE {
			p.advance()
			b := p.parseBraceInitializerList()
			p.expect(token.RBRACE)
			count = len(b.elems)
			if declaredSize >= 0 && count > declaredSize {
				p.errorf("too many initializers")
			}
			for _, v := range b.elems {
				if _, aerr := p.img.Data.AllocWord(v); aerr != nil {
					p.errorf("%s", aerr)
				}
			}
			for _, ref := range b.symRefs {
				elemOff := sizeOff + 4 + ref.Idx*4
				if ref.Sym.Defined {
					p.img.Data.PutWord(elemOff, ref.Sym.Value)
				} else {
					ref.Sym.AddFixup(p.img.Code, p.img.Data, symtab.RegionData, int32(elemOff))
				}
			}
			for _, child := range b.children {
				p.queuePlacement(int32(sizeOff+4+child.ElemIndex*4), child.Block)
			}
		} else {
			fill = p.parseConstantIntegerExpr()
		}
	}
	if declaredSize < 0 {
		declaredSize = count
	}
	for i := count; i < declaredSize; i++ {
		if _, aerr := p.img.Data.AllocWord(fill); aerr != nil {
			p.errorf("%s", aerr)
		}
	}
	p.placeNestedArrays()
	p.img.Data.PutWord(sizeOff, int32(declaredSize))
}

// parseScalarInitializer parses one scalar initializer expression whose
// target word already lives at offset, resolving a forward object or
// function reference via the global table's ordinary fixup mechanism
// (spec §4.5; grounded on adv2parse.c's ParseConstantLiteralExpr).
func (p *parser) parseScalarInitializer(offset int32) int32 {
	expr := p.parseAssignmentExpr()
	switch e := expr.(type) {
	case *ast.IntegerLit:
		return e.Value
	case *ast.StringLit:
		return e.Offset
	case *ast.GlobalSymbolRef:
		g, ok := p.globals.Find(e.Name)
		if ok && g.Class != symtab.Object && g.Class != symtab.Function {
			p.errorf("expecting a constant expression, object, or function")
			return 0
		}
		if !ok {
			g = p.globals.Undefined(e.Name, symtab.Object)
		}
		if g.Defined {
			return g.Value
		}
		g.AddFixup(p.img.Code, p.img.Data, symtab.RegionData, offset)
		return 0
	default:
		p.errorf("expecting a constant expression, object, or function")
		return 0
	}
}

// parseProperty handles a bare `property name, name, ...;` declaration
// (spec §4.3), interning each name as a property tag without assigning it
// a value.
func (p *parser) parseProperty() {
	p.expect(token.PROPERTY)
	for {
		name, _ := p.expectIdent()
		p.props.Intern(name)
		if !p.accept(token.COMMA) {
			break
		}
	}
	p.expect(token.SEMI)
}

// parseWords handles a vocabulary word list of a single word type, e.g.
// `verb "go", "walk";` (spec §4.3).
func (p *parser) parseWords(wt token.WordType) {
	for {
		if p.tok != token.STRING {
			p.errorf("expected a string literal, found %s", p.tok)
		}
		word := p.val.String
		p.advance()
		if _, _, err := p.img.InternString(word); err != nil {
			p.errorf("%s", err)
		}
		if err := p.vocab.Add(wt, word); err != nil {
			p.errorf("%s", err)
		}
		if !p.accept(token.COMMA) {
			break
		}
	}
	p.expect(token.SEMI)
}

// parseObject handles `object NAME { ... }` and `CLASSNAME NAME { ... }`
// (spec §4.3, §4.4). className is "" for a plain `object` declaration.
func (p *parser) parseObject(className string) {
	name, _ := p.expectIdent()

	builder, err := p.img.BeginObject(0)
	if err != nil {
		p.errorf("%s", err)
	}
	if _, defErr := p.globals.Define(p.img.Code, p.img.Data, name, symtab.Object, builder.HeaderOff); defErr != nil {
		p.errorf("%s", defErr)
	}

	if className != "" {
		classSym := p.globals.Undefined(className, symtab.Object)
		if !classSym.Defined {
			p.errorf("undefined class: %q", className)
		}
		p.img.Data.PutWord(int(builder.HeaderOff), classSym.Value)
		if err := builder.InheritFrom(classSym.Value); err != nil {
			p.errorf("%s", err)
		}
	}

	prevClass := p.curClass
	p.curClass = name
	defer func() { p.curClass = prevClass }()

	p.expect(token.LBRACE)
	for p.tok != token.RBRACE {
		shared := p.accept(token.SHARED)
		pname, _ := p.expectIdent()
		tag := p.props.Intern(pname)
		p.expect(token.COLON)

		idx := builder.FindInherited(tag)

		if p.tok == token.METHOD {
			p.advance()
			var valueOff int32
			if idx >= 0 {
				if builder.Props[idx].Shared {
					p.errorf("can't set shared property in object definition")
				}
				valueOff = builder.Props[idx].ValueOff
			} else {
				rec, aerr := builder.AddProperty(tag, shared, 0)
				if aerr != nil {
					p.errorf("%s", aerr)
				}
				valueOff = rec.ValueOff
			}
			fn := p.parseFunction(pname, true)
			fn.PropertyPatchOffset = valueOff
			p.funcs = append(p.funcs, fn)
		} else if p.tok == token.LBRACE {
			p.advance()
			b := p.parseBraceInitializerList()
			p.expect(token.RBRACE)
			var valueOff int32
			if idx >= 0 {
				if builder.Props[idx].Shared {
					p.errorf("can't set shared property in object definition")
				}
				valueOff = builder.Props[idx].ValueOff
			} else {
				rec, aerr := builder.AddProperty(tag, shared, 0)
				if aerr != nil {
					p.errorf("%s", aerr)
				}
				valueOff = rec.ValueOff
			}
			// The array itself is placed after the whole object finishes
			// (placeNestedArrays below), not inline here: the property
			// table that follows in the data arena must stay contiguous,
			// so the property's value word only ever holds the array's
			// eventual offset, patched in once it is placed.
			p.queuePlacement(valueOff, b)
		} else {
			var valueOff int32
			if idx >= 0 {
				if builder.Props[idx].Shared {
					p.errorf("can't set shared property in object definition")
				}
				valueOff = builder.Props[idx].ValueOff
			} else {
				rec, aerr := builder.AddProperty(tag, shared, 0)
				if aerr != nil {
					p.errorf("%s", aerr)
				}
				valueOff = rec.ValueOff
			}
			value := p.parseScalarInitializer(valueOff)
			p.img.Data.PutWord(int(valueOff), value)
		}
		p.expect(token.SEMI)
	}
	p.expect(token.RBRACE)

	p.placeNestedArrays()
}

// parseConstantIntegerExpr parses a constant-folded expression that must
// reduce to a plain integer literal (spec §4.2 "a compile-time constant
// expression... constant-folded during parsing").
func (p *parser) parseConstantIntegerExpr() int32 {
	expr := p.parseAssignmentExpr()
	lit, ok := expr.(*ast.IntegerLit)
	if !ok {
		p.errorf("expecting a constant expression")
		return 0
	}
	return lit.Value
}
