// Package parser implements the adv2 recursive-descent parser: it walks
// the token stream produced by lang/scanner and, as a side effect of
// parsing, lays out the program directly into the code/data/string arenas
// and symbol tables of lang/arena and lang/symtab (spec §4.2, §4.3). The
// only tree it actually returns is the one lang/ast models: the bodies of
// `def` functions and object methods, which lang/compiler still has to
// turn into bytecode.
package parser

import (
	"fmt"

	"github.com/advsys/advc/lang/arena"
	"github.com/advsys/advc/lang/ast"
	"github.com/advsys/advc/lang/nativeasm"
	"github.com/advsys/advc/lang/scanner"
	"github.com/advsys/advc/lang/symtab"
	"github.com/advsys/advc/lang/token"
)

// Result is everything ParseProgram produces: the parsed
// function and method bodies plus the symbol and memory state they refer
// to, ready for lang/compiler to generate code from.
type Result struct {
	Program   *ast.Program
	Image     *arena.Image
	Globals   *symtab.GlobalTable
	Props     *symtab.PropertyTable
	Vocab     *symtab.VocabTable
	FileSet   *token.FileSet
}

// ParseProgram parses rootFile (and everything it transitively includes)
// and returns the completed Result, or the single fatal CompileError that
// aborted the compile.
func ParseProgram(rootFile string, lim arena.Limits, asm nativeasm.Assembler) (res *Result, err error) {
	fset := token.NewFileSet()
	p := &parser{
		fset:    fset,
		globals: symtab.NewGlobalTable(),
		props:   symtab.NewPropertyTable(),
		vocab:   symtab.NewVocabTable(),
		img:     arena.NewImage(lim),
		asm:     asm,
	}
	p.lex = scanner.NewLexer(fset, func(pos token.Position, msg string) {
		panic(fatal{&CompileError{Pos: pos, Msg: msg}})
	})

	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(fatal)
			if !ok {
				panic(r)
			}
			err = f.err
		}
	}()

	if pushErr := p.lex.PushFile(rootFile); pushErr != nil {
		return nil, &CompileError{Msg: pushErr.Error()}
	}
	p.advance()

	p.parseDeclarations()
	p.placeNestedArrays()

	return &Result{
		Program: &ast.Program{Functions: p.funcs},
		Image:   p.img,
		Globals: p.globals,
		Props:   p.props,
		Vocab:   p.vocab,
		FileSet: fset,
	}, nil
}

// parser holds all mutable state threaded through the declaration,
// statement and expression parsing methods. There is exactly one parser
// per compile session: unlike the teacher's Starlark parser, adv2 never
// recovers from an error mid-parse, so there is no need for an
// error-accumulation list or panic-mode statement resync.
type parser struct {
	fset *token.FileSet
	lex  *scanner.Lexer

	tok token.Token
	val token.Value

	globals *symtab.GlobalTable
	props   *symtab.PropertyTable
	vocab   *symtab.VocabTable
	img     *arena.Image
	asm     nativeasm.Assembler

	funcs   []*ast.FunctionDef
	pending []*nestedArrayRef

	// curClass is the name of the object currently being parsed, used to
	// resolve `super.selector(...)` inside one of its methods (spec §4.4).
	curClass string

	// curLocals and curTry are non-nil only while a function or method
	// body is being parsed; they back GetSymbolRef's try-symbols-then-
	// locals-then-arguments shadowing order (spec §9 open question) and
	// the break/continue-outside-a-loop and try-depth checks.
	curLocals  *symtab.LocalTable
	curTry     *symtab.CatchStack
	loopDepth  int
}

func (p *parser) advance() {
	p.tok, p.val = p.lex.Scan()
}

func (p *parser) pos() token.Pos { return p.val.Pos }

func (p *parser) position() token.Position { return p.fset.Position(p.val.Pos) }

func (p *parser) errorf(format string, args ...interface{}) {
	panic(fatal{&CompileError{Pos: p.position(), Msg: fmt.Sprintf(format, args...)}})
}

func (p *parser) expect(tok token.Token) token.Pos {
	if p.tok != tok {
		p.errorf("expected %s, found %s", tok, p.tok)
	}
	pos := p.val.Pos
	p.advance()
	return pos
}

func (p *parser) expectIdent() (string, token.Pos) {
	if p.tok != token.IDENT {
		p.errorf("expected identifier, found %s", p.tok)
	}
	name, pos := p.val.Raw, p.val.Pos
	p.advance()
	return name, pos
}

func (p *parser) accept(tok token.Token) bool {
	if p.tok == tok {
		p.advance()
		return true
	}
	return false
}
