package parser

import (
	"strings"

	"github.com/advsys/advc/lang/ast"
	"github.com/advsys/advc/lang/compiler"
	"github.com/advsys/advc/lang/token"
)

// parseAsm handles `asm { OPCODE [operand] ... }` (spec §4.2 "Asm block"):
// each instruction assembles straight into the code arena exactly as the
// eventual code generator would emit it, and the block's bytes are then
// captured into the AST node and the arena cursor rewound, so the outer
// code generator can re-emit them in place once it knows the enclosing
// function's final code offset.
//
// FMT_NATIVE's reference-compiler form peeks at the raw, not-yet-tokenized
// remainder of the source line; advc's lexer hands the parser tokens, not
// raw line text, so the native form here is a string literal carrying the
// native-assembly source instead.
func (p *parser) parseAsm() *ast.AsmStmt {
	start := p.expect(token.ASM)
	p.expect(token.LBRACE)

	codeStart := p.img.Code.Len()
	for p.tok != token.RBRACE {
		name, _ := p.expectIdent()
		op, ok := compiler.Lookup(strings.ToLower(name))
		if !ok {
			p.errorf("undefined opcode: %q", name)
		}
		if _, err := p.img.Code.AllocBytes([]byte{byte(op)}); err != nil {
			p.errorf("%s", err)
		}
		switch op.Format() {
		case compiler.FmtNone:
		case compiler.FmtByte, compiler.FmtSByte:
			v := p.parseConstantIntegerExpr()
			if _, err := p.img.Code.AllocBytes([]byte{byte(v)}); err != nil {
				p.errorf("%s", err)
			}
		case compiler.FmtLong:
			v := p.parseConstantIntegerExpr()
			if _, err := p.img.Code.AllocWord(v); err != nil {
				p.errorf("%s", err)
			}
		case compiler.FmtBr:
			v := p.parseConstantIntegerExpr()
			if v < -32768 || v > 32767 {
				p.errorf("branch offset out of range")
			}
			lo := uint16(int16(v))
			if _, err := p.img.Code.AllocBytes([]byte{byte(lo), byte(lo >> 8)}); err != nil {
				p.errorf("%s", err)
			}
		case compiler.FmtNative:
			p.parseNativeOperand()
		}
	}
	end := p.expect(token.RBRACE)

	code := append([]byte(nil), p.img.Code.Bytes()[codeStart:]...)
	p.img.Code.Rewind(codeStart)
	return &ast.AsmStmt{Start: start, End: end, Code: code}
}

// parseNativeOperand handles one FMT_NATIVE operand: a bare integer
// literal is emitted verbatim as a 32-bit word (spec §4.2's "a literal
// 16-bit word", widened here to the arena's uniform word size); otherwise
// a string literal is handed to the native-assembler sub-interface (spec
// §6 "Assembler sub-interface").
func (p *parser) parseNativeOperand() {
	if p.tok == token.INT {
		v := p.val.Int
		p.advance()
		if _, err := p.img.Code.AllocWord(v); err != nil {
			p.errorf("%s", err)
		}
		return
	}
	if p.tok != token.STRING {
		p.errorf("expecting an integer literal or a native-assembly string, found %s", p.tok)
	}
	line := p.val.String
	p.advance()
	word, _, err := p.asm.AssembleLine(line)
	if err != nil {
		p.errorf("%s", err)
	}
	if _, err := p.img.Code.AllocWord(int32(word)); err != nil {
		p.errorf("%s", err)
	}
}
