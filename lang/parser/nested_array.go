package parser

import (
	"github.com/advsys/advc/lang/ast"
	"github.com/advsys/advc/lang/symtab"
	"github.com/advsys/advc/lang/token"
)

// nestedBlock accumulates the elements of one `{ ... }` array literal
// while it is being parsed. Sizes are not known until the closing brace
// is reached, so nested blocks are built in an ordinary Go slice rather
// than committed straight to the data arena (spec §4.3 "Nested-array
// block"): placing them immediately would interleave their words with
// whatever contiguous declaration (a `var` array or an object's property
// table) is still being built around them.
type nestedBlock struct {
	elems    []int32
	children []nestedChild
	symRefs  []symRef
}

// nestedChild records that elems[ElemIndex] must be patched with Block's
// final placed offset once Block has been committed to the data arena.
type nestedChild struct {
	ElemIndex int
	Block     *nestedBlock
}

// symRef records a forward reference to a global (object or function)
// symbol inside elems[Idx], to be resolved via the global symbol table's
// ordinary fixup mechanism once this block's final address is known.
type symRef struct {
	Idx int
	Sym *symtab.Global
}

// nestedArrayRef is one top-level array queued for placement: either a
// `var`'s own initializer array or an object property's array value.
// PatchOffset is the absolute data-arena offset of the pointer slot that
// must receive the block's final element-0 offset (spec §6 "every array
// is prefixed by its length word").
type nestedArrayRef struct {
	PatchOffset int32
	Block       *nestedBlock
}

// parseBraceInitializerList parses a comma-separated list of initializer
// elements up to (but not including) the closing '}', which the caller
// consumes. Each element is either a nested `{...}` array (recorded as a
// child to place later) or a constant expression.
func (p *parser) parseBraceInitializerList() *nestedBlock {
	b := &nestedBlock{}
	for {
		if p.tok == token.LBRACE {
			p.advance()
			idx := len(b.elems)
			b.elems = append(b.elems, 0)
			child := p.parseBraceInitializerList()
			p.expect(token.RBRACE)
			b.children = append(b.children, nestedChild{ElemIndex: idx, Block: child})
		} else {
			idx := len(b.elems)
			v := p.parseConstantElement(b, idx)
			b.elems = append(b.elems, v)
		}
		if !p.accept(token.COMMA) {
			break
		}
	}
	return b
}

// parseConstantElement parses one initializer expression: an integer
// constant, a string literal (interned immediately, since advc's arenas
// commit offsets immediately unlike the reference compiler's two-phase
// scratch buffers), or a reference to an object/function symbol (which
// may still be forward-declared, in which case it is queued in b.symRefs
// to resolve once this block's final placement offset is known).
func (p *parser) parseConstantElement(b *nestedBlock, idx int) int32 {
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
		b.symRefs = append(b.symRefs, symRef{Idx: idx, Sym: g})
		return 0
	default:
		p.errorf("expecting a constant expression, object, or function")
		return 0
	}
}

// queuePlacement records a root-level block (a var or property array) for
// placement once the enclosing declaration finishes parsing.
func (p *parser) queuePlacement(patchOffset int32, b *nestedBlock) {
	p.pending = append(p.pending, &nestedArrayRef{PatchOffset: patchOffset, Block: b})
}

// placeNestedArrays commits every block queued since the last call,
// depth-first from each root, so that a block is always placed (and thus
// has a known final offset) before its parent's pointer slot to it is
// patched (spec §4.3, §6 "Nested-array block"). Called at the end of each
// array variable of a `var` statement, at the end of each `object`
// declaration, and once more when parsing finishes.
func (p *parser) placeNestedArrays() {
	for _, root := range p.pending {
		off := p.placeBlock(root.Block)
		p.img.Data.PutWord(int(root.PatchOffset), off)
	}
	p.pending = nil
}

// placeBlock commits b to the data arena (length word followed by
// elements) and recursively places its children, patching each child
// pointer slot into b's own now-fixed memory. It returns the offset of
// b's first element (spec §6's array convention: the length word lives
// at offset-4).
func (p *parser) placeBlock(b *nestedBlock) int32 {
	off, err := p.img.AllocArray(b.elems)
	if err != nil {
		p.errorf("%s", err)
	}
	for _, ref := range b.symRefs {
		elemOff := off + int32(ref.Idx)*4
		if ref.Sym.Defined {
			p.img.Data.PutWord(int(elemOff), ref.Sym.Value)
		} else {
			ref.Sym.AddFixup(p.img.Code, p.img.Data, symtab.RegionData, elemOff)
		}
	}
	for _, child := range b.children {
		childOff := p.placeBlock(child.Block)
		p.img.Data.PutWord(int(off+int32(child.ElemIndex)*4), childOff)
	}
	return off
}
