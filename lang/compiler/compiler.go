package compiler

import (
	"fmt"

	"github.com/advsys/advc/lang/arena"
	"github.com/advsys/advc/lang/ast"
	"github.com/advsys/advc/lang/symtab"
	"github.com/advsys/advc/lang/token"
)

// Error is the single error type the compiler returns, matching the
// parser's one-fatal-error-per-session model (spec "Error Handling
// Design").
type Error struct {
	Pos token.Position
	Msg string
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return e.Msg
}

// CompileProgram generates bytecode for every function and method
// lang/parser collected, in the order they were parsed, then resolves any
// fixup left pending against a function symbol now that its code offset
// is known (spec §4.2 step 4, §4.4, §4.5).
func CompileProgram(fset *token.FileSet, img *arena.Image, globals *symtab.GlobalTable, props *symtab.PropertyTable, prog *ast.Program) error {
	for _, fn := range prog.Functions {
		off, err := compileFunction(fset, img, globals, props, fn)
		if err != nil {
			return err
		}
		if fn.Global != nil {
			if defErr := fn.Global.Define(img.Code, img.Data, symtab.Function, off); defErr != nil {
				return &Error{Msg: defErr.Error()}
			}
		} else {
			img.Data.PutWord(int(fn.PropertyPatchOffset), off)
		}
	}
	return ResolveProgram(img, globals)
}

// ResolveProgram implements the end-of-compile pass of spec §4.5: anything
// still undefined that was referenced as an object or function is a fatal
// compile error.
func ResolveProgram(img *arena.Image, globals *symtab.GlobalTable) error {
	if err := globals.CheckResolved(); err != nil {
		return &Error{Msg: err.Error()}
	}
	return nil
}

// label identifies a not-yet-placed branch target within one function's
// code buffer.
type label int

// patch records a pending 16-bit pc-relative branch operand that must be
// rewritten once its label's final address is known.
type patch struct {
	offset int // offset of the 2-byte operand within fc.code
	label  label
}

// globalFixup records a 32-bit operand within fc.code that must carry a
// global symbol's resolved value, queued against lang/symtab's own
// fixup list once the function's final code offset places the operand at
// an absolute address (spec §4.5).
type globalFixup struct {
	offset int // offset of the 4-byte operand within fc.code
	g      *symtab.Global
}

// fcomp holds the compiler state for one function or method body, using a
// single linear emit pass with a label/patch list rather than a CFG of
// basic blocks: adv2 has no closures or captured cells forcing a
// multi-pass liveness analysis, so the simpler forward-reference
// label/patch strategy spec §4.4 describes is sufficient (see DESIGN.md).
type fcomp struct {
	fset    *token.FileSet
	globals *symtab.GlobalTable
	props   *symtab.PropertyTable
	fn      *ast.FunctionDef

	code         []byte
	labels       []int // label -> resolved offset, -1 if unresolved
	patches      []patch
	globalFixups []globalFixup

	breakLabels    []label
	continueLabels []label
}

func compileFunction(fset *token.FileSet, img *arena.Image, globals *symtab.GlobalTable, props *symtab.PropertyTable, fn *ast.FunctionDef) (int32, error) {
	fc := &fcomp{fset: fset, globals: globals, props: props, fn: fn}

	// prologue: reserve stack slots for locals and the maximum try depth
	// (spec §4.4 pass 1); catch-symbol slots occupy the tail of the local
	// slot range (spec §3, §4.2).
	totalSlots := fn.NumLocals + fn.MaxTryDepth
	if totalSlots > 0 {
		fc.emitOp(OpReserveLocals)
		fc.emitLong(int32(totalSlots))
	}

	if err := fc.stmts(fn.Body.Stmts); err != nil {
		return 0, err
	}

	// epilogue: a function that falls off the end returns zero (spec
	// §4.4 pass 3).
	fc.emitOp(OpPushInt)
	fc.emitLong(0)
	fc.emitOp(OpReturn)

	if err := fc.resolvePatches(); err != nil {
		return 0, err
	}

	off, err := img.Code.AllocBytes(fc.code)
	if err != nil {
		return 0, &Error{Msg: err.Error()}
	}
	for _, gf := range fc.globalFixups {
		gf.g.AddFixup(img.Code, img.Data, symtab.RegionCode, int32(off)+int32(gf.offset))
	}
	return int32(off), nil
}

func (fc *fcomp) errorf(pos token.Pos, format string, args ...interface{}) error {
	return &Error{Pos: fc.fset.Position(pos), Msg: fmt.Sprintf(format, args...)}
}

func (fc *fcomp) emitOp(op Opcode)          { fc.code = append(fc.code, byte(op)) }
func (fc *fcomp) emitByte(b byte)           { fc.code = append(fc.code, b) }
func (fc *fcomp) emitLong(v int32) {
	u := uint32(v)
	fc.code = append(fc.code, byte(u), byte(u>>8), byte(u>>16), byte(u>>24))
}

func (fc *fcomp) newLabel() label {
	fc.labels = append(fc.labels, -1)
	return label(len(fc.labels) - 1)
}

func (fc *fcomp) bindLabel(l label) { fc.labels[l] = len(fc.code) }

// emitBranch emits op followed by a placeholder 16-bit operand, patched to
// a pc-relative offset (relative to the first byte past the operand) once
// l is bound (spec §4.4 "Branch encoding").
func (fc *fcomp) emitBranch(op Opcode, l label) {
	fc.emitOp(op)
	fc.patches = append(fc.patches, patch{offset: len(fc.code), label: l})
	fc.code = append(fc.code, 0, 0)
}

// emitGlobal emits op followed by a placeholder 32-bit operand that will
// carry g's resolved value, via g's own forward-reference fixup list once
// this function's code is placed in the arena (spec §4.5).
func (fc *fcomp) emitGlobal(op Opcode, g *symtab.Global) {
	fc.emitOp(op)
	fc.globalFixups = append(fc.globalFixups, globalFixup{offset: len(fc.code), g: g})
	fc.emitLong(0)
}

func (fc *fcomp) resolvePatches() error {
	for _, pt := range fc.patches {
		target := fc.labels[pt.label]
		rel := target - (pt.offset + 2)
		if rel < -32768 || rel > 32767 {
			return &Error{Msg: "branch target out of 16-bit pc-relative range"}
		}
		u := uint16(int16(rel))
		fc.code[pt.offset] = byte(u)
		fc.code[pt.offset+1] = byte(u >> 8)
	}
	return nil
}

// lookupGlobal resolves a GlobalSymbolRef's name back to its *symtab.Global,
// which the parser deliberately didn't store on the AST node (spec §4.5:
// forward references are tracked by name until lang/compiler runs).
func (fc *fcomp) lookupGlobal(name string) *symtab.Global {
	g, ok := fc.globals.Find(name)
	if !ok {
		g = fc.globals.Undefined(name, symtab.Object)
	}
	return g
}
