package compiler

import (
	"fmt"
	"io"

	"github.com/advsys/advc/lang/arena"
)

// Disassemble writes a listing of the bytecode in code[start:end] to w, one
// instruction per line, for the debug-dump feature (spec
// "SUPPLEMENTED FROM original_source/"). It has no opinion about function
// boundaries; callers pass the offset range of one function or the whole
// code arena.
func Disassemble(w io.Writer, code *arena.Arena, start, end int) error {
	b := code.Bytes()
	if end > len(b) {
		end = len(b)
	}
	for pc := start; pc < end; {
		op := Opcode(b[pc])
		fmt.Fprintf(w, "%06d  %-10s", pc, op)
		next := pc + 1
		switch op.Format() {
		case FmtNone:
		case FmtByte, FmtSByte:
			fmt.Fprintf(w, " %d", b[next])
			next++
		case FmtLong:
			v := int32(uint32(b[next]) | uint32(b[next+1])<<8 | uint32(b[next+2])<<16 | uint32(b[next+3])<<24)
			fmt.Fprintf(w, " %d", v)
			next += 4
		case FmtBr:
			rel := int16(uint16(b[next]) | uint16(b[next+1])<<8)
			fmt.Fprintf(w, " %+d -> %06d", rel, next+2+int(rel))
			next += 2
		case FmtNative:
			v := int32(uint32(b[next]) | uint32(b[next+1])<<8 | uint32(b[next+2])<<16 | uint32(b[next+3])<<24)
			fmt.Fprintf(w, " 0x%08x", uint32(v))
			next += 4
		}
		fmt.Fprintln(w)
		pc = next
	}
	return nil
}
