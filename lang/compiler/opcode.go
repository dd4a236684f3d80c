// Package compiler walks the AST lang/parser builds and emits bytecode for
// the adv2 stack VM (spec §4.4): three passes per function (prologue, body,
// epilogue), a break/continue label stack, try-depth bookkeeping, and
// 16-bit pc-relative branch patching. The VM that eventually executes this
// bytecode is out of scope (spec §1); only a self-consistent instruction
// set and the disassembler needed for the debug-dump feature live here.
package compiler

// Opcode is one stack-VM instruction (spec §4.4's "Opcodes cover
// arithmetic, bitwise, comparison, unary, conditional and unconditional
// branches, call/return, push-literal, push-global/local/argument address
// or value, load/store (long and byte), array index (long and byte),
// property fetch/store, method dispatch..., try/catch frame push/pop,
// throw, trap...").
type Opcode byte

// Operand format, mirroring the asm block's format dictionary (spec §4.2
// "Asm block").
type Format int

const (
	FmtNone   Format = iota // no operand
	FmtByte                 // one unsigned byte
	FmtSByte                // one signed byte
	FmtLong                 // one 32-bit word
	FmtBr                   // one 16-bit pc-relative branch offset
	FmtNative               // delegates to the native-assembler sub-interface
)

//nolint:revive
const (
	OpNop Opcode = iota

	// arithmetic / bitwise / comparison / unary (pop operand(s), push result)
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpAnd
	OpOr
	OpXor
	OpShl
	OpShr
	OpCmpEq
	OpCmpNe
	OpCmpLt
	OpCmpLe
	OpCmpGe
	OpCmpGt
	OpNeg
	OpBitNot
	OpLogNot

	// push-literal
	OpPushInt // FmtLong: push a 32-bit literal

	// global access (FmtLong: data-arena offset)
	OpPushGlobalVal
	OpPushGlobalAddr
	OpPopGlobal

	// local/argument access (FmtByte: slot index)
	OpPushLocalVal
	OpPushLocalAddr
	OpPopLocal
	OpPushArgVal
	OpPushArgAddr
	OpPopArg

	// indirect load/store through an address already on the stack
	OpLoad      // FmtNone: pop addr, push word at addr
	OpLoadByte  // FmtNone: pop addr, push zero-extended byte at addr
	OpStore     // FmtNone: pop value, pop addr, store word, push value back
	OpStoreByte // FmtNone: pop value, pop addr, store low byte, push value back

	// array indexing: pop index, pop base, push element address
	OpIndex     // FmtNone: long-word indexing (base + index*4)
	OpIndexByte // FmtNone: byte indexing (base + index)

	// property access
	OpPropAddr    // FmtLong operand: property tag; pop object, push property address
	OpPropAddrDyn // FmtNone: pop tag, pop object, push property address (computed `.(expr)` selector)
	OpClassRef    // FmtNone: pop object, push its class reference word

	// call / method dispatch / return
	OpCall            // FmtByte operand: argument count; stack: args..., fn-addr
	OpCallMethod      // FmtByte operand: argument count; stack: args..., receiver, selector
	OpCallMethodSuper // FmtByte operand: argument count; stack: args..., receiver, selector, class-ref
	OpReturn          // FmtNone: pop value, return it to the caller

	// branches (FmtBr: 16-bit pc-relative offset, spec §4.4 "Branch encoding")
	OpJump         // unconditional
	OpJumpIfZero   // pop value, branch if zero
	OpJumpIfNotZero // pop value, branch if nonzero

	// try/catch (spec §4.2, §4.4)
	OpTryPush // FmtBr operand: pc-relative offset of the catch handler
	OpTryPop  // FmtNone: leave the innermost try scope normally
	OpThrow   // FmtNone: pop value, unwind to the nearest try frame

	// trap (host services, spec GLOSSARY "Trap")
	OpTrapPrintStr // FmtNone: pop a string-pool offset, print it
	OpTrapPrintInt // FmtNone: pop a value, print its decimal form
	OpTrapNewline  // FmtNone: print a newline

	// pop the expression-statement result that nothing else consumes
	OpPop

	// stack shuffling, used by assignment and increment/decrement codegen
	OpDup  // FmtNone: push a copy of the top of the stack
	OpSwap // FmtNone: swap the top two stack words

	// FmtLong operand: slot count; reserves a function's local/catch frame
	OpReserveLocals

	// FmtNative operand: one inline native machine word, assembled by the
	// native-assembler sub-interface or given literally (spec §4.2 "Asm
	// block", §6 "Assembler sub-interface").
	OpNative

	maxOpcode
)

// OpcodeDef names one opcode and its operand format, shared between the
// asm-block assembler (lang/parser) and the disassembler below.
type OpcodeDef struct {
	Name string
	Fmt  Format
}

// OpcodeTable is the full name/format table, grounded on adv2parse.c's
// ParseAsm OpcodeTable contract (name → code + format) but with
// compiler-internal opcode values instead of the C original's, since the
// VM layer itself is out of scope (spec §1).
var OpcodeTable = [...]OpcodeDef{
	OpNop:             {"nop", FmtNone},
	OpAdd:             {"add", FmtNone},
	OpSub:             {"sub", FmtNone},
	OpMul:             {"mul", FmtNone},
	OpDiv:             {"div", FmtNone},
	OpMod:             {"mod", FmtNone},
	OpAnd:             {"and", FmtNone},
	OpOr:              {"or", FmtNone},
	OpXor:             {"xor", FmtNone},
	OpShl:             {"shl", FmtNone},
	OpShr:             {"shr", FmtNone},
	OpCmpEq:           {"cmpeq", FmtNone},
	OpCmpNe:           {"cmpne", FmtNone},
	OpCmpLt:           {"cmplt", FmtNone},
	OpCmpLe:           {"cmple", FmtNone},
	OpCmpGe:           {"cmpge", FmtNone},
	OpCmpGt:           {"cmpgt", FmtNone},
	OpNeg:             {"neg", FmtNone},
	OpBitNot:          {"bitnot", FmtNone},
	OpLogNot:          {"lognot", FmtNone},
	OpPushInt:         {"pushint", FmtLong},
	OpPushGlobalVal:   {"pushgval", FmtLong},
	OpPushGlobalAddr:  {"pushgaddr", FmtLong},
	OpPopGlobal:       {"popg", FmtLong},
	OpPushLocalVal:    {"pushlval", FmtByte},
	OpPushLocalAddr:   {"pushladdr", FmtByte},
	OpPopLocal:        {"popl", FmtByte},
	OpPushArgVal:       {"pushaval", FmtByte},
	OpPushArgAddr:      {"pushaaddr", FmtByte},
	OpPopArg:          {"popa", FmtByte},
	OpLoad:            {"load", FmtNone},
	OpLoadByte:        {"loadb", FmtNone},
	OpStore:           {"store", FmtNone},
	OpStoreByte:       {"storeb", FmtNone},
	OpIndex:           {"index", FmtNone},
	OpIndexByte:       {"indexb", FmtNone},
	OpPropAddr:        {"propaddr", FmtLong},
	OpPropAddrDyn:     {"propaddrx", FmtNone},
	OpClassRef:        {"classref", FmtNone},
	OpCall:            {"call", FmtByte},
	OpCallMethod:      {"callm", FmtByte},
	OpCallMethodSuper: {"callms", FmtByte},
	OpReturn:          {"return", FmtNone},
	OpJump:            {"jump", FmtBr},
	OpJumpIfZero:      {"jz", FmtBr},
	OpJumpIfNotZero:   {"jnz", FmtBr},
	OpTryPush:         {"trypush", FmtBr},
	OpTryPop:          {"trypop", FmtNone},
	OpThrow:           {"throw", FmtNone},
	OpTrapPrintStr:    {"trapstr", FmtNone},
	OpTrapPrintInt:    {"trapint", FmtNone},
	OpTrapNewline:     {"trapnl", FmtNone},
	OpPop:             {"pop", FmtNone},
	OpDup:             {"dup", FmtNone},
	OpSwap:            {"swap", FmtNone},
	OpReserveLocals:   {"reserve", FmtLong},
	OpNative:          {"native", FmtNative},
}

// Lookup returns the opcode named name and reports whether it exists,
// matching lowercase mnemonics as emitted by OpcodeTable and accepted by an
// `asm { }` block (spec §4.2).
func Lookup(name string) (Opcode, bool) {
	for i, def := range OpcodeTable {
		if def.Name == name {
			return Opcode(i), true
		}
	}
	return 0, false
}

func (op Opcode) String() string {
	if int(op) < len(OpcodeTable) && OpcodeTable[op].Name != "" {
		return OpcodeTable[op].Name
	}
	return "illegal"
}

// Format returns op's operand format.
func (op Opcode) Format() Format {
	if int(op) < len(OpcodeTable) {
		return OpcodeTable[op].Fmt
	}
	return FmtNone
}
