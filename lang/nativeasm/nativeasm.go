// Package nativeasm defines the contract between the compiler's `asm { }`
// block handling (spec §4.2) and the native-code sub-assembler invoked for
// FMT_NATIVE operands. Per spec §1, the sub-assembler's internals are
// explicitly out of scope; only the interface it must satisfy is specified
// here, plus a small stub implementation used by tests.
package nativeasm

import "fmt"

// Assembler assembles one line of raw native-assembly source into a single
// 32-bit word, reporting how many characters of line it consumed (spec §6
// "Assembler sub-interface"). advc's parser passes the whole text of a
// string-literal operand as line and does not use the consumed count.
type Assembler interface {
	AssembleLine(line string) (word uint32, consumed int, err error)
}

// Stub is a minimal Assembler used by tests and by the `parse` and
// `compile` CLI commands, which have no real native backend. It
// accepts lines of the form "NAME value", hashing the name into the high
// 16 bits and parsing value into the low 16 bits, which is enough to
// exercise the FMT_NATIVE code path deterministically without a real
// target architecture.
type Stub struct{}

// AssembleLine implements Assembler.
func (Stub) AssembleLine(line string) (uint32, int, error) {
	var name string
	var value uint32
	n, err := fmt.Sscanf(line, "%s %d", &name, &value)
	if err != nil || n != 2 {
		return 0, 0, fmt.Errorf("nativeasm: malformed native instruction %q", line)
	}
	word := (hash16(name) << 16) | (value & 0xffff)
	return word, len(line), nil
}

func hash16(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h & 0xffff
}
